package main

import (
	"fmt"
	"os"

	"sats-keypad/config"

	tea "github.com/charmbracelet/bubbletea"
)

// -------------------- MAIN --------------------

func main() {
	opts, err := config.ParseFlags(os.Args[1:])
	if err != nil {
		fmt.Println(err)
		if config.IsHelp(err) {
			return
		}
		os.Exit(2)
	}

	path := opts.Path()
	cfg := config.LoadOrCreate(path)
	opts.Apply(&cfg)

	m := newModel(cfg, path, opts.Amount)
	p := tea.NewProgram(&m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
}
