package history

import (
	"fmt"
	"strings"

	"sats-keypad/config"
	"sats-keypad/helpers"
	"sats-keypad/styles"

	"github.com/charmbracelet/lipgloss"
)

// Render lists confirmed amounts, newest first. format turns an entry into
// its display amount so the list follows the current locale.
func Render(entries []config.HistoryEntry, selected int, format func(config.HistoryEntry) string) string {
	h := styles.TitleStyle.Render("History")
	lines := []string{h, ""}

	if len(entries) == 0 {
		lines = append(lines, styles.MutedStyle.Render("No confirmed amounts yet."))
		lines = append(lines, "")
		lines = append(lines, styles.MutedStyle.Render("Press ")+styles.Key("Enter")+styles.MutedStyle.Render(" on the keypad to confirm one."))
		return strings.Join(lines, "\n")
	}

	for i, e := range entries {
		marker := "  "
		amountStyle := lipgloss.NewStyle().Foreground(styles.CText)
		if i == selected {
			marker = lipgloss.NewStyle().Foreground(styles.CAccent2).Render("▶ ")
			amountStyle = amountStyle.Foreground(styles.CAccent2).Bold(true)
		}
		when := styles.MutedStyle.Render(fmt.Sprintf("%-19s", helpers.Timestamp(e.At)))
		lines = append(lines, marker+when+"  "+amountStyle.Render(format(e)))
	}

	return strings.Join(lines, "\n")
}

// Nav returns the navigation bar for history view
func Nav(width int) string {
	left := strings.Join([]string{
		styles.Key("↑/↓") + " select",
		styles.Key("Enter") + " reuse amount",
		styles.Key("y") + " copy",
		styles.Key("Esc") + " back",
	}, "   ")

	return styles.NavStyle.Width(width).Render(left)
}
