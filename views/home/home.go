package home

import (
	"sats-keypad/styles"
	"strings"

	"github.com/charmbracelet/huh"
)

// Menu selections
const (
	SelectKeypad   = "keypad"
	SelectRequest  = "request"
	SelectHistory  = "history"
	SelectSettings = "settings"
)

// TempSelection stores the home menu selection
var TempSelection string

// CreateForm creates the home menu form. The request entry is only offered
// once an amount has been confirmed.
func CreateForm(hasRequest bool) *huh.Form {
	TempSelection = ""

	options := []huh.Option[string]{
		huh.NewOption("Amount Keypad", SelectKeypad),
	}
	if hasRequest {
		options = append(options, huh.NewOption("Last Payment Request", SelectRequest))
	}
	options = append(options,
		huh.NewOption("History", SelectHistory),
		huh.NewOption("Settings", SelectSettings),
	)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Options(options...).
				Title("Main Menu").
				Description("Select a view to navigate to").
				Value(&TempSelection),
		),
	).WithTheme(huh.ThemeCatppuccin())

	form.Init()
	return form
}

// Render renders the home view
func Render(form *huh.Form) string {
	if form != nil {
		return form.View()
	}
	return "Loading menu..."
}

// Nav returns the navigation bar for home view
func Nav(width int) string {
	left := strings.Join([]string{
		styles.Key("↑/↓") + " select",
		styles.Key("Enter") + " go",
		styles.Key("l") + " logger",
		styles.Key("Esc") + " back",
	}, "   ")

	return styles.NavStyle.Width(width).Render(left)
}
