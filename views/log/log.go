package log

import (
	"fmt"

	"sats-keypad/helpers"
	"sats-keypad/styles"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
)

// reservedHeight is what the header, nav and panel chrome take
const reservedHeight = 10

// PanelHeight returns the viewport height for a terminal of the given
// height: at most a third of the screen and never more than 15 lines.
func PanelHeight(height int) int {
	available := helpers.Max(5, height-reservedHeight)
	return helpers.Min(available, helpers.Min(height/3, 15))
}

// Render renders the log panel below the page
func Render(width, height int, logReady bool, logSpinnerView string, vp viewport.Model) string {
	title := lipgloss.NewStyle().
		Foreground(styles.CAccent2).
		Bold(true).
		Render("Log")

	panelHeight := PanelHeight(height)
	vp.Height = panelHeight

	border := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(styles.CBorder).
		Padding(0, 1).
		Width(helpers.Max(0, width-2)).
		Height(panelHeight + 2)

	if !logReady {
		return border.Render(title + "\n\n" + "initializing...\n" + logSpinnerView)
	}

	scrollInfo := ""
	if lines := vp.TotalLineCount(); lines > vp.Height {
		scrollInfo = styles.MutedStyle.Render(fmt.Sprintf(" [%d%% of %d lines]", int(vp.ScrollPercent()*100), lines))
	}

	return border.Render(title + scrollInfo + "\n\n" + vp.View())
}
