package pinpad

import (
	"strings"

	"sats-keypad/config"
	"sats-keypad/styles"

	"github.com/charmbracelet/lipgloss"
)

// Action keys reported through clickable areas
const (
	KeyDelete  = "backspace"
	KeyConfirm = "enter"
)

type button struct {
	label string
	key   string
}

var rows = [][]button{
	{{"1", "1"}, {"2", "2"}, {"3", "3"}},
	{{"4", "4"}, {"5", "5"}, {"6", "6"}},
	{{"7", "7"}, {"8", "8"}, {"9", "9"}},
	{{".", "."}, {"0", "0"}, {"⌫", KeyDelete}},
}

// Params control how the pad is drawn
type Params struct {
	// Large draws taller, wider buttons for point of sale use
	Large bool
	// Active is the key to highlight, usually the last one pressed
	Active string
	// NoDecimal dims the point for currencies without decimals
	NoDecimal bool
}

// Render draws the pad and returns the clickable area of every button,
// relative to the top left corner of the pad.
func Render(p Params) (string, []config.ClickableArea) {
	cellW, cellH, gap := 7, 1, 0
	if p.Large {
		cellW, cellH, gap = 11, 3, 1
	}

	var areas []config.ClickableArea
	var lines []string
	y := 0
	for _, row := range rows {
		var cells []string
		x := 0
		for i, b := range row {
			st := styles.ButtonStyle
			if b.key == p.Active {
				st = styles.ActiveButtonStyle
			}
			if b.key == "." && p.NoDecimal {
				st = st.Foreground(styles.CMuted)
			}
			cell := st.Width(cellW).Height(cellH).AlignVertical(lipgloss.Center).Render(b.label)
			if i > 0 {
				cells = append(cells, " ")
				x++
			}
			cells = append(cells, cell)
			areas = append(areas, config.ClickableArea{X: x, Y: y, Width: cellW, Height: cellH, Key: b.key})
			x += cellW
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
		y += cellH
		if gap > 0 {
			lines = append(lines, strings.Repeat("\n", gap-1))
			y += gap
		}
	}

	// confirm spans the whole pad
	width := 3*cellW + 2
	st := styles.ButtonStyle.Background(styles.CBitcoin)
	if p.Active == KeyConfirm {
		st = styles.ActiveButtonStyle
	}
	lines = append(lines, st.Width(width).Height(cellH).AlignVertical(lipgloss.Center).Render("Confirm"))
	areas = append(areas, config.ClickableArea{X: 0, Y: y, Width: width, Height: cellH, Key: KeyConfirm})

	return strings.Join(lines, "\n"), areas
}

// Hit returns the key of the area under x,y
func Hit(areas []config.ClickableArea, x, y int) (string, bool) {
	for _, a := range areas {
		if a.Contains(x, y) {
			return a.Key, true
		}
	}
	return "", false
}
