// Package amount draws the amount being typed. The keypad font size picks
// one of three glyph sets so long amounts shrink the same way they do on a
// phone screen.
package amount

import (
	"strings"
	"unicode"

	"sats-keypad/styles"

	"github.com/charmbracelet/lipgloss"
)

// Level is a glyph set
type Level int

const (
	// Small is plain bold text
	Small Level = iota
	// Medium is a three row box drawing font
	Medium
	// Large is a five row block font
	Large
)

// LevelFor maps a keypad font size onto a glyph set
func LevelFor(fontSize int) Level {
	switch {
	case fontSize >= 65:
		return Large
	case fontSize >= 50:
		return Medium
	default:
		return Small
	}
}

var mediumGlyphs = map[rune][]string{
	'0': {"╭─╮", "│ │", "╰─╯"},
	'1': {" ╷ ", " │ ", " ╵ "},
	'2': {"╶─╮", "╭─╯", "╰─╴"},
	'3': {"╶─╮", " ─┤", "╶─╯"},
	'4': {"╷ ╷", "╰─┤", "  ╵"},
	'5': {"╭─╴", "╰─╮", "╶─╯"},
	'6': {"╭─╴", "├─╮", "╰─╯"},
	'7': {"╶─╮", "  │", "  ╵"},
	'8': {"╭─╮", "├─┤", "╰─╯"},
	'9': {"╭─╮", "╰─┤", "╶─╯"},
	'.': {" ", " ", "•"},
	',': {" ", " ", ","},
	' ': {" ", " ", " "},
}

var largeGlyphs = map[rune][]string{
	'0': {"████", "█  █", "█  █", "█  █", "████"},
	'1': {"  █ ", " ██ ", "  █ ", "  █ ", " ███"},
	'2': {"████", "   █", "████", "█   ", "████"},
	'3': {"████", "   █", " ███", "   █", "████"},
	'4': {"█  █", "█  █", "████", "   █", "   █"},
	'5': {"████", "█   ", "████", "   █", "████"},
	'6': {"████", "█   ", "████", "█  █", "████"},
	'7': {"████", "   █", "  █ ", " █  ", " █  "},
	'8': {"████", "█  █", "████", "█  █", "████"},
	'9': {"████", "█  █", "████", "   █", "████"},
	'.': {" ", " ", " ", " ", "█"},
	',': {" ", " ", " ", "▄", "▌"},
	' ': {" ", " ", " ", " ", " "},
}

// Params describe one frame of the amount display
type Params struct {
	// Text is the formatted amount, placeholder zeros included
	Text string
	// Placeholder is how many trailing digits of Text are placeholders
	Placeholder int
	FontSize    int
	// Offset shifts the amount horizontally, negative is left
	Offset int
	// Color is the hex color of the typed digits
	Color string
	// Zero renders the whole amount muted
	Zero  bool
	Width int
}

// Render draws the amount centered in Width. The glyph set drops a level
// when the amount would not fit.
func Render(p Params) string {
	typed, placeholder := splitPlaceholder(p.Text, p.Placeholder)

	typedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(p.Color)).Bold(true)
	if p.Zero {
		typedStyle = styles.MutedStyle.Bold(true)
	}
	placeholderStyle := styles.MutedStyle

	var block string
	for level := LevelFor(p.FontSize); level >= Small; level-- {
		block = renderLevel(level, typed, placeholder, typedStyle, placeholderStyle)
		if p.Width <= 0 || lipgloss.Width(block) <= p.Width {
			break
		}
	}

	shift := lipgloss.NewStyle()
	if p.Offset > 0 {
		shift = shift.PaddingLeft(2 * p.Offset)
	} else if p.Offset < 0 {
		shift = shift.PaddingRight(-2 * p.Offset)
	}
	block = shift.Render(block)

	if p.Width <= 0 {
		return block
	}
	return lipgloss.PlaceHorizontal(p.Width, lipgloss.Center, block)
}

func renderLevel(level Level, typed, placeholder string, typedStyle, placeholderStyle lipgloss.Style) string {
	if level == Small {
		return typedStyle.Render(typed) + placeholderStyle.Render(placeholder)
	}

	glyphs, rows := mediumGlyphs, 3
	if level == Large {
		glyphs, rows = largeGlyphs, 5
	}

	lines := make([]string, rows)
	draw := func(s string, st lipgloss.Style) {
		for _, r := range s {
			g := glyph(glyphs, rows, r)
			for i := range lines {
				if lines[i] != "" {
					lines[i] += " "
				}
				lines[i] += st.Render(g[i])
			}
		}
	}
	draw(typed, typedStyle)
	draw(placeholder, placeholderStyle)
	return strings.Join(lines, "\n")
}

// glyph returns the rows for r; runes without a glyph sit on the bottom row
func glyph(glyphs map[rune][]string, rows int, r rune) []string {
	if g, ok := glyphs[r]; ok {
		return g
	}
	s := string(r)
	pad := strings.Repeat(" ", lipgloss.Width(s))
	g := make([]string, rows)
	for i := range g {
		g[i] = pad
	}
	g[rows-1] = s
	return g
}

// splitPlaceholder cuts the last n digits (and the separators between them)
// off text
func splitPlaceholder(text string, n int) (typed, placeholder string) {
	if n <= 0 {
		return text, ""
	}
	r := []rune(text)
	i := len(r)
	for i > 0 && n > 0 {
		i--
		if unicode.IsDigit(r[i]) {
			n--
		}
	}
	return string(r[:i]), string(r[i:])
}
