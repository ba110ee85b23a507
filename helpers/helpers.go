package helpers

import (
	"image/color"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/gamut"
)

// Shorten keeps the head and tail of a long string, e.g. payment URIs
func Shorten(s string, head, tail int) string {
	r := []rune(s)
	if len(r) <= head+tail+1 {
		return s
	}
	return string(r[:head]) + "…" + string(r[len(r)-tail:])
}

// Timestamp formats a history timestamp
func Timestamp(t time.Time) string {
	if t.IsZero() {
		return "never"
	}
	if time.Since(t) < 24*time.Hour {
		return t.Format("15:04:05")
	}
	return t.Format("2006-01-02 15:04")
}

// FadeString creates a gradient colored string
func FadeString(s string, firstColor string, lastColor string) string {
	n := len([]rune(s))
	if n == 0 {
		return s
	}
	blends := gamut.Blends(lipgloss.Color(firstColor), lipgloss.Color(lastColor), n)
	return rainbow(lipgloss.NewStyle(), s, blends)
}

func rainbow(baseStyle lipgloss.Style, str string, colors []color.Color) string {
	var b strings.Builder
	i := 0
	for _, c := range str {
		col, _ := colorful.MakeColor(colors[i%len(colors)])
		b.WriteString(baseStyle.Foreground(lipgloss.Color(col.Hex())).Render(string(c)))
		i++
	}
	return b.String()
}

// BlendHex mixes two hex colors in Lab space. t=0 gives from, t=1 gives to.
// Unparsable colors return from unchanged.
func BlendHex(from, to string, t float64) string {
	a, err := colorful.Hex(from)
	if err != nil {
		return from
	}
	b, err := colorful.Hex(to)
	if err != nil {
		return from
	}
	switch {
	case t <= 0:
		return a.Hex()
	case t >= 1:
		return b.Hex()
	}
	return a.BlendLab(b, t).Clamped().Hex()
}

// FlashColor returns the color of text that flashed to flash and fades back
// to base over d. After d it is base.
func FlashColor(base, flash string, elapsed, d time.Duration) string {
	if d <= 0 || elapsed >= d {
		return base
	}
	if elapsed < 0 {
		elapsed = 0
	}
	return BlendHex(flash, base, float64(elapsed)/float64(d))
}

// Max returns the maximum of two integers
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Min returns the minimum of two integers
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
