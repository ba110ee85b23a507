package request

import (
	"strings"

	"sats-keypad/helpers"
	"sats-keypad/styles"

	"github.com/charmbracelet/lipgloss"
	"github.com/mdp/qrterminal/v3"
)

// QRCode renders data as a half block QR code
func QRCode(data string) string {
	var b strings.Builder
	qrterminal.GenerateWithConfig(data, qrterminal.Config{
		Level:          qrterminal.M,
		Writer:         &b,
		HalfBlocks:     true,
		BlackChar:      qrterminal.BLACK_BLACK,
		WhiteBlackChar: qrterminal.WHITE_BLACK,
		WhiteChar:      qrterminal.WHITE_WHITE,
		BlackWhiteChar: qrterminal.BLACK_WHITE,
		QuietZone:      1,
	})
	return strings.TrimRight(b.String(), "\n")
}

// Params is the state of the request page
type Params struct {
	Building bool
	Spinner  string
	// Amount is the confirmed amount as displayed on the keypad
	Amount string
	// Conversion describes the amount in the other units
	Conversion string
	URI        string
	QR         string
	Err        string
	Copied     string
}

// Render renders the payment request page
func Render(width int, p Params) string {
	title := styles.TitleStyle.Render("Payment Request")
	amount := lipgloss.NewStyle().Foreground(styles.CBitcoin).Bold(true).Render(p.Amount)

	lines := []string{title, "", amount}
	if p.Conversion != "" {
		lines = append(lines, styles.MutedStyle.Render(p.Conversion))
	}
	lines = append(lines, "")

	switch {
	case p.Building:
		lines = append(lines, p.Spinner+" Building request…")
	case p.Err != "":
		lines = append(lines, styles.WarnStyle.Render(p.Err))
		lines = append(lines, styles.MutedStyle.Render("The amount was copied to the clipboard instead."))
	default:
		lines = append(lines, p.QR, "")
		lines = append(lines, styles.MutedStyle.Render(helpers.Shorten(p.URI, 28, 12)))
		lines = append(lines, "", styles.MutedStyle.Render("Scan with any bitcoin wallet to pay"))
	}

	if p.Copied != "" {
		lines = append(lines, lipgloss.NewStyle().Foreground(styles.CAccent).Bold(true).Render(p.Copied))
	}

	return lipgloss.NewStyle().Width(helpers.Max(0, width)).Align(lipgloss.Center).Render(strings.Join(lines, "\n"))
}

// Nav returns the navigation bar for the request view
func Nav(width int) string {
	left := strings.Join([]string{
		styles.Key("y") + " copy URI",
		styles.Key("Enter") + " new amount",
		styles.Key("m") + " menu",
		styles.Key("l") + " logger",
		styles.Key("Esc") + " back",
	}, "   ")

	return styles.NavStyle.Width(width).Render(left)
}
