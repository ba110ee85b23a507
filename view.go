package main

import (
	"fmt"
	"strings"
	"time"

	"sats-keypad/config"
	"sats-keypad/fiat"
	"sats-keypad/helpers"
	"sats-keypad/keypad"
	"sats-keypad/styles"
	"sats-keypad/units"
	"sats-keypad/views/amount"
	"sats-keypad/views/history"
	"sats-keypad/views/home"
	logview "sats-keypad/views/log"
	"sats-keypad/views/pinpad"
	"sats-keypad/views/request"
	"sats-keypad/views/settings"

	"github.com/charmbracelet/lipgloss"
)

// -------------------- VIEW --------------------

func (m *model) globalHeader() string {
	availableWidth := max(0, m.w-6) // panel border and padding

	unitText := "Unit: " + m.unitName(m.unit)
	if m.cfg.POSMode {
		unitText += "  POS"
	}
	unitDisplay := lipgloss.NewStyle().Foreground(cAccent2).Bold(true).Render(unitText)

	// Rate status with a dot, like a connection indicator
	var rateDisplay string
	if p := m.price(); p.IsPositive() {
		rate := m.currency.Format(m.formatter.Number(p.StringFixed(int32(m.currency.Places()))))
		rateDisplay = lipgloss.NewStyle().Foreground(cAccent).Bold(true).Render("● 1 BTC = " + rate)
	} else {
		rateDisplay = lipgloss.NewStyle().Foreground(cError).Bold(true).Render("○ No " + m.currency.Code + " rate")
	}

	titleText := helpers.FadeString("sats keypad", string(styles.CBitcoin), "#EDFF82")

	unitWidth := lipgloss.Width(unitDisplay)
	rateWidth := lipgloss.Width(rateDisplay)
	titleWidth := lipgloss.Width(titleText)
	totalOtherWidth := unitWidth + rateWidth + titleWidth

	var headerLine string
	if totalOtherWidth+4 > availableWidth {
		// Not enough space, stack vertically
		headerLine = unitDisplay + "\n" + titleText + "\n" + rateDisplay
	} else {
		// Unit | Title (centered) | Rate
		remainingSpace := availableWidth - totalOtherWidth
		leftPadding := remainingSpace / 2
		rightPadding := remainingSpace - leftPadding
		headerLine = unitDisplay + strings.Repeat(" ", max(1, leftPadding)) +
			titleText + strings.Repeat(" ", max(1, rightPadding)) + rateDisplay
	}

	separator := lipgloss.NewStyle().
		Foreground(cBorder).
		Render(strings.Repeat("─", availableWidth))

	return headerLine + "\n" + separator
}

// View implements tea.Model interface and renders the current page
func (m *model) View() string {
	// Clear clickable areas for fresh render
	m.clickableAreas = nil

	headerPanel := panelStyle.Width(max(0, m.w-2)).Render(m.globalHeader())
	contentWidth := max(0, m.w-6)

	var pageContent string
	var nav string

	switch m.activePage {
	case config.PageHome:
		pageContent = panelStyle.Width(max(0, m.w-2)).Render(home.Render(m.homeForm))
		nav = home.Nav(m.w - 2)

	case config.PageSettings:
		pageContent = panelStyle.Width(max(0, m.w-2)).Render(settings.Render(m.settingsForm, m.settingsErr))
		nav = settings.Nav(m.w - 2)

	case config.PageRequest:
		pageContent = panelStyle.Width(max(0, m.w-2)).Render(request.Render(contentWidth, request.Params{
			Building:   m.requestBuilding,
			Spinner:    m.spin.View(),
			Amount:     m.requestAmount,
			Conversion: m.requestConversion,
			URI:        m.requestURI,
			QR:         m.requestQR,
			Err:        m.requestErr,
			Copied:     m.copiedMsg,
		}))
		nav = request.Nav(m.w - 2)

	case config.PageHistory:
		content := history.Render(m.cfg.History, m.selectedHistory, m.formatEntry)
		if m.copiedMsg != "" {
			content += "\n\n" + copiedStyle.Render(m.copiedMsg)
		}
		pageContent = panelStyle.Width(max(0, m.w-2)).Render(content)
		nav = history.Nav(m.w - 2)

	default:
		content, areas, padX, padY := m.renderKeypad(contentWidth)
		pageContent = panelStyle.Width(max(0, m.w-2)).Render(content)

		// Pad areas are relative to the pad; shift them past the header
		// panel, this panel's border and padding, and the lines above the pad
		offsetX := 1 + 2 + padX
		offsetY := lipgloss.Height(headerPanel) + 1 + 1 + padY
		for _, a := range areas {
			a.X += offsetX
			a.Y += offsetY
			m.clickableAreas = append(m.clickableAreas, a)
		}
		nav = styles.NavStyle.Width(max(0, m.w-2)).Render(m.help.View(m.keys))
	}

	sections := []string{headerPanel, pageContent, nav}
	if m.logEnabled {
		sections = append(sections, logview.Render(m.w, m.h, m.logReady, m.logSpinner.View(), m.logViewport))
	}

	return appStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

// renderKeypad draws the amount entry page. padX and padY locate the pinpad
// inside the returned content.
func (m *model) renderKeypad(width int) (content string, areas []config.ClickableArea, padX, padY int) {
	placeholder, count := units.DecimalPlaceholder(m.amount, m.unit, m.fiatCfg)

	conv, convErr := units.Convert(m.amount, m.unit, m.price())
	needInbound := convErr == nil && m.cfg.InboundSats > 0 &&
		conv.Sats.IntPart() > m.cfg.InboundSats

	fontSize := keypad.FontSize(len(m.amount), count, keypad.FontOptions{
		Compact:     m.cfg.POSMode,
		NeedInbound: needInbound,
	})

	color := string(cText)
	if m.flashing {
		color = helpers.FlashColor(color, string(cError), time.Since(m.flashStart), flashDuration)
	}

	amountView := amount.Render(amount.Params{
		Text:        m.amountText(m.amount + placeholder),
		Placeholder: count,
		FontSize:    fontSize,
		Offset:      m.shakeOffset(),
		Color:       color,
		Zero:        m.amount == keypad.Zero,
		Width:       width,
	})

	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var conversion string
	switch {
	case convErr != nil:
		conversion = styles.MutedStyle.Render("No " + m.currency.Code + " rate configured")
	default:
		conversion = styles.MutedStyle.Render(strings.Join(conv.Describe(m.unit, m.formatter, m.currency, m.cfg.ShowMsats), "  ·  "))
	}

	// Always one line so the pad does not jump
	warning := " "
	if needInbound {
		warning = warnLineStyle.Render(fmt.Sprintf("⚠ Above your inbound capacity of %s sats",
			m.formatter.Number(fmt.Sprint(m.cfg.InboundSats))))
	}

	top := strings.Join([]string{
		amountView,
		"",
		center.Render(m.unitToggle()),
		center.Render(conversion),
		center.Render(warning),
	}, "\n")

	pad, areas := pinpad.Render(pinpad.Params{
		Large:     m.cfg.POSMode,
		Active:    m.lastKey,
		NoDecimal: m.noDecimal(),
	})
	padX = max(0, (width-lipgloss.Width(pad))/2)
	padY = lipgloss.Height(top) + 1

	content = top + "\n\n" + lipgloss.NewStyle().PaddingLeft(padX).Render(pad)
	return content, areas, padX, padY
}

// amountText formats a raw amount for the big display
func (m model) amountText(raw string) string {
	switch m.unit {
	case keypad.BTC:
		return m.formatter.Bitcoin(raw)
	case keypad.Fiat:
		number := m.formatter.Number(raw)
		if m.currency.SymbolAfter {
			// a trailing symbol would be mistaken for placeholder digits
			return number
		}
		return m.currency.Format(number)
	default:
		return m.formatter.Number(raw)
	}
}

// unitToggle lists the units with the active one highlighted
func (m model) unitToggle() string {
	active := lipgloss.NewStyle().Foreground(styles.CBitcoin).Bold(true)
	var parts []string
	for _, u := range []keypad.Unit{keypad.Sats, keypad.BTC, keypad.Fiat} {
		name := m.unitName(u)
		if u == m.unit {
			parts = append(parts, active.Render("["+name+"]"))
			continue
		}
		parts = append(parts, styles.MutedStyle.Render(" "+name+" "))
	}
	return strings.Join(parts, " ")
}

// unitName is the unit as shown to the user; fiat shows the currency code
func (m model) unitName(u keypad.Unit) string {
	if u == keypad.Fiat {
		return m.currency.Code
	}
	return u.String()
}

// noDecimal reports whether the point key can never be accepted
func (m model) noDecimal() bool {
	limit, ok := keypad.DecimalLimit(m.unit, m.fiatCfg)
	return ok && limit == 0
}

// formatEntry renders a history entry in the current locale
func (m model) formatEntry(e config.HistoryEntry) string {
	u := keypad.ParseUnit(e.Units)
	if u == keypad.Unrecognized {
		return e.Amount + " " + e.Units
	}
	text := m.formatAmount(e.Amount, u, currencyFor(e.Fiat))
	if u != keypad.Sats {
		text += styles.MutedStyle.Render(fmt.Sprintf("  (%s sats)", m.formatter.Number(fmt.Sprint(e.Sats))))
	}
	return text
}

// currencyFor looks up code, making up a plain entry for unknown codes
func currencyFor(code string) fiat.Currency {
	if c, ok := fiat.Currencies.Lookup(code); ok {
		return c
	}
	code = strings.ToUpper(strings.TrimSpace(code))
	return fiat.Currency{Code: code, Symbol: code, SymbolAfter: true}
}
