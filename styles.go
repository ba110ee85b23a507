package main

import (
	"sats-keypad/styles"

	"github.com/charmbracelet/lipgloss"
)

// -------------------- THEME (Lip Gloss) --------------------
// Styles come from the styles package

var (
	cBorder  = styles.CBorder
	cMuted   = styles.CMuted
	cText    = styles.CText
	cAccent  = styles.CAccent
	cAccent2 = styles.CAccent2
	cWarn    = styles.CWarn
	cError   = styles.CError

	appStyle   = styles.AppStyle
	panelStyle = styles.PanelStyle

	warnLineStyle = lipgloss.NewStyle().Foreground(cWarn)
	copiedStyle   = lipgloss.NewStyle().Foreground(cAccent).Bold(true)
)
