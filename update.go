package main

import (
	"fmt"
	"strings"
	"time"

	"sats-keypad/config"
	"sats-keypad/fiat"
	"sats-keypad/helpers"
	"sats-keypad/keypad"
	"sats-keypad/units"
	"sats-keypad/views/home"
	"sats-keypad/views/pinpad"
	"sats-keypad/views/settings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// requestLabel is the label put in payment request URIs
const requestLabel = "sats-keypad"

// -------------------- UPDATE --------------------

// Update implements tea.Model interface and handles all state updates
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case logInitMsg:
		if !m.logEnabled {
			return m, nil
		}
		// Create logger that writes to our buffer
		m.logger = log.NewWithOptions(m.logBuffer, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05",
		})
		m.logger.SetLevel(log.DebugLevel)
		m.logger.SetStyles(&log.Styles{
			Timestamp: lipgloss.NewStyle().Foreground(cMuted),
			Caller:    lipgloss.NewStyle().Faint(true),
			Prefix:    lipgloss.NewStyle().Bold(true).Foreground(cAccent2),
			Message:   lipgloss.NewStyle().Foreground(cText),
			Key:       lipgloss.NewStyle().Foreground(cAccent),
			Value:     lipgloss.NewStyle().Foreground(cText),
			Separator: lipgloss.NewStyle().Faint(true),
			Levels: map[log.Level]lipgloss.Style{
				log.DebugLevel: lipgloss.NewStyle().Foreground(cMuted).SetString("DEBUG"),
				log.InfoLevel:  lipgloss.NewStyle().Foreground(cAccent2).SetString("INFO"),
				log.WarnLevel:  lipgloss.NewStyle().Foreground(cWarn).SetString("WARN"),
				log.ErrorLevel: lipgloss.NewStyle().Foreground(cError).SetString("ERROR"),
			},
		})
		m.logReady = true
		m.addLog("info", "Logger enabled")
		m.addLog("debug", fmt.Sprintf("Locale %s, decimal separator %q", m.formatter.Locale(), m.formatter.DecimalSeparator()))
		m.flushPendingLogs()
		return m, nil

	case tea.WindowSizeMsg:
		m.w, m.h = msg.Width, msg.Height
		m.help.Width = max(0, msg.Width-4)
		// border and padding of the log panel
		m.logViewport.Width = max(0, msg.Width-6)
		if m.logReady {
			m.updateLogViewport()
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		var cmds []tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		cmds = append(cmds, cmd)
		if m.logEnabled && !m.logReady {
			m.logSpinner, cmd = m.logSpinner.Update(msg)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)

	case shakeTickMsg:
		if msg.id != m.shakeID || m.shakeStep < 0 {
			return m, nil
		}
		m.shakeStep++
		if m.shakeStep >= len(shakeOffsets) {
			m.shakeStep = -1
			return m, nil
		}
		return m, shakeTick(msg.id)

	case flashTickMsg:
		if msg.id != m.shakeID || !m.flashing {
			return m, nil
		}
		if time.Since(m.flashStart) >= flashDuration {
			m.flashing = false
			return m, nil
		}
		return m, flashTick(msg.id)

	case clipboardCopiedMsg:
		if msg.err != nil {
			m.addLog("error", fmt.Sprintf("Clipboard: %v", msg.err))
			return m, nil
		}
		m.copiedMsg = "✓ " + msg.what + " copied"
		m.addLog("success", msg.what+" copied to clipboard")
		return m, clearClipboardMsg()

	case clearCopiedMsg:
		m.copiedMsg = ""
		return m, nil

	case requestBuiltMsg:
		m.requestBuilding = false
		if msg.err != nil {
			m.requestErr = msg.err.Error()
			m.addLog("warning", "No payment request: "+msg.err.Error())
			return m, nil
		}
		m.requestURI = msg.uri
		m.requestQR = msg.qr
		m.addLog("success", "Payment request ready: "+helpers.Shorten(msg.uri, 20, 12))
		return m, nil

	case tea.MouseMsg:
		if m.activePage != config.PageKeypad {
			return m, nil
		}
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		k, ok := pinpad.Hit(m.clickableAreas, msg.X, msg.Y)
		if !ok {
			return m, nil
		}
		m.addLog("debug", fmt.Sprintf("Click at (%d,%d) on %q", msg.X, msg.Y, k))
		return m, m.press(k)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.activeForm() != nil {
			return m.updateForm(msg)
		}
		return m.handleKey(msg)
	}

	// huh forms run on their own internal messages
	if m.activeForm() != nil {
		return m.updateForm(msg)
	}
	return m, nil
}

// activeForm returns the form shown on the current page, if any
func (m *model) activeForm() *huh.Form {
	switch m.activePage {
	case config.PageHome:
		return m.homeForm
	case config.PageSettings:
		return m.settingsForm
	}
	return nil
}

// updateForm forwards msg to the active form and acts on completion
func (m *model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
		if m.activePage == config.PageSettings {
			m.addLog("info", "Settings unchanged")
		}
		m.homeForm = nil
		m.settingsForm = nil
		m.settingsErr = ""
		m.activePage = config.PageKeypad
		return m, nil
	}

	switch m.activePage {
	case config.PageHome:
		form, cmd := m.homeForm.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.homeForm = f
		}
		if m.homeForm.State == huh.StateCompleted {
			m.homeForm = nil
			return m, tea.Batch(cmd, m.navigate(home.TempSelection))
		}
		return m, cmd

	case config.PageSettings:
		form, cmd := m.settingsForm.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.settingsForm = f
		}
		if m.settingsForm.State == huh.StateCompleted {
			m.settingsForm = nil
			return m, tea.Batch(cmd, m.applySettings())
		}
		return m, cmd
	}
	return m, nil
}

// navigate opens the page picked in the home menu
func (m *model) navigate(selection string) tea.Cmd {
	switch selection {
	case home.SelectRequest:
		m.activePage = config.PageRequest
	case home.SelectHistory:
		m.selectedHistory = 0
		m.activePage = config.PageHistory
	case home.SelectSettings:
		m.openSettings()
	default:
		m.activePage = config.PageKeypad
	}
	return nil
}

func (m *model) openSettings() {
	m.settingsForm = settings.CreateForm(m.cfg)
	m.activePage = config.PageSettings
}

// applySettings validates the completed settings form and saves it. An
// invalid form is reopened with the error shown.
func (m *model) applySettings() tea.Cmd {
	cfg := m.cfg
	if err := settings.Temp.Apply(&cfg); err != nil {
		m.addLog("error", "Settings: "+err.Error())
		m.openSettings()
		m.settingsErr = err.Error()
		return nil
	}

	oldUnit, oldFiat := m.unit, m.cfg.Fiat
	m.applyConfig(cfg)
	m.flushPendingLogs()
	if m.unit != oldUnit || (m.unit == keypad.Fiat && !strings.EqualFold(oldFiat, cfg.Fiat)) {
		m.amount = keypad.Zero
	}
	m.settingsErr = ""
	m.activePage = config.PageKeypad
	m.addLog("success", "Settings saved")
	m.saveConfig()
	return nil
}

// -------------------- KEYS --------------------

// handleKey dispatches a key press on a page without a form
func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Logger keys work everywhere
	switch msg.String() {
	case "l", "L":
		return m, m.toggleLogger()
	case "pgup", "pgdown":
		if m.logEnabled && m.logReady {
			var cmd tea.Cmd
			m.logViewport, cmd = m.logViewport.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	switch m.activePage {
	case config.PageKeypad:
		return m.handleKeypadKey(msg)
	case config.PageRequest:
		return m.handleRequestKey(msg)
	case config.PageHistory:
		return m.handleHistoryKey(msg)
	}
	return m, nil
}

func (m *model) handleKeypadKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Digit):
		return m, m.press(msg.String())
	case key.Matches(msg, m.keys.Delete):
		return m, m.press(pinpad.KeyDelete)
	case key.Matches(msg, m.keys.Confirm):
		return m, m.press(pinpad.KeyConfirm)
	case key.Matches(msg, m.keys.Clear):
		m.amount = keypad.Zero
		m.lastKey = ""
		return m, nil
	case key.Matches(msg, m.keys.Unit):
		return m, m.toggleUnit()
	case key.Matches(msg, m.keys.Menu):
		m.homeForm = home.CreateForm(m.requestAmount != "")
		m.activePage = config.PageHome
		return m, nil
	case key.Matches(msg, m.keys.History):
		m.selectedHistory = 0
		m.activePage = config.PageHistory
		return m, nil
	case msg.String() == "s" || msg.String() == "S":
		m.openSettings()
		return m, nil
	}

	// Anything else typed on the keypad is a rejected keystroke
	if msg.Type == tea.KeyRunes {
		return m, m.press(msg.String())
	}
	return m, nil
}

// press applies one keypad key, typed or clicked
func (m *model) press(k string) tea.Cmd {
	switch k {
	case pinpad.KeyDelete:
		m.lastKey = k
		m.amount = keypad.DeleteLast(m.amount)
		return nil
	case pinpad.KeyConfirm:
		m.lastKey = k
		return m.confirm()
	}

	normalized := keypad.NormalizeKey(k)
	res := keypad.Validate(m.amount, normalized, m.unit, m.fiatCfg)
	if !res.Valid {
		m.addLog("debug", fmt.Sprintf("Rejected %q on %s (%s): %s", k, m.amount, m.unit, res.Reason))
		return m.startShake()
	}
	m.lastKey = normalized
	m.amount = res.Amount
	return nil
}

// toggleUnit cycles sats, BTC and fiat. Fiat is skipped without a rate.
// The amount restarts at zero in the new unit.
func (m *model) toggleUnit() tea.Cmd {
	next := m.unit.Next()
	if next == keypad.Fiat && !m.price().IsPositive() {
		m.addLog("warning", "No "+m.cfg.Fiat+" rate configured, skipping fiat")
		next = next.Next()
	}
	m.unit = next
	m.amount = keypad.Zero
	m.lastKey = ""
	m.cfg.Units = next.String()
	m.addLog("info", "Unit: "+next.String())
	m.saveConfig()
	return nil
}

// confirm records the amount, copies it and builds the payment request
func (m *model) confirm() tea.Cmd {
	conv, err := units.Convert(m.amount, m.unit, m.price())
	if err != nil {
		m.addLog("error", "Cannot confirm: "+err.Error())
		return m.startShake()
	}
	sats := conv.Amount()
	if sats <= 0 {
		m.addLog("warning", "Nothing to confirm below 1 sat")
		return m.startShake()
	}

	m.cfg.AddHistory(config.HistoryEntry{
		Amount: m.amount,
		Units:  m.unit.String(),
		Fiat:   m.cfg.Fiat,
		Sats:   int64(sats),
		At:     time.Now(),
	})

	m.requestAmount = m.formatAmount(m.amount, m.unit, m.currency)
	m.requestConversion = strings.Join(conv.Describe(m.unit, m.formatter, m.currency, m.cfg.ShowMsats), "  ·  ")
	m.requestURI, m.requestQR, m.requestErr = "", "", ""
	m.requestBuilding = true
	m.activePage = config.PageRequest
	m.addLog("success", fmt.Sprintf("Confirmed %s (%s)", m.requestAmount, sats))

	m.saveConfig()

	return tea.Batch(
		copyToClipboard(strings.TrimSuffix(m.amount, "."), "Amount"),
		buildRequest(m.cfg.Address, sats, requestLabel),
	)
}

// toggleLogger shows or hides the log panel and remembers the choice
func (m *model) toggleLogger() tea.Cmd {
	m.logEnabled = !m.logEnabled
	m.cfg.Logger = m.logEnabled
	m.saveConfig()
	if m.logEnabled && !m.logReady {
		return tea.Batch(initLogViewport(), m.logSpinner.Tick)
	}
	return nil
}

func (m *model) handleRequestKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "y", "Y":
		if m.requestURI == "" {
			return m, nil
		}
		return m, copyToClipboard(m.requestURI, "Payment URI")
	case "enter":
		m.amount = keypad.Zero
		m.lastKey = ""
		m.activePage = config.PageKeypad
	case "m", "M":
		m.homeForm = home.CreateForm(m.requestAmount != "")
		m.activePage = config.PageHome
	case "esc":
		m.activePage = config.PageKeypad
	}
	return m, nil
}

func (m *model) handleHistoryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	entries := m.cfg.History
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.selectedHistory > 0 {
			m.selectedHistory--
		}
	case "down", "j":
		if m.selectedHistory < len(entries)-1 {
			m.selectedHistory++
		}
	case "y", "Y":
		if len(entries) > 0 {
			return m, copyToClipboard(entries[m.selectedHistory].Amount, "Amount")
		}
	case "enter":
		if len(entries) > 0 {
			m.reuse(entries[m.selectedHistory])
		}
	case "esc", "m", "M":
		m.activePage = config.PageKeypad
	}
	return m, nil
}

// reuse loads a confirmed amount back onto the keypad in its original unit
func (m *model) reuse(e config.HistoryEntry) {
	u := keypad.ParseUnit(e.Units)
	if u == keypad.Unrecognized {
		m.addLog("warning", "History entry has unknown unit "+e.Units)
		return
	}
	if u == keypad.Fiat && e.Fiat != "" && !strings.EqualFold(e.Fiat, m.cfg.Fiat) {
		cfg := m.cfg
		cfg.Fiat = e.Fiat
		m.applyConfig(cfg)
		m.flushPendingLogs()
	}
	m.unit = u
	m.cfg.Units = u.String()
	m.amount = seedAmount(e.Amount, m.unit, m.fiatCfg)
	m.lastKey = ""
	m.activePage = config.PageKeypad
	m.addLog("info", "Reusing "+m.formatAmount(m.amount, m.unit, m.currency))
}

// formatAmount renders an amount with its unit for display
func (m model) formatAmount(amount string, u keypad.Unit, cur fiat.Currency) string {
	switch u {
	case keypad.BTC:
		return m.formatter.Bitcoin(amount) + " BTC"
	case keypad.Fiat:
		return cur.Format(m.formatter.Number(amount))
	default:
		return m.formatter.Number(amount) + " sats"
	}
}
