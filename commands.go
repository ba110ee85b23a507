package main

import (
	"time"

	"sats-keypad/config"
	"sats-keypad/units"
	"sats-keypad/views/request"

	"github.com/atotto/clipboard"
	"github.com/btcsuite/btcd/btcutil"
	tea "github.com/charmbracelet/bubbletea"
)

// -------------------- COMMAND FUNCTIONS --------------------
// Functions that return tea.Cmd for async operations

// Shake steps in columns, one per shakeInterval. The last step re-centers.
var shakeOffsets = []int{2, -2, 2, 0}

const (
	shakeInterval = 100 * time.Millisecond
	flashDuration = time.Second
	flashInterval = 50 * time.Millisecond
)

// initLogViewport initializes the log viewport
func initLogViewport() tea.Cmd {
	return func() tea.Msg {
		return logInitMsg{}
	}
}

// copyToClipboard copies text to clipboard; what names it in the feedback
func copyToClipboard(text, what string) tea.Cmd {
	return func() tea.Msg {
		err := clipboard.WriteAll(text)
		return clipboardCopiedMsg{what: what, err: err}
	}
}

// clearClipboardMsg waits 2 seconds then sends a message to clear clipboard feedback
func clearClipboardMsg() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearCopiedMsg{}
	})
}

// shakeTick schedules the next shake step of animation id
func shakeTick(id int) tea.Cmd {
	return tea.Tick(shakeInterval, func(time.Time) tea.Msg {
		return shakeTickMsg{id: id}
	})
}

// flashTick schedules a redraw of the fading flash of animation id
func flashTick(id int) tea.Cmd {
	return tea.Tick(flashInterval, func(time.Time) tea.Msg {
		return flashTickMsg{id: id}
	})
}

// buildRequest encodes the BIP21 URI for amt and renders its QR code
func buildRequest(address string, amt btcutil.Amount, label string) tea.Cmd {
	return func() tea.Msg {
		uri, err := units.PaymentURI(address, amt, label)
		if err != nil {
			return requestBuiltMsg{err: err}
		}
		return requestBuiltMsg{uri: uri, qr: request.QRCode(uri)}
	}
}

// -------------------- MODEL HELPER METHODS --------------------
// These methods help with state management and command generation

// addLog adds a log entry with timestamp and type
func (m *model) addLog(logType, message string) {
	if !m.logEnabled || !m.logReady || m.logger == nil {
		return
	}

	switch logType {
	case "info":
		m.logger.Info(message)
	case "success":
		m.logger.Info("✓", "msg", message)
	case "error":
		m.logger.Error(message)
	case "warning":
		m.logger.Warn(message)
	case "debug":
		m.logger.Debug(message)
	default:
		m.logger.Print(message)
	}

	m.updateLogViewport()
}

// updateLogViewport refreshes the viewport content with log output
func (m *model) updateLogViewport() {
	if !m.logReady || m.logBuffer == nil {
		return
	}

	m.logViewport.SetContent(m.logBuffer.String())
	// latest entries at the bottom
	m.logViewport.GotoBottom()
}

// saveConfig writes the config synchronously, inside Update
func (m *model) saveConfig() {
	if err := config.Save(m.configPath, m.cfg); err != nil {
		m.addLog("error", err.Error())
		return
	}
	m.addLog("debug", "Config saved to "+m.configPath)
}

// flushPendingLogs writes notes collected before the logger was ready
func (m *model) flushPendingLogs() {
	if !m.logReady {
		return
	}
	for _, p := range m.pendingLogs {
		m.addLog(p[0], p[1])
	}
	m.pendingLogs = nil
}

// startShake begins the rejected keystroke animation. Restarting cancels
// any animation still running since stale ticks carry an old id.
func (m *model) startShake() tea.Cmd {
	m.shakeID++
	m.shakeStep = 0
	m.flashing = true
	m.flashStart = time.Now()
	return tea.Batch(shakeTick(m.shakeID), flashTick(m.shakeID))
}

// shakeOffset is the current horizontal shift of the amount
func (m model) shakeOffset() int {
	if m.shakeStep < 0 || m.shakeStep >= len(shakeOffsets) {
		return 0
	}
	return shakeOffsets[m.shakeStep]
}
