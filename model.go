package main

import (
	"strings"
	"time"

	"sats-keypad/config"
	"sats-keypad/fiat"
	"sats-keypad/keypad"
	"sats-keypad/styles"
	"sats-keypad/units"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/shopspring/decimal"
)

// -------------------- MODEL --------------------

// model represents the application state following The Elm Architecture
type model struct {
	w, h int

	activePage config.Page

	cfg        config.Config
	configPath string

	// keypad state
	amount    string
	unit      keypad.Unit
	fiatCfg   keypad.FiatConfig
	currency  fiat.Currency
	rates     fiat.Rates
	formatter units.Formatter
	lastKey   string // highlighted pad key

	// rejected keystroke feedback, see startShake
	shakeID    int
	shakeStep  int // index into shakeOffsets, -1 when idle
	flashStart time.Time
	flashing   bool

	// payment request
	requestAmount     string
	requestConversion string
	requestURI        string
	requestQR         string
	requestErr        string
	requestBuilding   bool

	// clipboard feedback
	copiedMsg string

	// forms
	homeForm     *huh.Form
	settingsForm *huh.Form
	settingsErr  string

	selectedHistory int

	spin spinner.Model
	keys keyMap
	help help.Model

	// clickable areas for mouse support
	clickableAreas []config.ClickableArea

	// logger panel
	logEnabled  bool
	logger      *log.Logger
	logBuffer   *strings.Builder
	logViewport viewport.Model
	logReady    bool
	logSpinner  spinner.Model

	// startup notes logged once the logger is ready
	pendingLogs [][2]string
}

// -------------------- INIT --------------------

// newModel creates the model from an already loaded config
func newModel(cfg config.Config, configPath, initialAmount string) model {
	sp := spinner.New()
	sp.Spinner = spinner.Line
	sp.Style = lipgloss.NewStyle().Foreground(styles.CAccent2)

	vp := viewport.New(0, 20) // resized on the first WindowSizeMsg
	vp.Style = lipgloss.NewStyle().
		Foreground(styles.CText).
		Background(styles.CPanel)

	logSpin := spinner.New()
	logSpin.Spinner = spinner.Dot
	logSpin.Style = lipgloss.NewStyle().Foreground(styles.CAccent2)

	h := help.New()
	h.Styles.ShortKey = styles.HotkeyKeyStyle
	h.Styles.ShortDesc = styles.HotkeyStyle
	h.Styles.ShortSeparator = styles.HotkeyStyle

	m := model{
		activePage:  config.PageKeypad,
		configPath:  configPath,
		amount:      keypad.Zero,
		shakeStep:   -1,
		spin:        sp,
		keys:        newKeyMap(),
		help:        h,
		logEnabled:  cfg.Logger,
		logViewport: vp,
		logBuffer:   &strings.Builder{},
		logSpinner:  logSpin,
	}
	m.applyConfig(cfg)

	if initialAmount != "" {
		seeded := seedAmount(initialAmount, m.unit, m.fiatCfg)
		if seeded != plainAmount(initialAmount) {
			m.note("warning", "Initial amount "+initialAmount+" trimmed to "+seeded)
		}
		m.amount = seeded
	}

	return m
}

// applyConfig derives the keypad state from cfg
func (m *model) applyConfig(cfg config.Config) {
	m.cfg = cfg

	m.unit = keypad.ParseUnit(config.CanonicalUnits(cfg.Units))
	if m.unit == keypad.Unrecognized {
		m.note("warning", "Unknown unit "+cfg.Units+", using sats")
		m.unit = keypad.Sats
	}

	m.currency = currencyFor(cfg.Fiat)
	m.fiatCfg = keypad.FiatConfig{Code: cfg.Fiat, Lookup: fiat.Currencies.DecimalPlaces}

	rates, err := fiat.ParseRates(cfg.Rates)
	if err != nil {
		m.note("warning", "Ignoring rates: "+err.Error())
	}
	m.rates = rates

	m.formatter = units.NewFormatter(cfg.Locale)
}

// note logs now if the logger is up, otherwise once it is
func (m *model) note(logType, message string) {
	if m.logReady {
		m.addLog(logType, message)
		return
	}
	m.pendingLogs = append(m.pendingLogs, [2]string{logType, message})
}

// price returns the BTC price in the configured fiat, zero when unknown
func (m model) price() decimal.Decimal {
	p, err := m.rates.Price(m.cfg.Fiat)
	if err != nil {
		return decimal.Zero
	}
	return p
}

// seedAmount types s on the keypad one key at a time, so an initial amount
// obeys the same rules as typed input. s uses "." for decimals; commas are
// grouping and dropped.
func seedAmount(s string, u keypad.Unit, f keypad.FiatConfig) string {
	amount := keypad.Zero
	for _, r := range plainAmount(s) {
		res := keypad.Validate(amount, keypad.NormalizeKey(string(r)), u, f)
		amount = res.Amount
	}
	return amount
}

// plainAmount drops surrounding space and grouping commas
func plainAmount(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), ",", "")
}

// Init implements tea.Model interface and returns initial commands
func (m model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spin.Tick}
	if m.logEnabled {
		cmds = append(cmds, initLogViewport(), m.logSpinner.Tick)
	}
	return tea.Batch(cmds...)
}
