package settings

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"sats-keypad/config"
	"sats-keypad/fiat"
	"sats-keypad/styles"
	"sats-keypad/units"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
)

// Values holds the form fields while the form is open. The form binds to
// pointers, so it lives at package level like the home menu selection.
type Values struct {
	Units     string
	Fiat      string
	Locale    string
	Rates     string
	ShowMsats bool
	POSMode   bool
	Inbound   string
	Address   string
}

// Temp is bound to the open settings form
var Temp Values

// FromConfig copies the editable settings out of cfg
func FromConfig(cfg config.Config) Values {
	inbound := ""
	if cfg.InboundSats > 0 {
		inbound = strconv.FormatInt(cfg.InboundSats, 10)
	}
	return Values{
		Units:     config.CanonicalUnits(cfg.Units),
		Fiat:      cfg.Fiat,
		Locale:    cfg.Locale,
		Rates:     fiat.FormatRateList(cfg.Rates),
		ShowMsats: cfg.ShowMsats,
		POSMode:   cfg.POSMode,
		Inbound:   inbound,
		Address:   cfg.Address,
	}
}

// Apply validates the values and writes them into cfg. cfg is untouched
// when any field is invalid.
func (v Values) Apply(cfg *config.Config) error {
	rates, err := fiat.ParseRateList(v.Rates)
	if err != nil {
		return err
	}
	inbound, err := parseInbound(v.Inbound)
	if err != nil {
		return err
	}
	if err := validateLocale(v.Locale); err != nil {
		return err
	}
	if err := units.ValidateAddress(v.Address); err != nil {
		return err
	}

	cfg.Units = v.Units
	cfg.Fiat = v.Fiat
	cfg.Locale = strings.TrimSpace(v.Locale)
	cfg.Rates = rates
	cfg.ShowMsats = v.ShowMsats
	cfg.POSMode = v.POSMode
	cfg.InboundSats = inbound
	cfg.Address = strings.TrimSpace(v.Address)
	return nil
}

func parseInbound(s string) (int64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return 0, nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("inbound capacity %q: want a whole number of sats", s)
	}
	return n, nil
}

func validateLocale(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, err := language.Parse(strings.TrimSpace(s)); err != nil {
		return errors.New("unknown locale, try en, de-DE or pt-BR")
	}
	return nil
}

// CreateForm builds the settings form seeded from cfg
func CreateForm(cfg config.Config) *huh.Form {
	Temp = FromConfig(cfg)

	fiatOptions := make([]huh.Option[string], 0, len(fiat.Currencies))
	for _, code := range fiat.Currencies.Codes() {
		c := fiat.Currencies[code]
		fiatOptions = append(fiatOptions, huh.NewOption(code+"  "+c.Name, code))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Entry unit").
				Options(
					huh.NewOption("sats", "sats"),
					huh.NewOption("BTC", "BTC"),
					huh.NewOption("fiat", "fiat"),
				).
				Value(&Temp.Units),

			huh.NewSelect[string]().
				Title("Fiat currency").
				Options(fiatOptions...).
				Height(6).
				Value(&Temp.Fiat),

			huh.NewInput().
				Title("BTC prices").
				Description("One BTC in each currency, e.g. USD=65000 EUR=60000").
				Value(&Temp.Rates).
				Validate(func(s string) error {
					_, err := fiat.ParseRateList(s)
					return err
				}),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Locale").
				Description("Number separators, e.g. en, de-DE").
				Value(&Temp.Locale).
				Placeholder("en").
				Validate(validateLocale),

			huh.NewConfirm().
				Title("Show millisats").
				Value(&Temp.ShowMsats),

			huh.NewConfirm().
				Title("Point of sale layout").
				Description("Compact amount sizing and a larger pad").
				Value(&Temp.POSMode),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Inbound capacity (sats)").
				Description("Amounts above this show a warning, empty to disable").
				Value(&Temp.Inbound).
				Validate(func(s string) error {
					_, err := parseInbound(s)
					return err
				}),

			huh.NewInput().
				Title("Receive address").
				Description("Used for payment request QR codes (Ctrl+v to paste)").
				Value(&Temp.Address).
				Placeholder("bc1…").
				Validate(units.ValidateAddress),
		),
	).WithTheme(huh.ThemeCatppuccin())

	form.Init()
	return form
}

// Render renders the settings view
func Render(form *huh.Form, errMsg string) string {
	h := styles.TitleStyle.Render("Settings")
	if form == nil {
		return h + "\n\n" + styles.MutedStyle.Render("Loading settings...")
	}
	out := h + "\n\n" + form.View()
	if errMsg != "" {
		out += "\n" + lipgloss.NewStyle().Foreground(styles.CError).Bold(true).Render(errMsg)
	}
	return out
}

// Nav returns the navigation bar for settings view
func Nav(width int) string {
	left := strings.Join([]string{
		styles.Key("Tab") + " next field",
		styles.Key("Enter") + " next/save",
		styles.Key("Esc") + " cancel",
	}, "   ")

	return styles.NavStyle.Width(width).Render(left)
}
