package config

import (
	"errors"
	"strings"

	flags "github.com/jessevdk/go-flags"
)

// Options are the command line flags. Set flags override the config file.
type Options struct {
	ConfigPath string `long:"config" description:"Path to the config file (default ~/.sats-keypad-config.json)"`
	Units      string `short:"u" long:"units" description:"Entry unit" choice:"sats" choice:"BTC" choice:"fiat"`
	Fiat       string `short:"f" long:"fiat" description:"Fiat currency code, e.g. EUR"`
	Amount     string `short:"a" long:"amount" description:"Initial amount"`
	POS        bool   `long:"pos" description:"Point of sale layout with compact amount sizing"`
	Locale     string `long:"locale" description:"Locale for number separators, e.g. de-DE"`
	Log        bool   `long:"log" description:"Open with the log panel enabled"`
}

// ParseFlags parses args (without the program name). Help requests surface
// as a *flags.Error with Type flags.ErrHelp.
func ParseFlags(args []string) (Options, error) {
	var opts Options
	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = "sats-keypad"
	if _, err := parser.ParseArgs(args); err != nil {
		return Options{}, err
	}
	return opts, nil
}

// IsHelp reports whether err is the result of -h/--help
func IsHelp(err error) bool {
	var flagsErr *flags.Error
	return errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp
}

// Path returns the config path to use
func (o Options) Path() string {
	if o.ConfigPath != "" {
		return o.ConfigPath
	}
	return DefaultPath()
}

// Apply overlays the set flags onto cfg
func (o Options) Apply(cfg *Config) {
	if o.Units != "" {
		cfg.Units = o.Units
	}
	if o.Fiat != "" {
		cfg.Fiat = strings.ToUpper(strings.TrimSpace(o.Fiat))
	}
	if o.Locale != "" {
		cfg.Locale = o.Locale
	}
	if o.POS {
		cfg.POSMode = true
	}
	if o.Log {
		cfg.Logger = true
	}
}
