package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// FileName is the config file created in the user's home directory
const FileName = ".sats-keypad-config.json"

// MaxHistory is how many confirmed amounts are remembered
const MaxHistory = 20

// Page identifies a top level view
type Page int

const (
	PageKeypad Page = iota
	PageHome
	PageSettings
	PageRequest
	PageHistory
)

// ClickableArea is a screen region registered during render for mouse support
type ClickableArea struct {
	X, Y          int
	Width, Height int
	// Key is the keypad key or action the area triggers
	Key string
}

// Contains reports whether the cell x,y falls inside the area
func (a ClickableArea) Contains(x, y int) bool {
	return x >= a.X && x < a.X+a.Width && y >= a.Y && y < a.Y+a.Height
}

// Config represents the application configuration
type Config struct {
	// Units is the entry unit: sats, BTC or fiat
	Units string `json:"units"`
	// Fiat is the ISO 4217 code used for the fiat unit
	Fiat   string `json:"fiat"`
	Locale string `json:"locale,omitempty"`
	// Rates maps fiat codes to the price of one BTC
	Rates     map[string]string `json:"rates"`
	ShowMsats bool              `json:"show_msats"`
	// POSMode switches the amount display to the compact font table
	POSMode bool `json:"pos_mode"`
	// InboundSats is the receivable capacity, 0 when unknown
	InboundSats int64 `json:"inbound_sats"`
	// Address receives payment requests
	Address string         `json:"address,omitempty"`
	Logger  bool           `json:"logger"`
	History []HistoryEntry `json:"history,omitempty"`
}

// HistoryEntry is a confirmed amount
type HistoryEntry struct {
	Amount string    `json:"amount"`
	Units  string    `json:"units"`
	Fiat   string    `json:"fiat,omitempty"`
	Sats   int64     `json:"sats"`
	At     time.Time `json:"at"`
}

// DefaultPath returns the config file path in the home directory
func DefaultPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return FileName
	}
	return filepath.Join(homeDir, FileName)
}

// Load reads the config from the specified path
func Load(path string) Config {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}
	}

	return cfg
}

// Save writes the config to the specified path
func Save(path string, cfg Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

// DefaultConfig returns a new configuration with sensible defaults
func DefaultConfig() Config {
	return Config{
		Units:  "sats",
		Fiat:   "USD",
		Locale: "en",
		Rates: map[string]string{
			"USD": "65000",
			"EUR": "60000",
			"GBP": "51000",
			"JPY": "9800000",
		},
		ShowMsats: false,
		Logger:    false,
	}
}

// LoadOrCreate loads config from path, or creates a default one if not found.
// A file that cannot be parsed degrades to the defaults.
func LoadOrCreate(path string) Config {
	if _, err := os.Stat(path); err != nil {
		// first run
		cfg := DefaultConfig()
		_ = Save(path, cfg)
		return cfg
	}

	cfg := Load(path)
	cfg.fillDefaults()
	return cfg
}

// fillDefaults restores fields a hand edited file left empty
func (c *Config) fillDefaults() {
	def := DefaultConfig()
	c.Units = CanonicalUnits(c.Units)
	if c.Units == "" {
		c.Units = def.Units
	}
	if c.Fiat == "" {
		c.Fiat = def.Fiat
	}
	if c.Rates == nil {
		c.Rates = def.Rates
	}
}

// CanonicalUnits spells a hand typed unit the way the keypad expects it
// ("btc" becomes "BTC", "sat" becomes "sats"). Unknown units are returned
// trimmed and otherwise unchanged.
func CanonicalUnits(s string) string {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "sats", "sat":
		return "sats"
	case "btc":
		return "BTC"
	case "fiat":
		return "fiat"
	}
	return s
}

// AddHistory records a confirmed amount, newest first, keeping MaxHistory
func (c *Config) AddHistory(e HistoryEntry) {
	c.History = append([]HistoryEntry{e}, c.History...)
	if len(c.History) > MaxHistory {
		c.History = c.History[:MaxHistory]
	}
}
