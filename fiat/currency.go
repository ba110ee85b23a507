// Package fiat describes the fiat currencies amounts can be entered in and
// the BTC exchange rates used to convert them.
package fiat

import (
	"sort"
	"strings"
)

// Currency holds the display properties of a fiat currency
type Currency struct {
	// Code is the ISO 4217 currency code (eg. USD)
	Code string `json:"code"`
	// Name is the display name (eg. US Dollar)
	Name string `json:"name"`
	// Symbol is prepended to amounts unless SymbolAfter is set
	Symbol string `json:"symbol"`
	// SymbolAfter renders the symbol after the amount, separated by a space
	SymbolAfter bool `json:"symbol_after,omitempty"`
	// Decimals is the number of fractional digits displayed. Nil means the
	// currency carries no decimal metadata and callers pick their default.
	Decimals *int `json:"decimals,omitempty"`
}

// Table maps upper case currency codes to their properties
type Table map[string]Currency

func places(n int) *int { return &n }

// Currencies is the built-in table. It is never modified after init.
var Currencies = Table{
	"USD": {Code: "USD", Name: "US Dollar", Symbol: "$", Decimals: places(2)},
	"EUR": {Code: "EUR", Name: "Euro", Symbol: "€", SymbolAfter: true, Decimals: places(2)},
	"GBP": {Code: "GBP", Name: "British Pound", Symbol: "£", Decimals: places(2)},
	"CAD": {Code: "CAD", Name: "Canadian Dollar", Symbol: "$", Decimals: places(2)},
	"AUD": {Code: "AUD", Name: "Australian Dollar", Symbol: "$", Decimals: places(2)},
	"NZD": {Code: "NZD", Name: "New Zealand Dollar", Symbol: "$", Decimals: places(2)},
	"CHF": {Code: "CHF", Name: "Swiss Franc", Symbol: "CHF", SymbolAfter: true, Decimals: places(2)},
	"SEK": {Code: "SEK", Name: "Swedish Krona", Symbol: "kr", SymbolAfter: true, Decimals: places(2)},
	"NOK": {Code: "NOK", Name: "Norwegian Krone", Symbol: "kr", SymbolAfter: true, Decimals: places(2)},
	"DKK": {Code: "DKK", Name: "Danish Krone", Symbol: "kr", SymbolAfter: true, Decimals: places(2)},
	"PLN": {Code: "PLN", Name: "Polish Zloty", Symbol: "zł", SymbolAfter: true, Decimals: places(2)},
	"CZK": {Code: "CZK", Name: "Czech Koruna", Symbol: "Kč", SymbolAfter: true, Decimals: places(2)},
	"HUF": {Code: "HUF", Name: "Hungarian Forint", Symbol: "Ft", SymbolAfter: true, Decimals: places(2)},
	"TRY": {Code: "TRY", Name: "Turkish Lira", Symbol: "₺", Decimals: places(2)},
	"BRL": {Code: "BRL", Name: "Brazilian Real", Symbol: "R$", Decimals: places(2)},
	"ARS": {Code: "ARS", Name: "Argentine Peso", Symbol: "$", Decimals: places(2)},
	"MXN": {Code: "MXN", Name: "Mexican Peso", Symbol: "$", Decimals: places(2)},
	"ZAR": {Code: "ZAR", Name: "South African Rand", Symbol: "R", Decimals: places(2)},
	"NGN": {Code: "NGN", Name: "Nigerian Naira", Symbol: "₦", Decimals: places(2)},
	"KES": {Code: "KES", Name: "Kenyan Shilling", Symbol: "KSh", Decimals: places(2)},
	"INR": {Code: "INR", Name: "Indian Rupee", Symbol: "₹", Decimals: places(2)},
	"CNY": {Code: "CNY", Name: "Chinese Yuan", Symbol: "¥", Decimals: places(2)},
	"HKD": {Code: "HKD", Name: "Hong Kong Dollar", Symbol: "$", Decimals: places(2)},
	"SGD": {Code: "SGD", Name: "Singapore Dollar", Symbol: "$", Decimals: places(2)},
	"THB": {Code: "THB", Name: "Thai Baht", Symbol: "฿", Decimals: places(2)},
	"PHP": {Code: "PHP", Name: "Philippine Peso", Symbol: "₱", Decimals: places(2)},
	"JPY": {Code: "JPY", Name: "Japanese Yen", Symbol: "¥", Decimals: places(0)},
	"KRW": {Code: "KRW", Name: "South Korean Won", Symbol: "₩", Decimals: places(0)},
	"CLP": {Code: "CLP", Name: "Chilean Peso", Symbol: "$", Decimals: places(0)},
	"VND": {Code: "VND", Name: "Vietnamese Dong", Symbol: "₫", SymbolAfter: true, Decimals: places(0)},
	"ISK": {Code: "ISK", Name: "Icelandic Krona", Symbol: "kr", SymbolAfter: true, Decimals: places(0)},
	"KWD": {Code: "KWD", Name: "Kuwaiti Dinar", Symbol: "KD", Decimals: places(3)},
	"BHD": {Code: "BHD", Name: "Bahraini Dinar", Symbol: "BD", Decimals: places(3)},
	"OMR": {Code: "OMR", Name: "Omani Rial", Symbol: "ر.ع.", SymbolAfter: true, Decimals: places(3)},
	// rates are published for these but there is no agreed display precision
	"XAU": {Code: "XAU", Name: "Gold (troy ounce)", Symbol: "XAU", SymbolAfter: true},
	"XAG": {Code: "XAG", Name: "Silver (troy ounce)", Symbol: "XAG", SymbolAfter: true},
}

// Lookup finds a currency by code, ignoring case and surrounding space
func (t Table) Lookup(code string) (Currency, bool) {
	c, ok := t[strings.ToUpper(strings.TrimSpace(code))]
	return c, ok
}

// DecimalPlaces reports the display precision of a currency. ok is false
// when the code is unknown or the currency has no decimal metadata.
// The method value satisfies keypad.CurrencyLookup.
func (t Table) DecimalPlaces(code string) (int, bool) {
	c, ok := t.Lookup(code)
	if !ok || c.Decimals == nil {
		return 0, false
	}
	return *c.Decimals, true
}

// Codes returns all currency codes in alphabetical order
func (t Table) Codes() []string {
	codes := make([]string, 0, len(t))
	for code := range t {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Format decorates an already formatted number with the currency symbol
func (c Currency) Format(number string) string {
	if c.Symbol == "" {
		return number
	}
	if c.SymbolAfter {
		return number + " " + c.Symbol
	}
	return c.Symbol + number
}

// Places returns the display precision, falling back to 2 when the currency
// has no decimal metadata
func (c Currency) Places() int {
	if c.Decimals == nil || *c.Decimals < 0 {
		return 2
	}
	return *c.Decimals
}
