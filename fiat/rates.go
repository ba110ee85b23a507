package fiat

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrNoRate is returned when a currency has no usable BTC price
var ErrNoRate = errors.New("no exchange rate")

// Rates holds the price of one BTC in each fiat currency
type Rates map[string]decimal.Decimal

// ParseRates converts the textual prices from the config file. Entries that
// fail to parse or are not positive are skipped and reported together in
// the returned error; the valid entries are still returned.
func ParseRates(raw map[string]string) (Rates, error) {
	rates := make(Rates, len(raw))
	var errs []error
	for code, text := range raw {
		code = strings.ToUpper(strings.TrimSpace(code))
		price, err := decimal.NewFromString(strings.TrimSpace(text))
		if err != nil {
			errs = append(errs, fmt.Errorf("rate %s: %w", code, err))
			continue
		}
		if !price.IsPositive() {
			errs = append(errs, fmt.Errorf("rate %s: price %s is not positive", code, price))
			continue
		}
		rates[code] = price
	}
	return rates, errors.Join(errs...)
}

// Price returns the BTC price in the given currency
func (r Rates) Price(code string) (decimal.Decimal, error) {
	price, ok := r[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return decimal.Zero, fmt.Errorf("%s: %w", code, ErrNoRate)
	}
	return price, nil
}

// Strings converts rates back to their config file form
func (r Rates) Strings() map[string]string {
	out := make(map[string]string, len(r))
	for code, price := range r {
		out[code] = price.String()
	}
	return out
}

// FormatRateList renders config rates as "EUR=60000 USD=65000" sorted by code
func FormatRateList(raw map[string]string) string {
	codes := make([]string, 0, len(raw))
	for code := range raw {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	parts := make([]string, len(codes))
	for i, code := range codes {
		parts[i] = code + "=" + raw[code]
	}
	return strings.Join(parts, " ")
}

// ParseRateList reads the FormatRateList form back. Entries may be separated
// by spaces or commas. Every entry must carry a positive price.
func ParseRateList(s string) (map[string]string, error) {
	out := map[string]string{}
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ' ' || r == ',' || r == ';' })
	for _, field := range fields {
		code, text, ok := strings.Cut(field, "=")
		code = strings.ToUpper(strings.TrimSpace(code))
		if !ok || code == "" {
			return nil, fmt.Errorf("rate %q: want CODE=PRICE", field)
		}
		price, err := decimal.NewFromString(strings.TrimSpace(text))
		if err != nil {
			return nil, fmt.Errorf("rate %s: %w", code, err)
		}
		if !price.IsPositive() {
			return nil, fmt.Errorf("rate %s: price %s is not positive", code, price)
		}
		out[code] = price.String()
	}
	return out, nil
}
