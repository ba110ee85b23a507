package units

import (
	"errors"
	"fmt"
	"strings"

	"sats-keypad/fiat"
	"sats-keypad/keypad"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/shopspring/decimal"
)

var (
	// ErrNoPrice is returned when a fiat amount is converted without a price
	ErrNoPrice = errors.New("no BTC price for fiat conversion")
	// ErrUnknownUnit is returned for amounts in an unrecognized unit
	ErrUnknownUnit = errors.New("unknown unit")
)

var satsPerBTC = decimal.NewFromInt(btcutil.SatoshiPerBitcoin)

// Conversion is one amount expressed in every unit
type Conversion struct {
	Sats decimal.Decimal
	BTC  decimal.Decimal
	Fiat decimal.Decimal
	// HasFiat is false when no price was available
	HasFiat bool
}

// Convert parses a keypad amount in unit u and expresses it in the other
// units. price is the value of one BTC in the configured fiat currency; a
// zero price leaves the fiat side empty, which is an error only when the
// amount itself is fiat.
func Convert(amount string, u keypad.Unit, price decimal.Decimal) (Conversion, error) {
	value, err := decimal.NewFromString(strings.TrimSuffix(amount, "."))
	if err != nil {
		return Conversion{}, fmt.Errorf("parse amount %q: %w", amount, err)
	}

	var c Conversion
	switch u {
	case keypad.Sats:
		c.Sats = value
		c.BTC = value.Div(satsPerBTC)
	case keypad.BTC:
		c.BTC = value
		c.Sats = value.Mul(satsPerBTC)
	case keypad.Fiat:
		if !price.IsPositive() {
			return Conversion{}, ErrNoPrice
		}
		c.Fiat = value
		c.HasFiat = true
		c.BTC = value.Div(price).Round(11)
		// millisat precision
		c.Sats = c.BTC.Mul(satsPerBTC).Round(3)
		return c, nil
	default:
		return Conversion{}, fmt.Errorf("convert %q: %w", amount, ErrUnknownUnit)
	}

	if price.IsPositive() {
		c.Fiat = c.BTC.Mul(price)
		c.HasFiat = true
	}
	return c, nil
}

// Amount returns the conversion rounded to whole sats
func (c Conversion) Amount() btcutil.Amount {
	return btcutil.Amount(c.Sats.Round(0).IntPart())
}

// Describe renders the conversion in every unit except the one it was
// typed in. Sats respect the millisat display setting.
func (c Conversion) Describe(u keypad.Unit, f Formatter, cur fiat.Currency, showMsats bool) []string {
	var out []string
	if u != keypad.Sats {
		sats, rounded := f.Sats(c.Sats.Round(3).String(), true, showMsats)
		if rounded {
			sats = "≈" + sats
		}
		out = append(out, sats+" sats")
	}
	if u != keypad.BTC {
		out = append(out, f.Bitcoin(c.BTC.StringFixed(8))+" BTC")
	}
	if u != keypad.Fiat && c.HasFiat {
		out = append(out, cur.Format(f.Number(c.Fiat.StringFixed(int32(cur.Places())))))
	}
	return out
}
