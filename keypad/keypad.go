// Package keypad holds the validation rules for amounts typed on the
// wallet's numeric keypad. Every function is pure: callers own the running
// amount string and feed it back in on each keystroke.
package keypad

import (
	"strings"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/shopspring/decimal"
)

// Zero is the canonical empty amount
const Zero = "0"

// Integer digit ceilings per unit
const (
	btcIntegerDigits  = 8
	satsIntegerDigits = 12
	fiatIntegerDigits = 10
)

// defaultFiatDecimals is used when the currency lookup has no answer
const defaultFiatDecimals = 2

var (
	// maxSats is the total supply expressed in sats (2,100,000,000,000,000)
	maxSats = decimal.NewFromInt(btcutil.MaxSatoshi)
	// maxBTC is the total supply in whole coins (21,000,000)
	maxBTC = decimal.NewFromInt(btcutil.MaxSatoshi / btcutil.SatoshiPerBitcoin)
)

// CurrencyLookup reports how many decimal places a fiat currency displays.
// ok is false when the code is unknown or has no decimal metadata.
type CurrencyLookup func(code string) (decimalPlaces int, ok bool)

// FiatConfig couples the configured fiat currency code with the lookup that
// describes it. The zero value resolves to the default of 2 decimals.
type FiatConfig struct {
	Code   string
	Lookup CurrencyLookup
}

// Reason explains why a keystroke was rejected
type Reason int

const (
	ReasonNone Reason = iota
	ReasonBadKey
	ReasonDecimalLimit
	ReasonIntegerLimit
	ReasonDecimalPoint
	ReasonCapacity
)

func (r Reason) String() string {
	switch r {
	case ReasonBadKey:
		return "not a keypad key"
	case ReasonDecimalLimit:
		return "decimal places exhausted"
	case ReasonIntegerLimit:
		return "too many integer digits"
	case ReasonDecimalPoint:
		return "decimal point not allowed"
	case ReasonCapacity:
		return "exceeds total supply"
	default:
		return ""
	}
}

// Result is the outcome of one keystroke. Amount is always safe to store as
// the new state: on rejection it is the unchanged input.
type Result struct {
	Valid  bool
	Amount string
	Reason Reason
}

// DecimalLimit returns the maximum number of fractional digits for the unit.
// ok is false for unrecognized units, meaning no limit applies.
func DecimalLimit(u Unit, f FiatConfig) (limit int, ok bool) {
	switch u {
	case Sats:
		// millisats expressed as fractional sats
		return 3, true
	case BTC:
		return 8, true
	case Fiat:
		if f.Lookup != nil {
			if places, found := f.Lookup(f.Code); found && places >= 0 {
				return places, true
			}
		}
		return defaultFiatDecimals, true
	default:
		return 0, false
	}
}

// Validate applies a single keystroke to the current amount.
// key must be one digit or "."; use NormalizeKey first for raw key input.
func Validate(current, key string, u Unit, f FiatConfig) Result {
	reject := func(r Reason) Result {
		return Result{Valid: false, Amount: current, Reason: r}
	}

	if !isKeypadKey(key) {
		return reject(ReasonBadKey)
	}

	limit, hasLimit := DecimalLimit(u, f)
	integerPart, decimalPart, hasPoint := strings.Cut(current, ".")

	if decimalPart != "" && hasLimit && len(decimalPart) >= limit {
		return reject(ReasonDecimalLimit)
	}

	if !hasPoint && key != "." && integerPart != "" {
		switch u {
		case BTC:
			if len(integerPart) == btcIntegerDigits {
				return reject(ReasonIntegerLimit)
			}
		case Sats:
			if len(integerPart) >= satsIntegerDigits {
				return reject(ReasonIntegerLimit)
			}
		case Fiat:
			if len(integerPart) >= fiatIntegerDigits {
				return reject(ReasonIntegerLimit)
			}
		}
	}

	if key == "." && (hasPoint || (hasLimit && limit == 0)) {
		return reject(ReasonDecimalPoint)
	}

	candidate := current + key
	if exceedsSupply(candidate, u) {
		return reject(ReasonCapacity)
	}

	if current == Zero {
		if key == "." {
			return Result{Valid: true, Amount: "0."}
		}
		return Result{Valid: true, Amount: key}
	}
	return Result{Valid: true, Amount: candidate}
}

// exceedsSupply reports whether the amount is above the total bitcoin
// supply for the unit. Amounts that do not parse are never over supply.
func exceedsSupply(amount string, u Unit) bool {
	var limit decimal.Decimal
	switch u {
	case BTC:
		limit = maxBTC
	case Sats:
		limit = maxSats
	default:
		return false
	}

	// a trailing point does not change the value
	value, err := decimal.NewFromString(strings.TrimSuffix(amount, "."))
	if err != nil {
		return false
	}
	return value.GreaterThan(limit)
}

func isKeypadKey(key string) bool {
	if len(key) != 1 {
		return false
	}
	c := key[0]
	return c == '.' || (c >= '0' && c <= '9')
}

// NormalizeKey maps raw key input onto keypad keys. Comma decimal
// separators become "." and numpad/fullwidth digits become ASCII.
// Anything else is returned unchanged and will be rejected by Validate.
func NormalizeKey(key string) string {
	switch key {
	case ",", "٫", "，", "．":
		return "."
	}
	r := []rune(key)
	if len(r) == 1 && r[0] >= '０' && r[0] <= '９' {
		return string('0' + (r[0] - '０'))
	}
	return key
}

// DeleteLast removes the final character of the amount. A one character
// amount (or an empty one) collapses to "0". A trailing decimal point is a
// legitimate result, e.g. "1.5" becomes "1.".
func DeleteLast(amount string) string {
	if len(amount) <= 1 {
		return Zero
	}
	return amount[:len(amount)-1]
}
