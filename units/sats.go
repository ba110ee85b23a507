package units

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ProcessSatsAmount prepares a sats amount for display with comma grouping.
// Grouping commas in the input are ignored. With showMsats the millisat
// decimals are kept, otherwise the amount is rounded half up to whole sats.
// showRounding is set when roundAmount is requested and rounding actually
// changed the value, so callers can prefix an approximation sign.
func ProcessSatsAmount(amount string, roundAmount, showMsats bool) (display string, showRounding bool) {
	return english.Sats(amount, roundAmount, showMsats)
}

// Sats is ProcessSatsAmount with the formatter's locale separators
func (f Formatter) Sats(amount string, roundAmount, showMsats bool) (display string, showRounding bool) {
	clean := strings.ReplaceAll(strings.TrimSpace(amount), ",", "")
	if showMsats {
		return f.Number(clean), false
	}

	value, err := decimal.NewFromString(clean)
	if err != nil {
		return f.Number(clean), false
	}
	rounded := value.Round(0)
	return f.Number(rounded.String()), roundAmount && !rounded.Equal(value)
}
