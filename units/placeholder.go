package units

import (
	"strings"

	"sats-keypad/keypad"
)

// DecimalPlaceholder returns the zeros that fill the fractional digits still
// available once a decimal point has been typed, and how many there are.
// Amounts without a point, or units without a decimal limit, get none.
func DecimalPlaceholder(amount string, u keypad.Unit, f keypad.FiatConfig) (string, int) {
	_, decimalPart, hasPoint := strings.Cut(amount, ".")
	if !hasPoint {
		return "", 0
	}
	limit, ok := keypad.DecimalLimit(u, f)
	if !ok {
		return "", 0
	}
	count := limit - len(decimalPart)
	if count <= 0 {
		return "", 0
	}
	return strings.Repeat("0", count), count
}
