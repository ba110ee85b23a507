// Package units formats keypad amounts for display and converts them between
// sats, BTC and fiat.
package units

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter renders amount strings with the grouping and decimal separator
// of a locale. The zero value is not usable, use NewFormatter.
type Formatter struct {
	tag     language.Tag
	printer *message.Printer
	decimal string
}

var english = NewFormatter("en")

// NewFormatter builds a formatter for a BCP 47 locale tag. Unknown or empty
// tags fall back to English.
func NewFormatter(locale string) Formatter {
	tag, err := language.Parse(strings.TrimSpace(locale))
	if err != nil {
		tag = language.English
	}
	p := message.NewPrinter(tag)

	// learn the decimal separator from a sample, the printer has no accessor
	sample := p.Sprint(number.Decimal(1234567.5, number.MinFractionDigits(1), number.MaxFractionDigits(1)))
	sep := "."
	if runs := separatorRuns(sample); len(runs) > 0 {
		sep = runs[len(runs)-1]
	}

	return Formatter{tag: tag, printer: p, decimal: sep}
}

// Locale returns the tag the formatter resolved to
func (f Formatter) Locale() string {
	return f.tag.String()
}

// DecimalSeparator returns the locale decimal separator
func (f Formatter) DecimalSeparator() string {
	return f.decimal
}

// Number groups the integer part of a plain amount string and swaps in the
// locale decimal separator. A trailing point is kept so partially typed
// amounts render as typed.
func (f Formatter) Number(amount string) string {
	integerPart, decimalPart, hasPoint := strings.Cut(amount, ".")
	out := f.group(integerPart)
	if hasPoint {
		out += f.decimal + decimalPart
	}
	return out
}

// Bitcoin formats a BTC amount with grouped integer digits and the
// fractional digits split 2-3-3 by spaces, e.g. 1.23 456 789.
func (f Formatter) Bitcoin(amount string) string {
	integerPart, decimalPart, hasPoint := strings.Cut(amount, ".")
	out := f.group(integerPart)
	if hasPoint {
		out += f.decimal + spaceFraction(decimalPart)
	}
	return out
}

func (f Formatter) group(integerPart string) string {
	n, err := strconv.ParseInt(integerPart, 10, 64)
	if err != nil || n < 0 {
		// beyond int64 or not a number: show it as typed
		return integerPart
	}
	return f.printer.Sprint(number.Decimal(n))
}

// NumberWithCommas groups an amount with commas and keeps the decimals as
// typed: 1234567.5 becomes 1,234,567.5.
func NumberWithCommas(amount string) string {
	return english.Number(amount)
}

// FormatBitcoinWithSpaces is Formatter.Bitcoin for the English locale
func FormatBitcoinWithSpaces(amount string) string {
	return english.Bitcoin(amount)
}

func spaceFraction(digits string) string {
	if len(digits) <= 2 {
		return digits
	}
	groups := []string{digits[:2]}
	for rest := digits[2:]; rest != ""; {
		n := min(3, len(rest))
		groups = append(groups, rest[:n])
		rest = rest[n:]
	}
	return strings.Join(groups, " ")
}

// separatorRuns returns the non-digit runs of a formatted number in order
func separatorRuns(s string) []string {
	var runs []string
	var cur strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			if cur.Len() > 0 {
				runs = append(runs, cur.String())
				cur.Reset()
			}
			continue
		}
		cur.WriteRune(r)
	}
	if cur.Len() > 0 {
		runs = append(runs, cur.String())
	}
	return runs
}
