package keypad

// Unit is the denomination the keypad amount is entered in
type Unit int

const (
	// Unrecognized covers any unit string the keypad has no rules for.
	// Decimal, integer and capacity limits are all skipped for it.
	Unrecognized Unit = iota
	Sats
	BTC
	Fiat
)

// String returns the canonical text for the unit, as stored in config
func (u Unit) String() string {
	switch u {
	case Sats:
		return "sats"
	case BTC:
		return "BTC"
	case Fiat:
		return "fiat"
	default:
		return "unknown"
	}
}

// ParseUnit maps a unit string onto a Unit. Only the canonical forms
// match; anything else is Unrecognized and gets no limits.
func ParseUnit(s string) Unit {
	switch s {
	case "sats":
		return Sats
	case "BTC":
		return BTC
	case "fiat":
		return Fiat
	}
	return Unrecognized
}

// Next returns the unit that follows u when cycling sats -> BTC -> fiat.
// Unrecognized units cycle back to sats.
func (u Unit) Next() Unit {
	switch u {
	case Sats:
		return BTC
	case BTC:
		return Fiat
	default:
		return Sats
	}
}
