package keypad

// FontOptions selects the sizing table for the amount display
type FontOptions struct {
	// Compact is the point-of-sale layout, where the pinpad leaves less room.
	// NeedInbound is ignored in compact mode.
	Compact bool
	// NeedInbound is set while an inbound capacity warning is on screen
	NeedInbound bool
}

// FontSize returns the point size used to render an amount of the given
// length plus its decimal placeholder digits.
func FontSize(amountLength, placeholderCount int, opts FontOptions) int {
	total := amountLength + placeholderCount

	if opts.Compact {
		switch total {
		case 1, 2:
			return 80
		case 3, 4:
			return 65
		case 5, 6:
			return 55
		case 7:
			return 50
		case 8:
			return 45
		default:
			return 35
		}
	}

	pick := func(regular, inbound int) int {
		if opts.NeedInbound {
			return inbound
		}
		return regular
	}

	switch total {
	case 1, 2, 3, 4:
		return pick(80, 70)
	case 5:
		return pick(75, 65)
	case 6:
		return pick(65, 60)
	case 7:
		return pick(60, 55)
	case 8:
		return pick(55, 50)
	case 9:
		return pick(50, 45)
	default:
		return pick(45, 40)
	}
}
