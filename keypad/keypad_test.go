package keypad

import (
	"strings"
	"testing"
)

// lookupFor returns a currency lookup that always answers with the given
// decimal places, or never answers when places is negative.
func lookupFor(places int) CurrencyLookup {
	return func(code string) (int, bool) {
		if places < 0 {
			return 0, false
		}
		return places, true
	}
}

var usd = FiatConfig{Code: "USD", Lookup: lookupFor(2)}

func TestDecimalLimit(t *testing.T) {
	tests := []struct {
		name   string
		unit   Unit
		fiat   FiatConfig
		want   int
		wantOK bool
	}{
		{"sats", Sats, usd, 3, true},
		{"BTC", BTC, usd, 8, true},
		{"fiat from lookup", Fiat, usd, 2, true},
		{"zero decimal currency", Fiat, FiatConfig{Code: "JPY", Lookup: lookupFor(0)}, 0, true},
		{"three decimal currency", Fiat, FiatConfig{Code: "KWD", Lookup: lookupFor(3)}, 3, true},
		{"unknown currency defaults to 2", Fiat, FiatConfig{Code: "XXX", Lookup: lookupFor(-1)}, 2, true},
		{"nil lookup defaults to 2", Fiat, FiatConfig{Code: "USD"}, 2, true},
		{"unrecognized unit", Unrecognized, usd, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DecimalLimit(tt.unit, tt.fiat)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("limit = %d, want %d", got, tt.want)
			}
		})
	}

	t.Run("negative metadata degrades to default", func(t *testing.T) {
		bad := FiatConfig{Code: "BAD", Lookup: func(string) (int, bool) { return -4, true }}
		if got, _ := DecimalLimit(Fiat, bad); got != 2 {
			t.Errorf("limit = %d, want 2", got)
		}
	})

	t.Run("lookup receives configured code", func(t *testing.T) {
		var seen string
		f := FiatConfig{Code: "EUR", Lookup: func(code string) (int, bool) {
			seen = code
			return 2, true
		}}
		DecimalLimit(Fiat, f)
		if seen != "EUR" {
			t.Errorf("lookup called with %q, want EUR", seen)
		}
	})
}

func TestValidate(t *testing.T) {
	jpy := FiatConfig{Code: "JPY", Lookup: lookupFor(0)}

	tests := []struct {
		name      string
		current   string
		key       string
		unit      Unit
		fiat      FiatConfig
		wantValid bool
		want      string
	}{
		// basic input
		{"digit replaces zero", "0", "7", Sats, usd, true, "7"},
		{"appends digit", "12", "3", Sats, usd, true, "123"},
		{"decimal point", "5", ".", Sats, usd, true, "5."},
		{"decimal point on zero", "0", ".", Sats, usd, true, "0."},
		{"zero on zero stays zero", "0", "0", Sats, usd, true, "0"},

		// decimal limits
		{"sats decimal cap", "1.234", "5", Sats, usd, false, "1.234"},
		{"sats within decimal cap", "1.23", "4", Sats, usd, true, "1.234"},
		{"BTC decimal cap", "1.12345678", "9", BTC, usd, false, "1.12345678"},
		{"BTC within decimal cap", "1.1234567", "8", BTC, usd, true, "1.12345678"},
		{"fiat decimal cap", "10.99", "9", Fiat, usd, false, "10.99"},
		{"point at decimal cap still rejected", "10.99", ".", Fiat, usd, false, "10.99"},

		// decimal point rules
		{"second point", "1.5", ".", Sats, usd, false, "1.5"},
		{"second point after trailing point", "1.", ".", Sats, usd, false, "1."},
		{"zero decimal currency rejects point", "100", ".", Fiat, jpy, false, "100"},
		{"zero decimal currency accepts digit", "100", "0", Fiat, jpy, true, "1000"},

		// integer ceilings
		{"sats 13th digit", "123456789012", "3", Sats, usd, false, "123456789012"},
		{"sats point after 12 digits", "123456789012", ".", Sats, usd, true, "123456789012."},
		{"sats 12th digit", "12345678901", "2", Sats, usd, true, "123456789012"},
		{"BTC 9th digit", "12345678", "9", BTC, usd, false, "12345678"},
		{"BTC point after 8 digits", "12345678", ".", BTC, usd, true, "12345678."},
		{"BTC fraction after 8 digits", "12345678.", "1", BTC, usd, true, "12345678.1"},
		{"fiat 11th digit", "1234567890", "1", Fiat, usd, false, "1234567890"},
		{"fiat point after 10 digits", "1234567890", ".", Fiat, usd, true, "1234567890."},
		{"fiat fraction after 10 digits", "1234567890.", "1", Fiat, usd, true, "1234567890.1"},
		{"fiat 10th digit", "123456789", "0", Fiat, usd, true, "1234567890"},

		// capacity
		{"BTC over 21M", "21000000", "1", BTC, usd, false, "21000000"},
		{"BTC at 21M", "2100000", "0", BTC, usd, true, "21000000"},
		{"BTC fraction over 21M", "21000000.", "1", BTC, usd, false, "21000000."},
		{"BTC zero fraction at 21M", "21000000.", "0", BTC, usd, true, "21000000.0"},
		{"sats over supply", "2100000000000000", "1", Sats, usd, false, "2100000000000000"},
		{"sats 16th digit blocked by integer cap", "210000000000000", "0", Sats, usd, false, "210000000000000"},
		{"sats millisat over supply", "2100000000000000.", "1", Sats, usd, false, "2100000000000000."},

		// unrecognized unit
		{"unrecognized has no integer cap", "1234567890123456", "7", Unrecognized, usd, true, "12345678901234567"},
		{"unrecognized has no decimal cap", "1.123456789", "1", Unrecognized, usd, true, "1.1234567891"},
		{"unrecognized still one point", "1.1", ".", Unrecognized, usd, false, "1.1"},

		// bad keys
		{"letter", "12", "a", Sats, usd, false, "12"},
		{"empty key", "12", "", Sats, usd, false, "12"},
		{"multi char key", "12", "34", Sats, usd, false, "12"},
		{"raw comma", "12", ",", Sats, usd, false, "12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Validate(tt.current, tt.key, tt.unit, tt.fiat)
			if got.Valid != tt.wantValid || got.Amount != tt.want {
				t.Errorf("Validate(%q, %q, %s) = {%v, %q}, want {%v, %q}",
					tt.current, tt.key, tt.unit, got.Valid, got.Amount, tt.wantValid, tt.want)
			}
			if got.Valid && got.Reason != ReasonNone {
				t.Errorf("accepted keystroke carries reason %v", got.Reason)
			}
			if !got.Valid && got.Reason == ReasonNone {
				t.Error("rejected keystroke has no reason")
			}
		})
	}
}

func TestValidateReasons(t *testing.T) {
	tests := []struct {
		current, key string
		unit         Unit
		want         Reason
	}{
		{"1.234", "5", Sats, ReasonDecimalLimit},
		{"12345678", "9", BTC, ReasonIntegerLimit},
		{"1.5", ".", Sats, ReasonDecimalPoint},
		{"21000000", "1", BTC, ReasonCapacity},
		{"1", "x", BTC, ReasonBadKey},
	}
	for _, tt := range tests {
		if got := Validate(tt.current, tt.key, tt.unit, usd).Reason; got != tt.want {
			t.Errorf("Validate(%q, %q, %s) reason = %v, want %v", tt.current, tt.key, tt.unit, got, tt.want)
		}
	}
}

// TestValidateSequences types random-ish key sequences and checks the
// invariants that must hold after every accepted or rejected keystroke.
func TestValidateSequences(t *testing.T) {
	keys := []string{"0", "1", "2", "5", "9", ".", "3", ".", "7", "8", "0", "4", "6", "."}
	fiats := map[string]FiatConfig{
		"USD": usd,
		"JPY": {Code: "JPY", Lookup: lookupFor(0)},
		"KWD": {Code: "KWD", Lookup: lookupFor(3)},
	}

	for _, u := range []Unit{Sats, BTC, Fiat, Unrecognized} {
		for code, f := range fiats {
			t.Run(u.String()+"/"+code, func(t *testing.T) {
				for offset := range keys {
					amount := Zero
					for i := 0; i < 40; i++ {
						key := keys[(offset+i*5)%len(keys)]
						res := Validate(amount, key, u, f)
						if !res.Valid && res.Amount != amount {
							t.Fatalf("rejection changed %q to %q", amount, res.Amount)
						}
						if strings.Count(res.Amount, ".") > 1 {
							t.Fatalf("amount %q has more than one point", res.Amount)
						}
						if u == Fiat && code == "JPY" && strings.Contains(res.Amount, ".") {
							t.Fatalf("zero decimal currency produced %q", res.Amount)
						}
						if limit, ok := DecimalLimit(u, f); ok {
							if _, frac, _ := strings.Cut(res.Amount, "."); len(frac) > limit {
								t.Fatalf("amount %q exceeds %d decimals", res.Amount, limit)
							}
						}
						amount = res.Amount
					}
				}
			})
		}
	}
}

func TestExceedsSupply(t *testing.T) {
	tests := []struct {
		amount string
		unit   Unit
		want   bool
	}{
		{"21000000", BTC, false},
		{"21000000.00000000", BTC, false},
		{"21000000.00000001", BTC, true},
		{"21000001", BTC, true},
		{"2100000000000000", Sats, false},
		{"2100000000000000.", Sats, false},
		{"2100000000000000.001", Sats, true},
		{"2100000000000001", Sats, true},
		{"99999999999999999999", Fiat, false},
		{"99999999999999999999", Unrecognized, false},
		{".", Sats, false},
		{"1.2.3", BTC, false},
	}
	for _, tt := range tests {
		if got := exceedsSupply(tt.amount, tt.unit); got != tt.want {
			t.Errorf("exceedsSupply(%q, %s) = %v, want %v", tt.amount, tt.unit, got, tt.want)
		}
	}
}

func TestDeleteLast(t *testing.T) {
	tests := map[string]string{
		"5":     "0",
		"0":     "0",
		"":      "0",
		"123":   "12",
		"10":    "1",
		"1.5":   "1.",
		"1.":    "1",
		"12.34": "12.3",
		"0.1":   "0.",
	}
	for in, want := range tests {
		if got := DeleteLast(in); got != want {
			t.Errorf("DeleteLast(%q) = %q, want %q", in, got, want)
		}
	}

	t.Run("repeated delete settles on zero", func(t *testing.T) {
		amount := "2100000000000000.123"
		n := len(amount) + 3
		for i := 0; i < n; i++ {
			amount = DeleteLast(amount)
		}
		if amount != Zero {
			t.Fatalf("got %q, want %q", amount, Zero)
		}
		if DeleteLast(amount) != Zero {
			t.Fatal("delete on zero left zero state")
		}
	})
}

func TestNormalizeKey(t *testing.T) {
	tests := map[string]string{
		",": ".",
		".": ".",
		"７": "7",
		"0": "0",
		"a": "a",
	}
	for in, want := range tests {
		if got := NormalizeKey(in); got != want {
			t.Errorf("NormalizeKey(%q) = %q, want %q", in, got, want)
		}
	}

	res := Validate("12", NormalizeKey(","), Fiat, usd)
	if !res.Valid || res.Amount != "12." {
		t.Errorf("comma separator not accepted as decimal point: %+v", res)
	}
}
