package fiat

import (
	"errors"
	"testing"

	"sats-keypad/keypad"
)

func TestLookup(t *testing.T) {
	t.Run("case insensitive", func(t *testing.T) {
		c, ok := Currencies.Lookup(" usd ")
		if !ok || c.Code != "USD" {
			t.Fatalf("Lookup(usd) = %+v, %v", c, ok)
		}
	})

	t.Run("unknown code", func(t *testing.T) {
		if _, ok := Currencies.Lookup("ZZZ"); ok {
			t.Fatal("unknown code found")
		}
	})

	t.Run("table keys match codes", func(t *testing.T) {
		for code, c := range Currencies {
			if c.Code != code {
				t.Errorf("entry %s has code %s", code, c.Code)
			}
			if c.Decimals != nil && (*c.Decimals < 0 || *c.Decimals > 3) {
				t.Errorf("%s has %d decimals", code, *c.Decimals)
			}
		}
	})
}

func TestDecimalPlaces(t *testing.T) {
	tests := []struct {
		code   string
		want   int
		wantOK bool
	}{
		{"USD", 2, true},
		{"JPY", 0, true},
		{"KWD", 3, true},
		{"XAU", 0, false},
		{"ZZZ", 0, false},
	}
	for _, tt := range tests {
		got, ok := Currencies.DecimalPlaces(tt.code)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("DecimalPlaces(%s) = %d, %v; want %d, %v", tt.code, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestTableAsKeypadLookup(t *testing.T) {
	tests := map[string]int{
		"USD": 2,
		"JPY": 0,
		"OMR": 3,
		"XAG": 2, // no metadata, keypad default
		"ZZZ": 2,
	}
	for code, want := range tests {
		f := keypad.FiatConfig{Code: code, Lookup: Currencies.DecimalPlaces}
		if got, _ := keypad.DecimalLimit(keypad.Fiat, f); got != want {
			t.Errorf("%s: limit = %d, want %d", code, got, want)
		}
	}

	jpy := keypad.FiatConfig{Code: "JPY", Lookup: Currencies.DecimalPlaces}
	if res := keypad.Validate("500", ".", keypad.Fiat, jpy); res.Valid {
		t.Error("JPY accepted a decimal point")
	}
}

func TestCodes(t *testing.T) {
	codes := Currencies.Codes()
	if len(codes) != len(Currencies) {
		t.Fatalf("got %d codes, want %d", len(codes), len(Currencies))
	}
	for i := 1; i < len(codes); i++ {
		if codes[i-1] >= codes[i] {
			t.Fatalf("codes not sorted at %d: %s >= %s", i, codes[i-1], codes[i])
		}
	}
}

func TestFormat(t *testing.T) {
	usd, _ := Currencies.Lookup("USD")
	if got := usd.Format("1,234.56"); got != "$1,234.56" {
		t.Errorf("USD format = %q", got)
	}
	eur, _ := Currencies.Lookup("EUR")
	if got := eur.Format("1.234,56"); got != "1.234,56 €" {
		t.Errorf("EUR format = %q", got)
	}
	if got := (Currency{}).Format("5"); got != "5" {
		t.Errorf("empty symbol format = %q", got)
	}
}

func TestParseRates(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		rates, err := ParseRates(map[string]string{"usd": "65000.50", "EUR": " 60000 "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		price, err := rates.Price("USD")
		if err != nil || price.String() != "65000.5" {
			t.Errorf("USD price = %s, %v", price, err)
		}
		if _, err := rates.Price("eur"); err != nil {
			t.Errorf("EUR price missing: %v", err)
		}
	})

	t.Run("invalid entries are skipped", func(t *testing.T) {
		rates, err := ParseRates(map[string]string{"USD": "65000", "EUR": "abc", "GBP": "-1", "JPY": "0"})
		if err == nil {
			t.Fatal("expected an error")
		}
		if len(rates) != 1 {
			t.Errorf("got %d rates, want 1", len(rates))
		}
	})

	t.Run("missing rate", func(t *testing.T) {
		_, err := Rates{}.Price("USD")
		if !errors.Is(err, ErrNoRate) {
			t.Errorf("err = %v, want ErrNoRate", err)
		}
	})

	t.Run("round trip strings", func(t *testing.T) {
		rates, _ := ParseRates(map[string]string{"USD": "65000.25"})
		if got := rates.Strings()["USD"]; got != "65000.25" {
			t.Errorf("got %q", got)
		}
	})
}

func TestPlaces(t *testing.T) {
	for code, want := range map[string]int{"USD": 2, "JPY": 0, "BHD": 3, "XAU": 2} {
		c, _ := Currencies.Lookup(code)
		if got := c.Places(); got != want {
			t.Errorf("%s places = %d, want %d", code, got, want)
		}
	}
}

func TestRateList(t *testing.T) {
	t.Run("format sorted", func(t *testing.T) {
		got := FormatRateList(map[string]string{"USD": "65000", "EUR": "60000"})
		if got != "EUR=60000 USD=65000" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("parse", func(t *testing.T) {
		got, err := ParseRateList("eur=60000, USD=65000.50;JPY=9800000")
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != 3 || got["EUR"] != "60000" || got["USD"] != "65000.5" {
			t.Errorf("got %v", got)
		}
	})

	t.Run("empty", func(t *testing.T) {
		got, err := ParseRateList("  ")
		if err != nil || len(got) != 0 {
			t.Errorf("got %v, %v", got, err)
		}
	})

	for _, bad := range []string{"USD", "USD=abc", "USD=-5", "=100"} {
		if _, err := ParseRateList(bad); err == nil {
			t.Errorf("ParseRateList(%q) accepted", bad)
		}
	}
}
