package units

import (
	"errors"
	"reflect"
	"testing"

	"sats-keypad/fiat"
	"sats-keypad/keypad"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/shopspring/decimal"
)

func TestConvert(t *testing.T) {
	price := decimal.NewFromInt(50000)

	t.Run("sats", func(t *testing.T) {
		c, err := Convert("100000", keypad.Sats, price)
		if err != nil {
			t.Fatal(err)
		}
		if c.BTC.String() != "0.001" || c.Fiat.StringFixed(2) != "50.00" || !c.HasFiat {
			t.Errorf("got %+v", c)
		}
	})

	t.Run("BTC", func(t *testing.T) {
		c, err := Convert("0.5", keypad.BTC, price)
		if err != nil {
			t.Fatal(err)
		}
		if c.Sats.String() != "50000000" || c.Fiat.String() != "25000" {
			t.Errorf("got sats %s fiat %s", c.Sats, c.Fiat)
		}
	})

	t.Run("fiat", func(t *testing.T) {
		c, err := Convert("25", keypad.Fiat, price)
		if err != nil {
			t.Fatal(err)
		}
		if c.BTC.String() != "0.0005" || c.Sats.String() != "50000" {
			t.Errorf("got BTC %s sats %s", c.BTC, c.Sats)
		}
	})

	t.Run("trailing point", func(t *testing.T) {
		c, err := Convert("12.", keypad.Sats, decimal.Zero)
		if err != nil {
			t.Fatal(err)
		}
		if c.Sats.String() != "12" || c.HasFiat {
			t.Errorf("got %+v", c)
		}
	})

	t.Run("fiat without price", func(t *testing.T) {
		if _, err := Convert("25", keypad.Fiat, decimal.Zero); !errors.Is(err, ErrNoPrice) {
			t.Errorf("err = %v, want ErrNoPrice", err)
		}
	})

	t.Run("unknown unit", func(t *testing.T) {
		if _, err := Convert("25", keypad.Unrecognized, price); !errors.Is(err, ErrUnknownUnit) {
			t.Errorf("err = %v, want ErrUnknownUnit", err)
		}
	})

	t.Run("bad amount", func(t *testing.T) {
		if _, err := Convert("1.2.3", keypad.Sats, price); err == nil {
			t.Error("expected an error")
		}
	})
}

func TestConversionAmount(t *testing.T) {
	c, _ := Convert("1234.5", keypad.Sats, decimal.Zero)
	if got := c.Amount(); got != btcutil.Amount(1235) {
		t.Errorf("Amount = %d, want 1235", got)
	}
}

func TestDescribe(t *testing.T) {
	usd, _ := fiat.Currencies.Lookup("USD")
	price := decimal.NewFromInt(50000)

	tests := []struct {
		name   string
		amount string
		unit   keypad.Unit
		price  decimal.Decimal
		want   []string
	}{
		{"from sats", "100000", keypad.Sats, price, []string{"0.00 100 000 BTC", "$50.00"}},
		{"from BTC", "0.001", keypad.BTC, price, []string{"100,000 sats", "$50.00"}},
		{"from fiat", "25", keypad.Fiat, price, []string{"50,000 sats", "0.00 050 000 BTC"}},
		{"rounded sats", "1", keypad.Fiat, decimal.NewFromInt(65000), []string{"≈1,538 sats", "0.00 001 538 BTC"}},
		{"no price", "100000", keypad.Sats, decimal.Zero, []string{"0.00 100 000 BTC"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Convert(tt.amount, tt.unit, tt.price)
			if err != nil {
				t.Fatal(err)
			}
			got := c.Describe(tt.unit, english, usd, false)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Describe = %q, want %q", got, tt.want)
			}
		})
	}
}
