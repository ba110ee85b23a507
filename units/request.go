package units

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/shopspring/decimal"
)

// ErrNoAddress is returned when a payment request has no receive address
var ErrNoAddress = errors.New("no receive address configured")

// PaymentURI builds a BIP21 bitcoin: URI requesting amt on address. The
// address must be a valid mainnet address. A zero amount is left out so the
// payer chooses.
func PaymentURI(address string, amt btcutil.Amount, label string) (string, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return "", ErrNoAddress
	}
	if err := ValidateAddress(address); err != nil {
		return "", err
	}

	q := url.Values{}
	if amt > 0 {
		q.Set("amount", decimal.NewFromInt(int64(amt)).Div(satsPerBTC).String())
	}
	if label != "" {
		q.Set("label", label)
	}

	uri := "bitcoin:" + address
	if len(q) > 0 {
		uri += "?" + q.Encode()
	}
	return uri, nil
}

// ValidateAddress checks that a receive address decodes on mainnet. An empty
// address is valid and means payment requests are disabled.
func ValidateAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return nil
	}
	if _, err := btcutil.DecodeAddress(address, &chaincfg.MainNetParams); err != nil {
		return fmt.Errorf("receive address %q: %w", address, err)
	}
	return nil
}
