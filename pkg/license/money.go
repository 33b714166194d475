package license

import (
	"fmt"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Money represents a monetary amount in the smallest currency unit.
// For example, $49.00 USD is Amount: 4900, Currency: "USD".
type Money struct {
	Amount   int64  `json:"amount" yaml:"amount"`
	Currency string `json:"currency" yaml:"currency"`
}

var pricePrinter = message.NewPrinter(language.English)

// Validate checks that Currency is a known ISO 4217 code.
func (m Money) Validate() error {
	if _, err := currency.ParseISO(m.Currency); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidCurrency, m.Currency)
	}
	return nil
}

// Float64 returns the amount in major units.
func (m Money) Float64() float64 {
	return float64(m.Amount) / 100
}

func (m Money) String() string {
	return pricePrinter.Sprintf("%.2f %s", m.Float64(), m.Currency)
}
