package compound

import (
	"fmt"
	"math"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value in a given currency.
//
// Simulated values are float64, Money is only used to present them.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
	// non-finite values cannot be represented by a decimal, they are kept as text.
	invalid string
}

// M returns the Money for value in currency.
func M(value float64, currency string) Money {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Money{cur: currency, invalid: fmt.Sprintf("%.2f", value)}
	}
	return Money{value: decimal.NewFromFloat(value), cur: currency}
}

// IsCurrency reports whether code is a known ISO currency code.
func IsCurrency(code string) bool { return money.GetCurrency(code) != nil }

// currency returns the money's currency
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// String returns the value formatted for its currency, e.g. "$1,200.00".
func (m Money) String() string {
	if m.invalid != "" {
		return m.invalid
	}
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(dec.IntPart())
}

// Fixed returns the value with exactly two decimals and no currency symbol.
func (m Money) Fixed() string {
	if m.invalid != "" {
		return m.invalid
	}
	return m.value.StringFixed(2)
}

func (m Money) Currency() string { return m.cur }
func (m Money) IsValid() bool    { return m.invalid == "" }
func (m Money) Equal(n Money) bool {
	return m.value.Equal(n.value) && m.cur == n.cur && m.invalid == n.invalid
}
