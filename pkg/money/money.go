package money

import (
	"github.com/shopspring/decimal"
)

// Money represents a monetary amount with proper financial precision.
// Arithmetic and comparisons come from the embedded decimal; this wrapper
// adds parsing, money-specific rounding, and currency formatting.
type Money struct {
	decimal.Decimal
}

// New creates a new Money instance from a float64
func New(value float64) Money {
	return Money{decimal.NewFromFloat(value)}
}

// NewFromInt creates a new Money instance from an int64
func NewFromInt(value int64) Money {
	return Money{decimal.NewFromInt(value)}
}

// NewFromDecimal creates a new Money instance from a decimal.Decimal
func NewFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// NewFromString creates a new Money instance from a string
func NewFromString(value string) (Money, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, err
	}
	return Money{d}, nil
}

// Round rounds the money amount to cents, halves away from zero
func (m Money) Round() Money {
	return Money{m.Decimal.Round(2)}
}

// RoundDollar rounds the money amount to the nearest whole currency unit
func (m Money) RoundDollar() Money {
	return Money{m.Decimal.Round(0)}
}

// String returns the string representation with proper formatting
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Format formats the money amount with cents
func (m Money) Format() string {
	return "$" + m.String()
}

// FormatDollar formats the money amount rounded to whole currency units
func (m Money) FormatDollar() string {
	return "$" + m.Decimal.Round(0).StringFixed(0)
}
