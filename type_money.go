package breakeven

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// ReportingCurrency is the currency used to display monetary values.
// The backup stores bare numbers, so a single reporting currency applies
// to the whole analysis.
const ReportingCurrency = "USD"

// Money represents a monetary value in the reporting currency.
type Money struct {
	value decimal.Decimal
}

func M[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64](value T) Money {
	return Money{value: decimal.NewFromFloat(float64(value))}
}

// MoneyFromDecimal wraps an exact decimal amount.
func MoneyFromDecimal(value decimal.Decimal) Money {
	return Money{value: value}
}

// currency returns the full reporting currency metadata.
func (m Money) currency() money.Currency {
	// to get a never nil currency we go through the Money constructor
	return *money.New(0, ReportingCurrency).Currency()
}

// String returns the value formatted with the reporting currency rules.
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.Round(0).IntPart())
}

func (m Money) Equal(n Money) bool              { return m.value.Equal(n.value) }
func (m Money) IsZero() bool                    { return m.value.IsZero() }
func (m Money) IsPositive() bool                { return m.value.IsPositive() }
func (m Money) IsNegative() bool                { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool           { return m.value.LessThan(n.value) }
func (m Money) GreaterThanOrEqual(n Money) bool { return m.value.GreaterThanOrEqual(n.value) }
func (m Money) Neg() Money                      { return Money{value: m.value.Neg()} }

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value)} }

// MulInt scales the amount by a unit count (e.g. stock x unit price).
func (m Money) MulInt(n int64) Money {
	return Money{value: m.value.Mul(decimal.NewFromInt(n))}
}

// DivFloat divides the amount by a scalar rate.
func (m Money) DivFloat(f float64) Money {
	return Money{value: m.value.Div(decimal.NewFromFloat(f))}
}

// AsFloat converts to float64 for ratio computations only; sums stay exact.
func (m Money) AsFloat() float64 { return m.value.InexactFloat64() }

// SignedString returns the string representation of the money value with an
// explicit sign. Zero is represented as "-".
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

type Percent float64

func (p Percent) String() string {
	return fmt.Sprintf("%.1f%%", float64(p))
}

func (p Percent) SignedString() string {
	return fmt.Sprintf("%+.1f%%", float64(p))
}
