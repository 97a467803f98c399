package rsu

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Currency is the only currency amounts are expressed in.
const Currency = money.USD

// Money represents a monetary value in USD.
type Money struct {
	value decimal.Decimal // as major unit value
}

func M[T number](value T) Money {
	return Money{value: newDecimal(value)}
}

// String returns the string representation of the money value, like "$1,234.50".
func (m Money) String() string {
	// to get a never nil currency I need to call the Money constructor
	cur := *money.New(0, Currency).Currency()
	dec := m.value.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(dec.IntPart())
}

// SignedString returns the string representation of the money value with a sign.
func (m Money) SignedString() string {
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

func (m Money) Equal(n Money) bool              { return m.value.Equal(n.value) }
func (m Money) IsZero() bool                    { return m.value.IsZero() }
func (m Money) IsPositive() bool                { return m.value.IsPositive() }
func (m Money) IsNegative() bool                { return m.value.IsNegative() }
func (m Money) LessThan(amount Money) bool      { return m.value.LessThan(amount.value) }
func (m Money) GreaterThan(n Money) bool        { return m.value.GreaterThan(n.value) }
func (m Money) GreaterThanOrEqual(n Money) bool { return m.value.GreaterThanOrEqual(n.value) }
func (m Money) Neg() Money                      { return Money{value: m.value.Neg()} }
func (m Money) Add(n Money) Money               { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money               { return Money{value: m.value.Sub(n.value)} }
func (m Money) Mul(n Quantity) Money            { return Money{value: m.value.Mul(n.value)} }
func (m Money) Round(places int32) Money        { return Money{value: m.value.Round(places)} }

// Rate returns m multiplied by a percentage rate.
func (m Money) Rate(p Percent) Money { return Money{value: m.value.Mul(p.value).Div(hundred)} }

// Ratio returns m as a percentage of total, zero when total is zero.
func (m Money) Ratio(total Money) Percent {
	if total.value.IsZero() {
		return Percent{}
	}
	return Percent{value: m.value.Div(total.value).Mul(hundred)}
}

// Text returns the exact decimal value, without currency formatting, e.g. "1234.5".
func (m Money) Text() string { return m.value.String() }

// Deprecated: AsFloat should only be used for display, the purpose is to keep the calculation exact.
func (m Money) AsFloat() float64 { return m.value.InexactFloat64() }

func (m Money) MarshalJSON() ([]byte, error) {
	return m.value.MarshalJSON()
}

func (m *Money) UnmarshalJSON(decimalBytes []byte) error {
	return m.value.UnmarshalJSON(decimalBytes)
}
