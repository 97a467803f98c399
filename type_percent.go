package rsu

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Percent is a percentage, 100 meaning the whole.
type Percent struct {
	value decimal.Decimal
}

func P[T number](value T) Percent {
	return Percent{value: newDecimal(value)}
}

func (p Percent) Equal(q Percent) bool       { return p.value.Equal(q.value) }
func (p Percent) GreaterThan(q Percent) bool { return p.value.GreaterThan(q.value) }
func (p Percent) IsZero() bool               { return p.value.IsZero() }
func (p Percent) Add(q Percent) Percent      { return Percent{value: p.value.Add(q.value)} }
func (p Percent) Round(places int32) Percent { return Percent{value: p.value.Round(places)} }
func (p Percent) Float() float64             { return p.value.InexactFloat64() }

// Times returns p multiplied by n.
func (p Percent) Times(n int) Percent {
	return Percent{value: p.value.Mul(decimal.NewFromInt(int64(n)))}
}

// StringFixed formats p with exactly places decimals.
func (p Percent) StringFixed(places int32) string { return p.value.StringFixed(places) + "%" }

// Near reports whether p and q are closer than tolerance.
func (p Percent) Near(q Percent, tolerance float64) bool {
	return p.value.Sub(q.value).Abs().LessThan(decimal.NewFromFloat(tolerance))
}

func (p Percent) String() string { return p.value.StringFixed(2) + "%" }

func (p Percent) SignedString() string {
	if p.value.IsPositive() {
		return "+" + p.String()
	}
	return p.String()
}

func (p Percent) MarshalJSON() ([]byte, error) {
	return p.value.MarshalJSON()
}

func (p *Percent) UnmarshalJSON(decimalBytes []byte) error {
	return p.value.UnmarshalJSON(decimalBytes)
}
