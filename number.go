package rsu

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	// ErrNoValue is returned by ParseDecimal for an empty input or a lone decimal point.
	ErrNoValue = errors.New("no value")
	// ErrNotANumber is returned by ParseDecimal when the input is not a finite decimal number.
	ErrNotANumber = errors.New("not a number")
)

// SanitizeDecimal reduces free-text input to digits and at most one decimal point.
//
// Only the first dot is kept, later dots are dropped, and decimals are truncated
// (not rounded) to maxDecimals. A negative maxDecimals keeps all decimals.
func SanitizeDecimal(input string, maxDecimals int) string {
	var b strings.Builder
	b.Grow(len(input))
	dot := false
	decimals := 0
	for i := 0; i < len(input); i++ {
		c := input[i]
		switch {
		case c >= '0' && c <= '9':
			if dot {
				if maxDecimals >= 0 && decimals >= maxDecimals {
					continue
				}
				decimals++
			}
			b.WriteByte(c)
		case c == '.' && !dot:
			dot = true
			b.WriteByte(c)
		}
	}
	return b.String()
}

// ParseDecimal converts a sanitized string into a decimal.
func ParseDecimal(s string) (decimal.Decimal, error) {
	if s == "" || s == "." {
		return decimal.Decimal{}, ErrNoValue
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, ErrNotANumber
	}
	return d, nil
}
