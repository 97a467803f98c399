package rsu

import (
	"testing"

	"github.com/shopspring/decimal"
)

func mustDecimal(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// mustPlan parses a plan in its compact form, see ParsePlan.
func mustPlan(t *testing.T, s string) VestingPlan {
	t.Helper()
	plan, err := ParsePlan(s)
	if err != nil {
		t.Fatalf("ParsePlan(%q) error = %v", s, err)
	}
	return plan
}
