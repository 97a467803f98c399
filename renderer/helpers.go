package renderer

import (
	"maps"
	"slices"

	"github.com/etnz/rsu"
)

// ShortID returns the prefix of a grant ID that is displayed, and accepted by the CLI.
func ShortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// companyLabel returns the catalog label of symbol, or symbol itself.
func companyLabel(symbol string) string {
	if c, ok := rsu.LookupCompany(symbol); ok {
		return c.Label()
	}
	return symbol
}

func sortedSymbols(prices rsu.PriceMap) []string {
	return slices.Sorted(maps.Keys(prices))
}

var hintText = map[rsu.Hint]string{
	rsu.HintHigh:   "Consider selling to reduce risk (High concentration)",
	rsu.HintMedium: "Partial sell could diversify (Medium concentration)",
	rsu.HintLow:    "Holding looks reasonable (Low concentration)",
}
