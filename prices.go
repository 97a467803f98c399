package rsu

import (
	"context"
	"maps"
)

// PriceMap is a snapshot of the current price per ticker symbol.
type PriceMap map[string]Money

// Price returns the price of symbol, zero if unknown.
func (m PriceMap) Price(symbol string) Money { return m[symbol] }

// Clone returns a copy of m.
func (m PriceMap) Clone() PriceMap { return maps.Clone(m) }

// PriceProvider fetches current prices.
//
// Retries, caching and rate limiting are the provider's concern.
type PriceProvider interface {
	FetchCurrentPrices(ctx context.Context, symbols []string) (PriceMap, error)
}
