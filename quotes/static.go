// Package quotes implements the price providers the grants are valued with.
package quotes

import (
	"context"

	"github.com/etnz/rsu"
)

// DefaultPrices are the prices served by Static, in USD.
var DefaultPrices = map[string]float64{
	"AAPL":  210,
	"GOOGL": 175,
	"AMZN":  180,
	"NFLX":  620,
	"META":  505,
	"MSFT":  460,
	"TSLA":  240,
	"NVDA":  1200,
}

// DefaultPrice is the price of symbols missing from DefaultPrices.
const DefaultPrice = 100

// Static serves fixed prices. It is the provider used when no quote service is configured.
type Static struct{}

func (Static) FetchCurrentPrices(ctx context.Context, symbols []string) (rsu.PriceMap, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	prices := make(rsu.PriceMap, len(symbols))
	for _, s := range symbols {
		p, ok := DefaultPrices[s]
		if !ok {
			p = DefaultPrice
		}
		prices[s] = rsu.M(p)
	}
	return prices, nil
}
