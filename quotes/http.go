package quotes

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/rsu"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// HTTP fetches prices from a JSON quote service, one request per symbol.
type HTTP struct {
	// URL is the address of the quote of one symbol. "{symbol}" and "{apikey}"
	// are replaced by the symbol and APIKey.
	URL    string
	APIKey string
	// Path is the JSONPath of the price in the response, e.g. "$.close".
	Path string
	// Parallel bounds the number of concurrent requests, 4 if zero.
	Parallel int

	client *http.Client
}

// NewHTTP returns an HTTP provider. Responses are cached for the day in cacheDir,
// unless it is empty.
func NewHTTP(addr, apiKey, path, cacheDir string) *HTTP {
	h := &HTTP{URL: addr, APIKey: apiKey, Path: path, client: new(http.Client)}
	if cacheDir != "" {
		h.client = &http.Client{Transport: newDayCache(cacheDir)}
	}
	return h
}

// FetchCurrentPrices fetches all symbols concurrently. It fails if any symbol fails.
func (h *HTTP) FetchCurrentPrices(ctx context.Context, symbols []string) (rsu.PriceMap, error) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(h.parallel())

	var mu sync.Mutex
	prices := make(rsu.PriceMap, len(symbols))
	for _, symbol := range symbols {
		g.Go(func() error {
			price, err := h.price(ctx, symbol)
			if err != nil {
				return fmt.Errorf("cannot fetch price of %s: %w", symbol, err)
			}
			mu.Lock()
			prices[symbol] = price
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	log.WithField("symbols", len(prices)).Info("prices fetched")
	return prices, nil
}

func (h *HTTP) parallel() int {
	if h.Parallel <= 0 {
		return 4
	}
	return h.Parallel
}

func (h *HTTP) price(ctx context.Context, symbol string) (rsu.Money, error) {
	addr := strings.NewReplacer(
		"{symbol}", url.PathEscape(symbol),
		"{apikey}", url.QueryEscape(h.APIKey),
	).Replace(h.URL)

	client := h.client
	if client == nil {
		client = new(http.Client)
	}
	var jobj any
	if err := getJSON(ctx, client, addr, &jobj); err != nil {
		return rsu.Money{}, err
	}
	jval, err := jsonpath.Get(h.Path, jobj)
	if err != nil {
		return rsu.Money{}, fmt.Errorf("error parsing %q: %w", h.Path, err)
	}
	// jsonpath returns either a single answer or a list of answers: keep the first one.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}

	var price rsu.Money
	switch v := jval.(type) {
	case float64:
		price = rsu.M(v)
	case string:
		// some services return prices as strings
		d, err := rsu.ParseDecimal(rsu.SanitizeDecimal(v, -1))
		if err != nil {
			return rsu.Money{}, fmt.Errorf("invalid price %q at %q: %w", v, h.Path, err)
		}
		price = rsu.M(d)
	default:
		return rsu.Money{}, fmt.Errorf("no price at %q: got %v", h.Path, jval)
	}
	if !price.IsPositive() {
		return rsu.Money{}, fmt.Errorf("no price at %q: got %v", h.Path, price)
	}
	return price, nil
}

// getJSON decodes the JSON body of a GET on addr into data. Non 2xx responses are errors.
func getJSON(ctx context.Context, client *http.Client, addr string, data any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return err
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("GET %s%s: %s", req.URL.Host, req.URL.Path, resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(data); err != nil {
		return fmt.Errorf("GET %s%s: invalid JSON: %w", req.URL.Host, req.URL.Path, err)
	}
	return nil
}
