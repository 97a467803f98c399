package quotes

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/etnz/rsu"
	"github.com/etnz/rsu/date"
)

func TestStatic(t *testing.T) {
	prices, err := Static{}.FetchCurrentPrices(context.Background(), []string{"AAPL", "NVDA", "ACME"})
	if err != nil {
		t.Fatalf("FetchCurrentPrices() error = %v", err)
	}
	want := map[string]float64{"AAPL": 210, "NVDA": 1200, "ACME": 100}
	for symbol, p := range want {
		if got := prices.Price(symbol); !got.Equal(rsu.M(p)) {
			t.Errorf("price of %s = %v, want %v", symbol, got, p)
		}
	}
}

// quoteServer serves {"data":{"close":...}} for /quote/<symbol>, and counts the requests.
func quoteServer(t *testing.T, prices map[string]string, hits *atomic.Int32) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if r.URL.Query().Get("token") != "secret" {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}
		p, ok := prices[strings.TrimPrefix(r.URL.Path, "/quote/")]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"data":{"close":%s}}`, p)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestHTTP_FetchCurrentPrices(t *testing.T) {
	var hits atomic.Int32
	srv := quoteServer(t, map[string]string{"AAPL": "210.5", "MSFT": `"460.25"`}, &hits)

	h := NewHTTP(srv.URL+"/quote/{symbol}?token={apikey}", "secret", "$.data.close", "")
	prices, err := h.FetchCurrentPrices(context.Background(), []string{"AAPL", "MSFT"})
	if err != nil {
		t.Fatalf("FetchCurrentPrices() error = %v", err)
	}
	if got := prices.Price("AAPL"); !got.Equal(rsu.M(210.5)) {
		t.Errorf("price of AAPL = %v, want 210.5", got)
	}
	if got := prices.Price("MSFT"); !got.Equal(rsu.M(460.25)) {
		t.Errorf("price of MSFT = %v, want 460.25", got)
	}
}

func TestHTTP_Errors(t *testing.T) {
	var hits atomic.Int32
	srv := quoteServer(t, map[string]string{"AAPL": "210", "ZERO": "0", "TEXT": `"n/a"`}, &hits)

	tests := []struct {
		name    string
		apiKey  string
		path    string
		symbols []string
	}{
		{"unknown symbol", "secret", "$.data.close", []string{"AAPL", "NOPE"}},
		{"bad key", "wrong", "$.data.close", []string{"AAPL"}},
		{"zero price", "secret", "$.data.close", []string{"ZERO"}},
		{"text price", "secret", "$.data.close", []string{"TEXT"}},
		{"missing path", "secret", "$.data.open", []string{"AAPL"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHTTP(srv.URL+"/quote/{symbol}?token={apikey}", tt.apiKey, tt.path, "")
			if prices, err := h.FetchCurrentPrices(context.Background(), tt.symbols); err == nil {
				t.Errorf("FetchCurrentPrices(%v) = %v, want an error", tt.symbols, prices)
			}
		})
	}
}

func TestHTTP_DailyCache(t *testing.T) {
	var hits atomic.Int32
	srv := quoteServer(t, map[string]string{"TSLA": "240"}, &hits)

	h := NewHTTP(srv.URL+"/quote/{symbol}?token={apikey}", "secret", "$.data.close", t.TempDir())
	for range 3 {
		prices, err := h.FetchCurrentPrices(context.Background(), []string{"TSLA"})
		if err != nil {
			t.Fatalf("FetchCurrentPrices() error = %v", err)
		}
		if got := prices.Price("TSLA"); !got.Equal(rsu.M(240)) {
			t.Errorf("price of TSLA = %v, want 240", got)
		}
	}
	if n := hits.Load(); n != 1 {
		t.Errorf("server hit %d times, want 1", n)
	}
}

func TestDayCache_NextDay(t *testing.T) {
	var hits atomic.Int32
	srv := quoteServer(t, map[string]string{"NVDA": "1200"}, &hits)

	dir := t.TempDir()
	for _, name := range []string{"2000-01-01-0123.http", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	day := date.New(2024, 5, 2)
	cache := newDayCache(dir)
	cache.today = func() date.Date { return day }
	h := &HTTP{URL: srv.URL + "/quote/{symbol}?token={apikey}", APIKey: "secret", Path: "$.data.close", client: &http.Client{Transport: cache}}

	fetch := func() {
		t.Helper()
		prices, err := h.FetchCurrentPrices(context.Background(), []string{"NVDA"})
		if err != nil {
			t.Fatalf("FetchCurrentPrices() error = %v", err)
		}
		if got := prices.Price("NVDA"); !got.Equal(rsu.M(1200)) {
			t.Errorf("price of NVDA = %v, want 1200", got)
		}
	}
	entries := func(pattern string) []string {
		t.Helper()
		found, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			t.Fatal(err)
		}
		return found
	}

	fetch()
	fetch()
	if n := hits.Load(); n != 1 {
		t.Errorf("server hit %d times on the same day, want 1", n)
	}
	if got := entries("2000-01-01-*"); len(got) != 0 {
		t.Errorf("stale entries %v not removed", got)
	}
	if got := entries("notes.txt"); len(got) != 1 {
		t.Errorf("unrelated file removed")
	}

	day = day.Add(1)
	fetch()
	if n := hits.Load(); n != 2 {
		t.Errorf("server hit %d times after a day, want 2", n)
	}
	if got := entries("2024-05-02-*"); len(got) != 0 {
		t.Errorf("entries of the previous day %v not removed", got)
	}
	if got := entries("2024-05-03-*.http"); len(got) != 1 {
		t.Errorf("entries of the day = %v, want 1", got)
	}
}
