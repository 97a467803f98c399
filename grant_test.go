package rsu

import (
	"errors"
	"slices"
	"testing"

	"github.com/etnz/rsu/date"
)

func TestDraft_Grant(t *testing.T) {
	d := Draft{
		Symbol:    "aapl",
		GrantDate: date.MustParse("2024-03-15"),
		Shares:    "1,000 shares",
		Price:     "$172.1234567",
		Plan:      DefaultPlan(),
	}
	g, err := d.Grant()
	if err != nil {
		t.Fatalf("Grant() error = %v", err)
	}
	if g.ID == "" {
		t.Errorf("Grant() has no ID")
	}
	if g.Symbol != "AAPL" || g.Company != "Apple" {
		t.Errorf("Grant() = %s %s, want AAPL Apple", g.Symbol, g.Company)
	}
	if !g.Shares.Equal(Q(1000)) {
		t.Errorf("Grant().Shares = %v, want 1000", g.Shares)
	}
	if !g.GrantPrice.Equal(M(172.123456)) {
		t.Errorf("Grant().GrantPrice = %v, want 172.123456", g.GrantPrice.value)
	}

	other, _ := d.Grant()
	if other.ID == g.ID {
		t.Errorf("Grant() returned the same ID twice: %s", g.ID)
	}
}

func TestDraft_GrantInvalid(t *testing.T) {
	tests := []struct {
		name   string
		draft  Draft
		fields []string
	}{
		{
			name:   "empty",
			draft:  Draft{},
			fields: []string{FieldCompany, FieldGrantDate, FieldShares, FieldPrice, FieldPlan},
		},
		{
			name:   "unknown company without a name",
			draft:  Draft{Symbol: "ACME", GrantDate: date.MustParse("2024-01-01"), Shares: "10", Price: "1", Plan: DefaultPlan()},
			fields: []string{FieldCompany},
		},
		{
			name:   "zero shares",
			draft:  Draft{Symbol: "MSFT", GrantDate: date.MustParse("2024-01-01"), Shares: "0", Price: "1", Plan: DefaultPlan()},
			fields: []string{FieldShares},
		},
		{
			name:   "fractional shares are truncated",
			draft:  Draft{Symbol: "MSFT", GrantDate: date.MustParse("2024-01-01"), Shares: "0.9", Price: "1", Plan: DefaultPlan()},
			fields: []string{FieldShares},
		},
		{
			name:   "lone dot price",
			draft:  Draft{Symbol: "MSFT", GrantDate: date.MustParse("2024-01-01"), Shares: "5", Price: ".", Plan: DefaultPlan()},
			fields: []string{FieldPrice},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.draft.Grant()
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Grant() error = %v, want a *ValidationError", err)
			}
			if !slices.Equal(verr.Fields, tt.fields) {
				t.Errorf("Grant() flagged %v, want %v", verr.Fields, tt.fields)
			}
		})
	}
}

func TestDraft_GrantPlanTotal(t *testing.T) {
	d := Draft{
		Symbol:    "GOOGL",
		Company:   "Alphabet",
		GrantDate: date.MustParse("2024-01-01"),
		Shares:    "10",
		Price:     "100",
		Plan:      mustPlan(t, "annual:25,monthly:25,monthly:25,monthly:25"),
	}
	_, err := d.Grant()
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Grant() error = %v, want a *ValidationError", err)
	}
	if !verr.Has(FieldPlan) || !verr.PlanTotal.Equal(P(925)) {
		t.Errorf("Grant() = %v with total %v, want plan flagged with total 925", verr.Fields, verr.PlanTotal)
	}
	if want := "invalid grant: plan (vesting plan totals 925.000%, want 100%)"; err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestSearchCompanies(t *testing.T) {
	tests := []struct {
		query string
		want  []string
	}{
		{"", []string{"AAPL", "GOOGL", "AMZN", "NFLX", "META", "MSFT", "TSLA", "NVDA"}},
		{"  ", []string{"AAPL", "GOOGL", "AMZN", "NFLX", "META", "MSFT", "TSLA", "NVDA"}},
		{"goo", []string{"GOOGL"}},
		{"(ms", []string{"MSFT"}},
		{"a", []string{"AAPL", "AMZN", "META", "TSLA", "NVDA"}},
		{"zzz", nil},
	}
	for _, tt := range tests {
		var got []string
		for _, c := range SearchCompanies(tt.query) {
			got = append(got, c.Symbol)
		}
		if !slices.Equal(got, tt.want) {
			t.Errorf("SearchCompanies(%q) = %v, want %v", tt.query, got, tt.want)
		}
	}

	if c, ok := LookupCompany("nvda"); !ok || c.Name != "NVIDIA" {
		t.Errorf("LookupCompany(nvda) = %v, %v, want NVIDIA", c, ok)
	}
}

func TestResolveCompany(t *testing.T) {
	tests := []struct {
		query   string
		want    string
		wantErr bool
	}{
		{"AAPL", "AAPL", false},
		{" nflx ", "NFLX", false},
		{"apple", "AAPL", false},
		{"Micro", "MSFT", false},
		{"meta", "META", false},
		{"a", "", true}, // ambiguous
		{"acme", "", true},
	}
	for _, tt := range tests {
		c, err := ResolveCompany(tt.query)
		if c.Symbol != tt.want || (err != nil) != tt.wantErr {
			t.Errorf("ResolveCompany(%q) = %q, %v, want %q (error %v)", tt.query, c.Symbol, err, tt.want, tt.wantErr)
		}
	}
}
