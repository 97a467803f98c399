package rsu

import (
	"testing"

	"github.com/etnz/rsu/date"
)

func TestComputeMetrics(t *testing.T) {
	grants := []Grant{
		{Symbol: "AAPL", Shares: Q(100), GrantPrice: M(150)},
		{Symbol: "AAPL", Shares: Q(50), GrantPrice: M(150)},
	}
	m := ComputeMetrics(grants, PriceMap{"AAPL": M(210)})

	if !m.TotalValue.Equal(M(31500)) {
		t.Errorf("TotalValue = %v, want 31500", m.TotalValue)
	}
	if !m.TotalGrantValue.Equal(M(22500)) {
		t.Errorf("TotalGrantValue = %v, want 22500", m.TotalGrantValue)
	}
	if !m.TotalGainLoss.Equal(M(9000)) {
		t.Errorf("TotalGainLoss = %v, want 9000", m.TotalGainLoss)
	}
	if !m.GainLossPct.Equal(P(40)) {
		t.Errorf("GainLossPct = %v, want 40", m.GainLossPct)
	}
	if len(m.ByCompany) != 1 {
		t.Fatalf("ByCompany has %d rows, want 1", len(m.ByCompany))
	}
	if row := m.ByCompany[0]; row.Symbol != "AAPL" || !row.Value.Equal(M(31500)) || !row.Shares.Equal(Q(150)) {
		t.Errorf("ByCompany[0] = %+v, want {AAPL 31500 150}", row)
	}
	if !m.RiskScore.Equal(P(100)) {
		t.Errorf("RiskScore = %v, want 100", m.RiskScore)
	}
}

func TestComputeMetrics_Empty(t *testing.T) {
	m := ComputeMetrics(nil, nil)
	if !m.TotalValue.IsZero() || !m.RiskScore.IsZero() || !m.GainLossPct.IsZero() {
		t.Errorf("ComputeMetrics(nil) = %+v, want zero figures", m)
	}
	if len(m.ByCompany) != 0 {
		t.Errorf("ByCompany = %v, want no rows", m.ByCompany)
	}
	if rows := Breakdown(m); len(rows) != 0 {
		t.Errorf("Breakdown() = %v, want no rows", rows)
	}
}

func TestComputeMetrics_Companies(t *testing.T) {
	grants := []Grant{
		{Symbol: "MSFT", Shares: Q(10), GrantPrice: M(300)},
		{Symbol: "AAPL", Shares: Q(10), GrantPrice: M(150)},
		{Symbol: "MSFT", Shares: Q(5), GrantPrice: M(400)},
		{Symbol: "NFLX", Shares: Q(1), GrantPrice: M(500)},
	}
	// NFLX has no price: its value is zero.
	m := ComputeMetrics(grants, PriceMap{"MSFT": M(460), "AAPL": M(210)})

	wantSymbols := []string{"MSFT", "AAPL", "NFLX"}
	if len(m.ByCompany) != len(wantSymbols) {
		t.Fatalf("ByCompany has %d rows, want %d", len(m.ByCompany), len(wantSymbols))
	}
	for i, s := range wantSymbols {
		if m.ByCompany[i].Symbol != s {
			t.Errorf("ByCompany[%d].Symbol = %s, want %s", i, m.ByCompany[i].Symbol, s)
		}
	}
	// 15*460 = 6900, 10*210 = 2100, total 9000
	if !m.TotalValue.Equal(M(9000)) {
		t.Errorf("TotalValue = %v, want 9000", m.TotalValue)
	}
	// 3000 + 1500 + 2000 + 500
	if !m.TotalGrantValue.Equal(M(7000)) {
		t.Errorf("TotalGrantValue = %v, want 7000", m.TotalGrantValue)
	}
	// 6900 / 9000 = 76.666...
	if !m.RiskScore.Equal(P(76.67)) {
		t.Errorf("RiskScore = %v, want 76.67", m.RiskScore)
	}
	if got := m.Concentration("AAPL").Round(2); !got.Equal(P(23.33)) {
		t.Errorf("Concentration(AAPL) = %v, want 23.33", got)
	}

	rows := Breakdown(m)
	wantPct := []int{77, 23, 0}
	for i, want := range wantPct {
		if rows[i].Percent != want {
			t.Errorf("Breakdown()[%d].Percent = %d, want %d", i, rows[i].Percent, want)
		}
	}
}

func TestBreakdown_SmallShare(t *testing.T) {
	m := ComputeMetrics([]Grant{
		{Symbol: "NVDA", Shares: Q(1000)},
		{Symbol: "TSLA", Shares: Q(1)},
	}, PriceMap{"NVDA": M(1200), "TSLA": M(240)})
	rows := Breakdown(m)
	if rows[1].Percent != 1 {
		t.Errorf("Breakdown() small share = %d%%, want 1%%", rows[1].Percent)
	}
	if rows[0].Percent != 100 {
		t.Errorf("Breakdown() main share = %d%%, want 100%%", rows[0].Percent)
	}
}

func TestConcentrationHint(t *testing.T) {
	tests := []struct {
		pct  float64
		want Hint
	}{
		{0, HintLow},
		{40, HintLow},
		{40.01, HintMedium},
		{70, HintMedium},
		{70.5, HintHigh},
		{100, HintHigh},
	}
	for _, tt := range tests {
		if got := ConcentrationHint(P(tt.pct)); got != tt.want {
			t.Errorf("ConcentrationHint(%v) = %s, want %s", tt.pct, got, tt.want)
		}
	}
}

func TestNewGrantSummary(t *testing.T) {
	grants := SampleGrants()
	prices := PriceMap{"AAPL": M(210), "GOOGL": M(175)}
	m := ComputeMetrics(grants, prices)

	next := NextEvents(Expand(grants[0], prices), date.MustParse("2024-04-01"), 4)
	s := NewGrantSummary(grants[0], prices, m, next)

	if !s.CurrentValue.Equal(M(21000)) || !s.Basis.Equal(M(15000)) || !s.GainLoss.Equal(M(6000)) {
		t.Errorf("summary values = %v %v %v, want 21000 15000 6000", s.CurrentValue, s.Basis, s.GainLoss)
	}
	if !s.GainLossPct.Equal(P(40)) {
		t.Errorf("GainLossPct = %v, want 40", s.GainLossPct)
	}
	// 21000 / (21000 + 8750)
	if got := s.Concentration.Round(2); !got.Equal(P(70.59)) {
		t.Errorf("Concentration = %v, want 70.59", got)
	}
	if s.Hint != HintHigh {
		t.Errorf("Hint = %s, want %s", s.Hint, HintHigh)
	}
	if len(s.Next) != 4 {
		t.Fatalf("Next has %d events, want 4", len(s.Next))
	}
	// each quarterly event is 6.25 shares at 210
	if !s.Taxes.VestedValue.Equal(M(5250)) {
		t.Errorf("Taxes.VestedValue = %v, want 5250", s.Taxes.VestedValue)
	}
	if !s.Taxes.Net.Equal(M(3412.5)) {
		t.Errorf("Taxes.Net = %v, want 3412.5", s.Taxes.Net)
	}
}

func TestNewGrantSummary_NoPrice(t *testing.T) {
	g := Grant{Symbol: "META", Shares: Q(10), GrantPrice: M(0), GrantDate: date.MustParse("2024-01-01"), Plan: DefaultPlan()}
	s := NewGrantSummary(g, nil, ComputeMetrics([]Grant{g}, nil), nil)
	if !s.GainLossPct.IsZero() || !s.Concentration.IsZero() || s.Hint != HintLow {
		t.Errorf("summary without prices = %v %v %s, want zero figures and a low hint", s.GainLossPct, s.Concentration, s.Hint)
	}
}
