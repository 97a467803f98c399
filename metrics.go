package rsu

import "github.com/shopspring/decimal"

// CompanyRow aggregates all grants in one company.
type CompanyRow struct {
	Symbol string   `json:"symbol"`
	Value  Money    `json:"value"`
	Shares Quantity `json:"shares"`
}

// Metrics are the portfolio level figures.
type Metrics struct {
	TotalValue      Money        `json:"totalValue"`
	TotalGrantValue Money        `json:"totalGrantValue"`
	TotalGainLoss   Money        `json:"totalGainLoss"`
	GainLossPct     Percent      `json:"gainLossPct"`
	ByCompany       []CompanyRow `json:"byCompany"` // in order of first appearance
	RiskScore       Percent      `json:"riskScore"` // highest company concentration, 2 decimals
}

// ComputeMetrics values grants at prices. Missing prices count as zero.
//
// It is a full recomputation: portfolios are small enough.
func ComputeMetrics(grants []Grant, prices PriceMap) Metrics {
	var m Metrics
	index := make(map[string]int)
	for _, g := range grants {
		value := g.Value(prices.Price(g.Symbol))
		m.TotalValue = m.TotalValue.Add(value)
		m.TotalGrantValue = m.TotalGrantValue.Add(g.Basis())

		i, ok := index[g.Symbol]
		if !ok {
			i = len(m.ByCompany)
			index[g.Symbol] = i
			m.ByCompany = append(m.ByCompany, CompanyRow{Symbol: g.Symbol})
		}
		m.ByCompany[i].Value = m.ByCompany[i].Value.Add(value)
		m.ByCompany[i].Shares = m.ByCompany[i].Shares.Add(g.Shares)
	}

	m.TotalGainLoss = m.TotalValue.Sub(m.TotalGrantValue)
	m.GainLossPct = m.TotalGainLoss.Ratio(m.TotalGrantValue)

	for _, c := range m.ByCompany {
		if pct := c.Value.Ratio(m.TotalValue); pct.GreaterThan(m.RiskScore) {
			m.RiskScore = pct
		}
	}
	m.RiskScore = m.RiskScore.Round(2)
	return m
}

// Concentration returns the share of the portfolio value held in symbol.
func (m Metrics) Concentration(symbol string) Percent {
	for _, c := range m.ByCompany {
		if c.Symbol == symbol {
			return c.Value.Ratio(m.TotalValue)
		}
	}
	return Percent{}
}

// BreakdownRow is a company's share of the portfolio, as displayed in a chart.
type BreakdownRow struct {
	Symbol  string
	Value   Money
	Percent int // whole percent, at least 1 for any non zero share
}

// Breakdown returns the company shares of the portfolio, empty when the portfolio has no value.
func Breakdown(m Metrics) []BreakdownRow {
	if m.TotalValue.IsZero() {
		return nil
	}
	rows := make([]BreakdownRow, 0, len(m.ByCompany))
	for _, c := range m.ByCompany {
		raw := c.Value.Ratio(m.TotalValue)
		pct := int(raw.Round(0).value.IntPart())
		if raw.value.IsPositive() && raw.value.LessThan(decimal.NewFromInt(1)) {
			pct = 1
		}
		rows = append(rows, BreakdownRow{Symbol: c.Symbol, Value: c.Value, Percent: pct})
	}
	return rows
}

// Hint is a hold or sell suggestion based on concentration.
type Hint string

const (
	HintLow    Hint = "low"    // concentration is fine
	HintMedium Hint = "medium" // consider diversifying
	HintHigh   Hint = "high"   // consider selling some shares
)

// ConcentrationHint returns the hint for a company concentration.
func ConcentrationHint(pct Percent) Hint {
	switch {
	case pct.GreaterThan(P(70)):
		return HintHigh
	case pct.GreaterThan(P(40)):
		return HintMedium
	default:
		return HintLow
	}
}

// GrantSummary gathers the figures of a single grant detail view.
type GrantSummary struct {
	Grant         Grant
	CurrentPrice  Money
	CurrentValue  Money
	Basis         Money
	GainLoss      Money
	GainLossPct   Percent // price change since grant date
	Concentration Percent // company share of the whole portfolio
	Hint          Hint
	Next          []VestEvent
	Taxes         TaxPreview // on the Next events
}

// NewGrantSummary computes the detail figures of g. next are the upcoming
// events of g, see Upcoming; the tax preview is computed on them.
func NewGrantSummary(g Grant, prices PriceMap, m Metrics, next []VestEvent) GrantSummary {
	price := prices.Price(g.Symbol)
	s := GrantSummary{
		Grant:        g,
		CurrentPrice: price,
		CurrentValue: g.Value(price),
		Basis:        g.Basis(),
	}
	s.GainLoss = s.CurrentValue.Sub(s.Basis)
	s.GainLossPct = price.Sub(g.GrantPrice).Ratio(g.GrantPrice)

	s.Concentration = m.Concentration(g.Symbol)
	s.Hint = ConcentrationHint(s.Concentration)

	s.Next = next
	s.Taxes = EstimateTaxes(s.Next)
	return s
}
