package renderer

import (
	"bytes"
	"fmt"
	"time"

	"github.com/etnz/rsu"
	md "github.com/nao1215/markdown"
)

// PortfolioMarkdown renders the portfolio overview: totals, company breakdown and grants.
func PortfolioMarkdown(s rsu.State, m rsu.Metrics) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Portfolio")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{md.Bold("Total Value"), md.Bold(m.TotalValue.String())},
		Rows: [][]string{
			{"Grant Value", m.TotalGrantValue.String()},
			{"Gain / Loss", fmt.Sprintf("%s (%s)", m.TotalGainLoss.SignedString(), m.GainLossPct.SignedString())},
			{"Risk Score", m.RiskScore.String()},
		},
	})
	doc.PlainText(pricesNote(s.LastPricesAt))

	doc.H2("Company Breakdown")
	rows := rsu.Breakdown(m)
	if len(rows) == 0 {
		doc.PlainText("No data yet, add a grant to see your breakdown.")
	} else {
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
			Header:    []string{"Company", "Value", "Share"},
		}
		for _, r := range rows {
			table.Rows = append(table.Rows, []string{
				companyLabel(r.Symbol),
				r.Value.String(),
				fmt.Sprintf("%d%%", r.Percent),
			})
		}
		doc.Table(table)
	}

	doc.H2("Grants")
	if len(s.Grants) == 0 {
		doc.PlainText("No grants yet, add your first grant with the add command.")
		return doc.String()
	}
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"ID", "Company", "Grant Date", "Shares", "Grant Price", "Value"},
	}
	for _, g := range s.Grants {
		table.Rows = append(table.Rows, []string{
			ShortID(g.ID),
			fmt.Sprintf("%s (%s)", g.Company, g.Symbol),
			g.GrantDate.String(),
			g.Shares.String(),
			"@ " + g.GrantPrice.String(),
			g.Value(s.Prices.Price(g.Symbol)).String(),
		})
	}
	doc.Table(table)

	return doc.String()
}

// PricesMarkdown renders the price snapshot, sorted by symbol.
func PricesMarkdown(prices rsu.PriceMap, at time.Time) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Current Prices")
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Company", "Price"},
		Rows:      [][]string{},
	}
	for _, symbol := range sortedSymbols(prices) {
		table.Rows = append(table.Rows, []string{companyLabel(symbol), prices.Price(symbol).String()})
	}
	doc.Table(table)
	doc.PlainText(pricesNote(at))

	return doc.String()
}

func pricesNote(at time.Time) string {
	if at.IsZero() {
		return md.Italic("Prices have not been loaded.")
	}
	return md.Italic("Prices as of " + at.Format("2006-01-02 15:04"))
}
