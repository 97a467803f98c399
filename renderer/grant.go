package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/rsu"
	md "github.com/nao1215/markdown"
)

// GrantMarkdown renders the detail view of a grant.
func GrantMarkdown(s rsu.GrantSummary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	g := s.Grant

	doc.H1(fmt.Sprintf("%s (%s)", g.Company, g.Symbol))
	doc.PlainText(fmt.Sprintf("%s shares granted on %s, id %s", g.Shares, g.GrantDate, md.Code(g.ID)))

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{md.Bold("Value"), md.Bold(s.CurrentValue.String())},
		Rows: [][]string{
			{"Gain / Loss", fmt.Sprintf("%s (%s)", s.GainLoss.SignedString(), s.GainLossPct.SignedString())},
			{"Avg", g.GrantPrice.String()},
			{"Now", s.CurrentPrice.String()},
			{"Basis", s.Basis.String()},
		},
	})

	doc.H2("Vesting Plan")
	doc.Table(planTable(g.Plan))

	doc.H2(fmt.Sprintf("Upcoming (next %d)", len(s.Next)))
	if len(s.Next) == 0 {
		doc.PlainText("No upcoming events.")
	} else {
		doc.Table(eventsTable(s.Next, false))
	}

	doc.H2(fmt.Sprintf("Tax Estimator (next %d vests)", len(s.Next)))
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Vested Value", s.Taxes.VestedValue.String()},
		Rows: [][]string{
			{fmt.Sprintf("Federal Withholding (%s)", rsu.WithholdingRate.StringFixed(0)), s.Taxes.Withholding.String()},
			{fmt.Sprintf("Estimated Total Tax (%s)", rsu.EstimatedTaxRate.StringFixed(0)), s.Taxes.EstimatedTax.String()},
			{md.Bold("Net Proceeds"), md.Bold(s.Taxes.Net.String())},
		},
	})

	doc.H2("Hold vs Sell")
	doc.PlainText(hintText[s.Hint])
	doc.PlainText(fmt.Sprintf("Company concentration: %s", s.Concentration.StringFixed(1)))

	return doc.String()
}

// planTable renders one row per year rule, with the number of events it produces.
func planTable(plan rsu.VestingPlan) md.TableSet {
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignRight, md.AlignRight},
		Header:    []string{"Year", "Frequency", "Percentage", "Events"},
		Rows:      [][]string{},
	}
	for _, r := range plan.Rules {
		freq := string(r.Frequency)
		if r.Frequency == rsu.CustomNMonths {
			freq = fmt.Sprintf("every %d months", r.NMonths)
		}
		pct := "missing"
		if r.Percentage != nil {
			pct = r.Percentage.String()
		}
		table.Rows = append(table.Rows, []string{
			fmt.Sprintf("Year %d", r.Year),
			freq,
			pct,
			fmt.Sprint(rsu.PeriodsInYear(r)),
		})
	}
	return table
}

// eventsTable renders vesting events, with their symbol if withSymbol.
func eventsTable(events []rsu.VestEvent, withSymbol bool) md.TableSet {
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
		Header:    []string{"Date", "Shares", "Value"},
		Rows:      [][]string{},
	}
	if withSymbol {
		table.Alignment = append([]md.TableAlignment{md.AlignLeft}, table.Alignment...)
		table.Header = append([]string{"Symbol"}, table.Header...)
	}
	for _, e := range events {
		row := []string{e.Date.String(), e.Shares.String(), e.Value.String()}
		if withSymbol {
			row = append([]string{e.Symbol}, row...)
		}
		table.Rows = append(table.Rows, row)
	}
	return table
}
