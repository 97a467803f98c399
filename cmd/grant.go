package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/rsu"
	"github.com/etnz/rsu/date"
	"github.com/etnz/rsu/renderer"
	"github.com/google/subcommands"
)

// grantFlags are the fields of a grant, shared by add and update.
type grantFlags struct {
	symbol  string
	company string
	date    string
	shares  string
	price   string
	plan    string
}

func (g *grantFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&g.symbol, "s", "", "Ticker symbol or name of the company, e.g. AAPL or apple. Any symbol is accepted with -company.")
	f.StringVar(&g.company, "company", "", "Company name. Defaults to the catalog name of the symbol.")
	f.StringVar(&g.date, "d", "", "Grant date (YYYY-MM-DD).")
	f.StringVar(&g.shares, "n", "", "Number of shares granted.")
	f.StringVar(&g.price, "p", "", "Share price at grant date, in USD.")
	f.StringVar(&g.plan, "plan", "", "Vesting plan, four frequency:percent[:months] items, see 'topic plans'.")
}

// draft builds a Draft from the flags, using base for the flags left empty.
func (g *grantFlags) draft(base rsu.Grant) (rsu.Draft, error) {
	d := rsu.Draft{
		Symbol:    base.Symbol,
		Company:   base.Company,
		GrantDate: base.GrantDate,
		Plan:      base.Plan,
	}
	if !base.Shares.IsZero() {
		d.Shares = base.Shares.String()
	}
	if !base.GrantPrice.IsZero() {
		d.Price = base.GrantPrice.Text()
	}
	if g.symbol != "" {
		d.Symbol = g.symbol
		if g.company == "" {
			c, err := rsu.ResolveCompany(g.symbol)
			if err != nil {
				return rsu.Draft{}, err
			}
			d.Symbol, d.Company = c.Symbol, c.Name
		}
	}
	if g.company != "" {
		d.Company = g.company
	}
	if g.date != "" {
		on, err := date.Parse(g.date)
		if err != nil {
			return rsu.Draft{}, fmt.Errorf("invalid grant date: %w", err)
		}
		d.GrantDate = on
	}
	if g.shares != "" {
		d.Shares = g.shares
	}
	if g.price != "" {
		d.Price = g.price
	}
	if g.plan != "" {
		plan, err := rsu.ParsePlan(g.plan)
		if err != nil {
			return rsu.Draft{}, err
		}
		d.Plan = plan
	}
	return d, nil
}

// reportGrantError prints err, with the plan total when the plan is invalid.
func reportGrantError(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	var verr *rsu.ValidationError
	if errors.As(err, &verr) {
		return subcommands.ExitUsageError
	}
	return subcommands.ExitFailure
}

type addCmd struct {
	grantFlags
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a new grant" }
func (*addCmd) Usage() string {
	return `vest add -s <symbol> [-company <name>] -d <date> -n <shares> -p <price> [-plan <plan>]

  Adds a grant. The vesting plan defaults to 25% after one year, then 6.25%
  every quarter for three years.
`
}

func (c *addCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "no arguments expected")
		return subcommands.ExitUsageError
	}
	d, err := c.draft(rsu.Grant{Plan: rsu.DefaultPlan()})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	app, err := OpenApp(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer app.Close()

	g, err := app.Add(ctx, d)
	if err != nil {
		return reportGrantError(err)
	}
	fmt.Printf("Added grant %s: %s shares of %s\n", renderer.ShortID(g.ID), g.Shares, g.Symbol)
	return subcommands.ExitSuccess
}

type updateCmd struct {
	grantFlags
	id string
}

func (*updateCmd) Name() string     { return "update" }
func (*updateCmd) Synopsis() string { return "modify a grant" }
func (*updateCmd) Usage() string {
	return `vest update -id <id> [-s <symbol>] [-company <name>] [-d <date>] [-n <shares>] [-p <price>] [-plan <plan>]

  Modifies the fields given as flags, the others are kept.
`
}

func (c *updateCmd) SetFlags(f *flag.FlagSet) {
	c.grantFlags.SetFlags(f)
	f.StringVar(&c.id, "id", "", "ID of the grant, or a unique prefix of it.")
}

func (c *updateCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	app, err := OpenApp(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer app.Close()

	id, err := app.resolveID(c.id)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	base, _ := app.Grant(id)
	d, err := c.draft(base)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	g, err := app.Update(ctx, id, d)
	if err != nil {
		return reportGrantError(err)
	}
	fmt.Printf("Updated grant %s\n", renderer.ShortID(g.ID))
	return subcommands.ExitSuccess
}

type deleteCmd struct {
	id string
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete a grant" }
func (*deleteCmd) Usage() string {
	return `vest delete -id <id>

  Deletes a grant. This cannot be undone.
`
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "ID of the grant, or a unique prefix of it.")
}

func (c *deleteCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	app, err := OpenApp(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer app.Close()

	id, err := app.resolveID(c.id)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	if err := app.Delete(ctx, id); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Deleted grant %s\n", renderer.ShortID(id))
	return subcommands.ExitSuccess
}
