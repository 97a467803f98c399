package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/rsu"
	"github.com/etnz/rsu/date"
	"github.com/etnz/rsu/renderer"
	"github.com/google/subcommands"
)

type portfolioCmd struct{}

func (*portfolioCmd) Name() string     { return "portfolio" }
func (*portfolioCmd) Synopsis() string { return "display the portfolio overview" }
func (*portfolioCmd) Usage() string {
	return `vest portfolio

  Displays the total value, gain or loss, risk score, company breakdown and grants.
`
}

func (c *portfolioCmd) SetFlags(f *flag.FlagSet) {}

func (c *portfolioCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	app, err := OpenApp(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer app.Close()

	app.refreshPrices(ctx)
	printMarkdown(renderer.PortfolioMarkdown(app.State(), app.Metrics()))
	return subcommands.ExitSuccess
}

type showCmd struct {
	id   string
	next int
}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "display the details of a grant" }
func (*showCmd) Usage() string {
	return `vest show -id <id> [-n <events>]

  Displays a grant, its vesting plan, the next vesting events with a tax
  estimate, and a hold or sell hint.
`
}

func (c *showCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "ID of the grant, or a unique prefix of it.")
	f.IntVar(&c.next, "n", 4, "Number of upcoming vesting events.")
}

func (c *showCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.next < 0 {
		fmt.Fprintf(os.Stderr, "invalid number of events %d\n", c.next)
		return subcommands.ExitUsageError
	}
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
	app.refreshPrices(ctx)
	summary, err := app.Summary(id, c.next)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.GrantMarkdown(summary))
	return subcommands.ExitSuccess
}

type calendarCmd struct {
	id   string
	from string
	to   string
}

func (*calendarCmd) Name() string     { return "calendar" }
func (*calendarCmd) Synopsis() string { return "display the vesting events by month" }
func (*calendarCmd) Usage() string {
	return `vest calendar [-id <id>] [-from <date>] [-to <date>]

  Displays the vesting events of all grants, or of a single one, grouped by month.
`
}

func (c *calendarCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Restrict to the grant with this ID, or a unique prefix of it.")
	f.StringVar(&c.from, "from", "", "Only show events on or after this date.")
	f.StringVar(&c.to, "to", "", "Only show events on or before this date.")
}

func (c *calendarCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r, err := date.ParseRange(c.from, c.to)
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

	app.refreshPrices(ctx)
	title := "Vesting Calendar"
	events := app.AllEvents()
	if c.id != "" {
		id, err := app.resolveID(c.id)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
		if events, err = app.Events(id); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		g, _ := app.Grant(id)
		title = fmt.Sprintf("Vesting Calendar of %s (%s)", g.Company, renderer.ShortID(g.ID))
	}
	if !r.IsOpen() {
		title += ", " + r.String()
	}
	printMarkdown(renderer.CalendarMarkdown(title, rsu.GroupByMonth(rsu.EventsIn(events, r))))
	return subcommands.ExitSuccess
}

type pricesCmd struct{}

func (*pricesCmd) Name() string     { return "prices" }
func (*pricesCmd) Synopsis() string { return "fetch and display the current prices" }
func (*pricesCmd) Usage() string {
	return `vest prices

  Fetches the current price of every company in the portfolio.
`
}

func (c *pricesCmd) SetFlags(f *flag.FlagSet) {}

func (c *pricesCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	app, err := OpenApp(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer app.Close()

	if err := app.RefreshPrices(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	s := app.State()
	printMarkdown(renderer.PricesMarkdown(s.Prices, s.LastPricesAt))
	return subcommands.ExitSuccess
}
