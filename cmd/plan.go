package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/rsu"
	"github.com/etnz/rsu/renderer"
	"github.com/google/subcommands"
)

type planCmd struct{}

func (*planCmd) Name() string     { return "plan" }
func (*planCmd) Synopsis() string { return "check a vesting plan" }
func (*planCmd) Usage() string {
	return `vest plan <plan>

  Checks that a vesting plan totals 100%. A plan is four comma separated
  frequency:percent[:months] items, one per year, e.g.

    annual:25,quarterly:6.25,quarterly:6.25,quarterly:6.25

  Without argument, the default plan is checked.
`
}

func (c *planCmd) SetFlags(f *flag.FlagSet) {}

func (c *planCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() > 1 {
		fmt.Fprintln(os.Stderr, "at most one plan expected")
		return subcommands.ExitUsageError
	}
	plan := rsu.DefaultPlan()
	if f.NArg() == 1 {
		var err error
		if plan, err = rsu.ParsePlan(f.Arg(0)); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
	}

	check := rsu.CheckPlan(plan.Rules)
	printMarkdown(renderer.PlanMarkdown(plan, check))
	if !check.OK {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
