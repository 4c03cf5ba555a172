package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/compound"
	"github.com/etnz/compound/renderer"
	"github.com/google/subcommands"
)

// montecarloCmd holds the flags for the 'montecarlo' subcommand.
type montecarloCmd struct {
	drops  dropsFlag
	seed   uint64
	runs   int
	format string
}

func (*montecarloCmd) Name() string { return "montecarlo" }
func (*montecarloCmd) Synopsis() string {
	return "summarize many simulations of an investment plan"
}
func (*montecarloCmd) Usage() string {
	return `compound montecarlo [-runs <n>] [-drop <severity>:<count>]... [-seed <n>] [-format md|json] <monthly_contribution> <annual_growth_rate> <horizon_years>

  Simulates the same plan many times, placing drops at new random months
  every run, and prints the distribution of the pnl and roi.

`
}

func (c *montecarloCmd) SetFlags(f *flag.FlagSet) {
	f.Var(&c.drops, "drop", "Drop as <severity>:<count>, severity is a catalog name or a fraction. Repeatable.")
	f.Uint64Var(&c.seed, "seed", 0, "Seed of the random drop placement. 0 picks a random seed.")
	f.IntVar(&c.runs, "runs", 1000, "Number of simulations.")
	f.StringVar(&c.format, "format", "md", "Output format: md or json.")
}

func (c *montecarloCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	in, err := parsePlan(f.Args(), c.drops)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n%s", err, c.Usage())
		return subcommands.ExitUsageError
	}
	if c.format != "md" && c.format != "json" {
		fmt.Fprintf(os.Stderr, "Error: unknown format %q\n\n%s", c.format, c.Usage())
		return subcommands.ExitUsageError
	}

	e, err := newEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitFailure
	}

	d, err := compound.RunMany(in, e.newRand(c.seed), c.runs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n%s", err, c.Usage())
		return subcommands.ExitUsageError
	}
	e.log.Debug().Int("runs", d.Runs).Float64("mean_pnl", d.PnL.Mean).Msg("monte carlo done")

	if c.format == "json" {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(d); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding distribution: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.RenderDistribution(renderer.NewDistribution(in, d, e.Currency)))
	return subcommands.ExitSuccess
}
