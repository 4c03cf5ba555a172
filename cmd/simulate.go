package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/etnz/compound"
	"github.com/etnz/compound/renderer"
	"github.com/google/subcommands"
)

// dropsFlag collects repeated -drop flags.
type dropsFlag []compound.DropSpec

func (d *dropsFlag) String() string {
	parts := make([]string, len(*d))
	for i, drop := range *d {
		parts[i] = fmt.Sprintf("%v:%d", drop.Severity, drop.Occurrences)
	}
	return strings.Join(parts, ",")
}

func (d *dropsFlag) Set(s string) error {
	drop, err := compound.ParseDropSpec(s)
	if err != nil {
		return err
	}
	*d = append(*d, drop)
	return nil
}

// parsePlan builds the Input from the positional arguments
// <monthly_contribution> <annual_growth_rate> <horizon_years>.
func parsePlan(args []string, drops []compound.DropSpec) (compound.Input, error) {
	if len(args) != 3 {
		return compound.Input{}, fmt.Errorf("%w: expected 3 arguments, got %d", compound.ErrInvalidInput, len(args))
	}
	contribution, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return compound.Input{}, fmt.Errorf("%w: monthly contribution %q is not a number", compound.ErrInvalidInput, args[0])
	}
	rate, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return compound.Input{}, fmt.Errorf("%w: annual growth rate %q is not a number", compound.ErrInvalidInput, args[1])
	}
	years, err := strconv.ParseUint(args[2], 10, 31)
	if err != nil {
		return compound.Input{}, fmt.Errorf("%w: horizon %q is not a number of years", compound.ErrInvalidInput, args[2])
	}
	in := compound.Input{
		MonthlyContribution: contribution,
		AnnualGrowthRate:    rate,
		HorizonYears:        int(years),
		Drops:               drops,
	}
	return in, in.Validate()
}

// simulateCmd holds the flags for the 'simulate' subcommand.
type simulateCmd struct {
	drops  dropsFlag
	seed   uint64
	save   bool
	format string
}

func (*simulateCmd) Name() string     { return "simulate" }
func (*simulateCmd) Synopsis() string { return "simulate an investment plan from arguments" }
func (*simulateCmd) Usage() string {
	return `compound simulate [-drop <severity>:<count>]... [-seed <n>] [-save] [-format text|md|json] <monthly_contribution> <annual_growth_rate> <horizon_years>

  Simulates investing <monthly_contribution> every month for <horizon_years>
  years, growing at <annual_growth_rate> a year (0.08 for 8%).

  Drops strike at random months, see 'compound topic drops'.

`
}

func (c *simulateCmd) SetFlags(f *flag.FlagSet) {
	f.Var(&c.drops, "drop", "Drop as <severity>:<count>, severity is a catalog name or a fraction. Repeatable.")
	f.Uint64Var(&c.seed, "seed", 0, "Seed of the random drop placement. 0 picks a random seed.")
	f.BoolVar(&c.save, "save", false, "Save the report to <contribution>-<rate>-<years>.txt instead of printing it.")
	f.StringVar(&c.format, "format", "text", "Output format: text, md or json. Ignored with -save.")
}

func (c *simulateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	in, err := parsePlan(f.Args(), c.drops)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n%s", err, c.Usage())
		return subcommands.ExitUsageError
	}
	switch c.format {
	case "text", "md", "json":
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown format %q\n\n%s", c.format, c.Usage())
		return subcommands.ExitUsageError
	}

	e, err := newEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitFailure
	}

	stats := compound.SimulateSchedule(in, e.schedule(in, e.newRand(c.seed)))

	if c.save {
		return e.save(in, stats)
	}
	return e.print(c.format, in, stats)
}

// print writes stats to stdout in format.
func (e *env) print(format string, in compound.Input, stats compound.Stats) subcommands.ExitStatus {
	switch format {
	case "md":
		printMarkdown(renderer.RenderSimulation(renderer.NewSimulation(in, stats, e.Currency)))
	case "json":
		out := struct {
			Input compound.Input `json:"input"`
			Stats compound.Stats `json:"stats"`
		}{in, stats}
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding statistics: %v\n", err)
			return subcommands.ExitFailure
		}
	default:
		if err := compound.WriteReport(stdout, stats); err != nil {
			fmt.Fprintf(os.Stderr, "Error printing report: %v\n", err)
			return subcommands.ExitFailure
		}
	}
	return subcommands.ExitSuccess
}
