// Package cmd implements the CLI application to simulate investment plans.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"sort"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/compound"
	"github.com/etnz/compound/logger"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
)

// Commands lists the subcommands of the application, with their group.
var Commands = []struct {
	Command subcommands.Command
	Group   string
}{
	{&simulateCmd{}, "simulation"},
	{&interactiveCmd{}, "simulation"},
	{&montecarloCmd{}, "simulation"},
	{&dropsCmd{}, "help"},
	{&topicCmd{}, "help"},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, e := range Commands {
		c.Register(e.Command, e.Group)
	}
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	envFile       = flag.String("env-file", ".env", "Path to an optional .env file holding COMPOUND_* variables.")
	outputDir     = flag.String("output-dir", "", "Directory where reports are saved. Defaults to $"+EnvOutputDir+" or the current directory.")
	currency      = flag.String("currency", "", "Currency used to format amounts in Markdown. Defaults to $"+EnvCurrency+" or USD.")
	logLevel      = flag.String("log-level", "", "Log level: debug, info, warn or error. Defaults to $"+EnvLogLevel+" or warn.")
	logPretty     = flag.Bool("log-pretty", false, "Print logs for humans instead of JSON.")
	plainMarkdown = flag.Bool("plain", false, "Print Markdown as is, without terminal styling.")
)

// stdin and stdout are the streams used by the commands.
var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
)

// env is the runtime environment of a command: its configuration and logger.
type env struct {
	Config
	log zerolog.Logger
}

// newEnv loads the configuration and builds the logger.
func newEnv() (*env, error) {
	cfg, err := LoadConfig(*envFile)
	if err != nil {
		return nil, err
	}
	cfg = cfg.Override(Config{OutputDir: *outputDir, Currency: *currency, LogLevel: *logLevel})
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	l := logger.New(logger.Config{Level: cfg.LogLevel, Pretty: *logPretty})
	logger.SetGlobalLogger(l)
	return &env{Config: cfg, log: l}, nil
}

// newRand returns the random source of a simulation and its seed.
// A zero seed picks a random one, it is logged so that the run can be replayed.
func (e *env) newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}
	e.log.Debug().Uint64("seed", seed).Msg("random source")
	return rand.New(rand.NewPCG(seed, seed))
}

// schedule places the drops of in and logs where they strike.
func (e *env) schedule(in compound.Input, rnd compound.Rand) map[int]compound.DropSpec {
	schedule := compound.Schedule(in, rnd)
	if e.log.GetLevel() <= zerolog.DebugLevel {
		months := make([]int, 0, len(schedule))
		for m := range schedule {
			months = append(months, m)
		}
		sort.Ints(months)
		for _, m := range months {
			e.log.Debug().Int("month", m).Float64("severity", schedule[m].Severity).Msg("drop")
		}
	}
	return schedule
}

// save writes the report of stats into the output directory.
func (e *env) save(in compound.Input, stats compound.Stats) subcommands.ExitStatus {
	path, err := compound.SaveReport(e.OutputDir, in, stats)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error saving report: %v\n", err)
		return subcommands.ExitFailure
	}
	e.log.Info().Str("path", path).Msg("report saved")
	fmt.Fprintf(stdout, "Report saved to %s\n", path)
	return subcommands.ExitSuccess
}

// printMarkdown prints md to stdout, styled for the terminal unless -plain is set.
func printMarkdown(md string) {
	if *plainMarkdown {
		fmt.Fprint(stdout, md)
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err == nil {
		var styled string
		if styled, err = r.Render(md); err == nil {
			fmt.Fprint(stdout, styled)
			return
		}
	}
	fmt.Fprint(stdout, md)
}
