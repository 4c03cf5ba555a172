package cmd

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/etnz/compound"
	"github.com/google/subcommands"
)

// prompter asks questions on out and reads the answers, one per line, from in.
type prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func newPrompter(r io.Reader, w io.Writer) *prompter {
	return &prompter{in: bufio.NewScanner(r), out: w}
}

// ask prints prompt and returns the next line of input.
func (p *prompter) ask(prompt string) (string, error) {
	fmt.Fprintln(p.out, prompt)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", fmt.Errorf("cannot read answer: %w", err)
		}
		return "", fmt.Errorf("no answer to %q: %w", prompt, io.ErrUnexpectedEOF)
	}
	return strings.TrimSpace(p.in.Text()), nil
}

// readFloat asks until the answer is a finite number accepted by check.
func (p *prompter) readFloat(prompt string, check func(float64) error) (float64, error) {
	for {
		answer, err := p.ask(prompt)
		if err != nil {
			return 0, err
		}
		v, err := strconv.ParseFloat(answer, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			fmt.Fprintln(p.out, "ERROR: Not a valid float. Please try again.")
			continue
		}
		if check != nil {
			if err := check(v); err != nil {
				fmt.Fprintf(p.out, "ERROR: %v. Please try again.\n", err)
				continue
			}
		}
		return v, nil
	}
}

// readUint asks until the answer is an unsigned integer not below least.
func (p *prompter) readUint(prompt string, least int) (int, error) {
	for {
		answer, err := p.ask(prompt)
		if err != nil {
			return 0, err
		}
		v, err := strconv.ParseUint(answer, 10, 31)
		if err != nil {
			fmt.Fprintln(p.out, "ERROR: Not a valid unsigned integer. Please try again.")
			continue
		}
		if int(v) < least {
			fmt.Fprintf(p.out, "ERROR: Must be at least %d. Please try again.\n", least)
			continue
		}
		return int(v), nil
	}
}

// confirm asks a yes/no question, only "y" is a yes.
func (p *prompter) confirm(prompt string) (bool, error) {
	answer, err := p.ask(prompt)
	if err != nil {
		return false, err
	}
	return strings.EqualFold(answer, "y"), nil
}

// menu returns the drop selection menu.
func menu() string {
	var b strings.Builder
	b.WriteString("Select an option:")
	for _, e := range compound.Catalog {
		fmt.Fprintf(&b, "\n%s. %s", e.Key, e.Label)
	}
	fmt.Fprintf(&b, "\n%d. Exit", len(compound.Catalog)+1)
	return b.String()
}

// readDrops runs the drop menu until exit is selected.
func (p *prompter) readDrops() ([]compound.DropSpec, error) {
	exit := strconv.Itoa(len(compound.Catalog) + 1)
	var drops []compound.DropSpec
	for {
		option, err := p.ask(menu())
		if err != nil {
			return nil, err
		}
		if option == exit {
			return drops, nil
		}
		entry, err := compound.LookupDrop(option)
		if err != nil || entry.Key != option {
			fmt.Fprintln(p.out, "Invalid option. Please try again.")
			continue
		}
		count, err := p.readUint("How many?", 0)
		if err != nil {
			return nil, err
		}
		drops = append(drops, entry.Drop(count))
	}
}

// readInput asks for every parameter of a simulation.
func (p *prompter) readInput() (compound.Input, error) {
	var in compound.Input
	var err error

	positive := func(v float64) error {
		if v <= 0 {
			return errors.New("the amount must be positive")
		}
		return nil
	}
	if in.MonthlyContribution, err = p.readFloat("How much money do you expect to invest each month?", positive); err != nil {
		return in, err
	}
	if in.AnnualGrowthRate, err = p.readFloat("What is the yearly return on investment of the stock? (e.g., 0.04)", nil); err != nil {
		return in, err
	}
	if in.HorizonYears, err = p.readUint("How many years do you plan to compound this investment?", 1); err != nil {
		return in, err
	}
	withDrops, err := p.confirm("Do you want to add drops in the calculation? y/n")
	if err != nil {
		return in, err
	}
	if withDrops {
		if in.Drops, err = p.readDrops(); err != nil {
			return in, err
		}
	}
	return in, in.Validate()
}

// interactiveCmd holds the flags for the 'interactive' subcommand.
type interactiveCmd struct {
	seed uint64
}

func (*interactiveCmd) Name() string     { return "interactive" }
func (*interactiveCmd) Synopsis() string { return "simulate an investment plan answering questions" }
func (*interactiveCmd) Usage() string {
	return `compound interactive [-seed <n>]

  Asks for the monthly contribution, the yearly return, the horizon and the
  drops to simulate, then prints the report or saves it to a file.

`
}

func (c *interactiveCmd) SetFlags(f *flag.FlagSet) {
	f.Uint64Var(&c.seed, "seed", 0, "Seed of the random drop placement. 0 picks a random seed.")
}

func (c *interactiveCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	e, err := newEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitFailure
	}

	p := newPrompter(stdin, stdout)
	in, err := p.readInput()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	stats := compound.SimulateSchedule(in, e.schedule(in, e.newRand(c.seed)))

	save, err := p.confirm("Do you want to save to file? y/n")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if save {
		return e.save(in, stats)
	}
	return e.print("text", in, stats)
}
