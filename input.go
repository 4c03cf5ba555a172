package compound

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// ErrInvalidInput is wrapped by every validation error.
var ErrInvalidInput = errors.New("invalid input")

// MonthsPerYear is the number of compounding periods in a year.
const MonthsPerYear = 12

// Input holds the parameters of a simulation.
//
// Input is built once by a front end and is read-only afterwards.
type Input struct {
	MonthlyContribution float64    // amount invested every month.
	AnnualGrowthRate    float64    // yearly rate as a fraction (0.08), may be negative.
	HorizonYears        int        // simulation length in years.
	Drops               []DropSpec // drops to place at random months, in order.
}

// Months returns the simulation horizon in months.
func (in Input) Months() int { return in.HorizonYears * MonthsPerYear }

// MonthlyRate returns the growth rate applied every month without a drop.
func (in Input) MonthlyRate() float64 { return in.AnnualGrowthRate / MonthsPerYear }

// Validate checks the input before it is handed to Simulate.
//
// Simulate itself accepts any input, a zero horizon yields NaN statistics.
func (in Input) Validate() error {
	if math.IsNaN(in.MonthlyContribution) || math.IsInf(in.MonthlyContribution, 0) || in.MonthlyContribution <= 0 {
		return fmt.Errorf("%w: monthly contribution %v must be a positive amount", ErrInvalidInput, in.MonthlyContribution)
	}
	if math.IsNaN(in.AnnualGrowthRate) || math.IsInf(in.AnnualGrowthRate, 0) {
		return fmt.Errorf("%w: annual growth rate %v is not a number", ErrInvalidInput, in.AnnualGrowthRate)
	}
	if in.HorizonYears < 1 {
		return fmt.Errorf("%w: horizon %d must be at least 1 year", ErrInvalidInput, in.HorizonYears)
	}
	for i, d := range in.Drops {
		if err := d.Validate(); err != nil {
			return fmt.Errorf("drop #%d: %w", i+1, err)
		}
	}
	return nil
}

// Filename returns the report file name "{contribution}-{rate}-{years}.txt".
//
// Numbers use their shortest representation: 100, 0.08, 10.
func (in Input) Filename() string {
	return fmt.Sprintf("%s-%s-%d.txt",
		strconv.FormatFloat(in.MonthlyContribution, 'f', -1, 64),
		strconv.FormatFloat(in.AnnualGrowthRate, 'f', -1, 64),
		in.HorizonYears)
}
