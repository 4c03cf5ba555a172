package compound

import "gonum.org/v1/gonum/floats"

// Rand is the source of randomness used to place drops.
//
// *math/rand/v2.Rand implements it.
type Rand interface {
	// IntN returns a uniform random integer in [0,n). n is always > 0.
	IntN(n int) int
}

// Schedule places the drops of in at random months.
//
// For every DropSpec, in order, Occurrences months are drawn in [0, in.Months()).
// When two draws hit the same month the last one wins, so a month is struck by
// at most one drop, and a drawn occurrence can be lost.
func Schedule(in Input, rnd Rand) map[int]DropSpec {
	months := in.Months()
	schedule := make(map[int]DropSpec)
	if months <= 0 {
		return schedule
	}
	for _, d := range in.Drops {
		for range d.Occurrences {
			schedule[rnd.IntN(months)] = d
		}
	}
	return schedule
}

// Simulate runs the simulation of in, placing drops with rnd.
func Simulate(in Input, rnd Rand) Stats {
	return SimulateSchedule(in, Schedule(in, rnd))
}

// SimulateSchedule runs the simulation of in with drops already placed.
//
// Every month a new tranche worth the monthly contribution is appended, then
// every tranche, including the new one, is multiplied by (1-severity) if a
// drop strikes that month, by (1+monthly rate) otherwise.
func SimulateSchedule(in Input, schedule map[int]DropSpec) Stats {
	months := in.Months()
	growth := 1 + in.MonthlyRate()

	series := make([]float64, 0, max(months, 0))
	for i := 0; i < months; i++ {
		series = append(series, in.MonthlyContribution)

		factor := growth
		if d, ok := schedule[i]; ok {
			factor = 1 - d.Severity
		}
		floats.Scale(factor, series)
	}

	pnl := floats.Sum(series)
	invested := float64(months) * in.MonthlyContribution
	return Stats{
		InvestedCapital: invested,
		ROI:             pnl / invested * 100,
		PnL:             pnl,
		Avg:             pnl / float64(months),
		Investments:     series,
	}
}
