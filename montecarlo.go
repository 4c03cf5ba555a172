package compound

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes the distribution of one statistic over many runs.
type Summary struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"stddev"`
	Min    float64 `json:"min"`
	P5     float64 `json:"p5"`
	P50    float64 `json:"p50"`
	P95    float64 `json:"p95"`
	Max    float64 `json:"max"`
}

// Distribution summarizes repeated simulations of the same Input.
type Distribution struct {
	Runs int     `json:"runs"`
	PnL  Summary `json:"pnl"`
	ROI  Summary `json:"roi"`
}

// RunMany simulates in runs times, drawing every drop schedule from rnd, and
// summarizes the resulting PnL and ROI.
//
// Runs are sequential: the same rnd produces the same distribution.
func RunMany(in Input, rnd Rand, runs int) (Distribution, error) {
	if runs < 1 {
		return Distribution{}, fmt.Errorf("%w: runs %d must be at least 1", ErrInvalidInput, runs)
	}
	pnl := make([]float64, runs)
	roi := make([]float64, runs)
	for i := range runs {
		s := Simulate(in, rnd)
		pnl[i], roi[i] = s.PnL, s.ROI
	}
	return Distribution{
		Runs: runs,
		PnL:  summarize(pnl),
		ROI:  summarize(roi),
	}, nil
}

// summarize sorts x in place.
func summarize(x []float64) Summary {
	slices.Sort(x)
	mean, std := stat.MeanStdDev(x, nil)
	if len(x) == 1 {
		std = 0 // the unbiased estimate is NaN for a single sample.
	}
	return Summary{
		Mean:   mean,
		StdDev: std,
		Min:    floats.Min(x),
		P5:     stat.Quantile(0.05, stat.Empirical, x, nil),
		P50:    stat.Quantile(0.50, stat.Empirical, x, nil),
		P95:    stat.Quantile(0.95, stat.Empirical, x, nil),
		Max:    floats.Max(x),
	}
}
