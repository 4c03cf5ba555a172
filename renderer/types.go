package renderer

import (
	"fmt"

	"github.com/etnz/compound"
)

// Plan is the view of a simulation Input.
type Plan struct {
	Contribution string
	Rate         string
	Years        int
	Drops        []string
}

// Simulation is the view of a single simulation.
type Simulation struct {
	Plan
	Invested string
	ROI      string
	Gain     string // ROI above the invested capital, signed.
	PnL      string
	Avg      string
	Tranches []Tranche
}

// Tranche is a row of the yearly series.
type Tranche struct {
	Year  int
	Month int
	Value string
}

// Distribution is the view of a Monte Carlo summary.
type Distribution struct {
	Plan
	Runs int
	Rows []DistributionRow
}

// DistributionRow holds one statistic of the summary for PnL and ROI.
type DistributionRow struct {
	Label string
	PnL   string
	ROI   string
}

// Catalog is the view of the drop catalog.
type Catalog struct {
	Entries []CatalogEntry
}

// CatalogEntry is a row of the drop catalog.
type CatalogEntry struct {
	Key      string
	Name     string
	Label    string
	Severity string
}

// NewPlan builds the view of in, amounts are formatted in currency.
func NewPlan(in compound.Input, currency string) Plan {
	p := Plan{
		Contribution: compound.M(in.MonthlyContribution, currency).String(),
		Rate:         compound.RatioPercent(in.AnnualGrowthRate).String(),
		Years:        in.HorizonYears,
	}
	for _, d := range in.Drops {
		p.Drops = append(p.Drops, d.String())
	}
	return p
}

// NewSimulation builds the view of the simulation of in.
func NewSimulation(in compound.Input, s compound.Stats, currency string) *Simulation {
	money := func(v float64) string { return compound.M(v, currency).String() }
	view := &Simulation{
		Plan:     NewPlan(in, currency),
		Invested: money(s.InvestedCapital),
		ROI:      compound.Percent(s.ROI).String(),
		Gain:     compound.Percent(s.ROI - 100).SignedString(),
		PnL:      money(s.PnL),
		Avg:      money(s.Avg),
	}
	for _, snap := range s.Snapshots() {
		view.Tranches = append(view.Tranches, Tranche{
			Year:  snap.Month/compound.MonthsPerYear + 1,
			Month: snap.Month,
			Value: money(snap.Value),
		})
	}
	return view
}

// NewDistribution builds the view of a Monte Carlo summary of in.
func NewDistribution(in compound.Input, d compound.Distribution, currency string) *Distribution {
	money := func(v float64) string { return compound.M(v, currency).String() }
	percent := func(v float64) string { return compound.Percent(v).String() }
	row := func(label string, pnl, roi float64) DistributionRow {
		return DistributionRow{Label: label, PnL: money(pnl), ROI: percent(roi)}
	}
	return &Distribution{
		Plan: NewPlan(in, currency),
		Runs: d.Runs,
		Rows: []DistributionRow{
			row("Mean", d.PnL.Mean, d.ROI.Mean),
			row("Std. deviation", d.PnL.StdDev, d.ROI.StdDev),
			row("Minimum", d.PnL.Min, d.ROI.Min),
			row("5th percentile", d.PnL.P5, d.ROI.P5),
			row("Median", d.PnL.P50, d.ROI.P50),
			row("95th percentile", d.PnL.P95, d.ROI.P95),
			row("Maximum", d.PnL.Max, d.ROI.Max),
		},
	}
}

// NewCatalog builds the view of compound.Catalog.
func NewCatalog() *Catalog {
	c := &Catalog{}
	for _, e := range compound.Catalog {
		c.Entries = append(c.Entries, CatalogEntry{
			Key:      e.Key,
			Name:     e.Name,
			Label:    e.Label,
			Severity: fmt.Sprint(compound.RatioPercent(e.Severity)),
		})
	}
	return c
}
