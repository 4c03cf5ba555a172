package compound

// Stats is the result of a simulation.
type Stats struct {
	InvestedCapital float64   // total contributed: months x monthly contribution.
	ROI             float64   // PnL as a percentage of InvestedCapital.
	PnL             float64   // sum of every tranche's final value.
	Avg             float64   // PnL per month.
	Investments     []float64 // final value of each month's tranche, in contribution order.
}

// Snapshot is the value of one tranche in the yearly series.
type Snapshot struct {
	Month int
	Value float64
}

// Snapshots returns the yearly series: the tranches contributed on the first
// month of every year.
func (s Stats) Snapshots() []Snapshot {
	snapshots := make([]Snapshot, 0, len(s.Investments)/MonthsPerYear+1)
	for i, v := range s.Investments {
		if i%MonthsPerYear == 0 {
			snapshots = append(snapshots, Snapshot{Month: i, Value: v})
		}
	}
	return snapshots
}

// MarshalJSON encodes the stats with a stable field order.
func (s Stats) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("invested_capital", s.InvestedCapital)
	w.Append("roi", s.ROI)
	w.Append("pnl", s.PnL)
	w.Append("avg", s.Avg)
	investments := s.Investments
	if investments == nil {
		investments = []float64{}
	}
	w.Append("investments", investments)
	return w.MarshalJSON()
}

// MarshalJSON encodes the input with a stable field order, drops are omitted when nil.
func (in Input) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("monthly_contribution", in.MonthlyContribution)
	w.Append("annual_growth_rate", in.AnnualGrowthRate)
	w.Append("horizon_years", in.HorizonYears)
	w.Optional("drops", in.Drops)
	return w.MarshalJSON()
}

func (d DropSpec) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("severity", d.Severity)
	w.Append("occurrences", d.Occurrences)
	return w.MarshalJSON()
}
