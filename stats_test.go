package compound

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/PaesslerAG/jsonpath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshots(t *testing.T) {
	s := Stats{Investments: make([]float64, 30)}
	for i := range s.Investments {
		s.Investments[i] = float64(i)
	}
	assert.Equal(t, []Snapshot{{0, 0}, {12, 12}, {24, 24}}, s.Snapshots())
	assert.Empty(t, Stats{}.Snapshots())
}

func TestStatsJSON(t *testing.T) {
	in := Input{MonthlyContribution: 100, AnnualGrowthRate: 0, HorizonYears: 1}
	data, err := json.Marshal(Simulate(in, nil))
	require.NoError(t, err)
	assert.Equal(t, `{"invested_capital":1200,"roi":100,"pnl":1200,"avg":100,"investments":[100,100,100,100,100,100,100,100,100,100,100,100]}`, string(data))

	_, err = json.Marshal(Stats{ROI: math.NaN()})
	assert.Error(t, err, "NaN cannot be encoded")
}

func TestInputJSON(t *testing.T) {
	in := Input{
		MonthlyContribution: 500,
		AnnualGrowthRate:    0.08,
		HorizonYears:        10,
		Drops:               []DropSpec{{Severity: 0.15, Occurrences: 2}, {Severity: 0.4, Occurrences: 1}},
	}
	data, err := json.Marshal(in)
	require.NoError(t, err)

	var v interface{}
	require.NoError(t, json.Unmarshal(data, &v))
	for path, want := range map[string]interface{}{
		"$.monthly_contribution":   500.0,
		"$.annual_growth_rate":     0.08,
		"$.horizon_years":          10.0,
		"$.drops[1].severity":      0.4,
		"$.drops[0].occurrences":   2.0,
	} {
		got, err := jsonpath.Get(path, v)
		require.NoError(t, err, path)
		assert.Equal(t, want, got, path)
	}

	in.Drops = nil
	data, err = json.Marshal(in)
	require.NoError(t, err)
	assert.Equal(t, `{"monthly_contribution":500,"annual_growth_rate":0.08,"horizon_years":10}`, string(data))
}
