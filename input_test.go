package compound

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInputValidate(t *testing.T) {
	valid := Input{MonthlyContribution: 100, AnnualGrowthRate: -0.02, HorizonYears: 1, Drops: []DropSpec{{Severity: 1, Occurrences: 0}}}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name  string
		input Input
	}{
		{"zero contribution", Input{MonthlyContribution: 0, HorizonYears: 1}},
		{"negative contribution", Input{MonthlyContribution: -1, HorizonYears: 1}},
		{"infinite contribution", Input{MonthlyContribution: math.Inf(1), HorizonYears: 1}},
		{"rate is NaN", Input{MonthlyContribution: 1, AnnualGrowthRate: math.NaN(), HorizonYears: 1}},
		{"zero horizon", Input{MonthlyContribution: 1, HorizonYears: 0}},
		{"invalid drop", Input{MonthlyContribution: 1, HorizonYears: 1, Drops: []DropSpec{{Severity: 0.1, Occurrences: -1}}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, tc.input.Validate(), ErrInvalidInput)
		})
	}
}

func TestInputDerived(t *testing.T) {
	in := Input{MonthlyContribution: 100, AnnualGrowthRate: 0.12, HorizonYears: 10}
	assert.Equal(t, 120, in.Months())
	assert.InDelta(t, 0.01, in.MonthlyRate(), 1e-15)
}

func TestInputFilename(t *testing.T) {
	tests := []struct {
		input Input
		want  string
	}{
		{Input{MonthlyContribution: 100, AnnualGrowthRate: 0.08, HorizonYears: 10}, "100-0.08-10.txt"},
		{Input{MonthlyContribution: 99.5, AnnualGrowthRate: -0.1, HorizonYears: 1}, "99.5--0.1-1.txt"},
		{Input{MonthlyContribution: 1e6, AnnualGrowthRate: 0, HorizonYears: 40}, "1000000-0-40.txt"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, tc.input.Filename())
	}
}
