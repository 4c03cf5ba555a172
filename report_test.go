package compound

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteReport(t *testing.T) {
	in := Input{MonthlyContribution: 100, AnnualGrowthRate: 0.12, HorizonYears: 3}
	s := Simulate(in, nil)

	var b strings.Builder
	require.NoError(t, WriteReport(&b, s))

	want := " invested_capital: $3600.00\n" +
		" roi: 120.85%\n" +
		" pnl: $4350.76\n" +
		" monthly avg: $120.85\n" +
		"\tInvestment #0. Pnl: $143.08\n" +
		"\tInvestment #12. Pnl: $126.97\n" +
		"\tInvestment #24. Pnl: $112.68\n"
	assert.Equal(t, want, b.String())
}

func TestWriteReportNonFinite(t *testing.T) {
	var b strings.Builder
	require.NoError(t, WriteReport(&b, Stats{ROI: math.NaN(), Avg: math.NaN()}))
	assert.Equal(t, " invested_capital: $0.00\n roi: NaN%\n pnl: $0.00\n monthly avg: $NaN\n", b.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteReportError(t *testing.T) {
	assert.Error(t, WriteReport(failingWriter{}, Stats{}))
}

func TestSaveReport(t *testing.T) {
	dir := t.TempDir()
	in := Input{MonthlyContribution: 100, AnnualGrowthRate: 0.12, HorizonYears: 3}
	s := Simulate(in, nil)

	path, err := SaveReport(dir, in, s)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "100-0.12-3.txt"), path)

	var want strings.Builder
	require.NoError(t, WriteReport(&want, s))
	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, want.String(), string(got))

	// saving again replaces the report.
	_, err = SaveReport(dir, in, s)
	require.NoError(t, err)
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestSaveReportMissingDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "missing")
	_, err := SaveReport(dir, Input{MonthlyContribution: 1, HorizonYears: 1}, Stats{})
	assert.Error(t, err)
	_, statErr := os.Stat(dir)
	assert.True(t, os.IsNotExist(statErr))
}
