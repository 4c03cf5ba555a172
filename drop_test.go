package compound

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupDrop(t *testing.T) {
	for _, key := range []string{"2", "correction", " Correction "} {
		e, err := LookupDrop(key)
		require.NoError(t, err, key)
		assert.Equal(t, 0.15, e.Severity)
	}
	_, err := LookupDrop("4")
	assert.ErrorIs(t, err, ErrUnknownDrop)
}

func TestParseDropSpec(t *testing.T) {
	tests := []struct {
		in      string
		want    DropSpec
		wantErr bool
	}{
		{in: "recession:2", want: DropSpec{Severity: 0.40, Occurrences: 2}},
		{in: "small-dip:0", want: DropSpec{Severity: 0.05, Occurrences: 0}},
		{in: "3:1", want: DropSpec{Severity: 0.40, Occurrences: 1}},
		{in: "0.25:4", want: DropSpec{Severity: 0.25, Occurrences: 4}},
		{in: "1:1", want: DropSpec{Severity: 0.05, Occurrences: 1}}, // "1" is the small dip menu key.
		{in: "1.0:1", want: DropSpec{Severity: 1, Occurrences: 1}},
		{in: "correction", wantErr: true},
		{in: "correction:x", wantErr: true},
		{in: "correction:-1", wantErr: true},
		{in: "crash:1", wantErr: true},
		{in: "1.5:1", wantErr: true},
		{in: "0:1", wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseDropSpec(tc.in)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCatalog(t *testing.T) {
	require.Len(t, Catalog, 3)
	for i, e := range Catalog {
		assert.NoError(t, e.Drop(1).Validate(), e.Name)
		if i > 0 {
			assert.Greater(t, e.Severity, Catalog[i-1].Severity)
		}
	}
	assert.Equal(t, "15.00% x2", Catalog[1].Drop(2).String())
}
