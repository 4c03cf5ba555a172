package compound

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnknownDrop is returned when a drop is looked up by a key or name that is not in the Catalog.
var ErrUnknownDrop = errors.New("unknown drop")

// DropSpec is a class of market drop: every time it strikes, all the value
// accumulated so far loses Severity.
type DropSpec struct {
	Severity    float64 // fraction of the value lost, in (0,1].
	Occurrences int     // number of random months this drop strikes.
}

// Validate checks that the drop can be simulated.
func (d DropSpec) Validate() error {
	if !(d.Severity > 0 && d.Severity <= 1) {
		return fmt.Errorf("%w: drop severity %v must be in (0,1]", ErrInvalidInput, d.Severity)
	}
	if d.Occurrences < 0 {
		return fmt.Errorf("%w: drop occurrences %d must not be negative", ErrInvalidInput, d.Occurrences)
	}
	return nil
}

func (d DropSpec) String() string {
	return fmt.Sprintf("%s x%d", RatioPercent(d.Severity), d.Occurrences)
}

// CatalogEntry is one of the predefined drops users can pick from.
type CatalogEntry struct {
	Key      string // menu key, as typed in the interactive menu.
	Name     string // short name, as used on the command line.
	Label    string // menu label.
	Severity float64
}

// Drop returns a DropSpec of this entry's severity striking count times.
func (e CatalogEntry) Drop(count int) DropSpec {
	return DropSpec{Severity: e.Severity, Occurrences: count}
}

// Catalog lists the predefined drops, in menu order.
var Catalog = []CatalogEntry{
	{Key: "1", Name: "small-dip", Label: "Small dips ~ 5%", Severity: 0.05},
	{Key: "2", Name: "correction", Label: "Correction ~ 15%", Severity: 0.15},
	{Key: "3", Name: "recession", Label: "Recession ~ 40%", Severity: 0.40},
}

// LookupDrop finds a catalog entry by its menu key or its name.
func LookupDrop(keyOrName string) (CatalogEntry, error) {
	k := strings.ToLower(strings.TrimSpace(keyOrName))
	for _, e := range Catalog {
		if e.Key == k || e.Name == k {
			return e, nil
		}
	}
	return CatalogEntry{}, fmt.Errorf("%w: %q", ErrUnknownDrop, keyOrName)
}

// ParseDropSpec parses a drop in the form "<severity>:<count>" where severity
// is either a catalog name ("correction:2") or a fraction ("0.25:1").
func ParseDropSpec(s string) (DropSpec, error) {
	sev, cnt, found := strings.Cut(s, ":")
	if !found {
		return DropSpec{}, fmt.Errorf("%w: drop %q is not in the form <severity>:<count>", ErrInvalidInput, s)
	}

	count, err := strconv.Atoi(strings.TrimSpace(cnt))
	if err != nil {
		return DropSpec{}, fmt.Errorf("%w: invalid drop count in %q: %v", ErrInvalidInput, s, err)
	}

	var d DropSpec
	if e, err := LookupDrop(sev); err == nil {
		d = e.Drop(count)
	} else {
		severity, perr := strconv.ParseFloat(strings.TrimSpace(sev), 64)
		if perr != nil {
			return DropSpec{}, fmt.Errorf("%w: drop severity in %q: %w", ErrInvalidInput, s, err)
		}
		d = DropSpec{Severity: severity, Occurrences: count}
	}
	return d, d.Validate()
}
