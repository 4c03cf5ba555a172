package compound

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// WriteReport writes the plain text report of s to w.
//
// The report holds the four summary lines followed by the yearly series:
//
//	 invested_capital: $1200.00
//	 roi: 106.74%
//	 pnl: $1280.93
//	 monthly avg: $106.74
//		Investment #0. Pnl: $112.68
func WriteReport(w io.Writer, s Stats) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, " invested_capital: $%s\n", M(s.InvestedCapital, "").Fixed())
	fmt.Fprintf(bw, " roi: %s\n", Percent(s.ROI))
	fmt.Fprintf(bw, " pnl: $%s\n", M(s.PnL, "").Fixed())
	fmt.Fprintf(bw, " monthly avg: $%s\n", M(s.Avg, "").Fixed())
	for _, snap := range s.Snapshots() {
		fmt.Fprintf(bw, "\tInvestment #%d. Pnl: $%s\n", snap.Month, M(snap.Value, "").Fixed())
	}
	return bw.Flush()
}

// SaveReport writes the report of s into dir, named after in.Filename().
//
// The file is either completely written or not created at all: the report is
// first written to a temporary file that is renamed once complete.
// It returns the path of the report.
func SaveReport(dir string, in Input, s Stats) (path string, err error) {
	path = filepath.Join(dir, in.Filename())

	tmp, err := os.CreateTemp(dir, ".compound-*.txt")
	if err != nil {
		return "", fmt.Errorf("cannot create report file in %q: %w", dir, err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err = WriteReport(tmp, s); err != nil {
		return "", fmt.Errorf("cannot write report %q: %w", path, err)
	}
	if err = tmp.Close(); err != nil {
		return "", fmt.Errorf("cannot write report %q: %w", path, err)
	}
	// CreateTemp uses 0600, reports are regular files.
	if err = os.Chmod(tmp.Name(), 0644); err != nil {
		return "", fmt.Errorf("cannot write report %q: %w", path, err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return "", fmt.Errorf("cannot create report %q: %w", path, err)
	}
	return path, nil
}
