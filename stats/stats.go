// Package stats summarizes numeric columns of a table.
package stats

import (
	"fmt"
	"strconv"
	"strings"

	mstats "github.com/montanaflynn/stats"

	"github.com/klemenp/plaintab/core"
)

// Summary is a numeric description of a single column. Cells that do not
// parse as numbers are skipped, not errors.
type Summary struct {
	Column  string
	Count   int
	Skipped int
	Min     float64
	Max     float64
	Mean    float64
	Median  float64
	StdDev  float64
}

// Describe computes a Summary for the named column. It fails when the column
// does not exist or contains no numeric cells at all.
func Describe(table *core.Table, column string) (*Summary, error) {
	cells, ok := table.Column(column)
	if !ok {
		return nil, fmt.Errorf("no column named %q", column)
	}

	var data mstats.Float64Data
	skipped := 0
	for _, cell := range cells {
		value, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
		if err != nil {
			skipped++
			continue
		}
		data = append(data, value)
	}

	if len(data) == 0 {
		return nil, fmt.Errorf("column %q has no numeric cells", column)
	}

	summary := &Summary{
		Column:  column,
		Count:   len(data),
		Skipped: skipped,
	}

	var err error
	if summary.Min, err = data.Min(); err != nil {
		return nil, fmt.Errorf("data.Min: %w", err)
	}
	if summary.Max, err = data.Max(); err != nil {
		return nil, fmt.Errorf("data.Max: %w", err)
	}
	if summary.Mean, err = data.Mean(); err != nil {
		return nil, fmt.Errorf("data.Mean: %w", err)
	}
	if summary.Median, err = data.Median(); err != nil {
		return nil, fmt.Errorf("data.Median: %w", err)
	}
	if summary.StdDev, err = data.StandardDeviation(); err != nil {
		return nil, fmt.Errorf("data.StandardDeviation: %w", err)
	}

	return summary, nil
}
