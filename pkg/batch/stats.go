package batch

import (
	"fmt"
	"io"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Summary aggregates resolved pixel sizes across a processed image set.
// Images calibrated in different units (e.g. linear scans next to channeling
// patterns) are summarized separately per unit.
type Summary struct {
	// Images is the number of images processed.
	Images int

	// Failures is the number of images that could not be parsed.
	Failures int

	// PerUnit holds one statistics row per pixel-size unit, ordered by
	// unit name.
	PerUnit []UnitStats
}

// UnitStats are the pixel-size statistics for one unit.
type UnitStats struct {
	Unit   string
	Count  int
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
}

// Summarize computes the pixel-size summary over a batch result set.
func Summarize(results []Result) Summary {
	summary := Summary{Images: len(results), Failures: Failed(results)}

	byUnit := make(map[string][]float64)
	for _, res := range results {
		if res.PixelSizeOK {
			byUnit[res.PixelSize.Unit] = append(byUnit[res.PixelSize.Unit], res.PixelSize.Value)
		}
	}

	units := make([]string, 0, len(byUnit))
	for unit := range byUnit {
		units = append(units, unit)
	}
	sort.Strings(units)

	for _, unit := range units {
		values := byUnit[unit]
		row := UnitStats{
			Unit:  unit,
			Count: len(values),
			Mean:  stat.Mean(values, nil),
			Min:   values[0],
			Max:   values[0],
		}
		if len(values) > 1 {
			row.StdDev = stat.StdDev(values, nil)
		}
		for _, v := range values {
			if v < row.Min {
				row.Min = v
			}
			if v > row.Max {
				row.Max = v
			}
		}
		summary.PerUnit = append(summary.PerUnit, row)
	}
	return summary
}

// printSummary writes the pixel-size summary in the console report style.
func printSummary(w io.Writer, s Summary) {
	fmt.Fprintf(w, "\nPixel size summary across %d images (%d failed):\n", s.Images, s.Failures)
	for _, row := range s.PerUnit {
		fmt.Fprintf(w, "\t%s: n=%d mean=%.6g stddev=%.6g min=%.6g max=%.6g\n",
			row.Unit, row.Count, row.Mean, row.StdDev, row.Min, row.Max)
	}
}
