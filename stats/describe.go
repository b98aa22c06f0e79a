package stats

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Describe mirrors the classic descriptive-statistics table for one
// numeric column: count, mean, sample std, min, quartiles, max.
type Describe struct {
	Count  int
	Mean   float64
	Std    float64
	Min    float64
	Q25    float64
	Median float64
	Q75    float64
	Max    float64
}

// DescribeValues computes the table. An empty input yields the zero
// Describe rather than NaN.
func DescribeValues(vals []float64) Describe {
	d := Describe{Count: len(vals)}
	if d.Count == 0 {
		return d
	}

	sorted := make([]float64, len(vals))
	copy(sorted, vals)
	sort.Float64s(sorted)

	d.Mean = stat.Mean(sorted, nil)
	if d.Count > 1 {
		d.Std = stat.StdDev(sorted, nil)
	}
	d.Min = sorted[0]
	d.Max = sorted[len(sorted)-1]
	d.Q25 = stat.Quantile(0.25, stat.Empirical, sorted, nil)
	d.Median = stat.Quantile(0.5, stat.Empirical, sorted, nil)
	d.Q75 = stat.Quantile(0.75, stat.Empirical, sorted, nil)
	return d
}
