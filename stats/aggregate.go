// Package stats computes the grouped counts and statistics behind the
// report and every dashboard panel. Group maps carry no ordering; the
// Reindex helpers project them onto a caller-supplied domain, filling
// absent groups with zero.
package stats

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"accident-analytics-api/models"
)

// CountBy groups records by key and counts each group. Records whose
// key is absent (ok=false) are skipped.
func CountBy[K comparable](recs []models.AccidentRecord, key func(models.AccidentRecord) (K, bool)) map[K]int {
	out := make(map[K]int)
	for _, r := range recs {
		k, ok := key(r)
		if !ok {
			continue
		}
		out[k]++
	}
	return out
}

// SumBy sums val per group.
func SumBy[K comparable](recs []models.AccidentRecord, key func(models.AccidentRecord) (K, bool), val func(models.AccidentRecord) float64) map[K]float64 {
	out := make(map[K]float64)
	for _, r := range recs {
		k, ok := key(r)
		if !ok {
			continue
		}
		out[k] += val(r)
	}
	return out
}

// MeanBy computes the mean of val per group. Groups exist only when at
// least one record contributed, so every mean is defined.
func MeanBy[K comparable](recs []models.AccidentRecord, key func(models.AccidentRecord) (K, bool), val func(models.AccidentRecord) float64) map[K]float64 {
	groups := make(map[K][]float64)
	for _, r := range recs {
		k, ok := key(r)
		if !ok {
			continue
		}
		groups[k] = append(groups[k], val(r))
	}
	out := make(map[K]float64, len(groups))
	for k, vals := range groups {
		out[k] = stat.Mean(vals, nil)
	}
	return out
}

// CountWhere counts records satisfying pred.
func CountWhere(recs []models.AccidentRecord, pred func(models.AccidentRecord) bool) int {
	n := 0
	for _, r := range recs {
		if pred(r) {
			n++
		}
	}
	return n
}

// CrossTab counts records per (row, col) cell. Records missing either
// key are skipped.
func CrossTab(recs []models.AccidentRecord, rowKey, colKey func(models.AccidentRecord) (string, bool)) map[string]map[string]int {
	out := make(map[string]map[string]int)
	for _, r := range recs {
		rk, ok := rowKey(r)
		if !ok {
			continue
		}
		ck, ok := colKey(r)
		if !ok {
			continue
		}
		if out[rk] == nil {
			out[rk] = make(map[string]int)
		}
		out[rk][ck]++
	}
	return out
}

// Key accessors for the derived and categorical dimensions.

func ByYear(r models.AccidentRecord) (int, bool) {
	if r.Year == nil {
		return 0, false
	}
	return *r.Year, true
}

func ByMonth(r models.AccidentRecord) (int, bool) {
	if r.Month == nil {
		return 0, false
	}
	return *r.Month, true
}

func ByHour(r models.AccidentRecord) (int, bool) {
	if r.Hour == nil {
		return 0, false
	}
	return *r.Hour, true
}

func ByWeekday(r models.AccidentRecord) (string, bool) {
	return r.Weekday, r.Weekday != ""
}

func BySeverity(r models.AccidentRecord) (string, bool) {
	return r.Severity, r.Severity != ""
}

// ByCategory adapts a nullable column accessor into a grouping key.
func ByCategory(get func(models.AccidentRecord) *string) func(models.AccidentRecord) (string, bool) {
	return func(r models.AccidentRecord) (string, bool) {
		v := get(r)
		if v == nil {
			return "", false
		}
		return *v, true
	}
}

// Fixed reindexing domains.

var Weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

var SeverityOrder = []string{models.SeverityFatal, models.SeveritySerious, models.SeveritySlight}

// Hours returns 0..23.
func Hours() []int {
	out := make([]int, 24)
	for i := range out {
		out[i] = i
	}
	return out
}

// Months returns 1..12.
func Months() []int {
	out := make([]int, 12)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

// ReindexInts projects counts onto domain in order, zero-filling
// missing groups.
func ReindexInts(counts map[int]int, domain []int) []models.SeriesPoint {
	out := make([]models.SeriesPoint, 0, len(domain))
	for _, k := range domain {
		out = append(out, models.SeriesPoint{Key: k, Count: counts[k]})
	}
	return out
}

// ReindexStrings projects counts onto domain in order, zero-filling
// missing groups.
func ReindexStrings(counts map[string]int, domain []string) []models.CategoryCount {
	out := make([]models.CategoryCount, 0, len(domain))
	for _, k := range domain {
		out = append(out, models.CategoryCount{Value: k, Count: counts[k]})
	}
	return out
}

// SortedSeries renders an int-keyed count map in ascending key order.
func SortedSeries(counts map[int]int) []models.SeriesPoint {
	keys := make([]int, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	out := make([]models.SeriesPoint, 0, len(keys))
	for _, k := range keys {
		out = append(out, models.SeriesPoint{Key: k, Count: counts[k]})
	}
	return out
}

// TopN renders the n largest groups in descending count order, ties
// broken by value for stable output.
func TopN(counts map[string]int, n int) []models.CategoryCount {
	out := make([]models.CategoryCount, 0, len(counts))
	for v, c := range counts {
		out = append(out, models.CategoryCount{Value: v, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Value < out[j].Value
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
