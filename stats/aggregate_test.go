package stats

import (
	"testing"

	"accident-analytics-api/models"
)

func intPtr(n int) *int       { return &n }
func strPtr(s string) *string { return &s }

func trendTable() []models.AccidentRecord {
	return []models.AccidentRecord{
		{AccidentID: "A1", Year: intPtr(2016), Hour: intPtr(8), Weekday: "Monday", Severity: "Slight", NumVehicles: 2, NumCasualties: 1, Gender: strPtr("Male"), Weather: strPtr("Fine")},
		{AccidentID: "A2", Year: intPtr(2016), Hour: intPtr(8), Weekday: "Monday", Severity: "Fatal", NumVehicles: 1, NumCasualties: 2, Gender: strPtr("Female"), Weather: strPtr("Raining")},
		{AccidentID: "A3", Year: intPtr(2017), Hour: intPtr(17), Weekday: "Friday", Severity: "Serious", NumVehicles: 3, NumCasualties: 1, Gender: strPtr("Male"), Weather: strPtr("Fine")},
		{AccidentID: "A4", Year: nil, Hour: nil, Weekday: "", Severity: "Slight", NumVehicles: 2, NumCasualties: 1, Gender: nil, Weather: nil},
	}
}

func TestCountBy(t *testing.T) {
	counts := CountBy(trendTable(), ByYear)
	if counts[2016] != 2 || counts[2017] != 1 {
		t.Errorf("unexpected year counts: %v", counts)
	}
	if _, ok := counts[0]; ok {
		t.Error("records without a year must be skipped, not bucketed at zero")
	}

	total := 0
	for _, c := range counts {
		total += c
	}
	if total != 3 {
		t.Errorf("grouped counts should cover every derivable record, got %d", total)
	}
}

func TestCountByTotalsConserved(t *testing.T) {
	table := trendTable()
	bySeverity := CountBy(table, BySeverity)
	total := 0
	for _, c := range bySeverity {
		total += c
	}
	if total != len(table) {
		t.Errorf("severity counts sum to %d, want %d", total, len(table))
	}
}

func TestSumAndMeanBy(t *testing.T) {
	table := trendTable()
	sums := SumBy(table, ByYear, func(r models.AccidentRecord) float64 { return float64(r.NumCasualties) })
	if sums[2016] != 3 {
		t.Errorf("expected 3 casualties in 2016, got %v", sums[2016])
	}

	means := MeanBy(table, ByYear, func(r models.AccidentRecord) float64 { return float64(r.NumVehicles) })
	if means[2016] != 1.5 {
		t.Errorf("expected mean vehicles 1.5 in 2016, got %v", means[2016])
	}
	if means[2017] != 3 {
		t.Errorf("expected mean vehicles 3 in 2017, got %v", means[2017])
	}
}

func TestCrossTab(t *testing.T) {
	tab := CrossTab(trendTable(), ByWeekday, BySeverity)
	if tab["Monday"]["Fatal"] != 1 || tab["Monday"]["Slight"] != 1 {
		t.Errorf("unexpected Monday row: %v", tab["Monday"])
	}
	if _, ok := tab[""]; ok {
		t.Error("records without a weekday must not form a row")
	}
}

func TestReindexInts(t *testing.T) {
	counts := map[int]int{8: 5, 17: 2}
	series := ReindexInts(counts, Hours())
	if len(series) != 24 {
		t.Fatalf("expected a point per hour, got %d", len(series))
	}
	if series[8].Count != 5 || series[17].Count != 2 {
		t.Errorf("observed hours lost in reindex: %+v", series)
	}
	for _, p := range series {
		if p.Key != 8 && p.Key != 17 && p.Count != 0 {
			t.Errorf("hour %d should be zero-filled, got %d", p.Key, p.Count)
		}
	}
}

func TestReindexStrings(t *testing.T) {
	counts := map[string]int{"Monday": 3}
	out := ReindexStrings(counts, Weekdays)
	if len(out) != 7 {
		t.Fatalf("expected 7 weekdays, got %d", len(out))
	}
	if out[0].Value != "Monday" || out[0].Count != 3 {
		t.Errorf("expected Monday first with count 3, got %+v", out[0])
	}
	if out[6].Value != "Sunday" || out[6].Count != 0 {
		t.Errorf("expected zero-filled Sunday last, got %+v", out[6])
	}
}

func TestSortedSeries(t *testing.T) {
	series := SortedSeries(map[int]int{2018: 1, 2016: 2, 2017: 3})
	want := []int{2016, 2017, 2018}
	for i, p := range series {
		if p.Key != want[i] {
			t.Fatalf("series not in ascending key order: %+v", series)
		}
	}
}

func TestTopN(t *testing.T) {
	counts := map[string]int{"Fine": 10, "Raining": 4, "Snowing": 4, "Fog": 1}
	top := TopN(counts, 3)
	if len(top) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(top))
	}
	if top[0].Value != "Fine" {
		t.Errorf("expected Fine first, got %s", top[0].Value)
	}
	// ties break on the value, so the order is stable
	if top[1].Value != "Raining" || top[2].Value != "Snowing" {
		t.Errorf("tied counts should order by value: %+v", top)
	}

	if got := TopN(counts, 10); len(got) != 4 {
		t.Errorf("n beyond the map size should return everything, got %d", len(got))
	}
}
