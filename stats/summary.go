package stats

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"accident-analytics-api/models"
)

// ComputeMetrics builds the headline dashboard metrics. All values are
// defined on an empty table: counts are zero, rate and mean report 0.
func ComputeMetrics(recs []models.AccidentRecord) models.SummaryMetrics {
	m := models.SummaryMetrics{Total: len(recs)}
	if m.Total == 0 {
		return m
	}

	casualties := 0
	for _, r := range recs {
		switch r.Severity {
		case models.SeverityFatal:
			m.Fatal++
		case models.SeveritySerious:
			m.Serious++
		}
		casualties += r.NumCasualties
	}
	m.FatalityRate = float64(m.Fatal) / float64(m.Total) * 100
	m.AvgCasualties = float64(casualties) / float64(m.Total)
	return m
}

// Domains lists every selectable filter value present in the canonical
// table, each set sorted for stable output.
func Domains(recs []models.AccidentRecord) models.FilterDomains {
	d := models.FilterDomains{}
	years := CountBy(recs, ByYear)
	for y := range years {
		if d.YearMin == 0 || y < d.YearMin {
			d.YearMin = y
		}
		if y > d.YearMax {
			d.YearMax = y
		}
	}
	d.Severities = distinct(CountBy(recs, BySeverity))
	d.Genders = distinct(CountBy(recs, ByCategory(func(r models.AccidentRecord) *string { return r.Gender })))
	d.Weathers = distinct(CountBy(recs, ByCategory(func(r models.AccidentRecord) *string { return r.Weather })))
	d.AgeGroups = distinct(CountBy(recs, ByCategory(func(r models.AccidentRecord) *string { return r.AgeGroup })))
	return d
}

func distinct(counts map[string]int) []string {
	out := make([]string, 0, len(counts))
	for v := range counts {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// YearlyTrends builds the per-year trend table in ascending year order:
// accident count, casualty sum, mean vehicles, fatal count, fatality
// rate.
func YearlyTrends(recs []models.AccidentRecord) []models.YearlyTrend {
	counts := CountBy(recs, ByYear)
	casualties := SumBy(recs, ByYear, func(r models.AccidentRecord) float64 { return float64(r.NumCasualties) })
	vehicles := MeanBy(recs, ByYear, func(r models.AccidentRecord) float64 { return float64(r.NumVehicles) })
	fatal := make(map[int]int)
	for _, r := range recs {
		if r.Year != nil && r.Severity == models.SeverityFatal {
			fatal[*r.Year]++
		}
	}

	years := make([]int, 0, len(counts))
	for y := range counts {
		years = append(years, y)
	}
	sort.Ints(years)

	out := make([]models.YearlyTrend, 0, len(years))
	for _, y := range years {
		t := models.YearlyTrend{
			Year:        y,
			Accidents:   counts[y],
			Casualties:  int(casualties[y]),
			AvgVehicles: vehicles[y],
			Fatal:       fatal[y],
		}
		if t.Accidents > 0 {
			t.FatalityRate = float64(t.Fatal) / float64(t.Accidents) * 100
		}
		out = append(out, t)
	}
	return out
}

// WeekdayBreakdown builds the Monday..Sunday table of accidents,
// casualties, fatal counts and fatality rate.
func WeekdayBreakdown(recs []models.AccidentRecord) []models.WeekdayStats {
	counts := CountBy(recs, ByWeekday)
	casualties := SumBy(recs, ByWeekday, func(r models.AccidentRecord) float64 { return float64(r.NumCasualties) })
	fatal := make(map[string]int)
	for _, r := range recs {
		if r.Weekday != "" && r.Severity == models.SeverityFatal {
			fatal[r.Weekday]++
		}
	}

	out := make([]models.WeekdayStats, 0, len(Weekdays))
	for _, day := range Weekdays {
		s := models.WeekdayStats{
			Weekday:    day,
			Accidents:  counts[day],
			Casualties: int(casualties[day]),
			Fatal:      fatal[day],
		}
		if s.Accidents > 0 {
			s.FatalityRate = float64(s.Fatal) / float64(s.Accidents) * 100
		}
		out = append(out, s)
	}
	return out
}

// TimePatterns picks the peak hour/month/weekday and the safest
// weekday of the filtered table. Fields stay zero/empty when the table
// has no derivable values.
type TimePatterns struct {
	PeakHour      *int   `json:"peak_hour"`
	PeakMonth     int    `json:"peak_month"`
	PeakWeekday   string `json:"peak_weekday"`
	SafestWeekday string `json:"safest_weekday"`
}

func ComputeTimePatterns(recs []models.AccidentRecord) TimePatterns {
	p := TimePatterns{}
	if h, ok := argmaxInt(CountBy(recs, ByHour)); ok {
		p.PeakHour = &h
	}
	if m, ok := argmaxInt(CountBy(recs, ByMonth)); ok {
		p.PeakMonth = m
	}
	weekdays := CountBy(recs, ByWeekday)
	if d, ok := argmaxString(weekdays); ok {
		p.PeakWeekday = d
	}
	if d, ok := argminString(weekdays); ok {
		p.SafestWeekday = d
	}
	return p
}

// CasualtyStats summarizes the casualty columns of the filtered table.
type CasualtyStats struct {
	TotalCasualties int     `json:"total_casualties"`
	AvgCasualties   float64 `json:"avg_casualties"`
	MaxCasualties   int     `json:"max_casualties"`
	AvgVehicles     float64 `json:"avg_vehicles"`
}

func ComputeCasualtyStats(recs []models.AccidentRecord) CasualtyStats {
	s := CasualtyStats{}
	if len(recs) == 0 {
		return s
	}
	vehicles := make([]float64, 0, len(recs))
	casualties := make([]float64, 0, len(recs))
	for _, r := range recs {
		s.TotalCasualties += r.NumCasualties
		if r.NumCasualties > s.MaxCasualties {
			s.MaxCasualties = r.NumCasualties
		}
		vehicles = append(vehicles, float64(r.NumVehicles))
		casualties = append(casualties, float64(r.NumCasualties))
	}
	s.AvgCasualties = stat.Mean(casualties, nil)
	s.AvgVehicles = stat.Mean(vehicles, nil)
	return s
}

// FatalShare is the fatal percentage within one condition's accidents.
type FatalShare struct {
	Condition string  `json:"condition"`
	FatalPct  float64 `json:"fatal_pct"`
}

// FatalShareByWeather ranks the top-n weather conditions of fatal
// accidents by their within-condition fatal percentage.
func FatalShareByWeather(recs []models.AccidentRecord, n int) []FatalShare {
	weather := ByCategory(func(r models.AccidentRecord) *string { return r.Weather })
	total := CountBy(recs, weather)
	fatal := make(map[string]int)
	for _, r := range recs {
		if w, ok := weather(r); ok && r.Severity == models.SeverityFatal {
			fatal[w]++
		}
	}

	top := TopN(fatal, n)
	out := make([]FatalShare, 0, len(top))
	for _, cc := range top {
		share := FatalShare{Condition: cc.Value}
		if total[cc.Value] > 0 {
			share.FatalPct = float64(cc.Count) / float64(total[cc.Value]) * 100
		}
		out = append(out, share)
	}
	return out
}

func argmaxInt(counts map[int]int) (int, bool) {
	best, bestCount, found := 0, -1, false
	keys := make([]int, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	for _, k := range keys {
		if counts[k] > bestCount {
			best, bestCount, found = k, counts[k], true
		}
	}
	return best, found
}

func argmaxString(counts map[string]int) (string, bool) {
	best, bestCount, found := "", -1, false
	for _, k := range distinct(counts) {
		if counts[k] > bestCount {
			best, bestCount, found = k, counts[k], true
		}
	}
	return best, found
}

func argminString(counts map[string]int) (string, bool) {
	best, bestCount, found := "", -1, false
	for _, k := range distinct(counts) {
		if bestCount < 0 || counts[k] < bestCount {
			best, bestCount, found = k, counts[k], true
		}
	}
	return best, found
}
