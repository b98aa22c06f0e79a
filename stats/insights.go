package stats

import (
	"sort"

	"accident-analytics-api/models"
)

// Insights are the derived findings printed at the end of the report:
// severity shares, the long-term yearly trend, time-of-day peaks and
// the demographic concentration.
type Insights struct {
	FatalPct   float64
	SeriousPct float64

	PeakYear        int
	PeakYearCount   int
	LowestYear      int
	LowestYearCount int
	TrendChangePct  float64 // recent 5-year mean vs earliest 5-year mean

	PeakHours    []int // top three hours, busiest first
	MorningRush  int   // accidents between 07:00 and 09:59
	EveningRush  int   // accidents between 16:00 and 18:59
	HighestHour  int
	HighestCount int

	ClearWeatherPct float64
	DryRoadPct      float64

	MalePct        float64
	TopAgeGroup    string
	TopAgeGroupPct float64
}

// ComputeInsights derives the report findings from the canonical
// table. Shares are percentages of the full table; every field is
// defined on an empty table.
func ComputeInsights(recs []models.AccidentRecord) Insights {
	ins := Insights{}
	total := len(recs)
	if total == 0 {
		return ins
	}
	pct := func(n int) float64 { return float64(n) / float64(total) * 100 }

	ins.FatalPct = pct(CountWhere(recs, func(r models.AccidentRecord) bool { return r.Severity == models.SeverityFatal }))
	ins.SeriousPct = pct(CountWhere(recs, func(r models.AccidentRecord) bool { return r.Severity == models.SeveritySerious }))

	yearly := CountBy(recs, ByYear)
	years := make([]int, 0, len(yearly))
	for y := range yearly {
		years = append(years, y)
	}
	sort.Ints(years)
	if len(years) > 0 {
		ins.PeakYear, ins.LowestYear = years[0], years[0]
		for _, y := range years {
			if yearly[y] > yearly[ins.PeakYear] {
				ins.PeakYear = y
			}
			if yearly[y] < yearly[ins.LowestYear] {
				ins.LowestYear = y
			}
		}
		ins.PeakYearCount = yearly[ins.PeakYear]
		ins.LowestYearCount = yearly[ins.LowestYear]
		ins.TrendChangePct = trendChange(years, yearly)
	}

	hourly := CountBy(recs, ByHour)
	ins.PeakHours = topHours(hourly, 3)
	if len(ins.PeakHours) > 0 {
		ins.HighestHour = ins.PeakHours[0]
		ins.HighestCount = hourly[ins.HighestHour]
	}
	for h := 7; h <= 9; h++ {
		ins.MorningRush += hourly[h]
	}
	for h := 16; h <= 18; h++ {
		ins.EveningRush += hourly[h]
	}

	ins.ClearWeatherPct = pct(CountWhere(recs, func(r models.AccidentRecord) bool {
		return r.Weather != nil && *r.Weather == "Clear"
	}))
	ins.DryRoadPct = pct(CountWhere(recs, func(r models.AccidentRecord) bool {
		return r.RoadSurface != nil && *r.RoadSurface == "Dry"
	}))

	ins.MalePct = pct(CountWhere(recs, func(r models.AccidentRecord) bool {
		return r.Gender != nil && *r.Gender == "Male"
	}))
	ages := CountBy(recs, ByCategory(func(r models.AccidentRecord) *string { return r.AgeGroup }))
	if top := TopN(ages, 1); len(top) > 0 {
		ins.TopAgeGroup = top[0].Value
		ins.TopAgeGroupPct = pct(top[0].Count)
	}

	return ins
}

// trendChange compares the mean of the five most recent years against
// the five earliest, as a percent change.
func trendChange(years []int, yearly map[int]int) float64 {
	window := 5
	if len(years) < window {
		window = len(years)
	}
	early, recent := 0.0, 0.0
	for _, y := range years[:window] {
		early += float64(yearly[y])
	}
	for _, y := range years[len(years)-window:] {
		recent += float64(yearly[y])
	}
	early /= float64(window)
	recent /= float64(window)
	if early == 0 {
		return 0
	}
	return (recent - early) / early * 100
}

func topHours(hourly map[int]int, n int) []int {
	hours := make([]int, 0, len(hourly))
	for h := range hourly {
		hours = append(hours, h)
	}
	sort.Slice(hours, func(i, j int) bool {
		if hourly[hours[i]] != hourly[hours[j]] {
			return hourly[hours[i]] > hourly[hours[j]]
		}
		return hours[i] < hours[j]
	})
	if len(hours) > n {
		hours = hours[:n]
	}
	return hours
}
