package models

// SummaryMetrics are the headline numbers shown above the dashboard
// charts. Rate and mean are 0 when the filtered table is empty.
type SummaryMetrics struct {
	Total         int     `json:"total"`
	Fatal         int     `json:"fatal"`
	Serious       int     `json:"serious"`
	FatalityRate  float64 `json:"fatality_rate"`
	AvgCasualties float64 `json:"avg_casualties"`
}

// CategoryCount is one bar/slice of a categorical distribution.
type CategoryCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// SeriesPoint is one point of an integer-keyed series (year, hour,
// month, speed limit, vehicle count).
type SeriesPoint struct {
	Key   int `json:"key"`
	Count int `json:"count"`
}

// YearlyTrend is one row of the per-year trend table.
type YearlyTrend struct {
	Year         int     `json:"year"`
	Accidents    int     `json:"accidents"`
	Casualties   int     `json:"casualties"`
	AvgVehicles  float64 `json:"avg_vehicles"`
	Fatal        int     `json:"fatal"`
	FatalityRate float64 `json:"fatality_rate"`
}

// WeekdayStats is one row of the per-weekday breakdown.
type WeekdayStats struct {
	Weekday      string  `json:"weekday"`
	Accidents    int     `json:"accidents"`
	Casualties   int     `json:"casualties"`
	Fatal        int     `json:"fatal"`
	FatalityRate float64 `json:"fatality_rate"`
}

// FilterDomains lists the selectable values for every dashboard filter,
// derived from the canonical table.
type FilterDomains struct {
	YearMin    int      `json:"year_min"`
	YearMax    int      `json:"year_max"`
	Severities []string `json:"severities"`
	Genders    []string `json:"genders"`
	Weathers   []string `json:"weathers"`
	AgeGroups  []string `json:"age_groups"`
}
