package handlers

import (
	"sort"

	"github.com/gin-gonic/gin"

	"accident-analytics-api/models"
	"accident-analytics-api/stats"
)

// DemographicsData carries the demographics panels: age and gender
// distributions, severity splits per demographic and the hourly
// pattern per gender.
type DemographicsData struct {
	AgeGroups      []models.CategoryCount        `json:"age_groups"`
	Genders        []models.CategoryCount        `json:"genders"`
	AgeSeverity    map[string]map[string]float64 `json:"age_severity_pct"`
	GenderSeverity map[string]map[string]int     `json:"gender_severity"`
	HourlyByGender []HourlyGenderPoint           `json:"hourly_by_gender"`
}

// HourlyGenderPoint is one hour of the gender-split hourly chart.
type HourlyGenderPoint struct {
	Hour   int            `json:"hour"`
	Counts map[string]int `json:"counts"`
}

func (h *DashboardHandler) GetDemographics(c *gin.Context) {
	p, err := ParseFilterParams(c)
	if err != nil {
		badParams(c, err)
		return
	}

	cacheKey := "demographics:" + p.CacheKey()
	if cachedJSON[DemographicsData](h, c, cacheKey) {
		return
	}

	filtered, ok := h.filteredTable(c, p)
	if !ok {
		return
	}

	age := stats.ByCategory(func(r models.AccidentRecord) *string { return r.AgeGroup })
	gender := stats.ByCategory(func(r models.AccidentRecord) *string { return r.Gender })

	data := DemographicsData{
		AgeGroups:      stats.TopN(stats.CountBy(filtered, age), 0),
		Genders:        stats.TopN(stats.CountBy(filtered, gender), 0),
		AgeSeverity:    rowPercentages(stats.CrossTab(filtered, age, stats.BySeverity)),
		GenderSeverity: stats.CrossTab(filtered, gender, stats.BySeverity),
		HourlyByGender: hourlyByGender(filtered),
	}
	respondJSON(h, c, cacheKey, data)
}

// rowPercentages normalizes each crosstab row to percentages.
func rowPercentages(tab map[string]map[string]int) map[string]map[string]float64 {
	out := make(map[string]map[string]float64, len(tab))
	for row, cells := range tab {
		total := 0
		for _, n := range cells {
			total += n
		}
		out[row] = make(map[string]float64, len(cells))
		for col, n := range cells {
			if total > 0 {
				out[row][col] = float64(n) / float64(total) * 100
			}
		}
	}
	return out
}

func hourlyByGender(recs []models.AccidentRecord) []HourlyGenderPoint {
	byHour := make(map[int]map[string]int)
	for _, r := range recs {
		if r.Hour == nil || r.Gender == nil {
			continue
		}
		if byHour[*r.Hour] == nil {
			byHour[*r.Hour] = make(map[string]int)
		}
		byHour[*r.Hour][*r.Gender]++
	}

	hours := make([]int, 0, len(byHour))
	for h := range byHour {
		hours = append(hours, h)
	}
	sort.Ints(hours)

	out := make([]HourlyGenderPoint, 0, len(hours))
	for _, h := range hours {
		out = append(out, HourlyGenderPoint{Hour: h, Counts: byHour[h]})
	}
	return out
}
