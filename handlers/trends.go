package handlers

import (
	"sort"

	"github.com/gin-gonic/gin"

	"accident-analytics-api/models"
	"accident-analytics-api/stats"
)

// TrendsData carries the temporal chart panels: yearly trend, seasonal
// pattern, 24-hour distribution, weekly pattern and the per-severity
// yearly series.
type TrendsData struct {
	Yearly         []models.SeriesPoint   `json:"yearly"`
	Monthly        []models.SeriesPoint   `json:"monthly"`
	Hourly         []models.SeriesPoint   `json:"hourly"`
	Weekday        []models.CategoryCount `json:"weekday"`
	YearlySeverity []YearlySeverityPoint  `json:"yearly_severity"`
}

// YearlySeverityPoint is one year of the severity trend chart.
type YearlySeverityPoint struct {
	Year    int `json:"year"`
	Fatal   int `json:"fatal"`
	Serious int `json:"serious"`
	Slight  int `json:"slight"`
}

func (h *DashboardHandler) GetTrends(c *gin.Context) {
	p, err := ParseFilterParams(c)
	if err != nil {
		badParams(c, err)
		return
	}

	cacheKey := "trends:" + p.CacheKey()
	if cachedJSON[TrendsData](h, c, cacheKey) {
		return
	}

	filtered, ok := h.filteredTable(c, p)
	if !ok {
		return
	}

	data := TrendsData{
		Yearly:         stats.SortedSeries(stats.CountBy(filtered, stats.ByYear)),
		Monthly:        stats.ReindexInts(stats.CountBy(filtered, stats.ByMonth), stats.Months()),
		Hourly:         stats.ReindexInts(stats.CountBy(filtered, stats.ByHour), stats.Hours()),
		Weekday:        stats.ReindexStrings(stats.CountBy(filtered, stats.ByWeekday), stats.Weekdays),
		YearlySeverity: yearlySeverity(filtered),
	}
	respondJSON(h, c, cacheKey, data)
}

func yearlySeverity(recs []models.AccidentRecord) []YearlySeverityPoint {
	byYear := make(map[int]*YearlySeverityPoint)
	for _, r := range recs {
		if r.Year == nil {
			continue
		}
		pt := byYear[*r.Year]
		if pt == nil {
			pt = &YearlySeverityPoint{Year: *r.Year}
			byYear[*r.Year] = pt
		}
		switch r.Severity {
		case models.SeverityFatal:
			pt.Fatal++
		case models.SeveritySerious:
			pt.Serious++
		case models.SeveritySlight:
			pt.Slight++
		}
	}

	out := make([]YearlySeverityPoint, 0, len(byYear))
	for _, pt := range byYear {
		out = append(out, *pt)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out
}
