package handlers

import (
	"github.com/gin-gonic/gin"

	"accident-analytics-api/models"
	"accident-analytics-api/stats"
)

// StatisticsData carries the statistical-summary tab: fatal shares by
// weather, time patterns, casualty metrics and the yearly and weekday
// trend tables.
type StatisticsData struct {
	TopRiskFactors []stats.FatalShare    `json:"top_risk_factors"`
	Patterns       stats.TimePatterns    `json:"patterns"`
	Casualties     stats.CasualtyStats   `json:"casualties"`
	Yearly         []models.YearlyTrend  `json:"yearly"`
	Weekdays       []models.WeekdayStats `json:"weekdays"`
}

func (h *DashboardHandler) GetStatistics(c *gin.Context) {
	p, err := ParseFilterParams(c)
	if err != nil {
		badParams(c, err)
		return
	}

	cacheKey := "statistics:" + p.CacheKey()
	if cachedJSON[StatisticsData](h, c, cacheKey) {
		return
	}

	filtered, ok := h.filteredTable(c, p)
	if !ok {
		return
	}

	data := StatisticsData{
		TopRiskFactors: stats.FatalShareByWeather(filtered, 5),
		Patterns:       stats.ComputeTimePatterns(filtered),
		Casualties:     stats.ComputeCasualtyStats(filtered),
		Yearly:         stats.YearlyTrends(filtered),
		Weekdays:       stats.WeekdayBreakdown(filtered),
	}
	respondJSON(h, c, cacheKey, data)
}
