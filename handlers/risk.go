package handlers

import (
	"github.com/gin-gonic/gin"

	"accident-analytics-api/models"
	"accident-analytics-api/stats"
)

// RiskData carries the risk-factor panels: severity split, condition
// distributions, speed/vehicle histograms and the fatal-accident
// weather-by-light matrix.
type RiskData struct {
	Severity    []models.CategoryCount    `json:"severity"`
	Weather     []models.CategoryCount    `json:"weather"`
	Light       []models.CategoryCount    `json:"light"`
	RoadSurface []models.CategoryCount    `json:"road_surface"`
	RoadTypes   []models.CategoryCount    `json:"road_types"`
	SpeedLimits []models.SeriesPoint      `json:"speed_limits"`
	Vehicles    []models.SeriesPoint      `json:"vehicles"`
	FatalMatrix map[string]map[string]int `json:"fatal_matrix"`
}

func (h *DashboardHandler) GetRisk(c *gin.Context) {
	p, err := ParseFilterParams(c)
	if err != nil {
		badParams(c, err)
		return
	}

	cacheKey := "risk:" + p.CacheKey()
	if cachedJSON[RiskData](h, c, cacheKey) {
		return
	}

	filtered, ok := h.filteredTable(c, p)
	if !ok {
		return
	}

	weather := stats.ByCategory(func(r models.AccidentRecord) *string { return r.Weather })
	light := stats.ByCategory(func(r models.AccidentRecord) *string { return r.Light })
	surface := stats.ByCategory(func(r models.AccidentRecord) *string { return r.RoadSurface })
	roadType := stats.ByCategory(func(r models.AccidentRecord) *string { return r.RoadType })

	fatal := make([]models.AccidentRecord, 0)
	for _, r := range filtered {
		if r.Severity == models.SeverityFatal {
			fatal = append(fatal, r)
		}
	}

	data := RiskData{
		Severity:    stats.ReindexStrings(stats.CountBy(filtered, stats.BySeverity), stats.SeverityOrder),
		Weather:     stats.TopN(stats.CountBy(filtered, weather), 8),
		Light:       stats.TopN(stats.CountBy(filtered, light), 6),
		RoadSurface: stats.TopN(stats.CountBy(filtered, surface), 6),
		RoadTypes:   stats.TopN(stats.CountBy(filtered, roadType), 5),
		SpeedLimits: stats.SortedSeries(stats.CountBy(filtered, func(r models.AccidentRecord) (int, bool) { return r.SpeedLimit, true })),
		Vehicles:    stats.SortedSeries(stats.CountBy(filtered, func(r models.AccidentRecord) (int, bool) { return r.NumVehicles, true })),
		FatalMatrix: stats.CrossTab(fatal, weather, light),
	}
	respondJSON(h, c, cacheKey, data)
}
