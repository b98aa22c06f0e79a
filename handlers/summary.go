package handlers

import (
	"github.com/gin-gonic/gin"

	"accident-analytics-api/models"
	"accident-analytics-api/stats"
)

// SummaryData carries the headline metrics panel.
type SummaryData struct {
	Metrics models.SummaryMetrics `json:"metrics"`
}

// GetSummary returns the headline metrics for the current filter
// selection: total, fatal and serious counts, fatality rate and mean
// casualties per accident.
func (h *DashboardHandler) GetSummary(c *gin.Context) {
	p, err := ParseFilterParams(c)
	if err != nil {
		badParams(c, err)
		return
	}

	cacheKey := "summary:" + p.CacheKey()
	if cachedJSON[SummaryData](h, c, cacheKey) {
		return
	}

	filtered, ok := h.filteredTable(c, p)
	if !ok {
		return
	}
	respondJSON(h, c, cacheKey, SummaryData{Metrics: stats.ComputeMetrics(filtered)})
}
