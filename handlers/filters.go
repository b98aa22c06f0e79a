package handlers

import (
	"github.com/gin-gonic/gin"

	"accident-analytics-api/models"
	"accident-analytics-api/stats"
)

// GetFilters lists the selectable filter domains of the canonical
// table: the year span and every distinct severity, gender, weather
// and age-group value. The domains come from the unfiltered table, so
// the sidebar never loses options.
func (h *DashboardHandler) GetFilters(c *gin.Context) {
	const cacheKey = "filters:domains"
	if cachedJSON[FiltersData](h, c, cacheKey) {
		return
	}

	table, ok := h.table(c)
	if !ok {
		return
	}
	respondJSON(h, c, cacheKey, FiltersData{Domains: stats.Domains(table)})
}

type FiltersData struct {
	Domains models.FilterDomains `json:"domains"`
}
