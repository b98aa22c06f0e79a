package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"accident-analytics-api/dataset"
	"accident-analytics-api/metrics"
	"accident-analytics-api/models"
	"accident-analytics-api/services"
)

const responseTTL = 30 * time.Second

// DashboardHandler serves every filtered dashboard panel. Each request
// filters the cached canonical table and recomputes its aggregates;
// full responses are cached in redis keyed by the filter selection.
type DashboardHandler struct {
	store *dataset.Store
	cache *services.CacheService
}

func NewDashboardHandler(store *dataset.Store, cache *services.CacheService) *DashboardHandler {
	return &DashboardHandler{store: store, cache: cache}
}

// table returns the canonical table, answering 500 on a failed load.
func (h *DashboardHandler) table(c *gin.Context) ([]models.AccidentRecord, bool) {
	table, err := h.store.Load()
	if err != nil {
		log.Printf("canonical table load failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "dataset unavailable"})
		return nil, false
	}
	return table, true
}

// filtered applies p to the canonical table.
func (h *DashboardHandler) filteredTable(c *gin.Context, p models.FilterParams) ([]models.AccidentRecord, bool) {
	table, ok := h.table(c)
	if !ok {
		return nil, false
	}
	metrics.FilterEvaluations.Inc()
	return dataset.Filter(table, p), true
}

// cachedJSON serves a previously cached response for key, if any.
func cachedJSON[T any](h *DashboardHandler, c *gin.Context, key string) bool {
	var cached struct {
		Data *T `json:"data"`
	}
	if err := h.cache.Get(c.Request.Context(), key, &cached); err == nil && cached.Data != nil {
		metrics.CacheHits.Inc()
		c.JSON(http.StatusOK, cached)
		return true
	}
	metrics.CacheMisses.Inc()
	return false
}

// respondJSON writes the response and stores it in the cache off the
// request path.
func respondJSON[T any](h *DashboardHandler, c *gin.Context, key string, data T) {
	resp := struct {
		Data *T `json:"data"`
	}{Data: &data}
	go h.cache.Set(context.Background(), key, resp, responseTTL)
	c.JSON(http.StatusOK, resp)
}

// badParams writes the 400 response for an invalid filter selection.
func badParams(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
