package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"accident-analytics-api/dataset"
	"accident-analytics-api/middleware"
	"accident-analytics-api/services"
)

// SetupRoutes wires every endpoint. db and authService may be nil:
// without a database the account endpoints answer 503, and without a
// JWT secret the dashboard endpoints are open and the websocket skips
// token validation.
func SetupRoutes(router *gin.Engine, store *dataset.Store, cache *services.CacheService, db *gorm.DB, authService *services.AuthService) {
	dashboard := NewDashboardHandler(store, cache)
	auth := NewAuthHandler(db, authService)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "UP",
			"message": "Accident Analytics API is running",
		})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.POST("/auth/register", auth.Register)
	router.POST("/auth/login", auth.Login)

	api := router.Group("/api/v1")
	if authService != nil {
		api.Use(middleware.RequireAuth(authService))
	}
	{
		api.GET("/summary", dashboard.GetSummary)
		api.GET("/filters", dashboard.GetFilters)
		api.GET("/trends", dashboard.GetTrends)
		api.GET("/risk", dashboard.GetRisk)
		api.GET("/demographics", dashboard.GetDemographics)
		api.GET("/statistics", dashboard.GetStatistics)
	}

	router.GET("/ws/live", LiveWebSocket(store, authService))
}
