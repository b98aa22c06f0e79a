package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"accident-analytics-api/dataset"
	"accident-analytics-api/metrics"
	"accident-analytics-api/models"
	"accident-analytics-api/services"
	"accident-analytics-api/stats"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// LiveWebSocket runs the interactive filter loop: every message from
// the client is a FilterParams document, and every reply carries the
// summary metrics recomputed over the matching rows. When authService
// is non-nil a valid token query parameter is required.
func LiveWebSocket(store *dataset.Store, authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if authService != nil {
			tokenStr := c.Query("token")
			if tokenStr == "" {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token query parameter"})
				return
			}
			if _, err := authService.ValidateToken(tokenStr); err != nil {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
				return
			}
		}

		table, err := store.Load()
		if err != nil {
			log.Printf("canonical table load failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "dataset unavailable"})
			return
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Printf("websocket upgrade failed: %v", err)
			return
		}
		defer conn.Close()

		for {
			var params models.FilterParams
			if err := conn.ReadJSON(&params); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					log.Printf("ws read error: %v", err)
				}
				return
			}

			metrics.FilterEvaluations.Inc()
			filtered := dataset.Filter(table, params)
			err = conn.WriteJSON(gin.H{
				"type":    "summary_update",
				"params":  params,
				"metrics": stats.ComputeMetrics(filtered),
			})
			if err != nil {
				log.Printf("ws write error: %v", err)
				return
			}
		}
	}
}
