package monitor

import (
	"net/http"
	"strconv"

	"payguard-risk-system/internal/api/rest"
	"payguard-risk-system/internal/storage"

	"github.com/gin-gonic/gin"
)

// SetupRoutes настраивает маршруты для risk monitor service
func SetupRoutes(router *gin.Engine, storageRepo storage.DecisionRepository, redisClient interface{ GetDecisionStats() (map[string]int64, error) }) {
	api := router.Group("/api/v1")
	{
		// Очередь решений на ручную проверку
		api.GET("/review-queue", func(c *gin.Context) {
			limit := 100
			if limitStr := c.Query("limit"); limitStr != "" {
				if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 && parsed <= 500 {
					limit = parsed
				}
			}

			records, err := storageRepo.GetReviewQueue(limit)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get review queue"})
				return
			}

			queue := make([]gin.H, 0, len(records))
			for _, record := range records {
				queue = append(queue, gin.H{
					"transaction_id": record.TransactionID,
					"amount_cents":   record.AmountCents,
					"risk_score":     record.RiskScore,
					"decision":       record.Decision,
					"review_status":  record.ReviewStatus,
					"created_at":     record.CreatedAt,
				})
			}

			c.JSON(http.StatusOK, gin.H{"review_queue": queue})
		})

		// Счетчики решений
		api.GET("/decision-stats", func(c *gin.Context) {
			if redisClient == nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Decision stats are not available"})
				return
			}

			stats, err := redisClient.GetDecisionStats()
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get decision stats"})
				return
			}

			c.JSON(http.StatusOK, gin.H{"decision_stats": stats})
		})
	}

	// Используем общие endpoints (health, events, stats)
	rest.SetupCommonEndpoints(router)
}
