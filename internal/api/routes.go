package api

import (
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all API routes.
func SetupRoutes(router *gin.Engine, handler *Handler) {
	// Health and readiness checks
	router.GET("/health", handler.HealthCheck)
	router.GET("/ready", handler.ReadyCheck)

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(handler.telemetry.Handler()))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Comment analysis endpoints
		analyze := v1.Group("/analyze")
		{
			analyze.POST("/comments", handler.AnalyzeComments)                  // POST /api/v1/analyze/comments
			analyze.POST("/comments/advanced", handler.AnalyzeCommentsAdvanced) // POST /api/v1/analyze/comments/advanced
		}

		// Scoring endpoints
		score := v1.Group("/score")
		{
			score.POST("", handler.Score)            // POST /api/v1/score
			score.POST("/batch", handler.ScoreBatch) // POST /api/v1/score/batch
		}

		// Trend detection
		v1.POST("/trends", handler.Trends) // POST /api/v1/trends
	}
}
