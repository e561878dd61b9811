package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"rentreview-backend/internal/shared/middleware"
	"rentreview-backend/internal/shared/response"
	"rentreview-backend/pkg/container"
)

var startTime = time.Now()

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	router.GET("/", capabilitiesHandler(c))
	router.GET("/health", healthCheckHandler(c))
	router.GET("/test", diagnosticHandler(c))
	router.GET("/setup-database", setupDatabaseHandler(c))

	setupReviewRoutes(router, c)

	return router
}

// ========================================
// REVIEW ROUTES
// ========================================
func setupReviewRoutes(router *gin.Engine, c *container.Container) {
	reviews := router.Group("/reviews")
	{
		reviews.POST("", c.ReviewHandler.CreateReview)
		reviews.GET("", c.ReviewHandler.SearchReviews)
		reviews.GET("/stats", c.ReviewHandler.GetStatistics)
		reviews.POST("/:id/response", c.ReviewHandler.CreateResponse)
	}
}

// ========================================
// CAPABILITY LISTING
// ========================================
func capabilitiesHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service":     appCtx.Config.App.Name,
			"version":     appCtx.Config.App.Version,
			"environment": appCtx.Config.App.Environment,
			"endpoints": gin.H{
				"health":          "GET /health",
				"diagnostics":     "GET /test",
				"setup_database":  "GET /setup-database",
				"create_review":   "POST /reviews",
				"search_reviews":  "GET /reviews",
				"create_response": "POST /reviews/:id/response",
				"statistics":      "GET /reviews/stats",
			},
		})
	}
}

// ========================================
// HEALTH CHECK HANDLER
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		dbStatus := "ok"
		if err := appCtx.DB.Ping(c.Request.Context()); err != nil {
			dbStatus = "unreachable"
		}

		statusCode := http.StatusOK
		if dbStatus != "ok" {
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, gin.H{
			"status":      dbStatus == "ok",
			"service":     appCtx.Config.App.Name,
			"version":     appCtx.Config.App.Version,
			"environment": appCtx.Config.App.Environment,
			"uptime":      time.Since(startTime).String(),
			"database":    dbStatus,
		})
	}
}

// ========================================
// DIAGNOSTIC HANDLER
// ========================================
func diagnosticHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		payload := gin.H{
			"message":             "Service is reachable",
			"port":                appCtx.Config.App.Port,
			"database_configured": appCtx.Config.Database.Configured(),
		}

		if stats := appCtx.DB.Stats(); stats != nil {
			payload["pool_stats"] = stats
		}

		c.JSON(http.StatusOK, payload)
	}
}

// ========================================
// DATABASE SETUP HANDLER
// ========================================
func setupDatabaseHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
		defer cancel()

		tables, err := appCtx.DB.EnsureSchema(ctx)
		if err != nil {
			response.InternalServerError(c, err.Error())
			return
		}

		response.Success(c, http.StatusOK, gin.H{
			"message": "Database schema is ready",
			"tables":  tables,
		})
	}
}
