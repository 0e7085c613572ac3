package main

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "redflag/docs"
)

// setupRouter wires middleware and routes. main and the tests share it.
func setupRouter(cfg *Config, limiter *userRateLimiter) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Accept-Encoding", "Authorization", "If-None-Match"},
		ExposeHeaders:    []string{"Content-Length", "ETag"},
		AllowCredentials: true,
	}))

	r.GET("/healthz", healthCheck)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api", authMiddleware([]byte(cfg.JWTSecret)), limiter.middleware())
	{
		api.GET("/scan-limit", getScanLimit)
		api.GET("/totals", getTotals)

		api.GET("/scans", getScans)
		api.POST("/scans", createScan)
		api.GET("/scans/:id", getScan)
		api.DELETE("/scans/:id", deleteScan)

		api.POST("/scans/:id/ledger", uploadLedger)
		api.POST("/scans/:id/bank", uploadBank)
		api.POST("/scans/:id/customers", uploadCustomers)
		api.PUT("/scans/:id/records", putRecords)

		api.POST("/scans/:id/analyze", analyzeScan)
		api.GET("/scans/:id/report", getReport)
		api.GET("/scans/:id/dragnet", getDragnet)
	}

	return r
}

// @Summary Health check
// @Description Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Service is up"
// @Router /healthz [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// requestLogger logs one structured line per request.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		entry := logger.WithField("method", c.Request.Method).
			WithField("path", c.FullPath()).
			WithField("status", c.Writer.Status())
		if c.Writer.Status() >= http.StatusInternalServerError {
			entry.Warn("Request failed")
			return
		}
		entry.Debug("Request handled")
	}
}
