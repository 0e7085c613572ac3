package main

import (
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Totals handler functions

// @Summary Get scan totals
// @Description Get counts of the caller's scans by outcome and their average risk score
// @Tags totals
// @Produce json
// @Security BearerAuth
// @Success 200 {object} ScanTotals "Scan totals"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/totals [get]
func getTotals(c *gin.Context) {
	row, err := queries.GetScanSummary(c.Request.Context(), currentUser(c))
	if err != nil {
		logger.WithError(err).Error("Error calculating totals")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error calculating totals"})
		return
	}

	c.JSON(http.StatusOK, ScanTotals{
		TotalScans:       int(row.TotalScans),
		CompletedScans:   int(row.CompletedScans),
		FailedScans:      int(row.FailedScans),
		HighRiskScans:    int(row.HighRiskScans),
		AverageRiskScore: math.Round(row.AverageRiskScore*10) / 10,
	})
}
