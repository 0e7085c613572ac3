package main

import (
	"errors"
	"net/http"

	"redflag/db/generated"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/sirupsen/logrus"
)

// Scan handler functions

// @Summary List scans
// @Description Retrieve the caller's scans, newest first
// @Tags scans
// @Produce json
// @Security BearerAuth
// @Success 200 {array} Scan "List of scans"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/scans [get]
func getScans(c *gin.Context) {
	dbScans, err := queries.ListScans(c.Request.Context(), currentUser(c))
	if err != nil {
		logger.WithError(err).Error("Error fetching scans")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching scans"})
		return
	}

	scans := make([]Scan, 0, len(dbScans))
	for _, s := range dbScans {
		scans = append(scans, convertScan(s))
	}
	c.JSON(http.StatusOK, scans)
}

// @Summary Create scan
// @Description Create a new scan, consuming one scan credit
// @Tags scans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param scan body CreateScanRequest true "Target company (company_name required)"
// @Success 201 {object} Scan "Created scan"
// @Failure 400 {object} map[string]interface{} "Bad request"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 403 {object} ScanLimitStatus "Scan limit reached"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/scans [post]
func createScan(c *gin.Context) {
	var request CreateScanRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if err := validateScanRequest(request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := ensureProfile(c)
	if err != nil {
		logger.WithError(err).Error("Error loading profile")
		statusCode, message := handleDatabaseError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}

	params := generated.CreateScanWithCreditParams{
		UserID:      profile.UserID,
		CompanyName: request.CompanyName,
		Industry:    request.Industry,
	}
	if params.AskingPrice, err = decimalToNumeric(request.AskingPrice); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid asking price"})
		return
	}
	if params.OtherAdjustments, err = decimalToNumeric(request.OtherAdjustments); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid other adjustments"})
		return
	}
	if request.ReportedNetIncome != nil {
		if params.ReportedNetIncome, err = decimalToNumeric(*request.ReportedNetIncome); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid reported net income"})
			return
		}
	}

	dbScan, err := queries.CreateScanWithCredit(c.Request.Context(), params)
	if errors.Is(err, pgx.ErrNoRows) {
		c.JSON(http.StatusForbidden, evaluateScanLimit(profile))
		return
	}
	if err != nil {
		logger.WithError(err).Error("Error creating scan")
		statusCode, message := handleDatabaseError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}

	logger.WithFields(logrus.Fields{
		"scan_id": uuidString(dbScan.ID),
		"user_id": uuidString(profile.UserID),
	}).Info("Scan created")
	c.JSON(http.StatusCreated, convertScan(dbScan))
}

// @Summary Get scan
// @Description Retrieve a specific scan by ID
// @Tags scans
// @Produce json
// @Security BearerAuth
// @Param id path string true "Scan ID"
// @Success 200 {object} Scan "Scan"
// @Failure 400 {object} map[string]interface{} "Invalid scan ID"
// @Failure 404 {object} map[string]interface{} "Scan not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/scans/{id} [get]
func getScan(c *gin.Context) {
	dbScan, ok := loadScan(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, convertScan(dbScan))
}

// @Summary Delete scan
// @Description Delete a specific scan by ID
// @Tags scans
// @Produce json
// @Security BearerAuth
// @Param id path string true "Scan ID"
// @Success 200 {object} map[string]interface{} "Scan deleted successfully"
// @Failure 400 {object} map[string]interface{} "Invalid scan ID"
// @Failure 404 {object} map[string]interface{} "Scan not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/scans/{id} [delete]
func deleteScan(c *gin.Context) {
	scanID, ok := scanIDParam(c)
	if !ok {
		return
	}

	rows, err := queries.DeleteScan(c.Request.Context(), generated.DeleteScanParams{
		ID:     scanID,
		UserID: currentUser(c),
	})
	if err != nil {
		logger.WithError(err).Error("Error deleting scan")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting scan"})
		return
	}
	if rows == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Scan not found"})
		return
	}

	if err := reportCache.Delete(c.Request.Context(), uuidString(scanID)); err != nil {
		logger.WithError(err).Warn("Error evicting cached report")
	}
	c.JSON(http.StatusOK, gin.H{"message": "Scan deleted successfully"})
}

// scanIDParam parses the :id path parameter, writing a 400 when invalid.
func scanIDParam(c *gin.Context) (pgtype.UUID, bool) {
	id, err := parseUUID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid scan ID"})
		return pgtype.UUID{}, false
	}
	return id, true
}

// loadScan fetches the caller's scan named by :id, writing the error response
// when it cannot.
func loadScan(c *gin.Context) (generated.Scan, bool) {
	scanID, ok := scanIDParam(c)
	if !ok {
		return generated.Scan{}, false
	}

	dbScan, err := queries.GetScan(c.Request.Context(), generated.GetScanParams{
		ID:     scanID,
		UserID: currentUser(c),
	})
	if errors.Is(err, pgx.ErrNoRows) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Scan not found"})
		return generated.Scan{}, false
	}
	if err != nil {
		logger.WithError(err).Error("Error fetching scan")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching scan"})
		return generated.Scan{}, false
	}
	return dbScan, true
}
