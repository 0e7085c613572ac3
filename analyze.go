package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"redflag/analysis"
	"redflag/db/generated"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/sirupsen/logrus"
)

const notifyTimeout = 30 * time.Second

// Analysis handler functions

// @Summary Analyze scan
// @Description Run the red-flag engine over the scan's uploaded records and store the report
// @Tags analysis
// @Produce json
// @Security BearerAuth
// @Param id path string true "Scan ID"
// @Success 200 {object} ReportResponse "Completed report"
// @Failure 400 {object} map[string]interface{} "Invalid scan ID"
// @Failure 404 {object} map[string]interface{} "Scan not found"
// @Failure 409 {object} map[string]interface{} "Scan is already being analyzed"
// @Failure 422 {object} map[string]interface{} "Required records missing"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/scans/{id}/analyze [post]
func analyzeScan(c *gin.Context) {
	dbScan, ok := loadScan(c)
	if !ok {
		return
	}
	if dbScan.Status == generated.ScanStatusProcessing {
		c.JSON(http.StatusConflict, gin.H{"error": "Scan is already being analyzed"})
		return
	}

	ctx := c.Request.Context()
	log := logger.WithField("scan_id", uuidString(dbScan.ID))

	dbScan, err := queries.StartScanProcessing(ctx, generated.StartScanProcessingParams{
		ID:     dbScan.ID,
		UserID: dbScan.UserID,
	})
	if errors.Is(err, pgx.ErrNoRows) {
		c.JSON(http.StatusConflict, gin.H{"error": "Scan is already being analyzed"})
		return
	}
	if err != nil {
		log.WithError(err).Error("Error starting analysis")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error starting analysis"})
		return
	}
	if err := reportCache.Delete(ctx, uuidString(dbScan.ID)); err != nil {
		log.WithError(err).Warn("Error evicting cached report")
	}

	report, err := runAnalysis(ctx, dbScan)
	if err != nil {
		failScan(dbScan.ID, err)
		var missing *analysis.MissingInputError
		if errors.As(err, &missing) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": missing.Error()})
			return
		}
		log.WithError(err).Error("Analysis failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Analysis failed"})
		return
	}

	digest, err := analysis.Digest(report)
	if err != nil {
		failScan(dbScan.ID, err)
		log.WithError(err).Error("Error fingerprinting report")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Analysis failed"})
		return
	}

	params, err := completeScanParams(dbScan.ID, report, digest)
	if err == nil {
		_, err = queries.CompleteScan(ctx, params)
	}
	if err != nil {
		failScan(dbScan.ID, err)
		log.WithError(err).Error("Error storing report")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error storing report"})
		return
	}

	entry := &cachedReport{OwnerID: uuidString(dbScan.UserID), Digest: digest, Report: report}
	if err := reportCache.Set(ctx, report.ScanID, entry); err != nil {
		log.WithError(err).Warn("Error caching report")
	}

	log.WithFields(logrus.Fields{
		"risk_score": report.RiskScore,
		"risk_level": report.RiskLevel,
	}).Info("Scan analyzed")

	// The scan is completed by now. Without a profile there is no one to
	// notify and only the redacted view can be served.
	profile, err := queries.GetProfile(ctx, dbScan.UserID)
	if err != nil {
		log.WithError(err).Warn("Error loading profile after analysis")
		writeReport(c, entry, generated.SubscriptionPlanFree)
		return
	}

	go notifyCompletion(profile.Email, report)
	writeReport(c, entry, profile.SubscriptionPlan)
}

// runAnalysis decodes the stored records of s and builds its report.
func runAnalysis(ctx context.Context, s generated.Scan) (*analysis.Report, error) {
	ledger, bank, customers, err := scanRecords(s)
	if err != nil {
		return nil, err
	}

	in := analysis.ReportInput{
		ScanID:      uuidString(s.ID),
		CompanyName: s.CompanyName,
		Ledger:      ledger,
		Bank:        bank,
		Customers:   customers,
		GeneratedAt: time.Now().UTC(),
	}
	if ni, ok := numericToDecimal(s.ReportedNetIncome); ok {
		in.ReportedNetIncome = &ni
	}
	in.OtherAdjustments, _ = numericToDecimal(s.OtherAdjustments)

	return analysis.BuildReport(ctx, in, engineOptions)
}

// failScan records an analysis failure. It runs detached from the request so
// a cancelled client does not leave the scan in processing.
func failScan(id pgtype.UUID, cause error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := queries.FailScan(ctx, generated.FailScanParams{
		ID:           id,
		ErrorMessage: pgtype.Text{String: cause.Error(), Valid: true},
	})
	if err != nil {
		logger.WithError(err).WithField("scan_id", uuidString(id)).Error("Error marking scan failed")
	}
}

func notifyCompletion(to string, report *analysis.Report) {
	done := make(chan error, 1)
	go func() { done <- notifier.ScanCompleted(to, report) }()

	select {
	case err := <-done:
		if err != nil {
			logger.WithError(err).WithField("scan_id", report.ScanID).Warn("Error sending completion email")
		}
	case <-time.After(notifyTimeout):
		logger.WithField("scan_id", report.ScanID).Warn("Completion email timed out")
	}
}

// @Summary Get report
// @Description Retrieve the completed report of a scan. Free plan viewers receive a redacted report.
// @Tags analysis
// @Produce json
// @Security BearerAuth
// @Param id path string true "Scan ID"
// @Param If-None-Match header string false "ETag of a previously fetched report"
// @Success 200 {object} ReportResponse "Report"
// @Success 304 "Report unchanged"
// @Failure 400 {object} map[string]interface{} "Invalid scan ID"
// @Failure 404 {object} map[string]interface{} "Scan not found"
// @Failure 409 {object} map[string]interface{} "Scan has no completed report"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/scans/{id}/report [get]
func getReport(c *gin.Context) {
	scanID, ok := scanIDParam(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	userID := currentUser(c)

	profile, err := ensureProfile(c)
	if err != nil {
		logger.WithError(err).Error("Error loading profile")
		statusCode, message := handleDatabaseError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}

	entry, err := reportCache.Get(ctx, uuidString(scanID))
	if err != nil {
		logger.WithError(err).Warn("Error reading cached report")
		entry = nil
	}
	if entry != nil && entry.OwnerID != uuidString(userID) {
		entry = nil
	}

	if entry == nil {
		dbScan, ok := loadScan(c)
		if !ok {
			return
		}
		if dbScan.Status != generated.ScanStatusCompleted {
			c.JSON(http.StatusConflict, gin.H{"error": fmt.Sprintf("Scan has no completed report (status %s)", dbScan.Status)})
			return
		}

		report, err := reportFromScan(dbScan)
		if err != nil {
			logger.WithError(err).WithField("scan_id", uuidString(scanID)).Error("Error decoding stored report")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error loading report"})
			return
		}
		entry = &cachedReport{OwnerID: uuidString(userID), Digest: dbScan.ReportDigest.String, Report: report}
		if err := reportCache.Set(ctx, uuidString(scanID), entry); err != nil {
			logger.WithError(err).Warn("Error caching report")
		}
	}

	writeReport(c, entry, profile.SubscriptionPlan)
}

// writeReport sends the report as viewed by plan, honouring If-None-Match.
func writeReport(c *gin.Context, entry *cachedReport, plan generated.SubscriptionPlan) {
	redacted := shouldRedact(plan)
	etag := reportETag(entry.Digest, redacted)
	if etag != "" {
		c.Header("ETag", etag)
		if c.GetHeader("If-None-Match") == etag {
			c.Status(http.StatusNotModified)
			return
		}
	}

	report := entry.Report
	if redacted {
		report = redactReport(report)
	}
	c.JSON(http.StatusOK, ReportResponse{Report: report, Redacted: redacted})
}

// reportETag derives a strong ETag from the report digest. Redacted and full
// views of the same report carry different tags.
func reportETag(digest string, redacted bool) string {
	if digest == "" {
		return ""
	}
	if redacted {
		return fmt.Sprintf(`"%s-r"`, digest)
	}
	return fmt.Sprintf(`"%s"`, digest)
}

// @Summary Run dragnet
// @Description Run the rule-based row triage over the scan's stored ledger
// @Tags analysis
// @Produce json
// @Security BearerAuth
// @Param id path string true "Scan ID"
// @Success 200 {object} DragnetResponse "Findings and ledger statistics"
// @Failure 400 {object} map[string]interface{} "Invalid scan ID"
// @Failure 404 {object} map[string]interface{} "Scan not found"
// @Failure 422 {object} map[string]interface{} "No ledger uploaded"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/scans/{id}/dragnet [get]
func getDragnet(c *gin.Context) {
	dbScan, ok := loadScan(c)
	if !ok {
		return
	}

	ledger, _, _, err := scanRecords(dbScan)
	if err != nil {
		logger.WithError(err).WithField("scan_id", uuidString(dbScan.ID)).Error("Error decoding ledger")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error loading ledger"})
		return
	}
	if ledger == nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": (&analysis.MissingInputError{Input: "ledger entries"}).Error()})
		return
	}

	c.JSON(http.StatusOK, DragnetResponse{
		Findings: analysis.Dragnet(ledger, engineOptions.Tables),
		Stats:    analysis.ComputeDatasetStats(ledger),
	})
}
