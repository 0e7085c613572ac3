package main

import (
	"fmt"
	"net/http"

	"redflag/db/generated"

	"github.com/gin-gonic/gin"
)

const scanLimitReachedMessage = "You've reached your monthly scan limit. Please upgrade your plan for more scans."

// evaluateScanLimit summarises whether the profile may start another scan.
// Rollover scans are usable even after the monthly quota is spent.
func evaluateScanLimit(p generated.Profile) ScanLimitStatus {
	used := int(p.ScansUsedThisMonth)
	limit := int(p.MonthlyScanLimit)
	rollover := int(p.RolloverScans)

	status := ScanLimitStatus{
		CanCreate:      rollover > 0 || used < limit,
		ScansUsed:      used,
		MonthlyLimit:   limit,
		RemainingScans: rollover + max(0, limit-used),
		RolloverScans:  rollover,
		Plan:           string(p.SubscriptionPlan),
	}

	if status.CanCreate {
		plural := "s"
		if status.RemainingScans == 1 {
			plural = ""
		}
		status.Message = fmt.Sprintf("You have %d scan%s remaining (%d rollover).", status.RemainingScans, plural, rollover)
	} else {
		status.Message = scanLimitReachedMessage
	}
	return status
}

// ensureProfile returns the caller's profile, creating a free one on first use.
func ensureProfile(c *gin.Context) (generated.Profile, error) {
	return queries.EnsureProfile(c.Request.Context(), generated.EnsureProfileParams{
		UserID: currentUser(c),
		Email:  c.GetString(ctxEmail),
	})
}

// @Summary Check scan limit
// @Description Report whether the caller can create another scan this month
// @Tags entitlements
// @Produce json
// @Security BearerAuth
// @Success 200 {object} ScanLimitStatus "Scan can be created"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 403 {object} ScanLimitStatus "Scan limit reached"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/scan-limit [get]
func getScanLimit(c *gin.Context) {
	profile, err := ensureProfile(c)
	if err != nil {
		logger.WithError(err).Error("Error loading profile")
		statusCode, message := handleDatabaseError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}

	status := evaluateScanLimit(profile)
	if !status.CanCreate {
		c.JSON(http.StatusForbidden, status)
		return
	}
	c.JSON(http.StatusOK, status)
}
