package main

import (
	"net/http"
	"testing"

	"redflag/db/generated"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateScanLimit(t *testing.T) {
	tests := []struct {
		name      string
		profile   generated.Profile
		canCreate bool
		remaining int
		message   string
	}{
		{
			name:      "fresh free plan",
			profile:   generated.Profile{SubscriptionPlan: generated.SubscriptionPlanFree, MonthlyScanLimit: 1},
			canCreate: true,
			remaining: 1,
			message:   "You have 1 scan remaining (0 rollover).",
		},
		{
			name:      "free plan spent",
			profile:   generated.Profile{SubscriptionPlan: generated.SubscriptionPlanFree, MonthlyScanLimit: 1, ScansUsedThisMonth: 1},
			canCreate: false,
			remaining: 0,
			message:   scanLimitReachedMessage,
		},
		{
			name:      "firm plan with rollover",
			profile:   generated.Profile{SubscriptionPlan: generated.SubscriptionPlanFirm, MonthlyScanLimit: 10, ScansUsedThisMonth: 4, RolloverScans: 3},
			canCreate: true,
			remaining: 9,
			message:   "You have 9 scans remaining (3 rollover).",
		},
		{
			name:      "quota spent but rollover left",
			profile:   generated.Profile{SubscriptionPlan: generated.SubscriptionPlanHunter, MonthlyScanLimit: 1, ScansUsedThisMonth: 1, RolloverScans: 2},
			canCreate: true,
			remaining: 2,
			message:   "You have 2 scans remaining (2 rollover).",
		},
		{
			name:      "usage above a lowered limit",
			profile:   generated.Profile{SubscriptionPlan: generated.SubscriptionPlanHunter, MonthlyScanLimit: 1, ScansUsedThisMonth: 5},
			canCreate: false,
			remaining: 0,
			message:   scanLimitReachedMessage,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status := evaluateScanLimit(tt.profile)
			assert.Equal(t, tt.canCreate, status.CanCreate)
			assert.Equal(t, tt.remaining, status.RemainingScans)
			assert.Equal(t, tt.message, status.Message)
			assert.Equal(t, string(tt.profile.SubscriptionPlan), status.Plan)
		})
	}
}

// TestGetScanLimit tests the GET /api/scan-limit endpoint
func TestGetScanLimit(t *testing.T) {
	cleanupTestData()

	t.Run("should create a free profile on first use", func(t *testing.T) {
		user := newTestUser(t)

		resp := makeRequest(user, "GET", "/api/scan-limit", nil)
		assertStatusCode(t, http.StatusOK, resp.Code)

		var status ScanLimitStatus
		require.NoError(t, parseJSONResponse(resp, &status))
		assert.True(t, status.CanCreate)
		assert.Equal(t, "free", status.Plan)
		assert.Equal(t, 1, status.MonthlyLimit)
		assert.Equal(t, 1, status.RemainingScans)
	})

	t.Run("should return 403 once the quota is spent", func(t *testing.T) {
		user := newTestUser(t)
		createTestScan(t, user, "Acme Co")

		resp := makeRequest(user, "GET", "/api/scan-limit", nil)
		assertStatusCode(t, http.StatusForbidden, resp.Code)

		var status ScanLimitStatus
		require.NoError(t, parseJSONResponse(resp, &status))
		assert.False(t, status.CanCreate)
		assert.Equal(t, 1, status.ScansUsed)
		assert.Equal(t, scanLimitReachedMessage, status.Message)
	})

	t.Run("should require authentication", func(t *testing.T) {
		resp := makeRequest(testUser{}, "GET", "/api/scan-limit", nil)
		assertStatusCode(t, http.StatusUnauthorized, resp.Code)
	})
}
