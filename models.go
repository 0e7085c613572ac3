package main

import (
	"time"

	"redflag/analysis"

	"github.com/shopspring/decimal"
)

// Scan represents a diligence scan of one target company
type Scan struct {
	ID                string           `json:"id"`
	CompanyName       string           `json:"company_name"`
	Industry          string           `json:"industry"`
	AskingPrice       decimal.Decimal  `json:"asking_price"`
	ReportedNetIncome *decimal.Decimal `json:"reported_net_income"`
	OtherAdjustments  decimal.Decimal  `json:"other_adjustments"`
	Status            string           `json:"status"`
	HasLedger         bool             `json:"has_ledger"`
	HasBank           bool             `json:"has_bank"`
	HasCustomers      bool             `json:"has_customers"`
	RiskScore         *int             `json:"risk_score"`
	RiskLevel         *string          `json:"risk_level"`
	ReportDigest      *string          `json:"report_digest"`
	ErrorMessage      *string          `json:"error_message"`
	CompletedAt       *time.Time       `json:"completed_at"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
}

// CreateScanRequest represents the request structure for creating a scan
type CreateScanRequest struct {
	CompanyName       string           `json:"company_name"`
	Industry          string           `json:"industry"`
	AskingPrice       decimal.Decimal  `json:"asking_price"`
	ReportedNetIncome *decimal.Decimal `json:"reported_net_income"`
	OtherAdjustments  decimal.Decimal  `json:"other_adjustments"`
}

// UploadResult summarises an accepted record upload
type UploadResult struct {
	Message     string `json:"message"`
	Rows        int    `json:"rows"`
	SkippedRows int    `json:"skipped_rows"`
}

// ScanLimitStatus is the entitlement summary returned by the scan-limit check
type ScanLimitStatus struct {
	CanCreate      bool   `json:"canCreate"`
	ScansUsed      int    `json:"scansUsed"`
	MonthlyLimit   int    `json:"monthlyLimit"`
	RemainingScans int    `json:"remainingScans"`
	RolloverScans  int    `json:"rolloverScans"`
	Plan           string `json:"plan"`
	Message        string `json:"message"`
}

// ScanTotals summarises the caller's scans
type ScanTotals struct {
	TotalScans       int     `json:"total_scans"`
	CompletedScans   int     `json:"completed_scans"`
	FailedScans      int     `json:"failed_scans"`
	HighRiskScans    int     `json:"high_risk_scans"`
	AverageRiskScore float64 `json:"average_risk_score"`
}

// ReportResponse wraps a report with the viewer-specific redaction marker
type ReportResponse struct {
	*analysis.Report
	Redacted bool `json:"redacted"`
}

// DragnetResponse is the rule-based triage of a scan's ledger
type DragnetResponse struct {
	Findings []analysis.DragnetFinding `json:"findings"`
	Stats    analysis.DatasetStats     `json:"stats"`
}
