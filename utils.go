package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"redflag/analysis"
	"redflag/db/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

// Validation functions

// validateName validates that a name is not empty or just whitespace
func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("company name cannot be empty")
	}
	return nil
}

// validateScanRequest checks the caller-supplied figures of a new scan
func validateScanRequest(req CreateScanRequest) error {
	if err := validateName(req.CompanyName); err != nil {
		return err
	}
	if req.AskingPrice.IsNegative() {
		return fmt.Errorf("asking price cannot be negative")
	}
	return nil
}

// handleDatabaseError converts database errors to appropriate HTTP responses
func handleDatabaseError(err error) (statusCode int, message string) {
	if errors.Is(err, pgx.ErrNoRows) {
		return http.StatusNotFound, "Resource not found"
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return http.StatusConflict, "Resource already exists"
		case "23503":
			return http.StatusNotFound, "Referenced resource not found"
		}
	}

	return http.StatusInternalServerError, "Internal server error"
}

// UUID and conversion utility functions

// parseUUID converts a path or claim value to pgtype.UUID
func parseUUID(s string) (pgtype.UUID, error) {
	parsed, err := uuid.Parse(s)
	if err != nil {
		return pgtype.UUID{}, fmt.Errorf("invalid UUID format: %s", s)
	}
	return pgtype.UUID{Bytes: parsed, Valid: true}, nil
}

func uuidString(id pgtype.UUID) string {
	if !id.Valid {
		return ""
	}
	return uuid.UUID(id.Bytes).String()
}

// decimalToNumeric converts a decimal to pgtype.Numeric
func decimalToNumeric(d decimal.Decimal) (pgtype.Numeric, error) {
	var n pgtype.Numeric
	if err := n.Scan(d.String()); err != nil {
		return pgtype.Numeric{}, fmt.Errorf("invalid numeric %s: %w", d.String(), err)
	}
	return n, nil
}

// numericToDecimal converts pgtype.Numeric to a decimal; ok is false for NULL
func numericToDecimal(n pgtype.Numeric) (decimal.Decimal, bool) {
	if !n.Valid || n.NaN || n.InfinityModifier != pgtype.Finite {
		return decimal.Zero, false
	}
	if n.Int == nil {
		return decimal.Zero, true
	}
	return decimal.NewFromBigInt(n.Int, n.Exp), true
}

// Scan conversion utility functions

// convertScan converts a generated.Scan to our API Scan struct
func convertScan(s generated.Scan) Scan {
	result := Scan{
		ID:           uuidString(s.ID),
		CompanyName:  s.CompanyName,
		Industry:     s.Industry,
		Status:       string(s.Status),
		HasLedger:    s.LedgerData != nil,
		HasBank:      s.BankData != nil,
		HasCustomers: s.CustomerData != nil,
		CreatedAt:    s.CreatedAt.Time,
		UpdatedAt:    s.UpdatedAt.Time,
	}

	result.AskingPrice, _ = numericToDecimal(s.AskingPrice)
	result.OtherAdjustments, _ = numericToDecimal(s.OtherAdjustments)
	if ni, ok := numericToDecimal(s.ReportedNetIncome); ok {
		result.ReportedNetIncome = &ni
	}

	// Handle nullable fields
	if s.RiskScore.Valid {
		score := int(s.RiskScore.Int32)
		result.RiskScore = &score
	}
	if s.RiskLevel.Valid {
		level := string(s.RiskLevel.RiskLevel)
		result.RiskLevel = &level
	}
	if s.ReportDigest.Valid {
		result.ReportDigest = &s.ReportDigest.String
	}
	if s.ErrorMessage.Valid {
		result.ErrorMessage = &s.ErrorMessage.String
	}
	if s.CompletedAt.Valid {
		completed := s.CompletedAt.Time
		result.CompletedAt = &completed
	}

	return result
}

// scanRecords decodes the stored input records of a scan. A column that was
// never uploaded decodes to a nil slice.
func scanRecords(s generated.Scan) (ledger []analysis.LedgerEntry, bank []analysis.BankTransaction, customers []analysis.CustomerData, err error) {
	if s.LedgerData != nil {
		if err = json.Unmarshal(s.LedgerData, &ledger); err != nil {
			return nil, nil, nil, fmt.Errorf("failed to decode ledger data: %w", err)
		}
		if ledger == nil {
			ledger = []analysis.LedgerEntry{}
		}
	}
	if s.BankData != nil {
		if err = json.Unmarshal(s.BankData, &bank); err != nil {
			return nil, nil, nil, fmt.Errorf("failed to decode bank data: %w", err)
		}
		if bank == nil {
			bank = []analysis.BankTransaction{}
		}
	}
	if s.CustomerData != nil {
		if err = json.Unmarshal(s.CustomerData, &customers); err != nil {
			return nil, nil, nil, fmt.Errorf("failed to decode customer data: %w", err)
		}
	}
	return ledger, bank, customers, nil
}

// reportFromScan rebuilds a report from the analysis columns of a completed scan
func reportFromScan(s generated.Scan) (*analysis.Report, error) {
	report := &analysis.Report{
		ScanID:      uuidString(s.ID),
		CompanyName: s.CompanyName,
		RiskScore:   int(s.RiskScore.Int32),
		RiskLevel:   analysis.RiskLevel(s.RiskLevel.RiskLevel),
		GeneratedAt: s.CompletedAt.Time,
	}

	parts := []struct {
		name   string
		data   []byte
		target interface{}
	}{
		{"revenue analysis", s.RevenueAnalysis, &report.RevenueAnalysis},
		{"personal expenses", s.PersonalExpenses, &report.PersonalExpenses},
		{"customer churn", s.CustomerChurn, &report.CustomerChurn},
		{"EBITDA bridge", s.EbitdaBridge, &report.EBITDABridge},
		{"dragnet findings", s.DragnetFindings, &report.Findings},
	}
	for _, p := range parts {
		if p.data == nil {
			return nil, fmt.Errorf("scan has no stored %s", p.name)
		}
		if err := json.Unmarshal(p.data, p.target); err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", p.name, err)
		}
	}
	return report, nil
}

// completeScanParams serialises a report into the analysis columns
func completeScanParams(id pgtype.UUID, report *analysis.Report, digest string) (generated.CompleteScanParams, error) {
	params := generated.CompleteScanParams{
		ID:           id,
		RiskScore:    pgtype.Int4{Int32: int32(report.RiskScore), Valid: true},
		RiskLevel:    generated.NullRiskLevel{RiskLevel: generated.RiskLevel(report.RiskLevel), Valid: true},
		ReportDigest: pgtype.Text{String: digest, Valid: true},
	}

	var err error
	if params.RevenueAnalysis, err = json.Marshal(report.RevenueAnalysis); err != nil {
		return params, err
	}
	if params.PersonalExpenses, err = json.Marshal(report.PersonalExpenses); err != nil {
		return params, err
	}
	if params.CustomerChurn, err = json.Marshal(report.CustomerChurn); err != nil {
		return params, err
	}
	if params.EbitdaBridge, err = json.Marshal(report.EBITDABridge); err != nil {
		return params, err
	}
	if params.DragnetFindings, err = json.Marshal(report.Findings); err != nil {
		return params, err
	}
	return params, nil
}
