package analysis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gowebpki/jcs"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// MissingInputError is returned when a required record collection is absent.
type MissingInputError struct {
	Input string
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("missing required input: %s", e.Input)
}

// Options configures BuildReport.
type Options struct {
	Revenue RevenueOptions
	// Tables overrides the keyword and pattern tables; nil uses DefaultTables.
	Tables *Tables
}

// DefaultOptions returns the engine defaults.
func DefaultOptions() Options {
	return Options{Revenue: DefaultRevenueOptions(), Tables: DefaultTables()}
}

// ReportInput carries the records and caller-supplied figures for one scan.
// Ledger and Bank are required (an empty slice is fine, nil is not);
// Customers may be nil.
type ReportInput struct {
	ScanID      string
	CompanyName string
	Ledger      []LedgerEntry
	Bank        []BankTransaction
	Customers   []CustomerData
	// ReportedNetIncome defaults to NetIncome(Ledger) when nil.
	ReportedNetIncome *decimal.Decimal
	OtherAdjustments  decimal.Decimal
	GeneratedAt       time.Time
}

// Validate checks that the required collections are present.
func (in ReportInput) Validate() error {
	if in.Ledger == nil {
		return &MissingInputError{Input: "ledger entries"}
	}
	if in.Bank == nil {
		return &MissingInputError{Input: "bank transactions"}
	}
	return nil
}

// BuildReport runs every analyzer over the input and assembles the report.
// Revenue, expense and churn analysis run concurrently; the EBITDA bridge and
// risk score are computed from their results.
func BuildReport(ctx context.Context, in ReportInput, opts Options) (*Report, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tables := opts.Tables
	if tables == nil {
		tables = DefaultTables()
	}

	var (
		revenue  RevenueAnalysis
		expenses []PersonalExpense
		churn    ChurnAnalysis
		findings []DragnetFinding
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		revenue = AnalyzeRevenue(in.Ledger, in.Bank, opts.Revenue)
		return gctx.Err()
	})
	g.Go(func() error {
		expenses = DetectPersonalExpenses(in.Ledger, tables)
		return gctx.Err()
	})
	g.Go(func() error {
		churn = CalculateChurn(in.Customers)
		return gctx.Err()
	})
	g.Go(func() error {
		findings = Dragnet(in.Ledger, tables)
		return gctx.Err()
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("analysis interrupted: %w", err)
	}

	netIncome := NetIncome(in.Ledger)
	if in.ReportedNetIncome != nil {
		netIncome = *in.ReportedNetIncome
	}

	riskInputs := RiskInputs{Revenue: &revenue, PersonalExpenses: expenses}
	if in.Customers != nil {
		riskInputs.Churn = &churn
	}
	score := GenerateRiskScore(riskInputs)

	generatedAt := in.GeneratedAt
	if generatedAt.IsZero() {
		generatedAt = time.Now().UTC()
	}

	return &Report{
		ScanID:           in.ScanID,
		CompanyName:      in.CompanyName,
		RiskScore:        score,
		RiskLevel:        GetRiskLevel(score),
		RevenueAnalysis:  revenue,
		CustomerChurn:    churn,
		PersonalExpenses: expenses,
		EBITDABridge:     ComputeAdjustedEBITDA(netIncome, expenses, in.OtherAdjustments),
		Findings:         findings,
		GeneratedAt:      generatedAt,
	}, nil
}

// Digest fingerprints the computed content of a report: the SHA-256 of its
// RFC 8785 canonical JSON with GeneratedAt cleared. Re-analysing unchanged
// records yields the same digest.
func Digest(r *Report) (string, error) {
	clone := *r
	clone.GeneratedAt = time.Time{}

	raw, err := json.Marshal(clone)
	if err != nil {
		return "", fmt.Errorf("failed to marshal report: %w", err)
	}
	canonical, err := jcs.Transform(raw)
	if err != nil {
		return "", fmt.Errorf("failed to canonicalize report: %w", err)
	}
	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:]), nil
}
