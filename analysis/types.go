// Package analysis is the financial red-flag engine behind a Quality of
// Earnings report. Every function is pure: it reads the records it is given
// and returns a freshly computed value, so callers may run the independent
// analyzers concurrently.
package analysis

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryType is the direction of a ledger entry.
type EntryType string

const (
	EntryRevenue EntryType = "revenue"
	EntryExpense EntryType = "expense"
)

// TransactionType is the direction of a bank statement line.
type TransactionType string

const (
	TransactionDeposit    TransactionType = "deposit"
	TransactionWithdrawal TransactionType = "withdrawal"
)

// LedgerEntry is one accounting-book transaction. Amount is never negative;
// the sign is carried by Type.
type LedgerEntry struct {
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Type        EntryType       `json:"type"`
}

// BankTransaction is one bank-statement line.
type BankTransaction struct {
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Type        TransactionType `json:"type"`
}

// MonthlyRevenue is the reconciliation result for one calendar month.
type MonthlyRevenue struct {
	Month                 string          `json:"month"`
	BookedRevenue         decimal.Decimal `json:"bookedRevenue"`
	ActualDeposits        decimal.Decimal `json:"actualDeposits"`
	Discrepancy           decimal.Decimal `json:"discrepancy"`
	DiscrepancyPercentage float64         `json:"discrepancyPercentage"`
	Flagged               bool            `json:"flagged"`
	RevenueSpike          bool            `json:"revenueSpike,omitempty"`
}

// RevenueAnalysis is the output of AnalyzeRevenue.
type RevenueAnalysis struct {
	MonthlyData           []MonthlyRevenue `json:"monthlyData"`
	DiscrepancyFound      bool             `json:"discrepancyFound"`
	DiscrepancyAmount     decimal.Decimal  `json:"discrepancyAmount"`
	DiscrepancyPercentage float64          `json:"discrepancyPercentage"`
	FlaggedMonths         []string         `json:"flaggedMonths"`
}

// Severity grades a personal expense flag.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

func (s Severity) rank() int {
	switch s {
	case SeverityHigh:
		return 2
	case SeverityMedium:
		return 1
	default:
		return 0
	}
}

// PersonalExpense is an expense entry judged likely to be personal.
type PersonalExpense struct {
	ID         string          `json:"id"`
	Date       string          `json:"date"`
	Vendor     string          `json:"vendor"`
	Amount     decimal.Decimal `json:"amount"`
	Category   string          `json:"category"`
	FlagReason string          `json:"flagReason"`
	Severity   Severity        `json:"severity"`
}

// Trend is the direction of a customer's spend.
type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

// CustomerData is one customer's three month spend trajectory, supplied by the
// caller.
type CustomerData struct {
	Name             string          `json:"name"`
	Month1Spend      decimal.Decimal `json:"month1Spend"`
	Month2Spend      decimal.Decimal `json:"month2Spend"`
	Month3Spend      decimal.Decimal `json:"month3Spend"`
	Trend            Trend           `json:"trend"`
	PercentageChange float64         `json:"percentageChange"`
	Flagged          bool            `json:"flagged"`
}

// ChurnDetail is the recomputed trajectory for one customer.
type ChurnDetail struct {
	Name          string  `json:"name"`
	PercentChange float64 `json:"percentChange"`
	Trend         Trend   `json:"trend"`
}

// ChurnAnalysis is the output of CalculateChurn.
type ChurnAnalysis struct {
	Customers             []CustomerData `json:"customers"`
	ChurnRisk             bool           `json:"churnRisk"`
	AtRiskCustomers       []string       `json:"atRiskCustomers"`
	ChurnDetails          []ChurnDetail  `json:"churnDetails"`
	ConcentrationRisk     bool           `json:"concentrationRisk"`
	TopCustomerPercentage float64        `json:"topCustomerPercentage"`
}

// EBITDABridge walks reported net income to adjusted EBITDA.
type EBITDABridge struct {
	ReportedNetIncome      decimal.Decimal `json:"reportedNetIncome"`
	PersonalExpenseAddBack decimal.Decimal `json:"personalExpenseAddBack"`
	OtherAdjustments       decimal.Decimal `json:"otherAdjustments"`
	TrueAdjustedEBITDA     decimal.Decimal `json:"trueAdjustedEBITDA"`
}

// RiskLevel buckets a risk score.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// Report is the assembled QoE report.
type Report struct {
	ScanID           string            `json:"scanId"`
	CompanyName      string            `json:"companyName"`
	RiskScore        int               `json:"riskScore"`
	RiskLevel        RiskLevel         `json:"riskLevel"`
	RevenueAnalysis  RevenueAnalysis   `json:"revenueAnalysis"`
	CustomerChurn    ChurnAnalysis     `json:"customerChurn"`
	PersonalExpenses []PersonalExpense `json:"personalExpenses"`
	EBITDABridge     EBITDABridge      `json:"ebitdaBridge"`
	Findings         []DragnetFinding  `json:"findings"`
	GeneratedAt      time.Time         `json:"generatedAt"`
}
