package main

import (
	"testing"

	"redflag/analysis"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompletionEmail(t *testing.T) {
	report := &analysis.Report{
		ScanID:      "scan-1",
		CompanyName: "Acme Manufacturing",
		RiskScore:   55,
		RiskLevel:   analysis.RiskMedium,
		RevenueAnalysis: analysis.RevenueAnalysis{
			DiscrepancyFound:  true,
			DiscrepancyAmount: decimal.NewFromInt(100000),
			FlaggedMonths:     []string{"Nov 2024", "Dec 2024"},
		},
		PersonalExpenses: []analysis.PersonalExpense{{Vendor: "Walt Disney World"}},
		CustomerChurn: analysis.ChurnAnalysis{
			ChurnRisk:       true,
			AtRiskCustomers: []string{"Big Box Retail Co"},
		},
		EBITDABridge: analysis.EBITDABridge{TrueAdjustedEBITDA: decimal.NewFromInt(135000)},
	}

	e := completionEmail("reports@redflag.ai", "buyer@example.com", report)

	assert.Equal(t, "reports@redflag.ai", e.From)
	assert.Equal(t, []string{"buyer@example.com"}, e.To)
	assert.Equal(t, "RedFlag report ready: Acme Manufacturing", e.Subject)

	body := string(e.Text)
	assert.Contains(t, body, "Risk score: 55 (medium)")
	assert.Contains(t, body, "Revenue discrepancy: $100,000 in Nov 2024, Dec 2024")
	assert.Contains(t, body, "Personal expenses flagged: 1")
	assert.Contains(t, body, "Customers at risk: 1")
	assert.Contains(t, body, "Adjusted EBITDA: $135,000")
	assert.NotContains(t, body, "Walt Disney World")
}

func TestCompletionEmailWithoutFindings(t *testing.T) {
	report := &analysis.Report{CompanyName: "Clean Co", RiskLevel: analysis.RiskLow}

	body := string(completionEmail("a@b.test", "c@d.test", report).Text)

	assert.NotContains(t, body, "Revenue discrepancy")
	assert.NotContains(t, body, "Customers at risk")
	assert.Contains(t, body, "Adjusted EBITDA: $0")
}

func TestEmailNotifierSkipsMissingRecipient(t *testing.T) {
	n := newEmailNotifier(&Config{SMTPHost: "smtp.invalid", SMTPPort: "25"}, logger)

	require.NoError(t, n.ScanCompleted("", &analysis.Report{ScanID: "scan-1"}))
}
