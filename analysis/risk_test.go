package analysis

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestGenerateRiskScore(t *testing.T) {
	flaggedRevenue := &RevenueAnalysis{MonthlyData: []MonthlyRevenue{
		{DiscrepancyPercentage: 5},
		{DiscrepancyPercentage: 133.3, Flagged: true},
		{DiscrepancyPercentage: 250, Flagged: false},
	}}

	t.Run("absent sections contribute nothing", func(t *testing.T) {
		assert.Equal(t, 0, GenerateRiskScore(RiskInputs{}))
	})

	t.Run("revenue uses the largest flagged discrepancy", func(t *testing.T) {
		assert.Equal(t, 40, GenerateRiskScore(RiskInputs{Revenue: flaggedRevenue}))

		modest := &RevenueAnalysis{MonthlyData: []MonthlyRevenue{{DiscrepancyPercentage: 20, Flagged: true}}}
		assert.Equal(t, 8, GenerateRiskScore(RiskInputs{Revenue: modest}))
	})

	t.Run("unflagged months do not score", func(t *testing.T) {
		calm := &RevenueAnalysis{MonthlyData: []MonthlyRevenue{{DiscrepancyPercentage: 9.9}}}
		assert.Equal(t, 0, GenerateRiskScore(RiskInputs{Revenue: calm}))
	})

	t.Run("personal expenses score amount and high severity count", func(t *testing.T) {
		expenses := []PersonalExpense{
			{Amount: decimal.NewFromInt(15000), Severity: SeverityHigh},
			{Amount: decimal.NewFromInt(10000), Severity: SeverityHigh},
			{Amount: decimal.NewFromInt(0), Severity: SeverityLow},
		}
		// 25000/50000*20 = 10, plus 2 * 2.5 = 5
		assert.Equal(t, 15, GenerateRiskScore(RiskInputs{PersonalExpenses: expenses}))
	})

	t.Run("churn is capped at thirty", func(t *testing.T) {
		churn := &ChurnAnalysis{AtRiskCustomers: []string{"a", "b", "c", "d"}}
		assert.Equal(t, 30, GenerateRiskScore(RiskInputs{Churn: churn}))
	})

	t.Run("total is capped at one hundred", func(t *testing.T) {
		var expenses []PersonalExpense
		for i := 0; i < 6; i++ {
			expenses = append(expenses, PersonalExpense{Amount: decimal.NewFromInt(20000), Severity: SeverityHigh})
		}
		score := GenerateRiskScore(RiskInputs{
			Revenue:          flaggedRevenue,
			PersonalExpenses: expenses,
			Churn:            &ChurnAnalysis{AtRiskCustomers: []string{"a", "b", "c"}},
		})
		assert.Equal(t, 100, score)
	})
}

func TestGetRiskLevel(t *testing.T) {
	tests := []struct {
		score int
		want  RiskLevel
	}{
		{0, RiskLow},
		{39, RiskLow},
		{40, RiskMedium},
		{69, RiskMedium},
		{70, RiskHigh},
		{100, RiskHigh},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, GetRiskLevel(tt.score), "score %d", tt.score)
	}
}

func TestComputeAdjustedEBITDA(t *testing.T) {
	expenses := []PersonalExpense{
		{Amount: decimal.RequireFromString("12500.50")},
		{Amount: decimal.NewFromInt(4800)},
	}

	bridge := ComputeAdjustedEBITDA(decimal.NewFromInt(185000), expenses, decimal.NewFromInt(15000))

	assert.True(t, bridge.PersonalExpenseAddBack.Equal(decimal.RequireFromString("17300.50")))
	assert.True(t, bridge.TrueAdjustedEBITDA.Equal(decimal.RequireFromString("217300.50")))
	assert.True(t, bridge.OtherAdjustments.Equal(decimal.NewFromInt(15000)))

	empty := ComputeAdjustedEBITDA(decimal.NewFromInt(-2000), nil, decimal.Zero)
	assert.True(t, empty.PersonalExpenseAddBack.IsZero())
	assert.True(t, empty.TrueAdjustedEBITDA.Equal(decimal.NewFromInt(-2000)))
}

func TestNetIncome(t *testing.T) {
	ledger := []LedgerEntry{
		revenue("2024-01-01", 10000),
		revenue("2024-01-02", 2500),
		expense("2024-01-03", "Payroll", "Payroll", 7000),
		{Date: "2024-01-04", Amount: decimal.NewFromInt(-50), Type: EntryExpense},
	}

	assert.True(t, NetIncome(ledger).Equal(decimal.NewFromInt(5500)))
	assert.True(t, NetIncome(nil).IsZero())
}
