package analysis

import (
	"math"

	"github.com/shopspring/decimal"
)

// Caps and weights of the composite risk score.
const (
	revenueCap             = 40.0
	revenueWeight          = 0.4
	expenseAmountCap       = 20.0
	expenseAmountScale     = 50000.0
	highSeverityCap        = 10.0
	highSeverityWeight     = 2.5
	churnCap               = 30.0
	churnWeightPerCustomer = 10.0
)

// RiskInputs are the analyzer outputs the risk score is built from. A nil
// section contributes nothing.
type RiskInputs struct {
	Revenue          *RevenueAnalysis
	PersonalExpenses []PersonalExpense
	Churn            *ChurnAnalysis
}

// GenerateRiskScore combines the analyses into a score between 0 and 100.
func GenerateRiskScore(in RiskInputs) int {
	score := revenueRisk(in.Revenue) + expenseRisk(in.PersonalExpenses) + churnRisk(in.Churn)
	rounded := int(math.Round(score))
	if rounded < 0 {
		return 0
	}
	if rounded > 100 {
		return 100
	}
	return rounded
}

func revenueRisk(r *RevenueAnalysis) float64 {
	if r == nil {
		return 0
	}
	maxDiscrepancy := 0.0
	found := false
	for _, m := range r.MonthlyData {
		if !m.Flagged {
			continue
		}
		found = true
		maxDiscrepancy = math.Max(maxDiscrepancy, math.Abs(m.DiscrepancyPercentage))
	}
	if !found {
		return 0
	}
	return math.Min(revenueCap, maxDiscrepancy*revenueWeight)
}

func expenseRisk(expenses []PersonalExpense) float64 {
	if len(expenses) == 0 {
		return 0
	}
	total := decimal.Zero
	high := 0
	for _, e := range expenses {
		total = total.Add(e.Amount)
		if e.Severity == SeverityHigh {
			high++
		}
	}
	amountScore := math.Min(expenseAmountCap, total.InexactFloat64()/expenseAmountScale*expenseAmountCap)
	highScore := math.Min(highSeverityCap, float64(high)*highSeverityWeight)
	return math.Max(0, amountScore) + highScore
}

func churnRisk(c *ChurnAnalysis) float64 {
	if c == nil {
		return 0
	}
	return math.Min(churnCap, float64(len(c.AtRiskCustomers))*churnWeightPerCustomer)
}

// GetRiskLevel buckets a score: 70 and above is high, 40 and above medium.
func GetRiskLevel(score int) RiskLevel {
	switch {
	case score >= 70:
		return RiskHigh
	case score >= 40:
		return RiskMedium
	default:
		return RiskLow
	}
}
