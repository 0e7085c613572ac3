package analysis

import (
	"github.com/shopspring/decimal"
)

// Churn thresholds, in percent.
const (
	churnDropPercent     = -50.0
	steadyDeclinePercent = -30.0
	concentrationPercent = 20.0
	trendBandPercent     = 10.0
)

// SpendChange returns (month3 - month1) / month1 * 100, or 0 when month1 is
// zero.
func SpendChange(c CustomerData) float64 {
	if c.Month1Spend.IsZero() {
		return 0
	}
	return c.Month3Spend.Sub(c.Month1Spend).
		Div(c.Month1Spend).
		Mul(decimal.NewFromInt(100)).
		InexactFloat64()
}

// ComputeTrend classifies a customer's spend change: more than 10% either
// way is up or down, anything else is stable.
func ComputeTrend(c CustomerData) Trend {
	change := SpendChange(c)
	switch {
	case change > trendBandPercent:
		return TrendUp
	case change < -trendBandPercent:
		return TrendDown
	default:
		return TrendStable
	}
}

// IsAtRisk reports whether a customer shows a churn signal.
func IsAtRisk(c CustomerData) bool {
	change := SpendChange(c)
	switch {
	case change < churnDropPercent:
		return true
	case c.PercentageChange < churnDropPercent:
		return true
	case c.Flagged:
		return true
	case isSteadyDecline(c) && change < steadyDeclinePercent:
		return true
	case c.Month3Spend.IsZero() && c.Month1Spend.IsPositive():
		return true
	}
	return false
}

func isSteadyDecline(c CustomerData) bool {
	return c.Month1Spend.GreaterThan(c.Month2Spend) && c.Month2Spend.GreaterThan(c.Month3Spend)
}

// CalculateChurn evaluates churn and concentration risk across customers.
func CalculateChurn(customers []CustomerData) ChurnAnalysis {
	result := ChurnAnalysis{
		Customers:       make([]CustomerData, 0, len(customers)),
		AtRiskCustomers: []string{},
		ChurnDetails:    make([]ChurnDetail, 0, len(customers)),
	}

	var total, top decimal.Decimal
	for _, c := range customers {
		if c.Trend == "" {
			c.Trend = ComputeTrend(c)
		}
		result.Customers = append(result.Customers, c)

		result.ChurnDetails = append(result.ChurnDetails, ChurnDetail{
			Name:          c.Name,
			PercentChange: round1(SpendChange(c)),
			Trend:         ComputeTrend(c),
		})

		if IsAtRisk(c) {
			result.AtRiskCustomers = append(result.AtRiskCustomers, c.Name)
		}

		spend := c.Month1Spend.Add(c.Month2Spend).Add(c.Month3Spend)
		total = total.Add(spend)
		if spend.GreaterThan(top) {
			top = spend
		}
	}

	if total.IsPositive() {
		result.TopCustomerPercentage = top.Div(total).Mul(decimal.NewFromInt(100)).Round(1).InexactFloat64()
	}
	result.ConcentrationRisk = result.TopCustomerPercentage > concentrationPercent
	result.ChurnRisk = len(result.AtRiskCustomers) > 0

	return result
}
