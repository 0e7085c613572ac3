package analysis

import (
	"sort"

	"github.com/shopspring/decimal"
)

// DefaultThresholdPercent is the monthly discrepancy above which a month is
// flagged.
const DefaultThresholdPercent = 10.0

// Proof-of-cash and spike constants.
const (
	proofOfCashTolerance = 5.0
	spikeRevenueGrowth   = 50.0
	spikeDepositGrowth   = 20.0
)

// RevenueOptions tunes AnalyzeRevenue.
type RevenueOptions struct {
	// ThresholdPercent flags months whose discrepancy percentage is strictly
	// greater than it.
	ThresholdPercent float64
	// DetectSpikes also flags months where booked revenue grows more than 50%
	// over the prior month while deposits grow less than 20%.
	DetectSpikes bool
}

// DefaultRevenueOptions returns a 10% threshold with spike detection off.
func DefaultRevenueOptions() RevenueOptions {
	return RevenueOptions{ThresholdPercent: DefaultThresholdPercent}
}

// AnalyzeRevenue reconciles monthly booked revenue against bank deposits.
// Records with a non-positive amount, the wrong type or a malformed date are
// skipped.
func AnalyzeRevenue(ledger []LedgerEntry, bank []BankTransaction, opts RevenueOptions) RevenueAnalysis {
	revenueByMonth := make(map[string]decimal.Decimal)
	depositsByMonth := make(map[string]decimal.Decimal)
	months := make(map[string]struct{})

	for _, e := range ledger {
		if e.Type != EntryRevenue || !e.Amount.IsPositive() {
			continue
		}
		key, ok := monthKey(e.Date)
		if !ok {
			continue
		}
		revenueByMonth[key] = revenueByMonth[key].Add(e.Amount)
		months[key] = struct{}{}
	}

	for _, t := range bank {
		if t.Type != TransactionDeposit || !t.Amount.IsPositive() {
			continue
		}
		key, ok := monthKey(t.Date)
		if !ok {
			continue
		}
		depositsByMonth[key] = depositsByMonth[key].Add(t.Amount)
		months[key] = struct{}{}
	}

	keys := make([]string, 0, len(months))
	for k := range months {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	result := RevenueAnalysis{
		MonthlyData:   make([]MonthlyRevenue, 0, len(keys)),
		FlaggedMonths: []string{},
	}

	var totalBooked, totalDeposits decimal.Decimal
	for i, key := range keys {
		booked := revenueByMonth[key].Round(0)
		deposits := depositsByMonth[key].Round(0)
		discrepancy := booked.Sub(deposits)

		m := MonthlyRevenue{
			Month:                 FormatMonth(key),
			BookedRevenue:         booked,
			ActualDeposits:        deposits,
			Discrepancy:           discrepancy,
			DiscrepancyPercentage: percentOf(discrepancy, deposits),
		}
		m.Flagged = m.DiscrepancyPercentage > opts.ThresholdPercent

		if opts.DetectSpikes && i > 0 {
			prev := result.MonthlyData[i-1]
			if isRevenueSpike(prev.BookedRevenue, booked, prev.ActualDeposits, deposits) {
				m.RevenueSpike = true
				m.Flagged = true
			}
		}

		if m.Flagged {
			result.FlaggedMonths = append(result.FlaggedMonths, m.Month)
		}
		result.MonthlyData = append(result.MonthlyData, m)

		totalBooked = totalBooked.Add(booked)
		totalDeposits = totalDeposits.Add(deposits)
	}

	result.DiscrepancyAmount = totalBooked.Sub(totalDeposits)
	result.DiscrepancyPercentage = percentOf(result.DiscrepancyAmount, totalDeposits)

	proofOfCashFailed := false
	if totalBooked.IsPositive() {
		tolerance := totalBooked.Mul(decimal.NewFromFloat(proofOfCashTolerance / 100))
		proofOfCashFailed = result.DiscrepancyAmount.Abs().GreaterThan(tolerance)
	}
	result.DiscrepancyFound = len(result.FlaggedMonths) > 0 || proofOfCashFailed

	return result
}

// isRevenueSpike reports booked revenue growing by more than 50% over the
// prior month while deposits grow by less than 20%. Months following a month
// without revenue or deposits are never spikes.
func isRevenueSpike(prevBooked, booked, prevDeposits, deposits decimal.Decimal) bool {
	if !prevBooked.IsPositive() || !prevDeposits.IsPositive() {
		return false
	}
	hundred := decimal.NewFromInt(100)
	revenueGrowth := booked.Sub(prevBooked).Div(prevBooked).Mul(hundred)
	depositGrowth := deposits.Sub(prevDeposits).Div(prevDeposits).Mul(hundred)
	return revenueGrowth.GreaterThan(decimal.NewFromFloat(spikeRevenueGrowth)) &&
		depositGrowth.LessThan(decimal.NewFromFloat(spikeDepositGrowth))
}
