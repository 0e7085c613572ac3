package analysis

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func revenue(date string, amount int64) LedgerEntry {
	return LedgerEntry{Date: date, Description: "Invoice", Category: "Sales", Amount: decimal.NewFromInt(amount), Type: EntryRevenue}
}

func expense(date, description, category string, amount int64) LedgerEntry {
	return LedgerEntry{Date: date, Description: description, Category: category, Amount: decimal.NewFromInt(amount), Type: EntryExpense}
}

func deposit(date string, amount int64) BankTransaction {
	return BankTransaction{Date: date, Description: "Deposit", Amount: decimal.NewFromInt(amount), Type: TransactionDeposit}
}

func TestAnalyzeRevenue(t *testing.T) {
	t.Run("december scenario flags a one third shortfall", func(t *testing.T) {
		result := AnalyzeRevenue(
			[]LedgerEntry{revenue("2024-12-01", 100000), revenue("2024-12-15", 75000)},
			[]BankTransaction{deposit("2024-12-20", 75000)},
			DefaultRevenueOptions(),
		)

		require.Len(t, result.MonthlyData, 1)
		m := result.MonthlyData[0]
		assert.Equal(t, "Dec 2024", m.Month)
		assert.True(t, m.BookedRevenue.Equal(decimal.NewFromInt(175000)))
		assert.True(t, m.ActualDeposits.Equal(decimal.NewFromInt(75000)))
		assert.True(t, m.Discrepancy.Equal(decimal.NewFromInt(100000)))
		assert.InDelta(t, 133.3, m.DiscrepancyPercentage, 0.001)
		assert.True(t, m.Flagged)
		assert.Equal(t, []string{"Dec 2024"}, result.FlaggedMonths)
		assert.True(t, result.DiscrepancyFound)
	})

	t.Run("month without deposits is a full discrepancy", func(t *testing.T) {
		result := AnalyzeRevenue([]LedgerEntry{revenue("2024-03-10", 1000)}, []BankTransaction{}, DefaultRevenueOptions())

		require.Len(t, result.MonthlyData, 1)
		assert.Equal(t, 100.0, result.MonthlyData[0].DiscrepancyPercentage)
		assert.True(t, result.MonthlyData[0].Flagged)
	})

	t.Run("threshold comparison is strict", func(t *testing.T) {
		atThreshold := AnalyzeRevenue([]LedgerEntry{revenue("2024-01", 1100)}, []BankTransaction{deposit("2024-01", 1000)}, DefaultRevenueOptions())
		assert.Equal(t, 10.0, atThreshold.MonthlyData[0].DiscrepancyPercentage)
		assert.False(t, atThreshold.MonthlyData[0].Flagged)

		above := AnalyzeRevenue([]LedgerEntry{revenue("2024-01", 1101)}, []BankTransaction{deposit("2024-01", 1000)}, DefaultRevenueOptions())
		assert.Equal(t, 10.1, above.MonthlyData[0].DiscrepancyPercentage)
		assert.True(t, above.MonthlyData[0].Flagged)
	})

	t.Run("months are the sorted union of both sides", func(t *testing.T) {
		result := AnalyzeRevenue(
			[]LedgerEntry{revenue("2024-03-01", 500), revenue("2023-11-02", 500)},
			[]BankTransaction{deposit("2024-01-05", 500), deposit("2024-03-09", 500)},
			DefaultRevenueOptions(),
		)

		var months []string
		for _, m := range result.MonthlyData {
			months = append(months, m.Month)
		}
		assert.Equal(t, []string{"Nov 2023", "Jan 2024", "Mar 2024"}, months)
	})

	t.Run("malformed records are skipped", func(t *testing.T) {
		result := AnalyzeRevenue(
			[]LedgerEntry{
				revenue("12/01/2024", 500),
				revenue("2024-13-01", 500),
				revenue("2024-02-01", 0),
				expense("2024-02-01", "Rent", "Rent", 900),
				revenue("2024-02-01", 700),
			},
			[]BankTransaction{
				{Date: "2024-02-03", Amount: decimal.NewFromInt(400), Type: TransactionWithdrawal},
				deposit("not a date", 100),
				deposit("2024-02-03", 700),
			},
			DefaultRevenueOptions(),
		)

		require.Len(t, result.MonthlyData, 1)
		assert.Equal(t, "Feb 2024", result.MonthlyData[0].Month)
		assert.True(t, result.MonthlyData[0].Discrepancy.IsZero())
		assert.False(t, result.DiscrepancyFound)
	})

	t.Run("empty input yields empty analysis", func(t *testing.T) {
		result := AnalyzeRevenue(nil, nil, DefaultRevenueOptions())

		assert.Empty(t, result.MonthlyData)
		assert.Empty(t, result.FlaggedMonths)
		assert.False(t, result.DiscrepancyFound)
		assert.Equal(t, 0.0, result.DiscrepancyPercentage)
	})

	t.Run("proof of cash catches small but persistent variance", func(t *testing.T) {
		result := AnalyzeRevenue(
			[]LedgerEntry{revenue("2024-01-10", 1080), revenue("2024-02-10", 1080)},
			[]BankTransaction{deposit("2024-01-11", 1000), deposit("2024-02-11", 1000)},
			DefaultRevenueOptions(),
		)

		assert.Empty(t, result.FlaggedMonths)
		assert.True(t, result.DiscrepancyAmount.Equal(decimal.NewFromInt(160)))
		assert.Equal(t, 8.0, result.DiscrepancyPercentage)
		assert.True(t, result.DiscrepancyFound)
	})

	t.Run("amounts are rounded to whole units", func(t *testing.T) {
		ledger := []LedgerEntry{{Date: "2024-05-01", Amount: decimal.RequireFromString("999.6"), Type: EntryRevenue}}
		bank := []BankTransaction{{Date: "2024-05-02", Amount: decimal.RequireFromString("1000.4"), Type: TransactionDeposit}}

		result := AnalyzeRevenue(ledger, bank, DefaultRevenueOptions())

		assert.True(t, result.MonthlyData[0].BookedRevenue.Equal(decimal.NewFromInt(1000)))
		assert.True(t, result.MonthlyData[0].ActualDeposits.Equal(decimal.NewFromInt(1000)))
		assert.False(t, result.MonthlyData[0].Flagged)
	})
}

func TestAnalyzeRevenueSpikes(t *testing.T) {
	ledger := []LedgerEntry{revenue("2024-01-15", 700), revenue("2024-02-15", 1100)}
	bank := []BankTransaction{deposit("2024-01-20", 1000), deposit("2024-02-20", 1100)}

	t.Run("spike rule is off by default", func(t *testing.T) {
		result := AnalyzeRevenue(ledger, bank, DefaultRevenueOptions())

		assert.False(t, result.MonthlyData[1].Flagged)
		assert.False(t, result.MonthlyData[1].RevenueSpike)
	})

	t.Run("spike rule flags revenue jumping ahead of deposits", func(t *testing.T) {
		opts := DefaultRevenueOptions()
		opts.DetectSpikes = true

		result := AnalyzeRevenue(ledger, bank, opts)

		assert.False(t, result.MonthlyData[0].Flagged)
		assert.True(t, result.MonthlyData[1].Flagged)
		assert.True(t, result.MonthlyData[1].RevenueSpike)
		assert.Equal(t, []string{"Feb 2024"}, result.FlaggedMonths)
		assert.True(t, result.DiscrepancyFound)
	})

	t.Run("deposits keeping pace is not a spike", func(t *testing.T) {
		opts := DefaultRevenueOptions()
		opts.DetectSpikes = true

		result := AnalyzeRevenue(ledger, []BankTransaction{deposit("2024-01-20", 1000), deposit("2024-02-20", 1300)}, opts)

		assert.False(t, result.MonthlyData[1].RevenueSpike)
	})
}
