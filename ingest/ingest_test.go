package ingest

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"redflag/analysis"
)

func TestParseLedgerCSV(t *testing.T) {
	t.Run("header with explicit type", func(t *testing.T) {
		csvData := `Date,Description,Category,Amount,Type
2024-12-01,Invoice 1001,Sales,"100,000.00",revenue
12/14/2024,Walt Disney World,Office Supplies,5000,expense
not-a-date,Broken,Sales,10,revenue
2024-12-20,Unknown,Sales,10,transfer
`
		result, err := ParseLedgerCSV(strings.NewReader(csvData))
		require.NoError(t, err)

		require.Len(t, result.Entries, 2)
		assert.Equal(t, 2, result.Skipped)

		assert.Equal(t, "2024-12-01", result.Entries[0].Date)
		assert.Equal(t, analysis.EntryRevenue, result.Entries[0].Type)
		assert.True(t, result.Entries[0].Amount.Equal(decimal.NewFromInt(100000)))

		assert.Equal(t, "2024-12-14", result.Entries[1].Date)
		assert.Equal(t, "Office Supplies", result.Entries[1].Category)
		assert.Equal(t, analysis.EntryExpense, result.Entries[1].Type)
	})

	t.Run("signed amounts without a type column", func(t *testing.T) {
		csvData := "date,memo,account,amount\n2024-11,Retainer,Sales,2500\n2024-11-03,Cruise,Travel,(1200.50)\n2024-11-04,Fees,Bank,-35\n"

		result, err := ParseLedgerCSV(strings.NewReader(csvData))
		require.NoError(t, err)

		require.Len(t, result.Entries, 3)
		assert.Equal(t, "2024-11", result.Entries[0].Date)
		assert.Equal(t, analysis.EntryRevenue, result.Entries[0].Type)
		assert.Equal(t, analysis.EntryExpense, result.Entries[1].Type)
		assert.True(t, result.Entries[1].Amount.Equal(decimal.RequireFromString("1200.50")))
		assert.Equal(t, "Cruise", result.Entries[1].Description)
		assert.Equal(t, analysis.EntryExpense, result.Entries[2].Type)
		assert.True(t, result.Entries[2].Amount.Equal(decimal.NewFromInt(35)))
	})

	t.Run("headerless file uses positional columns", func(t *testing.T) {
		result, err := ParseLedgerCSV(strings.NewReader("2024-01-05,Invoice,Sales,900,revenue\n"))
		require.NoError(t, err)

		require.Len(t, result.Entries, 1)
		assert.Equal(t, 0, result.Skipped)
		assert.Equal(t, "Invoice", result.Entries[0].Description)
	})

	t.Run("header below a title row", func(t *testing.T) {
		csvData := "Acme Corp General Ledger\nDate,Description,Amount\n2024-02-01,Invoice,300\n"

		result, err := ParseLedgerCSV(strings.NewReader(csvData))
		require.NoError(t, err)
		require.Len(t, result.Entries, 1)
		assert.Equal(t, 0, result.Skipped)
	})

	t.Run("empty file", func(t *testing.T) {
		_, err := ParseLedgerCSV(strings.NewReader(""))
		assert.ErrorIs(t, err, ErrEmptyFile)
	})

	t.Run("oversized file", func(t *testing.T) {
		big := bytes.Repeat([]byte("a"), MaxUploadBytes+1)
		_, err := ParseLedgerCSV(bytes.NewReader(big))
		assert.True(t, errors.Is(err, ErrFileTooLarge))
	})
}

func TestParseBankCSV(t *testing.T) {
	t.Run("card export with debit and credit columns", func(t *testing.T) {
		csvData := `Transaction Date,Posted Date,Card No.,Description,Category,Debit,Credit
2024-12-07,2024-12-09,1234,DELTA AIR,Travel,450.10,
2024-12-10,2024-12-10,1234,PAYMENT THANK YOU,Payment/Credit,,2000
2024-12-11,2024-12-11,1234,EMPTY,Misc,,
`
		result, err := ParseBankCSV(strings.NewReader(csvData))
		require.NoError(t, err)

		require.Len(t, result.Transactions, 2)
		assert.Equal(t, 1, result.Skipped)
		assert.Equal(t, analysis.TransactionWithdrawal, result.Transactions[0].Type)
		assert.True(t, result.Transactions[0].Amount.Equal(decimal.RequireFromString("450.10")))
		assert.Equal(t, "DELTA AIR", result.Transactions[0].Description)
		assert.Equal(t, analysis.TransactionDeposit, result.Transactions[1].Type)
	})

	t.Run("explicit type column", func(t *testing.T) {
		csvData := "date,description,amount,type\n2024-12-20,Deposit,75000,deposit\n2024-12-21,Rent,3000,withdrawal\n"

		result, err := ParseBankCSV(strings.NewReader(csvData))
		require.NoError(t, err)
		require.Len(t, result.Transactions, 2)
		assert.Equal(t, analysis.TransactionDeposit, result.Transactions[0].Type)
		assert.Equal(t, analysis.TransactionWithdrawal, result.Transactions[1].Type)
	})

	t.Run("signed amounts", func(t *testing.T) {
		csvData := "date,description,amount\n2024-12-20,Deposit,\"$1,500\"\n2024-12-21,Rent,-3000\n"

		result, err := ParseBankCSV(strings.NewReader(csvData))
		require.NoError(t, err)
		require.Len(t, result.Transactions, 2)
		assert.Equal(t, analysis.TransactionDeposit, result.Transactions[0].Type)
		assert.True(t, result.Transactions[0].Amount.Equal(decimal.NewFromInt(1500)))
		assert.Equal(t, analysis.TransactionWithdrawal, result.Transactions[1].Type)
		assert.True(t, result.Transactions[1].Amount.Equal(decimal.NewFromInt(3000)))
	})
}

func TestParseCustomersCSV(t *testing.T) {
	csvData := `name,month1_spend,month2_spend,month3_spend,percentage_change,flagged
Big Box Retail Co,45000,42000,18000,-60%,true
Corner Shop,1000,1000,1000,,
,1,2,3,,
Negative Co,-1,2,3,,
`
	result, err := ParseCustomersCSV(strings.NewReader(csvData))
	require.NoError(t, err)

	require.Len(t, result.Customers, 2)
	assert.Equal(t, 2, result.Skipped)

	big := result.Customers[0]
	assert.Equal(t, "Big Box Retail Co", big.Name)
	assert.True(t, big.Month3Spend.Equal(decimal.NewFromInt(18000)))
	assert.Equal(t, -60.0, big.PercentageChange)
	assert.True(t, big.Flagged)

	assert.False(t, result.Customers[1].Flagged)
}

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"2024-12-01", "2024-12-01", true},
		{"2024-12", "2024-12", true},
		{"12/01/2024", "2024-12-01", true},
		{"1/5/2024", "2024-01-05", true},
		{"2024/03/09", "2024-03-09", true},
		{"2024-12-01T10:30:00Z", "2024-12-01", true},
		{"2024-13-01", "", false},
		{"yesterday", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := NormalizeDate(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1,250.00", "1250"},
		{"$-40", "-40"},
		{"(300.50)", "-300.5"},
		{" 12 ", "12"},
	}
	for _, tt := range tests {
		got, err := ParseAmount(tt.in)
		require.NoError(t, err, tt.in)
		assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), tt.in)
	}

	_, err := ParseAmount("")
	assert.Error(t, err)
	_, err = ParseAmount("twelve")
	assert.Error(t, err)
}
