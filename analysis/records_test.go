package analysis

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeRecords(t *testing.T) {
	t.Run("valid payload", func(t *testing.T) {
		records, err := DecodeRecords([]byte(`{
			"ledger": [
				{"date": "2024-12-01", "description": "Invoice 1001", "category": "Sales", "amount": 175000, "type": "revenue"},
				{"date": "2024-12-14", "description": "Walt Disney World", "category": "Office Supplies", "amount": 5000.25, "type": "expense"}
			],
			"bank": [
				{"date": "2024-12", "description": "Deposit", "amount": 75000, "type": "deposit"}
			],
			"customers": [
				{"name": "Big Box Retail Co", "month1Spend": 45000, "month2Spend": 42000, "month3Spend": 18000, "trend": "down", "percentageChange": -60, "flagged": true}
			]
		}`))

		require.NoError(t, err)
		require.Len(t, records.Ledger, 2)
		assert.Equal(t, EntryExpense, records.Ledger[1].Type)
		assert.True(t, records.Ledger[1].Amount.Equal(decimal.RequireFromString("5000.25")))
		require.Len(t, records.Bank, 1)
		require.Len(t, records.Customers, 1)
		assert.True(t, records.Customers[0].Flagged)
	})

	t.Run("empty collections are kept", func(t *testing.T) {
		records, err := DecodeRecords([]byte(`{"ledger": [], "bank": []}`))

		require.NoError(t, err)
		assert.NotNil(t, records.Ledger)
		assert.NotNil(t, records.Bank)
		assert.Nil(t, records.Customers)
	})

	tests := []struct {
		name    string
		payload string
	}{
		{"missing bank", `{"ledger": []}`},
		{"null ledger", `{"ledger": null, "bank": []}`},
		{"negative amount", `{"ledger": [{"date": "2024-01-01", "description": "x", "amount": -5, "type": "revenue"}], "bank": []}`},
		{"unknown type", `{"ledger": [{"date": "2024-01-01", "description": "x", "amount": 5, "type": "refund"}], "bank": []}`},
		{"bad date", `{"ledger": [], "bank": [{"date": "01/02/2024", "description": "x", "amount": 5, "type": "deposit"}]}`},
		{"string amount", `{"ledger": [], "bank": [{"date": "2024-01-02", "description": "x", "amount": "5", "type": "deposit"}]}`},
		{"customer without name", `{"ledger": [], "bank": [], "customers": [{"month1Spend": 1, "month2Spend": 1, "month3Spend": 1}]}`},
		{"not json", `ledger,bank`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeRecords([]byte(tt.payload))
			assert.Error(t, err)
		})
	}
}
