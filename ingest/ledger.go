package ingest

import (
	"io"
	"strings"

	"redflag/analysis"
)

// LedgerResult is the outcome of a ledger upload.
type LedgerResult struct {
	Entries []analysis.LedgerEntry `json:"entries"`
	Skipped int                    `json:"skippedRows"`
}

var ledgerFallback = columns{"date": 0, "description": 1, "category": 2, "amount": 3, "type": 4}

// ParseLedgerCSV reads a general-ledger export. Without a type column, a
// signed amount decides the side: negative amounts are expenses.
func ParseLedgerCSV(r io.Reader) (LedgerResult, error) {
	records, err := readCSV(r)
	if err != nil {
		return LedgerResult{}, err
	}

	cols, start := detectHeader(records, func(c columns) bool {
		return c.has("date") && (c.has("amount") || c.has("debit") || c.has("credit"))
	}, ledgerFallback)

	result := LedgerResult{Entries: make([]analysis.LedgerEntry, 0, len(records)-start)}
	for _, row := range records[start:] {
		entry, ok := ledgerRow(cols, row)
		if !ok {
			result.Skipped++
			continue
		}
		result.Entries = append(result.Entries, entry)
	}
	return result, nil
}

func ledgerRow(cols columns, row []string) (analysis.LedgerEntry, bool) {
	date, ok := NormalizeDate(cols.get(row, "date"))
	if !ok {
		return analysis.LedgerEntry{}, false
	}

	amount, side, ok := signedAmount(cols, row)
	if !ok {
		return analysis.LedgerEntry{}, false
	}

	entryType := analysis.EntryRevenue
	if side < 0 {
		entryType = analysis.EntryExpense
	}
	if cols.has("type") {
		switch strings.ToLower(cols.get(row, "type")) {
		case "revenue", "income", "sale", "sales", "credit":
			entryType = analysis.EntryRevenue
		case "expense", "expenses", "cost", "debit":
			entryType = analysis.EntryExpense
		case "":
		default:
			return analysis.LedgerEntry{}, false
		}
	}

	return analysis.LedgerEntry{
		Date:        date,
		Description: cols.get(row, "description"),
		Category:    cols.get(row, "category"),
		Amount:      amount,
		Type:        entryType,
	}, true
}
