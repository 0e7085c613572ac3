package ingest

import (
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"redflag/analysis"
)

// BankResult is the outcome of a bank statement upload.
type BankResult struct {
	Transactions []analysis.BankTransaction `json:"transactions"`
	Skipped      int                        `json:"skippedRows"`
}

var bankFallback = columns{"date": 0, "description": 1, "amount": 2, "type": 3}

// ParseBankCSV reads a bank statement export. It accepts a signed amount
// column, an explicit deposit/withdrawal type column, or card-style Debit and
// Credit columns (Transaction Date, Posted Date, Card No., Description,
// Category, Debit, Credit).
func ParseBankCSV(r io.Reader) (BankResult, error) {
	records, err := readCSV(r)
	if err != nil {
		return BankResult{}, err
	}

	cols, start := detectHeader(records, func(c columns) bool {
		return c.has("date") && (c.has("amount") || c.has("debit") || c.has("credit"))
	}, bankFallback)

	result := BankResult{Transactions: make([]analysis.BankTransaction, 0, len(records)-start)}
	for _, row := range records[start:] {
		tx, ok := bankRow(cols, row)
		if !ok {
			result.Skipped++
			continue
		}
		result.Transactions = append(result.Transactions, tx)
	}
	return result, nil
}

func bankRow(cols columns, row []string) (analysis.BankTransaction, bool) {
	date, ok := NormalizeDate(cols.get(row, "date"))
	if !ok {
		return analysis.BankTransaction{}, false
	}

	amount, side, ok := signedAmount(cols, row)
	if !ok {
		return analysis.BankTransaction{}, false
	}

	txType := analysis.TransactionDeposit
	if side < 0 {
		txType = analysis.TransactionWithdrawal
	}
	if cols.has("type") {
		switch strings.ToLower(cols.get(row, "type")) {
		case "deposit", "credit", "crdt":
			txType = analysis.TransactionDeposit
		case "withdrawal", "debit", "dbit", "payment":
			txType = analysis.TransactionWithdrawal
		case "":
		default:
			return analysis.BankTransaction{}, false
		}
	}

	return analysis.BankTransaction{
		Date:        date,
		Description: cols.get(row, "description"),
		Amount:      amount,
		Type:        txType,
	}, true
}

// signedAmount returns the absolute amount of a row and the side it falls
// on: -1 for money out, +1 for money in. A Debit cell is money out and a
// Credit cell money in; otherwise the sign of the amount decides.
func signedAmount(cols columns, row []string) (decimal.Decimal, int, bool) {
	if raw := cols.get(row, "amount"); raw != "" {
		d, err := ParseAmount(raw)
		if err != nil {
			return decimal.Zero, 0, false
		}
		if d.IsNegative() {
			return d.Abs(), -1, true
		}
		return d, 1, true
	}
	if raw := cols.get(row, "debit"); raw != "" {
		d, err := ParseAmount(raw)
		if err != nil {
			return decimal.Zero, 0, false
		}
		return d.Abs(), -1, true
	}
	if raw := cols.get(row, "credit"); raw != "" {
		d, err := ParseAmount(raw)
		if err != nil {
			return decimal.Zero, 0, false
		}
		return d.Abs(), 1, true
	}
	return decimal.Zero, 0, false
}
