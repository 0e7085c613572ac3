package analysis

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Dragnet flag labels.
const (
	FlagWeekend     = "Weekend Transaction"
	FlagRoundDollar = "Round Dollar Amount"
)

// FindingLevel grades a dragnet finding by how many rules fired.
type FindingLevel string

const (
	FindingWarning FindingLevel = "warning"
	FindingDanger  FindingLevel = "danger"
)

// DragnetFinding is a row-level triage flag raised by Dragnet.
type DragnetFinding struct {
	Row         int             `json:"row"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Flags       []string        `json:"flags"`
	Level       FindingLevel    `json:"level"`
	Message     string          `json:"message"`
}

var (
	roundDollarMin  = decimal.NewFromInt(100)
	roundDollarUnit = decimal.NewFromInt(100)
)

// Dragnet runs the fast rule-based pass over every ledger row: weekend
// activity other than rent, servers and subscriptions, round dollar amounts
// above $100, and suspicious keywords. Rows are numbered from 1.
func Dragnet(entries []LedgerEntry, tables *Tables) []DragnetFinding {
	if tables == nil {
		tables = DefaultTables()
	}

	findings := make([]DragnetFinding, 0)
	for i, e := range entries {
		flags := dragnetFlags(e, tables)
		if len(flags) == 0 {
			continue
		}

		level := FindingWarning
		if len(flags) > 1 {
			level = FindingDanger
		}
		row := i + 1
		findings = append(findings, DragnetFinding{
			Row:         row,
			Date:        e.Date,
			Description: e.Description,
			Amount:      e.Amount,
			Flags:       flags,
			Level:       level,
			Message: fmt.Sprintf("Row #%d: Flagged - %s (%s - %s)",
				row, strings.Join(flags, ", "), e.Description, FormatCurrency(e.Amount)),
		})
	}
	return findings
}

func dragnetFlags(e LedgerEntry, tables *Tables) []string {
	var flags []string

	if isWeekend(e.Date) && len(tables.matchKeywords(tables.weekendExclusions, e.Description)) == 0 {
		flags = append(flags, FlagWeekend)
	}

	if e.Amount.GreaterThan(roundDollarMin) && e.Amount.Mod(roundDollarUnit).IsZero() {
		flags = append(flags, FlagRoundDollar)
	}

	if matched := tables.matchKeywords(tables.dragnet, e.Description); len(matched) > 0 {
		flags = append(flags, fmt.Sprintf("Suspicious Keyword: %q", matched[0]))
	}

	return flags
}

// DatasetStats summarises ledger amounts.
type DatasetStats struct {
	Count       int             `json:"count"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	AvgAmount   decimal.Decimal `json:"avgAmount"`
}

// ComputeDatasetStats returns the count, total and mean amount of entries.
// The mean of an empty set is zero.
func ComputeDatasetStats(entries []LedgerEntry) DatasetStats {
	stats := DatasetStats{Count: len(entries), TotalAmount: decimal.Zero, AvgAmount: decimal.Zero}
	for _, e := range entries {
		stats.TotalAmount = stats.TotalAmount.Add(e.Amount)
	}
	if stats.Count > 0 {
		stats.AvgAmount = stats.TotalAmount.Div(decimal.NewFromInt(int64(stats.Count))).Round(2)
	}
	return stats
}
