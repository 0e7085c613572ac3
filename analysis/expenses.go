package analysis

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// reasonSeparator joins the fragments of PersonalExpense.FlagReason.
const reasonSeparator = " | "

// expenseNamespace scopes the name-based UUIDs used as PersonalExpense ids.
var expenseNamespace = uuid.NewSHA1(uuid.NameSpaceOID, []byte("redflag.personal-expense"))

// expenseSignals records which heuristics fired for one entry.
type expenseSignals struct {
	keywords         []string
	mismatchKeywords []string
	luxuryVendor     string
	weekend          bool
}

func (s expenseSignals) triggered() bool {
	return len(s.keywords) > 0 || len(s.mismatchKeywords) > 0 || s.luxuryVendor != "" || s.weekend
}

// ExpenseID returns the deterministic id of an expense entry: a name-based
// UUID over its date, description and amount.
func ExpenseID(date, description string, amount decimal.Decimal) string {
	name := date + "|" + description + "|" + amount.String()
	return uuid.NewSHA1(expenseNamespace, []byte(name)).String()
}

// DetectPersonalExpenses scans expense entries for likely personal spending,
// ordered by severity then amount, both descending. A nil tables value uses
// DefaultTables.
func DetectPersonalExpenses(ledger []LedgerEntry, tables *Tables) []PersonalExpense {
	if tables == nil {
		tables = DefaultTables()
	}

	flagged := make([]PersonalExpense, 0)
	seen := make(map[string]bool)

	for _, e := range ledger {
		if e.Type != EntryExpense || !e.Amount.IsPositive() {
			continue
		}

		signals := detectSignals(e, tables)
		if !signals.triggered() {
			continue
		}

		id := ExpenseID(e.Date, e.Description, e.Amount)
		if seen[id] {
			continue
		}
		seen[id] = true

		flagged = append(flagged, PersonalExpense{
			ID:         id,
			Date:       e.Date,
			Vendor:     e.Description,
			Amount:     e.Amount,
			Category:   e.Category,
			FlagReason: signals.reason(e.Category, tables.Severity.WeekendMinAmount),
			Severity:   scoreSeverity(e.Amount, signals, tables.Severity),
		})
	}

	sort.SliceStable(flagged, func(i, j int) bool {
		ri, rj := flagged[i].Severity.rank(), flagged[j].Severity.rank()
		if ri != rj {
			return ri > rj
		}
		return flagged[i].Amount.GreaterThan(flagged[j].Amount)
	})

	return flagged
}

func detectSignals(e LedgerEntry, tables *Tables) expenseSignals {
	var s expenseSignals
	s.keywords = tables.matchKeywords(tables.personal, e.Description)
	s.mismatchKeywords = tables.categoryMismatch(e.Category, e.Description)
	s.luxuryVendor, _ = tables.luxuryVendor(e.Description)
	weekendMin := decimal.NewFromFloat(tables.Severity.WeekendMinAmount)
	s.weekend = isWeekend(e.Date) && e.Amount.GreaterThan(weekendMin)
	return s
}

func (s expenseSignals) reason(category string, weekendMin float64) string {
	var parts []string
	if len(s.keywords) > 0 {
		parts = append(parts, fmt.Sprintf("Keyword: %s", quoteAll(s.keywords)))
	}
	if len(s.mismatchKeywords) > 0 {
		parts = append(parts, fmt.Sprintf("Category mismatch: %s booked as %q", quoteAll(s.mismatchKeywords), category))
	}
	if s.luxuryVendor != "" {
		parts = append(parts, fmt.Sprintf("Luxury vendor: %s", s.luxuryVendor))
	}
	if s.weekend {
		parts = append(parts, fmt.Sprintf("Weekend transaction over $%.0f", weekendMin))
	}
	return strings.Join(parts, reasonSeparator)
}

func quoteAll(words []string) string {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = fmt.Sprintf("%q", w)
	}
	return strings.Join(quoted, ", ")
}

// severityScore is the weighted sum behind scoreSeverity.
func severityScore(amount decimal.Decimal, s expenseSignals, w SeverityWeights) float64 {
	score := 0.0
	for _, tier := range w.AmountTiers {
		if amount.GreaterThan(decimal.NewFromFloat(tier.Above)) {
			score += tier.Points
			break
		}
	}

	kw := float64(len(s.keywords)) * w.KeywordPoints
	if kw > w.KeywordCap {
		kw = w.KeywordCap
	}
	score += kw

	if len(s.mismatchKeywords) > 0 {
		score += w.CategoryMismatchPoints
	}
	if s.luxuryVendor != "" {
		score += w.LuxuryVendorPoints
	}
	if s.weekend {
		score += w.WeekendPoints
	}
	return score
}

// scoreSeverity grades an expense from its amount and the heuristics that
// fired for it.
func scoreSeverity(amount decimal.Decimal, s expenseSignals, w SeverityWeights) Severity {
	score := severityScore(amount, s, w)
	switch {
	case score >= w.HighThreshold:
		return SeverityHigh
	case score >= w.MediumThreshold:
		return SeverityMedium
	default:
		return SeverityLow
	}
}
