package analysis

import "github.com/shopspring/decimal"

// ComputeAdjustedEBITDA adds personal expenses and other adjustments back to
// reported net income.
func ComputeAdjustedEBITDA(reportedNetIncome decimal.Decimal, expenses []PersonalExpense, otherAdjustments decimal.Decimal) EBITDABridge {
	addBack := decimal.Zero
	for _, e := range expenses {
		addBack = addBack.Add(e.Amount)
	}

	return EBITDABridge{
		ReportedNetIncome:      reportedNetIncome,
		PersonalExpenseAddBack: addBack,
		OtherAdjustments:       otherAdjustments,
		TrueAdjustedEBITDA:     reportedNetIncome.Add(addBack).Add(otherAdjustments),
	}
}

// NetIncome derives net income from a ledger as total revenue minus total
// expenses. Entries with a negative amount or unknown type are ignored.
func NetIncome(ledger []LedgerEntry) decimal.Decimal {
	net := decimal.Zero
	for _, e := range ledger {
		if e.Amount.IsNegative() {
			continue
		}
		switch e.Type {
		case EntryRevenue:
			net = net.Add(e.Amount)
		case EntryExpense:
			net = net.Sub(e.Amount)
		}
	}
	return net
}
