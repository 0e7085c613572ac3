package main

import (
	"fmt"

	"redflag/analysis"
	"redflag/db/generated"

	"github.com/shopspring/decimal"
)

const (
	redactedVendor = "Hidden vendor"
	redactedReason = "Upgrade to view"
)

// shouldRedact reports whether viewers on plan see a redacted report.
func shouldRedact(plan generated.SubscriptionPlan) bool {
	return plan == generated.SubscriptionPlanFree
}

// redactReport returns a copy of r in which only the first personal expense
// and the first dragnet finding stay readable and customers are anonymised.
// r itself is never modified.
func redactReport(r *analysis.Report) *analysis.Report {
	out := *r

	out.PersonalExpenses = make([]analysis.PersonalExpense, len(r.PersonalExpenses))
	for i, e := range r.PersonalExpenses {
		if i > 0 {
			e.Vendor = redactedVendor
			e.Amount = decimal.Zero
			e.FlagReason = redactedReason
		}
		out.PersonalExpenses[i] = e
	}

	out.Findings = make([]analysis.DragnetFinding, len(r.Findings))
	for i, f := range r.Findings {
		if i > 0 {
			f.Description = redactedReason
			f.Amount = decimal.Zero
			f.Message = fmt.Sprintf("Row #%d: %s", f.Row, redactedReason)
		}
		f.Flags = append([]string(nil), f.Flags...)
		out.Findings[i] = f
	}

	out.CustomerChurn = redactChurn(r.CustomerChurn)
	return &out
}

// redactChurn replaces customer names with stable "Customer N" aliases,
// numbered in the order customers appear.
func redactChurn(c analysis.ChurnAnalysis) analysis.ChurnAnalysis {
	aliases := make(map[string]string, len(c.Customers))
	alias := func(name string) string {
		if a, ok := aliases[name]; ok {
			return a
		}
		a := fmt.Sprintf("Customer %d", len(aliases)+1)
		aliases[name] = a
		return a
	}

	out := c
	out.Customers = make([]analysis.CustomerData, len(c.Customers))
	for i, cust := range c.Customers {
		cust.Name = alias(cust.Name)
		out.Customers[i] = cust
	}
	out.ChurnDetails = make([]analysis.ChurnDetail, len(c.ChurnDetails))
	for i, d := range c.ChurnDetails {
		d.Name = alias(d.Name)
		out.ChurnDetails[i] = d
	}
	out.AtRiskCustomers = make([]string, len(c.AtRiskCustomers))
	for i, name := range c.AtRiskCustomers {
		out.AtRiskCustomers[i] = alias(name)
	}
	return out
}
