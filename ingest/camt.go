package ingest

import (
	"fmt"
	"io"
	"strings"

	"github.com/beevik/etree"

	"redflag/analysis"
)

// ParseCAMT053 reads an ISO 20022 camt.053 bank-to-customer statement. Every
// Ntry becomes one transaction: CRDT entries are deposits and DBIT entries
// withdrawals. Reversed entries and entries without a usable booking date or
// amount are skipped.
func ParseCAMT053(r io.Reader) (BankResult, error) {
	data, err := readLimited(r)
	if err != nil {
		return BankResult{}, err
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return BankResult{}, fmt.Errorf("failed to parse XML: %w", err)
	}

	if doc.FindElement("//BkToCstmrStmt") == nil {
		return BankResult{}, fmt.Errorf("not a camt.053 statement: BkToCstmrStmt element not found")
	}

	entries := doc.FindElements("//Stmt/Ntry")
	result := BankResult{Transactions: make([]analysis.BankTransaction, 0, len(entries))}
	for _, ntry := range entries {
		tx, ok := camtEntry(ntry)
		if !ok {
			result.Skipped++
			continue
		}
		result.Transactions = append(result.Transactions, tx)
	}
	return result, nil
}

func camtEntry(ntry *etree.Element) (analysis.BankTransaction, bool) {
	if strings.EqualFold(elementText(ntry, "./RvslInd"), "true") {
		return analysis.BankTransaction{}, false
	}

	amount, err := ParseAmount(elementText(ntry, "./Amt"))
	if err != nil || amount.IsNegative() {
		return analysis.BankTransaction{}, false
	}

	var txType analysis.TransactionType
	switch elementText(ntry, "./CdtDbtInd") {
	case "CRDT":
		txType = analysis.TransactionDeposit
	case "DBIT":
		txType = analysis.TransactionWithdrawal
	default:
		return analysis.BankTransaction{}, false
	}

	rawDate := elementText(ntry, "./BookgDt/Dt")
	if rawDate == "" {
		rawDate = elementText(ntry, "./BookgDt/DtTm")
	}
	if rawDate == "" {
		rawDate = elementText(ntry, "./ValDt/Dt")
	}
	date, ok := NormalizeDate(rawDate)
	if !ok {
		return analysis.BankTransaction{}, false
	}

	return analysis.BankTransaction{
		Date:        date,
		Description: camtDescription(ntry),
		Amount:      amount,
		Type:        txType,
	}, true
}

// camtDescription prefers unstructured remittance info, then the additional
// entry info, then the counterparty name.
func camtDescription(ntry *etree.Element) string {
	var parts []string
	for _, e := range ntry.FindElements(".//RmtInf/Ustrd") {
		if t := strings.TrimSpace(e.Text()); t != "" {
			parts = append(parts, t)
		}
	}
	if len(parts) > 0 {
		return strings.Join(parts, " ")
	}
	if info := elementText(ntry, "./AddtlNtryInf"); info != "" {
		return info
	}
	if name := elementText(ntry, ".//RltdPties/Dbtr/Nm"); name != "" {
		return name
	}
	return elementText(ntry, ".//RltdPties/Cdtr/Nm")
}

func elementText(parent *etree.Element, path string) string {
	e := parent.FindElement(path)
	if e == nil {
		return ""
	}
	return strings.TrimSpace(e.Text())
}
