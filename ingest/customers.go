package ingest

import (
	"io"
	"strconv"
	"strings"

	"redflag/analysis"
)

// CustomersResult is the outcome of a customer spend upload.
type CustomersResult struct {
	Customers []analysis.CustomerData `json:"customers"`
	Skipped   int                     `json:"skippedRows"`
}

var customersFallback = columns{"name": 0, "month1": 1, "month2": 2, "month3": 3, "percentage_change": 4, "flagged": 5}

// ParseCustomersCSV reads per-customer spend for three consecutive months:
// name, month1, month2, month3 and optionally percentage_change and flagged.
func ParseCustomersCSV(r io.Reader) (CustomersResult, error) {
	records, err := readCSV(r)
	if err != nil {
		return CustomersResult{}, err
	}

	cols, start := detectHeader(records, func(c columns) bool {
		return c.has("name") && c.has("month1") && c.has("month2") && c.has("month3")
	}, customersFallback)

	result := CustomersResult{Customers: make([]analysis.CustomerData, 0, len(records)-start)}
	for _, row := range records[start:] {
		customer, ok := customerRow(cols, row)
		if !ok {
			result.Skipped++
			continue
		}
		result.Customers = append(result.Customers, customer)
	}
	return result, nil
}

func customerRow(cols columns, row []string) (analysis.CustomerData, bool) {
	c := analysis.CustomerData{Name: cols.get(row, "name")}
	if c.Name == "" {
		return c, false
	}

	for i, name := range []string{"month1", "month2", "month3"} {
		d, err := ParseAmount(cols.get(row, name))
		if err != nil || d.IsNegative() {
			return c, false
		}
		switch i {
		case 0:
			c.Month1Spend = d
		case 1:
			c.Month2Spend = d
		case 2:
			c.Month3Spend = d
		}
	}

	if raw := strings.TrimSuffix(cols.get(row, "percentage_change"), "%"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return c, false
		}
		c.PercentageChange = v
	}
	if raw := cols.get(row, "flagged"); raw != "" {
		v, err := strconv.ParseBool(strings.ToLower(raw))
		if err != nil {
			return c, false
		}
		c.Flagged = v
	}
	return c, true
}
