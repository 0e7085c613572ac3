// Package ingest turns uploaded ledger, bank and customer files into
// analysis records. Parsers are lenient: rows that cannot be understood are
// counted as skipped instead of failing the whole upload.
package ingest

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// MaxUploadBytes is the largest file a parser accepts.
const MaxUploadBytes = 10 << 20

// ErrFileTooLarge is returned for inputs over MaxUploadBytes.
var ErrFileTooLarge = fmt.Errorf("file exceeds the %d MiB upload limit", MaxUploadBytes>>20)

// ErrEmptyFile is returned when an upload holds no rows at all.
var ErrEmptyFile = errors.New("file is empty")

// headerScanRows bounds how far down a file the header row may appear.
const headerScanRows = 10

// readLimited reads all of r, failing once more than MaxUploadBytes arrive.
func readLimited(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxUploadBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	if len(data) > MaxUploadBytes {
		return nil, ErrFileTooLarge
	}
	return data, nil
}

func readCSV(r io.Reader) ([][]string, error) {
	data, err := readLimited(r)
	if err != nil {
		return nil, err
	}
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("error reading CSV file: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrEmptyFile
	}
	return records, nil
}

// columnAliases maps normalised header cells to canonical column names.
var columnAliases = map[string]string{
	"date":              "date",
	"transaction date":  "date",
	"booking date":      "date",
	"posted date":       "posted_date",
	"description":       "description",
	"memo":              "description",
	"payee":             "description",
	"vendor":            "description",
	"name":              "name",
	"customer":          "name",
	"category":          "category",
	"account":           "category",
	"amount":            "amount",
	"debit":             "debit",
	"credit":            "credit",
	"type":              "type",
	"month1":            "month1",
	"month 1":           "month1",
	"month1 spend":      "month1",
	"month2":            "month2",
	"month 2":           "month2",
	"month2 spend":      "month2",
	"month3":            "month3",
	"month 3":           "month3",
	"month3 spend":      "month3",
	"percentage change": "percentage_change",
	"percent change":    "percentage_change",
	"flagged":           "flagged",
}

// columns maps canonical column names to their index in a row.
type columns map[string]int

func (c columns) has(name string) bool {
	_, ok := c[name]
	return ok
}

// get returns the trimmed cell for name, or "" when the column is absent or
// the row is short.
func (c columns) get(row []string, name string) string {
	i, ok := c[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func normalizeHeader(cell string) string {
	cell = strings.ToLower(strings.TrimSpace(cell))
	cell = strings.NewReplacer("_", " ", "-", " ", ".", "").Replace(cell)
	return strings.Join(strings.Fields(cell), " ")
}

func headerColumns(row []string) columns {
	cols := make(columns)
	for i, cell := range row {
		if name, ok := columnAliases[normalizeHeader(cell)]; ok {
			if _, dup := cols[name]; !dup {
				cols[name] = i
			}
		}
	}
	return cols
}

// detectHeader finds the first row, among the leading rows, that names every
// required column. It returns the column map and the index of the first data
// row. Without a header the fallback positions are used from row 0.
func detectHeader(records [][]string, required func(columns) bool, fallback columns) (columns, int) {
	for i := 0; i < len(records) && i < headerScanRows; i++ {
		cols := headerColumns(records[i])
		if required(cols) {
			return cols, i + 1
		}
	}
	return fallback, 0
}

// dateLayouts are the accepted input date formats with their output layout.
var dateLayouts = []struct {
	in, out string
}{
	{"2006-01-02", "2006-01-02"},
	{"2006-01", "2006-01"},
	{"01/02/2006", "2006-01-02"},
	{"1/2/2006", "2006-01-02"},
	{"2006/01/02", "2006-01-02"},
}

// NormalizeDate converts a supported date into YYYY-MM-DD or YYYY-MM.
func NormalizeDate(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) > len("2006-01-02") && s[4] == '-' {
		// 2024-12-01T10:00:00 and similar timestamps keep their date part.
		s = s[:len("2006-01-02")]
	}
	for _, l := range dateLayouts {
		if t, err := time.Parse(l.in, s); err == nil {
			return t.Format(l.out), true
		}
	}
	return "", false
}

// ParseAmount reads a money cell such as "1,250.00", "$-40" or "(300.50)".
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = s[1 : len(s)-1]
	}
	s = strings.NewReplacer("$", "", ",", "", " ", "").Replace(s)
	if s == "" {
		return decimal.Zero, errors.New("empty amount")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	if negative {
		d = d.Neg()
	}
	return d, nil
}
