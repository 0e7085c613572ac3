package analysis

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed records.schema.json
var recordsSchemaJSON string

const recordsSchemaURL = "https://redflag.local/schemas/records.schema.json"

var recordsSchema = mustCompileRecordsSchema()

func mustCompileRecordsSchema() *jsonschema.Schema {
	c := jsonschema.NewCompiler()
	c.Draft = jsonschema.Draft2020
	if err := c.AddResource(recordsSchemaURL, bytes.NewReader([]byte(recordsSchemaJSON))); err != nil {
		panic(fmt.Sprintf("analysis: records schema load failed: %v", err))
	}
	schema, err := c.Compile(recordsSchemaURL)
	if err != nil {
		panic(fmt.Sprintf("analysis: records schema compile failed: %v", err))
	}
	return schema
}

// Records is a validated set of scan inputs.
type Records struct {
	Ledger    []LedgerEntry     `json:"ledger"`
	Bank      []BankTransaction `json:"bank"`
	Customers []CustomerData    `json:"customers,omitempty"`
}

// DecodeRecords validates a JSON document of ledger, bank and customer records
// against the records schema and converts it into typed records. The error of
// a failed validation names the offending location.
func DecodeRecords(data []byte) (*Records, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc interface{}
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	if err := recordsSchema.Validate(doc); err != nil {
		return nil, fmt.Errorf("records failed validation: %w", err)
	}

	var records Records
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to decode records: %w", err)
	}
	if records.Ledger == nil {
		records.Ledger = []LedgerEntry{}
	}
	if records.Bank == nil {
		records.Bank = []BankTransaction{}
	}
	return &records, nil
}
