package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"redflag/analysis"
	"redflag/db/generated"
	"redflag/ingest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ledgerCSV = `Date,Description,Category,Amount,Type
2024-12-01,Invoice 1001,Sales,100000,revenue
2024-12-05,Invoice 1002,Sales,75000,revenue
2024-12-14,Walt Disney World,Office Supplies,6000,expense
2024-12-15,Payroll,Wages,40000,expense
not-a-date,Broken row,Sales,10,revenue
`

const bankCSV = `Transaction Date,Posted Date,Card No.,Description,Category,Debit,Credit
2024-12-20,2024-12-20,1111,CUSTOMER DEPOSIT,Payment/Credit,,75000
2024-12-21,2024-12-21,1111,RENT,Rent,3000,
`

const customersCSV = `name,month1_spend,month2_spend,month3_spend
Big Box Retail Co,45000,42000,18000
Corner Shop,1000,1000,1000
`

const camtXML = `<?xml version="1.0" encoding="UTF-8"?>
<Document xmlns="urn:iso:std:iso:20022:tech:xsd:camt.053.001.02">
  <BkToCstmrStmt>
    <Stmt>
      <Ntry>
        <Amt Ccy="USD">75000.00</Amt>
        <CdtDbtInd>CRDT</CdtDbtInd>
        <BookgDt><Dt>2024-12-20</Dt></BookgDt>
        <AddtlNtryInf>Customer deposit</AddtlNtryInf>
      </Ntry>
    </Stmt>
  </BkToCstmrStmt>
</Document>`

// TestUploadLedger tests the POST /api/scans/:id/ledger endpoint
func TestUploadLedger(t *testing.T) {
	cleanupTestData()
	user := newTestUser(t)
	scanID := createTestScan(t, user, "Acme Co")

	t.Run("should upload valid CSV successfully", func(t *testing.T) {
		resp := makeMultipartRequest(user, "/api/scans/"+scanID+"/ledger", "file", "ledger.csv", []byte(ledgerCSV))
		assertStatusCode(t, http.StatusOK, resp.Code)

		var result UploadResult
		require.NoError(t, parseJSONResponse(resp, &result))
		assert.Equal(t, 4, result.Rows)
		assert.Equal(t, 1, result.SkippedRows)

		var stored []analysis.LedgerEntry
		require.NoError(t, json.Unmarshal(testStore.scan(mustUUID(t, scanID)).LedgerData, &stored))
		require.Len(t, stored, 4)
		assert.Equal(t, "Walt Disney World", stored[2].Description)
		assert.Equal(t, analysis.EntryExpense, stored[2].Type)
	})

	t.Run("should report the upload on the scan", func(t *testing.T) {
		resp := makeRequest(user, "GET", "/api/scans/"+scanID, nil)
		var scan Scan
		require.NoError(t, parseJSONResponse(resp, &scan))
		assert.True(t, scan.HasLedger)
		assert.False(t, scan.HasBank)
	})

	t.Run("should reject request without file", func(t *testing.T) {
		resp := makeMultipartRequest(user, "/api/scans/"+scanID+"/ledger", "wrong_field", "ledger.csv", []byte(ledgerCSV))
		assertStatusCode(t, http.StatusBadRequest, resp.Code)

		var response map[string]interface{}
		require.NoError(t, parseJSONResponse(resp, &response))
		assert.Equal(t, "No file uploaded", response["error"])
	})

	t.Run("should reject an empty file", func(t *testing.T) {
		resp := makeMultipartRequest(user, "/api/scans/"+scanID+"/ledger", "file", "ledger.csv", []byte{})
		assertStatusCode(t, http.StatusBadRequest, resp.Code)
	})

	t.Run("should reject an oversized file", func(t *testing.T) {
		big := bytes.Repeat([]byte("a"), ingest.MaxUploadBytes+1)
		resp := makeMultipartRequest(user, "/api/scans/"+scanID+"/ledger", "file", "ledger.csv", big)
		assertStatusCode(t, http.StatusRequestEntityTooLarge, resp.Code)
	})

	t.Run("should return 404 for another user's scan", func(t *testing.T) {
		resp := makeMultipartRequest(newTestUser(t), "/api/scans/"+scanID+"/ledger", "file", "ledger.csv", []byte(ledgerCSV))
		assertStatusCode(t, http.StatusNotFound, resp.Code)
	})

	t.Run("should return 409 while the scan is being analyzed", func(t *testing.T) {
		id := mustUUID(t, scanID)
		testStore.setScan(id, func(s *generated.Scan) { s.Status = generated.ScanStatusProcessing })
		defer testStore.setScan(id, func(s *generated.Scan) { s.Status = generated.ScanStatusPending })

		resp := makeMultipartRequest(user, "/api/scans/"+scanID+"/ledger", "file", "ledger.csv", []byte(ledgerCSV))
		assertStatusCode(t, http.StatusConflict, resp.Code)
	})
}

// TestUploadBank tests the POST /api/scans/:id/bank endpoint
func TestUploadBank(t *testing.T) {
	cleanupTestData()
	user := newTestUser(t)
	scanID := createTestScan(t, user, "Acme Co")

	t.Run("should parse a card export CSV", func(t *testing.T) {
		resp := makeMultipartRequest(user, "/api/scans/"+scanID+"/bank", "file", "statement.csv", []byte(bankCSV))
		assertStatusCode(t, http.StatusOK, resp.Code)

		var stored []analysis.BankTransaction
		require.NoError(t, json.Unmarshal(testStore.scan(mustUUID(t, scanID)).BankData, &stored))
		require.Len(t, stored, 2)
		assert.Equal(t, analysis.TransactionDeposit, stored[0].Type)
		assert.Equal(t, analysis.TransactionWithdrawal, stored[1].Type)
	})

	t.Run("should parse a camt.053 statement by extension", func(t *testing.T) {
		resp := makeMultipartRequest(user, "/api/scans/"+scanID+"/bank", "file", "statement.xml", []byte(camtXML))
		assertStatusCode(t, http.StatusOK, resp.Code)

		var stored []analysis.BankTransaction
		require.NoError(t, json.Unmarshal(testStore.scan(mustUUID(t, scanID)).BankData, &stored))
		require.Len(t, stored, 1)
		assert.Equal(t, "Customer deposit", stored[0].Description)
	})

	t.Run("should sniff XML content without an extension", func(t *testing.T) {
		resp := makeMultipartRequest(user, "/api/scans/"+scanID+"/bank", "file", "statement", []byte(camtXML))
		assertStatusCode(t, http.StatusOK, resp.Code)

		var result UploadResult
		require.NoError(t, parseJSONResponse(resp, &result))
		assert.Equal(t, 1, result.Rows)
	})

	t.Run("should reject XML that is not a statement", func(t *testing.T) {
		resp := makeMultipartRequest(user, "/api/scans/"+scanID+"/bank", "file", "statement.xml", []byte(`<Document><Other/></Document>`))
		assertStatusCode(t, http.StatusBadRequest, resp.Code)
	})
}

// TestUploadCustomers tests the POST /api/scans/:id/customers endpoint
func TestUploadCustomers(t *testing.T) {
	cleanupTestData()
	user := newTestUser(t)
	scanID := createTestScan(t, user, "Acme Co")

	resp := makeMultipartRequest(user, "/api/scans/"+scanID+"/customers", "file", "customers.csv", []byte(customersCSV))
	assertStatusCode(t, http.StatusOK, resp.Code)

	var result UploadResult
	require.NoError(t, parseJSONResponse(resp, &result))
	assert.Equal(t, 2, result.Rows)
	assert.Equal(t, 0, result.SkippedRows)
}

// TestPutRecords tests the PUT /api/scans/:id/records endpoint
func TestPutRecords(t *testing.T) {
	cleanupTestData()
	user := newTestUser(t)
	scanID := createTestScan(t, user, "Acme Co")

	t.Run("should store schema-valid records", func(t *testing.T) {
		body := `{
			"ledger": [{"date": "2024-12-01", "description": "Invoice", "category": "Sales", "amount": 500, "type": "revenue"}],
			"bank": []
		}`
		resp := makeRequest(user, "PUT", "/api/scans/"+scanID+"/records", strings.NewReader(body))
		assertStatusCode(t, http.StatusOK, resp.Code)

		var response map[string]interface{}
		require.NoError(t, parseJSONResponse(resp, &response))
		assert.Equal(t, float64(1), response["ledger"])
		assert.Equal(t, float64(0), response["bank"])

		stored := testStore.scan(mustUUID(t, scanID))
		assert.JSONEq(t, "[]", string(stored.BankData))
		assert.Nil(t, stored.CustomerData)
	})

	t.Run("should reject records that fail validation", func(t *testing.T) {
		body := `{"ledger": [{"date": "2024-12-01", "description": "Invoice", "category": "Sales", "amount": -5, "type": "revenue"}], "bank": []}`
		resp := makeRequest(user, "PUT", "/api/scans/"+scanID+"/records", strings.NewReader(body))
		assertStatusCode(t, http.StatusBadRequest, resp.Code)

		var response map[string]interface{}
		require.NoError(t, parseJSONResponse(resp, &response))
		assert.Contains(t, response["error"], "records failed validation")
	})

	t.Run("should reject a missing bank collection", func(t *testing.T) {
		resp := makeRequest(user, "PUT", "/api/scans/"+scanID+"/records", strings.NewReader(`{"ledger": []}`))
		assertStatusCode(t, http.StatusBadRequest, resp.Code)
	})
}
