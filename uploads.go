package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"redflag/analysis"
	"redflag/db/generated"
	"redflag/ingest"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/sirupsen/logrus"
)

// Upload handler functions

// @Summary Upload ledger
// @Description Upload the general ledger of a scan as CSV (date, description, category, amount, type)
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path string true "Scan ID"
// @Param file formData file true "Ledger CSV file"
// @Success 200 {object} UploadResult "Ledger stored"
// @Failure 400 {object} map[string]interface{} "Bad request (no file or unreadable CSV)"
// @Failure 404 {object} map[string]interface{} "Scan not found"
// @Failure 409 {object} map[string]interface{} "Scan is being analyzed"
// @Failure 413 {object} map[string]interface{} "File too large"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/scans/{id}/ledger [post]
func uploadLedger(c *gin.Context) {
	scanID, ok := scanIDParam(c)
	if !ok {
		return
	}
	file, _, ok := formFile(c)
	if !ok {
		return
	}
	defer file.Close()

	result, err := ingest.ParseLedgerCSV(file)
	if err != nil {
		writeIngestError(c, err)
		return
	}

	data, err := json.Marshal(result.Entries)
	if err != nil {
		logger.WithError(err).Error("Error encoding ledger")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error storing ledger"})
		return
	}

	_, err = queries.UpdateScanLedger(c.Request.Context(), generated.UpdateScanLedgerParams{
		ID:         scanID,
		UserID:     currentUser(c),
		LedgerData: data,
	})
	if err != nil {
		writeUpdateError(c, scanID, err)
		return
	}

	logUpload(scanID, "ledger", len(result.Entries), result.Skipped)
	c.JSON(http.StatusOK, UploadResult{
		Message:     "Ledger uploaded successfully",
		Rows:        len(result.Entries),
		SkippedRows: result.Skipped,
	})
}

// @Summary Upload bank statement
// @Description Upload the bank statement of a scan as CSV or ISO 20022 camt.053 XML
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path string true "Scan ID"
// @Param file formData file true "Bank statement (CSV or camt.053 XML)"
// @Success 200 {object} UploadResult "Bank statement stored"
// @Failure 400 {object} map[string]interface{} "Bad request (no file or unreadable statement)"
// @Failure 404 {object} map[string]interface{} "Scan not found"
// @Failure 409 {object} map[string]interface{} "Scan is being analyzed"
// @Failure 413 {object} map[string]interface{} "File too large"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/scans/{id}/bank [post]
func uploadBank(c *gin.Context) {
	scanID, ok := scanIDParam(c)
	if !ok {
		return
	}
	file, fileName, ok := formFile(c)
	if !ok {
		return
	}
	defer file.Close()

	br := bufio.NewReader(file)
	var result ingest.BankResult
	var err error
	if isXMLUpload(fileName, br) {
		result, err = ingest.ParseCAMT053(br)
	} else {
		result, err = ingest.ParseBankCSV(br)
	}
	if err != nil {
		writeIngestError(c, err)
		return
	}

	data, err := json.Marshal(result.Transactions)
	if err != nil {
		logger.WithError(err).Error("Error encoding bank statement")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error storing bank statement"})
		return
	}

	_, err = queries.UpdateScanBank(c.Request.Context(), generated.UpdateScanBankParams{
		ID:       scanID,
		UserID:   currentUser(c),
		BankData: data,
	})
	if err != nil {
		writeUpdateError(c, scanID, err)
		return
	}

	logUpload(scanID, "bank", len(result.Transactions), result.Skipped)
	c.JSON(http.StatusOK, UploadResult{
		Message:     "Bank statement uploaded successfully",
		Rows:        len(result.Transactions),
		SkippedRows: result.Skipped,
	})
}

// @Summary Upload customer spend
// @Description Upload three months of per-customer spend as CSV (name, month1, month2, month3)
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path string true "Scan ID"
// @Param file formData file true "Customer CSV file"
// @Success 200 {object} UploadResult "Customer data stored"
// @Failure 400 {object} map[string]interface{} "Bad request (no file or unreadable CSV)"
// @Failure 404 {object} map[string]interface{} "Scan not found"
// @Failure 409 {object} map[string]interface{} "Scan is being analyzed"
// @Failure 413 {object} map[string]interface{} "File too large"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/scans/{id}/customers [post]
func uploadCustomers(c *gin.Context) {
	scanID, ok := scanIDParam(c)
	if !ok {
		return
	}
	file, _, ok := formFile(c)
	if !ok {
		return
	}
	defer file.Close()

	result, err := ingest.ParseCustomersCSV(file)
	if err != nil {
		writeIngestError(c, err)
		return
	}

	data, err := json.Marshal(result.Customers)
	if err != nil {
		logger.WithError(err).Error("Error encoding customer data")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error storing customer data"})
		return
	}

	_, err = queries.UpdateScanCustomers(c.Request.Context(), generated.UpdateScanCustomersParams{
		ID:           scanID,
		UserID:       currentUser(c),
		CustomerData: data,
	})
	if err != nil {
		writeUpdateError(c, scanID, err)
		return
	}

	logUpload(scanID, "customers", len(result.Customers), result.Skipped)
	c.JSON(http.StatusOK, UploadResult{
		Message:     "Customer data uploaded successfully",
		Rows:        len(result.Customers),
		SkippedRows: result.Skipped,
	})
}

// @Summary Replace scan records
// @Description Replace the ledger, bank and customer records of a scan with a JSON document validated against the records schema
// @Tags uploads
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Scan ID"
// @Param records body analysis.Records true "Ledger, bank and optional customer records"
// @Success 200 {object} map[string]interface{} "Records stored"
// @Failure 400 {object} map[string]interface{} "Records failed validation"
// @Failure 404 {object} map[string]interface{} "Scan not found"
// @Failure 409 {object} map[string]interface{} "Scan is being analyzed"
// @Failure 413 {object} map[string]interface{} "Body too large"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /api/scans/{id}/records [put]
func putRecords(c *gin.Context) {
	scanID, ok := scanIDParam(c)
	if !ok {
		return
	}

	body, err := io.ReadAll(io.LimitReader(c.Request.Body, ingest.MaxUploadBytes+1))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Error reading request body"})
		return
	}
	if len(body) > ingest.MaxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": ingest.ErrFileTooLarge.Error()})
		return
	}

	records, err := analysis.DecodeRecords(body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	params := generated.UpdateScanRecordsParams{ID: scanID, UserID: currentUser(c)}
	if params.LedgerData, err = json.Marshal(records.Ledger); err == nil {
		params.BankData, err = json.Marshal(records.Bank)
	}
	if err == nil && records.Customers != nil {
		params.CustomerData, err = json.Marshal(records.Customers)
	}
	if err != nil {
		logger.WithError(err).Error("Error encoding records")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error storing records"})
		return
	}

	if _, err := queries.UpdateScanRecords(c.Request.Context(), params); err != nil {
		writeUpdateError(c, scanID, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Records stored successfully",
		"ledger":    len(records.Ledger),
		"bank":      len(records.Bank),
		"customers": len(records.Customers),
	})
}

// formFile opens the "file" field of a multipart upload.
func formFile(c *gin.Context) (multipart.File, string, bool) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return nil, "", false
	}
	return file, header.Filename, true
}

// isXMLUpload treats .xml files and content starting with '<' as camt.053.
func isXMLUpload(fileName string, br *bufio.Reader) bool {
	if strings.EqualFold(filepath.Ext(fileName), ".xml") {
		return true
	}
	head, _ := br.Peek(512)
	trimmed := strings.TrimLeft(strings.TrimPrefix(string(head), "\ufeff"), " \t\r\n")
	return strings.HasPrefix(trimmed, "<")
}

func writeIngestError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ingest.ErrFileTooLarge):
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	}
}

// writeUpdateError maps a failed record update. The update matches no row
// both for unknown scans and for scans under analysis.
func writeUpdateError(c *gin.Context, scanID pgtype.UUID, err error) {
	if !errors.Is(err, pgx.ErrNoRows) {
		logger.WithError(err).Error("Error storing records")
		statusCode, message := handleDatabaseError(err)
		c.JSON(statusCode, gin.H{"error": message})
		return
	}

	_, getErr := queries.GetScan(c.Request.Context(), generated.GetScanParams{ID: scanID, UserID: currentUser(c)})
	if getErr == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Scan is being analyzed"})
		return
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "Scan not found"})
}

func logUpload(scanID pgtype.UUID, kind string, rows, skipped int) {
	logger.WithFields(logrus.Fields{
		"scan_id": uuidString(scanID),
		"kind":    kind,
		"rows":    rows,
		"skipped": skipped,
	}).Info("Records uploaded")
}
