package main

import (
	"context"

	"redflag/db/generated"

	"github.com/jackc/pgx/v5/pgtype"
)

// Store is the persistence surface the handlers use. *generated.Queries
// satisfies it against Postgres.
type Store interface {
	EnsureProfile(ctx context.Context, arg generated.EnsureProfileParams) (generated.Profile, error)
	GetProfile(ctx context.Context, userID pgtype.UUID) (generated.Profile, error)
	ResetMonthlyScans(ctx context.Context) (int64, error)

	CreateScanWithCredit(ctx context.Context, arg generated.CreateScanWithCreditParams) (generated.Scan, error)
	GetScan(ctx context.Context, arg generated.GetScanParams) (generated.Scan, error)
	ListScans(ctx context.Context, userID pgtype.UUID) ([]generated.Scan, error)
	DeleteScan(ctx context.Context, arg generated.DeleteScanParams) (int64, error)
	GetScanSummary(ctx context.Context, userID pgtype.UUID) (generated.GetScanSummaryRow, error)

	UpdateScanLedger(ctx context.Context, arg generated.UpdateScanLedgerParams) (generated.Scan, error)
	UpdateScanBank(ctx context.Context, arg generated.UpdateScanBankParams) (generated.Scan, error)
	UpdateScanCustomers(ctx context.Context, arg generated.UpdateScanCustomersParams) (generated.Scan, error)
	UpdateScanRecords(ctx context.Context, arg generated.UpdateScanRecordsParams) (generated.Scan, error)

	StartScanProcessing(ctx context.Context, arg generated.StartScanProcessingParams) (generated.Scan, error)
	CompleteScan(ctx context.Context, arg generated.CompleteScanParams) (generated.Scan, error)
	FailScan(ctx context.Context, arg generated.FailScanParams) error
	FailStuckScans(ctx context.Context, processingStartedAt pgtype.Timestamptz) (int64, error)
}

var _ Store = (*generated.Queries)(nil)
