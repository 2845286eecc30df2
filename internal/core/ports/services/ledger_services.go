package services

import (
	"context"
	"time"

	"github.com/contazen/erp-ledger/internal/core/domain"
	"github.com/contazen/erp-ledger/internal/dto"
)

// LedgerSvcFacade is the engine behind every journal: it owns ledger entry
// creation, reversal and retrieval, and enforces the debit=credit invariant.
type LedgerSvcFacade interface {
	// CreateEntry validates, numbers and persists one balanced entry,
	// optionally together with a carrier posting, as a single atomic unit.
	CreateEntry(ctx context.Context, in domain.NewEntry, posting *domain.CarrierPosting) (*domain.LedgerEntry, error)

	// ReverseEntry creates a REVERSAL entry mirroring the original's lines.
	// The original entry is never mutated; both coexist permanently.
	ReverseEntry(ctx context.Context, companyID, entryID, reason, actorID string) (*domain.LedgerEntry, error)

	// RecordTransaction books the minimal two-line entry debiting one
	// account and crediting another; amount must be strictly positive.
	RecordTransaction(ctx context.Context, companyID string, req dto.RecordTransactionRequest, actorID string) (*domain.LedgerEntry, error)

	GetEntry(ctx context.Context, companyID, entryID string) (*domain.LedgerEntry, error)
	ListEntries(ctx context.Context, companyID string, params dto.ListLedgerEntriesParams) (*dto.ListLedgerEntriesResponse, error)
}

// NumberingSvcFacade allocates gap-free legal document numbers.
type NumberingSvcFacade interface {
	// GenerateNumber returns the next SERIES/YEAR/NNNNNN number for the key.
	// On allocation failure it returns apperrors.ErrNumbering; it never
	// fabricates a fallback number.
	GenerateNumber(ctx context.Context, companyID, series string, year int) (string, error)

	// PreviewNextNumber formats the number the next allocation would
	// receive without consuming it; the answer is advisory only.
	PreviewNextNumber(ctx context.Context, companyID, series string, year int) (string, error)
}

// PeriodSvcFacade decides whether a date is postable and manages period
// lifecycle transitions.
type PeriodSvcFacade interface {
	// CanPost returns nil when posting into the period containing date is
	// allowed, or an error wrapping apperrors.ErrPeriodClosed with a reason.
	CanPost(ctx context.Context, companyID string, date time.Time) error

	CreatePeriod(ctx context.Context, companyID string, req dto.CreatePeriodRequest, actorID string) (*domain.AccountingPeriod, error)
	ListPeriods(ctx context.Context, companyID string) ([]domain.AccountingPeriod, error)
	ClosePeriod(ctx context.Context, companyID, periodID, actorID string) error
	LockPeriod(ctx context.Context, companyID, periodID, actorID string) error
	ReopenPeriod(ctx context.Context, companyID, periodID, actorID string) error
}
