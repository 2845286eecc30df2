package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/contazen/erp-ledger/internal/apperrors"
	"github.com/contazen/erp-ledger/internal/core/domain"
	portsrepo "github.com/contazen/erp-ledger/internal/core/ports/repositories"
	portssvc "github.com/contazen/erp-ledger/internal/core/ports/services"
	"github.com/contazen/erp-ledger/internal/dto"
	"github.com/contazen/erp-ledger/internal/middleware"
	"github.com/contazen/erp-ledger/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

var (
	ErrEntryNoLines       = errors.New("ledger entry must have at least one line")
	ErrDescriptionMissing = errors.New("ledger entry description is required")
	ErrAmountNegative     = errors.New("ledger entry amount must not be negative")
	ErrEntryTypeInvalid   = errors.New("unknown ledger entry type")
)

// ledgerService is the double-entry engine. It exclusively owns the creation
// of ledger entries and lines; journal services decide which accounts and
// amounts appear but never persist directly.
type ledgerService struct {
	ledgerRepo portsrepo.LedgerRepositoryFacade
	periodSvc  portssvc.PeriodSvcFacade
	auditSvc   portssvc.AuditSvcFacade
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(ledgerRepo portsrepo.LedgerRepositoryFacade, periodSvc portssvc.PeriodSvcFacade, auditSvc portssvc.AuditSvcFacade) portssvc.LedgerSvcFacade {
	return &ledgerService{
		ledgerRepo: ledgerRepo,
		periodSvc:  periodSvc,
		auditSvc:   auditSvc,
	}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// CreateEntry validates, numbers and persists one balanced ledger entry.
//
// The order is deliberate: balance and field validation first, then the
// period guard, and only then persistence (which allocates the journal
// number inside its transaction) so a rejected entry never consumes a legal
// number. Aggregate balance updates and audit logging are best-effort and
// never fail the entry.
func (s *ledgerService) CreateEntry(ctx context.Context, in domain.NewEntry, posting *domain.CarrierPosting) (*domain.LedgerEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if in.CompanyID == "" {
		return nil, fmt.Errorf("%w: company ID is required", apperrors.ErrValidation)
	}
	if !domain.ValidEntryType(in.EntryType) {
		return nil, fmt.Errorf("%w: %q", ErrEntryTypeInvalid, in.EntryType)
	}
	if in.Description == "" {
		return nil, fmt.Errorf("%w", ErrDescriptionMissing)
	}
	if len(in.Lines) == 0 {
		return nil, fmt.Errorf("%w", ErrEntryNoLines)
	}
	if in.Amount.IsNegative() {
		return nil, fmt.Errorf("%w: %s", ErrAmountNegative, in.Amount.String())
	}

	for _, l := range in.Lines {
		if _, err := accounting.ParseAccountNumber(l.AccountCode); err != nil {
			return nil, err
		}
	}

	if err := accounting.ValidateBalancedLines(in.Lines); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	entryDate := now
	if in.EntryDate != nil {
		entryDate = *in.EntryDate
	}
	documentDate := entryDate
	if in.DocumentDate != nil {
		documentDate = *in.DocumentDate
	}

	// Period check happens before persistence so a closed period never burns
	// a journal number.
	if err := s.periodSvc.CanPost(ctx, in.CompanyID, entryDate); err != nil {
		return nil, err
	}

	amount := in.Amount
	if amount.IsZero() {
		amount = accounting.EntryAmount(in.Lines)
	}

	entryID := uuid.NewString()
	entry := domain.LedgerEntry{
		EntryID:         entryID,
		CompanyID:       in.CompanyID,
		FranchiseID:     in.FranchiseID,
		EntryType:       in.EntryType,
		ReferenceNumber: in.ReferenceNumber,
		EntryDate:       entryDate,
		DocumentDate:    documentDate,
		Amount:          amount,
		Description:     in.Description,
		ReversedEntryID: in.ReversedEntryID,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			CreatedBy: in.ActorID,
		},
	}

	lines := make([]domain.LedgerLine, len(in.Lines))
	for i, l := range in.Lines {
		lines[i] = domain.LedgerLine{
			LineID:      uuid.NewString(),
			EntryID:     entryID,
			AccountCode: l.AccountCode,
			Debit:       l.Debit,
			Credit:      l.Credit,
			Description: l.Description,
		}
	}

	created, err := s.ledgerRepo.CreateEntry(ctx, entry, lines, posting)
	if err != nil {
		logger.Error("Failed to persist ledger entry", slog.String("error", err.Error()), slog.String("company_id", in.CompanyID))
		return nil, fmt.Errorf("failed to persist ledger entry: %w", err)
	}

	s.auditSvc.Log(ctx, in.ActorID, in.CompanyID, domain.AuditCreate, "ledger_entry", created.EntryID,
		fmt.Sprintf("type=%s amount=%s reference=%s", created.EntryType, created.Amount.String(), created.ReferenceNumber))

	logger.Info("Ledger entry created",
		slog.String("entry_id", created.EntryID),
		slog.String("journal_number", created.JournalNumber),
		slog.String("entry_type", string(created.EntryType)))
	return created, nil
}

// ReverseEntry creates a REVERSAL entry whose lines are the original's with
// debit and credit swapped. The original entry is never mutated or deleted;
// history is append-only. The reversal goes through the same creation path,
// so balance, period and numbering checks all run again.
func (s *ledgerService) ReverseEntry(ctx context.Context, companyID, entryID, reason, actorID string) (*domain.LedgerEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	original, err := s.ledgerRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to fetch entry for reversal", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		}
		return nil, err
	}
	if original.CompanyID != companyID {
		// Obscure existence across companies.
		return nil, apperrors.ErrNotFound
	}

	originalLines, err := s.ledgerRepo.FindLinesByEntryID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if len(originalLines) == 0 {
		return nil, fmt.Errorf("%w: entry %s has no lines", apperrors.ErrNotFound, entryID)
	}

	reversal := domain.NewEntry{
		CompanyID:       companyID,
		FranchiseID:     original.FranchiseID,
		EntryType:       domain.EntryReversal,
		Amount:          original.Amount,
		Description:     fmt.Sprintf("Reversal of entry %s: %s", entryID, reason),
		Lines:           accounting.ReversalLines(originalLines),
		ReferenceNumber: "REV-" + original.ReferenceNumber,
		ReversedEntryID: &original.EntryID,
		ActorID:         original.CreatedBy,
	}

	created, err := s.CreateEntry(ctx, reversal, nil)
	if err != nil {
		return nil, err
	}

	s.auditSvc.Log(ctx, actorID, companyID, domain.AuditReverse, "ledger_entry", entryID,
		fmt.Sprintf("reversed_by=%s reason=%s", created.EntryID, reason))

	logger.Info("Ledger entry reversed", slog.String("entry_id", entryID), slog.String("reversal_id", created.EntryID))
	return created, nil
}

// RecordTransaction books the minimal two-line balanced entry.
func (s *ledgerService) RecordTransaction(ctx context.Context, companyID string, req dto.RecordTransactionRequest, actorID string) (*domain.LedgerEntry, error) {
	if req.Amount.Sign() <= 0 {
		return nil, fmt.Errorf("%w: transaction amount must be strictly positive", apperrors.ErrValidation)
	}

	return s.CreateEntry(ctx, domain.NewEntry{
		CompanyID:       companyID,
		EntryType:       domain.EntryGeneral,
		Amount:          req.Amount,
		Description:     req.Description,
		ReferenceNumber: req.ReferenceNumber,
		EntryDate:       req.EntryDate,
		Lines: []domain.NewLine{
			{AccountCode: req.DebitAccount, Debit: req.Amount, Credit: decimal.Zero, Description: req.Description},
			{AccountCode: req.CreditAccount, Debit: decimal.Zero, Credit: req.Amount, Description: req.Description},
		},
		ActorID: actorID,
	}, nil)
}

// GetEntry retrieves one entry with its lines.
func (s *ledgerService) GetEntry(ctx context.Context, companyID, entryID string) (*domain.LedgerEntry, error) {
	entry, err := s.ledgerRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if entry.CompanyID != companyID {
		return nil, apperrors.ErrNotFound
	}

	lines, err := s.ledgerRepo.FindLinesByEntryID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve lines for entry %s: %w", entryID, err)
	}
	entry.Lines = lines
	return entry, nil
}

// ListEntries retrieves a page of entries for a company.
func (s *ledgerService) ListEntries(ctx context.Context, companyID string, params dto.ListLedgerEntriesParams) (*dto.ListLedgerEntriesResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	entries, nextToken, err := s.ledgerRepo.ListEntriesByCompany(ctx, companyID, params.EntryType, params.Limit, params.NextToken)
	if err != nil {
		logger.Error("Failed to list ledger entries", slog.String("error", err.Error()), slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to retrieve ledger entries: %w", err)
	}

	responses := make([]dto.LedgerEntryResponse, len(entries))
	for i := range entries {
		responses[i] = dto.ToLedgerEntryResponse(&entries[i])
	}
	return &dto.ListLedgerEntriesResponse{Entries: responses, NextToken: nextToken}, nil
}
