package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/contazen/erp-ledger/internal/apperrors"
	"github.com/contazen/erp-ledger/internal/core/domain"
	"github.com/contazen/erp-ledger/internal/core/journals"
	portsrepo "github.com/contazen/erp-ledger/internal/core/ports/repositories"
	portssvc "github.com/contazen/erp-ledger/internal/core/ports/services"
	"github.com/contazen/erp-ledger/internal/dto"
	"github.com/contazen/erp-ledger/internal/middleware"
)

var (
	ErrCarrierInactive  = errors.New("balance carrier is inactive")
	ErrAmountZero       = errors.New("transaction amount must not be zero")
	ErrFeesNegative     = errors.New("fees must not be negative")
	ErrTransferSameLeg  = errors.New("transfer source and destination must differ")
	ErrCurrencyMismatch = errors.New("transfer legs must share a currency")
)

// bankJournalService turns bank statement events into balanced ledger
// entries via the rule table in the journals package, and records the
// carrier movement alongside the entry.
type bankJournalService struct {
	carrierRepo portsrepo.CarrierRepositoryFacade
	ledgerSvc   portssvc.LedgerSvcFacade
	auditSvc    portssvc.AuditSvcFacade
}

// NewBankJournalService creates a new BankJournalService.
func NewBankJournalService(carrierRepo portsrepo.CarrierRepositoryFacade, ledgerSvc portssvc.LedgerSvcFacade, auditSvc portssvc.AuditSvcFacade) portssvc.BankJournalSvcFacade {
	return &bankJournalService{
		carrierRepo: carrierRepo,
		ledgerSvc:   ledgerSvc,
		auditSvc:    auditSvc,
	}
}

var _ portssvc.BankJournalSvcFacade = (*bankJournalService)(nil)

// CreateBankAccount registers a bank account carrier. The ledger account
// code defaults to the standard bank account when omitted.
func (s *bankJournalService) CreateBankAccount(ctx context.Context, companyID string, req dto.CreateBankAccountRequest, actorID string) (*domain.BankAccount, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	accountCode := req.AccountCode
	if accountCode == "" {
		accountCode = journals.AccountBank
	}

	account := domain.BankAccount{
		BankAccountID:  uuid.NewString(),
		CompanyID:      companyID,
		Name:           req.Name,
		IBAN:           req.IBAN,
		CurrencyCode:   req.CurrencyCode,
		AccountCode:    accountCode,
		CurrentBalance: req.OpeningBalance,
		IsActive:       true,
		AuditFields: domain.AuditFields{
			CreatedAt: time.Now().UTC(),
			CreatedBy: actorID,
		},
	}

	if err := s.carrierRepo.SaveBankAccount(ctx, account); err != nil {
		logger.Error("Failed to create bank account", slog.String("error", err.Error()), slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to create bank account: %w", err)
	}

	s.auditSvc.Log(ctx, actorID, companyID, domain.AuditCreate, "bank_account", account.BankAccountID, "iban="+account.IBAN)
	logger.Info("Bank account created", slog.String("bank_account_id", account.BankAccountID))
	return &account, nil
}

// GetBankAccount retrieves one bank account carrier.
func (s *bankJournalService) GetBankAccount(ctx context.Context, companyID, bankAccountID string) (*domain.BankAccount, error) {
	return s.findBankAccount(ctx, companyID, bankAccountID)
}

// ListBankAccounts retrieves all bank account carriers of a company.
func (s *bankJournalService) ListBankAccounts(ctx context.Context, companyID string) ([]domain.BankAccount, error) {
	accounts, err := s.carrierRepo.ListBankAccountsByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve bank accounts: %w", err)
	}
	return accounts, nil
}

// RecordBankTransaction maps one bank event to its ledger lines and books
// them atomically with the carrier balance update. The recorded carrier
// movement is whatever the mapped lines actually move on the carrier's
// account, so the trail can never drift from the ledger.
func (s *bankJournalService) RecordBankTransaction(ctx context.Context, companyID, bankAccountID string, req dto.RecordBankTransactionRequest, actorID string) (*domain.BankTransaction, error) {
	account, err := s.findBankAccount(ctx, companyID, bankAccountID)
	if err != nil {
		return nil, err
	}

	if req.Amount.IsZero() {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, ErrAmountZero)
	}
	if req.Fees.IsNegative() {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, ErrFeesNegative)
	}

	in := domain.BankTransactionInput{
		CompanyID:       companyID,
		BankAccountID:   bankAccountID,
		BankAccountCode: account.AccountCode,
		TransactionType: req.TransactionType,
		Amount:          req.Amount,
		Fees:            req.Fees,
		CurrencyCode:    account.CurrencyCode,
		Description:     req.Description,
		CounterpartyRef: req.CounterpartyRef,
		CorrelationRef:  req.CorrelationRef,
		TransactionDate: req.TransactionDate,
		ActorID:         actorID,
	}

	return s.record(ctx, account, in)
}

// RecordTransfer books the two legs of an internal transfer, each against
// the transit account so the destination leg balances even when the legs are
// posted at different moments. The legs share a correlation reference.
func (s *bankJournalService) RecordTransfer(ctx context.Context, companyID string, req dto.RecordBankTransferRequest, actorID string) ([]domain.BankTransaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.FromBankAccountID == req.ToBankAccountID {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, ErrTransferSameLeg)
	}
	if req.Amount.Sign() <= 0 {
		return nil, fmt.Errorf("%w: transfer amount must be strictly positive", apperrors.ErrValidation)
	}

	source, err := s.findBankAccount(ctx, companyID, req.FromBankAccountID)
	if err != nil {
		return nil, err
	}
	destination, err := s.findBankAccount(ctx, companyID, req.ToBankAccountID)
	if err != nil {
		return nil, err
	}
	if source.CurrencyCode != destination.CurrencyCode {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, ErrCurrencyMismatch)
	}

	correlationRef := uuid.NewString()

	makeLeg := func(account *domain.BankAccount, amount decimal.Decimal, description string) domain.BankTransactionInput {
		return domain.BankTransactionInput{
			CompanyID:       companyID,
			BankAccountID:   account.BankAccountID,
			BankAccountCode: account.AccountCode,
			TransactionType: domain.BankTransfer,
			Amount:          amount,
			CurrencyCode:    account.CurrencyCode,
			Description:     description,
			CorrelationRef:  correlationRef,
			TransactionDate: req.TransactionDate,
			ActorID:         actorID,
		}
	}

	outLeg, err := s.record(ctx, source, makeLeg(source, req.Amount.Neg(), req.Description+" (outgoing leg)"))
	if err != nil {
		return nil, err
	}

	inLeg, err := s.record(ctx, destination, makeLeg(destination, req.Amount, req.Description+" (incoming leg)"))
	if err != nil {
		// The outgoing leg is already booked against transit. It is not
		// rolled back here; the caller reverses it explicitly if needed.
		logger.Error("Transfer incoming leg failed after outgoing leg was booked",
			slog.String("error", err.Error()),
			slog.String("correlation_ref", correlationRef),
			slog.String("outgoing_entry_id", outLeg.LedgerEntryID))
		return nil, fmt.Errorf("transfer incoming leg failed (outgoing leg %s booked): %w", outLeg.TransactionID, err)
	}

	return []domain.BankTransaction{*outLeg, *inLeg}, nil
}

// ListBankTransactions pages through a bank account's transaction trail.
func (s *bankJournalService) ListBankTransactions(ctx context.Context, companyID, bankAccountID string, params dto.ListTransactionsParams) (*dto.ListBankTransactionsResponse, error) {
	if _, err := s.findBankAccount(ctx, companyID, bankAccountID); err != nil {
		return nil, err
	}

	txns, nextToken, err := s.carrierRepo.ListBankTransactions(ctx, bankAccountID, params.Limit, params.NextToken)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve bank transactions: %w", err)
	}
	return &dto.ListBankTransactionsResponse{
		Transactions: dto.ToBankTransactionResponses(txns),
		NextToken:    nextToken,
	}, nil
}

// record maps the input to lines, derives the carrier movement from those
// lines, and posts everything through the ledger service in one unit.
func (s *bankJournalService) record(ctx context.Context, account *domain.BankAccount, in domain.BankTransactionInput) (*domain.BankTransaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !account.IsActive {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrConflict, ErrCarrierInactive)
	}

	lines := journals.BankLines(in)
	delta := journals.CarrierDelta(lines, account.AccountCode)

	now := time.Now().UTC()
	txnDate := now
	if in.TransactionDate != nil {
		txnDate = *in.TransactionDate
	}

	txn := domain.BankTransaction{
		TransactionID:   uuid.NewString(),
		BankAccountID:   account.BankAccountID,
		CompanyID:       in.CompanyID,
		TransactionType: in.TransactionType,
		Amount:          delta,
		Fees:            in.Fees,
		CurrencyCode:    in.CurrencyCode,
		Description:     in.Description,
		CorrelationRef:  in.CorrelationRef,
		TransactionDate: txnDate,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			CreatedBy: in.ActorID,
		},
	}

	entry := domain.NewEntry{
		CompanyID:       in.CompanyID,
		EntryType:       domain.EntryBank,
		Description:     in.Description,
		Lines:           lines,
		ReferenceNumber: in.CounterpartyRef,
		EntryDate:       &txnDate,
		ActorID:         in.ActorID,
	}

	// The repository fills LedgerEntryID, BalanceBefore and BalanceAfter on
	// the posting while committing the transaction.
	posting := &domain.CarrierPosting{Bank: &txn}
	created, err := s.ledgerSvc.CreateEntry(ctx, entry, posting)
	if err != nil {
		return nil, err
	}

	s.auditSvc.Log(ctx, in.ActorID, in.CompanyID, domain.AuditCreate, "bank_transaction", txn.TransactionID,
		fmt.Sprintf("type=%s amount=%s entry=%s", txn.TransactionType, txn.Amount.String(), created.EntryID))

	logger.Info("Bank transaction recorded",
		slog.String("bank_account_id", account.BankAccountID),
		slog.String("transaction_type", string(txn.TransactionType)),
		slog.String("entry_id", created.EntryID),
		slog.String("balance_after", txn.BalanceAfter.String()))
	return &txn, nil
}

func (s *bankJournalService) findBankAccount(ctx context.Context, companyID, bankAccountID string) (*domain.BankAccount, error) {
	account, err := s.carrierRepo.FindBankAccountByID(ctx, bankAccountID)
	if err != nil {
		return nil, err
	}
	if account.CompanyID != companyID {
		return nil, apperrors.ErrNotFound
	}
	return account, nil
}
