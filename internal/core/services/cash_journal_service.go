package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/contazen/erp-ledger/internal/apperrors"
	"github.com/contazen/erp-ledger/internal/core/domain"
	"github.com/contazen/erp-ledger/internal/core/journals"
	portsrepo "github.com/contazen/erp-ledger/internal/core/ports/repositories"
	portssvc "github.com/contazen/erp-ledger/internal/core/ports/services"
	"github.com/contazen/erp-ledger/internal/dto"
	"github.com/contazen/erp-ledger/internal/middleware"
)

// cashJournalService turns cash register events into balanced ledger entries
// and keeps the register's running balance in step with the entry.
type cashJournalService struct {
	carrierRepo portsrepo.CarrierRepositoryFacade
	ledgerSvc   portssvc.LedgerSvcFacade
	auditSvc    portssvc.AuditSvcFacade
}

// NewCashJournalService creates a new CashJournalService.
func NewCashJournalService(carrierRepo portsrepo.CarrierRepositoryFacade, ledgerSvc portssvc.LedgerSvcFacade, auditSvc portssvc.AuditSvcFacade) portssvc.CashJournalSvcFacade {
	return &cashJournalService{
		carrierRepo: carrierRepo,
		ledgerSvc:   ledgerSvc,
		auditSvc:    auditSvc,
	}
}

var _ portssvc.CashJournalSvcFacade = (*cashJournalService)(nil)

// CreateCashRegister registers a cash register carrier. The ledger account
// code defaults to the standard cash account when omitted.
func (s *cashJournalService) CreateCashRegister(ctx context.Context, companyID string, req dto.CreateCashRegisterRequest, actorID string) (*domain.CashRegister, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	accountCode := req.AccountCode
	if accountCode == "" {
		accountCode = journals.AccountCash
	}

	register := domain.CashRegister{
		CashRegisterID: uuid.NewString(),
		CompanyID:      companyID,
		Name:           req.Name,
		CurrencyCode:   req.CurrencyCode,
		AccountCode:    accountCode,
		CurrentBalance: req.OpeningBalance,
		IsActive:       true,
		AuditFields: domain.AuditFields{
			CreatedAt: time.Now().UTC(),
			CreatedBy: actorID,
		},
	}

	if err := s.carrierRepo.SaveCashRegister(ctx, register); err != nil {
		logger.Error("Failed to create cash register", slog.String("error", err.Error()), slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to create cash register: %w", err)
	}

	s.auditSvc.Log(ctx, actorID, companyID, domain.AuditCreate, "cash_register", register.CashRegisterID, "name="+register.Name)
	logger.Info("Cash register created", slog.String("cash_register_id", register.CashRegisterID))
	return &register, nil
}

// GetCashRegister retrieves one cash register carrier.
func (s *cashJournalService) GetCashRegister(ctx context.Context, companyID, cashRegisterID string) (*domain.CashRegister, error) {
	return s.findCashRegister(ctx, companyID, cashRegisterID)
}

// ListCashRegisters retrieves all cash register carriers of a company.
func (s *cashJournalService) ListCashRegisters(ctx context.Context, companyID string) ([]domain.CashRegister, error) {
	registers, err := s.carrierRepo.ListCashRegistersByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve cash registers: %w", err)
	}
	return registers, nil
}

// RecordCashReceipt books money coming into the register.
func (s *cashJournalService) RecordCashReceipt(ctx context.Context, companyID, cashRegisterID string, req dto.RecordCashTransactionRequest, actorID string) (*domain.CashTransaction, error) {
	return s.recordMovement(ctx, companyID, cashRegisterID, domain.CashReceipt, req, actorID)
}

// RecordCashPayment books money going out of the register.
func (s *cashJournalService) RecordCashPayment(ctx context.Context, companyID, cashRegisterID string, req dto.RecordCashTransactionRequest, actorID string) (*domain.CashTransaction, error) {
	return s.recordMovement(ctx, companyID, cashRegisterID, domain.CashPayment, req, actorID)
}

// RecordCashCount books the difference between a physical count and the
// register's book balance. A surplus posts as overage income, a deficit as
// shortage expense; a count matching the books is rejected as a no-op.
func (s *cashJournalService) RecordCashCount(ctx context.Context, companyID, cashRegisterID string, req dto.RecordCashCountRequest, actorID string) (*domain.CashTransaction, error) {
	register, err := s.findCashRegister(ctx, companyID, cashRegisterID)
	if err != nil {
		return nil, err
	}

	bookBalance := register.CurrentBalance
	difference := req.CountedBalance.Sub(bookBalance)
	if difference.IsZero() {
		return nil, fmt.Errorf("%w: counted balance matches the book balance, nothing to adjust", apperrors.ErrValidation)
	}

	in := domain.CashTransactionInput{
		CompanyID:       companyID,
		CashRegisterID:  cashRegisterID,
		RegisterCode:    register.AccountCode,
		TransactionType: domain.CashAdjustment,
		Amount:          difference,
		CurrencyCode:    register.CurrencyCode,
		Description:     req.Description,
		TransactionDate: req.TransactionDate,
		ActorID:         actorID,
		// The adjustment only reconciles the count if the balance it was
		// computed from is still the one on the row at commit time.
		BookBalance: &bookBalance,
	}
	return s.record(ctx, register, in)
}

// ListCashTransactions pages through a register's transaction trail.
func (s *cashJournalService) ListCashTransactions(ctx context.Context, companyID, cashRegisterID string, params dto.ListTransactionsParams) (*dto.ListCashTransactionsResponse, error) {
	if _, err := s.findCashRegister(ctx, companyID, cashRegisterID); err != nil {
		return nil, err
	}

	txns, nextToken, err := s.carrierRepo.ListCashTransactions(ctx, cashRegisterID, params.Limit, params.NextToken)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve cash transactions: %w", err)
	}
	return &dto.ListCashTransactionsResponse{
		Transactions: dto.ToCashTransactionResponses(txns),
		NextToken:    nextToken,
	}, nil
}

func (s *cashJournalService) recordMovement(ctx context.Context, companyID, cashRegisterID string, txnType domain.CashTransactionType, req dto.RecordCashTransactionRequest, actorID string) (*domain.CashTransaction, error) {
	register, err := s.findCashRegister(ctx, companyID, cashRegisterID)
	if err != nil {
		return nil, err
	}

	if req.Amount.Sign() <= 0 {
		return nil, fmt.Errorf("%w: cash amount must be strictly positive", apperrors.ErrValidation)
	}
	if req.Fees.IsNegative() {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, ErrFeesNegative)
	}

	items := make([]domain.CashSaleItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = domain.CashSaleItem{
			Description: item.Description,
			NetAmount:   item.NetAmount,
			VATAmount:   item.VATAmount,
		}
	}

	in := domain.CashTransactionInput{
		CompanyID:       companyID,
		CashRegisterID:  cashRegisterID,
		RegisterCode:    register.AccountCode,
		TransactionType: txnType,
		Purpose:         req.Purpose,
		Amount:          req.Amount,
		Fees:            req.Fees,
		CurrencyCode:    register.CurrencyCode,
		Description:     req.Description,
		ReceiptNumber:   req.ReceiptNumber,
		CorrelationRef:  req.CorrelationRef,
		IsFiscal:        req.IsFiscal,
		VATAmount:       req.VATAmount,
		Items:           items,
		TransactionDate: req.TransactionDate,
		ActorID:         actorID,
	}
	return s.record(ctx, register, in)
}

// record maps the input to lines, derives the register movement from those
// lines, and posts everything through the ledger service in one unit.
func (s *cashJournalService) record(ctx context.Context, register *domain.CashRegister, in domain.CashTransactionInput) (*domain.CashTransaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !register.IsActive {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrConflict, ErrCarrierInactive)
	}

	lines := journals.CashLines(in)
	delta := journals.CarrierDelta(lines, register.AccountCode)

	now := time.Now().UTC()
	txnDate := now
	if in.TransactionDate != nil {
		txnDate = *in.TransactionDate
	}

	txn := domain.CashTransaction{
		TransactionID:   uuid.NewString(),
		CashRegisterID:  register.CashRegisterID,
		CompanyID:       in.CompanyID,
		TransactionType: in.TransactionType,
		Purpose:         in.Purpose,
		Amount:          delta,
		CurrencyCode:    in.CurrencyCode,
		Description:     in.Description,
		ReceiptNumber:   in.ReceiptNumber,
		CorrelationRef:  in.CorrelationRef,
		TransactionDate: txnDate,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			CreatedBy: in.ActorID,
		},
	}

	entry := domain.NewEntry{
		CompanyID:       in.CompanyID,
		EntryType:       domain.EntryCash,
		Description:     in.Description,
		Lines:           lines,
		ReferenceNumber: in.ReceiptNumber,
		EntryDate:       &txnDate,
		ActorID:         in.ActorID,
	}

	// The repository fills LedgerEntryID, BalanceBefore and BalanceAfter on
	// the posting while committing the transaction.
	posting := &domain.CarrierPosting{Cash: &txn, ExpectedBalanceBefore: in.BookBalance}
	created, err := s.ledgerSvc.CreateEntry(ctx, entry, posting)
	if err != nil {
		return nil, err
	}

	s.auditSvc.Log(ctx, in.ActorID, in.CompanyID, domain.AuditCreate, "cash_transaction", txn.TransactionID,
		fmt.Sprintf("type=%s purpose=%s amount=%s entry=%s", txn.TransactionType, txn.Purpose, txn.Amount.String(), created.EntryID))

	logger.Info("Cash transaction recorded",
		slog.String("cash_register_id", register.CashRegisterID),
		slog.String("transaction_type", string(txn.TransactionType)),
		slog.String("entry_id", created.EntryID),
		slog.String("balance_after", txn.BalanceAfter.String()))
	return &txn, nil
}

func (s *cashJournalService) findCashRegister(ctx context.Context, companyID, cashRegisterID string) (*domain.CashRegister, error) {
	register, err := s.carrierRepo.FindCashRegisterByID(ctx, cashRegisterID)
	if err != nil {
		return nil, err
	}
	if register.CompanyID != companyID {
		return nil, apperrors.ErrNotFound
	}
	return register, nil
}
