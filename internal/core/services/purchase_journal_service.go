package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/contazen/erp-ledger/internal/apperrors"
	"github.com/contazen/erp-ledger/internal/core/domain"
	"github.com/contazen/erp-ledger/internal/core/journals"
	portssvc "github.com/contazen/erp-ledger/internal/core/ports/services"
	"github.com/contazen/erp-ledger/internal/dto"
	"github.com/contazen/erp-ledger/internal/middleware"
	"github.com/contazen/erp-ledger/internal/utils/accounting"
)

var (
	ErrInvoiceTotalsMismatch = errors.New("net plus VAT does not match the invoice gross amount")
	ErrPaymentExceedsInvoice = errors.New("payment amount exceeds the invoice amount")
)

// purchaseJournalService books supplier invoices and the deferred-VAT
// transfers triggered by their payment.
type purchaseJournalService struct {
	ledgerSvc portssvc.LedgerSvcFacade
	auditSvc  portssvc.AuditSvcFacade
}

// NewPurchaseJournalService creates a new PurchaseJournalService.
func NewPurchaseJournalService(ledgerSvc portssvc.LedgerSvcFacade, auditSvc portssvc.AuditSvcFacade) portssvc.PurchaseJournalSvcFacade {
	return &purchaseJournalService{ledgerSvc: ledgerSvc, auditSvc: auditSvc}
}

var _ portssvc.PurchaseJournalSvcFacade = (*purchaseJournalService)(nil)

// CreatePurchaseInvoiceEntry books a received supplier invoice in the
// purchase journal. Under cash-VAT the VAT lands on the deferred account and
// becomes deductible only as payments are recorded.
func (s *purchaseJournalService) CreatePurchaseInvoiceEntry(ctx context.Context, companyID string, req dto.CreatePurchaseInvoiceRequest, actorID string) (*domain.LedgerEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Amount.Sign() <= 0 || req.NetAmount.Sign() <= 0 || req.VATAmount.IsNegative() {
		return nil, fmt.Errorf("%w: invoice amounts must be positive", apperrors.ErrValidation)
	}
	if err := checkInvoiceTotals(req.Amount, req.NetAmount, req.VATAmount); err != nil {
		return nil, err
	}

	in := domain.PurchaseInvoiceInput{
		CompanyID:     companyID,
		SupplierRef:   req.SupplierRef,
		InvoiceNumber: req.InvoiceNumber,
		Amount:        req.Amount,
		NetAmount:     req.NetAmount,
		VATAmount:     req.VATAmount,
		VATDeductible: req.VATDeductible,
		CashVAT:       req.CashVAT,
		ExpenseType:   req.ExpenseType,
		CurrencyCode:  req.CurrencyCode,
		Description:   req.Description,
		InvoiceDate:   req.InvoiceDate,
		ActorID:       actorID,
	}

	entry := domain.NewEntry{
		CompanyID:       companyID,
		EntryType:       domain.EntryPurchase,
		Amount:          req.Amount,
		Description:     req.Description,
		Lines:           journals.PurchaseInvoiceLines(in),
		ReferenceNumber: req.InvoiceNumber,
		EntryDate:       req.InvoiceDate,
		ActorID:         actorID,
	}

	created, err := s.ledgerSvc.CreateEntry(ctx, entry, nil)
	if err != nil {
		return nil, err
	}

	s.auditSvc.Log(ctx, actorID, companyID, domain.AuditCreate, "purchase_invoice", req.InvoiceNumber,
		fmt.Sprintf("supplier=%s amount=%s cash_vat=%t entry=%s", req.SupplierRef, req.Amount.String(), req.CashVAT, created.EntryID))

	logger.Info("Purchase invoice booked",
		slog.String("invoice_number", req.InvoiceNumber),
		slog.String("entry_id", created.EntryID),
		slog.Bool("cash_vat", req.CashVAT))
	return created, nil
}

// RecordInvoicePayment books the cash-VAT transfer for a (partial) payment:
// the paid share of the invoice VAT moves from deferred to deductible,
// rounded to cents. The money movement itself is a separate bank or cash
// journal event.
func (s *purchaseJournalService) RecordInvoicePayment(ctx context.Context, companyID string, req dto.RecordPurchasePaymentRequest, actorID string) (*domain.LedgerEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.InvoiceAmount.Sign() <= 0 || req.InvoiceVAT.Sign() <= 0 || req.PaymentAmount.Sign() <= 0 {
		return nil, fmt.Errorf("%w: payment and invoice amounts must be strictly positive", apperrors.ErrValidation)
	}
	if req.PaymentAmount.GreaterThan(req.InvoiceAmount) {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, ErrPaymentExceedsInvoice)
	}

	in := domain.PurchasePaymentInput{
		CompanyID:     companyID,
		InvoiceNumber: req.InvoiceNumber,
		InvoiceAmount: req.InvoiceAmount,
		InvoiceVAT:    req.InvoiceVAT,
		PaymentAmount: req.PaymentAmount,
		CurrencyCode:  req.CurrencyCode,
		PaymentDate:   req.PaymentDate,
		ActorID:       actorID,
	}

	entry := domain.NewEntry{
		CompanyID:       companyID,
		EntryType:       domain.EntryAdjustment,
		Description:     in.PaymentDescription(),
		Lines:           journals.CashVATTransferLines(in),
		ReferenceNumber: req.InvoiceNumber,
		EntryDate:       req.PaymentDate,
		ActorID:         actorID,
	}

	created, err := s.ledgerSvc.CreateEntry(ctx, entry, nil)
	if err != nil {
		return nil, err
	}

	s.auditSvc.Log(ctx, actorID, companyID, domain.AuditCreate, "purchase_payment", req.InvoiceNumber,
		fmt.Sprintf("payment=%s of %s entry=%s", req.PaymentAmount.String(), req.InvoiceAmount.String(), created.EntryID))

	logger.Info("Cash-VAT transfer booked",
		slog.String("invoice_number", req.InvoiceNumber),
		slog.String("entry_id", created.EntryID))
	return created, nil
}

// checkInvoiceTotals verifies net + VAT equals gross within the balance
// tolerance.
func checkInvoiceTotals(gross, net, vat decimal.Decimal) error {
	if net.Add(vat).Sub(gross).Abs().GreaterThan(accounting.BalanceTolerance) {
		return fmt.Errorf("%w: %w", apperrors.ErrValidation, ErrInvoiceTotalsMismatch)
	}
	return nil
}
