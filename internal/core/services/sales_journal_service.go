package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/contazen/erp-ledger/internal/apperrors"
	"github.com/contazen/erp-ledger/internal/core/domain"
	"github.com/contazen/erp-ledger/internal/core/journals"
	portssvc "github.com/contazen/erp-ledger/internal/core/ports/services"
	"github.com/contazen/erp-ledger/internal/dto"
	"github.com/contazen/erp-ledger/internal/middleware"
)

// salesJournalService books issued customer invoices and credit notes.
type salesJournalService struct {
	ledgerSvc portssvc.LedgerSvcFacade
	auditSvc  portssvc.AuditSvcFacade
}

// NewSalesJournalService creates a new SalesJournalService.
func NewSalesJournalService(ledgerSvc portssvc.LedgerSvcFacade, auditSvc portssvc.AuditSvcFacade) portssvc.SalesJournalSvcFacade {
	return &salesJournalService{ledgerSvc: ledgerSvc, auditSvc: auditSvc}
}

var _ portssvc.SalesJournalSvcFacade = (*salesJournalService)(nil)

// CreateSalesInvoiceEntry books an issued customer invoice in the sales
// journal: receivable for the gross, collected VAT, revenue for the net.
func (s *salesJournalService) CreateSalesInvoiceEntry(ctx context.Context, companyID string, req dto.CreateSalesInvoiceRequest, actorID string) (*domain.LedgerEntry, error) {
	return s.book(ctx, companyID, req, actorID, false)
}

// CreateCreditNoteEntry books a credit note as the exact mirror of the
// corresponding invoice lines.
func (s *salesJournalService) CreateCreditNoteEntry(ctx context.Context, companyID string, req dto.CreateSalesInvoiceRequest, actorID string) (*domain.LedgerEntry, error) {
	return s.book(ctx, companyID, req, actorID, true)
}

func (s *salesJournalService) book(ctx context.Context, companyID string, req dto.CreateSalesInvoiceRequest, actorID string, creditNote bool) (*domain.LedgerEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Amount.Sign() <= 0 || req.NetAmount.Sign() <= 0 || req.VATAmount.IsNegative() {
		return nil, fmt.Errorf("%w: invoice amounts must be positive", apperrors.ErrValidation)
	}
	if err := checkInvoiceTotals(req.Amount, req.NetAmount, req.VATAmount); err != nil {
		return nil, err
	}

	in := domain.SalesInvoiceInput{
		CompanyID:     companyID,
		CustomerRef:   req.CustomerRef,
		InvoiceNumber: req.InvoiceNumber,
		Amount:        req.Amount,
		NetAmount:     req.NetAmount,
		VATAmount:     req.VATAmount,
		CurrencyCode:  req.CurrencyCode,
		Description:   req.Description,
		InvoiceDate:   req.InvoiceDate,
		ActorID:       actorID,
	}

	lines := journals.SalesInvoiceLines(in)
	entity := "sales_invoice"
	if creditNote {
		lines = journals.CreditNoteLines(in)
		entity = "credit_note"
	}

	entry := domain.NewEntry{
		CompanyID:       companyID,
		EntryType:       domain.EntrySales,
		Amount:          req.Amount,
		Description:     req.Description,
		Lines:           lines,
		ReferenceNumber: req.InvoiceNumber,
		EntryDate:       req.InvoiceDate,
		ActorID:         actorID,
	}

	created, err := s.ledgerSvc.CreateEntry(ctx, entry, nil)
	if err != nil {
		return nil, err
	}

	s.auditSvc.Log(ctx, actorID, companyID, domain.AuditCreate, entity, req.InvoiceNumber,
		fmt.Sprintf("customer=%s amount=%s entry=%s", req.CustomerRef, req.Amount.String(), created.EntryID))

	logger.Info("Sales document booked",
		slog.String("invoice_number", req.InvoiceNumber),
		slog.String("entry_id", created.EntryID),
		slog.Bool("credit_note", creditNote))
	return created, nil
}
