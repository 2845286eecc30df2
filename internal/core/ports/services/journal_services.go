package services

import (
	"context"

	"github.com/contazen/erp-ledger/internal/core/domain"
	"github.com/contazen/erp-ledger/internal/dto"
)

// BankJournalSvcFacade records bank account events as balanced entries and
// keeps the carrier's running balance in step.
type BankJournalSvcFacade interface {
	CreateBankAccount(ctx context.Context, companyID string, req dto.CreateBankAccountRequest, actorID string) (*domain.BankAccount, error)
	GetBankAccount(ctx context.Context, companyID, bankAccountID string) (*domain.BankAccount, error)
	ListBankAccounts(ctx context.Context, companyID string) ([]domain.BankAccount, error)

	RecordBankTransaction(ctx context.Context, companyID, bankAccountID string, req dto.RecordBankTransactionRequest, actorID string) (*domain.BankTransaction, error)
	// RecordTransfer books the two legs of an internal transfer as
	// independent transactions sharing a correlation reference.
	RecordTransfer(ctx context.Context, companyID string, req dto.RecordBankTransferRequest, actorID string) ([]domain.BankTransaction, error)
	ListBankTransactions(ctx context.Context, companyID, bankAccountID string, params dto.ListTransactionsParams) (*dto.ListBankTransactionsResponse, error)
}

// CashJournalSvcFacade records cash register events.
type CashJournalSvcFacade interface {
	CreateCashRegister(ctx context.Context, companyID string, req dto.CreateCashRegisterRequest, actorID string) (*domain.CashRegister, error)
	GetCashRegister(ctx context.Context, companyID, cashRegisterID string) (*domain.CashRegister, error)
	ListCashRegisters(ctx context.Context, companyID string) ([]domain.CashRegister, error)

	RecordCashReceipt(ctx context.Context, companyID, cashRegisterID string, req dto.RecordCashTransactionRequest, actorID string) (*domain.CashTransaction, error)
	RecordCashPayment(ctx context.Context, companyID, cashRegisterID string, req dto.RecordCashTransactionRequest, actorID string) (*domain.CashTransaction, error)
	// RecordCashCount books the difference between the physical count and
	// the register balance as an overage or shortage adjustment.
	RecordCashCount(ctx context.Context, companyID, cashRegisterID string, req dto.RecordCashCountRequest, actorID string) (*domain.CashTransaction, error)
	ListCashTransactions(ctx context.Context, companyID, cashRegisterID string, params dto.ListTransactionsParams) (*dto.ListCashTransactionsResponse, error)
}

// PurchaseJournalSvcFacade records supplier invoices and cash-VAT transfers.
type PurchaseJournalSvcFacade interface {
	CreatePurchaseInvoiceEntry(ctx context.Context, companyID string, req dto.CreatePurchaseInvoiceRequest, actorID string) (*domain.LedgerEntry, error)
	RecordInvoicePayment(ctx context.Context, companyID string, req dto.RecordPurchasePaymentRequest, actorID string) (*domain.LedgerEntry, error)
}

// SalesJournalSvcFacade records customer invoices and credit notes.
type SalesJournalSvcFacade interface {
	CreateSalesInvoiceEntry(ctx context.Context, companyID string, req dto.CreateSalesInvoiceRequest, actorID string) (*domain.LedgerEntry, error)
	CreateCreditNoteEntry(ctx context.Context, companyID string, req dto.CreateSalesInvoiceRequest, actorID string) (*domain.LedgerEntry, error)
}

// AuditSvcFacade is the fire-and-forget downstream audit sink.
type AuditSvcFacade interface {
	// Log records the change; failures are swallowed after logging.
	Log(ctx context.Context, userID, companyID string, action domain.AuditAction, entity, entityID, details string)
}
