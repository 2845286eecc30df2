package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// The types below are the closed set of business events the journal mappers
// accept. They are validated at the service boundary before any mapping runs.

// BankTransactionInput describes one bank account event to be journaled.
type BankTransactionInput struct {
	CompanyID       string
	BankAccountID   string
	BankAccountCode string // Ledger account of the carrier, e.g. "5121"
	TransactionType BankTransactionType
	Amount          decimal.Decimal // Sign matters for INTEREST and FOREIGN_EXCHANGE
	Fees            decimal.Decimal
	CurrencyCode    string
	Description     string
	CounterpartyRef string
	CorrelationRef  string
	TransactionDate *time.Time
	ActorID         string
}

// CashSaleItem is one line of a fiscal receipt, carrying its own VAT split.
type CashSaleItem struct {
	Description string
	NetAmount   decimal.Decimal
	VATAmount   decimal.Decimal
}

// CashTransactionInput describes one cash register event to be journaled.
type CashTransactionInput struct {
	CompanyID        string
	CashRegisterID   string
	RegisterCode     string // Ledger account of the register, e.g. "5311"
	TransactionType  CashTransactionType
	Purpose          CashTransactionPurpose
	Amount           decimal.Decimal
	Fees             decimal.Decimal
	CurrencyCode     string
	Description      string
	ReceiptNumber    string
	CorrelationRef   string
	IsFiscal         bool
	VATAmount        decimal.Decimal // Used when Items are absent
	Items            []CashSaleItem  // Fiscal breakdown, when provided
	TransactionDate  *time.Time
	ActorID          string

	// BookBalance, when set, is the register balance the movement was
	// computed from; the posting fails if the balance moved since.
	BookBalance *decimal.Decimal
}

// PurchaseExpenseType selects the debit account of a purchase invoice.
type PurchaseExpenseType string

const (
	ExpenseGoods      PurchaseExpenseType = "GOODS"
	ExpenseMaterials  PurchaseExpenseType = "RAW_MATERIALS"
	ExpenseServices   PurchaseExpenseType = "SERVICES"
	ExpenseUtilities  PurchaseExpenseType = "UTILITIES"
	ExpenseRent       PurchaseExpenseType = "RENT"
	ExpenseFuel       PurchaseExpenseType = "FUEL"
	ExpenseFixedAsset PurchaseExpenseType = "FIXED_ASSET"
	ExpenseSupplies   PurchaseExpenseType = "OFFICE_SUPPLIES"
)

// PurchaseInvoiceInput describes a received supplier invoice.
type PurchaseInvoiceInput struct {
	CompanyID     string
	SupplierRef   string
	InvoiceNumber string
	Amount        decimal.Decimal // Gross
	NetAmount     decimal.Decimal
	VATAmount     decimal.Decimal
	VATDeductible bool
	CashVAT       bool // TVA la încasare: VAT deferred until payment
	ExpenseType   PurchaseExpenseType
	CurrencyCode  string
	Description   string
	InvoiceDate   *time.Time
	ActorID       string
}

// PurchasePaymentInput describes a (partial) payment of a cash-VAT purchase
// invoice, triggering the deferred-to-deductible VAT transfer.
type PurchasePaymentInput struct {
	CompanyID     string
	InvoiceNumber string
	InvoiceAmount decimal.Decimal // Gross amount of the original invoice
	InvoiceVAT    decimal.Decimal
	PaymentAmount decimal.Decimal
	CurrencyCode  string
	PaymentDate   *time.Time
	ActorID       string
}

// PaymentDescription renders the standard line description for the VAT
// transfer triggered by this payment.
func (p PurchasePaymentInput) PaymentDescription() string {
	return "Cash-VAT transfer for invoice " + p.InvoiceNumber
}

// SalesInvoiceInput describes an issued customer invoice or credit note.
type SalesInvoiceInput struct {
	CompanyID     string
	CustomerRef   string
	InvoiceNumber string
	Amount        decimal.Decimal // Gross
	NetAmount     decimal.Decimal
	VATAmount     decimal.Decimal
	CurrencyCode  string
	Description   string
	InvoiceDate   *time.Time
	ActorID       string
}
