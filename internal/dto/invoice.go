package dto

import (
	"time"

	"github.com/contazen/erp-ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePurchaseInvoiceRequest journals a received supplier invoice.
type CreatePurchaseInvoiceRequest struct {
	SupplierRef   string                     `json:"supplierRef" binding:"required"`
	InvoiceNumber string                     `json:"invoiceNumber" binding:"required"`
	Amount        decimal.Decimal            `json:"amount" binding:"required"`
	NetAmount     decimal.Decimal            `json:"netAmount" binding:"required"`
	VATAmount     decimal.Decimal            `json:"vatAmount"`
	VATDeductible bool                       `json:"vatDeductible"`
	CashVAT       bool                       `json:"cashVAT"`
	ExpenseType   domain.PurchaseExpenseType `json:"expenseType" binding:"required"`
	CurrencyCode  string                     `json:"currencyCode" binding:"required,len=3"`
	Description   string                     `json:"description" binding:"required"`
	InvoiceDate   *time.Time                 `json:"invoiceDate,omitempty"`
}

// RecordPurchasePaymentRequest triggers the cash-VAT deferral transfer for
// a (partial) payment of a cash-VAT invoice.
type RecordPurchasePaymentRequest struct {
	InvoiceNumber string          `json:"invoiceNumber" binding:"required"`
	InvoiceAmount decimal.Decimal `json:"invoiceAmount" binding:"required"`
	InvoiceVAT    decimal.Decimal `json:"invoiceVAT" binding:"required"`
	PaymentAmount decimal.Decimal `json:"paymentAmount" binding:"required"`
	CurrencyCode  string          `json:"currencyCode" binding:"required,len=3"`
	PaymentDate   *time.Time      `json:"paymentDate,omitempty"`
}

// CreateSalesInvoiceRequest journals an issued customer invoice. The same
// shape is used for credit notes, where Amount is the returned portion.
type CreateSalesInvoiceRequest struct {
	CustomerRef   string          `json:"customerRef" binding:"required"`
	InvoiceNumber string          `json:"invoiceNumber" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	NetAmount     decimal.Decimal `json:"netAmount" binding:"required"`
	VATAmount     decimal.Decimal `json:"vatAmount"`
	CurrencyCode  string          `json:"currencyCode" binding:"required,len=3"`
	Description   string          `json:"description" binding:"required"`
	InvoiceDate   *time.Time      `json:"invoiceDate,omitempty"`
}
