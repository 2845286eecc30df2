package dto

import (
	"time"

	"github.com/contazen/erp-ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateCashRegisterRequest registers a cash register balance carrier.
type CreateCashRegisterRequest struct {
	Name           string          `json:"name" binding:"required"`
	CurrencyCode   string          `json:"currencyCode" binding:"required,len=3"`
	AccountCode    string          `json:"accountCode"` // Defaults to 5311
	OpeningBalance decimal.Decimal `json:"openingBalance"`
}

// CashSaleItemRequest is one fiscal receipt line with its VAT split.
type CashSaleItemRequest struct {
	Description string          `json:"description"`
	NetAmount   decimal.Decimal `json:"netAmount" binding:"required"`
	VATAmount   decimal.Decimal `json:"vatAmount"`
}

// RecordCashTransactionRequest journals one cash register receipt or payment.
type RecordCashTransactionRequest struct {
	Purpose         domain.CashTransactionPurpose `json:"purpose" binding:"required"`
	Amount          decimal.Decimal               `json:"amount" binding:"required"`
	Fees            decimal.Decimal               `json:"fees"`
	Description     string                        `json:"description" binding:"required"`
	ReceiptNumber   string                        `json:"receiptNumber"`
	CorrelationRef  string                        `json:"correlationRef"`
	IsFiscal        bool                          `json:"isFiscal"`
	VATAmount       decimal.Decimal               `json:"vatAmount"`
	Items           []CashSaleItemRequest         `json:"items,omitempty"`
	TransactionDate *time.Time                    `json:"transactionDate,omitempty"`
}

// RecordCashCountRequest books a count adjustment from a physical count.
// The adjustment amount is countedBalance minus the register's book balance.
type RecordCashCountRequest struct {
	CountedBalance  decimal.Decimal `json:"countedBalance" binding:"required"`
	Description     string          `json:"description" binding:"required"`
	TransactionDate *time.Time      `json:"transactionDate,omitempty"`
}

// CashRegisterResponse is the API shape of a cash register carrier.
type CashRegisterResponse struct {
	CashRegisterID string          `json:"cashRegisterID"`
	CompanyID      string          `json:"companyID"`
	Name           string          `json:"name"`
	CurrencyCode   string          `json:"currencyCode"`
	AccountCode    string          `json:"accountCode"`
	CurrentBalance decimal.Decimal `json:"currentBalance"`
	IsActive       bool            `json:"isActive"`
}

// CashTransactionResponse is the API shape of a recorded cash movement.
type CashTransactionResponse struct {
	TransactionID   string                        `json:"transactionID"`
	CashRegisterID  string                        `json:"cashRegisterID"`
	TransactionType domain.CashTransactionType    `json:"transactionType"`
	Purpose         domain.CashTransactionPurpose `json:"purpose"`
	Amount          decimal.Decimal               `json:"amount"`
	CurrencyCode    string                        `json:"currencyCode"`
	Description     string                        `json:"description"`
	ReceiptNumber   string                        `json:"receiptNumber,omitempty"`
	BalanceBefore   decimal.Decimal               `json:"balanceBefore"`
	BalanceAfter    decimal.Decimal               `json:"balanceAfter"`
	LedgerEntryID   string                        `json:"ledgerEntryID"`
	TransactionDate time.Time                     `json:"transactionDate"`
}

// ListCashTransactionsResponse is a page of cash transactions.
type ListCashTransactionsResponse struct {
	Transactions []CashTransactionResponse `json:"transactions"`
	NextToken    *string                   `json:"nextToken,omitempty"`
}

// ToCashRegisterResponse converts a domain carrier to its API shape.
func ToCashRegisterResponse(r *domain.CashRegister) CashRegisterResponse {
	return CashRegisterResponse{
		CashRegisterID: r.CashRegisterID,
		CompanyID:      r.CompanyID,
		Name:           r.Name,
		CurrencyCode:   r.CurrencyCode,
		AccountCode:    r.AccountCode,
		CurrentBalance: r.CurrentBalance,
		IsActive:       r.IsActive,
	}
}

// ToCashTransactionResponse converts a domain transaction to its API shape.
func ToCashTransactionResponse(t domain.CashTransaction) CashTransactionResponse {
	return CashTransactionResponse{
		TransactionID:   t.TransactionID,
		CashRegisterID:  t.CashRegisterID,
		TransactionType: t.TransactionType,
		Purpose:         t.Purpose,
		Amount:          t.Amount,
		CurrencyCode:    t.CurrencyCode,
		Description:     t.Description,
		ReceiptNumber:   t.ReceiptNumber,
		BalanceBefore:   t.BalanceBefore,
		BalanceAfter:    t.BalanceAfter,
		LedgerEntryID:   t.LedgerEntryID,
		TransactionDate: t.TransactionDate,
	}
}

// ToCashTransactionResponses converts a slice of domain transactions.
func ToCashTransactionResponses(txns []domain.CashTransaction) []CashTransactionResponse {
	out := make([]CashTransactionResponse, len(txns))
	for i, t := range txns {
		out[i] = ToCashTransactionResponse(t)
	}
	return out
}
