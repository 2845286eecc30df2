package dto

import (
	"time"

	"github.com/contazen/erp-ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateBankAccountRequest registers a bank account balance carrier.
type CreateBankAccountRequest struct {
	Name           string          `json:"name" binding:"required"`
	IBAN           string          `json:"iban" binding:"required"`
	CurrencyCode   string          `json:"currencyCode" binding:"required,len=3"`
	AccountCode    string          `json:"accountCode"` // Defaults to 5121
	OpeningBalance decimal.Decimal `json:"openingBalance"`
}

// RecordBankTransactionRequest journals one bank account event.
type RecordBankTransactionRequest struct {
	TransactionType domain.BankTransactionType `json:"transactionType" binding:"required"`
	Amount          decimal.Decimal            `json:"amount" binding:"required"`
	Fees            decimal.Decimal            `json:"fees"`
	Description     string                     `json:"description" binding:"required"`
	CounterpartyRef string                     `json:"counterpartyRef"`
	CorrelationRef  string                     `json:"correlationRef"`
	TransactionDate *time.Time                 `json:"transactionDate,omitempty"`
}

// RecordBankTransferRequest moves funds between two carriers of the same
// company. Each leg is journaled independently against the transit account.
type RecordBankTransferRequest struct {
	FromBankAccountID string          `json:"fromBankAccountID" binding:"required"`
	ToBankAccountID   string          `json:"toBankAccountID" binding:"required"`
	Amount            decimal.Decimal `json:"amount" binding:"required"`
	Description       string          `json:"description" binding:"required"`
	TransactionDate   *time.Time      `json:"transactionDate,omitempty"`
}

// BankAccountResponse is the API shape of a bank account carrier.
type BankAccountResponse struct {
	BankAccountID  string          `json:"bankAccountID"`
	CompanyID      string          `json:"companyID"`
	Name           string          `json:"name"`
	IBAN           string          `json:"iban"`
	CurrencyCode   string          `json:"currencyCode"`
	AccountCode    string          `json:"accountCode"`
	CurrentBalance decimal.Decimal `json:"currentBalance"`
	IsActive       bool            `json:"isActive"`
}

// BankTransactionResponse is the API shape of a recorded bank movement.
type BankTransactionResponse struct {
	TransactionID   string                     `json:"transactionID"`
	BankAccountID   string                     `json:"bankAccountID"`
	TransactionType domain.BankTransactionType `json:"transactionType"`
	Amount          decimal.Decimal            `json:"amount"`
	Fees            decimal.Decimal            `json:"fees"`
	CurrencyCode    string                     `json:"currencyCode"`
	Description     string                     `json:"description"`
	CorrelationRef  string                     `json:"correlationRef,omitempty"`
	BalanceBefore   decimal.Decimal            `json:"balanceBefore"`
	BalanceAfter    decimal.Decimal            `json:"balanceAfter"`
	LedgerEntryID   string                     `json:"ledgerEntryID"`
	TransactionDate time.Time                  `json:"transactionDate"`
}

// ListTransactionsParams pages through a carrier's transaction trail.
type ListTransactionsParams struct {
	Limit     int     `form:"limit"`
	NextToken *string `form:"nextToken"`
}

// ListBankTransactionsResponse is a page of bank transactions.
type ListBankTransactionsResponse struct {
	Transactions []BankTransactionResponse `json:"transactions"`
	NextToken    *string                   `json:"nextToken,omitempty"`
}

// ToBankAccountResponse converts a domain carrier to its API shape.
func ToBankAccountResponse(a *domain.BankAccount) BankAccountResponse {
	return BankAccountResponse{
		BankAccountID:  a.BankAccountID,
		CompanyID:      a.CompanyID,
		Name:           a.Name,
		IBAN:           a.IBAN,
		CurrencyCode:   a.CurrencyCode,
		AccountCode:    a.AccountCode,
		CurrentBalance: a.CurrentBalance,
		IsActive:       a.IsActive,
	}
}

// ToBankTransactionResponse converts a domain transaction to its API shape.
func ToBankTransactionResponse(t domain.BankTransaction) BankTransactionResponse {
	return BankTransactionResponse{
		TransactionID:   t.TransactionID,
		BankAccountID:   t.BankAccountID,
		TransactionType: t.TransactionType,
		Amount:          t.Amount,
		Fees:            t.Fees,
		CurrencyCode:    t.CurrencyCode,
		Description:     t.Description,
		CorrelationRef:  t.CorrelationRef,
		BalanceBefore:   t.BalanceBefore,
		BalanceAfter:    t.BalanceAfter,
		LedgerEntryID:   t.LedgerEntryID,
		TransactionDate: t.TransactionDate,
	}
}

// ToBankTransactionResponses converts a slice of domain transactions.
func ToBankTransactionResponses(txns []domain.BankTransaction) []BankTransactionResponse {
	out := make([]BankTransactionResponse, len(txns))
	for i, t := range txns {
		out[i] = ToBankTransactionResponse(t)
	}
	return out
}
