package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BankAccount is a persisted bank account balance carrier.
type BankAccount struct {
	BankAccountID  string          `db:"bank_account_id"`
	CompanyID      string          `db:"company_id"`
	Name           string          `db:"name"`
	IBAN           string          `db:"iban"`
	CurrencyCode   string          `db:"currency_code"`
	AccountCode    string          `db:"account_code"`
	CurrentBalance decimal.Decimal `db:"current_balance"`
	IsActive       bool            `db:"is_active"`
	AuditFields
}

// CashRegister is a persisted cash register balance carrier.
type CashRegister struct {
	CashRegisterID string          `db:"cash_register_id"`
	CompanyID      string          `db:"company_id"`
	Name           string          `db:"name"`
	CurrencyCode   string          `db:"currency_code"`
	AccountCode    string          `db:"account_code"`
	CurrentBalance decimal.Decimal `db:"current_balance"`
	IsActive       bool            `db:"is_active"`
	AuditFields
}

// BankTransaction is a persisted bank account movement with the running
// balance captured at recording time.
type BankTransaction struct {
	TransactionID   string          `db:"transaction_id"`
	BankAccountID   string          `db:"bank_account_id"`
	CompanyID       string          `db:"company_id"`
	TransactionType string          `db:"transaction_type"`
	Amount          decimal.Decimal `db:"amount"`
	Fees            decimal.Decimal `db:"fees"`
	CurrencyCode    string          `db:"currency_code"`
	Description     string          `db:"description"`
	CorrelationRef  *string         `db:"correlation_ref"` // Nullable, links transfer legs
	BalanceBefore   decimal.Decimal `db:"balance_before"`
	BalanceAfter    decimal.Decimal `db:"balance_after"`
	LedgerEntryID   string          `db:"ledger_entry_id"`
	TransactionDate time.Time       `db:"transaction_date"`
	AuditFields
}

// CashTransaction is a persisted cash register movement.
type CashTransaction struct {
	TransactionID   string          `db:"transaction_id"`
	CashRegisterID  string          `db:"cash_register_id"`
	CompanyID       string          `db:"company_id"`
	TransactionType string          `db:"transaction_type"`
	Purpose         string          `db:"purpose"`
	Amount          decimal.Decimal `db:"amount"`
	CurrencyCode    string          `db:"currency_code"`
	Description     string          `db:"description"`
	ReceiptNumber   *string         `db:"receipt_number"` // Nullable
	CorrelationRef  *string         `db:"correlation_ref"`
	BalanceBefore   decimal.Decimal `db:"balance_before"`
	BalanceAfter    decimal.Decimal `db:"balance_after"`
	LedgerEntryID   string          `db:"ledger_entry_id"`
	TransactionDate time.Time       `db:"transaction_date"`
	AuditFields
}
