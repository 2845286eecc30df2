package domain

import "github.com/shopspring/decimal"

// CarrierKind distinguishes the two balance carriers.
type CarrierKind string

const (
	CarrierBank CarrierKind = "BANK_ACCOUNT"
	CarrierCash CarrierKind = "CASH_REGISTER"
)

// BankAccount is a balance carrier for a company bank account. CurrentBalance
// is mutated only through atomic increments tied to a recorded transaction.
type BankAccount struct {
	BankAccountID  string          `json:"bankAccountID"`
	CompanyID      string          `json:"companyID"`
	Name           string          `json:"name"`
	IBAN           string          `json:"iban"`
	CurrencyCode   string          `json:"currencyCode"`
	AccountCode    string          `json:"accountCode"` // Ledger account, default 5121
	CurrentBalance decimal.Decimal `json:"currentBalance"`
	IsActive       bool            `json:"isActive"`
	AuditFields
}

// CashRegister is a balance carrier for a physical cash register.
type CashRegister struct {
	CashRegisterID string          `json:"cashRegisterID"`
	CompanyID      string          `json:"companyID"`
	Name           string          `json:"name"`
	CurrencyCode   string          `json:"currencyCode"`
	AccountCode    string          `json:"accountCode"` // Ledger account, default 5311
	CurrentBalance decimal.Decimal `json:"currentBalance"`
	IsActive       bool            `json:"isActive"`
	AuditFields
}
