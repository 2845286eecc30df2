package mapping

import (
	"github.com/contazen/erp-ledger/internal/core/domain"
	"github.com/contazen/erp-ledger/internal/models"
)

// ToModelBankAccount converts a domain BankAccount to its model shape.
func ToModelBankAccount(d domain.BankAccount) models.BankAccount {
	return models.BankAccount{
		BankAccountID:  d.BankAccountID,
		CompanyID:      d.CompanyID,
		Name:           d.Name,
		IBAN:           d.IBAN,
		CurrencyCode:   d.CurrencyCode,
		AccountCode:    d.AccountCode,
		CurrentBalance: d.CurrentBalance,
		IsActive:       d.IsActive,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBankAccount converts a model BankAccount to its domain shape.
func ToDomainBankAccount(m models.BankAccount) domain.BankAccount {
	return domain.BankAccount{
		BankAccountID:  m.BankAccountID,
		CompanyID:      m.CompanyID,
		Name:           m.Name,
		IBAN:           m.IBAN,
		CurrencyCode:   m.CurrencyCode,
		AccountCode:    m.AccountCode,
		CurrentBalance: m.CurrentBalance,
		IsActive:       m.IsActive,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelCashRegister converts a domain CashRegister to its model shape.
func ToModelCashRegister(d domain.CashRegister) models.CashRegister {
	return models.CashRegister{
		CashRegisterID: d.CashRegisterID,
		CompanyID:      d.CompanyID,
		Name:           d.Name,
		CurrencyCode:   d.CurrencyCode,
		AccountCode:    d.AccountCode,
		CurrentBalance: d.CurrentBalance,
		IsActive:       d.IsActive,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCashRegister converts a model CashRegister to its domain shape.
func ToDomainCashRegister(m models.CashRegister) domain.CashRegister {
	return domain.CashRegister{
		CashRegisterID: m.CashRegisterID,
		CompanyID:      m.CompanyID,
		Name:           m.Name,
		CurrencyCode:   m.CurrencyCode,
		AccountCode:    m.AccountCode,
		CurrentBalance: m.CurrentBalance,
		IsActive:       m.IsActive,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelBankTransaction converts a domain BankTransaction to its model
// shape. Empty optional strings become NULLs.
func ToModelBankTransaction(d domain.BankTransaction) models.BankTransaction {
	return models.BankTransaction{
		TransactionID:   d.TransactionID,
		BankAccountID:   d.BankAccountID,
		CompanyID:       d.CompanyID,
		TransactionType: string(d.TransactionType),
		Amount:          d.Amount,
		Fees:            d.Fees,
		CurrencyCode:    d.CurrencyCode,
		Description:     d.Description,
		CorrelationRef:  nullableString(d.CorrelationRef),
		BalanceBefore:   d.BalanceBefore,
		BalanceAfter:    d.BalanceAfter,
		LedgerEntryID:   d.LedgerEntryID,
		TransactionDate: d.TransactionDate,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBankTransaction converts a model BankTransaction to its domain shape.
func ToDomainBankTransaction(m models.BankTransaction) domain.BankTransaction {
	return domain.BankTransaction{
		TransactionID:   m.TransactionID,
		BankAccountID:   m.BankAccountID,
		CompanyID:       m.CompanyID,
		TransactionType: domain.BankTransactionType(m.TransactionType),
		Amount:          m.Amount,
		Fees:            m.Fees,
		CurrencyCode:    m.CurrencyCode,
		Description:     m.Description,
		CorrelationRef:  stringValue(m.CorrelationRef),
		BalanceBefore:   m.BalanceBefore,
		BalanceAfter:    m.BalanceAfter,
		LedgerEntryID:   m.LedgerEntryID,
		TransactionDate: m.TransactionDate,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainBankTransactionSlice converts a slice of model bank transactions.
func ToDomainBankTransactionSlice(ms []models.BankTransaction) []domain.BankTransaction {
	ds := make([]domain.BankTransaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainBankTransaction(m)
	}
	return ds
}

// ToModelCashTransaction converts a domain CashTransaction to its model shape.
func ToModelCashTransaction(d domain.CashTransaction) models.CashTransaction {
	return models.CashTransaction{
		TransactionID:   d.TransactionID,
		CashRegisterID:  d.CashRegisterID,
		CompanyID:       d.CompanyID,
		TransactionType: string(d.TransactionType),
		Purpose:         string(d.Purpose),
		Amount:          d.Amount,
		CurrencyCode:    d.CurrencyCode,
		Description:     d.Description,
		ReceiptNumber:   nullableString(d.ReceiptNumber),
		CorrelationRef:  nullableString(d.CorrelationRef),
		BalanceBefore:   d.BalanceBefore,
		BalanceAfter:    d.BalanceAfter,
		LedgerEntryID:   d.LedgerEntryID,
		TransactionDate: d.TransactionDate,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCashTransaction converts a model CashTransaction to its domain shape.
func ToDomainCashTransaction(m models.CashTransaction) domain.CashTransaction {
	return domain.CashTransaction{
		TransactionID:   m.TransactionID,
		CashRegisterID:  m.CashRegisterID,
		CompanyID:       m.CompanyID,
		TransactionType: domain.CashTransactionType(m.TransactionType),
		Purpose:         domain.CashTransactionPurpose(m.Purpose),
		Amount:          m.Amount,
		CurrencyCode:    m.CurrencyCode,
		Description:     m.Description,
		ReceiptNumber:   stringValue(m.ReceiptNumber),
		CorrelationRef:  stringValue(m.CorrelationRef),
		BalanceBefore:   m.BalanceBefore,
		BalanceAfter:    m.BalanceAfter,
		LedgerEntryID:   m.LedgerEntryID,
		TransactionDate: m.TransactionDate,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCashTransactionSlice converts a slice of model cash transactions.
func ToDomainCashTransactionSlice(ms []models.CashTransaction) []domain.CashTransaction {
	ds := make([]domain.CashTransaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCashTransaction(m)
	}
	return ds
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
