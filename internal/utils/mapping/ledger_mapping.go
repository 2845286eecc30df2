package mapping

import (
	"github.com/contazen/erp-ledger/internal/core/domain"
	"github.com/contazen/erp-ledger/internal/models"
)

// ToModelLedgerEntry converts a domain LedgerEntry to a model LedgerEntry.
func ToModelLedgerEntry(d domain.LedgerEntry) models.LedgerEntry {
	return models.LedgerEntry{
		EntryID:         d.EntryID,
		CompanyID:       d.CompanyID,
		FranchiseID:     d.FranchiseID,
		EntryType:       string(d.EntryType),
		ReferenceNumber: d.ReferenceNumber,
		JournalNumber:   d.JournalNumber,
		EntryDate:       d.EntryDate,
		DocumentDate:    d.DocumentDate,
		Amount:          d.Amount,
		Description:     d.Description,
		ReversedEntryID: d.ReversedEntryID,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainLedgerEntry converts a model LedgerEntry to a domain LedgerEntry.
func ToDomainLedgerEntry(m models.LedgerEntry) domain.LedgerEntry {
	return domain.LedgerEntry{
		EntryID:         m.EntryID,
		CompanyID:       m.CompanyID,
		FranchiseID:     m.FranchiseID,
		EntryType:       domain.EntryType(m.EntryType),
		ReferenceNumber: m.ReferenceNumber,
		JournalNumber:   m.JournalNumber,
		EntryDate:       m.EntryDate,
		DocumentDate:    m.DocumentDate,
		Amount:          m.Amount,
		Description:     m.Description,
		ReversedEntryID: m.ReversedEntryID,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelLedgerLine converts a domain LedgerLine to a model LedgerLine.
func ToModelLedgerLine(d domain.LedgerLine) models.LedgerLine {
	return models.LedgerLine{
		LineID:      d.LineID,
		EntryID:     d.EntryID,
		AccountCode: d.AccountCode,
		Debit:       d.Debit,
		Credit:      d.Credit,
		Description: d.Description,
	}
}

// ToDomainLedgerLine converts a model LedgerLine to a domain LedgerLine.
func ToDomainLedgerLine(m models.LedgerLine) domain.LedgerLine {
	return domain.LedgerLine{
		LineID:      m.LineID,
		EntryID:     m.EntryID,
		AccountCode: m.AccountCode,
		Debit:       m.Debit,
		Credit:      m.Credit,
		Description: m.Description,
	}
}

// ToDomainLedgerLineSlice converts a slice of model lines to domain lines.
func ToDomainLedgerLineSlice(ms []models.LedgerLine) []domain.LedgerLine {
	ds := make([]domain.LedgerLine, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLedgerLine(m)
	}
	return ds
}
