package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntry is the persisted header of a balanced accounting record.
// Rows are append-only; there is no update or delete path.
type LedgerEntry struct {
	EntryID         string          `db:"entry_id"`
	CompanyID       string          `db:"company_id"`
	FranchiseID     *string         `db:"franchise_id"` // Nullable
	EntryType       string          `db:"entry_type"`
	ReferenceNumber string          `db:"reference_number"`
	JournalNumber   string          `db:"journal_number"`
	EntryDate       time.Time       `db:"entry_date"`
	DocumentDate    time.Time       `db:"document_date"`
	Amount          decimal.Decimal `db:"amount"`
	Description     string          `db:"description"`
	ReversedEntryID *string         `db:"reversed_entry_id"` // Nullable, set on REVERSAL entries
	AuditFields
}

// LedgerLine is one debit or credit leg of an entry.
type LedgerLine struct {
	LineID      string          `db:"line_id"`
	EntryID     string          `db:"entry_id"`
	AccountCode string          `db:"account_code"`
	Debit       decimal.Decimal `db:"debit"`
	Credit      decimal.Decimal `db:"credit"`
	Description string          `db:"description"`
}

// DocumentCounter is one gap-free numbering sequence, keyed by company,
// series and year. last_number is advanced with an atomic upsert inside the
// entry's transaction.
type DocumentCounter struct {
	CompanyID  string `db:"company_id"`
	Series     string `db:"series"`
	Year       int    `db:"year"`
	LastNumber int64  `db:"last_number"`
}
