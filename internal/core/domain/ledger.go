package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// EntryType identifies which journal a ledger entry belongs to.
type EntryType string

const (
	EntrySales      EntryType = "SALES"
	EntryPurchase   EntryType = "PURCHASE"
	EntryBank       EntryType = "BANK"
	EntryCash       EntryType = "CASH"
	EntryGeneral    EntryType = "GENERAL"
	EntryAdjustment EntryType = "ADJUSTMENT"
	EntryReversal   EntryType = "REVERSAL"
)

// journalSeries maps an entry type to the legal numbering series for its journal.
var journalSeries = map[EntryType]string{
	EntrySales:      "VAN",
	EntryPurchase:   "CUM",
	EntryBank:       "BNC",
	EntryCash:       "CAS",
	EntryGeneral:    "GEN",
	EntryAdjustment: "ADJ",
	EntryReversal:   "STO",
}

// SeriesForType returns the document numbering series for an entry type.
// Unknown types fall back to the general series.
func SeriesForType(t EntryType) string {
	if s, ok := journalSeries[t]; ok {
		return s
	}
	return journalSeries[EntryGeneral]
}

// FormatJournalNumber renders an allocated sequence value as a legal journal
// number, e.g. VAN/2025/000042.
func FormatJournalNumber(series string, year int, n int64) string {
	return fmt.Sprintf("%s/%d/%06d", series, year, n)
}

// ValidEntryType reports whether t is one of the known entry types.
func ValidEntryType(t EntryType) bool {
	_, ok := journalSeries[t]
	return ok
}

// LedgerEntry represents a single, balanced accounting record composed of
// two or more ledger lines. Entries are append-only: once persisted they are
// never mutated or deleted, only reversed by a new REVERSAL entry.
type LedgerEntry struct {
	EntryID         string          `json:"entryID"`
	CompanyID       string          `json:"companyID"`
	FranchiseID     *string         `json:"franchiseID,omitempty"` // Optional owning sub-unit
	EntryType       EntryType       `json:"entryType"`
	ReferenceNumber string          `json:"referenceNumber"` // Human reference (e.g. invoice number)
	JournalNumber   string          `json:"journalNumber"`   // SERIES/YEAR/NNNNNN, assigned once
	EntryDate       time.Time       `json:"entryDate"`       // Posting date
	DocumentDate    time.Time       `json:"documentDate"`    // Source document date
	Amount          decimal.Decimal `json:"amount"`          // Total economic value, always >= 0
	Description     string          `json:"description"`
	ReversedEntryID *string         `json:"reversedEntryID,omitempty"` // Set on REVERSAL entries
	Lines           []LedgerLine    `json:"lines,omitempty"`
	AuditFields
}

// LedgerLine is a single debit-or-credit movement against one account within
// an entry. Exactly one of Debit/Credit is normally non-zero; the per-entry
// balance invariant is what the engine enforces.
type LedgerLine struct {
	LineID      string          `json:"lineID"`
	EntryID     string          `json:"entryID"`
	AccountCode string          `json:"accountCode"` // Chart-of-accounts code, e.g. "401", "4427"
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Description string          `json:"description"`
}

// NewLine is a candidate ledger line produced by a journal mapper before the
// entry it belongs to exists.
type NewLine struct {
	AccountCode string
	Debit       decimal.Decimal
	Credit      decimal.Decimal
	Description string
}

// NewEntry carries everything needed to create a ledger entry. Optional
// fields default inside the ledger service.
type NewEntry struct {
	CompanyID       string
	FranchiseID     *string
	EntryType       EntryType
	Amount          decimal.Decimal
	Description     string
	Lines           []NewLine
	EntryDate       *time.Time // Defaults to now
	DocumentDate    *time.Time // Defaults to EntryDate
	ReferenceNumber string
	ReversedEntryID *string
	ActorID         string
}

// AccountParts is the classification of a chart-of-accounts code.
type AccountParts struct {
	Class     int    `json:"class"`     // First digit
	Group     int    `json:"group"`     // First two digits
	Synthetic string `json:"synthetic"` // Code without the analytic suffix
	Analytic  string `json:"analytic"`  // Suffix after the separator, if any
}
