package repositories

import (
	"context"

	"github.com/contazen/erp-ledger/internal/core/domain"
)

// LedgerRepositoryFacade persists ledger entries. CreateEntry must write the
// entry header, all lines, the journal-number allocation and the optional
// carrier movement as one atomic unit: on any failure nothing is visible.
type LedgerRepositoryFacade interface {
	// CreateEntry allocates the entry's journal number from the document
	// counter inside the same database transaction, persists the entry with
	// its lines and, when posting is non-nil, applies the carrier balance
	// delta and records the carrier transaction. The returned entry is fully
	// hydrated (journal number, persisted lines, posting balances filled in).
	CreateEntry(ctx context.Context, entry domain.LedgerEntry, lines []domain.LedgerLine, posting *domain.CarrierPosting) (*domain.LedgerEntry, error)

	FindEntryByID(ctx context.Context, entryID string) (*domain.LedgerEntry, error)
	FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.LedgerLine, error)
	ListEntriesByCompany(ctx context.Context, companyID string, entryType *domain.EntryType, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error)
}
