package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/contazen/erp-ledger/internal/apperrors"
	"github.com/contazen/erp-ledger/internal/core/domain"
	portsrepo "github.com/contazen/erp-ledger/internal/core/ports/repositories"
	"github.com/contazen/erp-ledger/internal/models"
	"github.com/contazen/erp-ledger/internal/utils/mapping"
	"github.com/contazen/erp-ledger/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxLedgerRepository struct {
	BaseRepository
	counterRepo portsrepo.CounterRepositoryFacade
	carrierRepo portsrepo.CarrierRepositoryFacade
}

// newPgxLedgerRepository creates a new repository for ledger entries and lines.
func newPgxLedgerRepository(pool *pgxpool.Pool, counterRepo portsrepo.CounterRepositoryFacade, carrierRepo portsrepo.CarrierRepositoryFacade) portsrepo.LedgerRepositoryFacade {
	return &PgxLedgerRepository{
		BaseRepository: BaseRepository{Pool: pool},
		counterRepo:    counterRepo,
		carrierRepo:    carrierRepo,
	}
}

var _ portsrepo.LedgerRepositoryFacade = (*PgxLedgerRepository)(nil)

// CreateEntry persists an entry, its lines, its journal-number allocation
// and the optional carrier movement within one DB transaction.
//
// The number is allocated first, inside the transaction, so the counter row
// stays locked until commit: a failure anywhere below rolls the allocation
// back and the legal sequence keeps no gap.
func (r *PgxLedgerRepository) CreateEntry(ctx context.Context, entry domain.LedgerEntry, lines []domain.LedgerLine, posting *domain.CarrierPosting) (*domain.LedgerEntry, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	// Ignored if the transaction commits successfully.
	defer r.Rollback(ctx, tx)

	// 1. Allocate the journal number for the entry's series and year.
	series := domain.SeriesForType(entry.EntryType)
	year := entry.EntryDate.Year()
	seq, err := r.counterRepo.NextNumberInTx(ctx, tx, entry.CompanyID, series, year)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to allocate journal number for entry "+entry.EntryID, err)
	}
	entry.JournalNumber = domain.FormatJournalNumber(series, year, seq)

	// 2. Insert the entry header.
	modelEntry := mapping.ToModelLedgerEntry(entry)
	entryQuery := `
		INSERT INTO ledger_entries (
			entry_id, company_id, franchise_id, entry_type, reference_number,
			journal_number, entry_date, document_date, amount, description,
			reversed_entry_id, created_at, created_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err = tx.Exec(ctx, entryQuery,
		modelEntry.EntryID,
		modelEntry.CompanyID,
		modelEntry.FranchiseID,
		modelEntry.EntryType,
		modelEntry.ReferenceNumber,
		modelEntry.JournalNumber,
		modelEntry.EntryDate,
		modelEntry.DocumentDate,
		modelEntry.Amount,
		modelEntry.Description,
		modelEntry.ReversedEntryID,
		modelEntry.CreatedAt,
		modelEntry.CreatedBy,
	)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to insert ledger entry "+modelEntry.EntryID, err)
	}

	// 3. Insert the lines as a batch.
	batch := &pgx.Batch{}
	lineQuery := `
		INSERT INTO ledger_lines (line_id, entry_id, account_code, debit, credit, description)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	for _, line := range lines {
		modelLine := mapping.ToModelLedgerLine(line)
		batch.Queue(lineQuery,
			modelLine.LineID,
			modelLine.EntryID,
			modelLine.AccountCode,
			modelLine.Debit,
			modelLine.Credit,
			modelLine.Description,
		)
	}
	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to insert lines for entry "+modelEntry.EntryID, err)
	}

	// 4. Apply the carrier movement, when the entry carries one. The atomic
	// increment returns the balance after, which hydrates the posting record
	// before it is inserted.
	if posting != nil {
		if err := r.applyPosting(ctx, tx, entry.EntryID, posting); err != nil {
			return nil, err
		}
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, apperrors.NewAppError(500, "failed to commit ledger entry "+modelEntry.EntryID, err)
	}

	entry.Lines = lines
	return &entry, nil
}

func (r *PgxLedgerRepository) applyPosting(ctx context.Context, tx pgx.Tx, entryID string, posting *domain.CarrierPosting) error {
	delta := posting.Delta()

	switch {
	case posting.Bank != nil:
		after, err := r.carrierRepo.AdjustBankBalanceInTx(ctx, tx, posting.Bank.BankAccountID, delta)
		if err != nil {
			return apperrors.NewAppError(500, "failed to adjust bank balance for account "+posting.Bank.BankAccountID, err)
		}
		posting.Bank.LedgerEntryID = entryID
		posting.Bank.BalanceAfter = after
		posting.Bank.BalanceBefore = after.Sub(delta)
		if err := r.carrierRepo.InsertBankTransactionInTx(ctx, tx, *posting.Bank); err != nil {
			return apperrors.NewAppError(500, "failed to insert bank transaction for entry "+entryID, err)
		}
	case posting.Cash != nil:
		after, err := r.carrierRepo.AdjustCashBalanceInTx(ctx, tx, posting.Cash.CashRegisterID, delta)
		if err != nil {
			return apperrors.NewAppError(500, "failed to adjust cash balance for register "+posting.Cash.CashRegisterID, err)
		}
		posting.Cash.LedgerEntryID = entryID
		posting.Cash.BalanceAfter = after
		posting.Cash.BalanceBefore = after.Sub(delta)
		if err := r.carrierRepo.InsertCashTransactionInTx(ctx, tx, *posting.Cash); err != nil {
			return apperrors.NewAppError(500, "failed to insert cash transaction for entry "+entryID, err)
		}
	}

	if expected := posting.ExpectedBalanceBefore; expected != nil {
		before := posting.BalanceBefore()
		if !before.Equal(*expected) {
			return fmt.Errorf("%w: carrier balance is %s, movement was computed against %s",
				apperrors.ErrConflict, before.String(), expected.String())
		}
	}
	return nil
}

// FindEntryByID retrieves an entry header by its ID.
func (r *PgxLedgerRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.LedgerEntry, error) {
	query := `
		SELECT entry_id, company_id, franchise_id, entry_type, reference_number,
		       journal_number, entry_date, document_date, amount, description,
		       reversed_entry_id, created_at, created_by
		FROM ledger_entries
		WHERE entry_id = $1;
	`
	var m models.LedgerEntry
	err := r.Pool.QueryRow(ctx, query, entryID).Scan(
		&m.EntryID,
		&m.CompanyID,
		&m.FranchiseID,
		&m.EntryType,
		&m.ReferenceNumber,
		&m.JournalNumber,
		&m.EntryDate,
		&m.DocumentDate,
		&m.Amount,
		&m.Description,
		&m.ReversedEntryID,
		&m.CreatedAt,
		&m.CreatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find ledger entry "+entryID, err)
	}

	entry := mapping.ToDomainLedgerEntry(m)
	return &entry, nil
}

// FindLinesByEntryID retrieves all lines of an entry in insertion order.
func (r *PgxLedgerRepository) FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.LedgerLine, error) {
	query := `
		SELECT line_id, entry_id, account_code, debit, credit, description
		FROM ledger_lines
		WHERE entry_id = $1
		ORDER BY line_id;
	`
	rows, err := r.Pool.Query(ctx, query, entryID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query lines for entry "+entryID, err)
	}
	defer rows.Close()

	lines := []models.LedgerLine{}
	for rows.Next() {
		var l models.LedgerLine
		if err := rows.Scan(&l.LineID, &l.EntryID, &l.AccountCode, &l.Debit, &l.Credit, &l.Description); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan line row for entry "+entryID, err)
		}
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating line rows for entry "+entryID, err)
	}

	return mapping.ToDomainLedgerLineSlice(lines), nil
}

// ListEntriesByCompany retrieves a paginated list of entries for a company
// using token-based pagination, optionally filtered by entry type. Ordering
// is entry_date DESC with created_at DESC as the tie-breaker.
func (r *PgxLedgerRepository) ListEntriesByCompany(ctx context.Context, companyID string, entryType *domain.EntryType, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// One extra row decides whether a next page exists.
	fetchLimit := limit + 1

	baseQuery := `
		SELECT entry_id, company_id, franchise_id, entry_type, reference_number,
		       journal_number, entry_date, document_date, amount, description,
		       reversed_entry_id, created_at, created_by
		FROM ledger_entries
		WHERE company_id = $1
	`
	args := []interface{}{companyID}

	if entryType != nil {
		baseQuery += ` AND entry_type = $` + strconv.Itoa(len(args)+1)
		args = append(args, string(*entryType))
	}

	if nextToken != nil && *nextToken != "" {
		lastEntryDate, lastCreatedAt, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		baseQuery += ` AND (entry_date, created_at) < ($` + strconv.Itoa(len(args)+1) + `, $` + strconv.Itoa(len(args)+2) + `)`
		args = append(args, lastEntryDate, lastCreatedAt)
	}

	query := baseQuery + ` ORDER BY entry_date DESC, created_at DESC LIMIT $` + strconv.Itoa(len(args)+1) + `;`
	args = append(args, fetchLimit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query ledger entries for company "+companyID, err)
	}
	defer rows.Close()

	entries := make([]models.LedgerEntry, 0, fetchLimit)
	for rows.Next() {
		var m models.LedgerEntry
		err := rows.Scan(
			&m.EntryID,
			&m.CompanyID,
			&m.FranchiseID,
			&m.EntryType,
			&m.ReferenceNumber,
			&m.JournalNumber,
			&m.EntryDate,
			&m.DocumentDate,
			&m.Amount,
			&m.Description,
			&m.ReversedEntryID,
			&m.CreatedAt,
			&m.CreatedBy,
		)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan ledger entry row for company "+companyID, err)
		}
		entries = append(entries, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating ledger entry rows for company "+companyID, err)
	}

	var nextTokenVal *string
	if len(entries) > limit {
		last := entries[limit-1]
		token := pagination.EncodeToken(last.EntryDate, last.CreatedAt)
		nextTokenVal = &token
		entries = entries[:limit]
	}

	result := make([]domain.LedgerEntry, len(entries))
	for i, m := range entries {
		result[i] = mapping.ToDomainLedgerEntry(m)
	}
	return result, nextTokenVal, nil
}
