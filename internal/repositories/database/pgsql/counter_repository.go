package pgsql

import (
	"context"
	"errors"

	"github.com/contazen/erp-ledger/internal/apperrors"
	portsrepo "github.com/contazen/erp-ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCounterRepository struct {
	BaseRepository
}

// newPgxCounterRepository creates a new repository for document counters.
func newPgxCounterRepository(pool *pgxpool.Pool) portsrepo.CounterRepositoryFacade {
	return &PgxCounterRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CounterRepositoryFacade = (*PgxCounterRepository)(nil)

// counterQuery advances the (company, series, year) sequence by one in a
// single statement. The upsert takes a row lock, so concurrent allocations
// for the same key serialize and each caller sees a distinct value; a new
// key starts at 1.
const counterQuery = `
	INSERT INTO document_counters (company_id, series, year, last_number)
	VALUES ($1, $2, $3, 1)
	ON CONFLICT (company_id, series, year)
	DO UPDATE SET last_number = document_counters.last_number + 1
	RETURNING last_number;
`

// NextNumber allocates the next value on the shared pool connection.
func (r *PgxCounterRepository) NextNumber(ctx context.Context, companyID, series string, year int) (int64, error) {
	var n int64
	if err := r.Pool.QueryRow(ctx, counterQuery, companyID, series, year).Scan(&n); err != nil {
		return 0, apperrors.NewAppError(500, "failed to allocate number for series "+series, err)
	}
	return n, nil
}

// NextNumberInTx allocates the next value inside an open transaction. The
// counter row stays locked until the transaction ends: a rollback releases
// the number together with the entry it was meant for, so the sequence
// never gaps.
func (r *PgxCounterRepository) NextNumberInTx(ctx context.Context, tx pgx.Tx, companyID, series string, year int) (int64, error) {
	var n int64
	if err := tx.QueryRow(ctx, counterQuery, companyID, series, year).Scan(&n); err != nil {
		return 0, apperrors.NewAppError(500, "failed to allocate number for series "+series, err)
	}
	return n, nil
}

// PeekNumber reads the last allocated value without advancing the counter.
// It takes no lock; the value is advisory and may be stale by the time the
// caller acts on it.
func (r *PgxCounterRepository) PeekNumber(ctx context.Context, companyID, series string, year int) (int64, error) {
	query := `
		SELECT last_number FROM document_counters
		WHERE company_id = $1 AND series = $2 AND year = $3;
	`
	var n int64
	err := r.Pool.QueryRow(ctx, query, companyID, series, year).Scan(&n)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, apperrors.NewAppError(500, "failed to read counter for series "+series, err)
	}
	return n, nil
}
