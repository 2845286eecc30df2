package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// CounterRepositoryFacade allocates gap-free, monotonically increasing
// document numbers per (company, series, year). Both methods rely on a
// single atomic increment-or-insert statement executed by the store, never
// an application-level read-modify-write.
type CounterRepositoryFacade interface {
	// NextNumber allocates the next value on the shared pool connection.
	NextNumber(ctx context.Context, companyID, series string, year int) (int64, error)

	// NextNumberInTx allocates the next value inside an open transaction.
	// The counter row stays locked until the transaction ends, so a rollback
	// releases the number without a gap.
	NextNumberInTx(ctx context.Context, tx pgx.Tx, companyID, series string, year int) (int64, error)

	// PeekNumber reads the last allocated value without advancing or
	// locking the counter; an unused key reads as 0.
	PeekNumber(ctx context.Context, companyID, series string, year int) (int64, error)
}
