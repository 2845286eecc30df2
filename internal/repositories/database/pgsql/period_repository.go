package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/contazen/erp-ledger/internal/apperrors"
	"github.com/contazen/erp-ledger/internal/core/domain"
	portsrepo "github.com/contazen/erp-ledger/internal/core/ports/repositories"
	"github.com/contazen/erp-ledger/internal/models"
	"github.com/contazen/erp-ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxPeriodRepository struct {
	BaseRepository
}

// newPgxPeriodRepository creates a new repository for accounting periods.
func newPgxPeriodRepository(pool *pgxpool.Pool) portsrepo.PeriodRepositoryFacade {
	return &PgxPeriodRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PeriodRepositoryFacade = (*PgxPeriodRepository)(nil)

// SavePeriod inserts an accounting period.
func (r *PgxPeriodRepository) SavePeriod(ctx context.Context, period domain.AccountingPeriod) error {
	m := mapping.ToModelPeriod(period)
	query := `
		INSERT INTO accounting_periods (
			period_id, company_id, start_date, end_date, status, created_at, created_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.PeriodID, m.CompanyID, m.StartDate, m.EndDate, m.Status, m.CreatedAt, m.CreatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert accounting period "+m.PeriodID, err)
	}
	return nil
}

// FindPeriodByID retrieves a period by its ID.
func (r *PgxPeriodRepository) FindPeriodByID(ctx context.Context, periodID string) (*domain.AccountingPeriod, error) {
	query := `
		SELECT period_id, company_id, start_date, end_date, status, created_at, created_by
		FROM accounting_periods
		WHERE period_id = $1;
	`
	var m models.AccountingPeriod
	err := r.Pool.QueryRow(ctx, query, periodID).Scan(
		&m.PeriodID, &m.CompanyID, &m.StartDate, &m.EndDate, &m.Status, &m.CreatedAt, &m.CreatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find accounting period "+periodID, err)
	}
	period := mapping.ToDomainPeriod(m)
	return &period, nil
}

// FindPeriodForDate returns the period containing the date, or
// apperrors.ErrNotFound when no period covers it.
func (r *PgxPeriodRepository) FindPeriodForDate(ctx context.Context, companyID string, date time.Time) (*domain.AccountingPeriod, error) {
	query := `
		SELECT period_id, company_id, start_date, end_date, status, created_at, created_by
		FROM accounting_periods
		WHERE company_id = $1 AND start_date <= $2 AND end_date >= $2
		ORDER BY start_date DESC
		LIMIT 1;
	`
	var m models.AccountingPeriod
	err := r.Pool.QueryRow(ctx, query, companyID, date).Scan(
		&m.PeriodID, &m.CompanyID, &m.StartDate, &m.EndDate, &m.Status, &m.CreatedAt, &m.CreatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find accounting period for company "+companyID, err)
	}
	period := mapping.ToDomainPeriod(m)
	return &period, nil
}

// ListPeriodsByCompany retrieves all periods of a company, newest first.
func (r *PgxPeriodRepository) ListPeriodsByCompany(ctx context.Context, companyID string) ([]domain.AccountingPeriod, error) {
	query := `
		SELECT period_id, company_id, start_date, end_date, status, created_at, created_by
		FROM accounting_periods
		WHERE company_id = $1
		ORDER BY start_date DESC;
	`
	rows, err := r.Pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query accounting periods for company "+companyID, err)
	}
	defer rows.Close()

	periods := []domain.AccountingPeriod{}
	for rows.Next() {
		var m models.AccountingPeriod
		err := rows.Scan(
			&m.PeriodID, &m.CompanyID, &m.StartDate, &m.EndDate, &m.Status, &m.CreatedAt, &m.CreatedBy,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan accounting period row", err)
		}
		periods = append(periods, mapping.ToDomainPeriod(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating accounting period rows", err)
	}
	return periods, nil
}

// UpdatePeriodStatus sets the period's status.
func (r *PgxPeriodRepository) UpdatePeriodStatus(ctx context.Context, periodID string, status domain.PeriodStatus, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE accounting_periods
		SET status = $2, updated_at = $3, updated_by = $4
		WHERE period_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, periodID, string(status), updatedAt, updatedBy)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update status for period "+periodID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
