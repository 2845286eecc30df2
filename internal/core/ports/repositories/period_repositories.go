package repositories

import (
	"context"
	"time"

	"github.com/contazen/erp-ledger/internal/core/domain"
)

// PeriodRepositoryFacade stores accounting periods.
type PeriodRepositoryFacade interface {
	SavePeriod(ctx context.Context, period domain.AccountingPeriod) error
	FindPeriodByID(ctx context.Context, periodID string) (*domain.AccountingPeriod, error)
	// FindPeriodForDate returns the period containing the date, or
	// apperrors.ErrNotFound when no period covers it.
	FindPeriodForDate(ctx context.Context, companyID string, date time.Time) (*domain.AccountingPeriod, error)
	ListPeriodsByCompany(ctx context.Context, companyID string) ([]domain.AccountingPeriod, error)
	UpdatePeriodStatus(ctx context.Context, periodID string, status domain.PeriodStatus, updatedBy string, updatedAt time.Time) error
}
