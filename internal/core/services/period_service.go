package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/contazen/erp-ledger/internal/apperrors"
	"github.com/contazen/erp-ledger/internal/core/domain"
	portsrepo "github.com/contazen/erp-ledger/internal/core/ports/repositories"
	portssvc "github.com/contazen/erp-ledger/internal/core/ports/services"
	"github.com/contazen/erp-ledger/internal/dto"
	"github.com/contazen/erp-ledger/internal/middleware"
)

var (
	ErrPeriodDatesInvalid = errors.New("period end date must not be before its start date")
	ErrPeriodLocked       = errors.New("locked periods cannot be reopened")
)

type periodService struct {
	periodRepo portsrepo.PeriodRepositoryFacade
	auditSvc   portssvc.AuditSvcFacade
}

// NewPeriodService creates a new PeriodService.
func NewPeriodService(periodRepo portsrepo.PeriodRepositoryFacade, auditSvc portssvc.AuditSvcFacade) portssvc.PeriodSvcFacade {
	return &periodService{periodRepo: periodRepo, auditSvc: auditSvc}
}

var _ portssvc.PeriodSvcFacade = (*periodService)(nil)

// CanPost allows posting when the date falls in an OPEN period or in no
// period at all. Companies that never declared periods post freely; a date
// inside a SOFT_CLOSED or LOCKED period is rejected with the period status
// in the error.
func (s *periodService) CanPost(ctx context.Context, companyID string, date time.Time) error {
	period, err := s.periodRepo.FindPeriodForDate(ctx, companyID, date)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to resolve accounting period: %w", err)
	}

	if period.Status != domain.PeriodOpen {
		return fmt.Errorf("%w: period %s..%s is %s",
			apperrors.ErrPeriodClosed,
			period.StartDate.Format("2006-01-02"),
			period.EndDate.Format("2006-01-02"),
			period.Status)
	}
	return nil
}

// CreatePeriod opens a new period for the company.
func (s *periodService) CreatePeriod(ctx context.Context, companyID string, req dto.CreatePeriodRequest, actorID string) (*domain.AccountingPeriod, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.EndDate.Before(req.StartDate) {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, ErrPeriodDatesInvalid)
	}

	period := domain.AccountingPeriod{
		PeriodID:  uuid.NewString(),
		CompanyID: companyID,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Status:    domain.PeriodOpen,
		AuditFields: domain.AuditFields{
			CreatedAt: time.Now().UTC(),
			CreatedBy: actorID,
		},
	}

	if err := s.periodRepo.SavePeriod(ctx, period); err != nil {
		logger.Error("Failed to create accounting period", slog.String("error", err.Error()), slog.String("company_id", companyID))
		return nil, fmt.Errorf("failed to create accounting period: %w", err)
	}

	s.auditSvc.Log(ctx, actorID, companyID, domain.AuditCreate, "accounting_period", period.PeriodID,
		fmt.Sprintf("start=%s end=%s", period.StartDate.Format("2006-01-02"), period.EndDate.Format("2006-01-02")))

	logger.Info("Accounting period created", slog.String("period_id", period.PeriodID))
	return &period, nil
}

// ListPeriods retrieves all periods for a company.
func (s *periodService) ListPeriods(ctx context.Context, companyID string) ([]domain.AccountingPeriod, error) {
	periods, err := s.periodRepo.ListPeriodsByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve accounting periods: %w", err)
	}
	return periods, nil
}

// ClosePeriod soft-closes an open period.
func (s *periodService) ClosePeriod(ctx context.Context, companyID, periodID, actorID string) error {
	return s.transition(ctx, companyID, periodID, actorID, domain.PeriodSoftClosed, func(current domain.PeriodStatus) error {
		if current != domain.PeriodOpen {
			return fmt.Errorf("%w: period is %s, expected OPEN", apperrors.ErrConflict, current)
		}
		return nil
	})
}

// LockPeriod hard-locks a period. Both OPEN and SOFT_CLOSED periods may be
// locked; a lock is final.
func (s *periodService) LockPeriod(ctx context.Context, companyID, periodID, actorID string) error {
	return s.transition(ctx, companyID, periodID, actorID, domain.PeriodLocked, func(current domain.PeriodStatus) error {
		if current == domain.PeriodLocked {
			return fmt.Errorf("%w: period is already LOCKED", apperrors.ErrConflict)
		}
		return nil
	})
}

// ReopenPeriod reverts a soft close. Locked periods stay locked.
func (s *periodService) ReopenPeriod(ctx context.Context, companyID, periodID, actorID string) error {
	return s.transition(ctx, companyID, periodID, actorID, domain.PeriodOpen, func(current domain.PeriodStatus) error {
		switch current {
		case domain.PeriodLocked:
			return fmt.Errorf("%w: %w", apperrors.ErrConflict, ErrPeriodLocked)
		case domain.PeriodOpen:
			return fmt.Errorf("%w: period is already OPEN", apperrors.ErrConflict)
		}
		return nil
	})
}

func (s *periodService) transition(ctx context.Context, companyID, periodID, actorID string, target domain.PeriodStatus, allowed func(domain.PeriodStatus) error) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	period, err := s.periodRepo.FindPeriodByID(ctx, periodID)
	if err != nil {
		return err
	}
	if period.CompanyID != companyID {
		return apperrors.ErrNotFound
	}
	if err := allowed(period.Status); err != nil {
		return err
	}

	if err := s.periodRepo.UpdatePeriodStatus(ctx, periodID, target, actorID, time.Now().UTC()); err != nil {
		logger.Error("Failed to update period status", slog.String("error", err.Error()), slog.String("period_id", periodID))
		return fmt.Errorf("failed to update period status: %w", err)
	}

	s.auditSvc.Log(ctx, actorID, companyID, domain.AuditUpdate, "accounting_period", periodID,
		fmt.Sprintf("status %s -> %s", period.Status, target))

	logger.Info("Accounting period status changed",
		slog.String("period_id", periodID),
		slog.String("from", string(period.Status)),
		slog.String("to", string(target)))
	return nil
}
