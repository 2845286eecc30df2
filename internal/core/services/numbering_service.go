package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/contazen/erp-ledger/internal/apperrors"
	"github.com/contazen/erp-ledger/internal/core/domain"
	portsrepo "github.com/contazen/erp-ledger/internal/core/ports/repositories"
	portssvc "github.com/contazen/erp-ledger/internal/core/ports/services"
	"github.com/contazen/erp-ledger/internal/middleware"
)

type numberingService struct {
	counterRepo portsrepo.CounterRepositoryFacade
}

// NewNumberingService creates a new NumberingService.
func NewNumberingService(counterRepo portsrepo.CounterRepositoryFacade) portssvc.NumberingSvcFacade {
	return &numberingService{counterRepo: counterRepo}
}

var _ portssvc.NumberingSvcFacade = (*numberingService)(nil)

// GenerateNumber allocates the next number for (company, series, year) and
// formats it as SERIES/YEAR/NNNNNN. Counters are independent per key; a new
// key starts at 1. Allocation failures surface as ErrNumbering and are never
// papered over with a guessed number.
func (s *numberingService) GenerateNumber(ctx context.Context, companyID, series string, year int) (string, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if companyID == "" || series == "" {
		return "", fmt.Errorf("%w: company ID and series are required", apperrors.ErrValidation)
	}

	n, err := s.counterRepo.NextNumber(ctx, companyID, series, year)
	if err != nil {
		logger.Error("Failed to allocate document number",
			slog.String("error", err.Error()),
			slog.String("company_id", companyID),
			slog.String("series", series),
			slog.Int("year", year))
		return "", fmt.Errorf("%w: series %s/%d: %v", apperrors.ErrNumbering, series, year, err)
	}

	return domain.FormatJournalNumber(series, year, n), nil
}

// PreviewNextNumber formats the number the next allocation on the key would
// receive, without allocating it. The preview is advisory: a concurrent
// posting can claim the value before the caller does.
func (s *numberingService) PreviewNextNumber(ctx context.Context, companyID, series string, year int) (string, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if companyID == "" || series == "" {
		return "", fmt.Errorf("%w: company ID and series are required", apperrors.ErrValidation)
	}

	last, err := s.counterRepo.PeekNumber(ctx, companyID, series, year)
	if err != nil {
		logger.Error("Failed to read document counter",
			slog.String("error", err.Error()),
			slog.String("company_id", companyID),
			slog.String("series", series),
			slog.Int("year", year))
		return "", fmt.Errorf("%w: series %s/%d: %v", apperrors.ErrNumbering, series, year, err)
	}

	return domain.FormatJournalNumber(series, year, last+1), nil
}
