package dto

import (
	"time"

	"github.com/contazen/erp-ledger/internal/core/domain"
)

// CreatePeriodRequest opens a new accounting period.
type CreatePeriodRequest struct {
	StartDate time.Time `json:"startDate" binding:"required"`
	EndDate   time.Time `json:"endDate" binding:"required"`
}

// PeriodResponse is the API shape of an accounting period.
type PeriodResponse struct {
	PeriodID  string              `json:"periodID"`
	CompanyID string              `json:"companyID"`
	StartDate time.Time           `json:"startDate"`
	EndDate   time.Time           `json:"endDate"`
	Status    domain.PeriodStatus `json:"status"`
}

// ToPeriodResponse converts a domain period to its API shape.
func ToPeriodResponse(p *domain.AccountingPeriod) PeriodResponse {
	return PeriodResponse{
		PeriodID:  p.PeriodID,
		CompanyID: p.CompanyID,
		StartDate: p.StartDate,
		EndDate:   p.EndDate,
		Status:    p.Status,
	}
}
