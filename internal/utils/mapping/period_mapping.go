package mapping

import (
	"github.com/contazen/erp-ledger/internal/core/domain"
	"github.com/contazen/erp-ledger/internal/models"
)

// ToModelPeriod converts a domain AccountingPeriod to its model shape.
func ToModelPeriod(d domain.AccountingPeriod) models.AccountingPeriod {
	return models.AccountingPeriod{
		PeriodID:    d.PeriodID,
		CompanyID:   d.CompanyID,
		StartDate:   d.StartDate,
		EndDate:     d.EndDate,
		Status:      models.PeriodStatus(d.Status),
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPeriod converts a model AccountingPeriod to its domain shape.
func ToDomainPeriod(m models.AccountingPeriod) domain.AccountingPeriod {
	return domain.AccountingPeriod{
		PeriodID:    m.PeriodID,
		CompanyID:   m.CompanyID,
		StartDate:   m.StartDate,
		EndDate:     m.EndDate,
		Status:      domain.PeriodStatus(m.Status),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelAuditLog converts a domain AuditLog to its model shape.
func ToModelAuditLog(d domain.AuditLog) models.AuditLog {
	return models.AuditLog{
		AuditID:   d.AuditID,
		UserID:    d.UserID,
		CompanyID: d.CompanyID,
		Action:    string(d.Action),
		Entity:    d.Entity,
		EntityID:  d.EntityID,
		Details:   d.Details,
		CreatedAt: d.CreatedAt,
	}
}
