package models

import "time"

// PeriodStatus is the persisted posting state of an accounting period.
type PeriodStatus string

const (
	PeriodOpen       PeriodStatus = "OPEN"
	PeriodSoftClosed PeriodStatus = "SOFT_CLOSED"
	PeriodLocked     PeriodStatus = "LOCKED"
)

// AccountingPeriod bounds a posting interval for one company.
type AccountingPeriod struct {
	PeriodID  string       `db:"period_id"`
	CompanyID string       `db:"company_id"`
	StartDate time.Time    `db:"start_date"`
	EndDate   time.Time    `db:"end_date"`
	Status    PeriodStatus `db:"status"`
	AuditFields
}
