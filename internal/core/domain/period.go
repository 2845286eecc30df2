package domain

import "time"

// PeriodStatus is the posting state of an accounting period.
type PeriodStatus string

const (
	PeriodOpen       PeriodStatus = "OPEN"
	PeriodSoftClosed PeriodStatus = "SOFT_CLOSED"
	PeriodLocked     PeriodStatus = "LOCKED"
)

// AccountingPeriod bounds a posting interval for one company. Posting is
// allowed only while the period is open; a soft close can be reopened, a
// hard lock cannot.
type AccountingPeriod struct {
	PeriodID  string       `json:"periodID"`
	CompanyID string       `json:"companyID"`
	StartDate time.Time    `json:"startDate"`
	EndDate   time.Time    `json:"endDate"`
	Status    PeriodStatus `json:"status"`
	AuditFields
}

// Contains reports whether d falls inside the period bounds (inclusive).
func (p AccountingPeriod) Contains(d time.Time) bool {
	day := d.Truncate(24 * time.Hour)
	return !day.Before(p.StartDate.Truncate(24*time.Hour)) && !day.After(p.EndDate.Truncate(24*time.Hour))
}
