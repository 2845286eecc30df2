package models

import "time"

// AuditLog is one persisted change record.
type AuditLog struct {
	AuditID   string    `db:"audit_id"`
	UserID    string    `db:"user_id"`
	CompanyID string    `db:"company_id"`
	Action    string    `db:"action"`
	Entity    string    `db:"entity"`
	EntityID  string    `db:"entity_id"`
	Details   string    `db:"details"`
	CreatedAt time.Time `db:"created_at"`
}
