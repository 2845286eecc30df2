package models

import "time"

// AuditFields are the persisted creation stamps shared by every table.
type AuditFields struct {
	CreatedAt time.Time `db:"created_at"`
	CreatedBy string    `db:"created_by"`
}
