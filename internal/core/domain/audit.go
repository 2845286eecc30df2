package domain

import "time"

// AuditAction is the recorded kind of change.
type AuditAction string

const (
	AuditCreate  AuditAction = "CREATE"
	AuditUpdate  AuditAction = "UPDATE"
	AuditReverse AuditAction = "REVERSE"
)

// AuditLog is one fire-and-forget audit record. Failures to persist it are
// logged and swallowed, never propagated to the operation being audited.
type AuditLog struct {
	AuditID   string      `json:"auditID"`
	UserID    string      `json:"userID"`
	CompanyID string      `json:"companyID"`
	Action    AuditAction `json:"action"`
	Entity    string      `json:"entity"`
	EntityID  string      `json:"entityID"`
	Details   string      `json:"details"`
	CreatedAt time.Time   `json:"createdAt"`
}
