package repositories

import (
	"context"

	"github.com/contazen/erp-ledger/internal/core/domain"
)

// AuditRepositoryFacade stores audit records.
type AuditRepositoryFacade interface {
	SaveAuditLog(ctx context.Context, log domain.AuditLog) error
}
