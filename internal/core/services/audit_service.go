package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/contazen/erp-ledger/internal/core/domain"
	portsrepo "github.com/contazen/erp-ledger/internal/core/ports/repositories"
	portssvc "github.com/contazen/erp-ledger/internal/core/ports/services"
	"github.com/contazen/erp-ledger/internal/middleware"
)

type auditService struct {
	auditRepo portsrepo.AuditRepositoryFacade
}

// NewAuditService creates a new AuditService.
func NewAuditService(auditRepo portsrepo.AuditRepositoryFacade) portssvc.AuditSvcFacade {
	return &auditService{auditRepo: auditRepo}
}

var _ portssvc.AuditSvcFacade = (*auditService)(nil)

// Log persists one audit record. The sink is strictly downstream: a failure
// here is logged and swallowed, it never fails or rolls back the operation
// being audited.
func (s *auditService) Log(ctx context.Context, userID, companyID string, action domain.AuditAction, entity, entityID, details string) {
	logger := middleware.GetLoggerFromCtx(ctx)

	record := domain.AuditLog{
		AuditID:   uuid.NewString(),
		UserID:    userID,
		CompanyID: companyID,
		Action:    action,
		Entity:    entity,
		EntityID:  entityID,
		Details:   details,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.auditRepo.SaveAuditLog(ctx, record); err != nil {
		logger.Error("Failed to persist audit log",
			slog.String("error", err.Error()),
			slog.String("entity", entity),
			slog.String("entity_id", entityID),
			slog.String("action", string(action)))
	}
}
