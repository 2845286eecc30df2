package pgsql

import (
	portsrepo "github.com/contazen/erp-ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	counterRepo := newPgxCounterRepository(dbPool)
	carrierRepo := newPgxCarrierRepository(dbPool)
	ledgerRepo := newPgxLedgerRepository(dbPool, counterRepo, carrierRepo)
	periodRepo := newPgxPeriodRepository(dbPool)
	auditRepo := newPgxAuditRepository(dbPool)

	return portsrepo.RepositoryProvider{
		LedgerRepo:  ledgerRepo,
		CounterRepo: counterRepo,
		PeriodRepo:  periodRepo,
		CarrierRepo: carrierRepo,
		AuditRepo:   auditRepo,
	}
}
