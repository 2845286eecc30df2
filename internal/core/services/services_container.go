package services

import (
	portsrepo "github.com/contazen/erp-ledger/internal/core/ports/repositories"
	portssvc "github.com/contazen/erp-ledger/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Audit and period services first since the ledger engine depends on them
	container.Audit = NewAuditService(repos.AuditRepo)
	container.Period = NewPeriodService(repos.PeriodRepo, container.Audit)
	container.Numbering = NewNumberingService(repos.CounterRepo)

	// The ledger engine sits under every journal service
	container.Ledger = NewLedgerService(repos.LedgerRepo, container.Period, container.Audit)

	container.BankJournal = NewBankJournalService(repos.CarrierRepo, container.Ledger, container.Audit)
	container.CashJournal = NewCashJournalService(repos.CarrierRepo, container.Ledger, container.Audit)
	container.PurchaseJournal = NewPurchaseJournalService(container.Ledger, container.Audit)
	container.SalesJournal = NewSalesJournalService(container.Ledger, container.Audit)

	return container
}
