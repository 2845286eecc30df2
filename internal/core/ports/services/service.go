package services

// ServiceContainer holds instances of all the application services.
// It is passed to the handlers so they depend on facades, not constructors.
type ServiceContainer struct {
	Ledger          LedgerSvcFacade
	Numbering       NumberingSvcFacade
	Period          PeriodSvcFacade
	BankJournal     BankJournalSvcFacade
	CashJournal     CashJournalSvcFacade
	PurchaseJournal PurchaseJournalSvcFacade
	SalesJournal    SalesJournalSvcFacade
	Audit           AuditSvcFacade
}
