package services_test

import (
	"context"
	"time"

	"github.com/contazen/erp-ledger/internal/core/domain"
	portsrepo "github.com/contazen/erp-ledger/internal/core/ports/repositories"
	portssvc "github.com/contazen/erp-ledger/internal/core/ports/services"
	"github.com/contazen/erp-ledger/internal/dto"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock LedgerRepository ---

type MockLedgerRepository struct {
	mock.Mock
}

var _ portsrepo.LedgerRepositoryFacade = (*MockLedgerRepository)(nil)

func (m *MockLedgerRepository) CreateEntry(ctx context.Context, entry domain.LedgerEntry, lines []domain.LedgerLine, posting *domain.CarrierPosting) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, entry, lines, posting)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerRepository) FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.LedgerLine, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerLine), args.Error(1)
}

func (m *MockLedgerRepository) ListEntriesByCompany(ctx context.Context, companyID string, entryType *domain.EntryType, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error) {
	args := m.Called(ctx, companyID, entryType, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.LedgerEntry), returnedNextToken, args.Error(2)
}

// --- Mock CounterRepository ---

type MockCounterRepository struct {
	mock.Mock
}

var _ portsrepo.CounterRepositoryFacade = (*MockCounterRepository)(nil)

func (m *MockCounterRepository) NextNumber(ctx context.Context, companyID, series string, year int) (int64, error) {
	args := m.Called(ctx, companyID, series, year)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCounterRepository) NextNumberInTx(ctx context.Context, tx pgx.Tx, companyID, series string, year int) (int64, error) {
	args := m.Called(ctx, tx, companyID, series, year)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCounterRepository) PeekNumber(ctx context.Context, companyID, series string, year int) (int64, error) {
	args := m.Called(ctx, companyID, series, year)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock PeriodRepository ---

type MockPeriodRepository struct {
	mock.Mock
}

var _ portsrepo.PeriodRepositoryFacade = (*MockPeriodRepository)(nil)

func (m *MockPeriodRepository) SavePeriod(ctx context.Context, period domain.AccountingPeriod) error {
	args := m.Called(ctx, period)
	return args.Error(0)
}

func (m *MockPeriodRepository) FindPeriodByID(ctx context.Context, periodID string) (*domain.AccountingPeriod, error) {
	args := m.Called(ctx, periodID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountingPeriod), args.Error(1)
}

func (m *MockPeriodRepository) FindPeriodForDate(ctx context.Context, companyID string, date time.Time) (*domain.AccountingPeriod, error) {
	args := m.Called(ctx, companyID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountingPeriod), args.Error(1)
}

func (m *MockPeriodRepository) ListPeriodsByCompany(ctx context.Context, companyID string) ([]domain.AccountingPeriod, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccountingPeriod), args.Error(1)
}

func (m *MockPeriodRepository) UpdatePeriodStatus(ctx context.Context, periodID string, status domain.PeriodStatus, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, periodID, status, updatedBy, updatedAt)
	return args.Error(0)
}

// --- Mock CarrierRepository ---

type MockCarrierRepository struct {
	mock.Mock
}

var _ portsrepo.CarrierRepositoryFacade = (*MockCarrierRepository)(nil)

func (m *MockCarrierRepository) SaveBankAccount(ctx context.Context, account domain.BankAccount) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockCarrierRepository) FindBankAccountByID(ctx context.Context, bankAccountID string) (*domain.BankAccount, error) {
	args := m.Called(ctx, bankAccountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BankAccount), args.Error(1)
}

func (m *MockCarrierRepository) ListBankAccountsByCompany(ctx context.Context, companyID string) ([]domain.BankAccount, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BankAccount), args.Error(1)
}

func (m *MockCarrierRepository) SaveCashRegister(ctx context.Context, register domain.CashRegister) error {
	args := m.Called(ctx, register)
	return args.Error(0)
}

func (m *MockCarrierRepository) FindCashRegisterByID(ctx context.Context, cashRegisterID string) (*domain.CashRegister, error) {
	args := m.Called(ctx, cashRegisterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashRegister), args.Error(1)
}

func (m *MockCarrierRepository) ListCashRegistersByCompany(ctx context.Context, companyID string) ([]domain.CashRegister, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CashRegister), args.Error(1)
}

func (m *MockCarrierRepository) AdjustBankBalanceInTx(ctx context.Context, tx pgx.Tx, bankAccountID string, delta decimal.Decimal) (decimal.Decimal, error) {
	args := m.Called(ctx, tx, bankAccountID, delta)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockCarrierRepository) AdjustCashBalanceInTx(ctx context.Context, tx pgx.Tx, cashRegisterID string, delta decimal.Decimal) (decimal.Decimal, error) {
	args := m.Called(ctx, tx, cashRegisterID, delta)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockCarrierRepository) InsertBankTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.BankTransaction) error {
	args := m.Called(ctx, tx, txn)
	return args.Error(0)
}

func (m *MockCarrierRepository) InsertCashTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.CashTransaction) error {
	args := m.Called(ctx, tx, txn)
	return args.Error(0)
}

func (m *MockCarrierRepository) ListBankTransactions(ctx context.Context, bankAccountID string, limit int, nextToken *string) ([]domain.BankTransaction, *string, error) {
	args := m.Called(ctx, bankAccountID, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.BankTransaction), returnedNextToken, args.Error(2)
}

func (m *MockCarrierRepository) ListCashTransactions(ctx context.Context, cashRegisterID string, limit int, nextToken *string) ([]domain.CashTransaction, *string, error) {
	args := m.Called(ctx, cashRegisterID, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.CashTransaction), returnedNextToken, args.Error(2)
}

// --- Mock AuditRepository ---

type MockAuditRepository struct {
	mock.Mock
}

var _ portsrepo.AuditRepositoryFacade = (*MockAuditRepository)(nil)

func (m *MockAuditRepository) SaveAuditLog(ctx context.Context, log domain.AuditLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

// --- Mock PeriodService ---

type MockPeriodService struct {
	mock.Mock
}

var _ portssvc.PeriodSvcFacade = (*MockPeriodService)(nil)

func (m *MockPeriodService) CanPost(ctx context.Context, companyID string, date time.Time) error {
	args := m.Called(ctx, companyID, date)
	return args.Error(0)
}

func (m *MockPeriodService) CreatePeriod(ctx context.Context, companyID string, req dto.CreatePeriodRequest, actorID string) (*domain.AccountingPeriod, error) {
	args := m.Called(ctx, companyID, req, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountingPeriod), args.Error(1)
}

func (m *MockPeriodService) ListPeriods(ctx context.Context, companyID string) ([]domain.AccountingPeriod, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccountingPeriod), args.Error(1)
}

func (m *MockPeriodService) ClosePeriod(ctx context.Context, companyID, periodID, actorID string) error {
	args := m.Called(ctx, companyID, periodID, actorID)
	return args.Error(0)
}

func (m *MockPeriodService) LockPeriod(ctx context.Context, companyID, periodID, actorID string) error {
	args := m.Called(ctx, companyID, periodID, actorID)
	return args.Error(0)
}

func (m *MockPeriodService) ReopenPeriod(ctx context.Context, companyID, periodID, actorID string) error {
	args := m.Called(ctx, companyID, periodID, actorID)
	return args.Error(0)
}

// --- Mock AuditService ---

type MockAuditService struct {
	mock.Mock
}

var _ portssvc.AuditSvcFacade = (*MockAuditService)(nil)

func (m *MockAuditService) Log(ctx context.Context, userID, companyID string, action domain.AuditAction, entity, entityID, details string) {
	m.Called(ctx, userID, companyID, action, entity, entityID, details)
}

// --- Mock LedgerService ---

type MockLedgerService struct {
	mock.Mock
}

var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

func (m *MockLedgerService) CreateEntry(ctx context.Context, in domain.NewEntry, posting *domain.CarrierPosting) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, in, posting)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerService) ReverseEntry(ctx context.Context, companyID, entryID, reason, actorID string) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, companyID, entryID, reason, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerService) RecordTransaction(ctx context.Context, companyID string, req dto.RecordTransactionRequest, actorID string) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, companyID, req, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerService) GetEntry(ctx context.Context, companyID, entryID string) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, companyID, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerService) ListEntries(ctx context.Context, companyID string, params dto.ListLedgerEntriesParams) (*dto.ListLedgerEntriesResponse, error) {
	args := m.Called(ctx, companyID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListLedgerEntriesResponse), args.Error(1)
}
