package repositories

import (
	"context"

	"github.com/contazen/erp-ledger/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// CarrierRepositoryFacade stores balance carriers (bank accounts and cash
// registers) and their transaction trails. Balance mutations are single
// atomic increments executed by the store; there is no read-then-write path.
type CarrierRepositoryFacade interface {
	SaveBankAccount(ctx context.Context, account domain.BankAccount) error
	FindBankAccountByID(ctx context.Context, bankAccountID string) (*domain.BankAccount, error)
	ListBankAccountsByCompany(ctx context.Context, companyID string) ([]domain.BankAccount, error)

	SaveCashRegister(ctx context.Context, register domain.CashRegister) error
	FindCashRegisterByID(ctx context.Context, cashRegisterID string) (*domain.CashRegister, error)
	ListCashRegistersByCompany(ctx context.Context, companyID string) ([]domain.CashRegister, error)

	// AdjustBankBalanceInTx atomically applies delta to the account balance
	// and returns the new balance. Must run inside the ledger entry's
	// transaction.
	AdjustBankBalanceInTx(ctx context.Context, tx pgx.Tx, bankAccountID string, delta decimal.Decimal) (decimal.Decimal, error)
	AdjustCashBalanceInTx(ctx context.Context, tx pgx.Tx, cashRegisterID string, delta decimal.Decimal) (decimal.Decimal, error)

	InsertBankTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.BankTransaction) error
	InsertCashTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.CashTransaction) error

	ListBankTransactions(ctx context.Context, bankAccountID string, limit int, nextToken *string) ([]domain.BankTransaction, *string, error)
	ListCashTransactions(ctx context.Context, cashRegisterID string, limit int, nextToken *string) ([]domain.CashTransaction, *string, error)
}
