package pgsql

import (
	"context"
	"errors"
	"strconv"

	"github.com/contazen/erp-ledger/internal/apperrors"
	"github.com/contazen/erp-ledger/internal/core/domain"
	portsrepo "github.com/contazen/erp-ledger/internal/core/ports/repositories"
	"github.com/contazen/erp-ledger/internal/models"
	"github.com/contazen/erp-ledger/internal/utils/mapping"
	"github.com/contazen/erp-ledger/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxCarrierRepository struct {
	BaseRepository
}

// newPgxCarrierRepository creates a new repository for balance carriers and
// their transaction trails.
func newPgxCarrierRepository(pool *pgxpool.Pool) portsrepo.CarrierRepositoryFacade {
	return &PgxCarrierRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CarrierRepositoryFacade = (*PgxCarrierRepository)(nil)

// SaveBankAccount inserts a bank account carrier.
func (r *PgxCarrierRepository) SaveBankAccount(ctx context.Context, account domain.BankAccount) error {
	m := mapping.ToModelBankAccount(account)
	query := `
		INSERT INTO bank_accounts (
			bank_account_id, company_id, name, iban, currency_code,
			account_code, current_balance, is_active, created_at, created_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.BankAccountID, m.CompanyID, m.Name, m.IBAN, m.CurrencyCode,
		m.AccountCode, m.CurrentBalance, m.IsActive, m.CreatedAt, m.CreatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert bank account "+m.BankAccountID, err)
	}
	return nil
}

// FindBankAccountByID retrieves a bank account carrier.
func (r *PgxCarrierRepository) FindBankAccountByID(ctx context.Context, bankAccountID string) (*domain.BankAccount, error) {
	query := `
		SELECT bank_account_id, company_id, name, iban, currency_code,
		       account_code, current_balance, is_active, created_at, created_by
		FROM bank_accounts
		WHERE bank_account_id = $1;
	`
	var m models.BankAccount
	err := r.Pool.QueryRow(ctx, query, bankAccountID).Scan(
		&m.BankAccountID, &m.CompanyID, &m.Name, &m.IBAN, &m.CurrencyCode,
		&m.AccountCode, &m.CurrentBalance, &m.IsActive, &m.CreatedAt, &m.CreatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find bank account "+bankAccountID, err)
	}
	account := mapping.ToDomainBankAccount(m)
	return &account, nil
}

// ListBankAccountsByCompany retrieves all bank account carriers of a company.
func (r *PgxCarrierRepository) ListBankAccountsByCompany(ctx context.Context, companyID string) ([]domain.BankAccount, error) {
	query := `
		SELECT bank_account_id, company_id, name, iban, currency_code,
		       account_code, current_balance, is_active, created_at, created_by
		FROM bank_accounts
		WHERE company_id = $1
		ORDER BY name;
	`
	rows, err := r.Pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query bank accounts for company "+companyID, err)
	}
	defer rows.Close()

	accounts := []domain.BankAccount{}
	for rows.Next() {
		var m models.BankAccount
		err := rows.Scan(
			&m.BankAccountID, &m.CompanyID, &m.Name, &m.IBAN, &m.CurrencyCode,
			&m.AccountCode, &m.CurrentBalance, &m.IsActive, &m.CreatedAt, &m.CreatedBy,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan bank account row", err)
		}
		accounts = append(accounts, mapping.ToDomainBankAccount(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating bank account rows", err)
	}
	return accounts, nil
}

// SaveCashRegister inserts a cash register carrier.
func (r *PgxCarrierRepository) SaveCashRegister(ctx context.Context, register domain.CashRegister) error {
	m := mapping.ToModelCashRegister(register)
	query := `
		INSERT INTO cash_registers (
			cash_register_id, company_id, name, currency_code,
			account_code, current_balance, is_active, created_at, created_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.CashRegisterID, m.CompanyID, m.Name, m.CurrencyCode,
		m.AccountCode, m.CurrentBalance, m.IsActive, m.CreatedAt, m.CreatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert cash register "+m.CashRegisterID, err)
	}
	return nil
}

// FindCashRegisterByID retrieves a cash register carrier.
func (r *PgxCarrierRepository) FindCashRegisterByID(ctx context.Context, cashRegisterID string) (*domain.CashRegister, error) {
	query := `
		SELECT cash_register_id, company_id, name, currency_code,
		       account_code, current_balance, is_active, created_at, created_by
		FROM cash_registers
		WHERE cash_register_id = $1;
	`
	var m models.CashRegister
	err := r.Pool.QueryRow(ctx, query, cashRegisterID).Scan(
		&m.CashRegisterID, &m.CompanyID, &m.Name, &m.CurrencyCode,
		&m.AccountCode, &m.CurrentBalance, &m.IsActive, &m.CreatedAt, &m.CreatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find cash register "+cashRegisterID, err)
	}
	register := mapping.ToDomainCashRegister(m)
	return &register, nil
}

// ListCashRegistersByCompany retrieves all cash register carriers of a company.
func (r *PgxCarrierRepository) ListCashRegistersByCompany(ctx context.Context, companyID string) ([]domain.CashRegister, error) {
	query := `
		SELECT cash_register_id, company_id, name, currency_code,
		       account_code, current_balance, is_active, created_at, created_by
		FROM cash_registers
		WHERE company_id = $1
		ORDER BY name;
	`
	rows, err := r.Pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query cash registers for company "+companyID, err)
	}
	defer rows.Close()

	registers := []domain.CashRegister{}
	for rows.Next() {
		var m models.CashRegister
		err := rows.Scan(
			&m.CashRegisterID, &m.CompanyID, &m.Name, &m.CurrencyCode,
			&m.AccountCode, &m.CurrentBalance, &m.IsActive, &m.CreatedAt, &m.CreatedBy,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan cash register row", err)
		}
		registers = append(registers, mapping.ToDomainCashRegister(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating cash register rows", err)
	}
	return registers, nil
}

// AdjustBankBalanceInTx applies delta to the account balance in one atomic
// statement and returns the new balance. Concurrent postings to the same
// account serialize on the row lock, so every movement sees a consistent
// before/after pair.
func (r *PgxCarrierRepository) AdjustBankBalanceInTx(ctx context.Context, tx pgx.Tx, bankAccountID string, delta decimal.Decimal) (decimal.Decimal, error) {
	query := `
		UPDATE bank_accounts
		SET current_balance = current_balance + $2
		WHERE bank_account_id = $1
		RETURNING current_balance;
	`
	var after decimal.Decimal
	if err := tx.QueryRow(ctx, query, bankAccountID, delta).Scan(&after); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, apperrors.ErrNotFound
		}
		return decimal.Zero, apperrors.NewAppError(500, "failed to adjust balance for bank account "+bankAccountID, err)
	}
	return after, nil
}

// AdjustCashBalanceInTx applies delta to the register balance atomically and
// returns the new balance.
func (r *PgxCarrierRepository) AdjustCashBalanceInTx(ctx context.Context, tx pgx.Tx, cashRegisterID string, delta decimal.Decimal) (decimal.Decimal, error) {
	query := `
		UPDATE cash_registers
		SET current_balance = current_balance + $2
		WHERE cash_register_id = $1
		RETURNING current_balance;
	`
	var after decimal.Decimal
	if err := tx.QueryRow(ctx, query, cashRegisterID, delta).Scan(&after); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, apperrors.ErrNotFound
		}
		return decimal.Zero, apperrors.NewAppError(500, "failed to adjust balance for cash register "+cashRegisterID, err)
	}
	return after, nil
}

// InsertBankTransactionInTx records a bank movement inside an open transaction.
func (r *PgxCarrierRepository) InsertBankTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.BankTransaction) error {
	m := mapping.ToModelBankTransaction(txn)
	query := `
		INSERT INTO bank_transactions (
			transaction_id, bank_account_id, company_id, transaction_type,
			amount, fees, currency_code, description, correlation_ref,
			balance_before, balance_after, ledger_entry_id, transaction_date,
			created_at, created_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err := tx.Exec(ctx, query,
		m.TransactionID, m.BankAccountID, m.CompanyID, m.TransactionType,
		m.Amount, m.Fees, m.CurrencyCode, m.Description, m.CorrelationRef,
		m.BalanceBefore, m.BalanceAfter, m.LedgerEntryID, m.TransactionDate,
		m.CreatedAt, m.CreatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert bank transaction "+m.TransactionID, err)
	}
	return nil
}

// InsertCashTransactionInTx records a cash movement inside an open transaction.
func (r *PgxCarrierRepository) InsertCashTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.CashTransaction) error {
	m := mapping.ToModelCashTransaction(txn)
	query := `
		INSERT INTO cash_transactions (
			transaction_id, cash_register_id, company_id, transaction_type,
			purpose, amount, currency_code, description, receipt_number,
			correlation_ref, balance_before, balance_after, ledger_entry_id,
			transaction_date, created_at, created_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`
	_, err := tx.Exec(ctx, query,
		m.TransactionID, m.CashRegisterID, m.CompanyID, m.TransactionType,
		m.Purpose, m.Amount, m.CurrencyCode, m.Description, m.ReceiptNumber,
		m.CorrelationRef, m.BalanceBefore, m.BalanceAfter, m.LedgerEntryID,
		m.TransactionDate, m.CreatedAt, m.CreatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert cash transaction "+m.TransactionID, err)
	}
	return nil
}

// ListBankTransactions retrieves a paginated page of a bank account's trail,
// newest first, using token-based pagination on (transaction_date, created_at).
func (r *PgxCarrierRepository) ListBankTransactions(ctx context.Context, bankAccountID string, limit int, nextToken *string) ([]domain.BankTransaction, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	fetchLimit := limit + 1

	baseQuery := `
		SELECT transaction_id, bank_account_id, company_id, transaction_type,
		       amount, fees, currency_code, description, correlation_ref,
		       balance_before, balance_after, ledger_entry_id, transaction_date,
		       created_at, created_by
		FROM bank_transactions
		WHERE bank_account_id = $1
	`
	args := []interface{}{bankAccountID}

	if nextToken != nil && *nextToken != "" {
		lastDate, lastCreatedAt, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		baseQuery += ` AND (transaction_date, created_at) < ($2, $3)`
		args = append(args, lastDate, lastCreatedAt)
	}

	query := baseQuery + ` ORDER BY transaction_date DESC, created_at DESC LIMIT $` + strconv.Itoa(len(args)+1) + `;`
	args = append(args, fetchLimit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query transactions for bank account "+bankAccountID, err)
	}
	defer rows.Close()

	txns := make([]models.BankTransaction, 0, fetchLimit)
	for rows.Next() {
		var m models.BankTransaction
		err := rows.Scan(
			&m.TransactionID, &m.BankAccountID, &m.CompanyID, &m.TransactionType,
			&m.Amount, &m.Fees, &m.CurrencyCode, &m.Description, &m.CorrelationRef,
			&m.BalanceBefore, &m.BalanceAfter, &m.LedgerEntryID, &m.TransactionDate,
			&m.CreatedAt, &m.CreatedBy,
		)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan bank transaction row", err)
		}
		txns = append(txns, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating bank transaction rows", err)
	}

	var nextTokenVal *string
	if len(txns) > limit {
		last := txns[limit-1]
		token := pagination.EncodeToken(last.TransactionDate, last.CreatedAt)
		nextTokenVal = &token
		txns = txns[:limit]
	}

	return mapping.ToDomainBankTransactionSlice(txns), nextTokenVal, nil
}

// ListCashTransactions retrieves a paginated page of a register's trail,
// newest first.
func (r *PgxCarrierRepository) ListCashTransactions(ctx context.Context, cashRegisterID string, limit int, nextToken *string) ([]domain.CashTransaction, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	fetchLimit := limit + 1

	baseQuery := `
		SELECT transaction_id, cash_register_id, company_id, transaction_type,
		       purpose, amount, currency_code, description, receipt_number,
		       correlation_ref, balance_before, balance_after, ledger_entry_id,
		       transaction_date, created_at, created_by
		FROM cash_transactions
		WHERE cash_register_id = $1
	`
	args := []interface{}{cashRegisterID}

	if nextToken != nil && *nextToken != "" {
		lastDate, lastCreatedAt, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		baseQuery += ` AND (transaction_date, created_at) < ($2, $3)`
		args = append(args, lastDate, lastCreatedAt)
	}

	query := baseQuery + ` ORDER BY transaction_date DESC, created_at DESC LIMIT $` + strconv.Itoa(len(args)+1) + `;`
	args = append(args, fetchLimit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query transactions for cash register "+cashRegisterID, err)
	}
	defer rows.Close()

	txns := make([]models.CashTransaction, 0, fetchLimit)
	for rows.Next() {
		var m models.CashTransaction
		err := rows.Scan(
			&m.TransactionID, &m.CashRegisterID, &m.CompanyID, &m.TransactionType,
			&m.Purpose, &m.Amount, &m.CurrencyCode, &m.Description, &m.ReceiptNumber,
			&m.CorrelationRef, &m.BalanceBefore, &m.BalanceAfter, &m.LedgerEntryID,
			&m.TransactionDate, &m.CreatedAt, &m.CreatedBy,
		)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan cash transaction row", err)
		}
		txns = append(txns, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating cash transaction rows", err)
	}

	var nextTokenVal *string
	if len(txns) > limit {
		last := txns[limit-1]
		token := pagination.EncodeToken(last.TransactionDate, last.CreatedAt)
		nextTokenVal = &token
		txns = txns[:limit]
	}

	return mapping.ToDomainCashTransactionSlice(txns), nextTokenVal, nil
}
