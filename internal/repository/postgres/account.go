package postgres

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"banksampah-backend/internal/domain"
	"banksampah-backend/internal/repository"
)

type accountRepository struct {
	db DBTX
}

func NewAccountRepository(db DBTX) repository.AccountRepository {
	return &accountRepository{db: db}
}

const accountColumns = `id, account_number, unit_number, display_name, total_savings, total_withdrawals, last_transaction, is_active, created_at, updated_at`

func scanAccount(row interface{ Scan(...any) error }) (*domain.Account, error) {
	var account domain.Account
	err := row.Scan(
		&account.ID, &account.AccountNumber, &account.UnitNumber, &account.DisplayName,
		&account.TotalSavings, &account.TotalWithdrawals, &account.LastTransaction,
		&account.IsActive, &account.CreatedAt, &account.UpdatedAt,
	)
	if err != nil {
		return nil, mapError(err)
	}
	return &account, nil
}

func (r *accountRepository) GetByNumber(ctx context.Context, accountNumber string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_number = $1`
	return scanAccount(r.db.QueryRowContext(ctx, query, accountNumber))
}

func (r *accountRepository) ListByUnit(ctx context.Context, unitNumber string) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE unit_number = $1 ORDER BY account_number`
	return r.list(ctx, query, unitNumber)
}

func (r *accountRepository) ListAll(ctx context.Context) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts ORDER BY account_number`
	return r.list(ctx, query)
}

func (r *accountRepository) list(ctx context.Context, query string, args ...any) ([]domain.Account, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, *account)
	}
	return accounts, mapError(rows.Err())
}

func (r *accountRepository) CountActiveByUnit(ctx context.Context, unitNumber string) (int32, error) {
	var count int32
	query := `SELECT count(*) FROM accounts WHERE unit_number = $1 AND is_active`
	err := r.db.QueryRowContext(ctx, query, unitNumber).Scan(&count)
	return count, mapError(err)
}

// CreateIfAbsent makes first-time account creation idempotent: the account
// number is a deterministic key and the insert is a no-op when the row already
// exists, so concurrent resolutions never produce two accounts.
func (r *accountRepository) CreateIfAbsent(ctx context.Context, account *domain.Account) error {
	query := `INSERT INTO accounts (account_number, unit_number, display_name, total_savings, total_withdrawals, is_active, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
	          ON CONFLICT (account_number) DO NOTHING`
	_, err := r.db.ExecContext(ctx, query,
		account.AccountNumber, account.UnitNumber, account.DisplayName,
		account.TotalSavings, account.TotalWithdrawals, account.IsActive, time.Now(),
	)
	return mapError(err)
}

func (r *accountRepository) Credit(ctx context.Context, accountNumber string, amount decimal.Decimal) error {
	query := `UPDATE accounts SET total_savings = total_savings + $1, last_transaction = $2, updated_at = $2
	          WHERE account_number = $3`
	res, err := r.db.ExecContext(ctx, query, amount, time.Now(), accountNumber)
	if err != nil {
		return mapError(err)
	}
	return requireRow(res)
}

// DebitGuarded is the conditional decrement the withdrawal processor relies
// on: the balance check and the debit are one statement, so two concurrent
// withdrawals can never jointly overdraw against a stale read.
func (r *accountRepository) DebitGuarded(ctx context.Context, accountNumber string, amount decimal.Decimal) error {
	query := `UPDATE accounts SET total_savings = total_savings - $1, total_withdrawals = total_withdrawals + $1, last_transaction = $2, updated_at = $2
	          WHERE account_number = $3 AND total_savings >= $1`
	res, err := r.db.ExecContext(ctx, query, amount, time.Now(), accountNumber)
	if err != nil {
		return mapError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return mapError(err)
	}
	if n > 0 {
		return nil
	}

	// Distinguish a missing account from an uncovered amount.
	var exists bool
	err = r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM accounts WHERE account_number = $1)`, accountNumber).Scan(&exists)
	if err != nil {
		return mapError(err)
	}
	if !exists {
		return domain.ErrNotFound
	}
	return domain.ErrInsufficientFunds
}
