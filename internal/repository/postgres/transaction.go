package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"banksampah-backend/internal/domain"
	"banksampah-backend/internal/repository"
)

type transactionRepository struct {
	db DBTX
}

func NewTransactionRepository(db DBTX) repository.TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Create(ctx context.Context, tx *domain.Transaction) error {
	query := `INSERT INTO transactions (id, account_number, unit_number, type, amount, date, description, processed_by, waste_deposit_id, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	now := time.Now()
	_, err := r.db.ExecContext(ctx, query,
		tx.ID, tx.AccountNumber, tx.UnitNumber, tx.Type, tx.Amount,
		tx.Date, tx.Description, tx.ProcessedBy, tx.WasteDepositID, now,
	)
	if err != nil {
		return mapError(err)
	}
	tx.CreatedAt = now
	return nil
}

func (r *transactionRepository) List(ctx context.Context, filter domain.TransactionFilter, limit int) ([]domain.Transaction, error) {
	query := `SELECT id, account_number, unit_number, type, amount, date, description, processed_by, waste_deposit_id, created_at
	          FROM transactions WHERE 1=1`
	var args []any

	if filter.UnitNumber != "" {
		args = append(args, filter.UnitNumber)
		query += fmt.Sprintf(" AND unit_number = $%d", len(args))
	}
	if filter.AccountNumber != "" {
		args = append(args, filter.AccountNumber)
		query += fmt.Sprintf(" AND account_number = $%d", len(args))
	}
	if !filter.From.IsZero() {
		args = append(args, filter.From)
		query += fmt.Sprintf(" AND date >= $%d", len(args))
	}
	if !filter.To.IsZero() {
		args = append(args, filter.To)
		query += fmt.Sprintf(" AND date <= $%d", len(args))
	}

	args = append(args, limit)
	query += fmt.Sprintf(" ORDER BY date DESC, created_at DESC LIMIT $%d", len(args))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var txs []domain.Transaction
	for rows.Next() {
		var tx domain.Transaction
		if err := rows.Scan(
			&tx.ID, &tx.AccountNumber, &tx.UnitNumber, &tx.Type, &tx.Amount,
			&tx.Date, &tx.Description, &tx.ProcessedBy, &tx.WasteDepositID, &tx.CreatedAt,
		); err != nil {
			return nil, mapError(err)
		}
		txs = append(txs, tx)
	}
	return txs, mapError(rows.Err())
}

func (r *transactionRepository) CountByUnit(ctx context.Context, unitNumber string) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM transactions WHERE unit_number = $1`, unitNumber).Scan(&count)
	return count, mapError(err)
}

func (r *transactionRepository) SumByAccount(ctx context.Context, accountNumber string) (decimal.Decimal, decimal.Decimal, error) {
	query := `SELECT
	            COALESCE(SUM(amount) FILTER (WHERE type = 'deposit'), 0),
	            COALESCE(SUM(amount) FILTER (WHERE type = 'withdrawal'), 0)
	          FROM transactions WHERE account_number = $1`
	var deposits, withdrawals decimal.Decimal
	err := r.db.QueryRowContext(ctx, query, accountNumber).Scan(&deposits, &withdrawals)
	if err != nil {
		return decimal.Zero, decimal.Zero, mapError(err)
	}
	return deposits, withdrawals, nil
}
