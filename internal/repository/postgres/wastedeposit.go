package postgres

import (
	"context"
	"time"

	"github.com/lib/pq"

	"banksampah-backend/internal/domain"
	"banksampah-backend/internal/repository"
)

type wasteDepositRepository struct {
	db DBTX
}

func NewWasteDepositRepository(db DBTX) repository.WasteDepositRepository {
	return &wasteDepositRepository{db: db}
}

func (r *wasteDepositRepository) Create(ctx context.Context, deposit *domain.WasteDeposit) error {
	query := `INSERT INTO waste_deposits (id, unit_number, account_number, deposit_date, total_weight, total_amount, notes, processed_by, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	now := time.Now()
	_, err := r.db.ExecContext(ctx, query,
		deposit.ID, deposit.UnitNumber, deposit.AccountNumber, deposit.DepositDate,
		deposit.TotalWeight, deposit.TotalAmount, deposit.Notes, deposit.ProcessedBy, now,
	)
	if err != nil {
		return mapError(err)
	}

	itemQuery := `INSERT INTO waste_deposit_items (waste_deposit_id, waste_type, weight_kg, price_per_kg, line_total)
	              VALUES ($1, $2, $3, $4, $5)`
	for _, item := range deposit.Items {
		if _, err := r.db.ExecContext(ctx, itemQuery,
			deposit.ID, item.WasteType, item.WeightKg, item.PricePerKg, item.LineTotal,
		); err != nil {
			return mapError(err)
		}
	}

	deposit.CreatedAt = now
	return nil
}

func (r *wasteDepositRepository) GetByID(ctx context.Context, id string) (*domain.WasteDeposit, error) {
	query := `SELECT id, unit_number, account_number, deposit_date, total_weight, total_amount, COALESCE(notes, ''), processed_by, created_at
	          FROM waste_deposits WHERE id = $1`
	var deposit domain.WasteDeposit
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&deposit.ID, &deposit.UnitNumber, &deposit.AccountNumber, &deposit.DepositDate,
		&deposit.TotalWeight, &deposit.TotalAmount, &deposit.Notes, &deposit.ProcessedBy, &deposit.CreatedAt,
	)
	if err != nil {
		return nil, mapError(err)
	}

	items, err := r.loadItems(ctx, []string{deposit.ID})
	if err != nil {
		return nil, err
	}
	deposit.Items = items[deposit.ID]
	return &deposit, nil
}

func (r *wasteDepositRepository) List(ctx context.Context, unitNumber string, limit int) ([]domain.WasteDeposit, error) {
	query := `SELECT id, unit_number, account_number, deposit_date, total_weight, total_amount, COALESCE(notes, ''), processed_by, created_at
	          FROM waste_deposits WHERE ($1 = '' OR unit_number = $1)
	          ORDER BY deposit_date DESC, created_at DESC LIMIT $2`
	rows, err := r.db.QueryContext(ctx, query, unitNumber, limit)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var deposits []domain.WasteDeposit
	var ids []string
	for rows.Next() {
		var deposit domain.WasteDeposit
		if err := rows.Scan(
			&deposit.ID, &deposit.UnitNumber, &deposit.AccountNumber, &deposit.DepositDate,
			&deposit.TotalWeight, &deposit.TotalAmount, &deposit.Notes, &deposit.ProcessedBy, &deposit.CreatedAt,
		); err != nil {
			return nil, mapError(err)
		}
		deposits = append(deposits, deposit)
		ids = append(ids, deposit.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}
	if len(deposits) == 0 {
		return deposits, nil
	}

	items, err := r.loadItems(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range deposits {
		deposits[i].Items = items[deposits[i].ID]
	}
	return deposits, nil
}

func (r *wasteDepositRepository) loadItems(ctx context.Context, depositIDs []string) (map[string][]domain.WasteItem, error) {
	query := `SELECT waste_deposit_id, waste_type, weight_kg, price_per_kg, line_total
	          FROM waste_deposit_items WHERE waste_deposit_id = ANY($1) ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, pq.Array(depositIDs))
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	items := make(map[string][]domain.WasteItem)
	for rows.Next() {
		var depositID string
		var item domain.WasteItem
		if err := rows.Scan(&depositID, &item.WasteType, &item.WeightKg, &item.PricePerKg, &item.LineTotal); err != nil {
			return nil, mapError(err)
		}
		items[depositID] = append(items[depositID], item)
	}
	return items, mapError(rows.Err())
}
