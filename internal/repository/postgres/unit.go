package postgres

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"banksampah-backend/internal/domain"
	"banksampah-backend/internal/repository"
)

type unitRepository struct {
	db DBTX
}

func NewUnitRepository(db DBTX) repository.UnitRepository {
	return &unitRepository{db: db}
}

func (r *unitRepository) Create(ctx context.Context, unit *domain.Unit) error {
	query := `INSERT INTO units (unit_number, leader_name, leader_email, phone, address, total_members, active_members, total_savings, is_active, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10) RETURNING id`
	now := time.Now()
	err := r.db.QueryRowContext(ctx, query,
		unit.UnitNumber, unit.LeaderName, unit.LeaderEmail, unit.Phone, unit.Address,
		unit.TotalMembers, unit.ActiveMembers, unit.TotalSavings, unit.IsActive, now,
	).Scan(&unit.ID)
	if err != nil {
		return mapError(err)
	}
	unit.CreatedAt = now
	unit.UpdatedAt = now
	return nil
}

func (r *unitRepository) GetByNumber(ctx context.Context, unitNumber string) (*domain.Unit, error) {
	query := `SELECT id, unit_number, leader_name, COALESCE(leader_email, ''), phone, address, total_members, active_members, total_savings, is_active, created_at, updated_at
	          FROM units WHERE unit_number = $1`
	var unit domain.Unit
	err := r.db.QueryRowContext(ctx, query, unitNumber).Scan(
		&unit.ID, &unit.UnitNumber, &unit.LeaderName, &unit.LeaderEmail, &unit.Phone, &unit.Address,
		&unit.TotalMembers, &unit.ActiveMembers, &unit.TotalSavings, &unit.IsActive,
		&unit.CreatedAt, &unit.UpdatedAt,
	)
	if err != nil {
		return nil, mapError(err)
	}
	return &unit, nil
}

func (r *unitRepository) List(ctx context.Context, includeInactive bool) ([]domain.Unit, error) {
	query := `SELECT id, unit_number, leader_name, COALESCE(leader_email, ''), phone, address, total_members, active_members, total_savings, is_active, created_at, updated_at
	          FROM units WHERE is_active OR $1 ORDER BY unit_number`
	rows, err := r.db.QueryContext(ctx, query, includeInactive)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var units []domain.Unit
	for rows.Next() {
		var unit domain.Unit
		if err := rows.Scan(
			&unit.ID, &unit.UnitNumber, &unit.LeaderName, &unit.LeaderEmail, &unit.Phone, &unit.Address,
			&unit.TotalMembers, &unit.ActiveMembers, &unit.TotalSavings, &unit.IsActive,
			&unit.CreatedAt, &unit.UpdatedAt,
		); err != nil {
			return nil, mapError(err)
		}
		units = append(units, unit)
	}
	return units, mapError(rows.Err())
}

// Update writes the descriptive fields only. The savings mirror is off limits
// here; it moves exclusively through AddToSavings inside an atomic batch.
func (r *unitRepository) Update(ctx context.Context, unit *domain.Unit) error {
	query := `UPDATE units SET leader_name = $1, leader_email = $2, phone = $3, address = $4, total_members = $5, is_active = $6, updated_at = $7
	          WHERE unit_number = $8`
	res, err := r.db.ExecContext(ctx, query,
		unit.LeaderName, unit.LeaderEmail, unit.Phone, unit.Address,
		unit.TotalMembers, unit.IsActive, time.Now(), unit.UnitNumber,
	)
	if err != nil {
		return mapError(err)
	}
	return requireRow(res)
}

func (r *unitRepository) Deactivate(ctx context.Context, unitNumber string) error {
	query := `UPDATE units SET is_active = false, updated_at = $1 WHERE unit_number = $2`
	res, err := r.db.ExecContext(ctx, query, time.Now(), unitNumber)
	if err != nil {
		return mapError(err)
	}
	return requireRow(res)
}

func (r *unitRepository) Delete(ctx context.Context, unitNumber string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM units WHERE unit_number = $1`, unitNumber)
	if err != nil {
		return mapError(err)
	}
	return requireRow(res)
}

func (r *unitRepository) SetActiveAccounts(ctx context.Context, unitNumber string, count int32) error {
	query := `UPDATE units SET active_members = $1, updated_at = $2 WHERE unit_number = $3`
	res, err := r.db.ExecContext(ctx, query, count, time.Now(), unitNumber)
	if err != nil {
		return mapError(err)
	}
	return requireRow(res)
}

func (r *unitRepository) AddToSavings(ctx context.Context, unitNumber string, delta decimal.Decimal) error {
	query := `UPDATE units SET total_savings = total_savings + $1, updated_at = $2 WHERE unit_number = $3`
	res, err := r.db.ExecContext(ctx, query, delta, time.Now(), unitNumber)
	if err != nil {
		return mapError(err)
	}
	return requireRow(res)
}
