package postgres

import (
	"context"
	"time"

	"banksampah-backend/internal/domain"
	"banksampah-backend/internal/repository"
)

type reportRepository struct {
	db DBTX
}

func NewReportRepository(db DBTX) repository.ReportRepository {
	return &reportRepository{db: db}
}

// PeriodAggregate sums ledger activity inside [from, to], optionally scoped to
// one unit. An empty window yields zero aggregates, not an error.
func (r *reportRepository) PeriodAggregate(ctx context.Context, unitNumber string, from, to time.Time) (*domain.PeriodAggregate, error) {
	agg := &domain.PeriodAggregate{}

	query := `SELECT
	            COALESCE(SUM(amount) FILTER (WHERE type = 'deposit'), 0),
	            COALESCE(SUM(amount) FILTER (WHERE type = 'withdrawal'), 0),
	            count(*)
	          FROM transactions
	          WHERE ($1 = '' OR unit_number = $1) AND date >= $2 AND date <= $3`
	err := r.db.QueryRowContext(ctx, query, unitNumber, from, to).Scan(
		&agg.TotalDeposited, &agg.TotalWithdrawn, &agg.TransactionCount,
	)
	if err != nil {
		return nil, mapError(err)
	}

	weightQuery := `SELECT COALESCE(SUM(total_weight), 0)
	                FROM waste_deposits
	                WHERE ($1 = '' OR unit_number = $1) AND deposit_date >= $2 AND deposit_date <= $3`
	err = r.db.QueryRowContext(ctx, weightQuery, unitNumber, from, to).Scan(&agg.TotalWeight)
	if err != nil {
		return nil, mapError(err)
	}

	return agg, nil
}

// ListUnitBalances reads each unit with its collective account's authoritative
// balance. Units without an account yet report zero.
func (r *reportRepository) ListUnitBalances(ctx context.Context) ([]domain.UnitBalance, error) {
	query := `SELECT u.unit_number, u.leader_name, u.active_members, COALESCE(a.total_savings, 0), u.is_active
	          FROM units u
	          LEFT JOIN accounts a ON a.account_number = u.unit_number || '-COLLECTIVE'
	          ORDER BY u.unit_number`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var balances []domain.UnitBalance
	for rows.Next() {
		var b domain.UnitBalance
		if err := rows.Scan(&b.UnitNumber, &b.LeaderName, &b.ActiveMembers, &b.Balance, &b.IsActive); err != nil {
			return nil, mapError(err)
		}
		balances = append(balances, b)
	}
	return balances, mapError(rows.Err())
}
