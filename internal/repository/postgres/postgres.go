package postgres

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"

	"banksampah-backend/internal/logger"
	"banksampah-backend/internal/repository"
)

// DBTX is the subset of database/sql shared by *sql.DB and *sql.Tx. Every
// repository runs against it, so the same implementations serve both direct
// calls and calls inside an atomic batch.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type Store struct {
	db            *sql.DB // nil when the store is bound to a transaction
	units         repository.UnitRepository
	accounts      repository.AccountRepository
	transactions  repository.TransactionRepository
	wasteDeposits repository.WasteDepositRepository
	reports       repository.ReportRepository
	users         repository.UserRepository
}

func NewStore(db *sql.DB) *Store {
	return newStore(db, db)
}

func newStore(db *sql.DB, q DBTX) *Store {
	return &Store{
		db:            db,
		units:         NewUnitRepository(q),
		accounts:      NewAccountRepository(q),
		transactions:  NewTransactionRepository(q),
		wasteDeposits: NewWasteDepositRepository(q),
		reports:       NewReportRepository(q),
		users:         NewUserRepository(q),
	}
}

func (s *Store) Units() repository.UnitRepository                 { return s.units }
func (s *Store) Accounts() repository.AccountRepository           { return s.accounts }
func (s *Store) Transactions() repository.TransactionRepository   { return s.transactions }
func (s *Store) WasteDeposits() repository.WasteDepositRepository { return s.wasteDeposits }
func (s *Store) Reports() repository.ReportRepository             { return s.reports }
func (s *Store) Users() repository.UserRepository                 { return s.users }

// Atomic runs fn against a store bound to a single database transaction. All
// writes issued through that store commit together or not at all; any error
// from fn rolls the whole batch back.
func (s *Store) Atomic(ctx context.Context, fn func(repository.Store) error) error {
	if s.db == nil {
		// Already inside a batch; join it.
		return fn(s)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return mapError(err)
	}

	if err := fn(newStore(nil, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && rbErr != sql.ErrTxDone {
			logger.Error("Failed to roll back batch", "error", rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return mapError(err)
	}
	return nil
}
