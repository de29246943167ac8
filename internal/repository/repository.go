package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"banksampah-backend/internal/domain"
)

type UnitRepository interface {
	Create(ctx context.Context, unit *domain.Unit) error
	GetByNumber(ctx context.Context, unitNumber string) (*domain.Unit, error)
	List(ctx context.Context, includeInactive bool) ([]domain.Unit, error)
	Update(ctx context.Context, unit *domain.Unit) error
	Deactivate(ctx context.Context, unitNumber string) error
	Delete(ctx context.Context, unitNumber string) error
	SetActiveAccounts(ctx context.Context, unitNumber string, count int32) error

	// AddToSavings applies a delta to the unit's cached savings mirror as a
	// single SQL-side increment, never read-modify-write.
	AddToSavings(ctx context.Context, unitNumber string, delta decimal.Decimal) error
}

type AccountRepository interface {
	GetByNumber(ctx context.Context, accountNumber string) (*domain.Account, error)
	ListByUnit(ctx context.Context, unitNumber string) ([]domain.Account, error)
	ListAll(ctx context.Context) ([]domain.Account, error)
	CountActiveByUnit(ctx context.Context, unitNumber string) (int32, error)

	// CreateIfAbsent inserts the account unless its account number already
	// exists. Concurrent calls for the same account number converge on one row.
	CreateIfAbsent(ctx context.Context, account *domain.Account) error

	// Credit adds amount to the account's balance as a SQL-side increment.
	Credit(ctx context.Context, accountNumber string, amount decimal.Decimal) error

	// DebitGuarded subtracts amount from the balance and adds it to the
	// cumulative withdrawals, conditioned on the pre-delta balance covering the
	// amount. Returns domain.ErrInsufficientFunds when the condition fails and
	// domain.ErrNotFound when the account does not exist.
	DebitGuarded(ctx context.Context, accountNumber string, amount decimal.Decimal) error
}

type TransactionRepository interface {
	Create(ctx context.Context, tx *domain.Transaction) error
	List(ctx context.Context, filter domain.TransactionFilter, limit int) ([]domain.Transaction, error)
	CountByUnit(ctx context.Context, unitNumber string) (int64, error)

	// SumByAccount recomputes gross deposits and withdrawals from the
	// transaction log. Used by the ledger audit.
	SumByAccount(ctx context.Context, accountNumber string) (deposits, withdrawals decimal.Decimal, err error)
}

type WasteDepositRepository interface {
	Create(ctx context.Context, deposit *domain.WasteDeposit) error
	GetByID(ctx context.Context, id string) (*domain.WasteDeposit, error)
	List(ctx context.Context, unitNumber string, limit int) ([]domain.WasteDeposit, error)
}

type ReportRepository interface {
	PeriodAggregate(ctx context.Context, unitNumber string, from, to time.Time) (*domain.PeriodAggregate, error)
	ListUnitBalances(ctx context.Context) ([]domain.UnitBalance, error)
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// Store bundles all repositories over one backing database and provides the
// atomic batch primitive of the ledger: every write issued through the Store
// passed to the Atomic closure commits together or not at all, and no partial
// application is ever observable by a subsequent read.
type Store interface {
	Units() UnitRepository
	Accounts() AccountRepository
	Transactions() TransactionRepository
	WasteDeposits() WasteDepositRepository
	Reports() ReportRepository
	Users() UserRepository

	Atomic(ctx context.Context, fn func(Store) error) error
}
