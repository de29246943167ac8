package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"banksampah-backend/internal/domain"
)

type UnitService interface {
	CreateUnit(ctx context.Context, input CreateUnitInput) (*domain.Unit, error)
	GetUnit(ctx context.Context, unitNumber string) (*domain.Unit, error)
	ListUnits(ctx context.Context, includeInactive bool) ([]domain.Unit, error)
	UpdateUnit(ctx context.Context, unitNumber string, input UpdateUnitInput) (*domain.Unit, error)
	DeactivateUnit(ctx context.Context, unitNumber string) error
	DeleteUnit(ctx context.Context, unitNumber string) error
}

// AccountResolver maps a unit number to its collective savings account,
// creating it with zero balances on first reference. Resolution is idempotent
// under concurrency.
type AccountResolver interface {
	Resolve(ctx context.Context, unitNumber string) (*domain.Account, error)
}

type DepositService interface {
	RecordDeposit(ctx context.Context, input RecordDepositInput) (*domain.WasteDeposit, error)
	ListWasteDeposits(ctx context.Context, unitNumber string, limit int) ([]domain.WasteDeposit, error)
}

type WithdrawalService interface {
	RecordWithdrawal(ctx context.Context, input RecordWithdrawalInput) (*domain.Transaction, error)
}

type ReportService interface {
	ListRecentTransactions(ctx context.Context, filter domain.TransactionFilter, limit int) ([]domain.Transaction, error)
	GetUnitBalance(ctx context.Context, unitNumber string) (decimal.Decimal, error)
	GetPeriodAggregate(ctx context.Context, unitNumber string, from, to time.Time) (*domain.PeriodAggregate, error)
	ListUnitBalances(ctx context.Context) ([]domain.UnitBalance, error)
}

type AuthService interface {
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}

type EmailService interface {
	SendMonthlyStatement(ctx context.Context, toEmail, toName, unitNumber, period string, agg *domain.PeriodAggregate, balance decimal.Decimal) error
}

type CreateUnitInput struct {
	UnitNumber   string `validate:"required"`
	LeaderName   string `validate:"required"`
	LeaderEmail  string `validate:"omitempty,email"`
	Phone        string
	Address      string
	TotalMembers int32 `validate:"gte=0"`
}

type UpdateUnitInput struct {
	LeaderName   string `validate:"required"`
	LeaderEmail  string `validate:"omitempty,email"`
	Phone        string
	Address      string
	TotalMembers int32 `validate:"gte=0"`
	IsActive     bool
}

type RecordDepositInput struct {
	UnitNumber  string            `validate:"required"`
	Items       []domain.WasteItem `validate:"required,min=1"`
	DepositDate time.Time
	ProcessedBy string `validate:"required"`
	Notes       string
}

type RecordWithdrawalInput struct {
	AccountNumber string `validate:"required"`
	Amount        decimal.Decimal
	Description   string `validate:"required"`
	ProcessedBy   string `validate:"required"`
}
