package http

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"banksampah-backend/internal/domain"
	"banksampah-backend/internal/service"
)

type MockDepositService struct {
	mock.Mock
}

func (m *MockDepositService) RecordDeposit(ctx context.Context, input service.RecordDepositInput) (*domain.WasteDeposit, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WasteDeposit), args.Error(1)
}

func (m *MockDepositService) ListWasteDeposits(ctx context.Context, unitNumber string, limit int) ([]domain.WasteDeposit, error) {
	args := m.Called(ctx, unitNumber, limit)
	return args.Get(0).([]domain.WasteDeposit), args.Error(1)
}

type MockWithdrawalService struct {
	mock.Mock
}

func (m *MockWithdrawalService) RecordWithdrawal(ctx context.Context, input service.RecordWithdrawalInput) (*domain.Transaction, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) ListRecentTransactions(ctx context.Context, filter domain.TransactionFilter, limit int) ([]domain.Transaction, error) {
	args := m.Called(ctx, filter, limit)
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockReportService) GetUnitBalance(ctx context.Context, unitNumber string) (decimal.Decimal, error) {
	args := m.Called(ctx, unitNumber)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockReportService) GetPeriodAggregate(ctx context.Context, unitNumber string, from, to time.Time) (*domain.PeriodAggregate, error) {
	args := m.Called(ctx, unitNumber, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PeriodAggregate), args.Error(1)
}

func (m *MockReportService) ListUnitBalances(ctx context.Context) ([]domain.UnitBalance, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.UnitBalance), args.Error(1)
}
