package jobs

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"banksampah-backend/internal/domain"
	"banksampah-backend/internal/repository"
)

type MockUnitRepo struct {
	mock.Mock
}

func (m *MockUnitRepo) Create(ctx context.Context, unit *domain.Unit) error {
	args := m.Called(ctx, unit)
	return args.Error(0)
}
func (m *MockUnitRepo) GetByNumber(ctx context.Context, unitNumber string) (*domain.Unit, error) {
	args := m.Called(ctx, unitNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Unit), args.Error(1)
}
func (m *MockUnitRepo) List(ctx context.Context, includeInactive bool) ([]domain.Unit, error) {
	args := m.Called(ctx, includeInactive)
	return args.Get(0).([]domain.Unit), args.Error(1)
}
func (m *MockUnitRepo) Update(ctx context.Context, unit *domain.Unit) error {
	args := m.Called(ctx, unit)
	return args.Error(0)
}
func (m *MockUnitRepo) Deactivate(ctx context.Context, unitNumber string) error {
	args := m.Called(ctx, unitNumber)
	return args.Error(0)
}
func (m *MockUnitRepo) Delete(ctx context.Context, unitNumber string) error {
	args := m.Called(ctx, unitNumber)
	return args.Error(0)
}
func (m *MockUnitRepo) SetActiveAccounts(ctx context.Context, unitNumber string, count int32) error {
	args := m.Called(ctx, unitNumber, count)
	return args.Error(0)
}
func (m *MockUnitRepo) AddToSavings(ctx context.Context, unitNumber string, delta decimal.Decimal) error {
	args := m.Called(ctx, unitNumber, delta)
	return args.Error(0)
}

type MockAccountRepo struct {
	mock.Mock
}

func (m *MockAccountRepo) GetByNumber(ctx context.Context, accountNumber string) (*domain.Account, error) {
	args := m.Called(ctx, accountNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountRepo) ListByUnit(ctx context.Context, unitNumber string) ([]domain.Account, error) {
	args := m.Called(ctx, unitNumber)
	return args.Get(0).([]domain.Account), args.Error(1)
}
func (m *MockAccountRepo) ListAll(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Account), args.Error(1)
}
func (m *MockAccountRepo) CountActiveByUnit(ctx context.Context, unitNumber string) (int32, error) {
	args := m.Called(ctx, unitNumber)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockAccountRepo) CreateIfAbsent(ctx context.Context, account *domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}
func (m *MockAccountRepo) Credit(ctx context.Context, accountNumber string, amount decimal.Decimal) error {
	args := m.Called(ctx, accountNumber, amount)
	return args.Error(0)
}
func (m *MockAccountRepo) DebitGuarded(ctx context.Context, accountNumber string, amount decimal.Decimal) error {
	args := m.Called(ctx, accountNumber, amount)
	return args.Error(0)
}

type MockTransactionRepo struct {
	mock.Mock
}

func (m *MockTransactionRepo) Create(ctx context.Context, tx *domain.Transaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}
func (m *MockTransactionRepo) List(ctx context.Context, filter domain.TransactionFilter, limit int) ([]domain.Transaction, error) {
	args := m.Called(ctx, filter, limit)
	return args.Get(0).([]domain.Transaction), args.Error(1)
}
func (m *MockTransactionRepo) CountByUnit(ctx context.Context, unitNumber string) (int64, error) {
	args := m.Called(ctx, unitNumber)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockTransactionRepo) SumByAccount(ctx context.Context, accountNumber string) (decimal.Decimal, decimal.Decimal, error) {
	args := m.Called(ctx, accountNumber)
	return args.Get(0).(decimal.Decimal), args.Get(1).(decimal.Decimal), args.Error(2)
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

type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendMonthlyStatement(ctx context.Context, toEmail, toName, unitNumber, period string, agg *domain.PeriodAggregate, balance decimal.Decimal) error {
	args := m.Called(ctx, toEmail, toName, unitNumber, period, agg, balance)
	return args.Error(0)
}

type mockStore struct {
	units        *MockUnitRepo
	accounts     *MockAccountRepo
	transactions *MockTransactionRepo
}

func newMockStore() *mockStore {
	return &mockStore{
		units:        new(MockUnitRepo),
		accounts:     new(MockAccountRepo),
		transactions: new(MockTransactionRepo),
	}
}

func (s *mockStore) Units() repository.UnitRepository                 { return s.units }
func (s *mockStore) Accounts() repository.AccountRepository           { return s.accounts }
func (s *mockStore) Transactions() repository.TransactionRepository   { return s.transactions }
func (s *mockStore) WasteDeposits() repository.WasteDepositRepository { return nil }
func (s *mockStore) Reports() repository.ReportRepository             { return nil }
func (s *mockStore) Users() repository.UserRepository                 { return nil }

func (s *mockStore) Atomic(ctx context.Context, fn func(repository.Store) error) error {
	return fn(s)
}
