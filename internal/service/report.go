package service

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"banksampah-backend/internal/domain"
	"banksampah-backend/internal/repository"
)

type reportService struct {
	unitRepo    repository.UnitRepository
	accountRepo repository.AccountRepository
	txRepo      repository.TransactionRepository
	reportRepo  repository.ReportRepository
}

func NewReportService(
	unitRepo repository.UnitRepository,
	accountRepo repository.AccountRepository,
	txRepo repository.TransactionRepository,
	reportRepo repository.ReportRepository,
) ReportService {
	return &reportService{
		unitRepo:    unitRepo,
		accountRepo: accountRepo,
		txRepo:      txRepo,
		reportRepo:  reportRepo,
	}
}

func (s *reportService) ListRecentTransactions(ctx context.Context, filter domain.TransactionFilter, limit int) ([]domain.Transaction, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	return s.txRepo.List(ctx, filter, limit)
}

// GetUnitBalance reads the authoritative balance from the unit's collective
// account. A unit that never deposited has no account yet and reports zero.
func (s *reportService) GetUnitBalance(ctx context.Context, unitNumber string) (decimal.Decimal, error) {
	if _, err := s.unitRepo.GetByNumber(ctx, unitNumber); err != nil {
		return decimal.Zero, err
	}

	account, err := s.accountRepo.GetByNumber(ctx, domain.CollectiveAccountNumber(unitNumber))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return decimal.Zero, nil
		}
		return decimal.Zero, err
	}
	return account.TotalSavings, nil
}

func (s *reportService) GetPeriodAggregate(ctx context.Context, unitNumber string, from, to time.Time) (*domain.PeriodAggregate, error) {
	return s.reportRepo.PeriodAggregate(ctx, unitNumber, from, to)
}

func (s *reportService) ListUnitBalances(ctx context.Context) ([]domain.UnitBalance, error) {
	return s.reportRepo.ListUnitBalances(ctx)
}
