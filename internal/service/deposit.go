package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"banksampah-backend/internal/domain"
	"banksampah-backend/internal/logger"
	"banksampah-backend/internal/repository"
)

type depositService struct {
	store    repository.Store
	resolver AccountResolver
}

func NewDepositService(store repository.Store, resolver AccountResolver) DepositService {
	return &depositService{store: store, resolver: resolver}
}

// RecordDeposit converts a weighed waste intake into a credit on the unit's
// collective account. The waste deposit record, its ledger transaction, the
// account credit and the unit's cached mirror all commit in one atomic batch;
// a failure anywhere leaves no trace of the deposit.
func (s *depositService) RecordDeposit(ctx context.Context, input RecordDepositInput) (*domain.WasteDeposit, error) {
	logger.EnterMethod("depositService.RecordDeposit", "unit", input.UnitNumber, "items", len(input.Items))

	if err := checkInput(input); err != nil {
		return nil, err
	}
	if err := domain.ValidateItems(input.Items); err != nil {
		return nil, err
	}

	unit, err := s.store.Units().GetByNumber(ctx, input.UnitNumber)
	if err != nil {
		logger.ExitMethodWithError("depositService.RecordDeposit", err, "unit", input.UnitNumber)
		return nil, err
	}
	if !unit.IsActive {
		return nil, fmt.Errorf("%w: unit %s is inactive", domain.ErrValidation, unit.UnitNumber)
	}

	account, err := s.resolver.Resolve(ctx, input.UnitNumber)
	if err != nil {
		logger.ExitMethodWithError("depositService.RecordDeposit", err, "unit", input.UnitNumber)
		return nil, err
	}

	totalWeight, totalAmount := domain.ComputeTotals(input.Items)

	depositDate := input.DepositDate
	if depositDate.IsZero() {
		depositDate = time.Now()
	}

	deposit := &domain.WasteDeposit{
		ID:            uuid.NewString(),
		UnitNumber:    unit.UnitNumber,
		AccountNumber: account.AccountNumber,
		DepositDate:   depositDate,
		Items:         input.Items,
		TotalWeight:   totalWeight,
		TotalAmount:   totalAmount,
		Notes:         input.Notes,
		ProcessedBy:   input.ProcessedBy,
	}

	tx := &domain.Transaction{
		ID:             uuid.NewString(),
		AccountNumber:  account.AccountNumber,
		UnitNumber:     unit.UnitNumber,
		Type:           domain.TransactionTypeDeposit,
		Amount:         totalAmount,
		Date:           depositDate,
		Description:    fmt.Sprintf("Setoran sampah - %skg", totalWeight.String()),
		ProcessedBy:    input.ProcessedBy,
		WasteDepositID: &deposit.ID,
	}

	err = s.store.Atomic(ctx, func(batch repository.Store) error {
		if err := batch.WasteDeposits().Create(ctx, deposit); err != nil {
			return err
		}
		if err := batch.Transactions().Create(ctx, tx); err != nil {
			return err
		}
		if err := batch.Accounts().Credit(ctx, account.AccountNumber, totalAmount); err != nil {
			return err
		}
		return batch.Units().AddToSavings(ctx, unit.UnitNumber, totalAmount)
	})
	if err != nil {
		logger.ExitMethodWithError("depositService.RecordDeposit", err, "unit", input.UnitNumber)
		return nil, err
	}

	logger.ExitMethod("depositService.RecordDeposit",
		"unit", unit.UnitNumber, "deposit_id", deposit.ID, "amount", totalAmount.String())
	return deposit, nil
}

func (s *depositService) ListWasteDeposits(ctx context.Context, unitNumber string, limit int) ([]domain.WasteDeposit, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return s.store.WasteDeposits().List(ctx, unitNumber, limit)
}
