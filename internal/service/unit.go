package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"banksampah-backend/internal/domain"
	"banksampah-backend/internal/logger"
	"banksampah-backend/internal/repository"
)

type unitService struct {
	unitRepo repository.UnitRepository
	txRepo   repository.TransactionRepository
}

func NewUnitService(unitRepo repository.UnitRepository, txRepo repository.TransactionRepository) UnitService {
	return &unitService{unitRepo: unitRepo, txRepo: txRepo}
}

func (s *unitService) CreateUnit(ctx context.Context, input CreateUnitInput) (*domain.Unit, error) {
	logger.EnterMethod("unitService.CreateUnit", "unit", input.UnitNumber)

	if err := checkInput(input); err != nil {
		return nil, err
	}

	unit := &domain.Unit{
		UnitNumber:   input.UnitNumber,
		LeaderName:   input.LeaderName,
		LeaderEmail:  input.LeaderEmail,
		Phone:        input.Phone,
		Address:      input.Address,
		TotalMembers: input.TotalMembers,
		TotalSavings: decimal.Zero,
		IsActive:     true,
	}
	if err := s.unitRepo.Create(ctx, unit); err != nil {
		logger.ExitMethodWithError("unitService.CreateUnit", err, "unit", input.UnitNumber)
		return nil, err
	}

	logger.ExitMethod("unitService.CreateUnit", "unit", unit.UnitNumber, "id", unit.ID)
	return unit, nil
}

func (s *unitService) GetUnit(ctx context.Context, unitNumber string) (*domain.Unit, error) {
	return s.unitRepo.GetByNumber(ctx, unitNumber)
}

func (s *unitService) ListUnits(ctx context.Context, includeInactive bool) ([]domain.Unit, error) {
	return s.unitRepo.List(ctx, includeInactive)
}

func (s *unitService) UpdateUnit(ctx context.Context, unitNumber string, input UpdateUnitInput) (*domain.Unit, error) {
	logger.EnterMethod("unitService.UpdateUnit", "unit", unitNumber)

	if err := checkInput(input); err != nil {
		return nil, err
	}

	unit, err := s.unitRepo.GetByNumber(ctx, unitNumber)
	if err != nil {
		return nil, err
	}

	unit.LeaderName = input.LeaderName
	unit.LeaderEmail = input.LeaderEmail
	unit.Phone = input.Phone
	unit.Address = input.Address
	unit.TotalMembers = input.TotalMembers
	unit.IsActive = input.IsActive

	if err := s.unitRepo.Update(ctx, unit); err != nil {
		logger.ExitMethodWithError("unitService.UpdateUnit", err, "unit", unitNumber)
		return nil, err
	}

	logger.ExitMethod("unitService.UpdateUnit", "unit", unitNumber)
	return unit, nil
}

func (s *unitService) DeactivateUnit(ctx context.Context, unitNumber string) error {
	return s.unitRepo.Deactivate(ctx, unitNumber)
}

// DeleteUnit hard-deletes a unit only while no ledger transaction references
// it. Units with history can only be deactivated; the transaction log is
// append-only and must never lose its unit reference.
func (s *unitService) DeleteUnit(ctx context.Context, unitNumber string) error {
	logger.EnterMethod("unitService.DeleteUnit", "unit", unitNumber)

	count, err := s.txRepo.CountByUnit(ctx, unitNumber)
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("%w: unit %s has %d transactions, deactivate it instead",
			domain.ErrUnitHasTransactions, unitNumber, count)
	}

	if err := s.unitRepo.Delete(ctx, unitNumber); err != nil {
		logger.ExitMethodWithError("unitService.DeleteUnit", err, "unit", unitNumber)
		return err
	}

	logger.ExitMethod("unitService.DeleteUnit", "unit", unitNumber)
	return nil
}
