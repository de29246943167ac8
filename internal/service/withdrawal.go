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

type withdrawalService struct {
	store repository.Store
}

func NewWithdrawalService(store repository.Store) WithdrawalService {
	return &withdrawalService{store: store}
}

// RecordWithdrawal debits an account and records the audit transaction in one
// atomic batch. The balance is pre-checked for an early answer, but the
// authoritative check is the guarded decrement inside the batch: the debit only
// applies when the balance still covers the amount at commit time, so two
// concurrent withdrawals can never jointly overdraw.
func (s *withdrawalService) RecordWithdrawal(ctx context.Context, input RecordWithdrawalInput) (*domain.Transaction, error) {
	logger.EnterMethod("withdrawalService.RecordWithdrawal",
		"account", input.AccountNumber, "amount", input.Amount.String())

	if err := checkInput(input); err != nil {
		return nil, err
	}
	if !input.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: withdrawal amount must be greater than zero", domain.ErrValidation)
	}

	account, err := s.store.Accounts().GetByNumber(ctx, input.AccountNumber)
	if err != nil {
		logger.ExitMethodWithError("withdrawalService.RecordWithdrawal", err, "account", input.AccountNumber)
		return nil, err
	}
	if input.Amount.GreaterThan(account.TotalSavings) {
		return nil, domain.ErrInsufficientFunds
	}

	tx := &domain.Transaction{
		ID:            uuid.NewString(),
		AccountNumber: account.AccountNumber,
		UnitNumber:    account.UnitNumber,
		Type:          domain.TransactionTypeWithdrawal,
		Amount:        input.Amount,
		Date:          time.Now(),
		Description:   input.Description,
		ProcessedBy:   input.ProcessedBy,
	}

	err = s.store.Atomic(ctx, func(batch repository.Store) error {
		if err := batch.Transactions().Create(ctx, tx); err != nil {
			return err
		}
		if err := batch.Accounts().DebitGuarded(ctx, account.AccountNumber, input.Amount); err != nil {
			return err
		}
		return batch.Units().AddToSavings(ctx, account.UnitNumber, input.Amount.Neg())
	})
	if err != nil {
		logger.ExitMethodWithError("withdrawalService.RecordWithdrawal", err, "account", input.AccountNumber)
		return nil, err
	}

	logger.ExitMethod("withdrawalService.RecordWithdrawal",
		"account", account.AccountNumber, "transaction_id", tx.ID, "amount", input.Amount.String())
	return tx, nil
}
