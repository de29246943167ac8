package service

import (
	"context"
	"fmt"

	"banksampah-backend/internal/domain"
	"banksampah-backend/internal/repository"
)

type collectiveAccountResolver struct {
	accountRepo repository.AccountRepository
}

func NewAccountResolver(accountRepo repository.AccountRepository) AccountResolver {
	return &collectiveAccountResolver{accountRepo: accountRepo}
}

// Resolve derives the deterministic collective account number and creates the
// account with zero balances when it does not exist yet. Creation goes through
// the store's create-if-absent primitive, so two concurrent first resolutions
// for the same unit end up with a single account row.
func (r *collectiveAccountResolver) Resolve(ctx context.Context, unitNumber string) (*domain.Account, error) {
	if unitNumber == "" {
		return nil, fmt.Errorf("%w: unit number is required", domain.ErrValidation)
	}

	account := domain.NewCollectiveAccount(unitNumber)
	if err := r.accountRepo.CreateIfAbsent(ctx, account); err != nil {
		return nil, err
	}
	return r.accountRepo.GetByNumber(ctx, account.AccountNumber)
}
