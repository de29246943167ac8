package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Account holds a savings balance. The application only exercises one collective
// account per unit, but the model allows per-resident accounts as well.
//
// TotalSavings is the authoritative balance: at all times it equals the sum of
// deposit amounts minus withdrawal amounts over the account's transaction log,
// and it never goes negative. TotalWithdrawals only ever grows.
type Account struct {
	ID               int64           `json:"id"`
	AccountNumber    string          `json:"account_number"`
	UnitNumber       string          `json:"unit_number"`
	DisplayName      string          `json:"display_name"`
	TotalSavings     decimal.Decimal `json:"total_savings"`
	TotalWithdrawals decimal.Decimal `json:"total_withdrawals"`
	LastTransaction  *time.Time      `json:"last_transaction,omitempty"`
	IsActive         bool            `json:"is_active"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// CollectiveAccountNumber derives the deterministic account number of a unit's
// collective savings account. The derivation is the idempotency key for account
// creation: two concurrent first deposits for the same unit converge on one row.
func CollectiveAccountNumber(unitNumber string) string {
	return fmt.Sprintf("%s-COLLECTIVE", unitNumber)
}

// NewCollectiveAccount returns a zero-balance collective account for a unit.
func NewCollectiveAccount(unitNumber string) *Account {
	return &Account{
		AccountNumber:    CollectiveAccountNumber(unitNumber),
		UnitNumber:       unitNumber,
		DisplayName:      fmt.Sprintf("Kolektif RT %s", unitNumber),
		TotalSavings:     decimal.Zero,
		TotalWithdrawals: decimal.Zero,
		IsActive:         true,
	}
}
