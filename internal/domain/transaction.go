package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionTypeDeposit    TransactionType = "deposit"
	TransactionTypeWithdrawal TransactionType = "withdrawal"
)

// Transaction is one append-only ledger entry. Amounts are always positive; the
// Type field decides whether it credits or debits the account.
type Transaction struct {
	ID             string          `json:"id"`
	AccountNumber  string          `json:"account_number"`
	UnitNumber     string          `json:"unit_number"`
	Type           TransactionType `json:"type"`
	Amount         decimal.Decimal `json:"amount"`
	Date           time.Time       `json:"date"`
	Description    string          `json:"description"`
	ProcessedBy    string          `json:"processed_by"`
	WasteDepositID *string         `json:"waste_deposit_id,omitempty"` // deposits only
	CreatedAt      time.Time       `json:"created_at"`
}

// TransactionFilter narrows transaction listings. Zero values mean "no filter".
type TransactionFilter struct {
	UnitNumber    string
	AccountNumber string
	From          time.Time
	To            time.Time
}
