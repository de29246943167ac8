package domain

import "github.com/shopspring/decimal"

// PeriodAggregate summarizes ledger activity inside a date window, optionally
// scoped to one unit.
type PeriodAggregate struct {
	TotalWeight      decimal.Decimal `json:"total_weight"`
	TotalDeposited   decimal.Decimal `json:"total_deposited"`
	TotalWithdrawn   decimal.Decimal `json:"total_withdrawn"`
	TransactionCount int64           `json:"transaction_count"`
}

// UnitBalance is one dashboard row: a unit together with its collective
// account's authoritative balance.
type UnitBalance struct {
	UnitNumber    string          `json:"unit_number"`
	LeaderName    string          `json:"leader_name"`
	ActiveMembers int32           `json:"active_members"`
	Balance       decimal.Decimal `json:"balance"`
	IsActive      bool            `json:"is_active"`
}
