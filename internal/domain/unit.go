package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Unit is a neighborhood group ("RT") that deposits waste collectively.
// TotalSavings is a cached mirror of the unit's collective account balance and is
// only ever updated inside the same atomic batch as the account itself.
type Unit struct {
	ID           int64           `json:"id"`
	UnitNumber   string          `json:"unit_number"`
	LeaderName   string          `json:"leader_name"`
	LeaderEmail  string          `json:"leader_email,omitempty"`
	Phone        string          `json:"phone"`
	Address      string          `json:"address"`
	TotalMembers int32           `json:"total_members"`
	ActiveMembers int32          `json:"active_members"`
	TotalSavings decimal.Decimal `json:"total_savings"`
	IsActive     bool            `json:"is_active"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
