package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// WasteItem is one weighed line of a deposit. LineTotal = WeightKg * PricePerKg.
type WasteItem struct {
	WasteType  string          `json:"waste_type"`
	WeightKg   decimal.Decimal `json:"weight_kg"`
	PricePerKg decimal.Decimal `json:"price_per_kg"`
	LineTotal  decimal.Decimal `json:"line_total"`
}

// WasteDeposit is the append-only record of a physical waste intake. Every
// deposit has exactly one ledger transaction whose amount equals TotalAmount.
type WasteDeposit struct {
	ID            string          `json:"id"`
	UnitNumber    string          `json:"unit_number"`
	AccountNumber string          `json:"account_number"`
	DepositDate   time.Time       `json:"deposit_date"`
	Items         []WasteItem     `json:"items"`
	TotalWeight   decimal.Decimal `json:"total_weight"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	Notes         string          `json:"notes,omitempty"`
	ProcessedBy   string          `json:"processed_by"`
	CreatedAt     time.Time       `json:"created_at"`
}

// ComputeTotals fills LineTotal on every item and returns the deposit's total
// weight and total amount. All arithmetic is exact decimal.
func ComputeTotals(items []WasteItem) (totalWeight, totalAmount decimal.Decimal) {
	totalWeight = decimal.Zero
	totalAmount = decimal.Zero
	for i := range items {
		items[i].LineTotal = items[i].WeightKg.Mul(items[i].PricePerKg)
		totalWeight = totalWeight.Add(items[i].WeightKg)
		totalAmount = totalAmount.Add(items[i].LineTotal)
	}
	return totalWeight, totalAmount
}

// ValidateItems rejects empty intakes, non-positive weights and negative prices.
func ValidateItems(items []WasteItem) error {
	if len(items) == 0 {
		return fmt.Errorf("%w: deposit requires at least one waste item", ErrValidation)
	}
	for i, item := range items {
		if item.WasteType == "" {
			return fmt.Errorf("%w: item %d is missing a waste type", ErrValidation, i)
		}
		if !item.WeightKg.IsPositive() {
			return fmt.Errorf("%w: item %d weight must be greater than zero", ErrValidation, i)
		}
		if item.PricePerKg.IsNegative() {
			return fmt.Errorf("%w: item %d price per kg must not be negative", ErrValidation, i)
		}
	}
	return nil
}
