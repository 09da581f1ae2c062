package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SetBudgetRequest creates or replaces a per-category monthly budget
type SetBudgetRequest struct {
	Category     string          `json:"category" validate:"required,max=100"`
	MonthlyLimit decimal.Decimal `json:"monthly_limit" validate:"required"`
}

// BudgetResponse is the API representation of a budget
type BudgetResponse struct {
	ID           string    `json:"id"`
	Category     string    `json:"category"`
	MonthlyLimit string    `json:"monthly_limit"`
	UpdatedAt    time.Time `json:"updated_at"`
}
