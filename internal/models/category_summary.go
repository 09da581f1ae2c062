package models

import "github.com/shopspring/decimal"

// CategorySummary contains aggregated expense data for one category
type CategorySummary struct {
	Category     string           `json:"category"`
	ExpenseCount int64            `json:"expense_count"`
	TotalSpent   decimal.Decimal  `json:"total_spent"`
	BudgetLimit  *decimal.Decimal `json:"budget_limit,omitempty"`
}
