package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateExpenseRequest is the payload for creating an expense
type CreateExpenseRequest struct {
	Amount          decimal.Decimal  `json:"amount" validate:"required"`
	Currency        string           `json:"currency" validate:"omitempty,len=3"`
	ConvertedAmount *decimal.Decimal `json:"converted_amount,omitempty"`
	Category        string           `json:"category" validate:"required,max=100"`
	Description     string           `json:"description,omitempty"`
	Recurrence      string           `json:"recurrence" validate:"omitempty,oneof=none daily weekly monthly yearly"`
	ReceiptURL      string           `json:"receipt_url,omitempty" validate:"omitempty,url"`
}

// UpdateExpenseRequest is the payload for updating an expense. Nil fields
// are left unchanged.
type UpdateExpenseRequest struct {
	Amount          *decimal.Decimal `json:"amount,omitempty"`
	ConvertedAmount *decimal.Decimal `json:"converted_amount,omitempty"`
	Category        *string          `json:"category,omitempty" validate:"omitempty,max=100"`
	Description     *string          `json:"description,omitempty"`
	Recurrence      *string          `json:"recurrence,omitempty" validate:"omitempty,oneof=none daily weekly monthly yearly"`
}

// ExpenseResponse is the API representation of an expense
type ExpenseResponse struct {
	ID              uuid.UUID `json:"id"`
	Amount          string    `json:"amount"`
	Currency        string    `json:"currency"`
	ConvertedAmount *string   `json:"converted_amount,omitempty"`
	Category        string    `json:"category"`
	Description     string    `json:"description,omitempty"`
	Recurrence      string    `json:"recurrence"`
	ReceiptURL      string    `json:"receipt_url,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// ListExpensesResponse is the paginated expense listing
type ListExpensesResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
	Total    int64             `json:"total"`
	Offset   int               `json:"offset"`
	Limit    int               `json:"limit"`
}
