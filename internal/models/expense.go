package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	RecurrenceNone    = "none"
	RecurrenceDaily   = "daily"
	RecurrenceWeekly  = "weekly"
	RecurrenceMonthly = "monthly"
	RecurrenceYearly  = "yearly"
)

var (
	ErrInvalidRecurrence    = errors.New("invalid recurrence kind")
	ErrInvalidExpenseAmount = errors.New("expense amount must be positive")
	ErrCategoryRequired     = errors.New("expense category is required")
)

// Expense represents a single spending record. ConvertedAmount holds the
// base-currency equivalent when the expense was entered in a foreign
// currency and is preferred over Amount for cross-currency aggregation.
type Expense struct {
	ID              uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	UserID          uuid.UUID        `gorm:"type:uuid;not null;index" json:"user_id"`
	Amount          decimal.Decimal  `gorm:"type:decimal(15,2);not null" json:"amount"`
	Currency        string           `gorm:"type:varchar(3);not null;default:'USD'" json:"currency"`
	ConvertedAmount *decimal.Decimal `gorm:"type:decimal(15,2)" json:"converted_amount,omitempty"`
	Category        string           `gorm:"type:varchar(100);not null;index" json:"category"`
	Description     string           `gorm:"type:text" json:"description,omitempty"`
	Recurrence      string           `gorm:"type:varchar(20);not null;default:'none'" json:"recurrence"`
	ReceiptURL      string           `gorm:"type:text" json:"receipt_url,omitempty"`
	CreatedAt       time.Time        `gorm:"not null;index" json:"created_at"`
	UpdatedAt       time.Time        `gorm:"not null" json:"updated_at"`

	// Associations
	User User `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate hook for Expense
func (e *Expense) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}

	if e.Recurrence == "" {
		e.Recurrence = RecurrenceNone
	}

	if e.Currency == "" {
		e.Currency = "USD"
	}

	// Set timestamps if not already set (for tests)
	now := time.Now()
	if e.CreatedAt.IsZero() {
		e.CreatedAt = now
	}
	if e.UpdatedAt.IsZero() {
		e.UpdatedAt = now
	}

	return e.Validate()
}

// BeforeUpdate hook for Expense
func (e *Expense) BeforeUpdate(tx *gorm.DB) error {
	e.UpdatedAt = time.Now()
	return e.Validate()
}

// Validate validates the expense fields
func (e *Expense) Validate() error {
	if e.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}

	if e.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidExpenseAmount
	}

	if e.Category == "" {
		return ErrCategoryRequired
	}

	if !IsValidRecurrence(e.Recurrence) {
		return ErrInvalidRecurrence
	}

	return nil
}

// EffectiveAmount returns the amount to use for base-currency aggregation:
// the converted amount when present, the raw amount otherwise.
func (e *Expense) EffectiveAmount() decimal.Decimal {
	if e.ConvertedAmount != nil {
		return *e.ConvertedAmount
	}
	return e.Amount
}

// IsRecurring returns true if the expense belongs to a recurring series
func (e *Expense) IsRecurring() bool {
	return e.Recurrence != "" && e.Recurrence != RecurrenceNone
}

// TableName returns the table name for Expense
func (e *Expense) TableName() string {
	return "expenses"
}

// IsValidRecurrence checks if the recurrence kind is valid
func IsValidRecurrence(recurrence string) bool {
	switch recurrence {
	case RecurrenceNone, RecurrenceDaily, RecurrenceWeekly, RecurrenceMonthly, RecurrenceYearly:
		return true
	default:
		return false
	}
}
