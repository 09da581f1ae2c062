package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrBudgetCategoryRequired = errors.New("budget category is required")
	ErrNegativeBudgetLimit    = errors.New("budget limit cannot be negative")
)

// Budget is a per-category monthly spending ceiling. Its primary key is
// derived from the owning user and the category so each user can hold at
// most one budget per category.
type Budget struct {
	ID           string          `gorm:"type:varchar(255);primary_key" json:"id"`
	UserID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Category     string          `gorm:"type:varchar(100);not null" json:"category"`
	MonthlyLimit decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"monthly_limit"`
	CreatedAt    time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"not null" json:"updated_at"`

	// Associations
	User User `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate hook for Budget
func (b *Budget) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = BudgetID(b.UserID, b.Category)
	}

	now := time.Now()
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	if b.UpdatedAt.IsZero() {
		b.UpdatedAt = now
	}

	return b.Validate()
}

// BeforeUpdate hook for Budget
func (b *Budget) BeforeUpdate(tx *gorm.DB) error {
	b.UpdatedAt = time.Now()
	return b.Validate()
}

// Validate validates the budget fields
func (b *Budget) Validate() error {
	if b.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}

	if b.Category == "" {
		return ErrBudgetCategoryRequired
	}

	if b.MonthlyLimit.IsNegative() {
		return ErrNegativeBudgetLimit
	}

	return nil
}

// TableName returns the table name for Budget
func (b *Budget) TableName() string {
	return "budgets"
}

// BudgetID derives the category-scoped budget identifier
func BudgetID(userID uuid.UUID, category string) string {
	slug := strings.ToLower(strings.TrimSpace(category))
	slug = strings.ReplaceAll(slug, " ", "_")
	return "budget_" + userID.String() + "_" + slug
}
