package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Friend is a shared-expense contact belonging to a user. Balance is
// positive when the friend owes the user and negative when the user owes
// the friend.
type Friend struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Name      string          `gorm:"type:varchar(100);not null" json:"name"`
	Email     string          `gorm:"type:varchar(255)" json:"email,omitempty"`
	Balance   decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"balance"`
	CreatedAt time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time       `gorm:"not null" json:"updated_at"`

	// Associations
	User User `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate hook for Friend
func (f *Friend) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}

	now := time.Now()
	if f.CreatedAt.IsZero() {
		f.CreatedAt = now
	}
	if f.UpdatedAt.IsZero() {
		f.UpdatedAt = now
	}

	return f.Validate()
}

// BeforeUpdate hook for Friend
func (f *Friend) BeforeUpdate(tx *gorm.DB) error {
	f.UpdatedAt = time.Now()
	return f.Validate()
}

// Validate validates the friend fields
func (f *Friend) Validate() error {
	if f.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}

	if f.Name == "" {
		return errors.New("friend name is required")
	}

	return nil
}

// TableName returns the table name for Friend
func (f *Friend) TableName() string {
	return "friends"
}
