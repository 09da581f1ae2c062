package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateFriendRequest is the payload for adding a shared-expense contact
type CreateFriendRequest struct {
	Name  string `json:"name" validate:"required,max=100"`
	Email string `json:"email,omitempty" validate:"omitempty,email"`
}

// UpdateFriendBalanceRequest adjusts a friend's running balance
type UpdateFriendBalanceRequest struct {
	Delta decimal.Decimal `json:"delta" validate:"required"`
}

// FriendResponse is the API representation of a friend
type FriendResponse struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Email   string    `json:"email,omitempty"`
	Balance string    `json:"balance"`
}
