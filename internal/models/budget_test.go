package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestBudget_Validate(t *testing.T) {
	validUserID := uuid.New()

	tests := []struct {
		name    string
		budget  Budget
		wantErr error
	}{
		{
			name: "valid budget",
			budget: Budget{
				UserID:       validUserID,
				Category:     "Food",
				MonthlyLimit: decimal.NewFromInt(10000),
			},
			wantErr: nil,
		},
		{
			name: "zero limit allowed",
			budget: Budget{
				UserID:       validUserID,
				Category:     "Food",
				MonthlyLimit: decimal.Zero,
			},
			wantErr: nil,
		},
		{
			name: "missing category",
			budget: Budget{
				UserID:       validUserID,
				MonthlyLimit: decimal.NewFromInt(10000),
			},
			wantErr: ErrBudgetCategoryRequired,
		},
		{
			name: "negative limit",
			budget: Budget{
				UserID:       validUserID,
				Category:     "Food",
				MonthlyLimit: decimal.NewFromInt(-1),
			},
			wantErr: ErrNegativeBudgetLimit,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.budget.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBudgetID(t *testing.T) {
	userID := uuid.New()

	id := BudgetID(userID, "Food")
	assert.Equal(t, "budget_"+userID.String()+"_food", id)

	// Same user and category always derive the same key
	assert.Equal(t, id, BudgetID(userID, "Food"))

	// Spaces become underscores, case folds
	assert.Equal(t, "budget_"+userID.String()+"_eating_out", BudgetID(userID, " Eating Out "))

	// Different users never collide
	assert.NotEqual(t, id, BudgetID(uuid.New(), "Food"))
}
