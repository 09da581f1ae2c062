package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestInsight_Validate(t *testing.T) {
	validUserID := uuid.New()

	tests := []struct {
		name    string
		insight Insight
		wantErr bool
	}{
		{
			name: "valid budget warning",
			insight: Insight{
				UserID:          validUserID,
				Kind:            InsightKindBudgetWarning,
				Message:         "You are nearing your Food budget for this month: spent 80.00 of 100.00.",
				RelatedCategory: "BUDGET_80_Food_2026-8",
			},
			wantErr: false,
		},
		{
			name: "unknown kind",
			insight: Insight{
				UserID:          validUserID,
				Kind:            "FORTUNE_COOKIE",
				Message:         "something",
				RelatedCategory: "key",
			},
			wantErr: true,
		},
		{
			name: "missing message",
			insight: Insight{
				UserID:          validUserID,
				Kind:            InsightKindBudgetWarning,
				RelatedCategory: "key",
			},
			wantErr: true,
		},
		{
			name: "missing deduplication key",
			insight: Insight{
				UserID:  validUserID,
				Kind:    InsightKindBudgetWarning,
				Message: "something",
			},
			wantErr: true,
		},
		{
			name: "missing user",
			insight: Insight{
				Kind:            InsightKindBudgetWarning,
				Message:         "something",
				RelatedCategory: "key",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.insight.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestIsValidInsightKind(t *testing.T) {
	assert.True(t, IsValidInsightKind(InsightKindBudgetWarning))
	assert.True(t, IsValidInsightKind(InsightKindSpendingSpike))
	assert.True(t, IsValidInsightKind(InsightKindPriceIncrease))
	assert.False(t, IsValidInsightKind(""))
	assert.False(t, IsValidInsightKind("budget_warning"))
}

func TestInsightDraft_ToInsight(t *testing.T) {
	userID := uuid.New()
	expenseID := uuid.New()

	draft := InsightDraft{
		Kind:             InsightKindPriceIncrease,
		Message:          "A recurring Entertainment charge went up from 500.00 to 650.00.",
		DedupKey:         "PRICE_INCREASE_" + expenseID.String(),
		RelatedExpenseID: &expenseID,
	}

	insight := draft.ToInsight(userID)

	assert.Equal(t, userID, insight.UserID)
	assert.Equal(t, draft.Kind, insight.Kind)
	assert.Equal(t, draft.Message, insight.Message)
	assert.Equal(t, draft.DedupKey, insight.RelatedCategory)
	assert.Equal(t, &expenseID, insight.RelatedExpenseID)
	assert.False(t, insight.IsRead)
}
