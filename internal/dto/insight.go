package dto

import (
	"time"

	"github.com/google/uuid"
)

// InsightResponse is the API representation of an insight
type InsightResponse struct {
	ID               uuid.UUID  `json:"id"`
	Kind             string     `json:"kind"`
	Message          string     `json:"message"`
	RelatedCategory  string     `json:"related_category"`
	RelatedExpenseID *uuid.UUID `json:"related_expense_id,omitempty"`
	IsRead           bool       `json:"is_read"`
	CreatedAt        time.Time  `json:"created_at"`
}

// RefreshInsightsResponse reports the outcome of an engine cycle together
// with the re-read insight collection
type RefreshInsightsResponse struct {
	Generated bool              `json:"generated"`
	Insights  []InsightResponse `json:"insights"`
}
