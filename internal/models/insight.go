package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Insight kinds. SpendingSpike is reserved for a future evaluator and is
// never produced by the current engine.
const (
	InsightKindBudgetWarning = "BUDGET_WARNING"
	InsightKindSpendingSpike = "SPENDING_SPIKE"
	InsightKindPriceIncrease = "PRICE_INCREASE"
)

var (
	ErrInvalidInsightKind     = errors.New("invalid insight kind")
	ErrInsightMessageRequired = errors.New("insight message is required")
)

// Insight is an automatically generated advisory record surfaced to the
// user. RelatedCategory doubles as the deduplication key: an opaque string
// identifying the (kind, condition instance) pair, not necessarily a
// literal category name. The unique index on (user_id, kind,
// related_category) makes a concurrent duplicate insert a benign no-op.
type Insight struct {
	ID               uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	UserID           uuid.UUID  `gorm:"type:uuid;not null;index;uniqueIndex:idx_insights_dedup" json:"user_id"`
	Kind             string     `gorm:"type:varchar(30);not null;uniqueIndex:idx_insights_dedup" json:"kind"`
	Message          string     `gorm:"type:text;not null" json:"message"`
	RelatedCategory  string     `gorm:"type:varchar(255);not null;uniqueIndex:idx_insights_dedup" json:"related_category"`
	RelatedExpenseID *uuid.UUID `gorm:"type:uuid;index" json:"related_expense_id,omitempty"`
	IsRead           bool       `gorm:"not null;default:false" json:"is_read"`
	CreatedAt        time.Time  `gorm:"not null;index" json:"created_at"`

	// Associations
	User User `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate hook for Insight
func (i *Insight) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}

	if i.CreatedAt.IsZero() {
		i.CreatedAt = time.Now()
	}

	return i.Validate()
}

// Validate validates the insight fields
func (i *Insight) Validate() error {
	if i.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}

	if !IsValidInsightKind(i.Kind) {
		return ErrInvalidInsightKind
	}

	if i.Message == "" {
		return ErrInsightMessageRequired
	}

	if i.RelatedCategory == "" {
		return errors.New("insight deduplication key is required")
	}

	return nil
}

// TableName returns the table name for Insight
func (i *Insight) TableName() string {
	return "insights"
}

// IsValidInsightKind checks if the insight kind is valid
func IsValidInsightKind(kind string) bool {
	switch kind {
	case InsightKindBudgetWarning, InsightKindSpendingSpike, InsightKindPriceIncrease:
		return true
	default:
		return false
	}
}

// InsightDraft is an evaluator's candidate insight before the engine stamps
// the owning user and persists it
type InsightDraft struct {
	Kind             string
	Message          string
	DedupKey         string
	RelatedExpenseID *uuid.UUID
}

// ToInsight materializes the draft for a user
func (d InsightDraft) ToInsight(userID uuid.UUID) Insight {
	return Insight{
		UserID:           userID,
		Kind:             d.Kind,
		Message:          d.Message,
		RelatedCategory:  d.DedupKey,
		RelatedExpenseID: d.RelatedExpenseID,
	}
}
