package services

import (
	"fmt"
	"sort"
	"time"

	"fintrack/internal/models"

	"github.com/google/uuid"
)

// PriceIncreaseEvaluator detects price increases within recurring-expense
// series. A series is the set of recurring expenses sharing description
// and category; only the latest transition (most recent entry vs. the one
// before it) is examined, so a long series with several past increases
// reports the most recent one only.
type PriceIncreaseEvaluator struct{}

// NewPriceIncreaseEvaluator creates a new price increase evaluator
func NewPriceIncreaseEvaluator() InsightEvaluator {
	return &PriceIncreaseEvaluator{}
}

type seriesKey struct {
	description string
	category    string
}

// Evaluate compares the two most recent entries of each recurring series
func (e *PriceIncreaseEvaluator) Evaluate(snapshot *InsightSnapshot, now time.Time) []models.InsightDraft {
	series := groupRecurringSeries(snapshot.Expenses)

	keys := make([]seriesKey, 0, len(series))
	for key := range series {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].category != keys[j].category {
			return keys[i].category < keys[j].category
		}
		return keys[i].description < keys[j].description
	})

	var drafts []models.InsightDraft
	for _, key := range keys {
		group := series[key]
		if len(group) < 2 {
			continue
		}

		sort.SliceStable(group, func(i, j int) bool {
			return group[i].CreatedAt.After(group[j].CreatedAt)
		})

		latest, previous := group[0], group[1]
		if !latest.Amount.GreaterThan(previous.Amount) {
			continue
		}

		if hasPriceIncreaseFor(snapshot.Insights, latest.ID) {
			continue
		}

		expenseID := latest.ID
		drafts = append(drafts, models.InsightDraft{
			Kind: models.InsightKindPriceIncrease,
			Message: fmt.Sprintf("A recurring %s charge went up from %s to %s.",
				key.category, previous.Amount.StringFixed(2), latest.Amount.StringFixed(2)),
			DedupKey:         fmt.Sprintf("PRICE_INCREASE_%s", latest.ID),
			RelatedExpenseID: &expenseID,
		})
	}

	return drafts
}

// groupRecurringSeries buckets recurring expenses by (description,
// category). A missing description becomes the empty string, so unnamed
// recurring expenses in the same category collapse into one series; that
// approximation is accepted rather than guessed around.
func groupRecurringSeries(expenses []models.Expense) map[seriesKey][]models.Expense {
	series := make(map[seriesKey][]models.Expense)
	for i := range expenses {
		exp := expenses[i]
		if !exp.IsRecurring() {
			continue
		}
		key := seriesKey{description: exp.Description, category: exp.Category}
		series[key] = append(series[key], exp)
	}
	return series
}

// hasPriceIncreaseFor reports whether a PRICE_INCREASE insight already
// references the triggering expense
func hasPriceIncreaseFor(insights []models.Insight, expenseID uuid.UUID) bool {
	for i := range insights {
		ins := &insights[i]
		if ins.Kind != models.InsightKindPriceIncrease || ins.RelatedExpenseID == nil {
			continue
		}
		if *ins.RelatedExpenseID == expenseID {
			return true
		}
	}
	return false
}
