package services

import (
	"fmt"
	"time"

	"fintrack/internal/models"

	"github.com/shopspring/decimal"
)

var (
	criticalThreshold = decimal.NewFromInt(100)
	warningThreshold  = decimal.NewFromInt(80)
	oneHundred        = decimal.NewFromInt(100)
)

// BudgetThresholdEvaluator emits BUDGET_WARNING insights when a category's
// spend for the current calendar month crosses 80% or 100% of its budget.
// Deduplication keys are scoped to the category and month, so each
// threshold fires at most once per category per month.
type BudgetThresholdEvaluator struct{}

// NewBudgetThresholdEvaluator creates a new budget threshold evaluator
func NewBudgetThresholdEvaluator() InsightEvaluator {
	return &BudgetThresholdEvaluator{}
}

// Evaluate checks every budget against the current month's spend
func (e *BudgetThresholdEvaluator) Evaluate(snapshot *InsightSnapshot, now time.Time) []models.InsightDraft {
	if len(snapshot.Budgets) == 0 {
		return nil
	}

	spendByCategory := monthlySpendByCategory(snapshot.Expenses, now)

	var drafts []models.InsightDraft
	for _, budget := range snapshot.Budgets {
		spent := spendByCategory[budget.Category]
		exceededKey := budgetDedupKey(criticalThreshold, budget.Category, now)
		nearingKey := budgetDedupKey(warningThreshold, budget.Category, now)

		switch {
		case isOverBudget(spent, budget.MonthlyLimit):
			if hasInsightWithKey(snapshot.Insights, models.InsightKindBudgetWarning, exceededKey) {
				continue
			}
			drafts = append(drafts, models.InsightDraft{
				Kind: models.InsightKindBudgetWarning,
				Message: fmt.Sprintf("You have exceeded your %s budget for this month: spent %s of %s.",
					budget.Category, spent.StringFixed(2), budget.MonthlyLimit.StringFixed(2)),
				DedupKey: exceededKey,
			})

		case isNearingBudget(spent, budget.MonthlyLimit):
			// An existing critical insight for the month also suppresses
			// the warning.
			if hasInsightWithKey(snapshot.Insights, models.InsightKindBudgetWarning, nearingKey) ||
				hasInsightWithKey(snapshot.Insights, models.InsightKindBudgetWarning, exceededKey) {
				continue
			}
			drafts = append(drafts, models.InsightDraft{
				Kind: models.InsightKindBudgetWarning,
				Message: fmt.Sprintf("You are nearing your %s budget for this month: spent %s of %s.",
					budget.Category, spent.StringFixed(2), budget.MonthlyLimit.StringFixed(2)),
				DedupKey: nearingKey,
			})
		}
	}

	return drafts
}

// monthlySpendByCategory sums per-category spend from the first instant of
// the current month (local calendar) to now, preferring converted
// base-currency amounts over raw ones.
func monthlySpendByCategory(expenses []models.Expense, now time.Time) map[string]decimal.Decimal {
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	spend := make(map[string]decimal.Decimal)
	for i := range expenses {
		exp := &expenses[i]
		if exp.CreatedAt.Before(monthStart) || exp.CreatedAt.After(now) {
			continue
		}
		spend[exp.Category] = spend[exp.Category].Add(exp.EffectiveAmount())
	}
	return spend
}

// isOverBudget reports whether spend has reached 100% of the limit. A zero
// limit with any spend counts as over budget; dividing would otherwise
// produce a non-finite percentage.
func isOverBudget(spent, limit decimal.Decimal) bool {
	if limit.IsZero() {
		return spent.GreaterThan(decimal.Zero)
	}
	percentage := spent.Div(limit).Mul(oneHundred)
	return percentage.GreaterThanOrEqual(criticalThreshold)
}

// isNearingBudget reports whether spend has reached 80% of the limit
func isNearingBudget(spent, limit decimal.Decimal) bool {
	if limit.IsZero() {
		return false
	}
	percentage := spent.Div(limit).Mul(oneHundred)
	return percentage.GreaterThanOrEqual(warningThreshold)
}

// budgetDedupKey builds the month-scoped key, e.g. BUDGET_80_Food_2026-8
func budgetDedupKey(threshold decimal.Decimal, category string, now time.Time) string {
	return fmt.Sprintf("BUDGET_%s_%s_%d-%d", threshold.String(), category, now.Year(), int(now.Month()))
}

// hasInsightWithKey reports whether an existing insight matches the
// (kind, deduplication key) pair
func hasInsightWithKey(insights []models.Insight, kind, key string) bool {
	for i := range insights {
		if insights[i].Kind == kind && insights[i].RelatedCategory == key {
			return true
		}
	}
	return false
}
