package services

import (
	"testing"
	"time"

	"fintrack/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// BudgetThresholdEvaluatorTestSuite defines the test suite for BudgetThresholdEvaluator
type BudgetThresholdEvaluatorTestSuite struct {
	suite.Suite
	evaluator InsightEvaluator
	userID    uuid.UUID
	now       time.Time
}

// SetupTest runs before each test
func (s *BudgetThresholdEvaluatorTestSuite) SetupTest() {
	s.evaluator = NewBudgetThresholdEvaluator()
	s.userID = uuid.New()
	// Mid-month reference instant so same-month expenses are clearly inside
	// the window
	s.now = time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)
}

// TestBudgetThresholdEvaluatorSuite runs the test suite
func TestBudgetThresholdEvaluatorSuite(t *testing.T) {
	suite.Run(t, new(BudgetThresholdEvaluatorTestSuite))
}

func (s *BudgetThresholdEvaluatorTestSuite) expense(category string, amount float64, createdAt time.Time) models.Expense {
	return models.Expense{
		ID:        uuid.New(),
		UserID:    s.userID,
		Amount:    decimal.NewFromFloat(amount),
		Category:  category,
		CreatedAt: createdAt,
	}
}

func (s *BudgetThresholdEvaluatorTestSuite) budget(category string, limit float64) models.Budget {
	return models.Budget{
		ID:           models.BudgetID(s.userID, category),
		UserID:       s.userID,
		Category:     category,
		MonthlyLimit: decimal.NewFromFloat(limit),
	}
}

func (s *BudgetThresholdEvaluatorTestSuite) TestNoBudgetsProducesNothing() {
	snapshot := &InsightSnapshot{
		Expenses: []models.Expense{s.expense("Food", 9999, s.now)},
	}

	drafts := s.evaluator.Evaluate(snapshot, s.now)

	s.Empty(drafts)
}

func (s *BudgetThresholdEvaluatorTestSuite) TestWarningAtExactEightyPercent() {
	snapshot := &InsightSnapshot{
		Expenses: []models.Expense{s.expense("Food", 8000, s.now)},
		Budgets:  []models.Budget{s.budget("Food", 10000)},
	}

	drafts := s.evaluator.Evaluate(snapshot, s.now)

	s.Require().Len(drafts, 1)
	s.Equal(models.InsightKindBudgetWarning, drafts[0].Kind)
	s.Equal("BUDGET_80_Food_2026-8", drafts[0].DedupKey)
	s.Contains(drafts[0].Message, "nearing")
	s.Contains(drafts[0].Message, "Food")
}

func (s *BudgetThresholdEvaluatorTestSuite) TestNothingBelowEightyPercent() {
	snapshot := &InsightSnapshot{
		Expenses: []models.Expense{s.expense("Food", 7999.99, s.now)},
		Budgets:  []models.Budget{s.budget("Food", 10000)},
	}

	drafts := s.evaluator.Evaluate(snapshot, s.now)

	s.Empty(drafts)
}

func (s *BudgetThresholdEvaluatorTestSuite) TestExceededAtOneHundredPercent() {
	snapshot := &InsightSnapshot{
		Expenses: []models.Expense{s.expense("Food", 12000, s.now)},
		Budgets:  []models.Budget{s.budget("Food", 10000)},
	}

	drafts := s.evaluator.Evaluate(snapshot, s.now)

	s.Require().Len(drafts, 1)
	s.Equal("BUDGET_100_Food_2026-8", drafts[0].DedupKey)
	s.Contains(drafts[0].Message, "exceeded")
}

// Spend crossing from the warning band into the exceeded band must still
// produce the 100% insight even though the 80% one already exists
func (s *BudgetThresholdEvaluatorTestSuite) TestExceededNotSuppressedByExistingWarning() {
	snapshot := &InsightSnapshot{
		Expenses: []models.Expense{s.expense("Food", 12000, s.now)},
		Budgets:  []models.Budget{s.budget("Food", 10000)},
		Insights: []models.Insight{{
			ID:              uuid.New(),
			UserID:          s.userID,
			Kind:            models.InsightKindBudgetWarning,
			Message:         "You are nearing your Food budget for this month: spent 8000.00 of 10000.00.",
			RelatedCategory: "BUDGET_80_Food_2026-8",
		}},
	}

	drafts := s.evaluator.Evaluate(snapshot, s.now)

	s.Require().Len(drafts, 1)
	s.Equal("BUDGET_100_Food_2026-8", drafts[0].DedupKey)
}

func (s *BudgetThresholdEvaluatorTestSuite) TestExceededSuppressedByExistingExceeded() {
	snapshot := &InsightSnapshot{
		Expenses: []models.Expense{s.expense("Food", 12000, s.now)},
		Budgets:  []models.Budget{s.budget("Food", 10000)},
		Insights: []models.Insight{{
			ID:              uuid.New(),
			UserID:          s.userID,
			Kind:            models.InsightKindBudgetWarning,
			Message:         "You have exceeded your Food budget for this month: spent 11000.00 of 10000.00.",
			RelatedCategory: "BUDGET_100_Food_2026-8",
		}},
	}

	drafts := s.evaluator.Evaluate(snapshot, s.now)

	s.Empty(drafts)
}

// After expense deletions drop spend back into the warning band, an existing
// exceeded insight for the month keeps the warning from firing
func (s *BudgetThresholdEvaluatorTestSuite) TestWarningSuppressedByExistingExceeded() {
	snapshot := &InsightSnapshot{
		Expenses: []models.Expense{s.expense("Food", 8500, s.now)},
		Budgets:  []models.Budget{s.budget("Food", 10000)},
		Insights: []models.Insight{{
			ID:              uuid.New(),
			UserID:          s.userID,
			Kind:            models.InsightKindBudgetWarning,
			Message:         "You have exceeded your Food budget for this month: spent 11000.00 of 10000.00.",
			RelatedCategory: "BUDGET_100_Food_2026-8",
		}},
	}

	drafts := s.evaluator.Evaluate(snapshot, s.now)

	s.Empty(drafts)
}

func (s *BudgetThresholdEvaluatorTestSuite) TestPreviousMonthSpendIsExcluded() {
	lastMonth := time.Date(2026, time.July, 28, 12, 0, 0, 0, time.UTC)

	snapshot := &InsightSnapshot{
		Expenses: []models.Expense{
			s.expense("Food", 9500, lastMonth),
			s.expense("Food", 100, s.now),
		},
		Budgets: []models.Budget{s.budget("Food", 10000)},
	}

	drafts := s.evaluator.Evaluate(snapshot, s.now)

	s.Empty(drafts)
}

func (s *BudgetThresholdEvaluatorTestSuite) TestZeroLimitWithSpendIsExceeded() {
	snapshot := &InsightSnapshot{
		Expenses: []models.Expense{s.expense("Food", 1, s.now)},
		Budgets:  []models.Budget{s.budget("Food", 0)},
	}

	drafts := s.evaluator.Evaluate(snapshot, s.now)

	s.Require().Len(drafts, 1)
	s.Equal("BUDGET_100_Food_2026-8", drafts[0].DedupKey)
}

func (s *BudgetThresholdEvaluatorTestSuite) TestZeroLimitWithoutSpendProducesNothing() {
	snapshot := &InsightSnapshot{
		Budgets: []models.Budget{s.budget("Food", 0)},
	}

	drafts := s.evaluator.Evaluate(snapshot, s.now)

	s.Empty(drafts)
}

func (s *BudgetThresholdEvaluatorTestSuite) TestConvertedAmountPreferredForAggregation() {
	converted := decimal.NewFromInt(9000)
	foreign := s.expense("Travel", 120000, s.now)
	foreign.Currency = "JPY"
	foreign.ConvertedAmount = &converted

	snapshot := &InsightSnapshot{
		Expenses: []models.Expense{foreign},
		Budgets:  []models.Budget{s.budget("Travel", 10000)},
	}

	drafts := s.evaluator.Evaluate(snapshot, s.now)

	s.Require().Len(drafts, 1)
	s.Equal("BUDGET_80_Travel_2026-8", drafts[0].DedupKey)
	s.Contains(drafts[0].Message, "9000.00")
}

func (s *BudgetThresholdEvaluatorTestSuite) TestCategoriesEvaluatedIndependently() {
	snapshot := &InsightSnapshot{
		Expenses: []models.Expense{
			s.expense("Food", 12000, s.now),
			s.expense("Transport", 4500, s.now),
			s.expense("Entertainment", 100, s.now),
		},
		Budgets: []models.Budget{
			s.budget("Food", 10000),
			s.budget("Transport", 5000),
			s.budget("Entertainment", 2000),
		},
	}

	drafts := s.evaluator.Evaluate(snapshot, s.now)

	s.Require().Len(drafts, 2)

	keys := []string{drafts[0].DedupKey, drafts[1].DedupKey}
	s.Contains(keys, "BUDGET_100_Food_2026-8")
	s.Contains(keys, "BUDGET_80_Transport_2026-8")
}

// A new calendar month produces fresh deduplication keys, so last month's
// insights never suppress this month's
func (s *BudgetThresholdEvaluatorTestSuite) TestKeysRollOverAcrossMonths() {
	september := time.Date(2026, time.September, 10, 12, 0, 0, 0, time.UTC)

	snapshot := &InsightSnapshot{
		Expenses: []models.Expense{s.expense("Food", 12000, september)},
		Budgets:  []models.Budget{s.budget("Food", 10000)},
		Insights: []models.Insight{{
			ID:              uuid.New(),
			UserID:          s.userID,
			Kind:            models.InsightKindBudgetWarning,
			Message:         "You have exceeded your Food budget for this month: spent 12000.00 of 10000.00.",
			RelatedCategory: "BUDGET_100_Food_2026-8",
		}},
	}

	drafts := s.evaluator.Evaluate(snapshot, september)

	s.Require().Len(drafts, 1)
	s.Equal("BUDGET_100_Food_2026-9", drafts[0].DedupKey)
}
