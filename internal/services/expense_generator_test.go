package services

import (
	"testing"
	"time"

	"fintrack/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// ExpenseGeneratorTestSuite defines the test suite for expenseGenerator
type ExpenseGeneratorTestSuite struct {
	suite.Suite
	generator ExpenseGeneratorInterface
	userID    uuid.UUID
}

// SetupTest runs before each test
func (s *ExpenseGeneratorTestSuite) SetupTest() {
	s.generator = NewSeededExpenseGenerator(42)
	s.userID = uuid.New()
}

// TestExpenseGeneratorSuite runs the test suite
func TestExpenseGeneratorSuite(t *testing.T) {
	suite.Run(t, new(ExpenseGeneratorTestSuite))
}

func (s *ExpenseGeneratorTestSuite) TestGenerateExpenses() {
	expenses := s.generator.GenerateExpenses(s.userID, 25)

	s.Require().Len(expenses, 25)

	cutoff := time.Now().AddDate(0, 0, -90)
	for _, exp := range expenses {
		s.Equal(s.userID, exp.UserID)
		s.True(exp.Amount.IsPositive())
		s.Contains(sampleCategories, exp.Category)
		s.Equal(models.RecurrenceNone, exp.Recurrence)
		s.True(exp.CreatedAt.After(cutoff))
		s.NoError(exp.Validate())
	}
}

func (s *ExpenseGeneratorTestSuite) TestGenerateExpenses_Deterministic() {
	first := NewSeededExpenseGenerator(7).GenerateExpenses(s.userID, 10)
	second := NewSeededExpenseGenerator(7).GenerateExpenses(s.userID, 10)

	s.Require().Len(second, len(first))
	for i := range first {
		s.True(first[i].Amount.Equal(second[i].Amount))
		s.Equal(first[i].Category, second[i].Category)
	}
}

// The generated series must contain exactly one upward price step so a
// refresh over seeded data produces a price increase insight
func (s *ExpenseGeneratorTestSuite) TestGenerateRecurringSeries_HasSingleIncrease() {
	series := s.generator.GenerateRecurringSeries(s.userID, "Netflix", "Entertainment", 6)

	s.Require().Len(series, 6)

	increases := 0
	for i := 1; i < len(series); i++ {
		s.Equal("Netflix", series[i].Description)
		s.Equal(models.RecurrenceMonthly, series[i].Recurrence)
		s.False(series[i].CreatedAt.Before(series[i-1].CreatedAt))

		switch {
		case series[i].Amount.GreaterThan(series[i-1].Amount):
			increases++
		case series[i].Amount.LessThan(series[i-1].Amount):
			s.Fail("series amount must never decrease")
		}
	}
	s.Equal(1, increases)
}

// Every seeded series, regardless of length, must leave the step on the
// latest transition so a refresh over fresh seed data flags it
func (s *ExpenseGeneratorTestSuite) TestGenerateRecurringSeries_FeedsEvaluator() {
	for _, months := range []int{2, 4, 6} {
		series := s.generator.GenerateRecurringSeries(s.userID, "Gym", "Health", months)
		s.Require().Len(series, months)
		s.True(series[months-1].Amount.GreaterThan(series[months-2].Amount),
			"months=%d: latest entry must carry the increase", months)

		drafts := NewPriceIncreaseEvaluator().Evaluate(&InsightSnapshot{Expenses: series}, time.Now())
		s.Require().Len(drafts, 1, "months=%d", months)
		s.Equal(models.InsightKindPriceIncrease, drafts[0].Kind)
	}
}
