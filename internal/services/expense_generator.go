package services

import (
	"time"

	"fintrack/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Sample categories mirroring what users typically enter by hand
var sampleCategories = []string{
	"Food",
	"Groceries",
	"Transport",
	"Entertainment",
	"Utilities",
	"Health",
	"Shopping",
	"Travel",
}

type expenseGenerator struct {
	faker *gofakeit.Faker
}

// NewExpenseGenerator creates a generator for development seed data
func NewExpenseGenerator() ExpenseGeneratorInterface {
	return &expenseGenerator{
		faker: gofakeit.New(0),
	}
}

// NewSeededExpenseGenerator creates a deterministic generator for tests
func NewSeededExpenseGenerator(seed uint64) ExpenseGeneratorInterface {
	return &expenseGenerator{
		faker: gofakeit.New(seed),
	}
}

// GenerateExpenses produces count one-off expenses spread over the last 90 days
func (g *expenseGenerator) GenerateExpenses(userID uuid.UUID, count int) []models.Expense {
	expenses := make([]models.Expense, 0, count)
	now := time.Now()

	for i := 0; i < count; i++ {
		amount := decimal.NewFromFloat(g.faker.Price(2, 400)).Round(2)
		createdAt := now.AddDate(0, 0, -g.faker.Number(0, 89))

		expenses = append(expenses, models.Expense{
			UserID:      userID,
			Amount:      amount,
			Currency:    "USD",
			Category:    sampleCategories[g.faker.Number(0, len(sampleCategories)-1)],
			Description: g.faker.ProductName(),
			Recurrence:  models.RecurrenceNone,
			CreatedAt:   createdAt,
			UpdatedAt:   createdAt,
		})
	}

	return expenses
}

// GenerateRecurringSeries produces a monthly recurring series of the given
// length, one entry per month ending this month. The price step lands on
// the most recent entry: the evaluator only examines the latest transition
// of a series, so a step anywhere earlier would never be flagged.
func (g *expenseGenerator) GenerateRecurringSeries(userID uuid.UUID, description, category string, months int) []models.Expense {
	expenses := make([]models.Expense, 0, months)
	now := time.Now()

	base := decimal.NewFromFloat(g.faker.Price(5, 50)).Round(2)
	increased := base.Add(decimal.NewFromFloat(g.faker.Price(1, 5)).Round(2))
	increaseAt := months - 1

	for i := months - 1; i >= 0; i-- {
		amount := base
		if months-1-i >= increaseAt {
			amount = increased
		}
		createdAt := now.AddDate(0, -i, 0)

		expenses = append(expenses, models.Expense{
			UserID:      userID,
			Amount:      amount,
			Currency:    "USD",
			Category:    category,
			Description: description,
			Recurrence:  models.RecurrenceMonthly,
			CreatedAt:   createdAt,
			UpdatedAt:   createdAt,
		})
	}

	return expenses
}
