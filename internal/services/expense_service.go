package services

import (
	"fmt"
	"log/slog"
	"time"

	"fintrack/internal/dto"
	"fintrack/internal/models"
	"fintrack/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type expenseService struct {
	expenseRepo repositories.ExpenseRepositoryInterface
	budgetRepo  repositories.BudgetRepositoryInterface
}

// NewExpenseService creates a new expense service
func NewExpenseService(
	expenseRepo repositories.ExpenseRepositoryInterface,
	budgetRepo repositories.BudgetRepositoryInterface,
) ExpenseServiceInterface {
	return &expenseService{
		expenseRepo: expenseRepo,
		budgetRepo:  budgetRepo,
	}
}

// CreateExpense creates a new expense for a user
func (s *expenseService) CreateExpense(userID uuid.UUID, req *dto.CreateExpenseRequest) (*models.Expense, error) {
	expense := &models.Expense{
		UserID:          userID,
		Amount:          req.Amount,
		Currency:        req.Currency,
		ConvertedAmount: req.ConvertedAmount,
		Category:        req.Category,
		Description:     req.Description,
		Recurrence:      req.Recurrence,
		ReceiptURL:      req.ReceiptURL,
	}

	if err := s.expenseRepo.Create(expense); err != nil {
		slog.Error("failed to create expense",
			"user_id", userID,
			"category", req.Category,
			"error", err)
		return nil, err
	}

	slog.Info("expense created",
		"user_id", userID,
		"expense_id", expense.ID,
		"category", expense.Category,
		"amount", expense.Amount.String())

	return expense, nil
}

// GetExpenseByID retrieves an expense, verifying ownership
func (s *expenseService) GetExpenseByID(expenseID, userID uuid.UUID) (*models.Expense, error) {
	expense, err := s.expenseRepo.GetByID(expenseID)
	if err != nil {
		return nil, err
	}

	if expense.UserID != userID {
		return nil, repositories.ErrExpenseNotFound
	}

	return expense, nil
}

// GetUserExpenses retrieves a user's expenses with pagination
func (s *expenseService) GetUserExpenses(userID uuid.UUID, offset, limit int) ([]models.Expense, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	return s.expenseRepo.GetByUserIDPaginated(userID, offset, limit)
}

// GetRecurringExpenses returns the user's recurring expenses, the series
// that price increase insights are derived from
func (s *expenseService) GetRecurringExpenses(userID uuid.UUID) ([]models.Expense, error) {
	return s.expenseRepo.GetRecurringByUserID(userID)
}

// UpdateExpense applies a partial update to one of the user's expenses
func (s *expenseService) UpdateExpense(expenseID, userID uuid.UUID, req *dto.UpdateExpenseRequest) (*models.Expense, error) {
	expense, err := s.GetExpenseByID(expenseID, userID)
	if err != nil {
		return nil, err
	}

	if req.Amount != nil {
		expense.Amount = *req.Amount
	}
	if req.ConvertedAmount != nil {
		expense.ConvertedAmount = req.ConvertedAmount
	}
	if req.Category != nil {
		expense.Category = *req.Category
	}
	if req.Description != nil {
		expense.Description = *req.Description
	}
	if req.Recurrence != nil {
		expense.Recurrence = *req.Recurrence
	}

	if err := s.expenseRepo.Update(expense); err != nil {
		slog.Error("failed to update expense",
			"expense_id", expenseID,
			"error", err)
		return nil, err
	}

	return expense, nil
}

// DeleteExpense removes one of the user's expenses
func (s *expenseService) DeleteExpense(expenseID, userID uuid.UUID) error {
	if _, err := s.GetExpenseByID(expenseID, userID); err != nil {
		return err
	}

	return s.expenseRepo.Delete(expenseID)
}

// GetMonthlyCategorySummary aggregates a user's spend per category for one
// calendar month, pairing each category with its budget limit when set.
// Converted base-currency amounts are preferred over raw amounts.
func (s *expenseService) GetMonthlyCategorySummary(userID uuid.UUID, year int, month time.Month) ([]models.CategorySummary, error) {
	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	monthEnd := monthStart.AddDate(0, 1, 0).Add(-time.Nanosecond)

	expenses, err := s.expenseRepo.GetByDateRange(userID, monthStart, monthEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses for summary: %w", err)
	}

	budgets, err := s.budgetRepo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load budgets for summary: %w", err)
	}

	limitByCategory := make(map[string]decimal.Decimal, len(budgets))
	for _, b := range budgets {
		limitByCategory[b.Category] = b.MonthlyLimit
	}

	totals := make(map[string]*models.CategorySummary)
	order := make([]string, 0)
	for i := range expenses {
		exp := &expenses[i]
		summary, ok := totals[exp.Category]
		if !ok {
			summary = &models.CategorySummary{Category: exp.Category}
			totals[exp.Category] = summary
			order = append(order, exp.Category)
		}
		summary.ExpenseCount++
		summary.TotalSpent = summary.TotalSpent.Add(exp.EffectiveAmount())
	}

	summaries := make([]models.CategorySummary, 0, len(order))
	for _, category := range order {
		summary := totals[category]
		if limit, ok := limitByCategory[category]; ok {
			limitCopy := limit
			summary.BudgetLimit = &limitCopy
		}
		summaries = append(summaries, *summary)
	}

	return summaries, nil
}
