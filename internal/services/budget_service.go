package services

import (
	"errors"
	"log/slog"

	"fintrack/internal/models"
	"fintrack/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidBudgetLimit = errors.New("budget limit cannot be negative")
)

type budgetService struct {
	budgetRepo repositories.BudgetRepositoryInterface
}

// NewBudgetService creates a new budget service
func NewBudgetService(budgetRepo repositories.BudgetRepositoryInterface) BudgetServiceInterface {
	return &budgetService{
		budgetRepo: budgetRepo,
	}
}

// SetBudget creates or replaces the monthly limit for a category
func (s *budgetService) SetBudget(userID uuid.UUID, category string, monthlyLimit decimal.Decimal) (*models.Budget, error) {
	if monthlyLimit.IsNegative() {
		return nil, ErrInvalidBudgetLimit
	}

	budget := &models.Budget{
		UserID:       userID,
		Category:     category,
		MonthlyLimit: monthlyLimit,
	}

	if err := s.budgetRepo.Upsert(budget); err != nil {
		slog.Error("failed to set budget",
			"user_id", userID,
			"category", category,
			"error", err)
		return nil, err
	}

	slog.Info("budget set",
		"user_id", userID,
		"category", category,
		"monthly_limit", monthlyLimit.String())

	return budget, nil
}

// GetUserBudgets retrieves all budgets for a user
func (s *budgetService) GetUserBudgets(userID uuid.UUID) ([]models.Budget, error) {
	return s.budgetRepo.GetByUserID(userID)
}

// DeleteBudget removes one of the user's budgets
func (s *budgetService) DeleteBudget(budgetID string, userID uuid.UUID) error {
	budget, err := s.budgetRepo.GetByID(budgetID)
	if err != nil {
		return err
	}

	if budget.UserID != userID {
		return repositories.ErrBudgetNotFound
	}

	return s.budgetRepo.Delete(budgetID)
}
