package repositories

import (
	"errors"
	"fmt"

	"fintrack/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrBudgetNotFound = errors.New("budget not found")
)

// budgetRepository implements BudgetRepositoryInterface
type budgetRepository struct {
	db *gorm.DB
}

// NewBudgetRepository creates a new budget repository
func NewBudgetRepository(db *gorm.DB) BudgetRepositoryInterface {
	return &budgetRepository{
		db: db,
	}
}

// Upsert creates a budget or replaces the limit of an existing one. The
// category-scoped primary key makes "set budget for category" idempotent.
func (r *budgetRepository) Upsert(budget *models.Budget) error {
	if budget.ID == "" {
		budget.ID = models.BudgetID(budget.UserID, budget.Category)
	}

	if err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"monthly_limit", "updated_at"}),
	}).Create(budget).Error; err != nil {
		return fmt.Errorf("failed to upsert budget: %w", err)
	}
	return nil
}

// GetByID retrieves a budget by its derived ID
func (r *budgetRepository) GetByID(id string) (*models.Budget, error) {
	var budget models.Budget
	if err := r.db.Where("id = ?", id).First(&budget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBudgetNotFound
		}
		return nil, fmt.Errorf("failed to get budget: %w", err)
	}
	return &budget, nil
}

// GetByUserID retrieves all budgets for a user
func (r *budgetRepository) GetByUserID(userID uuid.UUID) ([]models.Budget, error) {
	var budgets []models.Budget
	if err := r.db.Where("user_id = ?", userID).
		Order("category ASC").
		Find(&budgets).Error; err != nil {
		return nil, fmt.Errorf("failed to get budgets: %w", err)
	}
	return budgets, nil
}

// GetByUserIDAndCategory retrieves a user's budget for one category
func (r *budgetRepository) GetByUserIDAndCategory(userID uuid.UUID, category string) (*models.Budget, error) {
	var budget models.Budget
	if err := r.db.Where("user_id = ? AND category = ?", userID, category).
		First(&budget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBudgetNotFound
		}
		return nil, fmt.Errorf("failed to get budget by category: %w", err)
	}
	return &budget, nil
}

// Delete removes a budget
func (r *budgetRepository) Delete(id string) error {
	result := r.db.Delete(&models.Budget{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete budget: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrBudgetNotFound
	}
	return nil
}
