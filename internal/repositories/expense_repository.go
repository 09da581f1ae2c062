package repositories

import (
	"errors"
	"fmt"
	"time"

	"fintrack/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrExpenseNotFound = errors.New("expense not found")
)

// expenseRepository implements ExpenseRepositoryInterface
type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository
func NewExpenseRepository(db *gorm.DB) ExpenseRepositoryInterface {
	return &expenseRepository{
		db: db,
	}
}

// Create creates a new expense
func (r *expenseRepository) Create(expense *models.Expense) error {
	if err := r.db.Create(expense).Error; err != nil {
		return fmt.Errorf("failed to create expense: %w", err)
	}
	return nil
}

// GetByID retrieves an expense by ID
func (r *expenseRepository) GetByID(id uuid.UUID) (*models.Expense, error) {
	expense := &models.Expense{ID: id}
	if err := r.db.First(expense).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExpenseNotFound
		}
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}
	return expense, nil
}

// GetByUserID retrieves all expenses for a user, most recent first
func (r *expenseRepository) GetByUserID(userID uuid.UUID) ([]models.Expense, error) {
	var expenses []models.Expense
	if err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&expenses).Error; err != nil {
		return nil, fmt.Errorf("failed to get expenses: %w", err)
	}
	return expenses, nil
}

// GetByUserIDPaginated retrieves expenses for a user with pagination
func (r *expenseRepository) GetByUserIDPaginated(userID uuid.UUID, offset, limit int) ([]models.Expense, int64, error) {
	var expenses []models.Expense
	var total int64

	if err := r.db.Model(&models.Expense{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count expenses: %w", err)
	}

	if err := r.db.Where("user_id = ?", userID).
		Offset(offset).Limit(limit).
		Order("created_at DESC").
		Find(&expenses).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get expenses: %w", err)
	}

	return expenses, total, nil
}

// GetByDateRange retrieves a user's expenses within a date range
func (r *expenseRepository) GetByDateRange(userID uuid.UUID, startDate, endDate time.Time) ([]models.Expense, error) {
	var expenses []models.Expense
	if err := r.db.Where("user_id = ? AND created_at BETWEEN ? AND ?", userID, startDate, endDate).
		Order("created_at DESC").
		Find(&expenses).Error; err != nil {
		return nil, fmt.Errorf("failed to get expenses by date range: %w", err)
	}
	return expenses, nil
}

// GetRecurringByUserID retrieves a user's recurring expenses
func (r *expenseRepository) GetRecurringByUserID(userID uuid.UUID) ([]models.Expense, error) {
	var expenses []models.Expense
	if err := r.db.Where("user_id = ? AND recurrence <> ?", userID, models.RecurrenceNone).
		Order("created_at DESC").
		Find(&expenses).Error; err != nil {
		return nil, fmt.Errorf("failed to get recurring expenses: %w", err)
	}
	return expenses, nil
}

// Update updates an existing expense
func (r *expenseRepository) Update(expense *models.Expense) error {
	result := r.db.Save(expense)
	if result.Error != nil {
		return fmt.Errorf("failed to update expense: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrExpenseNotFound
	}
	return nil
}

// Delete removes an expense
func (r *expenseRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Expense{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete expense: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrExpenseNotFound
	}
	return nil
}

// CreateBatch creates multiple expenses in a single database transaction
func (r *expenseRepository) CreateBatch(expenses []models.Expense) error {
	if len(expenses) == 0 {
		return nil
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&expenses).Error; err != nil {
			return fmt.Errorf("failed to create batch expenses: %w", err)
		}
		return nil
	})
}
