package repositories

import (
	"time"

	"fintrack/internal/models"

	"github.com/google/uuid"
)

// ExpenseRepositoryInterface defines the contract for expense repository operations
type ExpenseRepositoryInterface interface {
	Create(expense *models.Expense) error
	GetByID(id uuid.UUID) (*models.Expense, error)
	GetByUserID(userID uuid.UUID) ([]models.Expense, error)
	GetByUserIDPaginated(userID uuid.UUID, offset, limit int) ([]models.Expense, int64, error)
	GetByDateRange(userID uuid.UUID, startDate, endDate time.Time) ([]models.Expense, error)
	GetRecurringByUserID(userID uuid.UUID) ([]models.Expense, error)
	Update(expense *models.Expense) error
	Delete(id uuid.UUID) error
	CreateBatch(expenses []models.Expense) error
}

// BudgetRepositoryInterface defines the contract for budget repository operations
type BudgetRepositoryInterface interface {
	Upsert(budget *models.Budget) error
	GetByID(id string) (*models.Budget, error)
	GetByUserID(userID uuid.UUID) ([]models.Budget, error)
	GetByUserIDAndCategory(userID uuid.UUID, category string) (*models.Budget, error)
	Delete(id string) error
}

// InsightRepositoryInterface defines the contract for insight repository operations
type InsightRepositoryInterface interface {
	CreateBatch(insights []models.Insight) error
	GetByUserID(userID uuid.UUID) ([]models.Insight, error)
	GetUnreadByUserID(userID uuid.UUID) ([]models.Insight, error)
	MarkRead(id uuid.UUID) error
	Delete(id uuid.UUID) error
	CountByUserID(userID uuid.UUID) (int64, error)
}

// FriendRepositoryInterface defines the contract for friend repository operations
type FriendRepositoryInterface interface {
	Create(friend *models.Friend) error
	GetByID(id uuid.UUID) (*models.Friend, error)
	GetByUserID(userID uuid.UUID) ([]models.Friend, error)
	Update(friend *models.Friend) error
	Delete(id uuid.UUID) error
}

// UserRepositoryInterface defines the contract for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(user *models.User) error
	UpdateLastLogin(userID uuid.UUID, at time.Time) error
	Delete(id uuid.UUID) error
}

// RefreshTokenRepositoryInterface defines the contract for refresh token repository operations
type RefreshTokenRepositoryInterface interface {
	Create(token *models.RefreshToken) error
	GetByTokenHash(tokenHash string) (*models.RefreshToken, error)
	Revoke(id uuid.UUID) error
	RevokeAllForUser(userID uuid.UUID) error
	DeleteExpired() (int64, error)
}
