package services

import (
	"time"

	"fintrack/internal/dto"
	"fintrack/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InsightSnapshot is the immutable view of a user's records that one
// engine cycle evaluates. All evaluators in a cycle see the same snapshot.
type InsightSnapshot struct {
	Expenses []models.Expense
	Budgets  []models.Budget
	Insights []models.Insight
}

// InsightEvaluator analyzes a snapshot for one category of noteworthy
// condition and returns candidate insights that are not yet materialized
// in the snapshot's existing insights. Implementations must be pure: no
// shared mutable state, no reads beyond the snapshot, and no dependency on
// another evaluator's output within the same cycle.
type InsightEvaluator interface {
	Evaluate(snapshot *InsightSnapshot, now time.Time) []models.InsightDraft
}

// InsightEngineServiceInterface defines the insight generation engine contract
type InsightEngineServiceInterface interface {
	Run(snapshot *InsightSnapshot, userID uuid.UUID) bool
}

// InsightServiceInterface defines insight read-side operations plus the
// refresh glue that assembles a snapshot and invokes the engine
type InsightServiceInterface interface {
	RefreshInsights(userID uuid.UUID) ([]models.Insight, bool, error)
	GetInsights(userID uuid.UUID) ([]models.Insight, error)
	GetUnreadInsights(userID uuid.UUID) ([]models.Insight, error)
	MarkInsightRead(insightID, userID uuid.UUID) error
	DeleteInsight(insightID, userID uuid.UUID) error
}

// ExpenseServiceInterface defines expense-related business operations
type ExpenseServiceInterface interface {
	CreateExpense(userID uuid.UUID, req *dto.CreateExpenseRequest) (*models.Expense, error)
	GetExpenseByID(expenseID, userID uuid.UUID) (*models.Expense, error)
	GetUserExpenses(userID uuid.UUID, offset, limit int) ([]models.Expense, int64, error)
	GetRecurringExpenses(userID uuid.UUID) ([]models.Expense, error)
	UpdateExpense(expenseID, userID uuid.UUID, req *dto.UpdateExpenseRequest) (*models.Expense, error)
	DeleteExpense(expenseID, userID uuid.UUID) error
	GetMonthlyCategorySummary(userID uuid.UUID, year int, month time.Month) ([]models.CategorySummary, error)
}

// BudgetServiceInterface defines budget-related business operations
type BudgetServiceInterface interface {
	SetBudget(userID uuid.UUID, category string, monthlyLimit decimal.Decimal) (*models.Budget, error)
	GetUserBudgets(userID uuid.UUID) ([]models.Budget, error)
	DeleteBudget(budgetID string, userID uuid.UUID) error
}

// FriendServiceInterface defines friend-related business operations
type FriendServiceInterface interface {
	CreateFriend(userID uuid.UUID, req *dto.CreateFriendRequest) (*models.Friend, error)
	GetUserFriends(userID uuid.UUID) ([]models.Friend, error)
	UpdateFriendBalance(friendID, userID uuid.UUID, delta decimal.Decimal) (*models.Friend, error)
	DeleteFriend(friendID, userID uuid.UUID) error
}

// AuthServiceInterface defines authentication operations
type AuthServiceInterface interface {
	Register(req *dto.RegisterRequest) (*models.User, error)
	Login(email, password string) (*dto.TokenPair, *models.User, error)
	Refresh(refreshToken string) (*dto.TokenPair, error)
	Logout(refreshToken string) error
	LogoutAll(userID uuid.UUID) error
}

// TokenServiceInterface defines JWT token operations
type TokenServiceInterface interface {
	GenerateAccessToken(user *models.User) (string, time.Time, error)
	GenerateRefreshToken(userID uuid.UUID) (string, time.Time, error)
	ValidateAccessToken(tokenString string) (*AccessClaims, error)
	ValidateRefreshToken(tokenString string) (uuid.UUID, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
}

// PasswordServiceInterface defines password hashing operations
type PasswordServiceInterface interface {
	HashPassword(password string) (string, error)
	VerifyPassword(hash, password string) error
	ValidatePasswordStrength(password string) error
}

// ExpenseGeneratorInterface defines sample expense generation for development seeding
type ExpenseGeneratorInterface interface {
	GenerateExpenses(userID uuid.UUID, count int) []models.Expense
	GenerateRecurringSeries(userID uuid.UUID, description, category string, months int) []models.Expense
}

// MetricsRecorderInterface defines the contract for engine and API metrics
type MetricsRecorderInterface interface {
	RecordEngineRun(outcome string, duration time.Duration)
	RecordInsightsGenerated(kind string, count int)
}
