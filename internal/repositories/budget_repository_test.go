package repositories

import (
	"testing"

	"fintrack/internal/database"
	"fintrack/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// BudgetRepositorySuite defines the test suite for budgetRepository
type BudgetRepositorySuite struct {
	suite.Suite
	db       *database.DB
	repo     BudgetRepositoryInterface
	testUser *models.User
}

// SetupTest runs before each test in the suite
func (s *BudgetRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewBudgetRepository(s.db.DB)
	s.testUser = database.CreateTestUser(s.T(), s.db, "budgets@example.com")
}

// TearDownTest runs after each test in the suite
func (s *BudgetRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

// TestBudgetRepositorySuite runs the test suite
func TestBudgetRepositorySuite(t *testing.T) {
	suite.Run(t, new(BudgetRepositorySuite))
}

func (s *BudgetRepositorySuite) TestUpsert_CreatesWithDerivedID() {
	budget := &models.Budget{
		UserID:       s.testUser.ID,
		Category:     "Food",
		MonthlyLimit: decimal.NewFromInt(10000),
	}

	s.NoError(s.repo.Upsert(budget))
	s.Equal(models.BudgetID(s.testUser.ID, "Food"), budget.ID)

	found, err := s.repo.GetByID(budget.ID)
	s.NoError(err)
	s.True(found.MonthlyLimit.Equal(decimal.NewFromInt(10000)))
}

// Setting the same category twice replaces the limit instead of growing the
// table
func (s *BudgetRepositorySuite) TestUpsert_ReplacesExistingLimit() {
	first := &models.Budget{
		UserID:       s.testUser.ID,
		Category:     "Food",
		MonthlyLimit: decimal.NewFromInt(10000),
	}
	s.NoError(s.repo.Upsert(first))

	second := &models.Budget{
		UserID:       s.testUser.ID,
		Category:     "Food",
		MonthlyLimit: decimal.NewFromInt(15000),
	}
	s.NoError(s.repo.Upsert(second))

	budgets, err := s.repo.GetByUserID(s.testUser.ID)
	s.NoError(err)
	s.Require().Len(budgets, 1)
	s.True(budgets[0].MonthlyLimit.Equal(decimal.NewFromInt(15000)))
}

func (s *BudgetRepositorySuite) TestGetByUserID_OrderedByCategory() {
	for _, category := range []string{"Transport", "Food", "Entertainment"} {
		s.NoError(s.repo.Upsert(&models.Budget{
			UserID:       s.testUser.ID,
			Category:     category,
			MonthlyLimit: decimal.NewFromInt(1000),
		}))
	}

	budgets, err := s.repo.GetByUserID(s.testUser.ID)
	s.NoError(err)
	s.Require().Len(budgets, 3)
	s.Equal("Entertainment", budgets[0].Category)
	s.Equal("Food", budgets[1].Category)
	s.Equal("Transport", budgets[2].Category)
}

func (s *BudgetRepositorySuite) TestGetByUserIDAndCategory() {
	s.NoError(s.repo.Upsert(&models.Budget{
		UserID:       s.testUser.ID,
		Category:     "Food",
		MonthlyLimit: decimal.NewFromInt(10000),
	}))

	budget, err := s.repo.GetByUserIDAndCategory(s.testUser.ID, "Food")
	s.NoError(err)
	s.Equal("Food", budget.Category)

	_, err = s.repo.GetByUserIDAndCategory(s.testUser.ID, "Travel")
	s.ErrorIs(err, ErrBudgetNotFound)
}

func (s *BudgetRepositorySuite) TestDelete() {
	budget := &models.Budget{
		UserID:       s.testUser.ID,
		Category:     "Food",
		MonthlyLimit: decimal.NewFromInt(10000),
	}
	s.NoError(s.repo.Upsert(budget))

	s.NoError(s.repo.Delete(budget.ID))

	_, err := s.repo.GetByID(budget.ID)
	s.ErrorIs(err, ErrBudgetNotFound)
}

func (s *BudgetRepositorySuite) TestDelete_NotFound() {
	err := s.repo.Delete("budget_missing")
	s.ErrorIs(err, ErrBudgetNotFound)
}
