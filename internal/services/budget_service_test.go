package services

import (
	"testing"

	"fintrack/internal/models"
	"fintrack/internal/repositories"
	"fintrack/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// BudgetServiceTestSuite defines the test suite for budgetService
type BudgetServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockBudgetRepo *repository_mocks.MockBudgetRepositoryInterface
	service        BudgetServiceInterface
	userID         uuid.UUID
}

// SetupTest runs before each test
func (s *BudgetServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockBudgetRepo = repository_mocks.NewMockBudgetRepositoryInterface(s.ctrl)
	s.service = NewBudgetService(s.mockBudgetRepo)
	s.userID = uuid.New()
}

// TearDownTest runs after each test
func (s *BudgetServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

// TestBudgetServiceSuite runs the test suite
func TestBudgetServiceSuite(t *testing.T) {
	suite.Run(t, new(BudgetServiceTestSuite))
}

func (s *BudgetServiceTestSuite) TestSetBudget() {
	s.mockBudgetRepo.EXPECT().
		Upsert(gomock.Any()).
		DoAndReturn(func(budget *models.Budget) error {
			s.Equal(s.userID, budget.UserID)
			s.Equal("Food", budget.Category)
			budget.ID = models.BudgetID(budget.UserID, budget.Category)
			return nil
		})

	budget, err := s.service.SetBudget(s.userID, "Food", decimal.NewFromInt(10000))

	s.NoError(err)
	s.True(budget.MonthlyLimit.Equal(decimal.NewFromInt(10000)))
}

// A zero limit is allowed; it means "flag any spend in this category"
func (s *BudgetServiceTestSuite) TestSetBudget_ZeroLimitAllowed() {
	s.mockBudgetRepo.EXPECT().Upsert(gomock.Any()).Return(nil)

	_, err := s.service.SetBudget(s.userID, "Food", decimal.Zero)

	s.NoError(err)
}

func (s *BudgetServiceTestSuite) TestSetBudget_NegativeLimitRejected() {
	_, err := s.service.SetBudget(s.userID, "Food", decimal.NewFromInt(-1))

	s.ErrorIs(err, ErrInvalidBudgetLimit)
}

func (s *BudgetServiceTestSuite) TestDeleteBudget_NotOwnedLooksMissing() {
	budgetID := models.BudgetID(uuid.New(), "Food")
	budget := &models.Budget{
		ID:           budgetID,
		UserID:       uuid.New(),
		Category:     "Food",
		MonthlyLimit: decimal.NewFromInt(10000),
	}

	s.mockBudgetRepo.EXPECT().GetByID(budgetID).Return(budget, nil)

	err := s.service.DeleteBudget(budgetID, s.userID)

	s.ErrorIs(err, repositories.ErrBudgetNotFound)
}

func (s *BudgetServiceTestSuite) TestDeleteBudget_Success() {
	budgetID := models.BudgetID(s.userID, "Food")
	budget := &models.Budget{
		ID:           budgetID,
		UserID:       s.userID,
		Category:     "Food",
		MonthlyLimit: decimal.NewFromInt(10000),
	}

	s.mockBudgetRepo.EXPECT().GetByID(budgetID).Return(budget, nil)
	s.mockBudgetRepo.EXPECT().Delete(budgetID).Return(nil)

	err := s.service.DeleteBudget(budgetID, s.userID)

	s.NoError(err)
}
