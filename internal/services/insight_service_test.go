package services_test

import (
	"errors"
	"testing"

	"fintrack/internal/models"
	"fintrack/internal/repositories"
	"fintrack/internal/repositories/repository_mocks"
	"fintrack/internal/services"
	"fintrack/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// InsightServiceTestSuite defines the test suite for insightService
type InsightServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockExpenseRepo *repository_mocks.MockExpenseRepositoryInterface
	mockBudgetRepo  *repository_mocks.MockBudgetRepositoryInterface
	mockInsightRepo *repository_mocks.MockInsightRepositoryInterface
	mockEngine      *service_mocks.MockInsightEngineServiceInterface
	service         services.InsightServiceInterface
	userID          uuid.UUID
}

// SetupTest runs before each test
func (s *InsightServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockExpenseRepo = repository_mocks.NewMockExpenseRepositoryInterface(s.ctrl)
	s.mockBudgetRepo = repository_mocks.NewMockBudgetRepositoryInterface(s.ctrl)
	s.mockInsightRepo = repository_mocks.NewMockInsightRepositoryInterface(s.ctrl)
	s.mockEngine = service_mocks.NewMockInsightEngineServiceInterface(s.ctrl)
	s.service = services.NewInsightService(s.mockExpenseRepo, s.mockBudgetRepo, s.mockInsightRepo, s.mockEngine)
	s.userID = uuid.New()
}

// TearDownTest runs after each test
func (s *InsightServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

// TestInsightServiceSuite runs the test suite
func TestInsightServiceSuite(t *testing.T) {
	suite.Run(t, new(InsightServiceTestSuite))
}

func (s *InsightServiceTestSuite) sampleExpenses() []models.Expense {
	return []models.Expense{{
		ID:       uuid.New(),
		UserID:   s.userID,
		Amount:   decimal.NewFromInt(9000),
		Category: "Food",
	}}
}

func (s *InsightServiceTestSuite) sampleInsight() models.Insight {
	return models.Insight{
		ID:              uuid.New(),
		UserID:          s.userID,
		Kind:            models.InsightKindBudgetWarning,
		Message:         "You are nearing your Food budget for this month: spent 90.00 of 100.00.",
		RelatedCategory: "BUDGET_80_Food_2026-8",
	}
}

// A user with no expenses gets their existing insights back without an
// engine cycle
func (s *InsightServiceTestSuite) TestRefreshInsights_NoExpenses_SkipsEngine() {
	existing := []models.Insight{s.sampleInsight()}

	s.mockExpenseRepo.EXPECT().GetByUserID(s.userID).Return([]models.Expense{}, nil)
	s.mockInsightRepo.EXPECT().GetByUserID(s.userID).Return(existing, nil)

	insights, generated, err := s.service.RefreshInsights(s.userID)

	s.NoError(err)
	s.False(generated)
	s.Equal(existing, insights)
}

func (s *InsightServiceTestSuite) TestRefreshInsights_EngineStoresNothing_ReturnsSnapshotInsights() {
	expenses := s.sampleExpenses()
	existing := []models.Insight{s.sampleInsight()}

	s.mockExpenseRepo.EXPECT().GetByUserID(s.userID).Return(expenses, nil)
	s.mockBudgetRepo.EXPECT().GetByUserID(s.userID).Return([]models.Budget{}, nil)
	s.mockInsightRepo.EXPECT().GetByUserID(s.userID).Return(existing, nil)
	s.mockEngine.EXPECT().
		Run(gomock.Any(), s.userID).
		DoAndReturn(func(snapshot *services.InsightSnapshot, userID uuid.UUID) bool {
			s.Equal(expenses, snapshot.Expenses)
			s.Equal(existing, snapshot.Insights)
			return false
		})

	insights, generated, err := s.service.RefreshInsights(s.userID)

	s.NoError(err)
	s.False(generated)
	s.Equal(existing, insights)
}

func (s *InsightServiceTestSuite) TestRefreshInsights_EngineStored_RereadsCollection() {
	expenses := s.sampleExpenses()
	existing := []models.Insight{}
	refreshed := []models.Insight{s.sampleInsight()}

	s.mockExpenseRepo.EXPECT().GetByUserID(s.userID).Return(expenses, nil)
	s.mockBudgetRepo.EXPECT().GetByUserID(s.userID).Return([]models.Budget{}, nil)
	s.mockInsightRepo.EXPECT().GetByUserID(s.userID).Return(existing, nil)
	s.mockEngine.EXPECT().Run(gomock.Any(), s.userID).Return(true)
	s.mockInsightRepo.EXPECT().GetByUserID(s.userID).Return(refreshed, nil)

	insights, generated, err := s.service.RefreshInsights(s.userID)

	s.NoError(err)
	s.True(generated)
	s.Equal(refreshed, insights)
}

// A re-read failure after a successful store degrades to the stale
// collection instead of failing the refresh
func (s *InsightServiceTestSuite) TestRefreshInsights_RereadFailure_ReturnsStaleCollection() {
	expenses := s.sampleExpenses()
	existing := []models.Insight{s.sampleInsight()}

	s.mockExpenseRepo.EXPECT().GetByUserID(s.userID).Return(expenses, nil)
	s.mockBudgetRepo.EXPECT().GetByUserID(s.userID).Return([]models.Budget{}, nil)
	s.mockInsightRepo.EXPECT().GetByUserID(s.userID).Return(existing, nil)
	s.mockEngine.EXPECT().Run(gomock.Any(), s.userID).Return(true)
	s.mockInsightRepo.EXPECT().GetByUserID(s.userID).Return(nil, errors.New("connection reset"))

	insights, generated, err := s.service.RefreshInsights(s.userID)

	s.NoError(err)
	s.True(generated)
	s.Equal(existing, insights)
}

func (s *InsightServiceTestSuite) TestRefreshInsights_ExpenseLoadFailure() {
	s.mockExpenseRepo.EXPECT().GetByUserID(s.userID).Return(nil, errors.New("connection reset"))

	insights, generated, err := s.service.RefreshInsights(s.userID)

	s.Error(err)
	s.False(generated)
	s.Nil(insights)
}

func (s *InsightServiceTestSuite) TestMarkInsightRead_Success() {
	insight := s.sampleInsight()

	s.mockInsightRepo.EXPECT().GetByUserID(s.userID).Return([]models.Insight{insight}, nil)
	s.mockInsightRepo.EXPECT().MarkRead(insight.ID).Return(nil)

	err := s.service.MarkInsightRead(insight.ID, s.userID)

	s.NoError(err)
}

// Another user's insight is indistinguishable from a missing one
func (s *InsightServiceTestSuite) TestMarkInsightRead_NotOwned() {
	s.mockInsightRepo.EXPECT().GetByUserID(s.userID).Return([]models.Insight{}, nil)

	err := s.service.MarkInsightRead(uuid.New(), s.userID)

	s.ErrorIs(err, repositories.ErrInsightNotFound)
}

func (s *InsightServiceTestSuite) TestDeleteInsight_Success() {
	insight := s.sampleInsight()

	s.mockInsightRepo.EXPECT().GetByUserID(s.userID).Return([]models.Insight{insight}, nil)
	s.mockInsightRepo.EXPECT().Delete(insight.ID).Return(nil)

	err := s.service.DeleteInsight(insight.ID, s.userID)

	s.NoError(err)
}

func (s *InsightServiceTestSuite) TestDeleteInsight_NotOwned() {
	s.mockInsightRepo.EXPECT().GetByUserID(s.userID).Return([]models.Insight{}, nil)

	err := s.service.DeleteInsight(uuid.New(), s.userID)

	s.ErrorIs(err, repositories.ErrInsightNotFound)
}

func (s *InsightServiceTestSuite) TestGetUnreadInsights() {
	unread := []models.Insight{s.sampleInsight()}

	s.mockInsightRepo.EXPECT().GetUnreadByUserID(s.userID).Return(unread, nil)

	insights, err := s.service.GetUnreadInsights(s.userID)

	s.NoError(err)
	s.Equal(unread, insights)
}
