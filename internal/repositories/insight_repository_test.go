package repositories

import (
	"testing"
	"time"

	"fintrack/internal/database"
	"fintrack/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// InsightRepositorySuite defines the test suite for insightRepository
type InsightRepositorySuite struct {
	suite.Suite
	db       *database.DB
	repo     InsightRepositoryInterface
	testUser *models.User
}

// SetupTest runs before each test in the suite
func (s *InsightRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewInsightRepository(s.db.DB)
	s.testUser = database.CreateTestUser(s.T(), s.db, "insights@example.com")
}

// TearDownTest runs after each test in the suite
func (s *InsightRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

// TestInsightRepositorySuite runs the test suite
func TestInsightRepositorySuite(t *testing.T) {
	suite.Run(t, new(InsightRepositorySuite))
}

func (s *InsightRepositorySuite) insight(kind, key string) models.Insight {
	return models.Insight{
		UserID:          s.testUser.ID,
		Kind:            kind,
		Message:         "You are nearing your Food budget for this month: spent 80.00 of 100.00.",
		RelatedCategory: key,
	}
}

func (s *InsightRepositorySuite) TestCreateBatch() {
	batch := []models.Insight{
		s.insight(models.InsightKindBudgetWarning, "BUDGET_80_Food_2026-8"),
		s.insight(models.InsightKindBudgetWarning, "BUDGET_100_Transport_2026-8"),
	}

	err := s.repo.CreateBatch(batch)
	s.NoError(err)

	count, err := s.repo.CountByUserID(s.testUser.ID)
	s.NoError(err)
	s.Equal(int64(2), count)
}

func (s *InsightRepositorySuite) TestCreateBatch_EmptyIsNoop() {
	err := s.repo.CreateBatch(nil)
	s.NoError(err)
}

// A conflicting row on (user_id, kind, related_category) is skipped, not an
// error: two overlapping engine cycles may compute the same candidate
func (s *InsightRepositorySuite) TestCreateBatch_DuplicateKeyIsSkipped() {
	first := []models.Insight{s.insight(models.InsightKindBudgetWarning, "BUDGET_80_Food_2026-8")}
	s.NoError(s.repo.CreateBatch(first))

	second := []models.Insight{
		s.insight(models.InsightKindBudgetWarning, "BUDGET_80_Food_2026-8"),
		s.insight(models.InsightKindBudgetWarning, "BUDGET_80_Transport_2026-8"),
	}
	s.NoError(s.repo.CreateBatch(second))

	count, err := s.repo.CountByUserID(s.testUser.ID)
	s.NoError(err)
	s.Equal(int64(2), count)
}

// The same key under a different kind is a different insight
func (s *InsightRepositorySuite) TestCreateBatch_SameKeyDifferentKind() {
	batch := []models.Insight{
		s.insight(models.InsightKindBudgetWarning, "shared-key"),
		s.insight(models.InsightKindPriceIncrease, "shared-key"),
	}

	s.NoError(s.repo.CreateBatch(batch))

	count, err := s.repo.CountByUserID(s.testUser.ID)
	s.NoError(err)
	s.Equal(int64(2), count)
}

func (s *InsightRepositorySuite) TestGetByUserID_MostRecentFirst() {
	older := s.insight(models.InsightKindBudgetWarning, "BUDGET_80_Food_2026-7")
	older.CreatedAt = time.Now().Add(-48 * time.Hour)
	newer := s.insight(models.InsightKindBudgetWarning, "BUDGET_80_Food_2026-8")
	newer.CreatedAt = time.Now()

	s.NoError(s.repo.CreateBatch([]models.Insight{older, newer}))

	insights, err := s.repo.GetByUserID(s.testUser.ID)
	s.NoError(err)
	s.Require().Len(insights, 2)
	s.Equal("BUDGET_80_Food_2026-8", insights[0].RelatedCategory)
	s.Equal("BUDGET_80_Food_2026-7", insights[1].RelatedCategory)
}

func (s *InsightRepositorySuite) TestGetByUserID_ScopedToUser() {
	other := database.CreateTestUser(s.T(), s.db, "other@example.com")
	otherInsight := s.insight(models.InsightKindBudgetWarning, "BUDGET_80_Food_2026-8")
	otherInsight.UserID = other.ID

	s.NoError(s.repo.CreateBatch([]models.Insight{
		s.insight(models.InsightKindBudgetWarning, "BUDGET_100_Food_2026-8"),
		otherInsight,
	}))

	insights, err := s.repo.GetByUserID(s.testUser.ID)
	s.NoError(err)
	s.Require().Len(insights, 1)
	s.Equal(s.testUser.ID, insights[0].UserID)
}

func (s *InsightRepositorySuite) TestMarkReadAndGetUnread() {
	batch := []models.Insight{
		s.insight(models.InsightKindBudgetWarning, "BUDGET_80_Food_2026-8"),
		s.insight(models.InsightKindBudgetWarning, "BUDGET_80_Transport_2026-8"),
	}
	s.NoError(s.repo.CreateBatch(batch))

	all, err := s.repo.GetByUserID(s.testUser.ID)
	s.NoError(err)
	s.Require().Len(all, 2)

	s.NoError(s.repo.MarkRead(all[0].ID))

	unread, err := s.repo.GetUnreadByUserID(s.testUser.ID)
	s.NoError(err)
	s.Require().Len(unread, 1)
	s.Equal(all[1].ID, unread[0].ID)
}

func (s *InsightRepositorySuite) TestMarkRead_NotFound() {
	err := s.repo.MarkRead(uuid.New())
	s.ErrorIs(err, ErrInsightNotFound)
}

// Deleting frees the deduplication key for reuse
func (s *InsightRepositorySuite) TestDelete_FreesDedupKey() {
	batch := []models.Insight{s.insight(models.InsightKindBudgetWarning, "BUDGET_80_Food_2026-8")}
	s.NoError(s.repo.CreateBatch(batch))

	all, err := s.repo.GetByUserID(s.testUser.ID)
	s.NoError(err)
	s.Require().Len(all, 1)

	s.NoError(s.repo.Delete(all[0].ID))

	s.NoError(s.repo.CreateBatch([]models.Insight{
		s.insight(models.InsightKindBudgetWarning, "BUDGET_80_Food_2026-8"),
	}))

	count, err := s.repo.CountByUserID(s.testUser.ID)
	s.NoError(err)
	s.Equal(int64(1), count)
}

func (s *InsightRepositorySuite) TestDelete_NotFound() {
	err := s.repo.Delete(uuid.New())
	s.ErrorIs(err, ErrInsightNotFound)
}
