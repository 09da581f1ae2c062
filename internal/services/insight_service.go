package services

import (
	"fmt"
	"log/slog"

	"fintrack/internal/models"
	"fintrack/internal/repositories"

	"github.com/google/uuid"
)

type insightService struct {
	expenseRepo repositories.ExpenseRepositoryInterface
	budgetRepo  repositories.BudgetRepositoryInterface
	insightRepo repositories.InsightRepositoryInterface
	engine      InsightEngineServiceInterface
}

// NewInsightService creates a new insight service
func NewInsightService(
	expenseRepo repositories.ExpenseRepositoryInterface,
	budgetRepo repositories.BudgetRepositoryInterface,
	insightRepo repositories.InsightRepositoryInterface,
	engine InsightEngineServiceInterface,
) InsightServiceInterface {
	return &insightService{
		expenseRepo: expenseRepo,
		budgetRepo:  budgetRepo,
		insightRepo: insightRepo,
		engine:      engine,
	}
}

// RefreshInsights assembles a consistent snapshot of the user's records,
// runs one engine cycle against it, and returns the insight collection.
// The collection is re-read only when the engine stored something new;
// otherwise the snapshot's insights are returned as-is.
func (s *insightService) RefreshInsights(userID uuid.UUID) ([]models.Insight, bool, error) {
	expenses, err := s.expenseRepo.GetByUserID(userID)
	if err != nil {
		return nil, false, fmt.Errorf("failed to load expenses for snapshot: %w", err)
	}

	if len(expenses) == 0 {
		insights, err := s.insightRepo.GetByUserID(userID)
		if err != nil {
			return nil, false, fmt.Errorf("failed to load insights: %w", err)
		}
		return insights, false, nil
	}

	budgets, err := s.budgetRepo.GetByUserID(userID)
	if err != nil {
		return nil, false, fmt.Errorf("failed to load budgets for snapshot: %w", err)
	}

	existing, err := s.insightRepo.GetByUserID(userID)
	if err != nil {
		return nil, false, fmt.Errorf("failed to load insights for snapshot: %w", err)
	}

	snapshot := &InsightSnapshot{
		Expenses: expenses,
		Budgets:  budgets,
		Insights: existing,
	}

	generated := s.engine.Run(snapshot, userID)
	if !generated {
		return existing, false, nil
	}

	refreshed, err := s.insightRepo.GetByUserID(userID)
	if err != nil {
		slog.Warn("insights stored but re-read failed",
			"user_id", userID,
			"error", err)
		return existing, true, nil
	}

	return refreshed, true, nil
}

// GetInsights returns all insights for a user
func (s *insightService) GetInsights(userID uuid.UUID) ([]models.Insight, error) {
	return s.insightRepo.GetByUserID(userID)
}

// GetUnreadInsights returns a user's unread insights
func (s *insightService) GetUnreadInsights(userID uuid.UUID) ([]models.Insight, error) {
	return s.insightRepo.GetUnreadByUserID(userID)
}

// MarkInsightRead marks one of the user's insights as read
func (s *insightService) MarkInsightRead(insightID, userID uuid.UUID) error {
	if err := s.authorizeInsight(insightID, userID); err != nil {
		return err
	}
	return s.insightRepo.MarkRead(insightID)
}

// DeleteInsight removes one of the user's insights. Deleting an insight
// clears its deduplication key, so the engine may generate it again if the
// condition still holds on a later refresh.
func (s *insightService) DeleteInsight(insightID, userID uuid.UUID) error {
	if err := s.authorizeInsight(insightID, userID); err != nil {
		return err
	}
	return s.insightRepo.Delete(insightID)
}

func (s *insightService) authorizeInsight(insightID, userID uuid.UUID) error {
	insights, err := s.insightRepo.GetByUserID(userID)
	if err != nil {
		return fmt.Errorf("failed to load insights: %w", err)
	}
	for i := range insights {
		if insights[i].ID == insightID {
			return nil
		}
	}
	return repositories.ErrInsightNotFound
}
