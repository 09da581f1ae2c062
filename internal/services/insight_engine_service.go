package services

import (
	"log/slog"
	"time"

	"fintrack/internal/models"
	"fintrack/internal/repositories"

	"github.com/google/uuid"
)

const (
	EngineOutcomeNoop    = "noop"
	EngineOutcomeStored  = "stored"
	EngineOutcomeFailure = "failure"
)

// insightEngineService orchestrates the insight evaluators: one invocation
// per data-refresh cycle, all evaluators run against the same snapshot,
// novel candidates are persisted in a single batch write.
type insightEngineService struct {
	insightRepo repositories.InsightRepositoryInterface
	evaluators  []InsightEvaluator
	metrics     MetricsRecorderInterface
	now         func() time.Time
}

// NewInsightEngineService creates an engine with the default evaluators
func NewInsightEngineService(
	insightRepo repositories.InsightRepositoryInterface,
	metrics MetricsRecorderInterface,
) InsightEngineServiceInterface {
	return NewInsightEngineServiceWithEvaluators(insightRepo, metrics,
		NewBudgetThresholdEvaluator(),
		NewPriceIncreaseEvaluator(),
	)
}

// NewInsightEngineServiceWithEvaluators creates an engine with an explicit
// evaluator list. Evaluators are independent; adding one never requires
// touching another.
func NewInsightEngineServiceWithEvaluators(
	insightRepo repositories.InsightRepositoryInterface,
	metrics MetricsRecorderInterface,
	evaluators ...InsightEvaluator,
) InsightEngineServiceInterface {
	return &insightEngineService{
		insightRepo: insightRepo,
		evaluators:  evaluators,
		metrics:     metrics,
		now:         time.Now,
	}
}

// Run evaluates the snapshot for a user and persists any novel insights.
// It returns true only when new insights were stored; the caller is then
// expected to re-fetch the insight collection. A persistence failure is
// logged and reported as false, never raised: the next refresh recomputes
// the same candidates since the underlying conditions still hold.
func (s *insightEngineService) Run(snapshot *InsightSnapshot, userID uuid.UUID) bool {
	start := time.Now()
	now := s.now()

	var drafts []models.InsightDraft
	for _, evaluator := range s.evaluators {
		drafts = append(drafts, evaluator.Evaluate(snapshot, now)...)
	}

	if len(drafts) == 0 {
		s.metrics.RecordEngineRun(EngineOutcomeNoop, time.Since(start))
		return false
	}

	insights := make([]models.Insight, 0, len(drafts))
	countByKind := make(map[string]int)
	for _, draft := range drafts {
		insights = append(insights, draft.ToInsight(userID))
		countByKind[draft.Kind]++
	}

	if err := s.insightRepo.CreateBatch(insights); err != nil {
		slog.Error("failed to persist generated insights",
			"user_id", userID,
			"candidate_count", len(insights),
			"error", err)
		s.metrics.RecordEngineRun(EngineOutcomeFailure, time.Since(start))
		return false
	}

	for kind, count := range countByKind {
		s.metrics.RecordInsightsGenerated(kind, count)
	}
	s.metrics.RecordEngineRun(EngineOutcomeStored, time.Since(start))

	slog.Info("insight engine cycle stored new insights",
		"user_id", userID,
		"insight_count", len(insights))

	return true
}
