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
	ErrInsightNotFound = errors.New("insight not found")
)

// insightRepository implements InsightRepositoryInterface
type insightRepository struct {
	db *gorm.DB
}

// NewInsightRepository creates a new insight repository
func NewInsightRepository(db *gorm.DB) InsightRepositoryInterface {
	return &insightRepository{
		db: db,
	}
}

// CreateBatch inserts generated insights in a single transaction. A row
// conflicting on the (user_id, kind, related_category) unique index is
// skipped rather than failing the batch, so two overlapping engine cycles
// computing the same candidate cannot error each other out.
func (r *insightRepository) CreateBatch(insights []models.Insight) error {
	if len(insights) == 0 {
		return nil
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&insights).Error; err != nil {
			return fmt.Errorf("failed to create batch insights: %w", err)
		}
		return nil
	})
}

// GetByUserID retrieves all insights for a user, most recent first
func (r *insightRepository) GetByUserID(userID uuid.UUID) ([]models.Insight, error) {
	var insights []models.Insight
	if err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&insights).Error; err != nil {
		return nil, fmt.Errorf("failed to get insights: %w", err)
	}
	return insights, nil
}

// GetUnreadByUserID retrieves a user's unread insights, most recent first
func (r *insightRepository) GetUnreadByUserID(userID uuid.UUID) ([]models.Insight, error) {
	var insights []models.Insight
	if err := r.db.Where("user_id = ? AND is_read = ?", userID, false).
		Order("created_at DESC").
		Find(&insights).Error; err != nil {
		return nil, fmt.Errorf("failed to get unread insights: %w", err)
	}
	return insights, nil
}

// MarkRead marks an insight as read
func (r *insightRepository) MarkRead(id uuid.UUID) error {
	result := r.db.Model(&models.Insight{}).
		Where("id = ?", id).
		Update("is_read", true)
	if result.Error != nil {
		return fmt.Errorf("failed to mark insight read: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrInsightNotFound
	}
	return nil
}

// Delete removes an insight. User deletion is the only path that clears a
// deduplication key and re-enables future generation for that condition.
func (r *insightRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Insight{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete insight: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrInsightNotFound
	}
	return nil
}

// CountByUserID returns the number of insights stored for a user
func (r *insightRepository) CountByUserID(userID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Insight{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count insights: %w", err)
	}
	return count, nil
}
