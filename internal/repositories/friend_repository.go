package repositories

import (
	"errors"
	"fmt"

	"fintrack/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrFriendNotFound = errors.New("friend not found")
)

// friendRepository implements FriendRepositoryInterface
type friendRepository struct {
	db *gorm.DB
}

// NewFriendRepository creates a new friend repository
func NewFriendRepository(db *gorm.DB) FriendRepositoryInterface {
	return &friendRepository{
		db: db,
	}
}

// Create creates a new friend record
func (r *friendRepository) Create(friend *models.Friend) error {
	if err := r.db.Create(friend).Error; err != nil {
		return fmt.Errorf("failed to create friend: %w", err)
	}
	return nil
}

// GetByID retrieves a friend by ID
func (r *friendRepository) GetByID(id uuid.UUID) (*models.Friend, error) {
	friend := &models.Friend{ID: id}
	if err := r.db.First(friend).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFriendNotFound
		}
		return nil, fmt.Errorf("failed to get friend: %w", err)
	}
	return friend, nil
}

// GetByUserID retrieves all friends for a user
func (r *friendRepository) GetByUserID(userID uuid.UUID) ([]models.Friend, error) {
	var friends []models.Friend
	if err := r.db.Where("user_id = ?", userID).
		Order("name ASC").
		Find(&friends).Error; err != nil {
		return nil, fmt.Errorf("failed to get friends: %w", err)
	}
	return friends, nil
}

// Update updates an existing friend record
func (r *friendRepository) Update(friend *models.Friend) error {
	result := r.db.Save(friend)
	if result.Error != nil {
		return fmt.Errorf("failed to update friend: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrFriendNotFound
	}
	return nil
}

// Delete removes a friend record
func (r *friendRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Friend{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete friend: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrFriendNotFound
	}
	return nil
}
