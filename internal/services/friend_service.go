package services

import (
	"log/slog"

	"fintrack/internal/dto"
	"fintrack/internal/models"
	"fintrack/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type friendService struct {
	friendRepo repositories.FriendRepositoryInterface
}

// NewFriendService creates a new friend service
func NewFriendService(friendRepo repositories.FriendRepositoryInterface) FriendServiceInterface {
	return &friendService{
		friendRepo: friendRepo,
	}
}

// CreateFriend adds a shared-expense contact for a user
func (s *friendService) CreateFriend(userID uuid.UUID, req *dto.CreateFriendRequest) (*models.Friend, error) {
	friend := &models.Friend{
		UserID: userID,
		Name:   req.Name,
		Email:  req.Email,
	}

	if err := s.friendRepo.Create(friend); err != nil {
		slog.Error("failed to create friend",
			"user_id", userID,
			"error", err)
		return nil, err
	}

	return friend, nil
}

// GetUserFriends retrieves all friends for a user
func (s *friendService) GetUserFriends(userID uuid.UUID) ([]models.Friend, error) {
	return s.friendRepo.GetByUserID(userID)
}

// UpdateFriendBalance adjusts a friend's running balance by a signed delta
func (s *friendService) UpdateFriendBalance(friendID, userID uuid.UUID, delta decimal.Decimal) (*models.Friend, error) {
	friend, err := s.friendRepo.GetByID(friendID)
	if err != nil {
		return nil, err
	}

	if friend.UserID != userID {
		return nil, repositories.ErrFriendNotFound
	}

	friend.Balance = friend.Balance.Add(delta)
	if err := s.friendRepo.Update(friend); err != nil {
		slog.Error("failed to update friend balance",
			"friend_id", friendID,
			"error", err)
		return nil, err
	}

	return friend, nil
}

// DeleteFriend removes one of the user's friends
func (s *friendService) DeleteFriend(friendID, userID uuid.UUID) error {
	friend, err := s.friendRepo.GetByID(friendID)
	if err != nil {
		return err
	}

	if friend.UserID != userID {
		return repositories.ErrFriendNotFound
	}

	return s.friendRepo.Delete(friendID)
}
