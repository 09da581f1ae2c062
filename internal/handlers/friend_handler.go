package handlers

import (
	"errors"
	"net/http"

	"fintrack/internal/dto"
	apierrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/repositories"
	"fintrack/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// FriendHandler handles shared-expense contacts and their running balances
type FriendHandler struct {
	friendService services.FriendServiceInterface
}

// NewFriendHandler creates a new friend handler
func NewFriendHandler(friendService services.FriendServiceInterface) *FriendHandler {
	return &FriendHandler{
		friendService: friendService,
	}
}

// CreateFriend adds a contact for the authenticated user
//
// Method: POST /api/v1/friends
func (h *FriendHandler) CreateFriend(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	var req dto.CreateFriendRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat,
			apierrors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(&req); err != nil {
		return sendValidationError(c, err)
	}

	friend, err := h.friendService.CreateFriend(userID, &req)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data: toFriendResponse(friend),
	})
}

// ListFriends returns all contacts for the authenticated user
//
// Method: GET /api/v1/friends
func (h *FriendHandler) ListFriends(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	friends, err := h.friendService.GetUserFriends(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	responses := make([]dto.FriendResponse, 0, len(friends))
	for i := range friends {
		responses = append(responses, toFriendResponse(&friends[i]))
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: responses,
	})
}

// UpdateBalance applies a signed delta to a friend's running balance.
// Positive balances mean the friend owes the user.
//
// Method: POST /api/v1/friends/:id/balance
func (h *FriendHandler) UpdateBalance(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	friendID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, apierrors.FriendInvalidID)
	}

	var req dto.UpdateFriendBalanceRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat,
			apierrors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(&req); err != nil {
		return sendValidationError(c, err)
	}

	friend, err := h.friendService.UpdateFriendBalance(friendID, userID, req.Delta)
	if err != nil {
		if errors.Is(err, repositories.ErrFriendNotFound) {
			return SendError(c, apierrors.FriendNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: toFriendResponse(friend),
	})
}

// DeleteFriend removes a contact
//
// Method: DELETE /api/v1/friends/:id
func (h *FriendHandler) DeleteFriend(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	friendID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, apierrors.FriendInvalidID)
	}

	if err := h.friendService.DeleteFriend(friendID, userID); err != nil {
		if errors.Is(err, repositories.ErrFriendNotFound) {
			return SendError(c, apierrors.FriendNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func toFriendResponse(friend *models.Friend) dto.FriendResponse {
	return dto.FriendResponse{
		ID:      friend.ID,
		Name:    friend.Name,
		Email:   friend.Email,
		Balance: friend.Balance.String(),
	}
}
