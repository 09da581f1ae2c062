package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"fintrack/internal/dto"
	apierrors "fintrack/internal/errors"
	"fintrack/internal/repositories"
	"fintrack/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// AuthHandler handles registration, login and token lifecycle
type AuthHandler struct {
	authService services.AuthServiceInterface
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService services.AuthServiceInterface) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register creates a new user account
//
// Method: POST /api/v1/auth/register
// Authentication: none
func (h *AuthHandler) Register(c echo.Context) error {
	var req dto.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat,
			apierrors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(&req); err != nil {
		return sendValidationError(c, err)
	}

	user, err := h.authService.Register(&req)
	if err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return SendError(c, apierrors.UserAlreadyExists)
		}

		if isPasswordPolicyError(err) {
			return SendError(c, apierrors.ValidationGeneral,
				apierrors.WithDetails(err.Error()))
		}

		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data: map[string]interface{}{
			"id":           user.ID,
			"email":        user.Email,
			"display_name": user.DisplayName,
		},
		Message: "account created",
	})
}

// Login authenticates a user and issues a token pair
//
// Method: POST /api/v1/auth/login
// Authentication: none
func (h *AuthHandler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat,
			apierrors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(&req); err != nil {
		return sendValidationError(c, err)
	}

	tokens, user, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			slog.Warn("failed login attempt",
				"email", req.Email,
				"ip", getClientIP(c))
			return SendError(c, apierrors.AuthInvalidCredentials)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: map[string]interface{}{
			"tokens": tokens,
			"user": map[string]interface{}{
				"id":           user.ID,
				"email":        user.Email,
				"display_name": user.DisplayName,
			},
		},
	})
}

// Refresh exchanges a valid refresh token for a new token pair. The used
// refresh token is revoked.
//
// Method: POST /api/v1/auth/refresh
// Authentication: none (refresh token in body)
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req dto.RefreshRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat,
			apierrors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(&req); err != nil {
		return sendValidationError(c, err)
	}

	tokens, err := h.authService.Refresh(req.RefreshToken)
	if err != nil {
		if errors.Is(err, services.ErrRefreshTokenInvalid) || errors.Is(err, services.ErrInvalidToken) {
			return SendError(c, apierrors.AuthInvalidTokenFormat)
		}
		if errors.Is(err, services.ErrExpiredToken) {
			return SendError(c, apierrors.AuthExpiredToken)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: tokens,
	})
}

// Logout revokes the presented refresh token
//
// Method: POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c echo.Context) error {
	var req dto.RefreshRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat,
			apierrors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(&req); err != nil {
		return sendValidationError(c, err)
	}

	if err := h.authService.Logout(req.RefreshToken); err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "logged out",
	})
}

// LogoutAll revokes every active session for the authenticated user
//
// Method: POST /api/v1/auth/logout-all
// Authentication: required
func (h *AuthHandler) LogoutAll(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	if err := h.authService.LogoutAll(userID); err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "all sessions revoked",
	})
}

func isPasswordPolicyError(err error) bool {
	for _, policyErr := range []error{
		services.ErrPasswordEmpty,
		services.ErrPasswordTooShort,
		services.ErrPasswordTooLong,
		services.ErrPasswordNoUppercase,
		services.ErrPasswordNoLowercase,
		services.ErrPasswordNoNumber,
	} {
		if errors.Is(err, policyErr) {
			return true
		}
	}
	return false
}

// sendValidationError converts validator errors into field-level details
func sendValidationError(c echo.Context, err error) error {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		fields := make(map[string]string, len(validationErrors))
		for _, fieldErr := range validationErrors {
			fields[fieldErr.Field()] = fieldErr.Tag()
		}
		return c.JSON(http.StatusBadRequest,
			apierrors.NewValidationError(fields, getTraceID(c)))
	}

	return SendError(c, apierrors.ValidationGeneral)
}
