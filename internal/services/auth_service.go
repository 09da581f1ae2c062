package services

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"log/slog"
	"time"

	"fintrack/internal/dto"
	"fintrack/internal/models"
	"fintrack/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrRefreshTokenInvalid = errors.New("refresh token is invalid or revoked")
)

type authService struct {
	userRepo         repositories.UserRepositoryInterface
	refreshTokenRepo repositories.RefreshTokenRepositoryInterface
	tokenService     TokenServiceInterface
	passwordService  PasswordServiceInterface
}

// NewAuthService creates a new authentication service
func NewAuthService(
	userRepo repositories.UserRepositoryInterface,
	refreshTokenRepo repositories.RefreshTokenRepositoryInterface,
	tokenService TokenServiceInterface,
	passwordService PasswordServiceInterface,
) AuthServiceInterface {
	return &authService{
		userRepo:         userRepo,
		refreshTokenRepo: refreshTokenRepo,
		tokenService:     tokenService,
		passwordService:  passwordService,
	}
}

// Register creates a new user account
func (s *authService) Register(req *dto.RegisterRequest) (*models.User, error) {
	if _, err := s.userRepo.GetByEmail(req.Email); err == nil {
		return nil, repositories.ErrUserAlreadyExists
	} else if !errors.Is(err, repositories.ErrUserNotFound) {
		return nil, err
	}

	hash, err := s.passwordService.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hash,
		DisplayName:  req.DisplayName,
	}

	if err := s.userRepo.Create(user); err != nil {
		slog.Error("failed to create user",
			"email", req.Email,
			"error", err)
		return nil, err
	}

	slog.Info("user registered", "user_id", user.ID)
	return user, nil
}

// Login authenticates a user and issues a token pair
func (s *authService) Login(email, password string) (*dto.TokenPair, *models.User, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if err := s.passwordService.VerifyPassword(user.PasswordHash, password); err != nil {
		slog.Warn("failed login attempt", "email", email)
		return nil, nil, ErrInvalidCredentials
	}

	pair, err := s.issueTokenPair(user)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now()
	if err := s.userRepo.UpdateLastLogin(user.ID, now); err != nil {
		slog.Warn("failed to record last login",
			"user_id", user.ID,
			"error", err)
	}

	return pair, user, nil
}

// Refresh exchanges a valid refresh token for a new token pair, rotating
// the stored token
func (s *authService) Refresh(refreshToken string) (*dto.TokenPair, error) {
	userID, err := s.tokenService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, ErrRefreshTokenInvalid
	}

	stored, err := s.refreshTokenRepo.GetByTokenHash(hashToken(refreshToken))
	if err != nil {
		return nil, ErrRefreshTokenInvalid
	}

	if stored.IsRevoked() || stored.IsExpired() {
		return nil, ErrRefreshTokenInvalid
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, ErrRefreshTokenInvalid
	}

	if err := s.refreshTokenRepo.Revoke(stored.ID); err != nil {
		return nil, err
	}

	return s.issueTokenPair(user)
}

// Logout revokes the supplied refresh token
func (s *authService) Logout(refreshToken string) error {
	stored, err := s.refreshTokenRepo.GetByTokenHash(hashToken(refreshToken))
	if err != nil {
		if errors.Is(err, repositories.ErrRefreshTokenNotFound) {
			return ErrRefreshTokenInvalid
		}
		return err
	}

	return s.refreshTokenRepo.Revoke(stored.ID)
}

// LogoutAll revokes every active refresh token for a user and sweeps
// expired tokens from the store while it is at it
func (s *authService) LogoutAll(userID uuid.UUID) error {
	if err := s.refreshTokenRepo.RevokeAllForUser(userID); err != nil {
		return err
	}

	deleted, err := s.refreshTokenRepo.DeleteExpired()
	if err != nil {
		// Housekeeping only; the revocation already succeeded
		slog.Warn("failed to sweep expired refresh tokens", "error", err)
		return nil
	}
	if deleted > 0 {
		slog.Info("swept expired refresh tokens", "count", deleted)
	}

	slog.Info("all sessions revoked", "user_id", userID)
	return nil
}

func (s *authService) issueTokenPair(user *models.User) (*dto.TokenPair, error) {
	accessToken, accessExpiry, err := s.tokenService.GenerateAccessToken(user)
	if err != nil {
		return nil, err
	}

	refreshToken, refreshExpiry, err := s.tokenService.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, err
	}

	record := &models.RefreshToken{
		UserID:    user.ID,
		TokenHash: hashToken(refreshToken),
		ExpiresAt: refreshExpiry,
	}
	if err := s.refreshTokenRepo.Create(record); err != nil {
		return nil, err
	}

	return &dto.TokenPair{
		AccessToken:      accessToken,
		AccessExpiresAt:  accessExpiry,
		RefreshToken:     refreshToken,
		RefreshExpiresAt: refreshExpiry,
	}, nil
}

// hashToken stores only a digest of the refresh token so a database leak
// does not expose usable tokens
func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
