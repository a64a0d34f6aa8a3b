package services

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Facu14carrizo/StuntProAR/internal/auth"
	"github.com/Facu14carrizo/StuntProAR/internal/logger"
	"github.com/Facu14carrizo/StuntProAR/internal/mailer"
	"github.com/Facu14carrizo/StuntProAR/internal/models"
	"github.com/Facu14carrizo/StuntProAR/internal/repositories"
	"github.com/Facu14carrizo/StuntProAR/internal/services/dto"
	"github.com/Facu14carrizo/StuntProAR/pkg/apperrors"
)

const refreshTokenTTL = 30 * 24 * time.Hour

// Matches the sign-up form check: something@something.something, no
// whitespace.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// AuthService handles registration, sign-in and token rotation. Unlike
// the discovery surfaces, auth errors are always user-visible.
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*dto.AuthResponse, error)
	Logout(ctx context.Context, refreshToken string) error
	CurrentUser(ctx context.Context, userID string) (*dto.UserDTO, error)
}

type authService struct {
	userRepo repositories.UserRepository
	mail     mailer.Sender
}

func NewAuthService(userRepo repositories.UserRepository, mail mailer.Sender) AuthService {
	return &authService{userRepo: userRepo, mail: mail}
}

// Register validates the form locally before touching the store, so bad
// input never costs a round trip.
func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if strings.TrimSpace(req.FullName) == "" {
		return nil, apperrors.ErrFullNameRequired
	}
	if !emailPattern.MatchString(req.Email) {
		return nil, apperrors.ErrInvalidEmail
	}
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.RegisteredUser{
		Email:        strings.ToLower(req.Email),
		FullName:     strings.TrimSpace(req.FullName),
		PasswordHash: hash,
	}
	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	go func() {
		if err := s.mail.SendWelcome(user.Email, user.FullName); err != nil {
			logger.Warn("welcome email failed", "email", user.Email, "error", err)
		}
	}()

	return s.issueTokens(ctx, user)
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}
	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}
	return s.issueTokens(ctx, user)
}

// Refresh rotates the refresh token: the presented token is revoked and
// a fresh pair is issued, so a leaked token works at most once.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (*dto.AuthResponse, error) {
	stored, err := s.userRepo.FindRefreshToken(refreshToken)
	if err != nil {
		if errors.Is(err, repositories.ErrTokenNotFound) {
			return nil, apperrors.ErrInvalidToken
		}
		return nil, apperrors.InternalError(err)
	}
	if time.Now().After(stored.ExpiresAt) {
		_ = s.userRepo.DeleteRefreshToken(refreshToken)
		return nil, apperrors.ErrInvalidToken
	}

	user, err := s.userRepo.FindByID(stored.UserID)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	if err := s.userRepo.DeleteRefreshToken(refreshToken); err != nil {
		logger.CtxWarn(ctx, "stale refresh token not revoked", "error", err)
	}
	return s.issueTokens(ctx, user)
}

func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	if err := s.userRepo.DeleteRefreshToken(refreshToken); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *authService) CurrentUser(ctx context.Context, userID string) (*dto.UserDTO, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidToken
		}
		return nil, apperrors.InternalError(err)
	}
	u := toUserDTO(user)
	return &u, nil
}

func (s *authService) issueTokens(ctx context.Context, user *models.RegisteredUser) (*dto.AuthResponse, error) {
	access, err := auth.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	refresh := &models.RefreshToken{
		UserID:    user.ID,
		Token:     uuid.NewString(),
		ExpiresAt: time.Now().Add(refreshTokenTTL),
	}
	if err := s.userRepo.CreateRefreshToken(refresh); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{
		AccessToken:  access,
		RefreshToken: refresh.Token,
		User:         toUserDTO(user),
	}, nil
}

func toUserDTO(user *models.RegisteredUser) dto.UserDTO {
	return dto.UserDTO{
		ID:        user.ID,
		Email:     user.Email,
		FullName:  user.FullName,
		CreatedAt: user.CreatedAt,
	}
}
