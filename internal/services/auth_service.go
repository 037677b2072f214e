package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Abdullah149081/career-connect-backend/internal/auth"
	"github.com/Abdullah149081/career-connect-backend/internal/config"
	"github.com/Abdullah149081/career-connect-backend/internal/email"
	"github.com/Abdullah149081/career-connect-backend/internal/logger"
	"github.com/Abdullah149081/career-connect-backend/internal/models"
	"github.com/Abdullah149081/career-connect-backend/internal/repositories"
	"github.com/Abdullah149081/career-connect-backend/internal/services/dto"
	"github.com/Abdullah149081/career-connect-backend/pkg/apperrors"
)

const refreshTokenTTL = 30 * 24 * time.Hour

type AuthService interface {
	Register(ctx context.Context, db *gorm.DB, req *dto.RegisterRequest) (*dto.UserResponse, error)
	Login(ctx context.Context, db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error)
	RefreshToken(ctx context.Context, db *gorm.DB, req *dto.RefreshTokenRequest) (*dto.AuthResponse, error)
	Logout(ctx context.Context, db *gorm.DB, req *dto.LogoutRequest) error
	VerifyEmail(ctx context.Context, db *gorm.DB, token string) (*dto.UserResponse, error)
	GetProfile(ctx context.Context, db *gorm.DB, userID string) (*dto.UserResponse, error)
	UpdateProfile(ctx context.Context, db *gorm.DB, userID string, req *dto.UpdateProfileRequest) (*dto.UserResponse, error)
	ChangePassword(ctx context.Context, db *gorm.DB, userID string, req *dto.ChangePasswordRequest) error
}

type authService struct {
	userRepo         repositories.UserRepository
	refreshTokenRepo repositories.RefreshTokenRepository
	emailService     email.Provider
}

func NewAuthService(
	userRepo repositories.UserRepository,
	refreshTokenRepo repositories.RefreshTokenRepository,
	emailService email.Provider,
) AuthService {
	return &authService{
		userRepo:         userRepo,
		refreshTokenRepo: refreshTokenRepo,
		emailService:     emailService,
	}
}

// Register creates the account and sends the verification email inside
// one transaction. A failed send rolls the account back: the user can
// simply register again.
func (s *authService) Register(ctx context.Context, db *gorm.DB, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	if req.Role != models.UserRoleEmployer && req.Role != models.UserRoleJobSeeker {
		return nil, apperrors.ErrInvalidUserRole
	}
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:             req.Email,
		PasswordHash:      hash,
		Role:              req.Role,
		Status:            models.UserStatusPending,
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		PhoneNumber:       req.PhoneNumber,
		CompanyName:       req.CompanyName,
		VerificationToken: uuid.NewString(),
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := s.userRepo.Create(tx, user); err != nil {
			if errors.Is(err, repositories.ErrUserAlreadyExists) {
				return apperrors.ErrEmailAlreadyExists
			}
			return err
		}
		return s.sendVerificationEmail(user)
	})
	if err != nil {
		return nil, err
	}

	logger.CtxInfo(ctx, "user registered", "user_id", user.ID, "role", user.Role)

	resp := dto.ToUserResponse(user)
	return &resp, nil
}

func (s *authService) sendVerificationEmail(user *models.User) error {
	cfg := config.GetConfig()
	link := fmt.Sprintf("%s/verify-email?token=%s", cfg.Frontend.BaseURL, user.VerificationToken)

	return s.emailService.SendWithTemplate(email.TemplateVerification, email.TemplateData{
		"FirstName":        user.FirstName,
		"VerificationLink": link,
	}, &email.Email{
		To:      []string{user.Email},
		Subject: "Verify your CareerConnect account",
	})
}

func (s *authService) Login(ctx context.Context, db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if !user.IsVerified {
		return nil, apperrors.ErrUserNotVerified
	}
	if user.Status == models.UserStatusSuspended {
		return nil, apperrors.ErrUserSuspended
	}

	return s.issueTokens(ctx, db, user)
}

func (s *authService) issueTokens(ctx context.Context, db *gorm.DB, user *models.User) (*dto.AuthResponse, error) {
	accessToken, err := auth.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken := &models.RefreshToken{
		UserID:    user.ID,
		Token:     uuid.NewString(),
		ExpiresAt: time.Now().Add(refreshTokenTTL),
	}
	if err := s.refreshTokenRepo.Create(db, refreshToken); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	logger.CtxInfo(ctx, "tokens issued", "user_id", user.ID)

	return &dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken.Token,
		User:         dto.ToUserResponse(user),
	}, nil
}

// RefreshToken rotates the refresh token: the presented token is
// consumed and a new pair is issued.
func (s *authService) RefreshToken(ctx context.Context, db *gorm.DB, req *dto.RefreshTokenRequest) (*dto.AuthResponse, error) {
	stored, err := s.refreshTokenRepo.FindByToken(db, req.RefreshToken)
	if err != nil {
		if errors.Is(err, repositories.ErrRefreshTokenNotFound) {
			return nil, apperrors.ErrInvalidToken
		}
		return nil, err
	}

	if time.Now().After(stored.ExpiresAt) {
		_ = s.refreshTokenRepo.DeleteByToken(db, stored.Token)
		return nil, apperrors.ErrInvalidToken
	}

	user, err := s.userRepo.FindByID(db, stored.UserID)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}
	if user.Status == models.UserStatusSuspended {
		return nil, apperrors.ErrUserSuspended
	}

	if err := s.refreshTokenRepo.DeleteByToken(db, stored.Token); err != nil {
		return nil, err
	}
	return s.issueTokens(ctx, db, user)
}

func (s *authService) Logout(ctx context.Context, db *gorm.DB, req *dto.LogoutRequest) error {
	if err := s.refreshTokenRepo.DeleteByToken(db, req.RefreshToken); err != nil {
		return err
	}
	logger.CtxInfo(ctx, "user logged out")
	return nil
}

func (s *authService) VerifyEmail(ctx context.Context, db *gorm.DB, token string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByVerificationToken(db, token)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidToken
		}
		return nil, err
	}

	user.IsVerified = true
	user.Status = models.UserStatusActive
	user.VerificationToken = ""
	if err := s.userRepo.Update(db, user); err != nil {
		return nil, err
	}

	logger.CtxInfo(ctx, "email verified", "user_id", user.ID)

	resp := dto.ToUserResponse(user)
	return &resp, nil
}

func (s *authService) GetProfile(ctx context.Context, db *gorm.DB, userID string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, err
	}

	resp := dto.ToUserResponse(user)
	return &resp, nil
}

func (s *authService) UpdateProfile(ctx context.Context, db *gorm.DB, userID string, req *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, err
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.PhoneNumber != nil {
		user.PhoneNumber = *req.PhoneNumber
	}
	if req.CompanyName != nil {
		user.CompanyName = *req.CompanyName
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}

	if err := s.userRepo.Update(db, user); err != nil {
		return nil, err
	}

	resp := dto.ToUserResponse(user)
	return &resp, nil
}

func (s *authService) ChangePassword(ctx context.Context, db *gorm.DB, userID string, req *dto.ChangePasswordRequest) error {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return err
	}

	if !auth.CheckPasswordHash(req.CurrentPassword, user.PasswordHash) {
		return apperrors.ErrInvalidCredentials
	}
	if err := auth.ValidatePassword(req.NewPassword); err != nil {
		return apperrors.ErrWeakPassword
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user.PasswordHash = hash
	return db.Transaction(func(tx *gorm.DB) error {
		if err := s.userRepo.Update(tx, user); err != nil {
			return err
		}
		// Drop every session on password change.
		return s.refreshTokenRepo.DeleteByUser(tx, userID)
	})
}
