package dto

import (
	"time"

	"github.com/Abdullah149081/career-connect-backend/internal/models"
)

// ======================
// Request DTOs
// ======================

type RegisterRequest struct {
	Email     string          `json:"email" validate:"required,email"`
	Password  string          `json:"password" validate:"required,min=8"`
	Role      models.UserRole `json:"role" validate:"required,is-user-role"`
	FirstName string          `json:"first_name" validate:"required,max=100"`
	LastName  string          `json:"last_name" validate:"required,max=100"`

	// Employer-only fields
	CompanyName string `json:"company_name,omitempty" validate:"required_if=Role employer,max=200"`

	PhoneNumber string `json:"phone_number,omitempty" validate:"omitempty,max=30"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type VerifyEmailRequest struct {
	Token string `json:"token" validate:"required"`
}

type UpdateProfileRequest struct {
	FirstName   *string `json:"first_name,omitempty" validate:"omitempty,max=100"`
	LastName    *string `json:"last_name,omitempty" validate:"omitempty,max=100"`
	PhoneNumber *string `json:"phone_number,omitempty" validate:"omitempty,max=30"`
	CompanyName *string `json:"company_name,omitempty" validate:"omitempty,max=200"`
	Bio         *string `json:"bio,omitempty" validate:"omitempty,max=2000"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}

// ======================
// Response DTOs
// ======================

type AuthResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         UserResponse `json:"user"`
}

type UserResponse struct {
	ID          string            `json:"id"`
	Email       string            `json:"email"`
	Role        models.UserRole   `json:"role"`
	Status      models.UserStatus `json:"status"`
	FirstName   string            `json:"first_name"`
	LastName    string            `json:"last_name"`
	PhoneNumber string            `json:"phone_number,omitempty"`
	CompanyName string            `json:"company_name,omitempty"`
	Bio         string            `json:"bio,omitempty"`
	IsVerified  bool              `json:"is_verified"`
	CreatedAt   time.Time         `json:"created_at"`
}

func ToUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:          user.ID,
		Email:       user.Email,
		Role:        user.Role,
		Status:      user.Status,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		PhoneNumber: user.PhoneNumber,
		CompanyName: user.CompanyName,
		Bio:         user.Bio,
		IsVerified:  user.IsVerified,
		CreatedAt:   user.CreatedAt,
	}
}
