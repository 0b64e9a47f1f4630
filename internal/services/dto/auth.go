package dto

import "rabt_backend/internal/models"

type RegisterRequest struct {
	FullName string          `json:"full_name" binding:"required" validate:"required,min=2,max=100"`
	Email    string          `json:"email" binding:"required" validate:"required,email"`
	Password string          `json:"password" binding:"required" validate:"required,min=8"`
	Role     models.UserRole `json:"role" binding:"required" validate:"required,is-user-role"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required" validate:"required,email"`
	Password string `json:"password" binding:"required" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required" validate:"required"`
}

type ResetPasswordRequest struct {
	Email string `json:"email" binding:"required" validate:"required,email"`
}

type UpdatePasswordRequest struct {
	Token    string `json:"token" binding:"required" validate:"required"`
	Password string `json:"password" binding:"required" validate:"required,min=8"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required" validate:"required"`
	NewPassword     string `json:"new_password" binding:"required" validate:"required,min=8"`
}

type UserResponse struct {
	ID         string          `json:"id"`
	Email      string          `json:"email"`
	Role       models.UserRole `json:"role"`
	IsVerified bool            `json:"is_verified"`
	Profile    *models.Profile `json:"profile,omitempty"`
}

type LoginResponse struct {
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
	User         *UserResponse `json:"user"`
}
