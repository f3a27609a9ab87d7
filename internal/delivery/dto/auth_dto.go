package dto

import (
	"time"
)

// Request DTOs

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=patient doctor"`
}

// RegisterRequest always creates a patient account
type RegisterRequest struct {
	Name        string `json:"name" validate:"required,personname"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	Phone       string `json:"phone" validate:"omitempty,phone"`
	DateOfBirth string `json:"date_of_birth" validate:"omitempty,isodate"`
	Gender      string `json:"gender" validate:"omitempty,oneof=male female other"`
	Address     string `json:"address" validate:"omitempty,max=255"`
}

// UpdateProfileRequest holds optional fields; absent fields are left as they are
type UpdateProfileRequest struct {
	Name        *string `json:"name" validate:"omitempty,personname"`
	Phone       *string `json:"phone" validate:"omitempty,phone"`
	DateOfBirth *string `json:"date_of_birth" validate:"omitempty,isodate"`
	Gender      *string `json:"gender" validate:"omitempty,oneof=male female other"`
	Address     *string `json:"address" validate:"omitempty,max=255"`
	Bio         *string `json:"bio" validate:"omitempty,max=2000"`
}

// Response DTOs

type SessionResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      UserResponse `json:"user"`
}

type UserResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
	Phone       string    `json:"phone,omitempty"`
	DateOfBirth string    `json:"date_of_birth,omitempty"`
	Gender      string    `json:"gender,omitempty"`
	Address     string    `json:"address,omitempty"`
	Specialty   string    `json:"specialty,omitempty"`
	Experience  string    `json:"experience,omitempty"`
	Bio         string    `json:"bio,omitempty"`
	Credentials []string  `json:"credentials,omitempty"`
	CreatedAt   time.Time `json:"created_at,omitempty"`
}
