package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type RegisterOwnerRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	FullName string `json:"full_name" validate:"required,min=2,max=255"`
}

type RegisterVeterinarianRequest struct {
	Email             string          `json:"email" validate:"required,email"`
	Password          string          `json:"password" validate:"required,min=8"`
	FullName          string          `json:"full_name" validate:"required,min=2,max=255"`
	Specialization    string          `json:"specialization" validate:"required,min=2,max=100"`
	PhoneNumber       string          `json:"phone_number" validate:"omitempty,max=50"`
	Address           string          `json:"address" validate:"omitempty,max=255"`
	YearsOfExperience int             `json:"years_of_experience" validate:"gte=0"`
	ConsultationPrice decimal.Decimal `json:"consultation_price" validate:"required"`
	PhotoURL          string          `json:"photo_url" validate:"omitempty,url"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// Response DTOs

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}
