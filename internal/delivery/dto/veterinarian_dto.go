package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type UpdateVeterinarianRequest struct {
	Specialization    string           `json:"specialization" validate:"omitempty,min=2,max=100"`
	PhoneNumber       string           `json:"phone_number" validate:"omitempty,max=50"`
	Address           string           `json:"address" validate:"omitempty,max=255"`
	YearsOfExperience *int             `json:"years_of_experience" validate:"omitempty,gte=0"`
	ConsultationPrice *decimal.Decimal `json:"consultation_price" validate:"omitempty"`
	PhotoURL          string           `json:"photo_url" validate:"omitempty,url"`
}

// Response DTOs

type VeterinarianResponse struct {
	ID                uuid.UUID       `json:"id"`
	FullName          string          `json:"full_name"`
	Email             string          `json:"email,omitempty"`
	Specialization    string          `json:"specialization"`
	PhoneNumber       string          `json:"phone_number,omitempty"`
	Address           string          `json:"address,omitempty"`
	YearsOfExperience int             `json:"years_of_experience"`
	ConsultationPrice decimal.Decimal `json:"consultation_price"`
	PhotoURL          string          `json:"photo_url,omitempty"`
}

type VeterinarianListResponse struct {
	Veterinarians []VeterinarianResponse `json:"veterinarians"`
	Total         int                    `json:"total"`
}
