package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreatePetRequest struct {
	Name       string  `json:"name" validate:"required,min=1,max=255"`
	Type       string  `json:"type" validate:"omitempty,max=100"`
	Gender     string  `json:"gender" validate:"omitempty,max=20"`
	Age        float32 `json:"age" validate:"gte=0"`
	Sterilized bool    `json:"sterilized"`
	Vaccinated bool    `json:"vaccinated"`
}

// Response DTOs

type PetResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Type       string    `json:"type,omitempty"`
	Gender     string    `json:"gender,omitempty"`
	Age        float32   `json:"age"`
	Sterilized bool      `json:"sterilized"`
	Vaccinated bool      `json:"vaccinated"`
	CreatedAt  time.Time `json:"created_at"`
}

type PetListResponse struct {
	Pets  []PetResponse `json:"pets"`
	Total int           `json:"total"`
}
