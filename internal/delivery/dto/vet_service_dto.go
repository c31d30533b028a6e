package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateVetServiceRequest struct {
	Name           string          `json:"name" validate:"required,min=2,max=255"`
	Description    string          `json:"description" validate:"omitempty"`
	BasePrice      decimal.Decimal `json:"base_price" validate:"required"`
	Specialization string          `json:"specialization" validate:"required,min=2,max=100"`
}

// Response DTOs

type VetServiceResponse struct {
	ID             uuid.UUID       `json:"id"`
	Name           string          `json:"name"`
	Description    string          `json:"description,omitempty"`
	BasePrice      decimal.Decimal `json:"base_price"`
	Specialization string          `json:"specialization"`
}

type VetServiceListResponse struct {
	Services []VetServiceResponse `json:"services"`
	Total    int                  `json:"total"`
}
