package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateBookingRequest struct {
	PetID          uuid.UUID `json:"pet_id" validate:"required"`
	VeterinarianID uuid.UUID `json:"veterinarian_id" validate:"required"`
	ServiceID      uuid.UUID `json:"service_id" validate:"required"`
	AdmissionAt    string    `json:"admission_at" validate:"required"` // RFC 3339
}

// Response DTOs

type BookingResponse struct {
	ID             uuid.UUID             `json:"id"`
	OwnerID        uuid.UUID             `json:"owner_id"`
	PetID          uuid.UUID             `json:"pet_id"`
	VeterinarianID uuid.UUID             `json:"veterinarian_id"`
	ServiceID      uuid.UUID             `json:"service_id"`
	AdmissionAt    time.Time             `json:"admission_at"`
	IsAccepted     bool                  `json:"is_accepted"`
	Pet            *PetResponse          `json:"pet,omitempty"`
	Veterinarian   *VeterinarianResponse `json:"veterinarian,omitempty"`
	Service        *VetServiceResponse   `json:"service,omitempty"`
	CreatedAt      time.Time             `json:"created_at"`
	UpdatedAt      time.Time             `json:"updated_at"`
}

type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

// ConfirmationResponse summarizes an accepted booking; the same fields
// go to the e-mail template.
type ConfirmationResponse struct {
	BookingID        uuid.UUID `json:"booking_id"`
	CustomerName     string    `json:"customer_name"`
	PetName          string    `json:"pet_name"`
	VeterinarianName string    `json:"veterinarian_name"`
	ServiceName      string    `json:"service_name"`
	TotalPrice       string    `json:"total_price"`
	AdmissionDate    string    `json:"admission_date"` // YYYY-MM-DD
	AdmissionTime    string    `json:"admission_time"` // HH:MM
	PhotoURL         string    `json:"photo_url,omitempty"`
}
