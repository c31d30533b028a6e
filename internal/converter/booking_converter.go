package converter

import (
	"vet-clinic-booking/internal/delivery/dto"
	"vet-clinic-booking/internal/domain/entity"

	"github.com/google/uuid"
)

// BookingToResponse converts a Booking entity to BookingResponse DTO
func BookingToResponse(booking *entity.Booking) *dto.BookingResponse {
	if booking == nil {
		return nil
	}

	response := &dto.BookingResponse{
		ID:             booking.ID,
		OwnerID:        booking.OwnerID,
		PetID:          booking.PetID,
		VeterinarianID: booking.VeterinarianID,
		ServiceID:      booking.ServiceID,
		AdmissionAt:    booking.AdmissionAt,
		IsAccepted:     booking.IsAccepted,
		CreatedAt:      booking.CreatedAt,
		UpdatedAt:      booking.UpdatedAt,
	}

	// Include related records when preloaded
	if booking.Pet.ID != uuid.Nil {
		response.Pet = PetToResponse(&booking.Pet)
	}
	if booking.Veterinarian.UserID != uuid.Nil {
		response.Veterinarian = VeterinarianProfileToResponse(&booking.Veterinarian)
	}
	if booking.Service.ID != uuid.Nil {
		response.Service = VetServiceToResponse(&booking.Service)
	}

	return response
}

// BookingsToResponses converts a slice of Booking entities to BookingResponse DTOs
func BookingsToResponses(bookings []entity.Booking) []dto.BookingResponse {
	responses := make([]dto.BookingResponse, len(bookings))
	for i := range bookings {
		responses[i] = *BookingToResponse(&bookings[i])
	}
	return responses
}
