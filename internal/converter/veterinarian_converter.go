package converter

import (
	"vet-clinic-booking/internal/delivery/dto"
	"vet-clinic-booking/internal/domain/entity"

	"github.com/google/uuid"
)

// VeterinarianProfileToResponse converts a VeterinarianProfile entity to a DTO
func VeterinarianProfileToResponse(profile *entity.VeterinarianProfile) *dto.VeterinarianResponse {
	if profile == nil {
		return nil
	}

	response := &dto.VeterinarianResponse{
		ID:                profile.UserID,
		Specialization:    profile.Specialization,
		PhoneNumber:       profile.PhoneNumber,
		Address:           profile.Address,
		YearsOfExperience: profile.YearsOfExperience,
		ConsultationPrice: profile.ConsultationPrice,
		PhotoURL:          profile.PhotoURL,
	}

	if profile.User.ID != uuid.Nil {
		response.FullName = profile.User.FullName
		response.Email = profile.User.Email
	}

	return response
}

// VeterinarianProfilesToResponses converts a slice of profiles to DTOs
func VeterinarianProfilesToResponses(profiles []entity.VeterinarianProfile) []dto.VeterinarianResponse {
	responses := make([]dto.VeterinarianResponse, len(profiles))
	for i := range profiles {
		responses[i] = *VeterinarianProfileToResponse(&profiles[i])
	}
	return responses
}
