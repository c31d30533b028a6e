package converter

import (
	"vet-clinic-booking/internal/delivery/dto"
	"vet-clinic-booking/internal/domain/entity"
)

// PetToResponse converts a Pet entity to PetResponse DTO
func PetToResponse(pet *entity.Pet) *dto.PetResponse {
	if pet == nil {
		return nil
	}

	return &dto.PetResponse{
		ID:         pet.ID,
		Name:       pet.Name,
		Type:       pet.Type,
		Gender:     pet.Gender,
		Age:        pet.Age,
		Sterilized: pet.Sterilized,
		Vaccinated: pet.Vaccinated,
		CreatedAt:  pet.CreatedAt,
	}
}

// PetsToResponses converts a slice of Pet entities to PetResponse DTOs
func PetsToResponses(pets []entity.Pet) []dto.PetResponse {
	responses := make([]dto.PetResponse, len(pets))
	for i := range pets {
		responses[i] = *PetToResponse(&pets[i])
	}
	return responses
}
