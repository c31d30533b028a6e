package converter

import (
	"vet-clinic-booking/internal/delivery/dto"
	"vet-clinic-booking/internal/domain/entity"
)

// VetServiceToResponse converts a VetService entity to a DTO
func VetServiceToResponse(service *entity.VetService) *dto.VetServiceResponse {
	if service == nil {
		return nil
	}

	return &dto.VetServiceResponse{
		ID:             service.ID,
		Name:           service.Name,
		Description:    service.Description,
		BasePrice:      service.BasePrice,
		Specialization: service.Specialization,
	}
}

// VetServicesToResponses converts a slice of VetService entities to DTOs
func VetServicesToResponses(services []entity.VetService) []dto.VetServiceResponse {
	responses := make([]dto.VetServiceResponse, len(services))
	for i := range services {
		responses[i] = *VetServiceToResponse(&services[i])
	}
	return responses
}
