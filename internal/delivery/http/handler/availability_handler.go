package handler

import (
	"net/http"

	"vet-clinic-booking/internal/usecase"
	"vet-clinic-booking/pkg/response"
)

type AvailabilityHandler struct {
	availabilityUsecase usecase.AvailabilityUsecase
}

func NewAvailabilityHandler(availabilityUsecase usecase.AvailabilityUsecase) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityUsecase: availabilityUsecase,
	}
}

// GetNearestSlot proposes the earliest admission time among all
// veterinarians with the requested specialization.
func (h *AvailabilityHandler) GetNearestSlot(w http.ResponseWriter, r *http.Request) {
	specialization := r.URL.Query().Get("specialization")
	if specialization == "" {
		response.BadRequest(w, "Query parameter 'specialization' is required")
		return
	}

	result, err := h.availabilityUsecase.FindNearestSlot(r.Context(), specialization)
	if err != nil {
		response.InternalServerError(w, "Failed to find nearest slot")
		return
	}

	response.Success(w, http.StatusOK, "Nearest slot retrieved successfully", result)
}
