package handler

import (
	"encoding/json"
	"net/http"

	"vet-clinic-booking/internal/delivery/dto"
	"vet-clinic-booking/internal/delivery/http/middleware"
	"vet-clinic-booking/internal/usecase"
	"vet-clinic-booking/pkg/response"
	"vet-clinic-booking/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type VeterinarianHandler struct {
	veterinarianUsecase usecase.VeterinarianUsecase
	validator           *validator.CustomValidator
}

func NewVeterinarianHandler(veterinarianUsecase usecase.VeterinarianUsecase, validator *validator.CustomValidator) *VeterinarianHandler {
	return &VeterinarianHandler{
		veterinarianUsecase: veterinarianUsecase,
		validator:           validator,
	}
}

func (h *VeterinarianHandler) GetVeterinarians(w http.ResponseWriter, r *http.Request) {
	specialization := r.URL.Query().Get("specialization")

	var (
		result *dto.VeterinarianListResponse
		err    error
	)
	if specialization != "" {
		result, err = h.veterinarianUsecase.GetBySpecialization(r.Context(), specialization)
	} else {
		result, err = h.veterinarianUsecase.GetAll(r.Context())
	}
	if err != nil {
		response.InternalServerError(w, "Failed to get veterinarians")
		return
	}

	response.Success(w, http.StatusOK, "Veterinarians retrieved successfully", result)
}

func (h *VeterinarianHandler) GetVeterinarian(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	veterinarianID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid veterinarian ID", nil)
		return
	}

	result, err := h.veterinarianUsecase.GetByID(r.Context(), veterinarianID)
	if err != nil {
		switch err {
		case usecase.ErrVeterinarianNotFound:
			response.NotFound(w, "Veterinarian not found")
		default:
			response.InternalServerError(w, "Failed to get veterinarian")
		}
		return
	}

	response.Success(w, http.StatusOK, "Veterinarian retrieved successfully", result)
}

func (h *VeterinarianHandler) UpdateMyProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.UpdateVeterinarianRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.veterinarianUsecase.Update(r.Context(), userID, &req)
	if err != nil {
		switch err {
		case usecase.ErrVeterinarianNotFound:
			response.NotFound(w, "Veterinarian profile not found")
		default:
			response.InternalServerError(w, "Failed to update profile")
		}
		return
	}

	response.Success(w, http.StatusOK, "Profile updated successfully", result)
}
