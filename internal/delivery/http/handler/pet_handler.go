package handler

import (
	"encoding/json"
	"net/http"

	"vet-clinic-booking/internal/delivery/dto"
	"vet-clinic-booking/internal/delivery/http/middleware"
	"vet-clinic-booking/internal/usecase"
	"vet-clinic-booking/pkg/response"
	"vet-clinic-booking/pkg/validator"
)

type PetHandler struct {
	petUsecase usecase.PetUsecase
	validator  *validator.CustomValidator
}

func NewPetHandler(petUsecase usecase.PetUsecase, validator *validator.CustomValidator) *PetHandler {
	return &PetHandler{
		petUsecase: petUsecase,
		validator:  validator,
	}
}

func (h *PetHandler) CreatePet(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreatePetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	pet, err := h.petUsecase.Create(r.Context(), ownerID, &req)
	if err != nil {
		switch err {
		case usecase.ErrOwnerNotFound:
			response.NotFound(w, "Owner not found")
		default:
			response.InternalServerError(w, "Failed to create pet")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Pet created successfully", pet)
}

func (h *PetHandler) GetPets(w http.ResponseWriter, r *http.Request) {
	pets, err := h.petUsecase.GetAll(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get pets")
		return
	}

	response.Success(w, http.StatusOK, "Pets retrieved successfully", pets)
}

func (h *PetHandler) GetMyPets(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	pets, err := h.petUsecase.GetMyPets(r.Context(), ownerID)
	if err != nil {
		response.InternalServerError(w, "Failed to get pets")
		return
	}

	response.Success(w, http.StatusOK, "Pets retrieved successfully", pets)
}
