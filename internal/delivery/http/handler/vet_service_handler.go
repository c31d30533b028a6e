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

type VetServiceHandler struct {
	vetServiceUsecase usecase.VetServiceUsecase
	validator         *validator.CustomValidator
}

func NewVetServiceHandler(vetServiceUsecase usecase.VetServiceUsecase, validator *validator.CustomValidator) *VetServiceHandler {
	return &VetServiceHandler{
		vetServiceUsecase: vetServiceUsecase,
		validator:         validator,
	}
}

func (h *VetServiceHandler) CreateService(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateVetServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	svc, err := h.vetServiceUsecase.Create(r.Context(), actorID, &req)
	if err != nil {
		switch err {
		case usecase.ErrServiceNameAlreadyExists:
			response.Conflict(w, "Service name already exists")
		default:
			response.InternalServerError(w, "Failed to create service")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Service created successfully", svc)
}

func (h *VetServiceHandler) GetServices(w http.ResponseWriter, r *http.Request) {
	services, err := h.vetServiceUsecase.GetAll(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get services")
		return
	}

	response.Success(w, http.StatusOK, "Services retrieved successfully", services)
}

func (h *VetServiceHandler) GetService(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	serviceID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid service ID", nil)
		return
	}

	svc, err := h.vetServiceUsecase.GetByID(r.Context(), serviceID)
	if err != nil {
		switch err {
		case usecase.ErrServiceNotFound:
			response.NotFound(w, "Service not found")
		default:
			response.InternalServerError(w, "Failed to get service")
		}
		return
	}

	response.Success(w, http.StatusOK, "Service retrieved successfully", svc)
}
