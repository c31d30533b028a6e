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

type BookingHandler struct {
	bookingUsecase usecase.BookingUsecase
	validator      *validator.CustomValidator
}

func NewBookingHandler(bookingUsecase usecase.BookingUsecase, validator *validator.CustomValidator) *BookingHandler {
	return &BookingHandler{
		bookingUsecase: bookingUsecase,
		validator:      validator,
	}
}

func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	booking, err := h.bookingUsecase.CreateBooking(r.Context(), ownerID, &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidAdmissionTime:
			response.BadRequest(w, "Invalid admission time, use RFC 3339 format")
		case usecase.ErrOwnerNotFound:
			response.NotFound(w, "Owner not found")
		case usecase.ErrPetNotFound:
			response.NotFound(w, "Pet not found")
		case usecase.ErrVeterinarianNotFound:
			response.NotFound(w, "Veterinarian not found")
		case usecase.ErrServiceNotFound:
			response.NotFound(w, "Service not found")
		case usecase.ErrSterilizationAlreadyBooked:
			response.Conflict(w, "Pet already has an upcoming sterilization booking")
		case usecase.ErrSlotAlreadyTaken:
			response.Conflict(w, "Veterinarian already has an appointment at this time")
		default:
			response.InternalServerError(w, "Failed to create booking")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Booking created successfully", booking)
}

func (h *BookingHandler) AcceptBooking(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	vars := mux.Vars(r)
	bookingID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid booking ID", nil)
		return
	}

	confirmation, err := h.bookingUsecase.AcceptBooking(r.Context(), bookingID, &actorID)
	if err != nil {
		switch err {
		case usecase.ErrBookingNotFound:
			response.NotFound(w, "Booking not found")
		case usecase.ErrBookingAlreadyAccepted:
			response.Conflict(w, "Booking has already been accepted")
		default:
			response.InternalServerError(w, "Failed to accept booking")
		}
		return
	}

	response.Success(w, http.StatusOK, "Booking accepted successfully", confirmation)
}

func (h *BookingHandler) GetMyBookings(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	bookings, err := h.bookingUsecase.GetOwnerBookings(r.Context(), ownerID)
	if err != nil {
		response.InternalServerError(w, "Failed to get bookings")
		return
	}

	response.Success(w, http.StatusOK, "Bookings retrieved successfully", bookings)
}

func (h *BookingHandler) GetVeterinarianBookings(w http.ResponseWriter, r *http.Request) {
	veterinarianID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	bookings, err := h.bookingUsecase.GetVeterinarianBookings(r.Context(), veterinarianID)
	if err != nil {
		response.InternalServerError(w, "Failed to get bookings")
		return
	}

	response.Success(w, http.StatusOK, "Bookings retrieved successfully", bookings)
}
