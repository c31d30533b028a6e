package usecase

import (
	"context"
	"errors"
	"time"

	"vet-clinic-booking/config"
	"vet-clinic-booking/internal/converter"
	"vet-clinic-booking/internal/delivery/dto"
	"vet-clinic-booking/internal/domain/entity"
	"vet-clinic-booking/internal/domain/repository"
	"vet-clinic-booking/internal/service"
	"vet-clinic-booking/pkg/clock"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrOwnerNotFound              = errors.New("owner not found")
	ErrPetNotFound                = errors.New("pet not found")
	ErrVeterinarianNotFound       = errors.New("veterinarian not found")
	ErrServiceNotFound            = errors.New("service not found")
	ErrSterilizationAlreadyBooked = errors.New("pet already has an upcoming sterilization booking")
	ErrSlotAlreadyTaken           = errors.New("veterinarian already has an appointment at this time")
	ErrBookingNotFound            = errors.New("booking not found")
	ErrBookingAlreadyAccepted     = errors.New("booking has already been accepted")
	ErrInvalidAdmissionTime       = errors.New("invalid admission time, use RFC 3339 format")
)

type BookingUsecase interface {
	CreateBooking(ctx context.Context, ownerID uuid.UUID, req *dto.CreateBookingRequest) (*dto.BookingResponse, error)
	AcceptBooking(ctx context.Context, bookingID uuid.UUID, actorID *uuid.UUID) (*dto.ConfirmationResponse, error)
	GetOwnerBookings(ctx context.Context, ownerID uuid.UUID) (*dto.BookingListResponse, error)
	GetVeterinarianBookings(ctx context.Context, veterinarianID uuid.UUID) (*dto.BookingListResponse, error)
}

type bookingUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	cfg          config.BookingConfig
	clk          clock.Clock
	userRepo     repository.UserRepository
	petRepo      repository.PetRepository
	vetRepo      repository.VeterinarianProfileRepository
	serviceRepo  repository.VetServiceRepository
	bookingRepo  repository.BookingRepository
	scheduleRepo repository.ScheduleEntryRepository
	slotReserver service.SlotReserver
	notifier     service.Notifier
	audit        service.AuditService
}

func NewBookingUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	cfg config.BookingConfig,
	clk clock.Clock,
	userRepo repository.UserRepository,
	petRepo repository.PetRepository,
	vetRepo repository.VeterinarianProfileRepository,
	serviceRepo repository.VetServiceRepository,
	bookingRepo repository.BookingRepository,
	scheduleRepo repository.ScheduleEntryRepository,
	slotReserver service.SlotReserver,
	notifier service.Notifier,
	audit service.AuditService,
) BookingUsecase {
	return &bookingUsecase{
		db:           db,
		log:          log,
		cfg:          cfg,
		clk:          clk,
		userRepo:     userRepo,
		petRepo:      petRepo,
		vetRepo:      vetRepo,
		serviceRepo:  serviceRepo,
		bookingRepo:  bookingRepo,
		scheduleRepo: scheduleRepo,
		slotReserver: slotReserver,
		notifier:     notifier,
		audit:        audit,
	}
}

// validateBooking applies the admission rules in a fixed order; the
// first failing rule decides the error the caller sees. Read-only.
func (u *bookingUsecase) validateBooking(db *gorm.DB, ownerID uuid.UUID, req *dto.CreateBookingRequest, admissionAt time.Time) error {
	owner, err := u.userRepo.FindByID(db, ownerID)
	if err != nil {
		u.log.Warnf("Failed to find owner %s: %+v", ownerID, err)
		return err
	}
	if owner == nil {
		return ErrOwnerNotFound
	}

	pet, err := u.petRepo.FindByID(db, req.PetID)
	if err != nil {
		u.log.Warnf("Failed to find pet %s: %+v", req.PetID, err)
		return err
	}
	if pet == nil {
		return ErrPetNotFound
	}

	vet, err := u.vetRepo.FindByUserID(db, req.VeterinarianID)
	if err != nil {
		u.log.Warnf("Failed to find veterinarian %s: %+v", req.VeterinarianID, err)
		return err
	}
	if vet == nil {
		return ErrVeterinarianNotFound
	}

	svc, err := u.serviceRepo.FindByID(db, req.ServiceID)
	if err != nil {
		u.log.Warnf("Failed to find service %s: %+v", req.ServiceID, err)
		return err
	}
	if svc == nil {
		return ErrServiceNotFound
	}

	// Sterilization rule: at most one booking per pet with an admission
	// time still in the future, pending or accepted alike. A request for
	// a past timestamp is deliberately not blocked by this rule.
	if u.cfg.SterilizationServiceID != uuid.Nil && svc.ID == u.cfg.SterilizationServiceID {
		hasFuture, err := u.bookingRepo.HasFutureBooking(db, req.PetID, req.ServiceID, u.clk.Now())
		if err != nil {
			u.log.Warnf("Failed to check sterilization bookings for pet %s: %+v", req.PetID, err)
			return err
		}
		if hasFuture {
			return ErrSterilizationAlreadyBooked
		}
	}

	// Slot uniqueness is exact timestamp equality, no tolerance window.
	taken, err := u.scheduleRepo.ExistsAt(db, req.VeterinarianID, admissionAt)
	if err != nil {
		u.log.Warnf("Failed to check schedule for veterinarian %s: %+v", req.VeterinarianID, err)
		return err
	}
	if taken {
		return ErrSlotAlreadyTaken
	}

	return nil
}

// CreateBooking validates the request and persists the booking together
// with the veterinarian's schedule entry.
//
// Flow:
// 1. Run the admission rules (read-only)
// 2. Acquire a Redis hold on (veterinarian, timestamp)
// 3. Insert booking + schedule entry in one transaction
// 4. On failure release the hold; a unique-index violation on the
//    schedule entry maps back to the slot-taken error
func (u *bookingUsecase) CreateBooking(ctx context.Context, ownerID uuid.UUID, req *dto.CreateBookingRequest) (*dto.BookingResponse, error) {
	admissionAt, err := time.Parse(time.RFC3339, req.AdmissionAt)
	if err != nil {
		return nil, ErrInvalidAdmissionTime
	}

	if err := u.validateBooking(u.db.WithContext(ctx), ownerID, req, admissionAt); err != nil {
		return nil, err
	}

	// Two requests can both pass validation; the hold makes sure only
	// one of them reaches the insert.
	if err := u.slotReserver.Reserve(ctx, req.VeterinarianID, admissionAt); err != nil {
		if errors.Is(err, service.ErrSlotHeld) {
			return nil, ErrSlotAlreadyTaken
		}
		return nil, err
	}
	defer u.slotReserver.Release(ctx, req.VeterinarianID, admissionAt)

	booking := &entity.Booking{
		OwnerID:        ownerID,
		PetID:          req.PetID,
		VeterinarianID: req.VeterinarianID,
		ServiceID:      req.ServiceID,
		AdmissionAt:    admissionAt,
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.bookingRepo.Create(tx, booking); err != nil {
		u.log.Warnf("Failed to insert booking: %+v", err)
		return nil, err
	}

	entry := &entity.ScheduleEntry{
		VeterinarianID: req.VeterinarianID,
		AppointmentAt:  admissionAt,
	}

	if err := u.scheduleRepo.Create(tx, entry); err != nil {
		if isDuplicateKeyError(err, "idx_vet_appointment") {
			return nil, ErrSlotAlreadyTaken
		}
		u.log.Warnf("Failed to insert schedule entry: %+v", err)
		return nil, err
	}

	u.audit.Record(tx, &ownerID, entity.AuditActionBookingCreate, entity.JSON{
		"booking_id":      booking.ID.String(),
		"pet_id":          req.PetID.String(),
		"veterinarian_id": req.VeterinarianID.String(),
		"service_id":      req.ServiceID.String(),
		"admission_at":    admissionAt,
	})

	if err := tx.Commit().Error; err != nil {
		u.log.Errorf("Failed to commit booking: %+v", err)
		return nil, err
	}

	u.log.Infof("Booking created: id=%s, veterinarian=%s, admission=%s", booking.ID, req.VeterinarianID, admissionAt)
	return converter.BookingToResponse(booking), nil
}

// AcceptBooking transitions a pending booking to accepted and hands the
// confirmation to the notifier.
//
// Flow:
// 1. One aggregate read: booking with owner, pet, veterinarian, service
// 2. Guarded update: accept only if still pending (second accept is a
//    conflict, not a second notification)
// 3. Total price = service base price + consultation price
// 4. Notify asynchronously; a delivery failure never rolls back the
//    acceptance already committed
func (u *bookingUsecase) AcceptBooking(ctx context.Context, bookingID uuid.UUID, actorID *uuid.UUID) (*dto.ConfirmationResponse, error) {
	booking, err := u.bookingRepo.FindByIDWithDetails(u.db.WithContext(ctx), bookingID)
	if err != nil {
		u.log.Warnf("Failed to find booking %s: %+v", bookingID, err)
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}

	affected, err := u.bookingRepo.MarkAccepted(u.db.WithContext(ctx), bookingID)
	if err != nil {
		u.log.Warnf("Failed to accept booking %s: %+v", bookingID, err)
		return nil, err
	}
	if affected == 0 {
		return nil, ErrBookingAlreadyAccepted
	}

	u.audit.Record(u.db.WithContext(ctx), actorID, entity.AuditActionBookingAccept, entity.JSON{
		"booking_id": bookingID.String(),
		"owner_id":   booking.OwnerID.String(),
	})

	totalPrice := booking.Service.BasePrice.Add(booking.Veterinarian.ConsultationPrice)

	confirmation := &dto.ConfirmationResponse{
		BookingID:        booking.ID,
		CustomerName:     booking.Owner.FullName,
		PetName:          booking.Pet.Name,
		VeterinarianName: booking.Veterinarian.User.FullName,
		ServiceName:      booking.Service.Name,
		TotalPrice:       totalPrice.StringFixed(2),
		AdmissionDate:    booking.AdmissionAt.Format("2006-01-02"),
		AdmissionTime:    booking.AdmissionAt.Format("15:04"),
		PhotoURL:         booking.Veterinarian.PhotoURL,
	}

	u.notifyAccepted(booking, confirmation)

	u.log.Infof("Booking accepted: id=%s, total=%s", bookingID, confirmation.TotalPrice)
	return confirmation, nil
}

// notifyAccepted delivers the confirmation in the background; the
// acceptance has already committed and stays committed either way.
func (u *bookingUsecase) notifyAccepted(booking *entity.Booking, confirmation *dto.ConfirmationResponse) {
	message := &service.BookingConfirmation{
		ToAddress:        booking.Owner.Email,
		CustomerName:     confirmation.CustomerName,
		PetName:          confirmation.PetName,
		VeterinarianName: confirmation.VeterinarianName,
		ServiceName:      confirmation.ServiceName,
		TotalPrice:       confirmation.TotalPrice,
		AdmissionDate:    confirmation.AdmissionDate,
		AdmissionTime:    confirmation.AdmissionTime,
		PhotoURL:         confirmation.PhotoURL,
	}

	go func() {
		sendCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := u.notifier.SendBookingConfirmation(sendCtx, message); err != nil {
			u.log.Errorf("Failed to send confirmation for booking %s: %+v", booking.ID, err)
		}
	}()
}

func (u *bookingUsecase) GetOwnerBookings(ctx context.Context, ownerID uuid.UUID) (*dto.BookingListResponse, error) {
	bookings, err := u.bookingRepo.FindByOwnerID(u.db.WithContext(ctx), ownerID)
	if err != nil {
		u.log.Warnf("Failed to find bookings for owner %s: %+v", ownerID, err)
		return nil, err
	}

	return &dto.BookingListResponse{
		Bookings: converter.BookingsToResponses(bookings),
		Total:    len(bookings),
	}, nil
}

func (u *bookingUsecase) GetVeterinarianBookings(ctx context.Context, veterinarianID uuid.UUID) (*dto.BookingListResponse, error) {
	bookings, err := u.bookingRepo.FindByVeterinarianID(u.db.WithContext(ctx), veterinarianID)
	if err != nil {
		u.log.Warnf("Failed to find bookings for veterinarian %s: %+v", veterinarianID, err)
		return nil, err
	}

	return &dto.BookingListResponse{
		Bookings: converter.BookingsToResponses(bookings),
		Total:    len(bookings),
	}, nil
}
