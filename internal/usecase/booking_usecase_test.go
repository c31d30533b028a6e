package usecase

import (
	"context"
	"testing"
	"time"

	"vet-clinic-booking/config"
	"vet-clinic-booking/internal/delivery/dto"
	"vet-clinic-booking/internal/domain/entity"
	"vet-clinic-booking/internal/service"
	"vet-clinic-booking/pkg/clock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bookingFixture struct {
	mock         sqlmock.Sqlmock
	userRepo     *fakeUserRepo
	petRepo      *fakePetRepo
	vetRepo      *fakeVetRepo
	serviceRepo  *fakeServiceRepo
	bookingRepo  *fakeBookingRepo
	scheduleRepo *fakeScheduleRepo
	slotReserver *fakeSlotReserver
	notifier     *fakeNotifier
	audit        *fakeAudit
	uc           BookingUsecase

	now             time.Time
	ownerID         uuid.UUID
	petID           uuid.UUID
	vetID           uuid.UUID
	serviceID       uuid.UUID
	sterilizationID uuid.UUID
}

// newBookingFixture wires a usecase with an existing owner, pet,
// veterinarian, and two services (a regular one and sterilization).
func newBookingFixture(t *testing.T) *bookingFixture {
	t.Helper()

	f := &bookingFixture{
		userRepo:     &fakeUserRepo{users: map[uuid.UUID]*entity.User{}},
		petRepo:      &fakePetRepo{pets: map[uuid.UUID]*entity.Pet{}},
		vetRepo:      &fakeVetRepo{profiles: map[uuid.UUID]*entity.VeterinarianProfile{}},
		serviceRepo:  &fakeServiceRepo{services: map[uuid.UUID]*entity.VetService{}},
		bookingRepo:  &fakeBookingRepo{},
		scheduleRepo: &fakeScheduleRepo{},
		slotReserver: &fakeSlotReserver{},
		notifier:     newFakeNotifier(),
		audit:        &fakeAudit{},
		now:          time.Date(2024, 7, 15, 10, 0, 0, 0, time.UTC),
	}

	owner := &entity.User{ID: uuid.New(), Email: "owner@example.com", FullName: "Jane Harris", RoleID: entity.RoleIDOwner, IsActive: true}
	f.userRepo.users[owner.ID] = owner
	f.ownerID = owner.ID

	pet := &entity.Pet{ID: uuid.New(), Name: "Rex"}
	f.petRepo.pets[pet.ID] = pet
	f.petID = pet.ID

	vetUser := &entity.User{ID: uuid.New(), Email: "vet@example.com", FullName: "Dr. Alvarez", RoleID: entity.RoleIDVeterinarian, IsActive: true}
	f.userRepo.users[vetUser.ID] = vetUser
	profile := &entity.VeterinarianProfile{
		UserID:            vetUser.ID,
		Specialization:    "surgery",
		ConsultationPrice: decimal.RequireFromString("75.50"),
		User:              *vetUser,
	}
	f.vetRepo.profiles[profile.UserID] = profile
	f.vetID = profile.UserID

	svc := &entity.VetService{ID: uuid.New(), Name: "General Checkup", BasePrice: decimal.RequireFromString("150.00"), Specialization: "therapy"}
	f.serviceRepo.services[svc.ID] = svc
	f.serviceID = svc.ID

	sterilization := &entity.VetService{ID: uuid.New(), Name: "Sterilization", BasePrice: decimal.RequireFromString("300.00"), Specialization: "surgery"}
	f.serviceRepo.services[sterilization.ID] = sterilization
	f.sterilizationID = sterilization.ID

	db, mock := newTestDB(t)
	f.mock = mock

	cfg := config.BookingConfig{
		SterilizationServiceID: sterilization.ID,
		DefaultSlotHour:        9,
		SlotHoldTTL:            30 * time.Second,
	}

	f.uc = NewBookingUsecase(
		db, newTestLogger(), cfg, clock.Fixed{At: f.now},
		f.userRepo, f.petRepo, f.vetRepo, f.serviceRepo,
		f.bookingRepo, f.scheduleRepo,
		f.slotReserver, f.notifier, f.audit,
	)

	return f
}

func (f *bookingFixture) request() *dto.CreateBookingRequest {
	return &dto.CreateBookingRequest{
		PetID:          f.petID,
		VeterinarianID: f.vetID,
		ServiceID:      f.serviceID,
		AdmissionAt:    "2024-08-01T14:00:00Z",
	}
}

func TestCreateBookingInvalidAdmissionTime(t *testing.T) {
	f := newBookingFixture(t)

	req := f.request()
	req.AdmissionAt = "01-08-2024 14:00"

	_, err := f.uc.CreateBooking(context.Background(), f.ownerID, req)
	assert.ErrorIs(t, err, ErrInvalidAdmissionTime)
}

func TestCreateBookingOwnerNotFound(t *testing.T) {
	f := newBookingFixture(t)

	_, err := f.uc.CreateBooking(context.Background(), uuid.New(), f.request())
	assert.ErrorIs(t, err, ErrOwnerNotFound)
}

func TestCreateBookingPetNotFound(t *testing.T) {
	f := newBookingFixture(t)

	req := f.request()
	req.PetID = uuid.New()

	_, err := f.uc.CreateBooking(context.Background(), f.ownerID, req)
	assert.ErrorIs(t, err, ErrPetNotFound)
}

func TestCreateBookingVeterinarianNotFound(t *testing.T) {
	f := newBookingFixture(t)

	req := f.request()
	req.VeterinarianID = uuid.New()

	_, err := f.uc.CreateBooking(context.Background(), f.ownerID, req)
	assert.ErrorIs(t, err, ErrVeterinarianNotFound)
}

func TestCreateBookingServiceNotFound(t *testing.T) {
	f := newBookingFixture(t)

	req := f.request()
	req.ServiceID = uuid.New()

	_, err := f.uc.CreateBooking(context.Background(), f.ownerID, req)
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

// The pet reference is checked before the veterinarian reference, so a
// request where both are unknown reports the pet.
func TestCreateBookingValidationOrder(t *testing.T) {
	f := newBookingFixture(t)

	req := f.request()
	req.PetID = uuid.New()
	req.VeterinarianID = uuid.New()
	req.ServiceID = uuid.New()

	_, err := f.uc.CreateBooking(context.Background(), f.ownerID, req)
	assert.ErrorIs(t, err, ErrPetNotFound)
}

func TestCreateBookingSterilizationAlreadyBooked(t *testing.T) {
	f := newBookingFixture(t)
	f.bookingRepo.hasFuture = true

	req := f.request()
	req.ServiceID = f.sterilizationID

	_, err := f.uc.CreateBooking(context.Background(), f.ownerID, req)
	assert.ErrorIs(t, err, ErrSterilizationAlreadyBooked)
	assert.Empty(t, f.bookingRepo.created)
}

// A sterilization booking whose only predecessor lies in the past does
// not trip the one-upcoming-booking rule.
func TestCreateBookingSterilizationPastBookingAllowed(t *testing.T) {
	f := newBookingFixture(t)
	f.bookingRepo.hasFuture = false

	f.mock.ExpectBegin()
	f.mock.ExpectCommit()

	req := f.request()
	req.ServiceID = f.sterilizationID

	resp, err := f.uc.CreateBooking(context.Background(), f.ownerID, req)
	require.NoError(t, err)
	assert.Len(t, f.bookingRepo.created, 1)
	assert.Equal(t, f.sterilizationID, resp.ServiceID)
}

func TestCreateBookingSlotTaken(t *testing.T) {
	f := newBookingFixture(t)
	f.scheduleRepo.existsAt = true

	_, err := f.uc.CreateBooking(context.Background(), f.ownerID, f.request())
	assert.ErrorIs(t, err, ErrSlotAlreadyTaken)
	assert.Zero(t, f.slotReserver.reserved)
}

func TestCreateBookingSlotHeldByConcurrentRequest(t *testing.T) {
	f := newBookingFixture(t)
	f.slotReserver.reserveErr = service.ErrSlotHeld

	_, err := f.uc.CreateBooking(context.Background(), f.ownerID, f.request())
	assert.ErrorIs(t, err, ErrSlotAlreadyTaken)
	assert.Empty(t, f.bookingRepo.created)
}

// A unique-index violation on the schedule entry is the storage-level
// backstop for two requests racing past validation.
func TestCreateBookingScheduleUniqueViolation(t *testing.T) {
	f := newBookingFixture(t)
	f.scheduleRepo.createErr = &pgconn.PgError{Code: "23505", ConstraintName: "idx_vet_appointment"}

	f.mock.ExpectBegin()
	f.mock.ExpectRollback()

	_, err := f.uc.CreateBooking(context.Background(), f.ownerID, f.request())
	assert.ErrorIs(t, err, ErrSlotAlreadyTaken)
	assert.Equal(t, 1, f.slotReserver.released)
}

func TestCreateBookingSuccess(t *testing.T) {
	f := newBookingFixture(t)

	f.mock.ExpectBegin()
	f.mock.ExpectCommit()

	resp, err := f.uc.CreateBooking(context.Background(), f.ownerID, f.request())
	require.NoError(t, err)

	assert.Equal(t, f.ownerID, resp.OwnerID)
	assert.Equal(t, f.petID, resp.PetID)
	assert.Equal(t, f.vetID, resp.VeterinarianID)
	assert.False(t, resp.IsAccepted)
	assert.Equal(t, time.Date(2024, 8, 1, 14, 0, 0, 0, time.UTC), resp.AdmissionAt)

	require.Len(t, f.scheduleRepo.created, 1)
	assert.Equal(t, f.vetID, f.scheduleRepo.created[0].VeterinarianID)
	assert.Equal(t, resp.AdmissionAt, f.scheduleRepo.created[0].AppointmentAt)

	assert.Equal(t, 1, f.slotReserver.reserved)
	assert.Equal(t, 1, f.slotReserver.released)
	assert.Contains(t, f.audit.actions, entity.AuditActionBookingCreate)

	assert.NoError(t, f.mock.ExpectationsWereMet())
}

func acceptableBooking(f *bookingFixture) *entity.Booking {
	return &entity.Booking{
		ID:             uuid.New(),
		OwnerID:        f.ownerID,
		PetID:          f.petID,
		VeterinarianID: f.vetID,
		ServiceID:      f.serviceID,
		AdmissionAt:    time.Date(2024, 8, 1, 14, 30, 0, 0, time.UTC),
		Owner:          *f.userRepo.users[f.ownerID],
		Pet:            *f.petRepo.pets[f.petID],
		Veterinarian:   *f.vetRepo.profiles[f.vetID],
		Service:        *f.serviceRepo.services[f.serviceID],
	}
}

func TestAcceptBookingNotFound(t *testing.T) {
	f := newBookingFixture(t)

	_, err := f.uc.AcceptBooking(context.Background(), uuid.New(), &f.vetID)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestAcceptBookingAlreadyAccepted(t *testing.T) {
	f := newBookingFixture(t)
	f.bookingRepo.detailed = acceptableBooking(f)
	f.bookingRepo.markAcceptedRows = 0

	_, err := f.uc.AcceptBooking(context.Background(), f.bookingRepo.detailed.ID, &f.vetID)
	assert.ErrorIs(t, err, ErrBookingAlreadyAccepted)

	select {
	case <-f.notifier.sent:
		t.Fatal("no confirmation should be sent for an already accepted booking")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestAcceptBookingSuccess(t *testing.T) {
	f := newBookingFixture(t)
	booking := acceptableBooking(f)
	f.bookingRepo.detailed = booking
	f.bookingRepo.markAcceptedRows = 1

	resp, err := f.uc.AcceptBooking(context.Background(), booking.ID, &f.vetID)
	require.NoError(t, err)

	assert.Equal(t, booking.ID, resp.BookingID)
	assert.Equal(t, "Jane Harris", resp.CustomerName)
	assert.Equal(t, "Rex", resp.PetName)
	assert.Equal(t, "Dr. Alvarez", resp.VeterinarianName)
	assert.Equal(t, "General Checkup", resp.ServiceName)
	// 150.00 base + 75.50 consultation
	assert.Equal(t, "225.50", resp.TotalPrice)
	assert.Equal(t, "2024-08-01", resp.AdmissionDate)
	assert.Equal(t, "14:30", resp.AdmissionTime)

	select {
	case confirmation := <-f.notifier.sent:
		assert.Equal(t, "owner@example.com", confirmation.ToAddress)
		assert.Equal(t, "225.50", confirmation.TotalPrice)
	case <-time.After(time.Second):
		t.Fatal("expected a confirmation to be sent")
	}

	assert.Contains(t, f.audit.actions, entity.AuditActionBookingAccept)
}
