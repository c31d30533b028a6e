package usecase

import (
	"context"
	"testing"
	"time"

	"vet-clinic-booking/internal/domain/entity"
	"vet-clinic-booking/internal/service"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB returns a gorm handle backed by sqlmock. Usecases only
// touch the driver when they open transactions, so read-only paths
// need no expectations at all.
func newTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { mockDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: mockDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open gorm: %v", err)
	}

	return db, mock
}

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
	err   error
}

func (f *fakeUserRepo) Create(db *gorm.DB, user *entity.User) error {
	if f.err != nil {
		return f.err
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.users[id], nil
}

func (f *fakeUserRepo) FindByEmail(db *gorm.DB, email string) (*entity.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

type fakeRoleRepo struct {
	roles map[int]*entity.Role
}

func (f *fakeRoleRepo) FindByID(db *gorm.DB, id int) (*entity.Role, error) {
	return f.roles[id], nil
}

func (f *fakeRoleRepo) FindByName(db *gorm.DB, name string) (*entity.Role, error) {
	for _, r := range f.roles {
		if r.RoleName == name {
			return r, nil
		}
	}
	return nil, nil
}

type fakePetRepo struct {
	pets map[uuid.UUID]*entity.Pet
}

func (f *fakePetRepo) Create(db *gorm.DB, pet *entity.Pet, ownerID uuid.UUID) error {
	if pet.ID == uuid.Nil {
		pet.ID = uuid.New()
	}
	f.pets[pet.ID] = pet
	return nil
}

func (f *fakePetRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Pet, error) {
	return f.pets[id], nil
}

func (f *fakePetRepo) FindAll(db *gorm.DB) ([]entity.Pet, error) {
	var pets []entity.Pet
	for _, p := range f.pets {
		pets = append(pets, *p)
	}
	return pets, nil
}

func (f *fakePetRepo) FindByOwnerID(db *gorm.DB, ownerID uuid.UUID) ([]entity.Pet, error) {
	return f.FindAll(db)
}

type fakeVetRepo struct {
	profiles     map[uuid.UUID]*entity.VeterinarianProfile
	bySpec       []entity.VeterinarianProfile
	receivedSpec string
}

func (f *fakeVetRepo) Create(db *gorm.DB, profile *entity.VeterinarianProfile) error {
	f.profiles[profile.UserID] = profile
	return nil
}

func (f *fakeVetRepo) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.VeterinarianProfile, error) {
	return f.profiles[userID], nil
}

func (f *fakeVetRepo) FindAll(db *gorm.DB) ([]entity.VeterinarianProfile, error) {
	var profiles []entity.VeterinarianProfile
	for _, p := range f.profiles {
		profiles = append(profiles, *p)
	}
	return profiles, nil
}

func (f *fakeVetRepo) FindBySpecialization(db *gorm.DB, specialization string) ([]entity.VeterinarianProfile, error) {
	f.receivedSpec = specialization
	return f.bySpec, nil
}

func (f *fakeVetRepo) Update(db *gorm.DB, profile *entity.VeterinarianProfile) error {
	f.profiles[profile.UserID] = profile
	return nil
}

type fakeServiceRepo struct {
	services map[uuid.UUID]*entity.VetService
}

func (f *fakeServiceRepo) Create(db *gorm.DB, svc *entity.VetService) error {
	if svc.ID == uuid.Nil {
		svc.ID = uuid.New()
	}
	f.services[svc.ID] = svc
	return nil
}

func (f *fakeServiceRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.VetService, error) {
	return f.services[id], nil
}

func (f *fakeServiceRepo) FindAll(db *gorm.DB) ([]entity.VetService, error) {
	var services []entity.VetService
	for _, s := range f.services {
		services = append(services, *s)
	}
	return services, nil
}

type fakeBookingRepo struct {
	detailed         *entity.Booking
	hasFuture        bool
	markAcceptedRows int64
	created          []*entity.Booking
	createErr        error
}

func (f *fakeBookingRepo) Create(db *gorm.DB, booking *entity.Booking) error {
	if f.createErr != nil {
		return f.createErr
	}
	if booking.ID == uuid.Nil {
		booking.ID = uuid.New()
	}
	f.created = append(f.created, booking)
	return nil
}

func (f *fakeBookingRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Booking, error) {
	return f.detailed, nil
}

func (f *fakeBookingRepo) FindByIDWithDetails(db *gorm.DB, id uuid.UUID) (*entity.Booking, error) {
	return f.detailed, nil
}

func (f *fakeBookingRepo) FindByOwnerID(db *gorm.DB, ownerID uuid.UUID) ([]entity.Booking, error) {
	var bookings []entity.Booking
	for _, b := range f.created {
		bookings = append(bookings, *b)
	}
	return bookings, nil
}

func (f *fakeBookingRepo) FindByVeterinarianID(db *gorm.DB, veterinarianID uuid.UUID) ([]entity.Booking, error) {
	return f.FindByOwnerID(db, veterinarianID)
}

func (f *fakeBookingRepo) HasFutureBooking(db *gorm.DB, petID, serviceID uuid.UUID, after time.Time) (bool, error) {
	return f.hasFuture, nil
}

func (f *fakeBookingRepo) MarkAccepted(db *gorm.DB, id uuid.UUID) (int64, error) {
	return f.markAcceptedRows, nil
}

type fakeScheduleRepo struct {
	existsAt  bool
	nextByVet map[uuid.UUID]*entity.ScheduleEntry
	lastByVet map[uuid.UUID]*entity.ScheduleEntry
	created   []*entity.ScheduleEntry
	createErr error
}

func (f *fakeScheduleRepo) Create(db *gorm.DB, entry *entity.ScheduleEntry) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, entry)
	return nil
}

func (f *fakeScheduleRepo) ExistsAt(db *gorm.DB, veterinarianID uuid.UUID, at time.Time) (bool, error) {
	return f.existsAt, nil
}

func (f *fakeScheduleRepo) FindNextAfter(db *gorm.DB, veterinarianID uuid.UUID, after time.Time) (*entity.ScheduleEntry, error) {
	return f.nextByVet[veterinarianID], nil
}

func (f *fakeScheduleRepo) FindLastAtOrBefore(db *gorm.DB, veterinarianID uuid.UUID, at time.Time) (*entity.ScheduleEntry, error) {
	return f.lastByVet[veterinarianID], nil
}

func (f *fakeScheduleRepo) FindByVeterinarianID(db *gorm.DB, veterinarianID uuid.UUID) ([]entity.ScheduleEntry, error) {
	var entries []entity.ScheduleEntry
	for _, e := range f.created {
		entries = append(entries, *e)
	}
	return entries, nil
}

type fakeSlotReserver struct {
	reserveErr error
	reserved   int
	released   int
}

func (f *fakeSlotReserver) Reserve(ctx context.Context, veterinarianID uuid.UUID, at time.Time) error {
	if f.reserveErr != nil {
		return f.reserveErr
	}
	f.reserved++
	return nil
}

func (f *fakeSlotReserver) Release(ctx context.Context, veterinarianID uuid.UUID, at time.Time) {
	f.released++
}

type fakeNotifier struct {
	sent chan *service.BookingConfirmation
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{sent: make(chan *service.BookingConfirmation, 1)}
}

func (f *fakeNotifier) SendBookingConfirmation(ctx context.Context, confirmation *service.BookingConfirmation) error {
	f.sent <- confirmation
	return nil
}

type fakeAudit struct {
	actions []string
}

func (f *fakeAudit) Record(tx *gorm.DB, userID *uuid.UUID, action string, metadata entity.JSON) {
	f.actions = append(f.actions, action)
}
