package repository

import (
	"time"

	"vet-clinic-booking/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingRepository interface {
	Create(db *gorm.DB, booking *entity.Booking) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Booking, error)
	// FindByIDWithDetails returns the booking with owner, pet,
	// veterinarian (incl. user) and service preloaded, so acceptance
	// needs a single read instead of chasing each reference.
	FindByIDWithDetails(db *gorm.DB, id uuid.UUID) (*entity.Booking, error)
	FindByOwnerID(db *gorm.DB, ownerID uuid.UUID) ([]entity.Booking, error)
	FindByVeterinarianID(db *gorm.DB, veterinarianID uuid.UUID) ([]entity.Booking, error)
	// HasFutureBooking reports whether the pet has any booking for the
	// service with an admission time strictly after the given instant,
	// pending or accepted alike.
	HasFutureBooking(db *gorm.DB, petID, serviceID uuid.UUID, after time.Time) (bool, error)
	// MarkAccepted flips is_accepted only if currently pending.
	// Returns affected rows: 1 = accepted now, 0 = already accepted.
	MarkAccepted(db *gorm.DB, id uuid.UUID) (int64, error)
}
