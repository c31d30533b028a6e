package repository

import (
	"errors"
	"time"

	"vet-clinic-booking/internal/domain/entity"
	domainRepo "vet-clinic-booking/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type bookingRepository struct{}

func NewBookingRepository() domainRepo.BookingRepository {
	return &bookingRepository{}
}

func (r *bookingRepository) Create(db *gorm.DB, booking *entity.Booking) error {
	return db.Create(booking).Error
}

func (r *bookingRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Booking, error) {
	var booking entity.Booking
	err := db.Where("id = ?", id).First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) FindByIDWithDetails(db *gorm.DB, id uuid.UUID) (*entity.Booking, error) {
	var booking entity.Booking
	err := db.
		Preload("Owner").
		Preload("Pet").
		Preload("Veterinarian.User").
		Preload("Service").
		Where("id = ?", id).
		First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) FindByOwnerID(db *gorm.DB, ownerID uuid.UUID) ([]entity.Booking, error) {
	var bookings []entity.Booking
	err := db.
		Preload("Pet").
		Preload("Veterinarian.User").
		Preload("Service").
		Where("owner_id = ?", ownerID).
		Order("admission_at DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) FindByVeterinarianID(db *gorm.DB, veterinarianID uuid.UUID) ([]entity.Booking, error) {
	var bookings []entity.Booking
	err := db.
		Preload("Pet").
		Preload("Owner").
		Preload("Service").
		Joins("JOIN vet_services ON vet_services.id = bookings.service_id").
		Where("bookings.veterinarian_id = ?", veterinarianID).
		Order("vet_services.name ASC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) HasFutureBooking(db *gorm.DB, petID, serviceID uuid.UUID, after time.Time) (bool, error) {
	var count int64
	err := db.Model(&entity.Booking{}).
		Where("pet_id = ? AND service_id = ? AND admission_at > ?", petID, serviceID, after).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// MarkAccepted accepts a booking only while it is still pending.
// Returns affected rows: 1 = accepted now, 0 = already accepted.
func (r *bookingRepository) MarkAccepted(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Model(&entity.Booking{}).
		Where("id = ? AND is_accepted = ?", id, false).
		Update("is_accepted", true)
	return result.RowsAffected, result.Error
}
