package repository

import (
	"time"

	"vet-clinic-booking/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ScheduleEntryRepository interface {
	Create(db *gorm.DB, entry *entity.ScheduleEntry) error
	// ExistsAt reports whether the veterinarian already has an entry at
	// exactly the given instant.
	ExistsAt(db *gorm.DB, veterinarianID uuid.UUID, at time.Time) (bool, error)
	// FindNextAfter returns the earliest entry strictly after the given
	// instant, or nil if none exists.
	FindNextAfter(db *gorm.DB, veterinarianID uuid.UUID, after time.Time) (*entity.ScheduleEntry, error)
	// FindLastAtOrBefore returns the latest entry at or before the given
	// instant, or nil if none exists.
	FindLastAtOrBefore(db *gorm.DB, veterinarianID uuid.UUID, at time.Time) (*entity.ScheduleEntry, error)
	FindByVeterinarianID(db *gorm.DB, veterinarianID uuid.UUID) ([]entity.ScheduleEntry, error)
}
