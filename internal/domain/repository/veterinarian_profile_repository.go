package repository

import (
	"vet-clinic-booking/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VeterinarianProfileRepository interface {
	Create(db *gorm.DB, profile *entity.VeterinarianProfile) error
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.VeterinarianProfile, error)
	FindAll(db *gorm.DB) ([]entity.VeterinarianProfile, error)
	// FindBySpecialization matches on trimmed, case-folded equality.
	FindBySpecialization(db *gorm.DB, specialization string) ([]entity.VeterinarianProfile, error)
	Update(db *gorm.DB, profile *entity.VeterinarianProfile) error
}
