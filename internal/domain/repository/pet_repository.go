package repository

import (
	"vet-clinic-booking/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PetRepository interface {
	Create(db *gorm.DB, pet *entity.Pet, ownerID uuid.UUID) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Pet, error)
	FindAll(db *gorm.DB) ([]entity.Pet, error)
	FindByOwnerID(db *gorm.DB, ownerID uuid.UUID) ([]entity.Pet, error)
}
