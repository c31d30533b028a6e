package repository

import (
	"vet-clinic-booking/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VetServiceRepository interface {
	Create(db *gorm.DB, service *entity.VetService) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.VetService, error)
	FindAll(db *gorm.DB) ([]entity.VetService, error)
}
