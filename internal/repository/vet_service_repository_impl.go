package repository

import (
	"errors"

	"vet-clinic-booking/internal/domain/entity"
	domainRepo "vet-clinic-booking/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type vetServiceRepository struct{}

func NewVetServiceRepository() domainRepo.VetServiceRepository {
	return &vetServiceRepository{}
}

func (r *vetServiceRepository) Create(db *gorm.DB, service *entity.VetService) error {
	return db.Create(service).Error
}

func (r *vetServiceRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.VetService, error) {
	var service entity.VetService
	err := db.Where("id = ?", id).First(&service).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &service, nil
}

func (r *vetServiceRepository) FindAll(db *gorm.DB) ([]entity.VetService, error) {
	var services []entity.VetService
	err := db.Order("name ASC").Find(&services).Error
	if err != nil {
		return nil, err
	}
	return services, nil
}
