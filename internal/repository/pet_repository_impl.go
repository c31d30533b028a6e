package repository

import (
	"errors"

	"vet-clinic-booking/internal/domain/entity"
	domainRepo "vet-clinic-booking/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type petRepository struct{}

func NewPetRepository() domainRepo.PetRepository {
	return &petRepository{}
}

func (r *petRepository) Create(db *gorm.DB, pet *entity.Pet, ownerID uuid.UUID) error {
	if err := db.Create(pet).Error; err != nil {
		return err
	}
	// Link the pet to its owner through the join table.
	return db.Exec(
		"INSERT INTO pets_owners (pet_id, owner_id) VALUES (?, ?)",
		pet.ID, ownerID,
	).Error
}

func (r *petRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Pet, error) {
	var pet entity.Pet
	err := db.Where("id = ?", id).First(&pet).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &pet, nil
}

func (r *petRepository) FindAll(db *gorm.DB) ([]entity.Pet, error) {
	var pets []entity.Pet
	err := db.Order("name ASC").Find(&pets).Error
	if err != nil {
		return nil, err
	}
	return pets, nil
}

func (r *petRepository) FindByOwnerID(db *gorm.DB, ownerID uuid.UUID) ([]entity.Pet, error) {
	var pets []entity.Pet
	err := db.
		Joins("JOIN pets_owners ON pets_owners.pet_id = pets.id").
		Where("pets_owners.owner_id = ?", ownerID).
		Order("pets.name ASC").
		Find(&pets).Error
	if err != nil {
		return nil, err
	}
	return pets, nil
}
