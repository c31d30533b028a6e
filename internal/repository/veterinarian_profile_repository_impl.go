package repository

import (
	"errors"
	"strings"

	"vet-clinic-booking/internal/domain/entity"
	domainRepo "vet-clinic-booking/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type veterinarianProfileRepository struct{}

func NewVeterinarianProfileRepository() domainRepo.VeterinarianProfileRepository {
	return &veterinarianProfileRepository{}
}

func (r *veterinarianProfileRepository) Create(db *gorm.DB, profile *entity.VeterinarianProfile) error {
	return db.Create(profile).Error
}

func (r *veterinarianProfileRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.VeterinarianProfile, error) {
	var profile entity.VeterinarianProfile
	err := db.Preload("User").Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *veterinarianProfileRepository) FindAll(db *gorm.DB) ([]entity.VeterinarianProfile, error) {
	var profiles []entity.VeterinarianProfile
	err := db.Preload("User").
		Joins("JOIN users ON users.id = veterinarian_profiles.user_id").
		Where("users.is_active = ?", true).
		Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

// FindBySpecialization matches specialization tags with trimmed,
// case-insensitive equality, so " Surgery " and "surgery" are the same tag.
func (r *veterinarianProfileRepository) FindBySpecialization(db *gorm.DB, specialization string) ([]entity.VeterinarianProfile, error) {
	normalized := strings.ToLower(strings.TrimSpace(specialization))

	var profiles []entity.VeterinarianProfile
	err := db.Preload("User").
		Joins("JOIN users ON users.id = veterinarian_profiles.user_id").
		Where("users.is_active = ?", true).
		Where("LOWER(TRIM(veterinarian_profiles.specialization)) = ?", normalized).
		Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *veterinarianProfileRepository) Update(db *gorm.DB, profile *entity.VeterinarianProfile) error {
	return db.Omit("User").Save(profile).Error
}
