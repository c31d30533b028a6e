package repository

import (
	"errors"
	"time"

	"vet-clinic-booking/internal/domain/entity"
	domainRepo "vet-clinic-booking/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type scheduleEntryRepository struct{}

func NewScheduleEntryRepository() domainRepo.ScheduleEntryRepository {
	return &scheduleEntryRepository{}
}

func (r *scheduleEntryRepository) Create(db *gorm.DB, entry *entity.ScheduleEntry) error {
	return db.Create(entry).Error
}

func (r *scheduleEntryRepository) ExistsAt(db *gorm.DB, veterinarianID uuid.UUID, at time.Time) (bool, error) {
	var count int64
	err := db.Model(&entity.ScheduleEntry{}).
		Where("veterinarian_id = ? AND appointment_at = ?", veterinarianID, at).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *scheduleEntryRepository) FindNextAfter(db *gorm.DB, veterinarianID uuid.UUID, after time.Time) (*entity.ScheduleEntry, error) {
	var entry entity.ScheduleEntry
	err := db.
		Where("veterinarian_id = ? AND appointment_at > ?", veterinarianID, after).
		Order("appointment_at ASC").
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

func (r *scheduleEntryRepository) FindLastAtOrBefore(db *gorm.DB, veterinarianID uuid.UUID, at time.Time) (*entity.ScheduleEntry, error) {
	var entry entity.ScheduleEntry
	err := db.
		Where("veterinarian_id = ? AND appointment_at <= ?", veterinarianID, at).
		Order("appointment_at DESC").
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

func (r *scheduleEntryRepository) FindByVeterinarianID(db *gorm.DB, veterinarianID uuid.UUID) ([]entity.ScheduleEntry, error) {
	var entries []entity.ScheduleEntry
	err := db.
		Where("veterinarian_id = ?", veterinarianID).
		Order("appointment_at ASC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
