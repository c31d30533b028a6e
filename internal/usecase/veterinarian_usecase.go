package usecase

import (
	"context"
	"strings"

	"vet-clinic-booking/internal/converter"
	"vet-clinic-booking/internal/delivery/dto"
	"vet-clinic-booking/internal/domain/entity"
	"vet-clinic-booking/internal/domain/repository"
	"vet-clinic-booking/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type VeterinarianUsecase interface {
	GetAll(ctx context.Context) (*dto.VeterinarianListResponse, error)
	GetBySpecialization(ctx context.Context, specialization string) (*dto.VeterinarianListResponse, error)
	GetByID(ctx context.Context, userID uuid.UUID) (*dto.VeterinarianResponse, error)
	Update(ctx context.Context, userID uuid.UUID, req *dto.UpdateVeterinarianRequest) (*dto.VeterinarianResponse, error)
}

type veterinarianUsecase struct {
	db      *gorm.DB
	log     *logrus.Logger
	vetRepo repository.VeterinarianProfileRepository
	audit   service.AuditService
}

func NewVeterinarianUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	vetRepo repository.VeterinarianProfileRepository,
	audit service.AuditService,
) VeterinarianUsecase {
	return &veterinarianUsecase{
		db:      db,
		log:     log,
		vetRepo: vetRepo,
		audit:   audit,
	}
}

func (u *veterinarianUsecase) GetAll(ctx context.Context) (*dto.VeterinarianListResponse, error) {
	profiles, err := u.vetRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find veterinarians: %+v", err)
		return nil, err
	}

	return &dto.VeterinarianListResponse{
		Veterinarians: converter.VeterinarianProfilesToResponses(profiles),
		Total:         len(profiles),
	}, nil
}

func (u *veterinarianUsecase) GetBySpecialization(ctx context.Context, specialization string) (*dto.VeterinarianListResponse, error) {
	normalized := strings.ToLower(strings.TrimSpace(specialization))

	profiles, err := u.vetRepo.FindBySpecialization(u.db.WithContext(ctx), normalized)
	if err != nil {
		u.log.Warnf("Failed to find veterinarians for specialization %q: %+v", normalized, err)
		return nil, err
	}

	return &dto.VeterinarianListResponse{
		Veterinarians: converter.VeterinarianProfilesToResponses(profiles),
		Total:         len(profiles),
	}, nil
}

func (u *veterinarianUsecase) GetByID(ctx context.Context, userID uuid.UUID) (*dto.VeterinarianResponse, error) {
	profile, err := u.vetRepo.FindByUserID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find veterinarian %s: %+v", userID, err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrVeterinarianNotFound
	}

	return converter.VeterinarianProfileToResponse(profile), nil
}

// Update applies partial changes to the caller's own profile; empty or
// nil fields are left untouched.
func (u *veterinarianUsecase) Update(ctx context.Context, userID uuid.UUID, req *dto.UpdateVeterinarianRequest) (*dto.VeterinarianResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	profile, err := u.vetRepo.FindByUserID(tx, userID)
	if err != nil {
		u.log.Warnf("Failed to find veterinarian %s: %+v", userID, err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrVeterinarianNotFound
	}

	if req.Specialization != "" {
		profile.Specialization = req.Specialization
	}
	if req.PhoneNumber != "" {
		profile.PhoneNumber = req.PhoneNumber
	}
	if req.Address != "" {
		profile.Address = req.Address
	}
	if req.YearsOfExperience != nil {
		profile.YearsOfExperience = *req.YearsOfExperience
	}
	if req.ConsultationPrice != nil {
		profile.ConsultationPrice = *req.ConsultationPrice
	}
	if req.PhotoURL != "" {
		profile.PhotoURL = req.PhotoURL
	}

	if err := u.vetRepo.Update(tx, profile); err != nil {
		u.log.Warnf("Failed to update veterinarian %s: %+v", userID, err)
		return nil, err
	}

	u.audit.Record(tx, &userID, entity.AuditActionVeterinarianUpdate, entity.JSON{
		"specialization": profile.Specialization,
	})

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.VeterinarianProfileToResponse(profile), nil
}
