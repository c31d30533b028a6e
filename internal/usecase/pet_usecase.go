package usecase

import (
	"context"

	"vet-clinic-booking/internal/converter"
	"vet-clinic-booking/internal/delivery/dto"
	"vet-clinic-booking/internal/domain/entity"
	"vet-clinic-booking/internal/domain/repository"
	"vet-clinic-booking/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type PetUsecase interface {
	Create(ctx context.Context, ownerID uuid.UUID, req *dto.CreatePetRequest) (*dto.PetResponse, error)
	GetAll(ctx context.Context) (*dto.PetListResponse, error)
	GetMyPets(ctx context.Context, ownerID uuid.UUID) (*dto.PetListResponse, error)
}

type petUsecase struct {
	db       *gorm.DB
	log      *logrus.Logger
	petRepo  repository.PetRepository
	userRepo repository.UserRepository
	audit    service.AuditService
}

func NewPetUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	petRepo repository.PetRepository,
	userRepo repository.UserRepository,
	audit service.AuditService,
) PetUsecase {
	return &petUsecase{
		db:       db,
		log:      log,
		petRepo:  petRepo,
		userRepo: userRepo,
		audit:    audit,
	}
}

func (u *petUsecase) Create(ctx context.Context, ownerID uuid.UUID, req *dto.CreatePetRequest) (*dto.PetResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	owner, err := u.userRepo.FindByID(tx, ownerID)
	if err != nil {
		u.log.Warnf("Failed to find owner %s: %+v", ownerID, err)
		return nil, err
	}
	if owner == nil {
		return nil, ErrOwnerNotFound
	}

	pet := &entity.Pet{
		Name:       req.Name,
		Type:       req.Type,
		Gender:     req.Gender,
		Age:        req.Age,
		Sterilized: req.Sterilized,
		Vaccinated: req.Vaccinated,
	}

	if err := u.petRepo.Create(tx, pet, ownerID); err != nil {
		u.log.Warnf("Failed to create pet: %+v", err)
		return nil, err
	}

	u.audit.Record(tx, &ownerID, entity.AuditActionPetCreate, entity.JSON{
		"pet_id": pet.ID.String(),
		"name":   pet.Name,
	})

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.PetToResponse(pet), nil
}

func (u *petUsecase) GetAll(ctx context.Context) (*dto.PetListResponse, error) {
	pets, err := u.petRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find pets: %+v", err)
		return nil, err
	}

	return &dto.PetListResponse{
		Pets:  converter.PetsToResponses(pets),
		Total: len(pets),
	}, nil
}

func (u *petUsecase) GetMyPets(ctx context.Context, ownerID uuid.UUID) (*dto.PetListResponse, error) {
	pets, err := u.petRepo.FindByOwnerID(u.db.WithContext(ctx), ownerID)
	if err != nil {
		u.log.Warnf("Failed to find pets for owner %s: %+v", ownerID, err)
		return nil, err
	}

	return &dto.PetListResponse{
		Pets:  converter.PetsToResponses(pets),
		Total: len(pets),
	}, nil
}
