package usecase

import (
	"context"
	"errors"

	"vet-clinic-booking/internal/converter"
	"vet-clinic-booking/internal/delivery/dto"
	"vet-clinic-booking/internal/domain/entity"
	"vet-clinic-booking/internal/domain/repository"
	"vet-clinic-booking/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrServiceNameAlreadyExists = errors.New("service name already exists")

type VetServiceUsecase interface {
	Create(ctx context.Context, actorID uuid.UUID, req *dto.CreateVetServiceRequest) (*dto.VetServiceResponse, error)
	GetAll(ctx context.Context) (*dto.VetServiceListResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.VetServiceResponse, error)
}

type vetServiceUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	serviceRepo repository.VetServiceRepository
	audit       service.AuditService
}

func NewVetServiceUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	serviceRepo repository.VetServiceRepository,
	audit service.AuditService,
) VetServiceUsecase {
	return &vetServiceUsecase{
		db:          db,
		log:         log,
		serviceRepo: serviceRepo,
		audit:       audit,
	}
}

func (u *vetServiceUsecase) Create(ctx context.Context, actorID uuid.UUID, req *dto.CreateVetServiceRequest) (*dto.VetServiceResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	svc := &entity.VetService{
		Name:           req.Name,
		Description:    req.Description,
		BasePrice:      req.BasePrice,
		Specialization: req.Specialization,
	}

	if err := u.serviceRepo.Create(tx, svc); err != nil {
		if isDuplicateKeyError(err, "name") {
			return nil, ErrServiceNameAlreadyExists
		}
		u.log.Warnf("Failed to create service: %+v", err)
		return nil, err
	}

	u.audit.Record(tx, &actorID, entity.AuditActionServiceCreate, entity.JSON{
		"service_id": svc.ID.String(),
		"name":       svc.Name,
	})

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.VetServiceToResponse(svc), nil
}

func (u *vetServiceUsecase) GetAll(ctx context.Context) (*dto.VetServiceListResponse, error) {
	services, err := u.serviceRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find services: %+v", err)
		return nil, err
	}

	return &dto.VetServiceListResponse{
		Services: converter.VetServicesToResponses(services),
		Total:    len(services),
	}, nil
}

func (u *vetServiceUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.VetServiceResponse, error) {
	svc, err := u.serviceRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find service %s: %+v", id, err)
		return nil, err
	}
	if svc == nil {
		return nil, ErrServiceNotFound
	}

	return converter.VetServiceToResponse(svc), nil
}
