package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"vet-clinic-booking/config"
	"vet-clinic-booking/internal/delivery/dto"
	"vet-clinic-booking/internal/domain/entity"
	"vet-clinic-booking/internal/domain/repository"
	"vet-clinic-booking/pkg/clock"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type AvailabilityUsecase interface {
	FindNearestSlot(ctx context.Context, specialization string) (*dto.NearestSlotResponse, error)
}

type availabilityUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	cfg          config.BookingConfig
	clk          clock.Clock
	vetRepo      repository.VeterinarianProfileRepository
	scheduleRepo repository.ScheduleEntryRepository
}

func NewAvailabilityUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	cfg config.BookingConfig,
	clk clock.Clock,
	vetRepo repository.VeterinarianProfileRepository,
	scheduleRepo repository.ScheduleEntryRepository,
) AvailabilityUsecase {
	return &availabilityUsecase{
		db:           db,
		log:          log,
		cfg:          cfg,
		clk:          clk,
		vetRepo:      vetRepo,
		scheduleRepo: scheduleRepo,
	}
}

// FindNearestSlot proposes the earliest available admission time per
// veterinarian with the requested specialization and picks the overall
// winner. Matching ignores surrounding whitespace and letter case.
func (u *availabilityUsecase) FindNearestSlot(ctx context.Context, specialization string) (*dto.NearestSlotResponse, error) {
	normalized := strings.ToLower(strings.TrimSpace(specialization))
	db := u.db.WithContext(ctx)

	vets, err := u.vetRepo.FindBySpecialization(db, normalized)
	if err != nil {
		u.log.Warnf("Failed to find veterinarians for specialization %q: %+v", normalized, err)
		return nil, err
	}

	response := &dto.NearestSlotResponse{
		Specialization: normalized,
		Candidates:     make([]dto.SlotCandidate, 0, len(vets)),
	}

	now := u.clk.Now()
	for i := range vets {
		slot, err := u.nextSlotFor(db, &vets[i], now)
		if err != nil {
			return nil, err
		}
		response.Candidates = append(response.Candidates, dto.SlotCandidate{
			VeterinarianID:   vets[i].UserID,
			VeterinarianName: vets[i].User.FullName,
			Specialization:   vets[i].Specialization,
			NextAvailableAt:  slot,
		})
	}

	sort.SliceStable(response.Candidates, func(i, j int) bool {
		return response.Candidates[i].NextAvailableAt.Before(response.Candidates[j].NextAvailableAt)
	})

	if len(response.Candidates) > 0 {
		response.Best = &response.Candidates[0]
	}

	return response, nil
}

// nextSlotFor derives one proposed time for a single veterinarian:
// the earliest scheduled entry after now; otherwise one hour past the
// most recent entry when that still lies ahead; otherwise tomorrow at
// the clinic's default opening hour.
func (u *availabilityUsecase) nextSlotFor(db *gorm.DB, vet *entity.VeterinarianProfile, now time.Time) (time.Time, error) {
	next, err := u.scheduleRepo.FindNextAfter(db, vet.UserID, now)
	if err != nil {
		u.log.Warnf("Failed to find next entry for veterinarian %s: %+v", vet.UserID, err)
		return time.Time{}, err
	}
	if next != nil {
		return next.AppointmentAt, nil
	}

	last, err := u.scheduleRepo.FindLastAtOrBefore(db, vet.UserID, now)
	if err != nil {
		u.log.Warnf("Failed to find last entry for veterinarian %s: %+v", vet.UserID, err)
		return time.Time{}, err
	}
	if last != nil {
		candidate := last.AppointmentAt.Add(time.Hour)
		if candidate.After(now) {
			return candidate, nil
		}
	}

	nextDay := now.AddDate(0, 0, 1)
	return time.Date(nextDay.Year(), nextDay.Month(), nextDay.Day(), u.cfg.DefaultSlotHour, 0, 0, 0, now.Location()), nil
}
