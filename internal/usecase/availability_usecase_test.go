package usecase

import (
	"context"
	"testing"
	"time"

	"vet-clinic-booking/config"
	"vet-clinic-booking/internal/domain/entity"
	"vet-clinic-booking/pkg/clock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type availabilityFixture struct {
	vetRepo      *fakeVetRepo
	scheduleRepo *fakeScheduleRepo
	uc           AvailabilityUsecase
	now          time.Time
}

func newAvailabilityFixture(t *testing.T) *availabilityFixture {
	t.Helper()

	f := &availabilityFixture{
		vetRepo: &fakeVetRepo{profiles: map[uuid.UUID]*entity.VeterinarianProfile{}},
		scheduleRepo: &fakeScheduleRepo{
			nextByVet: map[uuid.UUID]*entity.ScheduleEntry{},
			lastByVet: map[uuid.UUID]*entity.ScheduleEntry{},
		},
		now: time.Date(2024, 6, 10, 15, 0, 0, 0, time.UTC),
	}

	db, _ := newTestDB(t)
	cfg := config.BookingConfig{DefaultSlotHour: 9}

	f.uc = NewAvailabilityUsecase(db, newTestLogger(), cfg, clock.Fixed{At: f.now}, f.vetRepo, f.scheduleRepo)
	return f
}

func (f *availabilityFixture) addVet(name string) uuid.UUID {
	id := uuid.New()
	f.vetRepo.bySpec = append(f.vetRepo.bySpec, entity.VeterinarianProfile{
		UserID:         id,
		Specialization: "surgery",
		User:           entity.User{ID: id, FullName: name},
	})
	return id
}

func TestFindNearestSlotNoMatches(t *testing.T) {
	f := newAvailabilityFixture(t)

	resp, err := f.uc.FindNearestSlot(context.Background(), "dermatology")
	require.NoError(t, err)

	assert.Empty(t, resp.Candidates)
	assert.Nil(t, resp.Best)
}

func TestFindNearestSlotNormalizesSpecialization(t *testing.T) {
	f := newAvailabilityFixture(t)

	_, err := f.uc.FindNearestSlot(context.Background(), "  Surgery ")
	require.NoError(t, err)

	assert.Equal(t, "surgery", f.vetRepo.receivedSpec)
}

// A veterinarian with upcoming entries is proposed at the earliest of
// them.
func TestFindNearestSlotUpcomingEntry(t *testing.T) {
	f := newAvailabilityFixture(t)
	vetID := f.addVet("Dr. Alvarez")

	next := time.Date(2024, 6, 12, 11, 0, 0, 0, time.UTC)
	f.scheduleRepo.nextByVet[vetID] = &entity.ScheduleEntry{VeterinarianID: vetID, AppointmentAt: next}

	resp, err := f.uc.FindNearestSlot(context.Background(), "surgery")
	require.NoError(t, err)

	require.NotNil(t, resp.Best)
	assert.Equal(t, next, resp.Best.NextAvailableAt)
	assert.Equal(t, "Dr. Alvarez", resp.Best.VeterinarianName)
}

// With no upcoming entries, an entry within the last hour pushes the
// proposal to one hour after it.
func TestFindNearestSlotRecentPastEntry(t *testing.T) {
	f := newAvailabilityFixture(t)
	vetID := f.addVet("Dr. Alvarez")

	last := time.Date(2024, 6, 10, 14, 30, 0, 0, time.UTC)
	f.scheduleRepo.lastByVet[vetID] = &entity.ScheduleEntry{VeterinarianID: vetID, AppointmentAt: last}

	resp, err := f.uc.FindNearestSlot(context.Background(), "surgery")
	require.NoError(t, err)

	require.NotNil(t, resp.Best)
	assert.Equal(t, time.Date(2024, 6, 10, 15, 30, 0, 0, time.UTC), resp.Best.NextAvailableAt)
}

// A stale schedule falls back to the next day at the default opening
// hour, as does an empty one.
func TestFindNearestSlotFallbackNextDay(t *testing.T) {
	f := newAvailabilityFixture(t)
	vetID := f.addVet("Dr. Alvarez")

	last := time.Date(2024, 6, 10, 10, 0, 0, 0, time.UTC)
	f.scheduleRepo.lastByVet[vetID] = &entity.ScheduleEntry{VeterinarianID: vetID, AppointmentAt: last}

	resp, err := f.uc.FindNearestSlot(context.Background(), "surgery")
	require.NoError(t, err)

	require.NotNil(t, resp.Best)
	assert.Equal(t, time.Date(2024, 6, 11, 9, 0, 0, 0, time.UTC), resp.Best.NextAvailableAt)
}

func TestFindNearestSlotEmptyScheduleFallsBack(t *testing.T) {
	f := newAvailabilityFixture(t)
	f.addVet("Dr. Alvarez")

	resp, err := f.uc.FindNearestSlot(context.Background(), "surgery")
	require.NoError(t, err)

	require.NotNil(t, resp.Best)
	assert.Equal(t, time.Date(2024, 6, 11, 9, 0, 0, 0, time.UTC), resp.Best.NextAvailableAt)
}

// All matching veterinarians are compared and the earliest proposal
// wins overall.
func TestFindNearestSlotPicksEarliestAcrossVets(t *testing.T) {
	f := newAvailabilityFixture(t)
	busyID := f.addVet("Dr. Busy")
	soonID := f.addVet("Dr. Soon")
	f.addVet("Dr. Idle")

	f.scheduleRepo.nextByVet[busyID] = &entity.ScheduleEntry{
		VeterinarianID: busyID,
		AppointmentAt:  time.Date(2024, 6, 13, 9, 0, 0, 0, time.UTC),
	}
	f.scheduleRepo.lastByVet[soonID] = &entity.ScheduleEntry{
		VeterinarianID: soonID,
		AppointmentAt:  time.Date(2024, 6, 10, 14, 45, 0, 0, time.UTC),
	}

	resp, err := f.uc.FindNearestSlot(context.Background(), "surgery")
	require.NoError(t, err)

	require.Len(t, resp.Candidates, 3)
	require.NotNil(t, resp.Best)
	// Dr. Soon: 14:45 + 1h = 15:45 today, ahead of Dr. Idle's next-day
	// fallback and Dr. Busy's June 13 entry.
	assert.Equal(t, "Dr. Soon", resp.Best.VeterinarianName)
	assert.Equal(t, time.Date(2024, 6, 10, 15, 45, 0, 0, time.UTC), resp.Best.NextAvailableAt)
}
