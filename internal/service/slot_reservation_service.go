package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// ErrSlotHeld is returned when another request currently holds the same
// veterinarian/timestamp slot.
var ErrSlotHeld = errors.New("slot is being booked by another request")

// SlotHoldKeyPrefix namespaces slot hold keys in Redis.
const SlotHoldKeyPrefix = "slot:hold:"

// SlotReserver serializes concurrent booking attempts for the same
// veterinarian and timestamp before anything touches the database.
type SlotReserver interface {
	Reserve(ctx context.Context, veterinarianID uuid.UUID, at time.Time) error
	Release(ctx context.Context, veterinarianID uuid.UUID, at time.Time)
}

// SlotReservationService implements SlotReserver with a short-lived
// Redis SETNX hold per (veterinarian, timestamp).
//
// Two concurrent CreateBooking calls for the same slot both pass the
// read-only validation; the hold makes sure only one of them reaches
// the insert. The unique index on schedule_entries is the backstop for
// the single-instance-down / Redis-flushed case. The hold expires on
// its own, so a crashed request never wedges a slot.
type SlotReservationService struct {
	redisClient *redis.Client
	log         *logrus.Logger
	holdTTL     time.Duration
}

func NewSlotReservationService(redisClient *redis.Client, log *logrus.Logger, holdTTL time.Duration) *SlotReservationService {
	if holdTTL <= 0 {
		holdTTL = 30 * time.Second
	}
	return &SlotReservationService{
		redisClient: redisClient,
		log:         log,
		holdTTL:     holdTTL,
	}
}

// Reserve atomically claims the slot. Returns ErrSlotHeld if another
// request got there first.
func (s *SlotReservationService) Reserve(ctx context.Context, veterinarianID uuid.UUID, at time.Time) error {
	key := slotHoldKey(veterinarianID, at)

	ok, err := s.redisClient.SetNX(ctx, key, "held", s.holdTTL).Result()
	if err != nil {
		s.log.Warnf("Failed to acquire slot hold %s: %+v", key, err)
		return fmt.Errorf("acquire slot hold %s: %w", key, err)
	}
	if !ok {
		return ErrSlotHeld
	}

	s.log.Debugf("Acquired slot hold %s (ttl=%v)", key, s.holdTTL)
	return nil
}

// Release frees the hold early, after the booking either committed or
// failed. Best effort: the TTL covers a lost delete.
func (s *SlotReservationService) Release(ctx context.Context, veterinarianID uuid.UUID, at time.Time) {
	key := slotHoldKey(veterinarianID, at)
	if err := s.redisClient.Del(ctx, key).Err(); err != nil {
		s.log.Warnf("Failed to release slot hold %s (non-fatal): %+v", key, err)
	}
}

func slotHoldKey(veterinarianID uuid.UUID, at time.Time) string {
	return fmt.Sprintf("%s%s:%d", SlotHoldKeyPrefix, veterinarianID, at.UTC().Unix())
}
