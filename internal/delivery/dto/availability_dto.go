package dto

import (
	"time"

	"github.com/google/uuid"
)

// SlotCandidate pairs a veterinarian with the earliest time it could
// take a new appointment.
type SlotCandidate struct {
	VeterinarianID   uuid.UUID `json:"veterinarian_id"`
	VeterinarianName string    `json:"veterinarian_name"`
	Specialization   string    `json:"specialization"`
	NextAvailableAt  time.Time `json:"next_available_at"`
}

// NearestSlotResponse lists all candidates sorted earliest first; Best
// repeats the winner for convenience.
type NearestSlotResponse struct {
	Specialization string          `json:"specialization"`
	Candidates     []SlotCandidate `json:"candidates"`
	Best           *SlotCandidate  `json:"best,omitempty"`
}
