package entity

import (
	"time"

	"github.com/google/uuid"
)

// ScheduleEntry is a veterinarian's calendar reservation, created
// alongside every booking. The unique index on (veterinarian_id,
// appointment_at) is what makes slot uniqueness hold under concurrent
// creation; the application-level check only produces the friendlier
// error message.
type ScheduleEntry struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	VeterinarianID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_vet_appointment" json:"veterinarian_id"`
	AppointmentAt  time.Time `gorm:"not null;uniqueIndex:idx_vet_appointment" json:"appointment_at"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Veterinarian VeterinarianProfile `gorm:"foreignKey:VeterinarianID" json:"veterinarian,omitempty"`
}

func (ScheduleEntry) TableName() string {
	return "schedule_entries"
}
