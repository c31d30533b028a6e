package entity

import (
	"time"

	"github.com/google/uuid"
)

// Booking links an owner's pet to a veterinarian and a service at a
// specific admission time. A booking starts pending and is mutated
// exactly once, when a veterinarian accepts it. Bookings are never
// deleted or rescheduled.
type Booking struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	OwnerID        uuid.UUID `gorm:"type:uuid;not null;index" json:"owner_id"`
	PetID          uuid.UUID `gorm:"type:uuid;not null;index" json:"pet_id"`
	VeterinarianID uuid.UUID `gorm:"type:uuid;not null;index" json:"veterinarian_id"`
	ServiceID      uuid.UUID `gorm:"type:uuid;not null;index" json:"service_id"`
	AdmissionAt    time.Time `gorm:"not null;index" json:"admission_at"`
	IsAccepted     bool      `gorm:"not null;default:false;index" json:"is_accepted"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Owner        User                `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	Pet          Pet                 `gorm:"foreignKey:PetID" json:"pet,omitempty"`
	Veterinarian VeterinarianProfile `gorm:"foreignKey:VeterinarianID" json:"veterinarian,omitempty"`
	Service      VetService          `gorm:"foreignKey:ServiceID" json:"service,omitempty"`
}

func (Booking) TableName() string {
	return "bookings"
}

// IsPending checks if the booking has not been accepted yet
func (b *Booking) IsPending() bool {
	return !b.IsAccepted
}

// Accept marks the booking as accepted
func (b *Booking) Accept() {
	b.IsAccepted = true
}
