package entity

import (
	"time"

	"github.com/google/uuid"
)

// Pet represents an animal registered in the clinic.
// Ownership is many-to-many via the pets_owners join table, so a
// family can share a pet record.
type Pet struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name       string    `gorm:"type:varchar(255);not null" json:"name"`
	Type       string    `gorm:"type:varchar(100)" json:"type,omitempty"`
	Gender     string    `gorm:"type:varchar(20)" json:"gender,omitempty"`
	Age        float32   `gorm:"default:0" json:"age"`
	Sterilized bool      `gorm:"not null;default:false" json:"sterilized"`
	Vaccinated bool      `gorm:"not null;default:false" json:"vaccinated"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Owners   []User    `gorm:"many2many:pets_owners;joinForeignKey:PetID;joinReferences:OwnerID" json:"owners,omitempty"`
	Bookings []Booking `gorm:"foreignKey:PetID" json:"bookings,omitempty"`
}

func (Pet) TableName() string {
	return "pets"
}
