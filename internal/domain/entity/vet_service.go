package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// VetService represents a clinical service offered by the clinic
// (examination, vaccination, sterilization, ...). Specialization ties
// the service to the veterinarians qualified to perform it.
type VetService struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name           string          `gorm:"type:varchar(255);not null" json:"name"`
	Description    string          `gorm:"type:text" json:"description,omitempty"`
	BasePrice      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"base_price"`
	Specialization string          `gorm:"type:varchar(100);not null;index" json:"specialization"`
	CreatedAt      time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Bookings []Booking `gorm:"foreignKey:ServiceID" json:"bookings,omitempty"`
}

func (VetService) TableName() string {
	return "vet_services"
}
