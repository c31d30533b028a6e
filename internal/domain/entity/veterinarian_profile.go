package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// VeterinarianProfile represents veterinarian-specific profile data.
// Specialization drives availability matching against services.
type VeterinarianProfile struct {
	UserID            uuid.UUID       `gorm:"type:uuid;primaryKey" json:"user_id"`
	Specialization    string          `gorm:"type:varchar(100);not null;index" json:"specialization"`
	PhoneNumber       string          `gorm:"type:varchar(50)" json:"phone_number,omitempty"`
	Address           string          `gorm:"type:varchar(255)" json:"address,omitempty"`
	YearsOfExperience int             `gorm:"not null;default:0" json:"years_of_experience"`
	ConsultationPrice decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"consultation_price"`
	PhotoURL          string          `gorm:"type:text" json:"photo_url,omitempty"`

	// Relationships
	User            User            `gorm:"foreignKey:UserID" json:"user,omitempty"`
	ScheduleEntries []ScheduleEntry `gorm:"foreignKey:VeterinarianID" json:"schedule_entries,omitempty"`
	Bookings        []Booking       `gorm:"foreignKey:VeterinarianID" json:"bookings,omitempty"`
}

func (VeterinarianProfile) TableName() string {
	return "veterinarian_profiles"
}
