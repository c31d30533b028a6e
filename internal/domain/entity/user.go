package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents the centralized authentication table.
// Pet owners are plain users; veterinarians additionally carry a
// VeterinarianProfile keyed by their user ID.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	RoleID    int       `gorm:"not null;index" json:"role_id"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"type:text;not null" json:"-"`
	FullName  string    `gorm:"type:varchar(255);not null" json:"full_name"`
	IsActive  bool      `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Role                Role                 `gorm:"foreignKey:RoleID" json:"role,omitempty"`
	VeterinarianProfile *VeterinarianProfile `gorm:"foreignKey:UserID" json:"veterinarian_profile,omitempty"`
	Pets                []Pet                `gorm:"many2many:pets_owners;joinForeignKey:OwnerID;joinReferences:PetID" json:"pets,omitempty"`
}

func (User) TableName() string {
	return "users"
}
