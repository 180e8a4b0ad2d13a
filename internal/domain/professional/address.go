package professional

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProfessionalAddress is owned by its Professional. At most one address per
// professional carries IsDefault.
type ProfessionalAddress struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ProfessionalID uuid.UUID `gorm:"type:uuid;index;not null;column:professional_id" json:"professionalId"`
	Street         string    `gorm:"not null;size:200;column:street" json:"street"`
	City           string    `gorm:"not null;size:100;column:city" json:"city"`
	State          string    `gorm:"not null;size:100;column:state" json:"state"`
	PostalCode     string    `gorm:"not null;size:20;column:postal_code" json:"postalCode"`
	Latitude       *float64  `gorm:"column:latitude" json:"latitude,omitempty"`
	Longitude      *float64  `gorm:"column:longitude" json:"longitude,omitempty"`
	IsDefault      bool      `gorm:"not null;default:false;column:is_default" json:"isDefault"`
	CountryID      uuid.UUID `gorm:"type:uuid;index;not null;column:country_id" json:"countryId"`
	CreatedAt      time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt      time.Time `gorm:"not null" json:"updatedAt"`
}

func (ProfessionalAddress) TableName() string { return "professional_address" }

func (a *ProfessionalAddress) BeforeCreate(*gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
