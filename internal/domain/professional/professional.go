package professional

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Professional struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name                string    `gorm:"not null;size:100;column:name" json:"name"`
	DocumentID          string    `gorm:"uniqueIndex;not null;size:20;column:document_id" json:"documentId"`
	PhoneNumber         string    `gorm:"uniqueIndex;not null;size:20;column:phone_number" json:"phoneNumber"`
	Email               string    `gorm:"uniqueIndex;not null;size:100;column:email" json:"email"`
	CurrencyID          uuid.UUID `gorm:"type:uuid;index;not null;column:currency_id" json:"currencyId"`
	PhoneCountryCodeID  uuid.UUID `gorm:"type:uuid;index;not null;column:phone_country_code_id" json:"phoneCountryCodeId"`
	PreferredLanguageID uuid.UUID `gorm:"type:uuid;index;not null;column:preferred_language_id" json:"preferredLanguageId"`
	TimeZoneID          uuid.UUID `gorm:"type:uuid;index;not null;column:time_zone_id" json:"timeZoneId"`

	Addresses   []ProfessionalAddress    `gorm:"foreignKey:ProfessionalID;constraint:OnDelete:CASCADE" json:"addresses,omitempty"`
	Professions []ProfessionalProfession `gorm:"foreignKey:ProfessionalID;constraint:OnDelete:CASCADE" json:"professions,omitempty"`
	Services    []ProfessionalService    `gorm:"foreignKey:ProfessionalID;constraint:OnDelete:CASCADE" json:"services,omitempty"`

	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null" json:"updatedAt"`
}

func (Professional) TableName() string { return "professional" }

func (p *Professional) BeforeCreate(*gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
