package professional

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssociationKind selects between the profession and service link tables.
type AssociationKind string

const (
	KindProfession AssociationKind = "profession"
	KindService    AssociationKind = "service"
)

// Cap returns the per-professional association limit for k.
func (k AssociationKind) Cap() int {
	switch k {
	case KindProfession:
		return MaxProfessions
	case KindService:
		return MaxServices
	default:
		return 0
	}
}

func (k AssociationKind) Valid() bool {
	return k == KindProfession || k == KindService
}

type ProfessionalProfession struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ProfessionalID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:ux_professional_profession;column:professional_id" json:"professionalId"`
	ProfessionID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:ux_professional_profession;index;column:profession_id" json:"professionId"`
	CreatedAt      time.Time `gorm:"not null" json:"createdAt"`
}

func (ProfessionalProfession) TableName() string { return "professional_profession" }

func (p *ProfessionalProfession) BeforeCreate(*gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

type ProfessionalService struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ProfessionalID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:ux_professional_service;column:professional_id" json:"professionalId"`
	ServiceID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:ux_professional_service;index;column:service_id" json:"serviceId"`
	CreatedAt      time.Time `gorm:"not null" json:"createdAt"`
}

func (ProfessionalService) TableName() string { return "professional_service" }

func (s *ProfessionalService) BeforeCreate(*gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
