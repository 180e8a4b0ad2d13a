// Package reference holds the read-mostly catalog tables a Professional
// points at. Rows are written by the seeder only.
package reference

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type CountryCode struct {
	ID           uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	Code         string            `gorm:"uniqueIndex;not null;size:10;column:code" json:"code"`
	Description  string            `gorm:"not null;size:200;column:description" json:"description"`
	Translations datatypes.JSONMap `gorm:"column:translations" json:"translations,omitempty"`
	CreatedAt    time.Time         `gorm:"not null" json:"createdAt"`
	UpdatedAt    time.Time         `gorm:"not null" json:"updatedAt"`
}

func (CountryCode) TableName() string { return "country_code" }

type Currency struct {
	ID           uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	Code         string            `gorm:"uniqueIndex;not null;size:10;column:code" json:"code"`
	Description  string            `gorm:"not null;size:200;column:description" json:"description"`
	Translations datatypes.JSONMap `gorm:"column:translations" json:"translations,omitempty"`
	CreatedAt    time.Time         `gorm:"not null" json:"createdAt"`
	UpdatedAt    time.Time         `gorm:"not null" json:"updatedAt"`
}

func (Currency) TableName() string { return "currency" }

type Language struct {
	ID           uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	Code         string            `gorm:"uniqueIndex;not null;size:10;column:code" json:"code"`
	Description  string            `gorm:"not null;size:200;column:description" json:"description"`
	Translations datatypes.JSONMap `gorm:"column:translations" json:"translations,omitempty"`
	CreatedAt    time.Time         `gorm:"not null" json:"createdAt"`
	UpdatedAt    time.Time         `gorm:"not null" json:"updatedAt"`
}

func (Language) TableName() string { return "language" }

type TimeZone struct {
	ID           uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	Code         string            `gorm:"uniqueIndex;not null;size:64;column:code" json:"code"`
	Description  string            `gorm:"not null;size:200;column:description" json:"description"`
	Translations datatypes.JSONMap `gorm:"column:translations" json:"translations,omitempty"`
	CreatedAt    time.Time         `gorm:"not null" json:"createdAt"`
	UpdatedAt    time.Time         `gorm:"not null" json:"updatedAt"`
}

func (TimeZone) TableName() string { return "time_zone" }

type Profession struct {
	ID           uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string            `gorm:"uniqueIndex;not null;size:50;column:name" json:"name"`
	Description  string            `gorm:"size:500;column:description" json:"description"`
	Translations datatypes.JSONMap `gorm:"column:translations" json:"translations,omitempty"`
	CreatedAt    time.Time         `gorm:"not null" json:"createdAt"`
	UpdatedAt    time.Time         `gorm:"not null" json:"updatedAt"`
}

func (Profession) TableName() string { return "profession" }

type Service struct {
	ID           uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string            `gorm:"uniqueIndex;not null;size:50;column:name" json:"name"`
	Description  string            `gorm:"size:500;column:description" json:"description"`
	Translations datatypes.JSONMap `gorm:"column:translations" json:"translations,omitempty"`
	CreatedAt    time.Time         `gorm:"not null" json:"createdAt"`
	UpdatedAt    time.Time         `gorm:"not null" json:"updatedAt"`
}

func (Service) TableName() string { return "service" }

func (c *CountryCode) BeforeCreate(*gorm.DB) error { c.ID = ensureID(c.ID); return nil }
func (c *Currency) BeforeCreate(*gorm.DB) error    { c.ID = ensureID(c.ID); return nil }
func (l *Language) BeforeCreate(*gorm.DB) error    { l.ID = ensureID(l.ID); return nil }
func (z *TimeZone) BeforeCreate(*gorm.DB) error    { z.ID = ensureID(z.ID); return nil }
func (p *Profession) BeforeCreate(*gorm.DB) error  { p.ID = ensureID(p.ID); return nil }
func (s *Service) BeforeCreate(*gorm.DB) error     { s.ID = ensureID(s.ID); return nil }

func ensureID(id uuid.UUID) uuid.UUID {
	if id == uuid.Nil {
		return uuid.New()
	}
	return id
}
