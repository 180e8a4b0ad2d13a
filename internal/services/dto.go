package services

import (
	"time"

	"github.com/google/uuid"

	types "github.com/yungbote/professionals-backend/internal/domain"
	domainagg "github.com/yungbote/professionals-backend/internal/domain/aggregates"
)

type ProfessionalResponse struct {
	ID                  uuid.UUID `json:"id"`
	Name                string    `json:"name"`
	DocumentID          string    `json:"documentId"`
	PhoneNumber         string    `json:"phoneNumber"`
	Email               string    `json:"email"`
	CurrencyID          uuid.UUID `json:"currencyId"`
	PhoneCountryCodeID  uuid.UUID `json:"phoneCountryCodeId"`
	PreferredLanguageID uuid.UUID `json:"preferredLanguageId"`
	TimeZoneID          uuid.UUID `json:"timeZoneId"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

func toProfessionalResponse(p *types.Professional) ProfessionalResponse {
	return ProfessionalResponse{
		ID:                  p.ID,
		Name:                p.Name,
		DocumentID:          p.DocumentID,
		PhoneNumber:         p.PhoneNumber,
		Email:               p.Email,
		CurrencyID:          p.CurrencyID,
		PhoneCountryCodeID:  p.PhoneCountryCodeID,
		PreferredLanguageID: p.PreferredLanguageID,
		TimeZoneID:          p.TimeZoneID,
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
	}
}

type AddressResponse struct {
	ID             uuid.UUID `json:"id"`
	ProfessionalID uuid.UUID `json:"professionalId"`
	Street         string    `json:"street"`
	City           string    `json:"city"`
	State          string    `json:"state"`
	PostalCode     string    `json:"postalCode"`
	Latitude       *float64  `json:"latitude"`
	Longitude      *float64  `json:"longitude"`
	IsDefault      bool      `json:"isDefault"`
	CountryID      uuid.UUID `json:"countryId"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func toAddressResponse(a *types.ProfessionalAddress) AddressResponse {
	return AddressResponse{
		ID:             a.ID,
		ProfessionalID: a.ProfessionalID,
		Street:         a.Street,
		City:           a.City,
		State:          a.State,
		PostalCode:     a.PostalCode,
		Latitude:       a.Latitude,
		Longitude:      a.Longitude,
		IsDefault:      a.IsDefault,
		CountryID:      a.CountryID,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}

type AssociationResponse = domainagg.AssociationTarget
