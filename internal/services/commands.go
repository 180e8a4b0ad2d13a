package services

import (
	"strings"

	"github.com/google/uuid"

	types "github.com/yungbote/professionals-backend/internal/domain"
	"github.com/yungbote/professionals-backend/internal/platform/pagination"
	"github.com/yungbote/professionals-backend/internal/platform/validate"
)

type CreateProfessionalCommand struct {
	Name                string    `json:"name"`
	DocumentID          string    `json:"documentId"`
	PhoneNumber         string    `json:"phoneNumber"`
	Email               string    `json:"email"`
	CurrencyID          uuid.UUID `json:"currencyId"`
	PhoneCountryCodeID  uuid.UUID `json:"phoneCountryCodeId"`
	PreferredLanguageID uuid.UUID `json:"preferredLanguageId"`
	TimeZoneID          uuid.UUID `json:"timeZoneId"`
}

func (c *CreateProfessionalCommand) normalize() {
	c.Name = strings.TrimSpace(c.Name)
	c.DocumentID = strings.TrimSpace(c.DocumentID)
	c.PhoneNumber = strings.TrimSpace(c.PhoneNumber)
	c.Email = strings.ToLower(strings.TrimSpace(c.Email))
}

func (c CreateProfessionalCommand) Validate() validate.Errors {
	v := validate.New()
	if v.Required("name", c.Name) {
		v.MaxLen("name", c.Name, types.MaxNameLength)
	}
	if v.Required("documentId", c.DocumentID) {
		v.MaxLen("documentId", c.DocumentID, types.MaxDocumentIDLength)
	}
	if v.Required("phoneNumber", c.PhoneNumber) {
		v.MaxLen("phoneNumber", c.PhoneNumber, types.MaxPhoneNumberLength)
	}
	if v.Required("email", c.Email) {
		v.MaxLen("email", c.Email, types.MaxEmailLength)
		v.Email("email", c.Email)
	}
	v.RequiredID("currencyId", c.CurrencyID)
	v.RequiredID("phoneCountryCodeId", c.PhoneCountryCodeID)
	v.RequiredID("preferredLanguageId", c.PreferredLanguageID)
	v.RequiredID("timeZoneId", c.TimeZoneID)
	return v
}

type UpdateProfessionalCommand struct {
	ID uuid.UUID `json:"-"`
	CreateProfessionalCommand
}

func (c UpdateProfessionalCommand) Validate() validate.Errors {
	v := c.CreateProfessionalCommand.Validate()
	v.RequiredID("id", c.ID)
	return v
}

// SaveAddressCommand backs both address create (AddressID nil) and update.
type SaveAddressCommand struct {
	ProfessionalID uuid.UUID  `json:"-"`
	AddressID      *uuid.UUID `json:"-"`
	Street         string     `json:"street"`
	City           string     `json:"city"`
	State          string     `json:"state"`
	PostalCode     string     `json:"postalCode"`
	Latitude       *float64   `json:"latitude"`
	Longitude      *float64   `json:"longitude"`
	IsDefault      bool       `json:"isDefault"`
	CountryID      uuid.UUID  `json:"countryId"`
}

func (c SaveAddressCommand) Validate() validate.Errors {
	v := validate.New()
	v.RequiredID("professionalId", c.ProfessionalID)
	if c.AddressID != nil {
		v.RequiredID("addressId", *c.AddressID)
	}
	if v.Required("street", c.Street) {
		v.MaxLen("street", c.Street, types.MaxStreetLength)
	}
	if v.Required("city", c.City) {
		v.MaxLen("city", c.City, types.MaxCityLength)
	}
	if v.Required("state", c.State) {
		v.MaxLen("state", c.State, types.MaxStateLength)
	}
	if v.Required("postalCode", c.PostalCode) {
		v.MaxLen("postalCode", c.PostalCode, types.MaxPostalCodeLength)
	}
	v.FloatRange("latitude", c.Latitude, types.MinLatitude, types.MaxLatitude)
	v.FloatRange("longitude", c.Longitude, types.MinLongitude, types.MaxLongitude)
	v.RequiredID("countryId", c.CountryID)
	return v
}

// PageQuery is a listing request. Zero values are rejected, so transports
// fill in pagination.DefaultPageSize themselves.
type PageQuery struct {
	PageNumber int
	PageSize   int
	Search     string
}

func (q PageQuery) page() (pagination.Page, error) {
	return pagination.New(q.PageNumber, q.PageSize)
}
