package domain

import (
	"github.com/yungbote/professionals-backend/internal/domain/professional"
	"github.com/yungbote/professionals-backend/internal/domain/reference"
)

type Professional = professional.Professional
type ProfessionalAddress = professional.ProfessionalAddress
type ProfessionalProfession = professional.ProfessionalProfession
type ProfessionalService = professional.ProfessionalService
type AssociationKind = professional.AssociationKind

const (
	KindProfession = professional.KindProfession
	KindService    = professional.KindService

	MaxProfessions = professional.MaxProfessions
	MaxServices    = professional.MaxServices

	MaxNameLength        = professional.MaxNameLength
	MaxDocumentIDLength  = professional.MaxDocumentIDLength
	MaxPhoneNumberLength = professional.MaxPhoneNumberLength
	MaxEmailLength       = professional.MaxEmailLength

	MaxStreetLength     = professional.MaxStreetLength
	MaxCityLength       = professional.MaxCityLength
	MaxStateLength      = professional.MaxStateLength
	MaxPostalCodeLength = professional.MaxPostalCodeLength

	MinLatitude  = professional.MinLatitude
	MaxLatitude  = professional.MaxLatitude
	MinLongitude = professional.MinLongitude
	MaxLongitude = professional.MaxLongitude
)

type CountryCode = reference.CountryCode
type Currency = reference.Currency
type Language = reference.Language
type TimeZone = reference.TimeZone
type Profession = reference.Profession
type Service = reference.Service
