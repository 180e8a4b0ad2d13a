package repos

import (
	"github.com/yungbote/professionals-backend/internal/data/repos/professional"
	"github.com/yungbote/professionals-backend/internal/data/repos/reference"
	"github.com/yungbote/professionals-backend/internal/platform/logger"
	"gorm.io/gorm"
)

type ProfessionalRepo = professional.ProfessionalRepo
type AddressRepo = professional.AddressRepo
type AssociationRepo = professional.AssociationRepo
type LinkedTarget = professional.LinkedTarget

type CountryCodeRepo = reference.CountryCodeRepo
type CurrencyRepo = reference.CurrencyRepo
type LanguageRepo = reference.LanguageRepo
type TimeZoneRepo = reference.TimeZoneRepo
type ProfessionRepo = reference.ProfessionRepo
type ServiceRepo = reference.ServiceRepo

func NewProfessionalRepo(db *gorm.DB, baseLog *logger.Logger) ProfessionalRepo {
	return professional.NewProfessionalRepo(db, baseLog)
}
func NewAddressRepo(db *gorm.DB, baseLog *logger.Logger) AddressRepo {
	return professional.NewAddressRepo(db, baseLog)
}
func NewAssociationRepo(db *gorm.DB, baseLog *logger.Logger) AssociationRepo {
	return professional.NewAssociationRepo(db, baseLog)
}

func NewCountryCodeRepo(db *gorm.DB, baseLog *logger.Logger) CountryCodeRepo {
	return reference.NewCountryCodeRepo(db, baseLog)
}
func NewCurrencyRepo(db *gorm.DB, baseLog *logger.Logger) CurrencyRepo {
	return reference.NewCurrencyRepo(db, baseLog)
}
func NewLanguageRepo(db *gorm.DB, baseLog *logger.Logger) LanguageRepo {
	return reference.NewLanguageRepo(db, baseLog)
}
func NewTimeZoneRepo(db *gorm.DB, baseLog *logger.Logger) TimeZoneRepo {
	return reference.NewTimeZoneRepo(db, baseLog)
}
func NewProfessionRepo(db *gorm.DB, baseLog *logger.Logger) ProfessionRepo {
	return reference.NewProfessionRepo(db, baseLog)
}
func NewServiceRepo(db *gorm.DB, baseLog *logger.Logger) ServiceRepo {
	return reference.NewServiceRepo(db, baseLog)
}
