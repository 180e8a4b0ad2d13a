package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/professionals-backend/internal/data/repos"
	"github.com/yungbote/professionals-backend/internal/platform/logger"
)

type Repos struct {
	Professional repos.ProfessionalRepo
	Address      repos.AddressRepo
	Association  repos.AssociationRepo

	CountryCode repos.CountryCodeRepo
	Currency    repos.CurrencyRepo
	Language    repos.LanguageRepo
	TimeZone    repos.TimeZoneRepo
	Profession  repos.ProfessionRepo
	Service     repos.ServiceRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Professional: repos.NewProfessionalRepo(db, log),
		Address:      repos.NewAddressRepo(db, log),
		Association:  repos.NewAssociationRepo(db, log),

		CountryCode: repos.NewCountryCodeRepo(db, log),
		Currency:    repos.NewCurrencyRepo(db, log),
		Language:    repos.NewLanguageRepo(db, log),
		TimeZone:    repos.NewTimeZoneRepo(db, log),
		Profession:  repos.NewProfessionRepo(db, log),
		Service:     repos.NewServiceRepo(db, log),
	}
}
