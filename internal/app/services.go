package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/professionals-backend/internal/data/aggregates"
	domainagg "github.com/yungbote/professionals-backend/internal/domain/aggregates"
	"github.com/yungbote/professionals-backend/internal/observability"
	"github.com/yungbote/professionals-backend/internal/platform/logger"
	"github.com/yungbote/professionals-backend/internal/services"
)

type Services struct {
	ProfessionalAggregate domainagg.ProfessionalAggregate

	Professional services.ProfessionalService
	Address      services.AddressService
	Association  services.AssociationService
	Reference    services.ReferenceService
	Seed         services.SeedService
}

func wireServices(db *gorm.DB, log *logger.Logger, r Repos, clients Clients, metrics *observability.Metrics) Services {
	log.Info("Wiring services...")

	var hooks aggregates.Hooks = aggregates.NewLogHooks(log)
	if metrics != nil {
		hooks = metrics
	}
	runner := aggregates.NewGormTxRunner(db)
	base := aggregates.BaseDeps{
		DB:     db,
		Log:    log,
		Runner: runner,
		Hooks:  hooks,
		Locker: clients.Locker,
	}
	agg := aggregates.NewProfessionalAggregate(aggregates.ProfessionalAggregateDeps{
		Base:          base,
		Professionals: r.Professional,
		Countries:     r.CountryCode,
		Professions:   r.Profession,
		Services:      r.Service,
		Addresses:     r.Address,
		Associations:  r.Association,
	})

	return Services{
		ProfessionalAggregate: agg,
		Professional:          services.NewProfessionalService(log, r.Professional, r.Currency, r.CountryCode, r.Language, r.TimeZone),
		Address:               services.NewAddressService(log, agg, r.Professional, r.Address),
		Association:           services.NewAssociationService(log, agg),
		Reference:             services.NewReferenceService(log, r.CountryCode, r.Currency, r.Language, r.TimeZone, r.Profession, r.Service),
		Seed:                  services.NewSeedService(log, runner, r.CountryCode, r.Currency, r.Language, r.TimeZone, r.Profession, r.Service),
	}
}
