package app

import (
	"github.com/yungbote/professionals-backend/internal/clients/redis"
	httpH "github.com/yungbote/professionals-backend/internal/http/handlers"
	"github.com/yungbote/professionals-backend/internal/data/db"
	"github.com/yungbote/professionals-backend/internal/platform/logger"
)

type Handlers struct {
	Health       *httpH.HealthHandler
	Professional *httpH.ProfessionalHandler
	Address      *httpH.AddressHandler
	Association  *httpH.AssociationHandler
	Reference    *httpH.ReferenceHandler
}

func wireHandlers(log *logger.Logger, store *db.Service, clients Clients, s Services) Handlers {
	log.Info("Wiring handlers...")
	probes := map[string]httpH.HealthProbe{
		"db": store.Ping,
	}
	if clients.Redis != nil {
		probes["redis"] = redis.Pinger{RDB: clients.Redis}.Ping
	}
	return Handlers{
		Health:       httpH.NewHealthHandler(log, probes),
		Professional: httpH.NewProfessionalHandler(log, s.Professional),
		Address:      httpH.NewAddressHandler(log, s.Address),
		Association:  httpH.NewAssociationHandler(log, s.Association),
		Reference:    httpH.NewReferenceHandler(log, s.Reference),
	}
}
