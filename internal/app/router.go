package app

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/professionals-backend/internal/http"
	"github.com/yungbote/professionals-backend/internal/observability"
	"github.com/yungbote/professionals-backend/internal/platform/logger"
)

func wireRouter(log *logger.Logger, cfg Config, handlers Handlers, metrics *observability.Metrics) *gin.Engine {
	log.Info("Wiring router...")
	return http.NewRouter(http.RouterConfig{
		Log:                 log,
		ServiceName:         "professionals-api",
		CORSOrigins:         cfg.CORSOrigins,
		Metrics:             metrics,
		HealthHandler:       handlers.Health,
		ProfessionalHandler: handlers.Professional,
		AddressHandler:      handlers.Address,
		AssociationHandler:  handlers.Association,
		ReferenceHandler:    handlers.Reference,
	})
}
