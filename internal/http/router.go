package http

import (
	"errors"
	nethttp "net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/yungbote/professionals-backend/internal/http/handlers"
	httpMW "github.com/yungbote/professionals-backend/internal/http/middleware"
	"github.com/yungbote/professionals-backend/internal/http/response"
	"github.com/yungbote/professionals-backend/internal/observability"
	"github.com/yungbote/professionals-backend/internal/platform/apierr"
	"github.com/yungbote/professionals-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log         *logger.Logger
	ServiceName string
	CORSOrigins []string
	Metrics     *observability.Metrics

	ProfessionalHandler *httpH.ProfessionalHandler
	AddressHandler      *httpH.AddressHandler
	AssociationHandler  *httpH.AssociationHandler
	ReferenceHandler    *httpH.ReferenceHandler

	HealthHandler *httpH.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	log := cfg.Log
	if log == nil {
		log = logger.Nop()
	}
	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = "professionals-api"
	}

	r := gin.New()
	r.Use(otelgin.Middleware(serviceName))
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(log))
	r.Use(httpMW.Recovery(log))
	r.Use(httpMW.Metrics(cfg.Metrics))
	r.Use(httpMW.CORS(cfg.CORSOrigins))

	r.NoRoute(func(c *gin.Context) {
		response.RespondError(c, log, apierr.New(nethttp.StatusNotFound, apierr.CodeRouteNotFound, errors.New("route not found")))
	})

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}
	if cfg.Metrics != nil {
		r.GET("/metrics", gin.WrapF(cfg.Metrics.WriteHTTP))
	}

	api := r.Group("/api")
	{
		// Professionals
		if h := cfg.ProfessionalHandler; h != nil {
			api.POST("/professionals", h.CreateProfessional)
			api.GET("/professionals", h.ListProfessionals)
			api.GET("/professionals/:id", h.GetProfessional)
			api.PUT("/professionals/:id", h.UpdateProfessional)
		}

		// Addresses
		if h := cfg.AddressHandler; h != nil {
			api.POST("/professionals/:id/addresses", h.CreateAddress)
			api.GET("/professionals/:id/addresses", h.ListAddresses)
			api.GET("/professionals/:id/addresses/:addressId", h.GetAddress)
			api.PUT("/professionals/:id/addresses/:addressId", h.UpdateAddress)
			api.DELETE("/professionals/:id/addresses/:addressId", h.DeleteAddress)
		}

		// Professions / services of a professional
		if h := cfg.AssociationHandler; h != nil {
			api.POST("/professionals/:id/professions", h.AddProfession)
			api.GET("/professionals/:id/professions", h.ListProfessions)
			api.DELETE("/professionals/:id/professions/:professionId", h.RemoveProfession)
			api.POST("/professionals/:id/services", h.AddService)
			api.GET("/professionals/:id/services", h.ListServices)
			api.DELETE("/professionals/:id/services/:serviceId", h.RemoveService)
		}

		// Reference catalogs
		if h := cfg.ReferenceHandler; h != nil {
			api.GET("/country-codes", h.ListCountryCodes)
			api.GET("/country-codes/:id", h.GetCountryCode)
			api.GET("/currencies", h.ListCurrencies)
			api.GET("/currencies/:id", h.GetCurrency)
			api.GET("/languages", h.ListLanguages)
			api.GET("/languages/:id", h.GetLanguage)
			api.GET("/time-zones", h.ListTimeZones)
			api.GET("/time-zones/:id", h.GetTimeZone)
			api.GET("/professions", h.ListProfessions)
			api.GET("/professions/:id", h.GetProfession)
			api.GET("/services", h.ListServices)
			api.GET("/services/:id", h.GetService)
		}
	}

	return r
}
