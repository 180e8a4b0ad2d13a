package handlers

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/professionals-backend/internal/http/response"
	"github.com/yungbote/professionals-backend/internal/platform/logger"
	"github.com/yungbote/professionals-backend/internal/platform/pagination"
	"github.com/yungbote/professionals-backend/internal/services"
)

type ReferenceHandler struct {
	log        *logger.Logger
	references services.ReferenceService
}

func NewReferenceHandler(log *logger.Logger, references services.ReferenceService) *ReferenceHandler {
	return &ReferenceHandler{log: log.With("handler", "ReferenceHandler"), references: references}
}

// GET /api/country-codes
func (h *ReferenceHandler) ListCountryCodes(c *gin.Context) {
	listCatalog(c, h.log, h.references.GetCountryCodes)
}

// GET /api/currencies
func (h *ReferenceHandler) ListCurrencies(c *gin.Context) {
	listCatalog(c, h.log, h.references.GetCurrencies)
}

// GET /api/languages
func (h *ReferenceHandler) ListLanguages(c *gin.Context) {
	listCatalog(c, h.log, h.references.GetLanguages)
}

// GET /api/time-zones
func (h *ReferenceHandler) ListTimeZones(c *gin.Context) {
	listCatalog(c, h.log, h.references.GetTimeZones)
}

// GET /api/professions
func (h *ReferenceHandler) ListProfessions(c *gin.Context) {
	listCatalog(c, h.log, h.references.GetProfessions)
}

// GET /api/services
func (h *ReferenceHandler) ListServices(c *gin.Context) {
	listCatalog(c, h.log, h.references.GetServices)
}

func (h *ReferenceHandler) GetCountryCode(c *gin.Context) {
	getCatalog(c, h.log, h.references.GetCountryCodeByID)
}

func (h *ReferenceHandler) GetCurrency(c *gin.Context) {
	getCatalog(c, h.log, h.references.GetCurrencyByID)
}

func (h *ReferenceHandler) GetLanguage(c *gin.Context) {
	getCatalog(c, h.log, h.references.GetLanguageByID)
}

func (h *ReferenceHandler) GetTimeZone(c *gin.Context) {
	getCatalog(c, h.log, h.references.GetTimeZoneByID)
}

func (h *ReferenceHandler) GetProfession(c *gin.Context) {
	getCatalog(c, h.log, h.references.GetProfessionByID)
}

func (h *ReferenceHandler) GetService(c *gin.Context) {
	getCatalog(c, h.log, h.references.GetServiceByID)
}

func listCatalog[T any](c *gin.Context, log *logger.Logger, fn func(ctx context.Context, q services.PageQuery) (pagination.Result[T], error)) {
	q, err := pageQuery(c)
	if err != nil {
		response.RespondError(c, log, err)
		return
	}
	out, err := fn(c.Request.Context(), q)
	if err != nil {
		response.RespondError(c, log, err)
		return
	}
	response.RespondOK(c, out)
}

func getCatalog[T any](c *gin.Context, log *logger.Logger, fn func(ctx context.Context, id uuid.UUID) (T, error)) {
	id, err := pathID(c, "id")
	if err != nil {
		response.RespondError(c, log, err)
		return
	}
	out, err := fn(c.Request.Context(), id)
	if err != nil {
		response.RespondError(c, log, err)
		return
	}
	response.RespondOK(c, out)
}
