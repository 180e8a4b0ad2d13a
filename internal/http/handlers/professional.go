package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/professionals-backend/internal/http/response"
	"github.com/yungbote/professionals-backend/internal/platform/logger"
	"github.com/yungbote/professionals-backend/internal/services"
)

type ProfessionalHandler struct {
	log           *logger.Logger
	professionals services.ProfessionalService
}

func NewProfessionalHandler(log *logger.Logger, professionals services.ProfessionalService) *ProfessionalHandler {
	return &ProfessionalHandler{log: log.With("handler", "ProfessionalHandler"), professionals: professionals}
}

// POST /api/professionals
func (h *ProfessionalHandler) CreateProfessional(c *gin.Context) {
	var cmd services.CreateProfessionalCommand
	if err := bindJSON(c, &cmd); err != nil {
		response.RespondError(c, h.log, err)
		return
	}
	out, err := h.professionals.CreateProfessional(c.Request.Context(), cmd)
	if err != nil {
		response.RespondError(c, h.log, err)
		return
	}
	response.RespondCreated(c, out)
}

// GET /api/professionals?pageNumber=&pageSize=&search=
func (h *ProfessionalHandler) ListProfessionals(c *gin.Context) {
	q, err := pageQuery(c)
	if err != nil {
		response.RespondError(c, h.log, err)
		return
	}
	out, err := h.professionals.ListProfessionals(c.Request.Context(), q)
	if err != nil {
		response.RespondError(c, h.log, err)
		return
	}
	response.RespondOK(c, out)
}

// GET /api/professionals/:id
func (h *ProfessionalHandler) GetProfessional(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.RespondError(c, h.log, err)
		return
	}
	out, err := h.professionals.GetProfessional(c.Request.Context(), id)
	if err != nil {
		response.RespondError(c, h.log, err)
		return
	}
	response.RespondOK(c, out)
}

// PUT /api/professionals/:id
func (h *ProfessionalHandler) UpdateProfessional(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.RespondError(c, h.log, err)
		return
	}
	var cmd services.UpdateProfessionalCommand
	if err := bindJSON(c, &cmd); err != nil {
		response.RespondError(c, h.log, err)
		return
	}
	cmd.ID = id
	out, err := h.professionals.UpdateProfessional(c.Request.Context(), cmd)
	if err != nil {
		response.RespondError(c, h.log, err)
		return
	}
	response.RespondOK(c, out)
}
