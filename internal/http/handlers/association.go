package handlers

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/professionals-backend/internal/http/response"
	"github.com/yungbote/professionals-backend/internal/platform/logger"
	"github.com/yungbote/professionals-backend/internal/services"
)

type AssociationHandler struct {
	log          *logger.Logger
	associations services.AssociationService
}

func NewAssociationHandler(log *logger.Logger, associations services.AssociationService) *AssociationHandler {
	return &AssociationHandler{log: log.With("handler", "AssociationHandler"), associations: associations}
}

type addProfessionRequest struct {
	ProfessionID uuid.UUID `json:"professionId"`
}

type addServiceRequest struct {
	ServiceID uuid.UUID `json:"serviceId"`
}

// POST /api/professionals/:id/professions
func (h *AssociationHandler) AddProfession(c *gin.Context) {
	var req addProfessionRequest
	h.add(c, &req, func() uuid.UUID { return req.ProfessionID }, h.associations.AddProfession)
}

// POST /api/professionals/:id/services
func (h *AssociationHandler) AddService(c *gin.Context) {
	var req addServiceRequest
	h.add(c, &req, func() uuid.UUID { return req.ServiceID }, h.associations.AddService)
}

// GET /api/professionals/:id/professions
func (h *AssociationHandler) ListProfessions(c *gin.Context) {
	h.list(c, h.associations.ListProfessions)
}

// GET /api/professionals/:id/services
func (h *AssociationHandler) ListServices(c *gin.Context) {
	h.list(c, h.associations.ListServices)
}

// DELETE /api/professionals/:id/professions/:professionId
func (h *AssociationHandler) RemoveProfession(c *gin.Context) {
	h.remove(c, "professionId", h.associations.RemoveProfession)
}

// DELETE /api/professionals/:id/services/:serviceId
func (h *AssociationHandler) RemoveService(c *gin.Context) {
	h.remove(c, "serviceId", h.associations.RemoveService)
}

func (h *AssociationHandler) add(
	c *gin.Context,
	body any,
	target func() uuid.UUID,
	fn func(ctx context.Context, professionalID, targetID uuid.UUID) (*services.AssociationResponse, error),
) {
	pid, err := pathID(c, "id")
	if err != nil {
		response.RespondError(c, h.log, err)
		return
	}
	if err := bindJSON(c, body); err != nil {
		response.RespondError(c, h.log, err)
		return
	}
	out, err := fn(c.Request.Context(), pid, target())
	if err != nil {
		response.RespondError(c, h.log, err)
		return
	}
	response.RespondCreated(c, out)
}

func (h *AssociationHandler) list(c *gin.Context, fn func(ctx context.Context, professionalID uuid.UUID) ([]services.AssociationResponse, error)) {
	pid, err := pathID(c, "id")
	if err != nil {
		response.RespondError(c, h.log, err)
		return
	}
	out, err := fn(c.Request.Context(), pid)
	if err != nil {
		response.RespondError(c, h.log, err)
		return
	}
	if out == nil {
		out = []services.AssociationResponse{}
	}
	response.RespondOK(c, out)
}

func (h *AssociationHandler) remove(c *gin.Context, param string, fn func(ctx context.Context, professionalID, targetID uuid.UUID) error) {
	pid, err := pathID(c, "id")
	if err != nil {
		response.RespondError(c, h.log, err)
		return
	}
	tid, err := pathID(c, param)
	if err != nil {
		response.RespondError(c, h.log, err)
		return
	}
	if err := fn(c.Request.Context(), pid, tid); err != nil {
		response.RespondError(c, h.log, err)
		return
	}
	response.RespondNoContent(c)
}
