package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/professionals-backend/internal/http/response"
	"github.com/yungbote/professionals-backend/internal/platform/logger"
	"github.com/yungbote/professionals-backend/internal/services"
)

type AddressHandler struct {
	log       *logger.Logger
	addresses services.AddressService
}

func NewAddressHandler(log *logger.Logger, addresses services.AddressService) *AddressHandler {
	return &AddressHandler{log: log.With("handler", "AddressHandler"), addresses: addresses}
}

// POST /api/professionals/:id/addresses
func (h *AddressHandler) CreateAddress(c *gin.Context) {
	pid, err := pathID(c, "id")
	if err != nil {
		response.RespondError(c, h.log, err)
		return
	}
	var cmd services.SaveAddressCommand
	if err := bindJSON(c, &cmd); err != nil {
		response.RespondError(c, h.log, err)
		return
	}
	cmd.ProfessionalID = pid
	out, err := h.addresses.CreateAddress(c.Request.Context(), cmd)
	if err != nil {
		response.RespondError(c, h.log, err)
		return
	}
	response.RespondCreated(c, out)
}

// GET /api/professionals/:id/addresses
func (h *AddressHandler) ListAddresses(c *gin.Context) {
	pid, err := pathID(c, "id")
	if err != nil {
		response.RespondError(c, h.log, err)
		return
	}
	out, err := h.addresses.ListAddresses(c.Request.Context(), pid)
	if err != nil {
		response.RespondError(c, h.log, err)
		return
	}
	response.RespondOK(c, out)
}

// GET /api/professionals/:id/addresses/:addressId
func (h *AddressHandler) GetAddress(c *gin.Context) {
	pid, err := pathID(c, "id")
	if err != nil {
		response.RespondError(c, h.log, err)
		return
	}
	aid, err := pathID(c, "addressId")
	if err != nil {
		response.RespondError(c, h.log, err)
		return
	}
	out, err := h.addresses.GetAddress(c.Request.Context(), pid, aid)
	if err != nil {
		response.RespondError(c, h.log, err)
		return
	}
	response.RespondOK(c, out)
}

// PUT /api/professionals/:id/addresses/:addressId
func (h *AddressHandler) UpdateAddress(c *gin.Context) {
	pid, err := pathID(c, "id")
	if err != nil {
		response.RespondError(c, h.log, err)
		return
	}
	aid, err := pathID(c, "addressId")
	if err != nil {
		response.RespondError(c, h.log, err)
		return
	}
	var cmd services.SaveAddressCommand
	if err := bindJSON(c, &cmd); err != nil {
		response.RespondError(c, h.log, err)
		return
	}
	cmd.ProfessionalID = pid
	cmd.AddressID = &aid
	out, err := h.addresses.UpdateAddress(c.Request.Context(), cmd)
	if err != nil {
		response.RespondError(c, h.log, err)
		return
	}
	response.RespondOK(c, out)
}

// DELETE /api/professionals/:id/addresses/:addressId
func (h *AddressHandler) DeleteAddress(c *gin.Context) {
	pid, err := pathID(c, "id")
	if err != nil {
		response.RespondError(c, h.log, err)
		return
	}
	aid, err := pathID(c, "addressId")
	if err != nil {
		response.RespondError(c, h.log, err)
		return
	}
	if err := h.addresses.DeleteAddress(c.Request.Context(), pid, aid); err != nil {
		response.RespondError(c, h.log, err)
		return
	}
	response.RespondNoContent(c)
}
