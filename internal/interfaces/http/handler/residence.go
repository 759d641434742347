package handler

import (
	"github.com/gin-gonic/gin"

	residenceapp "github.com/residence/backend/internal/application/residence"
)

// ResidenceHandler exposes residence and settings management
type ResidenceHandler struct {
	BaseHandler
	service *residenceapp.Service
}

// NewResidenceHandler creates a new ResidenceHandler
func NewResidenceHandler(service *residenceapp.Service) *ResidenceHandler {
	return &ResidenceHandler{service: service}
}

// Create handles POST /residences
func (h *ResidenceHandler) Create(c *gin.Context) {
	var req residenceapp.CreateResidenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// Get handles GET /residences/:residenceId
func (h *ResidenceHandler) Get(c *gin.Context) {
	id, err := residenceID(c)
	if err != nil {
		h.BadRequest(c, "Invalid residence ID")
		return
	}

	resp, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// List handles GET /residences
func (h *ResidenceHandler) List(c *gin.Context) {
	page, err := h.service.List(c.Request.Context(), bindPagination(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	Paged(c, page)
}

// Update handles PUT /residences/:residenceId
func (h *ResidenceHandler) Update(c *gin.Context) {
	id, err := residenceID(c)
	if err != nil {
		h.BadRequest(c, "Invalid residence ID")
		return
	}

	var req residenceapp.UpdateResidenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Delete handles DELETE /residences/:residenceId
func (h *ResidenceHandler) Delete(c *gin.Context) {
	id, err := residenceID(c)
	if err != nil {
		h.BadRequest(c, "Invalid residence ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// GetSettings handles GET /residences/:residenceId/settings
func (h *ResidenceHandler) GetSettings(c *gin.Context) {
	id, err := residenceID(c)
	if err != nil {
		h.BadRequest(c, "Invalid residence ID")
		return
	}

	resp, err := h.service.GetSettings(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// UpdateSettings handles PUT /residences/:residenceId/settings
func (h *ResidenceHandler) UpdateSettings(c *gin.Context) {
	id, err := residenceID(c)
	if err != nil {
		h.BadRequest(c, "Invalid residence ID")
		return
	}

	var req residenceapp.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.UpdateSettings(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}
