package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	housingapp "github.com/residence/backend/internal/application/housing"
	"github.com/residence/backend/internal/domain/housing"
)

// ResidentHandler exposes resident management within a residence
type ResidentHandler struct {
	BaseHandler
	service *housingapp.ResidentService
}

// NewResidentHandler creates a new ResidentHandler
func NewResidentHandler(service *housingapp.ResidentService) *ResidentHandler {
	return &ResidentHandler{service: service}
}

// Create handles POST /residences/:residenceId/residents
func (h *ResidentHandler) Create(c *gin.Context) {
	resID, err := residenceID(c)
	if err != nil {
		h.BadRequest(c, "Invalid residence ID")
		return
	}

	var req housingapp.CreateResidentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.Create(c.Request.Context(), resID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// Get handles GET /residences/:residenceId/residents/:id
func (h *ResidentHandler) Get(c *gin.Context) {
	resID, err := residenceID(c)
	if err != nil {
		h.BadRequest(c, "Invalid residence ID")
		return
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid resident ID")
		return
	}

	resp, err := h.service.GetByID(c.Request.Context(), resID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// List handles GET /residences/:residenceId/residents. Optional house_id
// and status queries filter instead of paging.
func (h *ResidentHandler) List(c *gin.Context) {
	resID, err := residenceID(c)
	if err != nil {
		h.BadRequest(c, "Invalid residence ID")
		return
	}

	if statusStr := c.Query("status"); statusStr != "" {
		status, err := strconv.Atoi(statusStr)
		if err != nil {
			h.BadRequest(c, "Invalid status filter")
			return
		}
		resp, err := h.service.ListByStatus(c.Request.Context(), resID, housing.ResidentStatus(status))
		if err != nil {
			h.HandleError(c, err)
			return
		}
		h.Success(c, resp)
		return
	}

	if houseIDStr := c.Query("house_id"); houseIDStr != "" {
		houseID, err := uuid.Parse(houseIDStr)
		if err != nil {
			h.BadRequest(c, "Invalid house_id filter")
			return
		}
		resp, err := h.service.ListByHouse(c.Request.Context(), resID, houseID)
		if err != nil {
			h.HandleError(c, err)
			return
		}
		h.Success(c, resp)
		return
	}

	page, err := h.service.List(c.Request.Context(), resID, bindPagination(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	Paged(c, page)
}

// Update handles PUT /residences/:residenceId/residents/:id
func (h *ResidentHandler) Update(c *gin.Context) {
	resID, err := residenceID(c)
	if err != nil {
		h.BadRequest(c, "Invalid residence ID")
		return
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid resident ID")
		return
	}

	var req housingapp.UpdateResidentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.Update(c.Request.Context(), resID, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Delete handles DELETE /residences/:residenceId/residents/:id
func (h *ResidentHandler) Delete(c *gin.Context) {
	resID, err := residenceID(c)
	if err != nil {
		h.BadRequest(c, "Invalid residence ID")
		return
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid resident ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), resID, id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
