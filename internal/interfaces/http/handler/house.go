package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	housingapp "github.com/residence/backend/internal/application/housing"
	"github.com/residence/backend/internal/domain/housing"
)

// HouseHandler exposes house management within a residence
type HouseHandler struct {
	BaseHandler
	service *housingapp.HouseService
}

// NewHouseHandler creates a new HouseHandler
func NewHouseHandler(service *housingapp.HouseService) *HouseHandler {
	return &HouseHandler{service: service}
}

// Create handles POST /residences/:residenceId/houses
func (h *HouseHandler) Create(c *gin.Context) {
	resID, err := residenceID(c)
	if err != nil {
		h.BadRequest(c, "Invalid residence ID")
		return
	}

	var req housingapp.CreateHouseRequest
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

// Get handles GET /residences/:residenceId/houses/:id
func (h *HouseHandler) Get(c *gin.Context) {
	resID, err := residenceID(c)
	if err != nil {
		h.BadRequest(c, "Invalid residence ID")
		return
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid house ID")
		return
	}

	resp, err := h.service.GetByID(c.Request.Context(), resID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// List handles GET /residences/:residenceId/houses. An optional status
// query filters by occupancy instead of paging.
func (h *HouseHandler) List(c *gin.Context) {
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
		resp, err := h.service.ListByStatus(c.Request.Context(), resID, housing.HouseStatus(status))
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

// Update handles PUT /residences/:residenceId/houses/:id
func (h *HouseHandler) Update(c *gin.Context) {
	resID, err := residenceID(c)
	if err != nil {
		h.BadRequest(c, "Invalid residence ID")
		return
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid house ID")
		return
	}

	var req housingapp.UpdateHouseRequest
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

// Delete handles DELETE /residences/:residenceId/houses/:id
func (h *HouseHandler) Delete(c *gin.Context) {
	resID, err := residenceID(c)
	if err != nil {
		h.BadRequest(c, "Invalid residence ID")
		return
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid house ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), resID, id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
