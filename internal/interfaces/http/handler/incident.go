package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	incidentapp "github.com/residence/backend/internal/application/incident"
	"github.com/residence/backend/internal/domain/incident"
)

// IncidentHandler exposes incident management within a residence
type IncidentHandler struct {
	BaseHandler
	service *incidentapp.Service
}

// NewIncidentHandler creates a new IncidentHandler
func NewIncidentHandler(service *incidentapp.Service) *IncidentHandler {
	return &IncidentHandler{service: service}
}

// Create handles POST /residences/:residenceId/incidents
func (h *IncidentHandler) Create(c *gin.Context) {
	resID, err := residenceID(c)
	if err != nil {
		h.BadRequest(c, "Invalid residence ID")
		return
	}

	var req incidentapp.CreateIncidentRequest
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

// Get handles GET /residences/:residenceId/incidents/:id
func (h *IncidentHandler) Get(c *gin.Context) {
	resID, err := residenceID(c)
	if err != nil {
		h.BadRequest(c, "Invalid residence ID")
		return
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid incident ID")
		return
	}

	resp, err := h.service.GetByID(c.Request.Context(), resID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// List handles GET /residences/:residenceId/incidents. Optional status or
// resident_id queries switch to filtered, unpaged lists.
func (h *IncidentHandler) List(c *gin.Context) {
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
		resp, err := h.service.ListByStatus(c.Request.Context(), resID, incident.IncidentStatus(status))
		if err != nil {
			h.HandleError(c, err)
			return
		}
		h.Success(c, resp)
		return
	}

	if residentIDStr := c.Query("resident_id"); residentIDStr != "" {
		residentID, err := uuid.Parse(residentIDStr)
		if err != nil {
			h.BadRequest(c, "Invalid resident_id filter")
			return
		}
		resp, err := h.service.ListByResident(c.Request.Context(), resID, residentID)
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

// Update handles PUT /residences/:residenceId/incidents/:id
func (h *IncidentHandler) Update(c *gin.Context) {
	resID, err := residenceID(c)
	if err != nil {
		h.BadRequest(c, "Invalid residence ID")
		return
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid incident ID")
		return
	}

	var req incidentapp.UpdateIncidentRequest
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

// Delete handles DELETE /residences/:residenceId/incidents/:id
func (h *IncidentHandler) Delete(c *gin.Context) {
	resID, err := residenceID(c)
	if err != nil {
		h.BadRequest(c, "Invalid residence ID")
		return
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid incident ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), resID, id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// AddComment handles POST /residences/:residenceId/incidents/:id/comments
func (h *IncidentHandler) AddComment(c *gin.Context) {
	resID, err := residenceID(c)
	if err != nil {
		h.BadRequest(c, "Invalid residence ID")
		return
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid incident ID")
		return
	}

	var req incidentapp.AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.AddComment(c.Request.Context(), resID, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// GetComments handles GET /residences/:residenceId/incidents/:id/comments
func (h *IncidentHandler) GetComments(c *gin.Context) {
	resID, err := residenceID(c)
	if err != nil {
		h.BadRequest(c, "Invalid residence ID")
		return
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid incident ID")
		return
	}

	resp, err := h.service.GetComments(c.Request.Context(), resID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}
