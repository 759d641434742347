package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	financeapp "github.com/residence/backend/internal/application/finance"
	"github.com/residence/backend/internal/domain/finance"
)

// PaymentHandler exposes payment management within a residence
type PaymentHandler struct {
	BaseHandler
	service *financeapp.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler
func NewPaymentHandler(service *financeapp.PaymentService) *PaymentHandler {
	return &PaymentHandler{service: service}
}

// Create handles POST /residences/:residenceId/payments
func (h *PaymentHandler) Create(c *gin.Context) {
	resID, err := residenceID(c)
	if err != nil {
		h.BadRequest(c, "Invalid residence ID")
		return
	}

	var req financeapp.CreatePaymentRequest
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

// Get handles GET /residences/:residenceId/payments/:id
func (h *PaymentHandler) Get(c *gin.Context) {
	resID, err := residenceID(c)
	if err != nil {
		h.BadRequest(c, "Invalid residence ID")
		return
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid payment ID")
		return
	}

	resp, err := h.service.GetByID(c.Request.Context(), resID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// List handles GET /residences/:residenceId/payments. Optional resident_id,
// house_id and status queries switch to filtered, unpaged lists.
func (h *PaymentHandler) List(c *gin.Context) {
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
		resp, err := h.service.ListByStatus(c.Request.Context(), resID, finance.PaymentStatus(status))
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

// ListOverdue handles GET /residences/:residenceId/payments/overdue
func (h *PaymentHandler) ListOverdue(c *gin.Context) {
	resID, err := residenceID(c)
	if err != nil {
		h.BadRequest(c, "Invalid residence ID")
		return
	}

	resp, err := h.service.ListOverdue(c.Request.Context(), resID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Summary handles GET /residences/:residenceId/payments/summary
func (h *PaymentHandler) Summary(c *gin.Context) {
	resID, err := residenceID(c)
	if err != nil {
		h.BadRequest(c, "Invalid residence ID")
		return
	}

	resp, err := h.service.Summary(c.Request.Context(), resID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Update handles PUT /residences/:residenceId/payments/:id
func (h *PaymentHandler) Update(c *gin.Context) {
	resID, err := residenceID(c)
	if err != nil {
		h.BadRequest(c, "Invalid residence ID")
		return
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid payment ID")
		return
	}

	var req financeapp.UpdatePaymentRequest
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

// Delete handles DELETE /residences/:residenceId/payments/:id
func (h *PaymentHandler) Delete(c *gin.Context) {
	resID, err := residenceID(c)
	if err != nil {
		h.BadRequest(c, "Invalid residence ID")
		return
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid payment ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), resID, id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
