package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	financeapp "github.com/residence/backend/internal/application/finance"
	"github.com/residence/backend/internal/domain/finance"
)

// ExpenseHandler exposes expense management within a residence
type ExpenseHandler struct {
	BaseHandler
	service *financeapp.ExpenseService
}

// NewExpenseHandler creates a new ExpenseHandler
func NewExpenseHandler(service *financeapp.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{service: service}
}

// Create handles POST /residences/:residenceId/expenses
func (h *ExpenseHandler) Create(c *gin.Context) {
	resID, err := residenceID(c)
	if err != nil {
		h.BadRequest(c, "Invalid residence ID")
		return
	}

	var req financeapp.CreateExpenseRequest
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

// Get handles GET /residences/:residenceId/expenses/:id
func (h *ExpenseHandler) Get(c *gin.Context) {
	resID, err := residenceID(c)
	if err != nil {
		h.BadRequest(c, "Invalid residence ID")
		return
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid expense ID")
		return
	}

	resp, err := h.service.GetByID(c.Request.Context(), resID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// List handles GET /residences/:residenceId/expenses. Optional type or
// start/end date queries switch to filtered, unpaged lists.
func (h *ExpenseHandler) List(c *gin.Context) {
	resID, err := residenceID(c)
	if err != nil {
		h.BadRequest(c, "Invalid residence ID")
		return
	}

	if typeStr := c.Query("type"); typeStr != "" {
		expenseType, err := strconv.Atoi(typeStr)
		if err != nil {
			h.BadRequest(c, "Invalid type filter")
			return
		}
		resp, err := h.service.ListByType(c.Request.Context(), resID, finance.ExpenseType(expenseType))
		if err != nil {
			h.HandleError(c, err)
			return
		}
		h.Success(c, resp)
		return
	}

	if startStr, endStr := c.Query("start"), c.Query("end"); startStr != "" && endStr != "" {
		start, err := time.Parse(time.RFC3339, startStr)
		if err != nil {
			h.BadRequest(c, "Invalid start date")
			return
		}
		end, err := time.Parse(time.RFC3339, endStr)
		if err != nil {
			h.BadRequest(c, "Invalid end date")
			return
		}
		resp, err := h.service.ListByDateRange(c.Request.Context(), resID, start, end)
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

// Summary handles GET /residences/:residenceId/expenses/summary
func (h *ExpenseHandler) Summary(c *gin.Context) {
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

// Update handles PUT /residences/:residenceId/expenses/:id
func (h *ExpenseHandler) Update(c *gin.Context) {
	resID, err := residenceID(c)
	if err != nil {
		h.BadRequest(c, "Invalid residence ID")
		return
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid expense ID")
		return
	}

	var req financeapp.UpdateExpenseRequest
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

// AddImage handles POST /residences/:residenceId/expenses/:id/images
func (h *ExpenseHandler) AddImage(c *gin.Context) {
	resID, err := residenceID(c)
	if err != nil {
		h.BadRequest(c, "Invalid residence ID")
		return
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid expense ID")
		return
	}

	var req financeapp.AddExpenseImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.service.AddImage(c.Request.Context(), resID, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// RemoveImage handles DELETE /residences/:residenceId/expenses/:id/images/:imageId
func (h *ExpenseHandler) RemoveImage(c *gin.Context) {
	resID, err := residenceID(c)
	if err != nil {
		h.BadRequest(c, "Invalid residence ID")
		return
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid expense ID")
		return
	}
	imageID, err := parseUUIDParam(c, "imageId")
	if err != nil {
		h.BadRequest(c, "Invalid image ID")
		return
	}

	if err := h.service.RemoveImage(c.Request.Context(), resID, id, imageID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// Delete handles DELETE /residences/:residenceId/expenses/:id
func (h *ExpenseHandler) Delete(c *gin.Context) {
	resID, err := residenceID(c)
	if err != nil {
		h.BadRequest(c, "Invalid residence ID")
		return
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid expense ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), resID, id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
