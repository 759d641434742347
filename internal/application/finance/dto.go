package finance

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/residence/backend/internal/domain/finance"
)

// CreatePaymentRequest is the payload for recording a payment. Recorded
// payments are settled immediately; there is no status field.
type CreatePaymentRequest struct {
	HouseID     uuid.UUID             `json:"house_id" binding:"required"`
	ResidentID  uuid.UUID             `json:"resident_id" binding:"required"`
	Amount      decimal.Decimal       `json:"amount" binding:"required"`
	Method      finance.PaymentMethod `json:"method"`
	PeriodStart time.Time             `json:"period_start" binding:"required"`
	PeriodEnd   time.Time             `json:"period_end" binding:"required"`
	PaymentDate *time.Time            `json:"payment_date"`
	Notes       *string               `json:"notes"`
}

// UpdatePaymentRequest is the payload for updating a payment
type UpdatePaymentRequest struct {
	Amount      decimal.Decimal       `json:"amount" binding:"required"`
	Method      finance.PaymentMethod `json:"method"`
	PeriodStart time.Time             `json:"period_start" binding:"required"`
	PeriodEnd   time.Time             `json:"period_end" binding:"required"`
	PaymentDate *time.Time            `json:"payment_date"`
	Status      finance.PaymentStatus `json:"status"`
	Notes       *string               `json:"notes"`
}

// PaymentResponse is the API representation of a payment
type PaymentResponse struct {
	ID          uuid.UUID             `json:"id"`
	ResidenceID uuid.UUID             `json:"residence_id"`
	HouseID     uuid.UUID             `json:"house_id"`
	ResidentID  uuid.UUID             `json:"resident_id"`
	Amount      decimal.Decimal       `json:"amount"`
	Method      finance.PaymentMethod `json:"method"`
	PeriodStart time.Time             `json:"period_start"`
	PeriodEnd   time.Time             `json:"period_end"`
	PaymentDate *time.Time            `json:"payment_date,omitempty"`
	Status      finance.PaymentStatus `json:"status"`
	Notes       *string               `json:"notes,omitempty"`
	CreatedAt   time.Time             `json:"created_at"`
	UpdatedAt   *time.Time            `json:"updated_at,omitempty"`
}

// ToPaymentResponse maps a payment entity to its response
func ToPaymentResponse(p *finance.Payment) PaymentResponse {
	return PaymentResponse{
		ID:          p.ID,
		ResidenceID: p.ResidenceID,
		HouseID:     p.HouseID,
		ResidentID:  p.ResidentID,
		Amount:      p.Amount,
		Method:      p.Method,
		PeriodStart: p.PeriodStart,
		PeriodEnd:   p.PeriodEnd,
		PaymentDate: p.PaymentDate,
		Status:      p.Status,
		Notes:       p.Notes,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// PaymentSummaryResponse aggregates a residence's payment position
type PaymentSummaryResponse struct {
	TotalPending decimal.Decimal `json:"total_pending"`
	OverdueCount int             `json:"overdue_count"`
}

// CreateExpenseRequest is the payload for recording an expense
type CreateExpenseRequest struct {
	Title       string              `json:"title" binding:"required,max=200"`
	Type        finance.ExpenseType `json:"type"`
	Amount      decimal.Decimal     `json:"amount" binding:"required"`
	ExpenseDate time.Time           `json:"expense_date" binding:"required"`
	Description string              `json:"description"`
	ImageUrls   []string            `json:"image_urls" binding:"omitempty,dive,max=500"`
}

// UpdateExpenseRequest is the payload for updating an expense. ImageUrls
// replaces the attached image set.
type UpdateExpenseRequest struct {
	Title       string              `json:"title" binding:"required,max=200"`
	Type        finance.ExpenseType `json:"type"`
	Amount      decimal.Decimal     `json:"amount" binding:"required"`
	ExpenseDate time.Time           `json:"expense_date" binding:"required"`
	Description string              `json:"description"`
	ImageUrls   []string            `json:"image_urls" binding:"omitempty,dive,max=500"`
}

// AddExpenseImageRequest is the payload for attaching one image to an
// already-recorded expense
type AddExpenseImageRequest struct {
	ImageUrl string `json:"image_url" binding:"required,max=500"`
}

// ExpenseImageResponse is the API representation of an expense image
type ExpenseImageResponse struct {
	ID       uuid.UUID `json:"id"`
	ImageUrl string    `json:"image_url"`
}

// ExpenseResponse is the API representation of an expense
type ExpenseResponse struct {
	ID          uuid.UUID              `json:"id"`
	ResidenceID uuid.UUID              `json:"residence_id"`
	Title       string                 `json:"title"`
	Type        finance.ExpenseType    `json:"type"`
	Amount      decimal.Decimal        `json:"amount"`
	ExpenseDate time.Time              `json:"expense_date"`
	Description string                 `json:"description"`
	Images      []ExpenseImageResponse `json:"images"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   *time.Time             `json:"updated_at,omitempty"`
}

// ToExpenseResponse maps an expense entity to its response
func ToExpenseResponse(e *finance.Expense) ExpenseResponse {
	images := make([]ExpenseImageResponse, len(e.Images))
	for i, img := range e.Images {
		images[i] = ExpenseImageResponse{ID: img.ID, ImageUrl: img.ImageUrl}
	}
	return ExpenseResponse{
		ID:          e.ID,
		ResidenceID: e.ResidenceID,
		Title:       e.Title,
		Type:        e.Type,
		Amount:      e.Amount,
		ExpenseDate: e.ExpenseDate,
		Description: e.Description,
		Images:      images,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

// ExpenseSummaryResponse aggregates a residence's spending
type ExpenseSummaryResponse struct {
	Total  decimal.Decimal                          `json:"total"`
	ByType map[finance.ExpenseType]decimal.Decimal `json:"by_type"`
}
