package finance

import (
	"context"

	"github.com/google/uuid"

	"github.com/residence/backend/internal/domain/finance"
	"github.com/residence/backend/internal/domain/housing"
	"github.com/residence/backend/internal/domain/shared"
)

// PaymentService handles payment-related business operations
type PaymentService struct {
	paymentRepo  finance.PaymentRepository
	houseRepo    housing.HouseRepository
	residentRepo housing.ResidentRepository
}

// NewPaymentService creates a new PaymentService
func NewPaymentService(paymentRepo finance.PaymentRepository, houseRepo housing.HouseRepository, residentRepo housing.ResidentRepository) *PaymentService {
	return &PaymentService{
		paymentRepo:  paymentRepo,
		houseRepo:    houseRepo,
		residentRepo: residentRepo,
	}
}

// Create records a payment. A recorded payment is settled (Paid) from the
// start; pending and overdue states are only reached through updates.
func (s *PaymentService) Create(ctx context.Context, residenceID uuid.UUID, req CreatePaymentRequest) (*PaymentResponse, error) {
	if !req.Method.IsValid() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Invalid payment method")
	}
	if !req.Amount.IsPositive() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Amount must be positive")
	}
	if req.PeriodEnd.Before(req.PeriodStart) {
		return nil, shared.NewDomainError("INVALID_INPUT", "Period end must not precede period start")
	}

	exists, err := s.houseRepo.Exists(ctx, residenceID, req.HouseID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, shared.NewDomainError("NOT_FOUND", "House not found")
	}

	exists, err = s.residentRepo.Exists(ctx, residenceID, req.ResidentID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, shared.NewDomainError("NOT_FOUND", "Resident not found")
	}

	payment := finance.NewPayment(residenceID, req.HouseID, req.ResidentID,
		req.Amount, req.Method, req.PeriodStart, req.PeriodEnd, req.Notes)
	payment.PaymentDate = req.PaymentDate

	if err := s.paymentRepo.Add(ctx, payment); err != nil {
		return nil, err
	}

	response := ToPaymentResponse(payment)
	return &response, nil
}

// GetByID retrieves a payment by ID
func (s *PaymentService) GetByID(ctx context.Context, residenceID, id uuid.UUID) (*PaymentResponse, error) {
	payment, err := s.paymentRepo.FindByID(ctx, residenceID, id)
	if err != nil {
		return nil, err
	}

	response := ToPaymentResponse(payment)
	return &response, nil
}

// List returns one page of a residence's payments
func (s *PaymentService) List(ctx context.Context, residenceID uuid.UUID, p shared.Pagination) (shared.PagedResult[PaymentResponse], error) {
	payments, err := s.paymentRepo.FindByResidence(ctx, residenceID)
	if err != nil {
		return shared.PagedResult[PaymentResponse]{}, err
	}

	page := shared.Paginate(payments, p)
	return shared.MapPage(page, func(pm finance.Payment) PaymentResponse {
		return ToPaymentResponse(&pm)
	}), nil
}

// ListByResident returns a resident's payments
func (s *PaymentService) ListByResident(ctx context.Context, residenceID, residentID uuid.UUID) ([]PaymentResponse, error) {
	payments, err := s.paymentRepo.FindByResident(ctx, residenceID, residentID)
	if err != nil {
		return nil, err
	}
	return toPaymentResponses(payments), nil
}

// ListByHouse returns a house's payments
func (s *PaymentService) ListByHouse(ctx context.Context, residenceID, houseID uuid.UUID) ([]PaymentResponse, error) {
	payments, err := s.paymentRepo.FindByHouse(ctx, residenceID, houseID)
	if err != nil {
		return nil, err
	}
	return toPaymentResponses(payments), nil
}

// ListByStatus returns a residence's payments in one settlement state
func (s *PaymentService) ListByStatus(ctx context.Context, residenceID uuid.UUID, status finance.PaymentStatus) ([]PaymentResponse, error) {
	if !status.IsValid() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Invalid payment status")
	}

	payments, err := s.paymentRepo.FindByStatus(ctx, residenceID, status)
	if err != nil {
		return nil, err
	}
	return toPaymentResponses(payments), nil
}

// ListOverdue returns pending payments whose period already ended
func (s *PaymentService) ListOverdue(ctx context.Context, residenceID uuid.UUID) ([]PaymentResponse, error) {
	payments, err := s.paymentRepo.FindOverdue(ctx, residenceID)
	if err != nil {
		return nil, err
	}
	return toPaymentResponses(payments), nil
}

// Summary aggregates a residence's outstanding position
func (s *PaymentService) Summary(ctx context.Context, residenceID uuid.UUID) (*PaymentSummaryResponse, error) {
	totalPending, err := s.paymentRepo.TotalPending(ctx, residenceID)
	if err != nil {
		return nil, err
	}

	overdue, err := s.paymentRepo.FindOverdue(ctx, residenceID)
	if err != nil {
		return nil, err
	}

	return &PaymentSummaryResponse{
		TotalPending: totalPending,
		OverdueCount: len(overdue),
	}, nil
}

// Update modifies an existing payment
func (s *PaymentService) Update(ctx context.Context, residenceID, id uuid.UUID, req UpdatePaymentRequest) (*PaymentResponse, error) {
	if !req.Method.IsValid() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Invalid payment method")
	}
	if !req.Status.IsValid() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Invalid payment status")
	}
	if !req.Amount.IsPositive() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Amount must be positive")
	}

	payment, err := s.paymentRepo.FindByID(ctx, residenceID, id)
	if err != nil {
		return nil, err
	}

	payment.Amount = req.Amount
	payment.Method = req.Method
	payment.PeriodStart = req.PeriodStart
	payment.PeriodEnd = req.PeriodEnd
	payment.PaymentDate = req.PaymentDate
	payment.Status = req.Status
	payment.Notes = req.Notes

	if err := s.paymentRepo.Update(ctx, payment); err != nil {
		return nil, err
	}

	response := ToPaymentResponse(payment)
	return &response, nil
}

// Delete soft-deletes a payment
func (s *PaymentService) Delete(ctx context.Context, residenceID, id uuid.UUID) error {
	if _, err := s.paymentRepo.FindByID(ctx, residenceID, id); err != nil {
		return err
	}
	return s.paymentRepo.Delete(ctx, residenceID, id)
}

func toPaymentResponses(payments []finance.Payment) []PaymentResponse {
	responses := make([]PaymentResponse, len(payments))
	for i := range payments {
		responses[i] = ToPaymentResponse(&payments[i])
	}
	return responses
}
