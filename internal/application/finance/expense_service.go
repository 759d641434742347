package finance

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/residence/backend/internal/domain/finance"
	"github.com/residence/backend/internal/domain/shared"
)

// ExpenseService handles expense-related business operations
type ExpenseService struct {
	expenseRepo finance.ExpenseRepository
	imageRepo   finance.ExpenseImageRepository
}

// NewExpenseService creates a new ExpenseService
func NewExpenseService(expenseRepo finance.ExpenseRepository, imageRepo finance.ExpenseImageRepository) *ExpenseService {
	return &ExpenseService{
		expenseRepo: expenseRepo,
		imageRepo:   imageRepo,
	}
}

// Create records an expense with its receipt images
func (s *ExpenseService) Create(ctx context.Context, residenceID uuid.UUID, req CreateExpenseRequest) (*ExpenseResponse, error) {
	if !req.Type.IsValid() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Invalid expense type")
	}
	if !req.Amount.IsPositive() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Amount must be positive")
	}

	expense := finance.NewExpense(residenceID, req.Title, req.Type, req.Amount, req.ExpenseDate, req.Description)
	if err := s.expenseRepo.Add(ctx, expense); err != nil {
		return nil, err
	}

	for _, url := range req.ImageUrls {
		image := finance.NewExpenseImage(expense, url)
		if err := s.imageRepo.Add(ctx, image); err != nil {
			return nil, err
		}
		expense.Images = append(expense.Images, *image)
	}

	response := ToExpenseResponse(expense)
	return &response, nil
}

// GetByID retrieves an expense with its images
func (s *ExpenseService) GetByID(ctx context.Context, residenceID, id uuid.UUID) (*ExpenseResponse, error) {
	expense, err := s.expenseRepo.FindWithImages(ctx, residenceID, id)
	if err != nil {
		return nil, err
	}

	response := ToExpenseResponse(expense)
	return &response, nil
}

// List returns one page of a residence's expenses with images
func (s *ExpenseService) List(ctx context.Context, residenceID uuid.UUID, p shared.Pagination) (shared.PagedResult[ExpenseResponse], error) {
	expenses, err := s.expenseRepo.FindByResidenceWithImages(ctx, residenceID)
	if err != nil {
		return shared.PagedResult[ExpenseResponse]{}, err
	}

	page := shared.Paginate(expenses, p)
	return shared.MapPage(page, func(e finance.Expense) ExpenseResponse {
		return ToExpenseResponse(&e)
	}), nil
}

// ListByType returns a residence's expenses of one category
func (s *ExpenseService) ListByType(ctx context.Context, residenceID uuid.UUID, expenseType finance.ExpenseType) ([]ExpenseResponse, error) {
	if !expenseType.IsValid() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Invalid expense type")
	}

	expenses, err := s.expenseRepo.FindByType(ctx, residenceID, expenseType)
	if err != nil {
		return nil, err
	}
	return toExpenseResponses(expenses), nil
}

// ListByDateRange returns the expenses dated inside [start, end]
func (s *ExpenseService) ListByDateRange(ctx context.Context, residenceID uuid.UUID, start, end time.Time) ([]ExpenseResponse, error) {
	if end.Before(start) {
		return nil, shared.NewDomainError("INVALID_INPUT", "End date must not precede start date")
	}

	expenses, err := s.expenseRepo.FindByDateRange(ctx, residenceID, start, end)
	if err != nil {
		return nil, err
	}
	return toExpenseResponses(expenses), nil
}

// Summary aggregates a residence's spending, total and per category
func (s *ExpenseService) Summary(ctx context.Context, residenceID uuid.UUID) (*ExpenseSummaryResponse, error) {
	total, err := s.expenseRepo.Total(ctx, residenceID)
	if err != nil {
		return nil, err
	}

	summary := &ExpenseSummaryResponse{
		Total:  total,
		ByType: map[finance.ExpenseType]decimal.Decimal{},
	}
	for t := finance.ExpenseTypeMaintenance; t <= finance.ExpenseTypeOther; t++ {
		sum, err := s.expenseRepo.TotalByType(ctx, residenceID, t)
		if err != nil {
			return nil, err
		}
		if !sum.IsZero() {
			summary.ByType[t] = sum
		}
	}
	return summary, nil
}

// Update modifies an expense. The image set is replaced: images no longer
// referenced are soft-deleted, new URLs are attached.
func (s *ExpenseService) Update(ctx context.Context, residenceID, id uuid.UUID, req UpdateExpenseRequest) (*ExpenseResponse, error) {
	if !req.Type.IsValid() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Invalid expense type")
	}
	if !req.Amount.IsPositive() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Amount must be positive")
	}

	expense, err := s.expenseRepo.FindWithImages(ctx, residenceID, id)
	if err != nil {
		return nil, err
	}

	expense.Title = req.Title
	expense.Type = req.Type
	expense.Amount = req.Amount
	expense.ExpenseDate = req.ExpenseDate
	expense.Description = req.Description

	if err := s.expenseRepo.Update(ctx, expense); err != nil {
		return nil, err
	}

	if err := s.replaceImages(ctx, residenceID, expense, req.ImageUrls); err != nil {
		return nil, err
	}

	response := ToExpenseResponse(expense)
	return &response, nil
}

// AddImage attaches a receipt image to an existing expense
func (s *ExpenseService) AddImage(ctx context.Context, residenceID, expenseID uuid.UUID, req AddExpenseImageRequest) (*ExpenseImageResponse, error) {
	expense, err := s.expenseRepo.FindByID(ctx, residenceID, expenseID)
	if err != nil {
		return nil, err
	}

	image := finance.NewExpenseImage(expense, req.ImageUrl)
	if err := s.imageRepo.Add(ctx, image); err != nil {
		return nil, err
	}

	return &ExpenseImageResponse{ID: image.ID, ImageUrl: image.ImageUrl}, nil
}

// RemoveImage detaches one image from an expense. An image belonging to a
// different expense is treated as missing.
func (s *ExpenseService) RemoveImage(ctx context.Context, residenceID, expenseID, imageID uuid.UUID) error {
	image, err := s.imageRepo.FindByID(ctx, residenceID, imageID)
	if err != nil {
		return err
	}
	if image.ExpenseID != expenseID {
		return shared.ErrNotFound
	}
	return s.imageRepo.Delete(ctx, residenceID, imageID)
}

// Delete soft-deletes an expense and its images
func (s *ExpenseService) Delete(ctx context.Context, residenceID, id uuid.UUID) error {
	if _, err := s.expenseRepo.FindByID(ctx, residenceID, id); err != nil {
		return err
	}

	images, err := s.imageRepo.FindByExpense(ctx, residenceID, id)
	if err != nil {
		return err
	}
	for _, img := range images {
		if err := s.imageRepo.Delete(ctx, residenceID, img.ID); err != nil {
			return err
		}
	}
	return s.expenseRepo.Delete(ctx, residenceID, id)
}

func (s *ExpenseService) replaceImages(ctx context.Context, residenceID uuid.UUID, expense *finance.Expense, urls []string) error {
	wanted := make(map[string]bool, len(urls))
	for _, url := range urls {
		wanted[url] = true
	}

	kept := expense.Images[:0]
	existing := make(map[string]bool)
	for _, img := range expense.Images {
		if wanted[img.ImageUrl] {
			existing[img.ImageUrl] = true
			kept = append(kept, img)
			continue
		}
		if err := s.imageRepo.Delete(ctx, residenceID, img.ID); err != nil {
			return err
		}
	}
	expense.Images = kept

	for _, url := range urls {
		if existing[url] {
			continue
		}
		image := finance.NewExpenseImage(expense, url)
		if err := s.imageRepo.Add(ctx, image); err != nil {
			return err
		}
		expense.Images = append(expense.Images, *image)
	}
	return nil
}

func toExpenseResponses(expenses []finance.Expense) []ExpenseResponse {
	responses := make([]ExpenseResponse, len(expenses))
	for i := range expenses {
		responses[i] = ToExpenseResponse(&expenses[i])
	}
	return responses
}
