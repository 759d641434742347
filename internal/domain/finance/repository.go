package finance

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/residence/backend/internal/domain/shared"
)

// PaymentRepository adds the targeted payment reads of the finance module.
type PaymentRepository interface {
	shared.TenantRepository[Payment]
	FindByResident(ctx context.Context, residenceID, residentID uuid.UUID) ([]Payment, error)
	FindByHouse(ctx context.Context, residenceID, houseID uuid.UUID) ([]Payment, error)
	FindByStatus(ctx context.Context, residenceID uuid.UUID, status PaymentStatus) ([]Payment, error)
	// FindOverdue returns unpaid payments whose period already ended.
	FindOverdue(ctx context.Context, residenceID uuid.UUID) ([]Payment, error)
	TotalPaidByResident(ctx context.Context, residenceID, residentID uuid.UUID) (decimal.Decimal, error)
	TotalPending(ctx context.Context, residenceID uuid.UUID) (decimal.Decimal, error)
}

// ExpenseRepository adds eager-loading and aggregate reads for expenses.
type ExpenseRepository interface {
	shared.TenantRepository[Expense]
	FindWithImages(ctx context.Context, residenceID, id uuid.UUID) (*Expense, error)
	FindByResidenceWithImages(ctx context.Context, residenceID uuid.UUID) ([]Expense, error)
	FindByType(ctx context.Context, residenceID uuid.UUID, expenseType ExpenseType) ([]Expense, error)
	FindByDateRange(ctx context.Context, residenceID uuid.UUID, start, end time.Time) ([]Expense, error)
	Total(ctx context.Context, residenceID uuid.UUID) (decimal.Decimal, error)
	TotalByType(ctx context.Context, residenceID uuid.UUID, expenseType ExpenseType) (decimal.Decimal, error)
}

// ExpenseImageRepository persists expense attachments.
type ExpenseImageRepository interface {
	shared.TenantRepository[ExpenseImage]
	FindByExpense(ctx context.Context, residenceID, expenseID uuid.UUID) ([]ExpenseImage, error)
}
