package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/residence/backend/internal/domain/finance"
	"github.com/residence/backend/internal/domain/shared"
)

// GormExpenseRepository persists community expenses and their images.
type GormExpenseRepository struct {
	*GormRepository[finance.Expense, *finance.Expense]
}

// NewGormExpenseRepository creates an expense repository.
func NewGormExpenseRepository(db *gorm.DB) finance.ExpenseRepository {
	return &GormExpenseRepository{
		GormRepository: NewGormRepository[finance.Expense, *finance.Expense](db),
	}
}

// FindWithImages returns an expense with its receipt images preloaded.
func (r *GormExpenseRepository) FindWithImages(ctx context.Context, residenceID, id uuid.UUID) (*finance.Expense, error) {
	var entity finance.Expense
	err := r.scoped(ctx, residenceID).
		Preload("Images", "is_deleted = ?", false).
		Where("id = ?", id).
		First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find expense: %w", err)
	}
	return &entity, nil
}

// FindByResidenceWithImages returns a residence's expenses with images
// preloaded, most recent first.
func (r *GormExpenseRepository) FindByResidenceWithImages(ctx context.Context, residenceID uuid.UUID) ([]finance.Expense, error) {
	var entities []finance.Expense
	err := r.scoped(ctx, residenceID).
		Preload("Images", "is_deleted = ?", false).
		Order("expense_date DESC").
		Find(&entities).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	return entities, nil
}

// FindByType returns a residence's expenses of a given category.
func (r *GormExpenseRepository) FindByType(ctx context.Context, residenceID uuid.UUID, expenseType finance.ExpenseType) ([]finance.Expense, error) {
	var entities []finance.Expense
	err := r.scoped(ctx, residenceID).
		Where("type = ?", expenseType).
		Order("expense_date DESC").
		Find(&entities).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses by type: %w", err)
	}
	return entities, nil
}

// FindByDateRange returns the expenses dated inside [start, end].
func (r *GormExpenseRepository) FindByDateRange(ctx context.Context, residenceID uuid.UUID, start, end time.Time) ([]finance.Expense, error) {
	var entities []finance.Expense
	err := r.scoped(ctx, residenceID).
		Where("expense_date >= ? AND expense_date <= ?", start, end).
		Order("expense_date DESC").
		Find(&entities).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses by date range: %w", err)
	}
	return entities, nil
}

// Total sums all live expenses of a residence.
func (r *GormExpenseRepository) Total(ctx context.Context, residenceID uuid.UUID) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.scoped(ctx, residenceID).
		Model(&finance.Expense{}).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum expenses: %w", err)
	}
	return total, nil
}

// TotalByType sums a residence's expenses of one category.
func (r *GormExpenseRepository) TotalByType(ctx context.Context, residenceID uuid.UUID, expenseType finance.ExpenseType) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.scoped(ctx, residenceID).
		Model(&finance.Expense{}).
		Where("type = ?", expenseType).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum expenses by type: %w", err)
	}
	return total, nil
}

// GormExpenseImageRepository persists expense attachments.
type GormExpenseImageRepository struct {
	*GormRepository[finance.ExpenseImage, *finance.ExpenseImage]
}

// NewGormExpenseImageRepository creates an expense image repository.
func NewGormExpenseImageRepository(db *gorm.DB) finance.ExpenseImageRepository {
	return &GormExpenseImageRepository{
		GormRepository: NewGormRepository[finance.ExpenseImage, *finance.ExpenseImage](db),
	}
}

// FindByExpense returns the images attached to one expense.
func (r *GormExpenseImageRepository) FindByExpense(ctx context.Context, residenceID, expenseID uuid.UUID) ([]finance.ExpenseImage, error) {
	var entities []finance.ExpenseImage
	err := r.scoped(ctx, residenceID).
		Where("expense_id = ?", expenseID).
		Order("created_at").
		Find(&entities).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list expense images: %w", err)
	}
	return entities, nil
}
