package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/residence/backend/internal/domain/finance"
)

// GormPaymentRepository persists maintenance fee payments.
type GormPaymentRepository struct {
	*GormRepository[finance.Payment, *finance.Payment]
}

// NewGormPaymentRepository creates a payment repository.
func NewGormPaymentRepository(db *gorm.DB) finance.PaymentRepository {
	return &GormPaymentRepository{
		GormRepository: NewGormRepository[finance.Payment, *finance.Payment](db),
	}
}

// FindByResident returns a resident's payments, newest period first.
func (r *GormPaymentRepository) FindByResident(ctx context.Context, residenceID, residentID uuid.UUID) ([]finance.Payment, error) {
	var entities []finance.Payment
	err := r.scoped(ctx, residenceID).
		Where("resident_id = ?", residentID).
		Order("period_start DESC").
		Find(&entities).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list payments by resident: %w", err)
	}
	return entities, nil
}

// FindByHouse returns a house's payments, newest period first.
func (r *GormPaymentRepository) FindByHouse(ctx context.Context, residenceID, houseID uuid.UUID) ([]finance.Payment, error) {
	var entities []finance.Payment
	err := r.scoped(ctx, residenceID).
		Where("house_id = ?", houseID).
		Order("period_start DESC").
		Find(&entities).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list payments by house: %w", err)
	}
	return entities, nil
}

// FindByStatus returns a residence's payments in a given status.
func (r *GormPaymentRepository) FindByStatus(ctx context.Context, residenceID uuid.UUID, status finance.PaymentStatus) ([]finance.Payment, error) {
	var entities []finance.Payment
	err := r.scoped(ctx, residenceID).
		Where("status = ?", status).
		Order("period_start DESC").
		Find(&entities).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list payments by status: %w", err)
	}
	return entities, nil
}

// FindOverdue returns pending payments whose billing period already ended.
func (r *GormPaymentRepository) FindOverdue(ctx context.Context, residenceID uuid.UUID) ([]finance.Payment, error) {
	var entities []finance.Payment
	err := r.scoped(ctx, residenceID).
		Where("status = ?", finance.PaymentStatusPending).
		Where("period_end < ?", time.Now().UTC()).
		Order("period_end").
		Find(&entities).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list overdue payments: %w", err)
	}
	return entities, nil
}

// TotalPaidByResident sums the paid amounts of one resident.
func (r *GormPaymentRepository) TotalPaidByResident(ctx context.Context, residenceID, residentID uuid.UUID) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.scoped(ctx, residenceID).
		Model(&finance.Payment{}).
		Where("resident_id = ? AND status = ?", residentID, finance.PaymentStatusPaid).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum paid payments: %w", err)
	}
	return total, nil
}

// TotalPending sums the outstanding amounts of a residence.
func (r *GormPaymentRepository) TotalPending(ctx context.Context, residenceID uuid.UUID) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.scoped(ctx, residenceID).
		Model(&finance.Payment{}).
		Where("status = ?", finance.PaymentStatusPending).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum pending payments: %w", err)
	}
	return total, nil
}
