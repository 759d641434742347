package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/residence/backend/internal/domain/finance"
)

func addPayment(t *testing.T, repo finance.PaymentRepository, p *finance.Payment) {
	t.Helper()
	require.NoError(t, repo.Add(context.Background(), p))
}

func TestGormPaymentRepository_FindOverdue(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormPaymentRepository(db)
	ctx := context.Background()
	residenceID := uuid.New()
	now := time.Now().UTC()

	pastDue := finance.NewPayment(residenceID, uuid.New(), uuid.New(), decimal.NewFromInt(100),
		finance.PaymentMethodCash, now.AddDate(0, -2, 0), now.AddDate(0, -1, 0), nil)
	pastDue.Status = finance.PaymentStatusPending

	currentPending := finance.NewPayment(residenceID, uuid.New(), uuid.New(), decimal.NewFromInt(100),
		finance.PaymentMethodCash, now, now.AddDate(0, 1, 0), nil)
	currentPending.Status = finance.PaymentStatusPending

	settled := finance.NewPayment(residenceID, uuid.New(), uuid.New(), decimal.NewFromInt(100),
		finance.PaymentMethodCash, now.AddDate(0, -2, 0), now.AddDate(0, -1, 0), nil)

	addPayment(t, repo, pastDue)
	addPayment(t, repo, currentPending)
	addPayment(t, repo, settled)

	got, err := repo.FindOverdue(ctx, residenceID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, pastDue.ID, got[0].ID)
}

func TestGormPaymentRepository_FindByStatus(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormPaymentRepository(db)
	ctx := context.Background()
	residenceID := uuid.New()
	now := time.Now().UTC()

	paid := finance.NewPayment(residenceID, uuid.New(), uuid.New(), decimal.NewFromInt(100),
		finance.PaymentMethodCash, now, now.AddDate(0, 1, 0), nil)
	pending := finance.NewPayment(residenceID, uuid.New(), uuid.New(), decimal.NewFromInt(100),
		finance.PaymentMethodCash, now, now.AddDate(0, 1, 0), nil)
	pending.Status = finance.PaymentStatusPending

	addPayment(t, repo, paid)
	addPayment(t, repo, pending)

	got, err := repo.FindByStatus(ctx, residenceID, finance.PaymentStatusPending)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, pending.ID, got[0].ID)
}

func TestGormPaymentRepository_Totals(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormPaymentRepository(db)
	ctx := context.Background()
	residenceID := uuid.New()
	residentID := uuid.New()
	now := time.Now().UTC()

	paid1 := finance.NewPayment(residenceID, uuid.New(), residentID, decimal.NewFromFloat(150.50),
		finance.PaymentMethodTransfer, now, now.AddDate(0, 1, 0), nil)
	paid2 := finance.NewPayment(residenceID, uuid.New(), residentID, decimal.NewFromFloat(99.50),
		finance.PaymentMethodTransfer, now, now.AddDate(0, 1, 0), nil)
	pending := finance.NewPayment(residenceID, uuid.New(), residentID, decimal.NewFromInt(75),
		finance.PaymentMethodTransfer, now, now.AddDate(0, 1, 0), nil)
	pending.Status = finance.PaymentStatusPending

	addPayment(t, repo, paid1)
	addPayment(t, repo, paid2)
	addPayment(t, repo, pending)

	totalPaid, err := repo.TotalPaidByResident(ctx, residenceID, residentID)
	require.NoError(t, err)
	assert.True(t, totalPaid.Equal(decimal.NewFromInt(250)), "got %s", totalPaid)

	totalPending, err := repo.TotalPending(ctx, residenceID)
	require.NoError(t, err)
	assert.True(t, totalPending.Equal(decimal.NewFromInt(75)), "got %s", totalPending)
}

func TestGormPaymentRepository_TotalsEmpty(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormPaymentRepository(db)
	ctx := context.Background()

	total, err := repo.TotalPending(ctx, uuid.New())
	require.NoError(t, err)
	assert.True(t, total.IsZero())
}

func TestGormExpenseRepository_Aggregates(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormExpenseRepository(db)
	ctx := context.Background()
	residenceID := uuid.New()
	now := time.Now().UTC()

	water := finance.NewExpense(residenceID, "Water bill", finance.ExpenseTypeWater, decimal.NewFromInt(40), now, "")
	repairs := finance.NewExpense(residenceID, "Elevator fix", finance.ExpenseTypeRepairs, decimal.NewFromInt(160), now, "")
	require.NoError(t, repo.Add(ctx, water))
	require.NoError(t, repo.Add(ctx, repairs))

	total, err := repo.Total(ctx, residenceID)
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.NewFromInt(200)), "got %s", total)

	byType, err := repo.TotalByType(ctx, residenceID, finance.ExpenseTypeWater)
	require.NoError(t, err)
	assert.True(t, byType.Equal(decimal.NewFromInt(40)), "got %s", byType)

	// Deleted expenses fall out of the aggregates.
	require.NoError(t, repo.Delete(ctx, residenceID, repairs.ID))
	total, err = repo.Total(ctx, residenceID)
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.NewFromInt(40)), "got %s", total)
}

func TestGormExpenseRepository_FindWithImages(t *testing.T) {
	db := setupTestDB(t)
	expenseRepo := NewGormExpenseRepository(db)
	imageRepo := NewGormExpenseImageRepository(db)
	ctx := context.Background()
	residenceID := uuid.New()

	expense := finance.NewExpense(residenceID, "Garden tools", finance.ExpenseTypeGardening, decimal.NewFromInt(80), time.Now().UTC(), "")
	require.NoError(t, expenseRepo.Add(ctx, expense))
	require.NoError(t, imageRepo.Add(ctx, finance.NewExpenseImage(expense, "https://img.example.com/receipt-1.jpg")))
	require.NoError(t, imageRepo.Add(ctx, finance.NewExpenseImage(expense, "https://img.example.com/receipt-2.jpg")))

	found, err := expenseRepo.FindWithImages(ctx, residenceID, expense.ID)
	require.NoError(t, err)
	assert.Len(t, found.Images, 2)
}

func TestGormExpenseImageRepository_FindByExpense(t *testing.T) {
	db := setupTestDB(t)
	expenseRepo := NewGormExpenseRepository(db)
	imageRepo := NewGormExpenseImageRepository(db)
	ctx := context.Background()
	residenceID := uuid.New()

	expense := finance.NewExpense(residenceID, "Paint", finance.ExpenseTypeMaintenance, decimal.NewFromInt(60), time.Now().UTC(), "")
	other := finance.NewExpense(residenceID, "Bulbs", finance.ExpenseTypeMaintenance, decimal.NewFromInt(15), time.Now().UTC(), "")
	require.NoError(t, expenseRepo.Add(ctx, expense))
	require.NoError(t, expenseRepo.Add(ctx, other))

	image := finance.NewExpenseImage(expense, "https://img.example.com/paint.jpg")
	require.NoError(t, imageRepo.Add(ctx, image))
	require.NoError(t, imageRepo.Add(ctx, finance.NewExpenseImage(other, "https://img.example.com/bulbs.jpg")))

	got, err := imageRepo.FindByExpense(ctx, residenceID, expense.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, image.ID, got[0].ID)

	// Deleted images fall out of the listing.
	require.NoError(t, imageRepo.Delete(ctx, residenceID, image.ID))
	got, err = imageRepo.FindByExpense(ctx, residenceID, expense.ID)
	require.NoError(t, err)
	assert.Empty(t, got)
}
