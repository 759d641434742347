package finance

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/residence/backend/internal/domain/shared"
)

// ExpenseType is the closed category catalogue for residence expenses.
// Ordinals are part of the storage format and must not be reordered.
type ExpenseType int

const (
	ExpenseTypeMaintenance ExpenseType = iota
	ExpenseTypeElectricity
	ExpenseTypeWater
	ExpenseTypeCleaning
	ExpenseTypeSecurity
	ExpenseTypeGardening
	ExpenseTypeRepairs
	ExpenseTypeEquipment
	ExpenseTypeInsurance
	ExpenseTypeTaxes
	ExpenseTypeOther
)

// IsValid reports whether the type is one of the known values.
func (t ExpenseType) IsValid() bool {
	return t >= ExpenseTypeMaintenance && t <= ExpenseTypeOther
}

// Expense is a cost borne by the residence itself (not a house), with
// optional receipt images attached.
type Expense struct {
	shared.BaseEntity
	Title       string          `gorm:"type:varchar(200);not null"`
	Type        ExpenseType     `gorm:"type:smallint;not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	ExpenseDate time.Time       `gorm:"not null"`
	Description string          `gorm:"type:text"`

	Images []ExpenseImage `gorm:"foreignKey:ExpenseID"`
}

// TableName returns the table name for GORM
func (Expense) TableName() string {
	return "expenses"
}

// NewExpense creates an expense record.
func NewExpense(residenceID uuid.UUID, title string, expenseType ExpenseType, amount decimal.Decimal, expenseDate time.Time, description string) *Expense {
	return &Expense{
		BaseEntity:  shared.NewBaseEntity(residenceID),
		Title:       title,
		Type:        expenseType,
		Amount:      amount,
		ExpenseDate: expenseDate,
		Description: description,
	}
}

// ExpenseImage is a receipt or supporting image attached to an expense.
type ExpenseImage struct {
	shared.BaseEntity
	ExpenseID uuid.UUID `gorm:"type:uuid;not null;index"`
	ImageUrl  string    `gorm:"type:varchar(500);not null"`
}

// TableName returns the table name for GORM
func (ExpenseImage) TableName() string {
	return "expense_images"
}

// NewExpenseImage attaches an image to an expense, inheriting its tenant.
func NewExpenseImage(e *Expense, imageURL string) *ExpenseImage {
	return &ExpenseImage{
		BaseEntity: shared.NewBaseEntity(e.ResidenceID),
		ExpenseID:  e.ID,
		ImageUrl:   imageURL,
	}
}
