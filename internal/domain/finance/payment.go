package finance

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/residence/backend/internal/domain/shared"
)

// PaymentStatus is the settlement state of a payment.
type PaymentStatus int

const (
	PaymentStatusPending PaymentStatus = iota
	PaymentStatusPaid
	PaymentStatusOverdue
)

// IsValid reports whether the status is one of the known values.
func (s PaymentStatus) IsValid() bool {
	return s >= PaymentStatusPending && s <= PaymentStatusOverdue
}

// PaymentMethod is how a payment was made.
type PaymentMethod int

const (
	PaymentMethodCash PaymentMethod = iota
	PaymentMethodTransfer
	PaymentMethodCard
)

// IsValid reports whether the method is one of the known values.
func (m PaymentMethod) IsValid() bool {
	return m >= PaymentMethodCash && m <= PaymentMethodCard
}

// Payment is a rent/fee payment for a house by a resident, covering the
// period [PeriodStart, PeriodEnd].
type Payment struct {
	shared.BaseEntity
	HouseID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	ResidentID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount      decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Method      PaymentMethod   `gorm:"type:smallint;not null"`
	PeriodStart time.Time       `gorm:"not null"`
	PeriodEnd   time.Time       `gorm:"not null"`
	PaymentDate *time.Time
	Status      PaymentStatus `gorm:"type:smallint;not null"`
	Notes       *string       `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Payment) TableName() string {
	return "payments"
}

// NewPayment records a payment. Registered payments are marked Paid right
// away; the pending/overdue states are reached through updates.
func NewPayment(residenceID, houseID, residentID uuid.UUID, amount decimal.Decimal, method PaymentMethod, periodStart, periodEnd time.Time, notes *string) *Payment {
	return &Payment{
		BaseEntity:  shared.NewBaseEntity(residenceID),
		HouseID:     houseID,
		ResidentID:  residentID,
		Amount:      amount,
		Method:      method,
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
		Status:      PaymentStatusPaid,
		Notes:       notes,
	}
}
