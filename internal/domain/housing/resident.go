package housing

import (
	"time"

	"github.com/google/uuid"

	"github.com/residence/backend/internal/domain/shared"
)

// ResidentStatus tracks whether a resident still lives in the residence.
type ResidentStatus int

const (
	ResidentStatusActive ResidentStatus = iota
	ResidentStatusMovedOut
)

// IsValid reports whether the status is one of the known values.
func (s ResidentStatus) IsValid() bool {
	return s >= ResidentStatusActive && s <= ResidentStatusMovedOut
}

// Resident is a member of the residence, optionally linked to a login user
// and to the house they occupy.
type Resident struct {
	shared.BaseEntity
	UserID      *uuid.UUID     `gorm:"type:uuid;index"`
	HouseID     *uuid.UUID     `gorm:"type:uuid;index"`
	FirstName   string         `gorm:"type:varchar(100);not null"`
	LastName    string         `gorm:"type:varchar(100);not null"`
	Email       string         `gorm:"type:varchar(200)"`
	PhoneNumber string         `gorm:"type:varchar(50)"`
	Address     string         `gorm:"type:varchar(500)"`
	BirthDate   *time.Time     `gorm:"type:date"`
	Status      ResidentStatus `gorm:"type:smallint;not null"`
	MoveInDate  time.Time      `gorm:"not null"`
	MoveOutDate *time.Time
}

// TableName returns the table name for GORM
func (Resident) TableName() string {
	return "residents"
}

// NewResident creates an active resident whose move-in date defaults to the
// creation time.
func NewResident(residenceID uuid.UUID, userID, houseID *uuid.UUID, firstName, lastName, email, phoneNumber, address string, birthDate *time.Time) *Resident {
	return &Resident{
		BaseEntity:  shared.NewBaseEntity(residenceID),
		UserID:      userID,
		HouseID:     houseID,
		FirstName:   firstName,
		LastName:    lastName,
		Email:       email,
		PhoneNumber: phoneNumber,
		Address:     address,
		BirthDate:   birthDate,
		Status:      ResidentStatusActive,
		MoveInDate:  time.Now().UTC(),
	}
}
