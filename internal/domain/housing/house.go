package housing

import (
	"github.com/google/uuid"

	"github.com/residence/backend/internal/domain/shared"
)

// HouseStatus is the occupancy status of a house. Values are ordinal and
// persisted as small integers; the ordering is part of the storage format.
type HouseStatus int

const (
	HouseStatusOccupied HouseStatus = iota
	HouseStatusVacant
)

// IsValid reports whether the status is one of the known values.
func (s HouseStatus) IsValid() bool {
	return s >= HouseStatusOccupied && s <= HouseStatusVacant
}

// House is a unit inside a residence, identified by block, unit and floor.
// Status and CurrentResidentID are independent fields set directly from the
// update payload; occupancy is not derived from resident assignment.
type House struct {
	shared.BaseEntity
	Block             string      `gorm:"type:varchar(50);not null"`
	Unit              string      `gorm:"type:varchar(50);not null"`
	Floor             *string     `gorm:"type:varchar(20)"`
	Status            HouseStatus `gorm:"type:smallint;not null"`
	CurrentResidentID *uuid.UUID  `gorm:"type:uuid"`

	CurrentResident *Resident  `gorm:"foreignKey:CurrentResidentID"`
	Residents       []Resident `gorm:"foreignKey:HouseID"`
}

// TableName returns the table name for GORM
func (House) TableName() string {
	return "houses"
}

// NewHouse creates a house. A new house is always vacant until an explicit
// update says otherwise; the create payload carries no status.
func NewHouse(residenceID uuid.UUID, block, unit string, floor *string, currentResidentID *uuid.UUID) *House {
	return &House{
		BaseEntity:        shared.NewBaseEntity(residenceID),
		Block:             block,
		Unit:              unit,
		Floor:             floor,
		Status:            HouseStatusVacant,
		CurrentResidentID: currentResidentID,
	}
}
