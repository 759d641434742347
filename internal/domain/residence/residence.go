package residence

import (
	"time"

	"github.com/google/uuid"
)

// Residence is the tenant root: the community/building every other entity
// is scoped to. It is not itself tenant-scoped and carries its own
// identity and audit fields instead of the shared BaseEntity.
type Residence struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name        string     `gorm:"type:varchar(200);not null"`
	Address     string     `gorm:"type:varchar(500)"`
	City        string     `gorm:"type:varchar(100)"`
	State       string     `gorm:"type:varchar(100)"`
	ZipCode     string     `gorm:"type:varchar(20)"`
	Description string     `gorm:"type:text"`
	CreatedAt   time.Time  `gorm:"not null;autoCreateTime:false"`
	UpdatedAt   *time.Time `gorm:"autoUpdateTime:false"`
	IsDeleted   bool       `gorm:"not null;default:false;index"`
}

// TableName returns the table name for GORM
func (Residence) TableName() string {
	return "residences"
}

// NewResidence creates a residence with a generated ID.
func NewResidence(name, address, city, state, zipCode, description string) *Residence {
	return &Residence{
		ID:          uuid.New(),
		Name:        name,
		Address:     address,
		City:        city,
		State:       state,
		ZipCode:     zipCode,
		Description: description,
	}
}
