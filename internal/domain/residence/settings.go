package residence

import (
	"github.com/shopspring/decimal"

	"github.com/residence/backend/internal/domain/shared"
)

// Settings holds the per-residence display and budget configuration.
// Exactly one row exists per residence; it is created together with the
// residence itself.
type Settings struct {
	shared.BaseEntity
	ResidenceName  string          `gorm:"type:varchar(200);not null"`
	ResidencePlace string          `gorm:"type:varchar(500)"`
	InitialBudget  decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
}

// TableName returns the table name for GORM
func (Settings) TableName() string {
	return "residence_settings"
}

// DefaultSettings creates the settings row that accompanies a freshly
// created residence: its name, its address as the place, zero budget.
func DefaultSettings(r *Residence) *Settings {
	return &Settings{
		BaseEntity:     shared.NewBaseEntity(r.ID),
		ResidenceName:  r.Name,
		ResidencePlace: r.Address,
		InitialBudget:  decimal.Zero,
	}
}
