package residence

import (
	"context"

	"github.com/google/uuid"
)

// Repository persists the tenant root. Unlike the residence-scoped
// repositories it has no tenant parameter: the residence IS the tenant.
type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Residence, error)
	FindAll(ctx context.Context) ([]Residence, error)
	// Create persists the residence and its default settings atomically.
	Create(ctx context.Context, r *Residence, s *Settings) error
	Update(ctx context.Context, r *Residence) error
	Delete(ctx context.Context, id uuid.UUID) error
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

// SettingsRepository persists the 1:1 residence settings record.
type SettingsRepository interface {
	FindByResidence(ctx context.Context, residenceID uuid.UUID) (*Settings, error)
	Update(ctx context.Context, s *Settings) error
}
