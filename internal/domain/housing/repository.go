package housing

import (
	"context"

	"github.com/google/uuid"

	"github.com/residence/backend/internal/domain/shared"
)

// HouseRepository adds the targeted house reads on top of the generic
// tenant-scoped contract. All reads follow the same non-deleted convention.
type HouseRepository interface {
	shared.TenantRepository[House]
	FindWithResidents(ctx context.Context, residenceID, id uuid.UUID) (*House, error)
	FindByResidenceWithDetails(ctx context.Context, residenceID uuid.UUID) ([]House, error)
	FindByStatus(ctx context.Context, residenceID uuid.UUID, status HouseStatus) ([]House, error)
}

// ResidentRepository persists residence members.
type ResidentRepository interface {
	shared.TenantRepository[Resident]
	FindByHouse(ctx context.Context, residenceID, houseID uuid.UUID) ([]Resident, error)
	FindByStatus(ctx context.Context, residenceID uuid.UUID, status ResidentStatus) ([]Resident, error)
}
