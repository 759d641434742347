package shared

import (
	"context"

	"github.com/google/uuid"
)

// TenantRepository is the uniform data-access contract shared by every
// residence-scoped entity. The residence id is a mandatory parameter on
// every read and delete; there is deliberately no unscoped variant, so a
// caller cannot forget tenant isolation.
//
// Reads never return soft-deleted rows. Delete is a soft delete: the row is
// updated, never removed. Deleting an absent id is a silent no-op at this
// layer; services pre-check existence and raise NOT_FOUND themselves.
type TenantRepository[T any] interface {
	FindByID(ctx context.Context, residenceID, id uuid.UUID) (*T, error)
	FindByResidence(ctx context.Context, residenceID uuid.UUID) ([]T, error)
	Add(ctx context.Context, entity *T) error
	Update(ctx context.Context, entity *T) error
	Delete(ctx context.Context, residenceID, id uuid.UUID) error
	Exists(ctx context.Context, residenceID, id uuid.UUID) (bool, error)
}
