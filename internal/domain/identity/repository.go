package identity

import (
	"context"

	"github.com/google/uuid"

	"github.com/residence/backend/internal/domain/shared"
)

// UserRepository persists login identities. FindByEmail is not tenant
// scoped: the email uniqueness invariant spans the whole system.
type UserRepository interface {
	shared.TenantRepository[User]
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByResidenceWithResident(ctx context.Context, residenceID uuid.UUID) ([]User, error)
}
