package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/residence/backend/internal/domain/identity"
	"github.com/residence/backend/internal/domain/shared"
)

// GormUserRepository persists login identities.
type GormUserRepository struct {
	*GormRepository[identity.User, *identity.User]
}

// NewGormUserRepository creates a user repository.
func NewGormUserRepository(db *gorm.DB) identity.UserRepository {
	return &GormUserRepository{
		GormRepository: NewGormRepository[identity.User, *identity.User](db),
	}
}

// FindByEmail looks a user up across all residences. Email is globally
// unique, so login does not need a tenant.
func (r *GormUserRepository) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	var entity identity.User
	err := r.DB().WithContext(ctx).
		Where("email = ? AND is_deleted = ?", email, false).
		First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	return &entity, nil
}

// FindByResidenceWithResident returns a residence's users with their
// linked resident profile preloaded.
func (r *GormUserRepository) FindByResidenceWithResident(ctx context.Context, residenceID uuid.UUID) ([]identity.User, error) {
	var entities []identity.User
	err := r.scoped(ctx, residenceID).
		Preload("Resident", "is_deleted = ?", false).
		Order("last_name, first_name").
		Find(&entities).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return entities, nil
}
