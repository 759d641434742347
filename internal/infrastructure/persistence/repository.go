package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/residence/backend/internal/domain/shared"
)

// GormRepository is a generic GORM-backed repository for tenant-owned
// entities. Every read filters by residence_id and excludes soft-deleted
// rows; writes stamp the audit columns in UTC.
//
// PT is the pointer type of T and must satisfy shared.TenantEntity so the
// repository can stamp audit fields without reflection.
type GormRepository[T any, PT interface {
	*T
	shared.TenantEntity
}] struct {
	db *gorm.DB
}

// NewGormRepository creates a repository bound to a GORM handle.
func NewGormRepository[T any, PT interface {
	*T
	shared.TenantEntity
}](db *gorm.DB) *GormRepository[T, PT] {
	return &GormRepository[T, PT]{db: db}
}

// DB exposes the underlying handle for entity-specific queries.
func (r *GormRepository[T, PT]) DB() *gorm.DB {
	return r.db
}

// scoped returns a query filtered to live rows of one residence.
func (r *GormRepository[T, PT]) scoped(ctx context.Context, residenceID uuid.UUID) *gorm.DB {
	return r.db.WithContext(ctx).
		Where("residence_id = ?", residenceID).
		Where("is_deleted = ?", false)
}

// FindByID returns the live entity with the given ID within a residence.
func (r *GormRepository[T, PT]) FindByID(ctx context.Context, residenceID, id uuid.UUID) (*T, error) {
	var entity T
	err := r.scoped(ctx, residenceID).Where("id = ?", id).First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find record: %w", err)
	}
	return &entity, nil
}

// FindByResidence returns all live entities belonging to a residence.
func (r *GormRepository[T, PT]) FindByResidence(ctx context.Context, residenceID uuid.UUID) ([]T, error) {
	var entities []T
	err := r.scoped(ctx, residenceID).Order("created_at DESC").Find(&entities).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	return entities, nil
}

// Add inserts a new entity, stamping its creation time.
func (r *GormRepository[T, PT]) Add(ctx context.Context, entity *T) error {
	PT(entity).MarkCreated(time.Now().UTC())
	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		return fmt.Errorf("failed to create record: %w", err)
	}
	return nil
}

// Update persists changes to an entity, stamping its update time.
func (r *GormRepository[T, PT]) Update(ctx context.Context, entity *T) error {
	PT(entity).MarkUpdated(time.Now().UTC())
	if err := r.db.WithContext(ctx).Save(entity).Error; err != nil {
		return fmt.Errorf("failed to update record: %w", err)
	}
	return nil
}

// Delete soft-deletes the entity with the given ID. Deleting an entity
// that does not exist (or is already deleted) is a no-op.
func (r *GormRepository[T, PT]) Delete(ctx context.Context, residenceID, id uuid.UUID) error {
	var entity T
	err := r.scoped(ctx, residenceID).Where("id = ?", id).First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("failed to find record for delete: %w", err)
	}

	PT(&entity).MarkDeleted(time.Now().UTC())
	if err := r.db.WithContext(ctx).Save(&entity).Error; err != nil {
		return fmt.Errorf("failed to delete record: %w", err)
	}
	return nil
}

// Exists reports whether a live entity with the given ID exists in a residence.
func (r *GormRepository[T, PT]) Exists(ctx context.Context, residenceID, id uuid.UUID) (bool, error) {
	var count int64
	var entity T
	err := r.scoped(ctx, residenceID).Model(&entity).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check existence: %w", err)
	}
	return count > 0, nil
}
