package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/residence/backend/internal/domain/residence"
	"github.com/residence/backend/internal/domain/shared"
)

// GormResidenceRepository persists the tenant root. The residence is not
// itself tenant-scoped, so it does not reuse the generic repository.
type GormResidenceRepository struct {
	db *gorm.DB
}

// NewGormResidenceRepository creates a residence repository.
func NewGormResidenceRepository(db *gorm.DB) residence.Repository {
	return &GormResidenceRepository{db: db}
}

// FindByID returns a live residence by ID.
func (r *GormResidenceRepository) FindByID(ctx context.Context, id uuid.UUID) (*residence.Residence, error) {
	var entity residence.Residence
	err := r.db.WithContext(ctx).
		Where("id = ? AND is_deleted = ?", id, false).
		First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find residence: %w", err)
	}
	return &entity, nil
}

// FindAll returns every live residence.
func (r *GormResidenceRepository) FindAll(ctx context.Context) ([]residence.Residence, error) {
	var entities []residence.Residence
	err := r.db.WithContext(ctx).
		Where("is_deleted = ?", false).
		Order("created_at DESC").
		Find(&entities).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list residences: %w", err)
	}
	return entities, nil
}

// Create persists the residence together with its default settings row in
// a single transaction. A residence without settings must never exist.
func (r *GormResidenceRepository) Create(ctx context.Context, res *residence.Residence, s *residence.Settings) error {
	now := time.Now().UTC()
	res.CreatedAt = now
	res.IsDeleted = false
	s.MarkCreated(now)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(res).Error; err != nil {
			return fmt.Errorf("failed to create residence: %w", err)
		}
		if err := tx.Create(s).Error; err != nil {
			return fmt.Errorf("failed to create residence settings: %w", err)
		}
		return nil
	})
}

// Update persists changes to a residence.
func (r *GormResidenceRepository) Update(ctx context.Context, res *residence.Residence) error {
	now := time.Now().UTC()
	res.UpdatedAt = &now
	if err := r.db.WithContext(ctx).Save(res).Error; err != nil {
		return fmt.Errorf("failed to update residence: %w", err)
	}
	return nil
}

// Delete soft-deletes a residence. Missing residences are a no-op.
func (r *GormResidenceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	var entity residence.Residence
	err := r.db.WithContext(ctx).
		Where("id = ? AND is_deleted = ?", id, false).
		First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("failed to find residence for delete: %w", err)
	}

	now := time.Now().UTC()
	entity.IsDeleted = true
	entity.UpdatedAt = &now
	if err := r.db.WithContext(ctx).Save(&entity).Error; err != nil {
		return fmt.Errorf("failed to delete residence: %w", err)
	}
	return nil
}

// Exists reports whether a live residence with the given ID exists.
func (r *GormResidenceRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&residence.Residence{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check residence existence: %w", err)
	}
	return count > 0, nil
}

// GormSettingsRepository persists the 1:1 residence settings record.
type GormSettingsRepository struct {
	db *gorm.DB
}

// NewGormSettingsRepository creates a settings repository.
func NewGormSettingsRepository(db *gorm.DB) residence.SettingsRepository {
	return &GormSettingsRepository{db: db}
}

// FindByResidence returns the settings row for a residence.
func (r *GormSettingsRepository) FindByResidence(ctx context.Context, residenceID uuid.UUID) (*residence.Settings, error) {
	var entity residence.Settings
	err := r.db.WithContext(ctx).
		Where("residence_id = ? AND is_deleted = ?", residenceID, false).
		First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find residence settings: %w", err)
	}
	return &entity, nil
}

// Update persists changes to a settings row.
func (r *GormSettingsRepository) Update(ctx context.Context, s *residence.Settings) error {
	s.MarkUpdated(time.Now().UTC())
	if err := r.db.WithContext(ctx).Save(s).Error; err != nil {
		return fmt.Errorf("failed to update residence settings: %w", err)
	}
	return nil
}
