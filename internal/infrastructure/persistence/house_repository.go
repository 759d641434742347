package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/residence/backend/internal/domain/housing"
	"github.com/residence/backend/internal/domain/shared"
)

// GormHouseRepository persists houses with their occupancy relations.
type GormHouseRepository struct {
	*GormRepository[housing.House, *housing.House]
}

// NewGormHouseRepository creates a house repository.
func NewGormHouseRepository(db *gorm.DB) housing.HouseRepository {
	return &GormHouseRepository{
		GormRepository: NewGormRepository[housing.House, *housing.House](db),
	}
}

// FindWithResidents returns a house with its current resident and full
// resident list preloaded.
func (r *GormHouseRepository) FindWithResidents(ctx context.Context, residenceID, id uuid.UUID) (*housing.House, error) {
	var entity housing.House
	err := r.scoped(ctx, residenceID).
		Preload("CurrentResident", "is_deleted = ?", false).
		Preload("Residents", "is_deleted = ?", false).
		Where("id = ?", id).
		First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find house: %w", err)
	}
	return &entity, nil
}

// FindByResidenceWithDetails returns all houses of a residence with their
// current residents preloaded.
func (r *GormHouseRepository) FindByResidenceWithDetails(ctx context.Context, residenceID uuid.UUID) ([]housing.House, error) {
	var entities []housing.House
	err := r.scoped(ctx, residenceID).
		Preload("CurrentResident", "is_deleted = ?", false).
		Order("block, unit").
		Find(&entities).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list houses: %w", err)
	}
	return entities, nil
}

// FindByStatus returns the houses of a residence in a given status.
func (r *GormHouseRepository) FindByStatus(ctx context.Context, residenceID uuid.UUID, status housing.HouseStatus) ([]housing.House, error) {
	var entities []housing.House
	err := r.scoped(ctx, residenceID).
		Where("status = ?", status).
		Order("block, unit").
		Find(&entities).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list houses by status: %w", err)
	}
	return entities, nil
}

// GormResidentRepository persists residence members.
type GormResidentRepository struct {
	*GormRepository[housing.Resident, *housing.Resident]
}

// NewGormResidentRepository creates a resident repository.
func NewGormResidentRepository(db *gorm.DB) housing.ResidentRepository {
	return &GormResidentRepository{
		GormRepository: NewGormRepository[housing.Resident, *housing.Resident](db),
	}
}

// FindByHouse returns the residents assigned to a house.
func (r *GormResidentRepository) FindByHouse(ctx context.Context, residenceID, houseID uuid.UUID) ([]housing.Resident, error) {
	var entities []housing.Resident
	err := r.scoped(ctx, residenceID).
		Where("house_id = ?", houseID).
		Order("last_name, first_name").
		Find(&entities).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list residents by house: %w", err)
	}
	return entities, nil
}

// FindByStatus returns the residents of a residence in a given status.
func (r *GormResidentRepository) FindByStatus(ctx context.Context, residenceID uuid.UUID, status housing.ResidentStatus) ([]housing.Resident, error) {
	var entities []housing.Resident
	err := r.scoped(ctx, residenceID).
		Where("status = ?", status).
		Order("last_name, first_name").
		Find(&entities).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list residents by status: %w", err)
	}
	return entities, nil
}
