package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/residence/backend/internal/domain/incident"
	"github.com/residence/backend/internal/domain/shared"
)

// GormIncidentRepository persists maintenance incidents.
type GormIncidentRepository struct {
	*GormRepository[incident.Incident, *incident.Incident]
}

// NewGormIncidentRepository creates an incident repository.
func NewGormIncidentRepository(db *gorm.DB) incident.IncidentRepository {
	return &GormIncidentRepository{
		GormRepository: NewGormRepository[incident.Incident, *incident.Incident](db),
	}
}

// FindWithComments returns an incident with its comment thread preloaded,
// oldest comment first.
func (r *GormIncidentRepository) FindWithComments(ctx context.Context, residenceID, id uuid.UUID) (*incident.Incident, error) {
	var entity incident.Incident
	err := r.scoped(ctx, residenceID).
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_deleted = ?", false).Order("created_at")
		}).
		Where("id = ?", id).
		First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find incident: %w", err)
	}
	return &entity, nil
}

// FindByResident returns the incidents reported by one resident.
func (r *GormIncidentRepository) FindByResident(ctx context.Context, residenceID, residentID uuid.UUID) ([]incident.Incident, error) {
	var entities []incident.Incident
	err := r.scoped(ctx, residenceID).
		Where("resident_id = ?", residentID).
		Order("created_at DESC").
		Find(&entities).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list incidents by resident: %w", err)
	}
	return entities, nil
}

// FindByStatus returns a residence's incidents in a given status.
func (r *GormIncidentRepository) FindByStatus(ctx context.Context, residenceID uuid.UUID, status incident.IncidentStatus) ([]incident.Incident, error) {
	var entities []incident.Incident
	err := r.scoped(ctx, residenceID).
		Where("status = ?", status).
		Order("created_at DESC").
		Find(&entities).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list incidents by status: %w", err)
	}
	return entities, nil
}

// GormIncidentCommentRepository persists incident comments.
type GormIncidentCommentRepository struct {
	*GormRepository[incident.Comment, *incident.Comment]
}

// NewGormIncidentCommentRepository creates an incident comment repository.
func NewGormIncidentCommentRepository(db *gorm.DB) incident.CommentRepository {
	return &GormIncidentCommentRepository{
		GormRepository: NewGormRepository[incident.Comment, *incident.Comment](db),
	}
}

// FindByIncident returns an incident's comments, oldest first.
func (r *GormIncidentCommentRepository) FindByIncident(ctx context.Context, residenceID, incidentID uuid.UUID) ([]incident.Comment, error) {
	var entities []incident.Comment
	err := r.scoped(ctx, residenceID).
		Where("incident_id = ?", incidentID).
		Order("created_at").
		Find(&entities).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list incident comments: %w", err)
	}
	return entities, nil
}
