package shared

import (
	"time"

	"github.com/google/uuid"
)

// Entity is the base interface for all persistent entities.
type Entity interface {
	GetID() uuid.UUID
}

// TenantEntity is implemented by every entity that belongs to a residence.
// The repository layer uses it to stamp audit timestamps and to flip the
// soft-delete flag without knowing the concrete type.
type TenantEntity interface {
	Entity
	GetResidenceID() uuid.UUID
	MarkCreated(now time.Time)
	MarkUpdated(now time.Time)
	MarkDeleted(now time.Time)
	Deleted() bool
}

// BaseEntity provides the common fields for every residence-scoped entity:
// identity, tenant reference, audit trail and soft delete. Timestamps are
// assigned by the repository at the point of persistence, never taken from
// the client; gorm's automatic tracking is disabled so UpdatedAt stays nil
// until the first update.
type BaseEntity struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ResidenceID uuid.UUID  `gorm:"type:uuid;not null;index"`
	CreatedAt   time.Time  `gorm:"not null;autoCreateTime:false"`
	CreatedBy   *uuid.UUID `gorm:"type:uuid"`
	UpdatedAt   *time.Time `gorm:"autoUpdateTime:false"`
	UpdatedBy   *uuid.UUID `gorm:"type:uuid"`
	IsDeleted   bool       `gorm:"not null;default:false;index"`
}

// NewBaseEntity creates a base entity with a generated ID, scoped to the
// given residence. CreatedAt is left zero; the repository stamps it on Add.
func NewBaseEntity(residenceID uuid.UUID) BaseEntity {
	return BaseEntity{
		ID:          uuid.New(),
		ResidenceID: residenceID,
	}
}

// GetID returns the entity ID.
func (e *BaseEntity) GetID() uuid.UUID {
	return e.ID
}

// GetResidenceID returns the owning residence (tenant) ID.
func (e *BaseEntity) GetResidenceID() uuid.UUID {
	return e.ResidenceID
}

// MarkCreated stamps the creation timestamp and clears the soft-delete flag.
func (e *BaseEntity) MarkCreated(now time.Time) {
	e.CreatedAt = now
	e.IsDeleted = false
}

// MarkUpdated stamps the last-update timestamp.
func (e *BaseEntity) MarkUpdated(now time.Time) {
	e.UpdatedAt = &now
}

// MarkDeleted flags the entity as logically deleted. The row is never
// physically removed.
func (e *BaseEntity) MarkDeleted(now time.Time) {
	e.IsDeleted = true
	e.UpdatedAt = &now
}

// Deleted reports whether the entity has been soft-deleted.
func (e *BaseEntity) Deleted() bool {
	return e.IsDeleted
}

// SetCreatedBy records the acting user on creation.
func (e *BaseEntity) SetCreatedBy(userID uuid.UUID) {
	e.CreatedBy = &userID
}

// SetUpdatedBy records the acting user on update.
func (e *BaseEntity) SetUpdatedBy(userID uuid.UUID) {
	e.UpdatedBy = &userID
}
