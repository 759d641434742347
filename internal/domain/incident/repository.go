package incident

import (
	"context"

	"github.com/google/uuid"

	"github.com/residence/backend/internal/domain/shared"
)

// IncidentRepository adds the targeted incident reads.
type IncidentRepository interface {
	shared.TenantRepository[Incident]
	FindWithComments(ctx context.Context, residenceID, id uuid.UUID) (*Incident, error)
	FindByResident(ctx context.Context, residenceID, residentID uuid.UUID) ([]Incident, error)
	FindByStatus(ctx context.Context, residenceID uuid.UUID, status IncidentStatus) ([]Incident, error)
}

// CommentRepository persists incident comments.
type CommentRepository interface {
	shared.TenantRepository[Comment]
	FindByIncident(ctx context.Context, residenceID, incidentID uuid.UUID) ([]Comment, error)
}
