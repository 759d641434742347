package incident

import (
	"context"

	"github.com/google/uuid"

	"github.com/residence/backend/internal/domain/housing"
	"github.com/residence/backend/internal/domain/incident"
	"github.com/residence/backend/internal/domain/shared"
)

// Service handles incident-related business operations
type Service struct {
	incidentRepo incident.IncidentRepository
	commentRepo  incident.CommentRepository
	residentRepo housing.ResidentRepository
}

// NewService creates a new incident Service
func NewService(incidentRepo incident.IncidentRepository, commentRepo incident.CommentRepository, residentRepo housing.ResidentRepository) *Service {
	return &Service{
		incidentRepo: incidentRepo,
		commentRepo:  commentRepo,
		residentRepo: residentRepo,
	}
}

// Create reports an incident. New incidents are always Open.
func (s *Service) Create(ctx context.Context, residenceID uuid.UUID, req CreateIncidentRequest) (*IncidentResponse, error) {
	if !req.Category.IsValid() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Invalid incident category")
	}
	if !req.Priority.IsValid() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Invalid incident priority")
	}

	exists, err := s.residentRepo.Exists(ctx, residenceID, req.ResidentID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, shared.NewDomainError("NOT_FOUND", "Resident not found")
	}

	in := incident.NewIncident(residenceID, req.ResidentID, req.HouseID,
		req.Title, req.Description, req.Category, req.Priority)
	if err := s.incidentRepo.Add(ctx, in); err != nil {
		return nil, err
	}

	response := ToIncidentResponse(in)
	return &response, nil
}

// GetByID retrieves an incident with its comment thread
func (s *Service) GetByID(ctx context.Context, residenceID, id uuid.UUID) (*IncidentResponse, error) {
	in, err := s.incidentRepo.FindWithComments(ctx, residenceID, id)
	if err != nil {
		return nil, err
	}

	response := ToIncidentResponse(in)
	return &response, nil
}

// List returns one page of a residence's incidents
func (s *Service) List(ctx context.Context, residenceID uuid.UUID, p shared.Pagination) (shared.PagedResult[IncidentResponse], error) {
	incidents, err := s.incidentRepo.FindByResidence(ctx, residenceID)
	if err != nil {
		return shared.PagedResult[IncidentResponse]{}, err
	}

	page := shared.Paginate(incidents, p)
	return shared.MapPage(page, func(in incident.Incident) IncidentResponse {
		return ToIncidentResponse(&in)
	}), nil
}

// ListByStatus returns a residence's incidents in a given status
func (s *Service) ListByStatus(ctx context.Context, residenceID uuid.UUID, status incident.IncidentStatus) ([]IncidentResponse, error) {
	if !status.IsValid() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Invalid incident status")
	}

	incidents, err := s.incidentRepo.FindByStatus(ctx, residenceID, status)
	if err != nil {
		return nil, err
	}

	responses := make([]IncidentResponse, len(incidents))
	for i := range incidents {
		responses[i] = ToIncidentResponse(&incidents[i])
	}
	return responses, nil
}

// ListByResident returns the incidents one resident reported
func (s *Service) ListByResident(ctx context.Context, residenceID, residentID uuid.UUID) ([]IncidentResponse, error) {
	incidents, err := s.incidentRepo.FindByResident(ctx, residenceID, residentID)
	if err != nil {
		return nil, err
	}

	responses := make([]IncidentResponse, len(incidents))
	for i := range incidents {
		responses[i] = ToIncidentResponse(&incidents[i])
	}
	return responses, nil
}

// Update modifies an existing incident
func (s *Service) Update(ctx context.Context, residenceID, id uuid.UUID, req UpdateIncidentRequest) (*IncidentResponse, error) {
	if !req.Category.IsValid() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Invalid incident category")
	}
	if !req.Status.IsValid() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Invalid incident status")
	}
	if !req.Priority.IsValid() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Invalid incident priority")
	}

	in, err := s.incidentRepo.FindByID(ctx, residenceID, id)
	if err != nil {
		return nil, err
	}

	in.Title = req.Title
	in.Description = req.Description
	in.Category = req.Category
	in.Status = req.Status
	in.Priority = req.Priority
	in.HouseID = req.HouseID

	if err := s.incidentRepo.Update(ctx, in); err != nil {
		return nil, err
	}

	response := ToIncidentResponse(in)
	return &response, nil
}

// Delete soft-deletes an incident
func (s *Service) Delete(ctx context.Context, residenceID, id uuid.UUID) error {
	if _, err := s.incidentRepo.FindByID(ctx, residenceID, id); err != nil {
		return err
	}
	return s.incidentRepo.Delete(ctx, residenceID, id)
}

// AddComment appends a comment to an incident's thread, attributed to the
// incident's reporter.
func (s *Service) AddComment(ctx context.Context, residenceID, incidentID uuid.UUID, req AddCommentRequest) (*CommentResponse, error) {
	in, err := s.incidentRepo.FindByID(ctx, residenceID, incidentID)
	if err != nil {
		return nil, err
	}

	comment := incident.NewComment(in, req.Text)
	if err := s.commentRepo.Add(ctx, comment); err != nil {
		return nil, err
	}

	response := ToCommentResponse(comment)
	return &response, nil
}

// GetComments returns an incident's comment thread, oldest first
func (s *Service) GetComments(ctx context.Context, residenceID, incidentID uuid.UUID) ([]CommentResponse, error) {
	if _, err := s.incidentRepo.FindByID(ctx, residenceID, incidentID); err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.FindByIncident(ctx, residenceID, incidentID)
	if err != nil {
		return nil, err
	}

	responses := make([]CommentResponse, len(comments))
	for i := range comments {
		responses[i] = ToCommentResponse(&comments[i])
	}
	return responses, nil
}
