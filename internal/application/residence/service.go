package residence

import (
	"context"

	"github.com/google/uuid"

	"github.com/residence/backend/internal/domain/residence"
	"github.com/residence/backend/internal/domain/shared"
)

// Service handles residence-related business operations
type Service struct {
	residenceRepo residence.Repository
	settingsRepo  residence.SettingsRepository
}

// NewService creates a new residence Service
func NewService(residenceRepo residence.Repository, settingsRepo residence.SettingsRepository) *Service {
	return &Service{
		residenceRepo: residenceRepo,
		settingsRepo:  settingsRepo,
	}
}

// Create creates a residence together with its default settings. The
// settings row inherits the residence name and address and starts with a
// zero budget.
func (s *Service) Create(ctx context.Context, req CreateResidenceRequest) (*ResidenceResponse, error) {
	r := residence.NewResidence(req.Name, req.Address, req.City, req.State, req.ZipCode, req.Description)
	settings := residence.DefaultSettings(r)

	if err := s.residenceRepo.Create(ctx, r, settings); err != nil {
		return nil, err
	}

	response := ToResidenceResponse(r)
	return &response, nil
}

// GetByID retrieves a residence by ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*ResidenceResponse, error) {
	r, err := s.residenceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToResidenceResponse(r)
	return &response, nil
}

// List returns one page of residences
func (s *Service) List(ctx context.Context, p shared.Pagination) (shared.PagedResult[ResidenceResponse], error) {
	all, err := s.residenceRepo.FindAll(ctx)
	if err != nil {
		return shared.PagedResult[ResidenceResponse]{}, err
	}

	page := shared.Paginate(all, p)
	return shared.MapPage(page, func(r residence.Residence) ResidenceResponse {
		return ToResidenceResponse(&r)
	}), nil
}

// Update modifies an existing residence
func (s *Service) Update(ctx context.Context, id uuid.UUID, req UpdateResidenceRequest) (*ResidenceResponse, error) {
	r, err := s.residenceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	r.Name = req.Name
	r.Address = req.Address
	r.City = req.City
	r.State = req.State
	r.ZipCode = req.ZipCode
	r.Description = req.Description

	if err := s.residenceRepo.Update(ctx, r); err != nil {
		return nil, err
	}

	response := ToResidenceResponse(r)
	return &response, nil
}

// Delete soft-deletes a residence
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.residenceRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.residenceRepo.Delete(ctx, id)
}

// GetSettings returns the settings of a residence
func (s *Service) GetSettings(ctx context.Context, residenceID uuid.UUID) (*SettingsResponse, error) {
	settings, err := s.settingsRepo.FindByResidence(ctx, residenceID)
	if err != nil {
		return nil, err
	}

	response := ToSettingsResponse(settings)
	return &response, nil
}

// UpdateSettings modifies the settings of a residence
func (s *Service) UpdateSettings(ctx context.Context, residenceID uuid.UUID, req UpdateSettingsRequest) (*SettingsResponse, error) {
	settings, err := s.settingsRepo.FindByResidence(ctx, residenceID)
	if err != nil {
		return nil, err
	}

	settings.ResidenceName = req.ResidenceName
	settings.ResidencePlace = req.ResidencePlace
	settings.InitialBudget = req.InitialBudget

	if err := s.settingsRepo.Update(ctx, settings); err != nil {
		return nil, err
	}

	response := ToSettingsResponse(settings)
	return &response, nil
}
