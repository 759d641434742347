package housing

import (
	"context"

	"github.com/google/uuid"

	"github.com/residence/backend/internal/domain/housing"
	"github.com/residence/backend/internal/domain/shared"
)

// ResidentService handles resident-related business operations
type ResidentService struct {
	residentRepo housing.ResidentRepository
	houseRepo    housing.HouseRepository
}

// NewResidentService creates a new ResidentService
func NewResidentService(residentRepo housing.ResidentRepository, houseRepo housing.HouseRepository) *ResidentService {
	return &ResidentService{
		residentRepo: residentRepo,
		houseRepo:    houseRepo,
	}
}

// Create registers a resident. New residents are active and their move-in
// date is the registration time.
func (s *ResidentService) Create(ctx context.Context, residenceID uuid.UUID, req CreateResidentRequest) (*ResidentResponse, error) {
	if req.HouseID != nil {
		exists, err := s.houseRepo.Exists(ctx, residenceID, *req.HouseID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, shared.NewDomainError("NOT_FOUND", "House not found")
		}
	}

	resident := housing.NewResident(residenceID, req.UserID, req.HouseID,
		req.FirstName, req.LastName, req.Email, req.PhoneNumber, req.Address, req.BirthDate)
	if err := s.residentRepo.Add(ctx, resident); err != nil {
		return nil, err
	}

	response := ToResidentResponse(resident)
	return &response, nil
}

// GetByID retrieves a resident by ID
func (s *ResidentService) GetByID(ctx context.Context, residenceID, id uuid.UUID) (*ResidentResponse, error) {
	resident, err := s.residentRepo.FindByID(ctx, residenceID, id)
	if err != nil {
		return nil, err
	}

	response := ToResidentResponse(resident)
	return &response, nil
}

// List returns one page of a residence's residents
func (s *ResidentService) List(ctx context.Context, residenceID uuid.UUID, p shared.Pagination) (shared.PagedResult[ResidentResponse], error) {
	residents, err := s.residentRepo.FindByResidence(ctx, residenceID)
	if err != nil {
		return shared.PagedResult[ResidentResponse]{}, err
	}

	page := shared.Paginate(residents, p)
	return shared.MapPage(page, func(r housing.Resident) ResidentResponse {
		return ToResidentResponse(&r)
	}), nil
}

// ListByHouse returns the residents assigned to a house
func (s *ResidentService) ListByHouse(ctx context.Context, residenceID, houseID uuid.UUID) ([]ResidentResponse, error) {
	residents, err := s.residentRepo.FindByHouse(ctx, residenceID, houseID)
	if err != nil {
		return nil, err
	}

	responses := make([]ResidentResponse, len(residents))
	for i := range residents {
		responses[i] = ToResidentResponse(&residents[i])
	}
	return responses, nil
}

// ListByStatus returns a residence's residents in one occupancy state
func (s *ResidentService) ListByStatus(ctx context.Context, residenceID uuid.UUID, status housing.ResidentStatus) ([]ResidentResponse, error) {
	if !status.IsValid() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Invalid resident status")
	}

	residents, err := s.residentRepo.FindByStatus(ctx, residenceID, status)
	if err != nil {
		return nil, err
	}

	responses := make([]ResidentResponse, len(residents))
	for i := range residents {
		responses[i] = ToResidentResponse(&residents[i])
	}
	return responses, nil
}

// Update modifies an existing resident
func (s *ResidentService) Update(ctx context.Context, residenceID, id uuid.UUID, req UpdateResidentRequest) (*ResidentResponse, error) {
	if !req.Status.IsValid() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Invalid resident status")
	}

	resident, err := s.residentRepo.FindByID(ctx, residenceID, id)
	if err != nil {
		return nil, err
	}

	if req.HouseID != nil {
		exists, err := s.houseRepo.Exists(ctx, residenceID, *req.HouseID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, shared.NewDomainError("NOT_FOUND", "House not found")
		}
	}

	resident.UserID = req.UserID
	resident.HouseID = req.HouseID
	resident.FirstName = req.FirstName
	resident.LastName = req.LastName
	resident.Email = req.Email
	resident.PhoneNumber = req.PhoneNumber
	resident.Address = req.Address
	resident.BirthDate = req.BirthDate
	resident.Status = req.Status
	resident.MoveOutDate = req.MoveOutDate

	if err := s.residentRepo.Update(ctx, resident); err != nil {
		return nil, err
	}

	response := ToResidentResponse(resident)
	return &response, nil
}

// Delete soft-deletes a resident
func (s *ResidentService) Delete(ctx context.Context, residenceID, id uuid.UUID) error {
	if _, err := s.residentRepo.FindByID(ctx, residenceID, id); err != nil {
		return err
	}
	return s.residentRepo.Delete(ctx, residenceID, id)
}
