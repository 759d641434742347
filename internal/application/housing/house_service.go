package housing

import (
	"context"

	"github.com/google/uuid"

	"github.com/residence/backend/internal/domain/housing"
	"github.com/residence/backend/internal/domain/shared"
)

// HouseService handles house-related business operations
type HouseService struct {
	houseRepo    housing.HouseRepository
	residentRepo housing.ResidentRepository
}

// NewHouseService creates a new HouseService
func NewHouseService(houseRepo housing.HouseRepository, residentRepo housing.ResidentRepository) *HouseService {
	return &HouseService{
		houseRepo:    houseRepo,
		residentRepo: residentRepo,
	}
}

// Create creates a new house. It starts vacant regardless of whether a
// current resident is referenced.
func (s *HouseService) Create(ctx context.Context, residenceID uuid.UUID, req CreateHouseRequest) (*HouseResponse, error) {
	if req.CurrentResidentID != nil {
		exists, err := s.residentRepo.Exists(ctx, residenceID, *req.CurrentResidentID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, shared.NewDomainError("NOT_FOUND", "Resident not found")
		}
	}

	house := housing.NewHouse(residenceID, req.Block, req.Unit, req.Floor, req.CurrentResidentID)
	if err := s.houseRepo.Add(ctx, house); err != nil {
		return nil, err
	}

	response := ToHouseResponse(house)
	return &response, nil
}

// GetByID retrieves a house with its residents
func (s *HouseService) GetByID(ctx context.Context, residenceID, id uuid.UUID) (*HouseResponse, error) {
	house, err := s.houseRepo.FindWithResidents(ctx, residenceID, id)
	if err != nil {
		return nil, err
	}

	response := ToHouseResponse(house)
	return &response, nil
}

// List returns one page of a residence's houses
func (s *HouseService) List(ctx context.Context, residenceID uuid.UUID, p shared.Pagination) (shared.PagedResult[HouseResponse], error) {
	houses, err := s.houseRepo.FindByResidenceWithDetails(ctx, residenceID)
	if err != nil {
		return shared.PagedResult[HouseResponse]{}, err
	}

	page := shared.Paginate(houses, p)
	return shared.MapPage(page, func(h housing.House) HouseResponse {
		return ToHouseResponse(&h)
	}), nil
}

// ListByStatus returns the houses of a residence in a given status
func (s *HouseService) ListByStatus(ctx context.Context, residenceID uuid.UUID, status housing.HouseStatus) ([]HouseResponse, error) {
	if !status.IsValid() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Invalid house status")
	}

	houses, err := s.houseRepo.FindByStatus(ctx, residenceID, status)
	if err != nil {
		return nil, err
	}

	responses := make([]HouseResponse, len(houses))
	for i := range houses {
		responses[i] = ToHouseResponse(&houses[i])
	}
	return responses, nil
}

// Update modifies an existing house
func (s *HouseService) Update(ctx context.Context, residenceID, id uuid.UUID, req UpdateHouseRequest) (*HouseResponse, error) {
	if !req.Status.IsValid() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Invalid house status")
	}

	house, err := s.houseRepo.FindByID(ctx, residenceID, id)
	if err != nil {
		return nil, err
	}

	if req.CurrentResidentID != nil {
		exists, err := s.residentRepo.Exists(ctx, residenceID, *req.CurrentResidentID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, shared.NewDomainError("NOT_FOUND", "Resident not found")
		}
	}

	house.Block = req.Block
	house.Unit = req.Unit
	house.Floor = req.Floor
	house.Status = req.Status
	house.CurrentResidentID = req.CurrentResidentID

	if err := s.houseRepo.Update(ctx, house); err != nil {
		return nil, err
	}

	response := ToHouseResponse(house)
	return &response, nil
}

// Delete soft-deletes a house
func (s *HouseService) Delete(ctx context.Context, residenceID, id uuid.UUID) error {
	if _, err := s.houseRepo.FindByID(ctx, residenceID, id); err != nil {
		return err
	}
	return s.houseRepo.Delete(ctx, residenceID, id)
}
