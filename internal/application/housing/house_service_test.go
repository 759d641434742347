package housing

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/residence/backend/internal/domain/housing"
	"github.com/residence/backend/internal/domain/shared"
)

type MockHouseRepository struct {
	mock.Mock
}

func (m *MockHouseRepository) FindByID(ctx context.Context, residenceID, id uuid.UUID) (*housing.House, error) {
	args := m.Called(ctx, residenceID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*housing.House), args.Error(1)
}

func (m *MockHouseRepository) FindByResidence(ctx context.Context, residenceID uuid.UUID) ([]housing.House, error) {
	args := m.Called(ctx, residenceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]housing.House), args.Error(1)
}

func (m *MockHouseRepository) Add(ctx context.Context, entity *housing.House) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *MockHouseRepository) Update(ctx context.Context, entity *housing.House) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *MockHouseRepository) Delete(ctx context.Context, residenceID, id uuid.UUID) error {
	args := m.Called(ctx, residenceID, id)
	return args.Error(0)
}

func (m *MockHouseRepository) Exists(ctx context.Context, residenceID, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, residenceID, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockHouseRepository) FindWithResidents(ctx context.Context, residenceID, id uuid.UUID) (*housing.House, error) {
	args := m.Called(ctx, residenceID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*housing.House), args.Error(1)
}

func (m *MockHouseRepository) FindByResidenceWithDetails(ctx context.Context, residenceID uuid.UUID) ([]housing.House, error) {
	args := m.Called(ctx, residenceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]housing.House), args.Error(1)
}

func (m *MockHouseRepository) FindByStatus(ctx context.Context, residenceID uuid.UUID, status housing.HouseStatus) ([]housing.House, error) {
	args := m.Called(ctx, residenceID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]housing.House), args.Error(1)
}

type MockResidentRepository struct {
	mock.Mock
}

func (m *MockResidentRepository) FindByID(ctx context.Context, residenceID, id uuid.UUID) (*housing.Resident, error) {
	args := m.Called(ctx, residenceID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*housing.Resident), args.Error(1)
}

func (m *MockResidentRepository) FindByResidence(ctx context.Context, residenceID uuid.UUID) ([]housing.Resident, error) {
	args := m.Called(ctx, residenceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]housing.Resident), args.Error(1)
}

func (m *MockResidentRepository) Add(ctx context.Context, entity *housing.Resident) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *MockResidentRepository) Update(ctx context.Context, entity *housing.Resident) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *MockResidentRepository) Delete(ctx context.Context, residenceID, id uuid.UUID) error {
	args := m.Called(ctx, residenceID, id)
	return args.Error(0)
}

func (m *MockResidentRepository) Exists(ctx context.Context, residenceID, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, residenceID, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockResidentRepository) FindByHouse(ctx context.Context, residenceID, houseID uuid.UUID) ([]housing.Resident, error) {
	args := m.Called(ctx, residenceID, houseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]housing.Resident), args.Error(1)
}

func (m *MockResidentRepository) FindByStatus(ctx context.Context, residenceID uuid.UUID, status housing.ResidentStatus) ([]housing.Resident, error) {
	args := m.Called(ctx, residenceID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]housing.Resident), args.Error(1)
}

func TestHouseService_Create(t *testing.T) {
	ctx := context.Background()
	residenceID := uuid.New()

	t.Run("new house starts vacant", func(t *testing.T) {
		houseRepo := new(MockHouseRepository)
		residentRepo := new(MockResidentRepository)
		svc := NewHouseService(houseRepo, residentRepo)

		houseRepo.On("Add", ctx, mock.MatchedBy(func(h *housing.House) bool {
			return h.Status == housing.HouseStatusVacant && h.ResidenceID == residenceID
		})).Return(nil)

		resp, err := svc.Create(ctx, residenceID, CreateHouseRequest{Block: "A", Unit: "101"})

		require.NoError(t, err)
		assert.Equal(t, housing.HouseStatusVacant, resp.Status)
		houseRepo.AssertExpectations(t)
	})

	t.Run("referenced resident must exist", func(t *testing.T) {
		houseRepo := new(MockHouseRepository)
		residentRepo := new(MockResidentRepository)
		svc := NewHouseService(houseRepo, residentRepo)

		residentID := uuid.New()
		residentRepo.On("Exists", ctx, residenceID, residentID).Return(false, nil)

		_, err := svc.Create(ctx, residenceID, CreateHouseRequest{Block: "A", Unit: "101", CurrentResidentID: &residentID})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "NOT_FOUND", domainErr.Code)
		houseRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	})
}

func TestHouseService_Update(t *testing.T) {
	ctx := context.Background()
	residenceID := uuid.New()

	t.Run("invalid status is rejected", func(t *testing.T) {
		houseRepo := new(MockHouseRepository)
		svc := NewHouseService(houseRepo, new(MockResidentRepository))

		_, err := svc.Update(ctx, residenceID, uuid.New(), UpdateHouseRequest{Block: "A", Unit: "101", Status: housing.HouseStatus(9)})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_INPUT", domainErr.Code)
		houseRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("occupancy change is persisted", func(t *testing.T) {
		houseRepo := new(MockHouseRepository)
		residentRepo := new(MockResidentRepository)
		svc := NewHouseService(houseRepo, residentRepo)

		house := housing.NewHouse(residenceID, "A", "101", nil, nil)
		residentID := uuid.New()
		houseRepo.On("FindByID", ctx, residenceID, house.ID).Return(house, nil)
		residentRepo.On("Exists", ctx, residenceID, residentID).Return(true, nil)
		houseRepo.On("Update", ctx, mock.MatchedBy(func(h *housing.House) bool {
			return h.Status == housing.HouseStatusOccupied && h.CurrentResidentID != nil && *h.CurrentResidentID == residentID
		})).Return(nil)

		resp, err := svc.Update(ctx, residenceID, house.ID, UpdateHouseRequest{
			Block:             "A",
			Unit:              "101",
			Status:            housing.HouseStatusOccupied,
			CurrentResidentID: &residentID,
		})

		require.NoError(t, err)
		assert.Equal(t, housing.HouseStatusOccupied, resp.Status)
		houseRepo.AssertExpectations(t)
	})
}

func TestHouseService_Delete(t *testing.T) {
	ctx := context.Background()
	residenceID := uuid.New()

	t.Run("missing house surfaces not found", func(t *testing.T) {
		houseRepo := new(MockHouseRepository)
		svc := NewHouseService(houseRepo, new(MockResidentRepository))

		id := uuid.New()
		houseRepo.On("FindByID", ctx, residenceID, id).Return(nil, shared.ErrNotFound)

		err := svc.Delete(ctx, residenceID, id)

		assert.ErrorIs(t, err, shared.ErrNotFound)
		houseRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestHouseService_List(t *testing.T) {
	ctx := context.Background()
	residenceID := uuid.New()

	houses := make([]housing.House, 15)
	for i := range houses {
		houses[i] = *housing.NewHouse(residenceID, "A", "10", nil, nil)
	}

	houseRepo := new(MockHouseRepository)
	svc := NewHouseService(houseRepo, new(MockResidentRepository))
	houseRepo.On("FindByResidenceWithDetails", ctx, residenceID).Return(houses, nil)

	page, err := svc.List(ctx, residenceID, shared.Pagination{Page: 2, PageSize: 10})

	require.NoError(t, err)
	assert.Len(t, page.Items, 5)
	assert.Equal(t, 15, page.TotalCount)
	assert.Equal(t, 2, page.TotalPages)
}
