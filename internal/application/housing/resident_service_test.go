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

func newResidentServiceWithMocks() (*ResidentService, *MockResidentRepository, *MockHouseRepository) {
	residentRepo := new(MockResidentRepository)
	houseRepo := new(MockHouseRepository)
	return NewResidentService(residentRepo, houseRepo), residentRepo, houseRepo
}

func TestResidentService_ListByStatus(t *testing.T) {
	ctx := context.Background()
	residenceID := uuid.New()

	t.Run("returns residents in the requested state", func(t *testing.T) {
		svc, residentRepo, _ := newResidentServiceWithMocks()
		movedOut := *housing.NewResident(residenceID, nil, nil, "Bruno", "Costa", "", "", "", nil)
		movedOut.Status = housing.ResidentStatusMovedOut
		residentRepo.On("FindByStatus", ctx, residenceID, housing.ResidentStatusMovedOut).
			Return([]housing.Resident{movedOut}, nil)

		got, err := svc.ListByStatus(ctx, residenceID, housing.ResidentStatusMovedOut)

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Costa", got[0].LastName)
	})

	t.Run("invalid status", func(t *testing.T) {
		svc, residentRepo, _ := newResidentServiceWithMocks()

		_, err := svc.ListByStatus(ctx, residenceID, housing.ResidentStatus(9))

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_INPUT", domainErr.Code)
		residentRepo.AssertNotCalled(t, "FindByStatus", mock.Anything, mock.Anything, mock.Anything)
	})
}
