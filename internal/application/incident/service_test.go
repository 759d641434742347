package incident

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/residence/backend/internal/domain/housing"
	"github.com/residence/backend/internal/domain/incident"
	"github.com/residence/backend/internal/domain/shared"
)

type MockIncidentRepository struct {
	mock.Mock
}

func (m *MockIncidentRepository) FindByID(ctx context.Context, residenceID, id uuid.UUID) (*incident.Incident, error) {
	args := m.Called(ctx, residenceID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*incident.Incident), args.Error(1)
}

func (m *MockIncidentRepository) FindByResidence(ctx context.Context, residenceID uuid.UUID) ([]incident.Incident, error) {
	args := m.Called(ctx, residenceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]incident.Incident), args.Error(1)
}

func (m *MockIncidentRepository) Add(ctx context.Context, entity *incident.Incident) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *MockIncidentRepository) Update(ctx context.Context, entity *incident.Incident) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *MockIncidentRepository) Delete(ctx context.Context, residenceID, id uuid.UUID) error {
	args := m.Called(ctx, residenceID, id)
	return args.Error(0)
}

func (m *MockIncidentRepository) Exists(ctx context.Context, residenceID, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, residenceID, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockIncidentRepository) FindWithComments(ctx context.Context, residenceID, id uuid.UUID) (*incident.Incident, error) {
	args := m.Called(ctx, residenceID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*incident.Incident), args.Error(1)
}

func (m *MockIncidentRepository) FindByResident(ctx context.Context, residenceID, residentID uuid.UUID) ([]incident.Incident, error) {
	args := m.Called(ctx, residenceID, residentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]incident.Incident), args.Error(1)
}

func (m *MockIncidentRepository) FindByStatus(ctx context.Context, residenceID uuid.UUID, status incident.IncidentStatus) ([]incident.Incident, error) {
	args := m.Called(ctx, residenceID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]incident.Incident), args.Error(1)
}

type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) FindByID(ctx context.Context, residenceID, id uuid.UUID) (*incident.Comment, error) {
	args := m.Called(ctx, residenceID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*incident.Comment), args.Error(1)
}

func (m *MockCommentRepository) FindByResidence(ctx context.Context, residenceID uuid.UUID) ([]incident.Comment, error) {
	args := m.Called(ctx, residenceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]incident.Comment), args.Error(1)
}

func (m *MockCommentRepository) Add(ctx context.Context, entity *incident.Comment) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *MockCommentRepository) Update(ctx context.Context, entity *incident.Comment) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *MockCommentRepository) Delete(ctx context.Context, residenceID, id uuid.UUID) error {
	args := m.Called(ctx, residenceID, id)
	return args.Error(0)
}

func (m *MockCommentRepository) Exists(ctx context.Context, residenceID, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, residenceID, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockCommentRepository) FindByIncident(ctx context.Context, residenceID, incidentID uuid.UUID) ([]incident.Comment, error) {
	args := m.Called(ctx, residenceID, incidentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]incident.Comment), args.Error(1)
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

func newIncidentServiceWithMocks() (*Service, *MockIncidentRepository, *MockCommentRepository, *MockResidentRepository) {
	incidentRepo := new(MockIncidentRepository)
	commentRepo := new(MockCommentRepository)
	residentRepo := new(MockResidentRepository)
	return NewService(incidentRepo, commentRepo, residentRepo), incidentRepo, commentRepo, residentRepo
}

func TestIncidentService_Create(t *testing.T) {
	ctx := context.Background()
	residenceID := uuid.New()
	residentID := uuid.New()

	t.Run("new incident is open", func(t *testing.T) {
		svc, incidentRepo, _, residentRepo := newIncidentServiceWithMocks()
		residentRepo.On("Exists", ctx, residenceID, residentID).Return(true, nil)
		incidentRepo.On("Add", ctx, mock.MatchedBy(func(in *incident.Incident) bool {
			return in.Status == incident.IncidentStatusOpen && in.ResidentID == residentID
		})).Return(nil)

		resp, err := svc.Create(ctx, residenceID, CreateIncidentRequest{
			Title:      "Leaking pipe",
			Category:   incident.IncidentCategoryPlumbing,
			Priority:   incident.IncidentPriorityHigh,
			ResidentID: residentID,
		})

		require.NoError(t, err)
		assert.Equal(t, incident.IncidentStatusOpen, resp.Status)
		incidentRepo.AssertExpectations(t)
	})

	t.Run("unknown reporter is rejected", func(t *testing.T) {
		svc, incidentRepo, _, residentRepo := newIncidentServiceWithMocks()
		residentRepo.On("Exists", ctx, residenceID, residentID).Return(false, nil)

		_, err := svc.Create(ctx, residenceID, CreateIncidentRequest{
			Title:      "Leaking pipe",
			ResidentID: residentID,
		})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "NOT_FOUND", domainErr.Code)
		incidentRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	})

	t.Run("invalid category", func(t *testing.T) {
		svc, _, _, _ := newIncidentServiceWithMocks()

		_, err := svc.Create(ctx, residenceID, CreateIncidentRequest{
			Title:      "Leaking pipe",
			Category:   incident.IncidentCategory(99),
			ResidentID: residentID,
		})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_INPUT", domainErr.Code)
	})
}

func TestIncidentService_AddComment(t *testing.T) {
	ctx := context.Background()
	residenceID := uuid.New()
	residentID := uuid.New()

	t.Run("comment is attributed to the reporter", func(t *testing.T) {
		svc, incidentRepo, commentRepo, _ := newIncidentServiceWithMocks()
		in := incident.NewIncident(residenceID, residentID, nil, "Leaking pipe", "", incident.IncidentCategoryPlumbing, incident.IncidentPriorityHigh)
		incidentRepo.On("FindByID", ctx, residenceID, in.ID).Return(in, nil)
		commentRepo.On("Add", ctx, mock.MatchedBy(func(c *incident.Comment) bool {
			return c.IncidentID == in.ID && c.AuthorID == residentID
		})).Return(nil)

		resp, err := svc.AddComment(ctx, residenceID, in.ID, AddCommentRequest{Text: "Plumber scheduled"})

		require.NoError(t, err)
		assert.Equal(t, residentID, resp.AuthorID)
		assert.Equal(t, "Plumber scheduled", resp.Text)
		commentRepo.AssertExpectations(t)
	})

	t.Run("missing incident", func(t *testing.T) {
		svc, incidentRepo, commentRepo, _ := newIncidentServiceWithMocks()
		id := uuid.New()
		incidentRepo.On("FindByID", ctx, residenceID, id).Return(nil, shared.ErrNotFound)

		_, err := svc.AddComment(ctx, residenceID, id, AddCommentRequest{Text: "hello"})

		assert.ErrorIs(t, err, shared.ErrNotFound)
		commentRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	})
}
