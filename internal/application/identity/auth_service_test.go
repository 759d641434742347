package identity

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/residence/backend/internal/domain/identity"
	"github.com/residence/backend/internal/domain/shared"
	"github.com/residence/backend/internal/infrastructure/auth"
	"github.com/residence/backend/internal/infrastructure/config"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, residenceID, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, residenceID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByResidence(ctx context.Context, residenceID uuid.UUID) ([]identity.User, error) {
	args := m.Called(ctx, residenceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]identity.User), args.Error(1)
}

func (m *MockUserRepository) Add(ctx context.Context, entity *identity.User) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, entity *identity.User) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, residenceID, id uuid.UUID) error {
	args := m.Called(ctx, residenceID, id)
	return args.Error(0)
}

func (m *MockUserRepository) Exists(ctx context.Context, residenceID, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, residenceID, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByResidenceWithResident(ctx context.Context, residenceID uuid.UUID) ([]identity.User, error) {
	args := m.Called(ctx, residenceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]identity.User), args.Error(1)
}

func newAuthServiceWithMocks() (*AuthService, *MockUserRepository, *auth.JWTService, *auth.PasswordHasher) {
	userRepo := new(MockUserRepository)
	jwtService := auth.NewJWTService(config.JWTConfig{
		Secret:                 "test-secret",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 24 * time.Hour,
		Issuer:                 "test",
	})
	hasher := auth.NewPasswordHasher()
	return NewAuthService(userRepo, jwtService, hasher), userRepo, jwtService, hasher
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()
	residenceID := uuid.New()

	t.Run("creates account and issues tokens", func(t *testing.T) {
		svc, userRepo, jwtService, hasher := newAuthServiceWithMocks()
		userRepo.On("FindByEmail", ctx, "ana@example.com").Return(nil, shared.ErrNotFound)
		userRepo.On("Add", ctx, mock.MatchedBy(func(u *identity.User) bool {
			return u.Email == "ana@example.com" &&
				u.ResidenceID == residenceID &&
				u.PasswordHash != "secret-password" &&
				hasher.Verify(u.PasswordHash, "secret-password")
		})).Return(nil)

		resp, err := svc.Register(ctx, RegisterRequest{
			ResidenceID: residenceID,
			Email:       "ana@example.com",
			Password:    "secret-password",
			FirstName:   "Ana",
			LastName:    "Silva",
			Role:        identity.UserRoleResident,
		})

		require.NoError(t, err)
		assert.Equal(t, "ana@example.com", resp.User.Email)
		require.NotEmpty(t, resp.AccessToken)

		claims, err := jwtService.ValidateAccessToken(resp.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, residenceID.String(), claims.ResidenceID)
		userRepo.AssertExpectations(t)
	})

	t.Run("duplicate email is a conflict", func(t *testing.T) {
		svc, userRepo, _, _ := newAuthServiceWithMocks()
		existing := identity.NewUser(residenceID, "ana@example.com", "hash", "Ana", "Silva", "", identity.UserRoleResident)
		userRepo.On("FindByEmail", ctx, "ana@example.com").Return(existing, nil)

		_, err := svc.Register(ctx, RegisterRequest{
			ResidenceID: residenceID,
			Email:       "ana@example.com",
			Password:    "secret-password",
			FirstName:   "Ana",
			LastName:    "Silva",
			Role:        identity.UserRoleResident,
		})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
		userRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	})

	t.Run("invalid role is rejected", func(t *testing.T) {
		svc, _, _, _ := newAuthServiceWithMocks()

		_, err := svc.Register(ctx, RegisterRequest{
			ResidenceID: residenceID,
			Email:       "ana@example.com",
			Password:    "secret-password",
			Role:        identity.UserRole(42),
		})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_INPUT", domainErr.Code)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	residenceID := uuid.New()

	t.Run("valid credentials issue tokens", func(t *testing.T) {
		svc, userRepo, jwtService, hasher := newAuthServiceWithMocks()
		hash, err := hasher.Hash("secret-password")
		require.NoError(t, err)
		user := identity.NewUser(residenceID, "ana@example.com", hash, "Ana", "Silva", "", identity.UserRoleAdmin)
		userRepo.On("FindByEmail", ctx, "ana@example.com").Return(user, nil)

		resp, err := svc.Login(ctx, LoginRequest{Email: "ana@example.com", Password: "secret-password"})

		require.NoError(t, err)
		assert.Equal(t, user.ID, resp.User.ID)

		claims, err := jwtService.ValidateAccessToken(resp.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, user.ID.String(), claims.UserID)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, userRepo, _, hasher := newAuthServiceWithMocks()
		hash, err := hasher.Hash("secret-password")
		require.NoError(t, err)
		user := identity.NewUser(residenceID, "ana@example.com", hash, "Ana", "Silva", "", identity.UserRoleAdmin)
		userRepo.On("FindByEmail", ctx, "ana@example.com").Return(user, nil)

		_, err = svc.Login(ctx, LoginRequest{Email: "ana@example.com", Password: "wrong"})

		assert.ErrorIs(t, err, shared.ErrInvalidCredentials)
	})

	t.Run("unknown email looks identical to wrong password", func(t *testing.T) {
		svc, userRepo, _, _ := newAuthServiceWithMocks()
		userRepo.On("FindByEmail", ctx, "ghost@example.com").Return(nil, shared.ErrNotFound)

		_, err := svc.Login(ctx, LoginRequest{Email: "ghost@example.com", Password: "anything"})

		assert.ErrorIs(t, err, shared.ErrInvalidCredentials)
	})
}

func TestAuthService_Refresh(t *testing.T) {
	ctx := context.Background()
	residenceID := uuid.New()

	t.Run("valid refresh token re-issues a pair", func(t *testing.T) {
		svc, userRepo, jwtService, _ := newAuthServiceWithMocks()
		user := identity.NewUser(residenceID, "ana@example.com", "hash", "Ana", "Silva", "", identity.UserRoleResident)

		pair, err := jwtService.GenerateTokenPair(auth.GenerateTokenInput{
			ResidenceID: residenceID,
			UserID:      user.ID,
			Email:       user.Email,
		})
		require.NoError(t, err)

		userRepo.On("FindByID", ctx, residenceID, user.ID).Return(user, nil)

		resp, err := svc.Refresh(ctx, RefreshRequest{RefreshToken: pair.RefreshToken})

		require.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
		assert.Equal(t, user.ID, resp.User.ID)
	})

	t.Run("access token is not accepted", func(t *testing.T) {
		svc, _, jwtService, _ := newAuthServiceWithMocks()
		pair, err := jwtService.GenerateTokenPair(auth.GenerateTokenInput{
			ResidenceID: residenceID,
			UserID:      uuid.New(),
		})
		require.NoError(t, err)

		_, err = svc.Refresh(ctx, RefreshRequest{RefreshToken: pair.AccessToken})

		assert.ErrorIs(t, err, shared.ErrUnauthorized)
	})

	t.Run("deleted user cannot refresh", func(t *testing.T) {
		svc, userRepo, jwtService, _ := newAuthServiceWithMocks()
		userID := uuid.New()
		pair, err := jwtService.GenerateTokenPair(auth.GenerateTokenInput{
			ResidenceID: residenceID,
			UserID:      userID,
		})
		require.NoError(t, err)

		userRepo.On("FindByID", ctx, residenceID, userID).Return(nil, shared.ErrNotFound)

		_, err = svc.Refresh(ctx, RefreshRequest{RefreshToken: pair.RefreshToken})

		assert.ErrorIs(t, err, shared.ErrUnauthorized)
	})
}
