package identity

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/residence/backend/internal/domain/identity"
	"github.com/residence/backend/internal/domain/shared"
	"github.com/residence/backend/internal/infrastructure/auth"
)

func newUserServiceWithMocks() (*UserService, *MockUserRepository) {
	userRepo := new(MockUserRepository)
	return NewUserService(userRepo, auth.NewPasswordHasher()), userRepo
}

func TestUserService_Update(t *testing.T) {
	ctx := context.Background()
	residenceID := uuid.New()

	t.Run("profile changes keep the role", func(t *testing.T) {
		svc, userRepo := newUserServiceWithMocks()
		admin := identity.NewUser(residenceID, "admin@example.com", "hash", "Ana", "Silva", "", identity.UserRoleAdmin)
		userRepo.On("FindByID", ctx, residenceID, admin.ID).Return(admin, nil)
		userRepo.On("Update", ctx, mock.MatchedBy(func(u *identity.User) bool {
			return u.Role == identity.UserRoleAdmin && u.FirstName == "Anna"
		})).Return(nil)

		resp, err := svc.Update(ctx, residenceID, admin.ID, UpdateUserRequest{
			FirstName:   "Anna",
			LastName:    "Silva",
			PhoneNumber: "555-0101",
		})

		require.NoError(t, err)
		assert.Equal(t, identity.UserRoleAdmin, resp.Role)
		assert.Equal(t, "Anna", resp.FirstName)
		userRepo.AssertExpectations(t)
	})

	t.Run("unknown user", func(t *testing.T) {
		svc, userRepo := newUserServiceWithMocks()
		id := uuid.New()
		userRepo.On("FindByID", ctx, residenceID, id).Return(nil, shared.ErrNotFound)

		_, err := svc.Update(ctx, residenceID, id, UpdateUserRequest{
			FirstName: "Ana",
			LastName:  "Silva",
		})

		require.Error(t, err)
		userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}
