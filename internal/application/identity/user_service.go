package identity

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/residence/backend/internal/domain/identity"
	"github.com/residence/backend/internal/domain/shared"
	"github.com/residence/backend/internal/infrastructure/auth"
)

// UserService handles user account management
type UserService struct {
	userRepo identity.UserRepository
	hasher   *auth.PasswordHasher
}

// NewUserService creates a new UserService
func NewUserService(userRepo identity.UserRepository, hasher *auth.PasswordHasher) *UserService {
	return &UserService{
		userRepo: userRepo,
		hasher:   hasher,
	}
}

// Create creates a user account inside a residence. Email uniqueness is
// checked across all residences.
func (s *UserService) Create(ctx context.Context, residenceID uuid.UUID, req CreateUserRequest) (*UserResponse, error) {
	if !req.Role.IsValid() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Invalid user role")
	}

	if _, err := s.userRepo.FindByEmail(ctx, req.Email); err == nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "A user with this email already exists")
	} else if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	user := identity.NewUser(residenceID, req.Email, hash, req.FirstName, req.LastName, req.PhoneNumber, req.Role)
	user.AvatarUrl = req.AvatarUrl
	if err := s.userRepo.Add(ctx, user); err != nil {
		return nil, err
	}

	response := ToUserResponse(user)
	return &response, nil
}

// GetByID retrieves a user by ID
func (s *UserService) GetByID(ctx context.Context, residenceID, id uuid.UUID) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, residenceID, id)
	if err != nil {
		return nil, err
	}

	response := ToUserResponse(user)
	return &response, nil
}

// List returns one page of a residence's users with their resident profile
func (s *UserService) List(ctx context.Context, residenceID uuid.UUID, p shared.Pagination) (shared.PagedResult[UserResponse], error) {
	users, err := s.userRepo.FindByResidenceWithResident(ctx, residenceID)
	if err != nil {
		return shared.PagedResult[UserResponse]{}, err
	}

	page := shared.Paginate(users, p)
	return shared.MapPage(page, func(u identity.User) UserResponse {
		return ToUserResponse(&u)
	}), nil
}

// Update modifies a user's profile. The role is fixed at creation.
func (s *UserService) Update(ctx context.Context, residenceID, id uuid.UUID, req UpdateUserRequest) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, residenceID, id)
	if err != nil {
		return nil, err
	}

	user.FirstName = req.FirstName
	user.LastName = req.LastName
	user.PhoneNumber = req.PhoneNumber
	user.AvatarUrl = req.AvatarUrl

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	response := ToUserResponse(user)
	return &response, nil
}

// Delete soft-deletes a user
func (s *UserService) Delete(ctx context.Context, residenceID, id uuid.UUID) error {
	if _, err := s.userRepo.FindByID(ctx, residenceID, id); err != nil {
		return err
	}
	return s.userRepo.Delete(ctx, residenceID, id)
}
