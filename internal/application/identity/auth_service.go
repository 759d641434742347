package identity

import (
	"context"
	"errors"
	"strconv"

	"github.com/residence/backend/internal/domain/identity"
	"github.com/residence/backend/internal/domain/shared"
	"github.com/residence/backend/internal/infrastructure/auth"
)

// AuthService handles registration, login and token refresh
type AuthService struct {
	userRepo identity.UserRepository
	jwt      *auth.JWTService
	hasher   *auth.PasswordHasher
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo identity.UserRepository, jwt *auth.JWTService, hasher *auth.PasswordHasher) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		jwt:      jwt,
		hasher:   hasher,
	}
}

// Register creates a new account and logs it in
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
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

	user := identity.NewUser(req.ResidenceID, req.Email, hash, req.FirstName, req.LastName, req.PhoneNumber, req.Role)
	if err := s.userRepo.Add(ctx, user); err != nil {
		return nil, err
	}

	return s.issueTokens(user)
}

// Login authenticates a user by email and password. A missing user and a
// wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.hasher.Verify(user.PasswordHash, req.Password) {
		return nil, shared.ErrInvalidCredentials
	}

	return s.issueTokens(user)
}

// Refresh exchanges a valid refresh token for a fresh token pair. The user
// is re-read so revoked accounts stop refreshing.
func (s *AuthService) Refresh(ctx context.Context, req RefreshRequest) (*AuthResponse, error) {
	claims, err := s.jwt.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		return nil, shared.ErrUnauthorized
	}

	residenceID, err := claims.GetResidenceUUID()
	if err != nil {
		return nil, shared.ErrUnauthorized
	}
	userID, err := claims.GetUserUUID()
	if err != nil {
		return nil, shared.ErrUnauthorized
	}

	user, err := s.userRepo.FindByID(ctx, residenceID, userID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrUnauthorized
		}
		return nil, err
	}

	return s.issueTokens(user)
}

func (s *AuthService) issueTokens(user *identity.User) (*AuthResponse, error) {
	pair, err := s.jwt.GenerateTokenPair(auth.GenerateTokenInput{
		ResidenceID: user.ResidenceID,
		UserID:      user.ID,
		Email:       user.Email,
		Role:        strconv.Itoa(int(user.Role)),
	})
	if err != nil {
		return nil, err
	}

	return &AuthResponse{
		AccessToken:           pair.AccessToken,
		RefreshToken:          pair.RefreshToken,
		AccessTokenExpiresAt:  pair.AccessTokenExpiresAt,
		RefreshTokenExpiresAt: pair.RefreshTokenExpiresAt,
		TokenType:             pair.TokenType,
		User:                  ToUserResponse(user),
	}, nil
}
