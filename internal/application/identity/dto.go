package identity

import (
	"time"

	"github.com/google/uuid"

	housingapp "github.com/residence/backend/internal/application/housing"
	"github.com/residence/backend/internal/domain/identity"
)

// RegisterRequest is the payload for registering a new account
type RegisterRequest struct {
	ResidenceID uuid.UUID         `json:"residence_id" binding:"required"`
	Email       string            `json:"email" binding:"required,email,max=200"`
	Password    string            `json:"password" binding:"required,min=8,max=100"`
	FirstName   string            `json:"first_name" binding:"required,max=100"`
	LastName    string            `json:"last_name" binding:"required,max=100"`
	PhoneNumber string            `json:"phone_number" binding:"max=50"`
	Role        identity.UserRole `json:"role"`
}

// LoginRequest is the payload for logging in
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest is the payload for refreshing a token pair
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// AuthResponse carries the token pair and the authenticated user
type AuthResponse struct {
	AccessToken           string       `json:"access_token"`
	RefreshToken          string       `json:"refresh_token"`
	AccessTokenExpiresAt  time.Time    `json:"access_token_expires_at"`
	RefreshTokenExpiresAt time.Time    `json:"refresh_token_expires_at"`
	TokenType             string       `json:"token_type"`
	User                  UserResponse `json:"user"`
}

// CreateUserRequest is the payload for creating a user directly
type CreateUserRequest struct {
	Email       string            `json:"email" binding:"required,email,max=200"`
	Password    string            `json:"password" binding:"required,min=8,max=100"`
	FirstName   string            `json:"first_name" binding:"required,max=100"`
	LastName    string            `json:"last_name" binding:"required,max=100"`
	PhoneNumber string            `json:"phone_number" binding:"max=50"`
	Role        identity.UserRole `json:"role"`
	AvatarUrl   *string           `json:"avatar_url" binding:"omitempty,max=500"`
}

// UpdateUserRequest is the payload for updating a user's profile. Neither
// the password nor the role is updatable here.
type UpdateUserRequest struct {
	FirstName   string  `json:"first_name" binding:"required,max=100"`
	LastName    string  `json:"last_name" binding:"required,max=100"`
	PhoneNumber string  `json:"phone_number" binding:"max=50"`
	AvatarUrl   *string `json:"avatar_url" binding:"omitempty,max=500"`
}

// UserResponse is the API representation of a user. The password hash
// never leaves the service layer.
type UserResponse struct {
	ID          uuid.UUID                    `json:"id"`
	ResidenceID uuid.UUID                    `json:"residence_id"`
	Email       string                       `json:"email"`
	FirstName   string                       `json:"first_name"`
	LastName    string                       `json:"last_name"`
	PhoneNumber string                       `json:"phone_number"`
	Role        identity.UserRole            `json:"role"`
	AvatarUrl   *string                      `json:"avatar_url,omitempty"`
	Resident    *housingapp.ResidentResponse `json:"resident,omitempty"`
	CreatedAt   time.Time                    `json:"created_at"`
	UpdatedAt   *time.Time                   `json:"updated_at,omitempty"`
}

// ToUserResponse maps a user entity to its response
func ToUserResponse(u *identity.User) UserResponse {
	resp := UserResponse{
		ID:          u.ID,
		ResidenceID: u.ResidenceID,
		Email:       u.Email,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		PhoneNumber: u.PhoneNumber,
		Role:        u.Role,
		AvatarUrl:   u.AvatarUrl,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
	if u.Resident != nil {
		r := housingapp.ToResidentResponse(u.Resident)
		resp.Resident = &r
	}
	return resp
}
