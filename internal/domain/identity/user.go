package identity

import (
	"github.com/google/uuid"

	"github.com/residence/backend/internal/domain/housing"
	"github.com/residence/backend/internal/domain/shared"
)

// UserRole distinguishes administrators from regular residents.
type UserRole int

const (
	UserRoleAdmin UserRole = iota
	UserRoleResident
)

// IsValid reports whether the role is one of the known values.
func (r UserRole) IsValid() bool {
	return r >= UserRoleAdmin && r <= UserRoleResident
}

// User is a login identity. Email is unique across the whole system, not
// per residence; the index is deliberately unscoped.
type User struct {
	shared.BaseEntity
	Email        string   `gorm:"type:varchar(200);not null;uniqueIndex"`
	PasswordHash string   `gorm:"type:varchar(200);not null"`
	FirstName    string   `gorm:"type:varchar(100);not null"`
	LastName     string   `gorm:"type:varchar(100);not null"`
	PhoneNumber  string   `gorm:"type:varchar(50)"`
	Role         UserRole `gorm:"type:smallint;not null"`
	AvatarUrl    *string  `gorm:"type:varchar(500)"`

	Resident *housing.Resident `gorm:"foreignKey:UserID"`
}

// TableName returns the table name for GORM
func (User) TableName() string {
	return "users"
}

// NewUser creates a user with an already-hashed password.
func NewUser(residenceID uuid.UUID, email, passwordHash, firstName, lastName, phoneNumber string, role UserRole) *User {
	return &User{
		BaseEntity:   shared.NewBaseEntity(residenceID),
		Email:        email,
		PasswordHash: passwordHash,
		FirstName:    firstName,
		LastName:     lastName,
		PhoneNumber:  phoneNumber,
		Role:         role,
	}
}
