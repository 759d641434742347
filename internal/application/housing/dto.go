package housing

import (
	"time"

	"github.com/google/uuid"

	"github.com/residence/backend/internal/domain/housing"
)

// CreateHouseRequest is the payload for creating a house. New houses are
// always created vacant, so there is no status field here.
type CreateHouseRequest struct {
	Block             string     `json:"block" binding:"required,max=50"`
	Unit              string     `json:"unit" binding:"required,max=50"`
	Floor             *string    `json:"floor" binding:"omitempty,max=20"`
	CurrentResidentID *uuid.UUID `json:"current_resident_id"`
}

// UpdateHouseRequest is the payload for updating a house
type UpdateHouseRequest struct {
	Block             string              `json:"block" binding:"required,max=50"`
	Unit              string              `json:"unit" binding:"required,max=50"`
	Floor             *string             `json:"floor" binding:"omitempty,max=20"`
	Status            housing.HouseStatus `json:"status"`
	CurrentResidentID *uuid.UUID          `json:"current_resident_id"`
}

// HouseResponse is the API representation of a house
type HouseResponse struct {
	ID                uuid.UUID           `json:"id"`
	ResidenceID       uuid.UUID           `json:"residence_id"`
	Block             string              `json:"block"`
	Unit              string              `json:"unit"`
	Floor             *string             `json:"floor,omitempty"`
	Status            housing.HouseStatus `json:"status"`
	CurrentResidentID *uuid.UUID          `json:"current_resident_id,omitempty"`
	CurrentResident   *ResidentResponse   `json:"current_resident,omitempty"`
	Residents         []ResidentResponse  `json:"residents,omitempty"`
	CreatedAt         time.Time           `json:"created_at"`
	UpdatedAt         *time.Time          `json:"updated_at,omitempty"`
}

// ToHouseResponse maps a house entity to its response
func ToHouseResponse(h *housing.House) HouseResponse {
	resp := HouseResponse{
		ID:                h.ID,
		ResidenceID:       h.ResidenceID,
		Block:             h.Block,
		Unit:              h.Unit,
		Floor:             h.Floor,
		Status:            h.Status,
		CurrentResidentID: h.CurrentResidentID,
		CreatedAt:         h.CreatedAt,
		UpdatedAt:         h.UpdatedAt,
	}
	if h.CurrentResident != nil {
		r := ToResidentResponse(h.CurrentResident)
		resp.CurrentResident = &r
	}
	for i := range h.Residents {
		resp.Residents = append(resp.Residents, ToResidentResponse(&h.Residents[i]))
	}
	return resp
}

// CreateResidentRequest is the payload for registering a resident
type CreateResidentRequest struct {
	UserID      *uuid.UUID `json:"user_id"`
	HouseID     *uuid.UUID `json:"house_id"`
	FirstName   string     `json:"first_name" binding:"required,max=100"`
	LastName    string     `json:"last_name" binding:"required,max=100"`
	Email       string     `json:"email" binding:"omitempty,email,max=200"`
	PhoneNumber string     `json:"phone_number" binding:"max=50"`
	Address     string     `json:"address" binding:"max=500"`
	BirthDate   *time.Time `json:"birth_date"`
}

// UpdateResidentRequest is the payload for updating a resident
type UpdateResidentRequest struct {
	UserID      *uuid.UUID             `json:"user_id"`
	HouseID     *uuid.UUID             `json:"house_id"`
	FirstName   string                 `json:"first_name" binding:"required,max=100"`
	LastName    string                 `json:"last_name" binding:"required,max=100"`
	Email       string                 `json:"email" binding:"omitempty,email,max=200"`
	PhoneNumber string                 `json:"phone_number" binding:"max=50"`
	Address     string                 `json:"address" binding:"max=500"`
	BirthDate   *time.Time             `json:"birth_date"`
	Status      housing.ResidentStatus `json:"status"`
	MoveOutDate *time.Time             `json:"move_out_date"`
}

// ResidentResponse is the API representation of a resident
type ResidentResponse struct {
	ID          uuid.UUID              `json:"id"`
	ResidenceID uuid.UUID              `json:"residence_id"`
	UserID      *uuid.UUID             `json:"user_id,omitempty"`
	HouseID     *uuid.UUID             `json:"house_id,omitempty"`
	FirstName   string                 `json:"first_name"`
	LastName    string                 `json:"last_name"`
	Email       string                 `json:"email"`
	PhoneNumber string                 `json:"phone_number"`
	Address     string                 `json:"address"`
	BirthDate   *time.Time             `json:"birth_date,omitempty"`
	Status      housing.ResidentStatus `json:"status"`
	MoveInDate  time.Time              `json:"move_in_date"`
	MoveOutDate *time.Time             `json:"move_out_date,omitempty"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   *time.Time             `json:"updated_at,omitempty"`
}

// ToResidentResponse maps a resident entity to its response
func ToResidentResponse(r *housing.Resident) ResidentResponse {
	return ResidentResponse{
		ID:          r.ID,
		ResidenceID: r.ResidenceID,
		UserID:      r.UserID,
		HouseID:     r.HouseID,
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Email:       r.Email,
		PhoneNumber: r.PhoneNumber,
		Address:     r.Address,
		BirthDate:   r.BirthDate,
		Status:      r.Status,
		MoveInDate:  r.MoveInDate,
		MoveOutDate: r.MoveOutDate,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
