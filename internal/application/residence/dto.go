package residence

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/residence/backend/internal/domain/residence"
)

// CreateResidenceRequest is the payload for creating a residence
type CreateResidenceRequest struct {
	Name        string `json:"name" binding:"required,max=200"`
	Address     string `json:"address" binding:"max=500"`
	City        string `json:"city" binding:"max=100"`
	State       string `json:"state" binding:"max=100"`
	ZipCode     string `json:"zip_code" binding:"max=20"`
	Description string `json:"description"`
}

// UpdateResidenceRequest is the payload for updating a residence
type UpdateResidenceRequest struct {
	Name        string `json:"name" binding:"required,max=200"`
	Address     string `json:"address" binding:"max=500"`
	City        string `json:"city" binding:"max=100"`
	State       string `json:"state" binding:"max=100"`
	ZipCode     string `json:"zip_code" binding:"max=20"`
	Description string `json:"description"`
}

// ResidenceResponse is the API representation of a residence
type ResidenceResponse struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Address     string     `json:"address"`
	City        string     `json:"city"`
	State       string     `json:"state"`
	ZipCode     string     `json:"zip_code"`
	Description string     `json:"description"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

// ToResidenceResponse maps a residence entity to its response
func ToResidenceResponse(r *residence.Residence) ResidenceResponse {
	return ResidenceResponse{
		ID:          r.ID,
		Name:        r.Name,
		Address:     r.Address,
		City:        r.City,
		State:       r.State,
		ZipCode:     r.ZipCode,
		Description: r.Description,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// UpdateSettingsRequest is the payload for updating residence settings
type UpdateSettingsRequest struct {
	ResidenceName  string          `json:"residence_name" binding:"required,max=200"`
	ResidencePlace string          `json:"residence_place" binding:"max=500"`
	InitialBudget  decimal.Decimal `json:"initial_budget"`
}

// SettingsResponse is the API representation of residence settings
type SettingsResponse struct {
	ID             uuid.UUID       `json:"id"`
	ResidenceID    uuid.UUID       `json:"residence_id"`
	ResidenceName  string          `json:"residence_name"`
	ResidencePlace string          `json:"residence_place"`
	InitialBudget  decimal.Decimal `json:"initial_budget"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      *time.Time      `json:"updated_at,omitempty"`
}

// ToSettingsResponse maps a settings entity to its response
func ToSettingsResponse(s *residence.Settings) SettingsResponse {
	return SettingsResponse{
		ID:             s.ID,
		ResidenceID:    s.ResidenceID,
		ResidenceName:  s.ResidenceName,
		ResidencePlace: s.ResidencePlace,
		InitialBudget:  s.InitialBudget,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}
