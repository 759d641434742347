package incident

import (
	"time"

	"github.com/google/uuid"

	"github.com/residence/backend/internal/domain/incident"
)

// CreateIncidentRequest is the payload for reporting an incident
type CreateIncidentRequest struct {
	Title       string                    `json:"title" binding:"required,max=200"`
	Description string                    `json:"description"`
	Category    incident.IncidentCategory `json:"category"`
	Priority    incident.IncidentPriority `json:"priority"`
	ResidentID  uuid.UUID                 `json:"resident_id" binding:"required"`
	HouseID     *uuid.UUID                `json:"house_id"`
}

// UpdateIncidentRequest is the payload for updating an incident
type UpdateIncidentRequest struct {
	Title       string                    `json:"title" binding:"required,max=200"`
	Description string                    `json:"description"`
	Category    incident.IncidentCategory `json:"category"`
	Status      incident.IncidentStatus   `json:"status"`
	Priority    incident.IncidentPriority `json:"priority"`
	HouseID     *uuid.UUID                `json:"house_id"`
}

// AddCommentRequest is the payload for commenting on an incident. There is
// no author field: comments are attributed to the incident's reporter.
type AddCommentRequest struct {
	Text string `json:"text" binding:"required"`
}

// CommentResponse is the API representation of an incident comment
type CommentResponse struct {
	ID         uuid.UUID  `json:"id"`
	IncidentID uuid.UUID  `json:"incident_id"`
	AuthorID   uuid.UUID  `json:"author_id"`
	Text       string     `json:"text"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
}

// ToCommentResponse maps a comment entity to its response
func ToCommentResponse(c *incident.Comment) CommentResponse {
	return CommentResponse{
		ID:         c.ID,
		IncidentID: c.IncidentID,
		AuthorID:   c.AuthorID,
		Text:       c.Text,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

// IncidentResponse is the API representation of an incident
type IncidentResponse struct {
	ID          uuid.UUID                 `json:"id"`
	ResidenceID uuid.UUID                 `json:"residence_id"`
	Title       string                    `json:"title"`
	Description string                    `json:"description"`
	Category    incident.IncidentCategory `json:"category"`
	Status      incident.IncidentStatus   `json:"status"`
	Priority    incident.IncidentPriority `json:"priority"`
	ResidentID  uuid.UUID                 `json:"resident_id"`
	HouseID     *uuid.UUID                `json:"house_id,omitempty"`
	Comments    []CommentResponse         `json:"comments,omitempty"`
	CreatedAt   time.Time                 `json:"created_at"`
	UpdatedAt   *time.Time                `json:"updated_at,omitempty"`
}

// ToIncidentResponse maps an incident entity to its response
func ToIncidentResponse(in *incident.Incident) IncidentResponse {
	resp := IncidentResponse{
		ID:          in.ID,
		ResidenceID: in.ResidenceID,
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		Status:      in.Status,
		Priority:    in.Priority,
		ResidentID:  in.ResidentID,
		HouseID:     in.HouseID,
		CreatedAt:   in.CreatedAt,
		UpdatedAt:   in.UpdatedAt,
	}
	for i := range in.Comments {
		resp.Comments = append(resp.Comments, ToCommentResponse(&in.Comments[i]))
	}
	return resp
}
