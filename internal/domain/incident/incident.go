package incident

import (
	"github.com/google/uuid"

	"github.com/residence/backend/internal/domain/shared"
)

// IncidentStatus is the lifecycle state of a maintenance incident.
type IncidentStatus int

const (
	IncidentStatusOpen IncidentStatus = iota
	IncidentStatusInProgress
	IncidentStatusResolved
)

// IsValid reports whether the status is one of the known values.
func (s IncidentStatus) IsValid() bool {
	return s >= IncidentStatusOpen && s <= IncidentStatusResolved
}

// IncidentPriority is the urgency assigned to an incident.
type IncidentPriority int

const (
	IncidentPriorityLow IncidentPriority = iota
	IncidentPriorityMedium
	IncidentPriorityHigh
)

// IsValid reports whether the priority is one of the known values.
func (p IncidentPriority) IsValid() bool {
	return p >= IncidentPriorityLow && p <= IncidentPriorityHigh
}

// IncidentCategory is the closed problem-domain catalogue.
type IncidentCategory int

const (
	IncidentCategoryPlumbing IncidentCategory = iota
	IncidentCategoryElectrical
	IncidentCategorySecurity
	IncidentCategoryHVAC
	IncidentCategoryElevator
	IncidentCategoryOther
)

// IsValid reports whether the category is one of the known values.
func (c IncidentCategory) IsValid() bool {
	return c >= IncidentCategoryPlumbing && c <= IncidentCategoryOther
}

// Incident is a maintenance request reported by a resident, optionally tied
// to a house.
type Incident struct {
	shared.BaseEntity
	Title       string           `gorm:"type:varchar(200);not null"`
	Category    IncidentCategory `gorm:"type:smallint;not null"`
	Description string           `gorm:"type:text"`
	Status      IncidentStatus   `gorm:"type:smallint;not null"`
	Priority    IncidentPriority `gorm:"type:smallint;not null"`
	ResidentID  uuid.UUID        `gorm:"type:uuid;not null;index"`
	HouseID     *uuid.UUID       `gorm:"type:uuid;index"`

	Comments []Comment `gorm:"foreignKey:IncidentID"`
}

// TableName returns the table name for GORM
func (Incident) TableName() string {
	return "incidents"
}

// NewIncident creates an open incident.
func NewIncident(residenceID, residentID uuid.UUID, houseID *uuid.UUID, title, description string, category IncidentCategory, priority IncidentPriority) *Incident {
	return &Incident{
		BaseEntity:  shared.NewBaseEntity(residenceID),
		Title:       title,
		Category:    category,
		Description: description,
		Status:      IncidentStatusOpen,
		Priority:    priority,
		ResidentID:  residentID,
		HouseID:     houseID,
	}
}

// Comment is a follow-up note on an incident. The author defaults to the
// incident's original reporter; callers do not supply one.
type Comment struct {
	shared.BaseEntity
	IncidentID uuid.UUID `gorm:"type:uuid;not null;index"`
	AuthorID   uuid.UUID `gorm:"type:uuid;not null"`
	Text       string    `gorm:"type:text;not null"`
}

// TableName returns the table name for GORM
func (Comment) TableName() string {
	return "incident_comments"
}

// NewComment adds a comment to an incident, attributed to its reporter.
func NewComment(in *Incident, text string) *Comment {
	return &Comment{
		BaseEntity: shared.NewBaseEntity(in.ResidenceID),
		IncidentID: in.ID,
		AuthorID:   in.ResidentID,
		Text:       text,
	}
}
