package dto

import (
	"time"

	"github.com/6ixminds/labs_backend/models"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// InternshipRequest is used for create and update. On update only the
// fields present in the body are applied.
type InternshipRequest struct {
	Title       *string  `json:"title" form:"title" validate:"required"`
	Description *string  `json:"description" form:"description" validate:"required"`
	Duration    *string  `json:"duration" form:"duration" validate:"required"`
	Location    *string  `json:"location" form:"location"`
	Mode        *string  `json:"mode" form:"mode" validate:"omitempty,oneof=remote onsite hybrid"`
	Stipend     *string  `json:"stipend" form:"stipend"`
	ApplyLink   *string  `json:"applyLink" form:"applyLink" validate:"omitempty,url"`
	Skills      []string `json:"skills" form:"skills"`
	IsOpen      *bool    `json:"isOpen" form:"isOpen"`
}

func (r InternshipRequest) ToModel() models.Internship {
	m := models.Internship{Mode: "remote", IsOpen: true}
	r.ApplyTo(&m)
	return m
}

func (r InternshipRequest) ApplyTo(m *models.Internship) {
	setString(&m.Title, r.Title)
	setString(&m.Description, r.Description)
	setString(&m.Duration, r.Duration)
	setString(&m.Location, r.Location)
	setString(&m.Mode, r.Mode)
	setString(&m.Stipend, r.Stipend)
	setString(&m.ApplyLink, r.ApplyLink)
	if r.Skills != nil {
		m.Skills = pq.StringArray(r.Skills)
	}
	if r.IsOpen != nil {
		m.IsOpen = *r.IsOpen
	}
}

type InternshipResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Duration    string    `json:"duration"`
	Location    string    `json:"location,omitempty"`
	Mode        string    `json:"mode"`
	Stipend     string    `json:"stipend,omitempty"`
	ApplyLink   string    `json:"applyLink,omitempty"`
	Skills      []string  `json:"skills"`
	IsOpen      bool      `json:"isOpen"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func FromInternship(m models.Internship) InternshipResponse {
	return InternshipResponse{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Duration:    m.Duration,
		Location:    m.Location,
		Mode:        m.Mode,
		Stipend:     m.Stipend,
		ApplyLink:   m.ApplyLink,
		Skills:      nonNil(m.Skills),
		IsOpen:      m.IsOpen,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
