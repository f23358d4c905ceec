package dto

import (
	"time"

	"github.com/6ixminds/labs_backend/models"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type ProjectRequest struct {
	Title       *string  `json:"title" form:"title" validate:"required"`
	Description *string  `json:"description" form:"description" validate:"required"`
	Category    *string  `json:"category" form:"category"`
	LiveURL     *string  `json:"liveUrl" form:"liveUrl" validate:"omitempty,url"`
	RepoURL     *string  `json:"repoUrl" form:"repoUrl" validate:"omitempty,url"`
	TechStack   []string `json:"techStack" form:"techStack"`
	Featured    *bool    `json:"featured" form:"featured"`
}

func (r ProjectRequest) ToModel() models.Project {
	var m models.Project
	r.ApplyTo(&m)
	return m
}

func (r ProjectRequest) ApplyTo(m *models.Project) {
	setString(&m.Title, r.Title)
	setString(&m.Description, r.Description)
	setString(&m.Category, r.Category)
	setString(&m.LiveURL, r.LiveURL)
	setString(&m.RepoURL, r.RepoURL)
	if r.TechStack != nil {
		m.TechStack = pq.StringArray(r.TechStack)
	}
	if r.Featured != nil {
		m.Featured = *r.Featured
	}
}

type ProjectResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category,omitempty"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	LiveURL     string    `json:"liveUrl,omitempty"`
	RepoURL     string    `json:"repoUrl,omitempty"`
	TechStack   []string  `json:"techStack"`
	Featured    bool      `json:"featured"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func FromProject(m models.Project) ProjectResponse {
	return ProjectResponse{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Category:    m.Category,
		ImageURL:    m.ImageURL,
		LiveURL:     m.LiveURL,
		RepoURL:     m.RepoURL,
		TechStack:   nonNil(m.TechStack),
		Featured:    m.Featured,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
