package dto

import (
	"github.com/6ixminds/labs_backend/models"
	"github.com/google/uuid"
)

type TeamMemberRequest struct {
	Name         *string `json:"name" form:"name" validate:"required"`
	Role         *string `json:"role" form:"role" validate:"required"`
	Bio          *string `json:"bio" form:"bio"`
	LinkedInURL  *string `json:"linkedinUrl" form:"linkedinUrl" validate:"omitempty,url"`
	GithubURL    *string `json:"githubUrl" form:"githubUrl" validate:"omitempty,url"`
	DisplayOrder *int    `json:"displayOrder" form:"displayOrder"`
}

func (r TeamMemberRequest) ToModel() models.TeamMember {
	var m models.TeamMember
	r.ApplyTo(&m)
	return m
}

func (r TeamMemberRequest) ApplyTo(m *models.TeamMember) {
	setString(&m.Name, r.Name)
	setString(&m.Role, r.Role)
	setString(&m.Bio, r.Bio)
	setString(&m.LinkedInURL, r.LinkedInURL)
	setString(&m.GithubURL, r.GithubURL)
	if r.DisplayOrder != nil {
		m.DisplayOrder = *r.DisplayOrder
	}
}

type TeamMemberResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Role         string    `json:"role"`
	Bio          string    `json:"bio,omitempty"`
	PhotoURL     string    `json:"photoUrl,omitempty"`
	LinkedInURL  string    `json:"linkedinUrl,omitempty"`
	GithubURL    string    `json:"githubUrl,omitempty"`
	DisplayOrder int       `json:"displayOrder"`
}

func FromTeamMember(m models.TeamMember) TeamMemberResponse {
	return TeamMemberResponse{
		ID:           m.ID,
		Name:         m.Name,
		Role:         m.Role,
		Bio:          m.Bio,
		PhotoURL:     m.PhotoURL,
		LinkedInURL:  m.LinkedInURL,
		GithubURL:    m.GithubURL,
		DisplayOrder: m.DisplayOrder,
	}
}
