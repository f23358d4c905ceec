package models

import (
	"time"

	"github.com/google/uuid"
)

type TeamMember struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name         string    `gorm:"size:255;not null" json:"name"`
	Role         string    `gorm:"size:255;not null" json:"role"`
	Bio          string    `gorm:"type:text" json:"bio"`
	PhotoURL     string    `gorm:"type:text" json:"photo_url"`
	LinkedInURL  string    `gorm:"column:linkedin_url;type:text" json:"linkedin_url"`
	GithubURL    string    `gorm:"type:text" json:"github_url"`
	DisplayOrder int       `gorm:"default:0" json:"display_order"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
