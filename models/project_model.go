package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Project struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Title       string         `gorm:"size:255;not null" json:"title"`
	Description string         `gorm:"type:text;not null" json:"description"`
	Category    string         `gorm:"size:100" json:"category"`
	ImageURL    string         `gorm:"type:text" json:"image_url"`
	LiveURL     string         `gorm:"type:text" json:"live_url"`
	RepoURL     string         `gorm:"type:text" json:"repo_url"`
	TechStack   pq.StringArray `gorm:"type:text[]" json:"tech_stack"`
	Featured    bool           `gorm:"default:false" json:"featured"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
