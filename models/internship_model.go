package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Internship struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Title       string         `gorm:"size:255;not null" json:"title"`
	Description string         `gorm:"type:text;not null" json:"description"`
	Duration    string         `gorm:"size:50;not null" json:"duration"`
	Location    string         `gorm:"size:255" json:"location"`
	Mode        string         `gorm:"size:20;not null;default:'remote'" json:"mode"`
	Stipend     string         `gorm:"size:100" json:"stipend"`
	ApplyLink   string         `gorm:"type:text" json:"apply_link"`
	Skills      pq.StringArray `gorm:"type:text[]" json:"skills"`
	IsOpen      bool           `gorm:"default:true" json:"is_open"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
