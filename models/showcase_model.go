package models

import (
	"time"

	"github.com/google/uuid"
)

type ShowcaseItem struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Category    string    `gorm:"size:100" json:"category"`
	ClientName  string    `gorm:"size:255" json:"client_name"`
	ImageURL    string    `gorm:"type:text" json:"image_url"`
	Link        string    `gorm:"type:text" json:"link"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (ShowcaseItem) TableName() string {
	return "showcase"
}
