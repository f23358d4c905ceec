package models

import (
	"time"

	"github.com/google/uuid"
)

// Message is a contact-form submission from the public site.
type Message struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name    string    `gorm:"size:255;not null" json:"name"`
	Email   string    `gorm:"size:255;not null" json:"email"`
	Phone   string    `gorm:"size:50" json:"phone"`
	Subject string    `gorm:"size:255" json:"subject"`
	Body    string    `gorm:"column:message;type:text;not null" json:"message"`
	IsRead  bool      `gorm:"default:false;index" json:"is_read"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
