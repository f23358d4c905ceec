package dto

import (
	"time"

	"github.com/6ixminds/labs_backend/models"
	"github.com/google/uuid"
)

type ShowcaseRequest struct {
	Title       *string `json:"title" form:"title" validate:"required"`
	Description *string `json:"description" form:"description"`
	Category    *string `json:"category" form:"category"`
	ClientName  *string `json:"clientName" form:"clientName"`
	Link        *string `json:"link" form:"link" validate:"omitempty,url"`
}

func (r ShowcaseRequest) ToModel() models.ShowcaseItem {
	var m models.ShowcaseItem
	r.ApplyTo(&m)
	return m
}

func (r ShowcaseRequest) ApplyTo(m *models.ShowcaseItem) {
	setString(&m.Title, r.Title)
	setString(&m.Description, r.Description)
	setString(&m.Category, r.Category)
	setString(&m.ClientName, r.ClientName)
	setString(&m.Link, r.Link)
}

type ShowcaseResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category,omitempty"`
	ClientName  string    `json:"clientName,omitempty"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	Link        string    `json:"link,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

func FromShowcaseItem(m models.ShowcaseItem) ShowcaseResponse {
	return ShowcaseResponse{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Category:    m.Category,
		ClientName:  m.ClientName,
		ImageURL:    m.ImageURL,
		Link:        m.Link,
		CreatedAt:   m.CreatedAt,
	}
}
