package dto

import (
	"strings"
	"time"

	"github.com/6ixminds/labs_backend/models"
	"github.com/google/uuid"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token     string        `json:"token"`
	ExpiresAt time.Time     `json:"expiresAt"`
	Admin     AdminResponse `json:"admin"`
}

type CreateAdminRequest struct {
	FullName string `json:"fullName" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"omitempty,oneof=admin super-admin"`
}

// ToModel maps the request onto a new admin. The password must already be hashed.
func (r CreateAdminRequest) ToModel(passwordHash string) models.Admin {
	role := r.Role
	if role == "" {
		role = models.RoleAdmin
	}
	return models.Admin{
		FullName: strings.TrimSpace(r.FullName),
		Email:    strings.ToLower(strings.TrimSpace(r.Email)),
		Password: passwordHash,
		Role:     role,
		IsActive: true,
	}
}

type AdminResponse struct {
	ID        uuid.UUID `json:"id"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromAdmin(m models.Admin) AdminResponse {
	return AdminResponse{
		ID:        m.ID,
		FullName:  m.FullName,
		Email:     m.Email,
		Role:      m.Role,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
	}
}
