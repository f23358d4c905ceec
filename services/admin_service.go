package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/6ixminds/labs_backend/auth"
	"github.com/6ixminds/labs_backend/dto"
	"github.com/6ixminds/labs_backend/models"
	"github.com/6ixminds/labs_backend/repository"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned by Login for an unknown email, a wrong
// password or a deactivated account alike.
var ErrInvalidCredentials = errors.New("invalid email or password")

type AdminService struct {
	repo   repository.AdminRepository
	tokens *auth.TokenIssuer
}

func NewAdminService(repo repository.AdminRepository, tokens *auth.TokenIssuer) *AdminService {
	return &AdminService{repo: repo, tokens: tokens}
}

func (s *AdminService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	if err := Validate(req); err != nil {
		return nil, err
	}

	admin, err := s.repo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find admin: %w", err)
	}
	if !admin.IsActive {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokens.Issue(*admin)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, ExpiresAt: expiresAt, Admin: dto.FromAdmin(*admin)}, nil
}

func (s *AdminService) List(ctx context.Context) ([]models.Admin, error) {
	admins, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list admins: %w", err)
	}
	return admins, nil
}

func (s *AdminService) Create(ctx context.Context, req dto.CreateAdminRequest) (*models.Admin, error) {
	if err := Validate(req); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	admin := req.ToModel(string(hash))
	if err := s.repo.Create(ctx, &admin); err != nil {
		return nil, mapRepoError("create admin "+admin.Email, err)
	}
	return &admin, nil
}
