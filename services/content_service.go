package services

import (
	"context"
	"fmt"

	"github.com/6ixminds/labs_backend/repository"
	"github.com/google/uuid"
)

// ContentService is the plain CRUD shared by the public site sections
// (internships, projects, team, showcase).
type ContentService[T any] struct {
	repo  repository.CrudRepository[T]
	name  string
	order string
}

func NewContentService[T any](repo repository.CrudRepository[T], name, order string) *ContentService[T] {
	return &ContentService[T]{repo: repo, name: name, order: order}
}

func (s *ContentService[T]) List(ctx context.Context) ([]T, error) {
	items, err := s.repo.List(ctx, s.order)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", s.name, err)
	}
	return items, nil
}

func (s *ContentService[T]) Get(ctx context.Context, id uuid.UUID) (*T, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.wrap("get", id, err)
	}
	return item, nil
}

func (s *ContentService[T]) Create(ctx context.Context, item *T) error {
	if err := s.repo.Create(ctx, item); err != nil {
		return mapRepoError("create "+s.name, err)
	}
	return nil
}

// Update loads the item, lets apply mutate it and saves the result.
func (s *ContentService[T]) Update(ctx context.Context, id uuid.UUID, apply func(*T)) (*T, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.wrap("update", id, err)
	}

	apply(item)

	if err := s.repo.Save(ctx, item); err != nil {
		return nil, s.wrap("update", id, err)
	}
	return item, nil
}

func (s *ContentService[T]) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return s.wrap("delete", id, err)
	}
	return nil
}

func (s *ContentService[T]) wrap(op string, id uuid.UUID, err error) error {
	return mapRepoError(fmt.Sprintf("%s %s %s", op, s.name, id), err)
}
