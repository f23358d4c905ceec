package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

// CrudRepository is the plain table access shared by the site content tables.
type CrudRepository[T any] interface {
	List(ctx context.Context, order string) ([]T, error)
	FindByID(ctx context.Context, id uuid.UUID) (*T, error)
	Create(ctx context.Context, item *T) error
	Save(ctx context.Context, item *T) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type crudRepository[T any] struct {
	db *gorm.DB
}

func NewCrudRepository[T any](db *gorm.DB) CrudRepository[T] {
	return &crudRepository[T]{db: db}
}

func (r *crudRepository[T]) List(ctx context.Context, order string) ([]T, error) {
	var items []T
	q := r.db.WithContext(ctx)
	if order != "" {
		q = q.Order(order)
	}
	if err := q.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *crudRepository[T]) FindByID(ctx context.Context, id uuid.UUID) (*T, error) {
	var item T
	if err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &item, nil
}

func (r *crudRepository[T]) Create(ctx context.Context, item *T) error {
	return translate(r.db.WithContext(ctx).Create(item).Error)
}

func (r *crudRepository[T]) Save(ctx context.Context, item *T) error {
	return translate(r.db.WithContext(ctx).Save(item).Error)
}

func (r *crudRepository[T]) Delete(ctx context.Context, id uuid.UUID) error {
	var item T
	res := r.db.WithContext(ctx).Delete(&item, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// translate maps gorm sentinel errors onto the repository ones. The
// connection must be opened with TranslateError for ErrDuplicatedKey.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	default:
		return err
	}
}
