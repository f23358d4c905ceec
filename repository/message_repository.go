package repository

import (
	"context"

	"github.com/6ixminds/labs_backend/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MessageRepository interface {
	CrudRepository[models.Message]
	MarkRead(ctx context.Context, id uuid.UUID) error
	CountUnread(ctx context.Context) (int64, error)
}

type messageRepository struct {
	CrudRepository[models.Message]
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{
		CrudRepository: NewCrudRepository[models.Message](db),
		db:             db,
	}
}

func (r *messageRepository) MarkRead(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Model(&models.Message{}).Where("id = ?", id).Update("is_read", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *messageRepository) CountUnread(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Message{}).Where("is_read = ?", false).Count(&count).Error
	return count, err
}
