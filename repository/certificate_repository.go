package repository

import (
	"context"

	"github.com/6ixminds/labs_backend/models"
	"gorm.io/gorm"
)

type CertificateRepository interface {
	CountByPrefix(ctx context.Context, prefix string) (int64, error)
	Exists(ctx context.Context, certificateID string) (bool, error)
	FindByCertificateID(ctx context.Context, certificateID string) (*models.Certificate, error)
	List(ctx context.Context) ([]models.Certificate, error)
	Create(ctx context.Context, cert *models.Certificate) error
	Save(ctx context.Context, cert *models.Certificate) error
	DeleteByCertificateID(ctx context.Context, certificateID string) error
}

type certificateRepository struct {
	db *gorm.DB
}

func NewCertificateRepository(db *gorm.DB) CertificateRepository {
	return &certificateRepository{db: db}
}

func (r *certificateRepository) CountByPrefix(ctx context.Context, prefix string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Certificate{}).
		Where("certificate_id LIKE ?", prefix+"%").
		Count(&count).Error
	return count, err
}

func (r *certificateRepository) Exists(ctx context.Context, certificateID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Certificate{}).
		Where("certificate_id = ?", certificateID).
		Count(&count).Error
	return count > 0, err
}

func (r *certificateRepository) FindByCertificateID(ctx context.Context, certificateID string) (*models.Certificate, error) {
	var cert models.Certificate
	if err := r.db.WithContext(ctx).Where("certificate_id = ?", certificateID).First(&cert).Error; err != nil {
		return nil, translate(err)
	}
	return &cert, nil
}

func (r *certificateRepository) List(ctx context.Context) ([]models.Certificate, error) {
	var certs []models.Certificate
	if err := r.db.WithContext(ctx).Order("created_at desc").Find(&certs).Error; err != nil {
		return nil, err
	}
	return certs, nil
}

func (r *certificateRepository) Create(ctx context.Context, cert *models.Certificate) error {
	return translate(r.db.WithContext(ctx).Create(cert).Error)
}

func (r *certificateRepository) Save(ctx context.Context, cert *models.Certificate) error {
	return translate(r.db.WithContext(ctx).Save(cert).Error)
}

func (r *certificateRepository) DeleteByCertificateID(ctx context.Context, certificateID string) error {
	res := r.db.WithContext(ctx).Where("certificate_id = ?", certificateID).Delete(&models.Certificate{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
