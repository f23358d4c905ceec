package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/6ixminds/labs_backend/storage"
	"github.com/google/uuid"
)

// MediaService uploads the images attached to site content.
type MediaService struct {
	store     storage.ObjectStore
	container string
}

func NewMediaService(store storage.ObjectStore, container string) *MediaService {
	return &MediaService{store: store, container: container}
}

// StoredImage is an uploaded content image.
type StoredImage struct {
	URL         string
	Path        string
	ContentType string
}

// Upload stores a under "{kind}-{uuid}.{ext}".
func (s *MediaService) Upload(ctx context.Context, kind string, a *Artifact) (*StoredImage, error) {
	path := fmt.Sprintf("%s-%s.%s", kind, uuid.NewString(), a.extension())
	url, err := s.store.Put(ctx, s.container, path, a.Data, a.ContentType)
	if err != nil {
		return nil, fmt.Errorf("upload %s image: %w", kind, err)
	}
	return &StoredImage{URL: url, Path: path, ContentType: a.ContentType}, nil
}

// Discard removes an image whose record was never saved. Failures are logged.
func (s *MediaService) Discard(ctx context.Context, img *StoredImage) {
	if img == nil {
		return
	}
	if err := s.store.Delete(ctx, s.container, img.Path, img.ContentType); err != nil {
		slog.Error("failed to remove orphaned image", "container", s.container, "path", img.Path, "error", err)
	}
}
