package storage

import (
	"context"
	"fmt"

	config "github.com/6ixminds/labs_backend/configs"
)

// ObjectStore writes binary artifacts and hands back a public URL for them.
// Put overwrites whatever already lives at container/path. Delete takes the
// content type the object was stored with, since some backends key assets by kind.
type ObjectStore interface {
	Put(ctx context.Context, container, path string, body []byte, contentType string) (string, error)
	Delete(ctx context.Context, container, path, contentType string) error
}

// New returns the object store selected by cfg.Driver.
func New(cfg config.StorageConfig) (ObjectStore, error) {
	switch cfg.Driver {
	case "cloudinary":
		return NewCloudinary(cfg.CloudinaryURL)
	case "s3":
		return NewS3(cfg)
	default:
		return nil, fmt.Errorf("storage: unknown driver %q", cfg.Driver)
	}
}

func boolPtr(b bool) *bool {
	return &b
}
