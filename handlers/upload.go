package handlers

import (
	"fmt"
	"io"
	"mime/multipart"

	"github.com/6ixminds/labs_backend/services"
	"github.com/gofiber/fiber/v2"
)

// MaxArtifactSize caps every uploaded file.
const MaxArtifactSize = 5 << 20

// formArtifact reads an optional multipart file. A missing field yields
// (nil, nil); an oversized file yields a validation error.
func formArtifact(c *fiber.Ctx, field string) (*services.Artifact, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return nil, nil
	}
	return readArtifact(field, fh)
}

func readArtifact(field string, fh *multipart.FileHeader) (*services.Artifact, error) {
	if fh.Size > MaxArtifactSize {
		return nil, &services.ValidationError{
			Field:   field,
			Message: fmt.Sprintf("%s must be 5MB or smaller", field),
		}
	}

	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", field, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", field, err)
	}

	return &services.Artifact{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get(fiber.HeaderContentType),
		Data:        data,
	}, nil
}
