package storage

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

type Cloudinary struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinary(url string) (*Cloudinary, error) {
	cld, err := cloudinary.NewFromURL(url)
	if err != nil {
		return nil, fmt.Errorf("cloudinary: init: %w", err)
	}
	return &Cloudinary{cld: cld}, nil
}

func (s *Cloudinary) Put(ctx context.Context, container, path string, body []byte, contentType string) (string, error) {
	publicID, resourceType := cloudinaryAsset(path, contentType)

	res, err := s.cld.Upload.Upload(ctx, bytes.NewReader(body), uploader.UploadParams{
		Folder:       container,
		PublicID:     publicID,
		ResourceType: resourceType,
		Overwrite:    boolPtr(true),
		Invalidate:   boolPtr(true),
	})
	if err != nil {
		return "", fmt.Errorf("cloudinary upload %q: %w", path, err)
	}
	if res.Error.Message != "" {
		return "", fmt.Errorf("cloudinary upload %q: %s", path, res.Error.Message)
	}
	return res.SecureURL, nil
}

func (s *Cloudinary) Delete(ctx context.Context, container, path, contentType string) error {
	publicID, resourceType := cloudinaryAsset(path, contentType)

	res, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID:     container + "/" + publicID,
		ResourceType: resourceType,
		Invalidate:   boolPtr(true),
	})
	if err != nil {
		return fmt.Errorf("cloudinary delete %q: %w", path, err)
	}
	if res.Error.Message != "" {
		return fmt.Errorf("cloudinary delete %q: %s", path, res.Error.Message)
	}
	return nil
}

// cloudinaryAsset maps a storage path onto a Cloudinary public ID and
// resource type. Images and PDFs are "image" assets whose public ID drops
// the extension; everything else is stored "raw" with the extension kept.
// An empty contentType is inferred from the extension.
func cloudinaryAsset(path, contentType string) (publicID, resourceType string) {
	ext := filepath.Ext(path)
	if contentType == "" {
		contentType = contentTypeFromExt(ext)
	}

	switch {
	case strings.HasPrefix(contentType, "image/"), contentType == "application/pdf":
		return strings.TrimSuffix(path, ext), "image"
	case strings.HasPrefix(contentType, "video/"):
		return strings.TrimSuffix(path, ext), "video"
	default:
		return path, "raw"
	}
}

func contentTypeFromExt(ext string) string {
	switch strings.ToLower(ext) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".webp":
		return "image/webp"
	case ".gif":
		return "image/gif"
	case ".heic":
		return "image/heic"
	case ".heif":
		return "image/heif"
	case ".avif":
		return "image/avif"
	case ".svg":
		return "image/svg+xml"
	case ".bmp":
		return "image/bmp"
	case ".tif", ".tiff":
		return "image/tiff"
	case ".pdf":
		return "application/pdf"
	case ".mp4":
		return "video/mp4"
	case ".webm":
		return "video/webm"
	case ".mov":
		return "video/quicktime"
	default:
		return "application/octet-stream"
	}
}
