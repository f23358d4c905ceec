package storage

import (
	"bytes"
	"context"
	"fmt"
	"net/url"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	config "github.com/6ixminds/labs_backend/configs"
)

// S3 stores artifacts in an S3-compatible service (Supabase storage, MinIO,
// AWS). Containers are buckets; objects are served from PublicBaseURL.
type S3 struct {
	client        *s3.Client
	publicBaseURL string
}

func NewS3(cfg config.StorageConfig) (*S3, error) {
	if cfg.S3Endpoint == "" {
		return nil, fmt.Errorf("s3: endpoint is required")
	}

	awsCfg, err := awscfg.LoadDefaultConfig(context.Background(),
		awscfg.WithRegion(cfg.S3Region),
		awscfg.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKeyID,
			cfg.S3SecretAccessKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("s3: load config: %w", err)
	}

	cli := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.S3Endpoint)
		o.UsePathStyle = true
	})

	return &S3{client: cli, publicBaseURL: cfg.S3PublicBaseURL}, nil
}

func (s *S3) Put(ctx context.Context, container, path string, body []byte, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(container),
		Key:           aws.String(path),
		Body:          bytes.NewReader(body),
		ContentLength: aws.Int64(int64(len(body))),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("s3 upload %q: %w", path, err)
	}
	return publicObjectURL(s.publicBaseURL, container, path), nil
}

func (s *S3) Delete(ctx context.Context, container, path, contentType string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(container),
		Key:    aws.String(path),
	})
	if err != nil {
		return fmt.Errorf("s3 delete %q: %w", path, err)
	}
	return nil
}

func publicObjectURL(base, container, path string) string {
	return fmt.Sprintf("%s/%s/%s", base, url.PathEscape(container), url.PathEscape(path))
}
