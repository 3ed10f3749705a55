package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"storefront/internal/infra/logger"

	gcs "cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

type gcsStorage struct {
	log       *logger.Logger
	client    *gcs.Client
	bucket    string
	cdnDomain string
}

// NewGCSStorage builds a client from GOOGLE_APPLICATION_CREDENTIALS(_JSON) or the
// ambient credentials.
func NewGCSStorage(ctx context.Context, log *logger.Logger, bucket string, cdnDomain string) (ImageStorage, func() error, error) {
	if bucket == "" {
		return nil, nil, fmt.Errorf("missing env var GCS_BUCKET_NAME")
	}

	opts := clientOptionsFromEnv()
	opts = append(opts, option.WithScopes(gcs.ScopeReadWrite))
	client, err := gcs.NewClient(ctx, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	log.Info("Object storage initialized", "mode", "gcs", "bucket", bucket, "cdn_domain", cdnDomain)

	return &gcsStorage{
		log:       log.With("service", "GCSStorage"),
		client:    client,
		bucket:    bucket,
		cdnDomain: strings.TrimSpace(cdnDomain),
	}, client.Close, nil
}

func clientOptionsFromEnv() []option.ClientOption {
	creds := strings.TrimSpace(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS_JSON"))
	if creds == "" {
		creds = strings.TrimSpace(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"))
	}
	if creds == "" {
		return nil
	}
	if strings.HasPrefix(creds, "{") {
		return []option.ClientOption{option.WithCredentialsJSON([]byte(creds))}
	}
	return []option.ClientOption{option.WithCredentialsFile(creds)}
}

func (s *gcsStorage) Put(ctx context.Context, name string, contentType string, r io.Reader) (string, error) {
	if err := ValidateName(name); err != nil {
		return "", err
	}
	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	w := s.client.Bucket(s.bucket).Object(name).NewWriter(ctx)
	w.ContentType = contentType
	w.CacheControl = "public, max-age=31536000"
	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("failed to write data to GCS: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("failed to close GCS writer: %w", err)
	}
	return s.PublicURL(name), nil
}

func (s *gcsStorage) Delete(ctx context.Context, name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	err := s.client.Bucket(s.bucket).Object(name).Delete(ctx)
	if errors.Is(err, gcs.ErrObjectNotExist) {
		return ErrObjectNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to delete GCS object %q in bucket %q: %w", name, s.bucket, err)
	}
	return nil
}

func (s *gcsStorage) PublicURL(name string) string {
	return gcsPublicURL(s.bucket, s.cdnDomain, name)
}

func gcsPublicURL(bucket, cdnDomain, name string) string {
	name = strings.TrimLeft(strings.TrimSpace(name), "/")
	if cdnDomain != "" {
		return fmt.Sprintf("https://%s/%s", cdnDomain, name)
	}
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", bucket, name)
}
