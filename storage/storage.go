package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/kmpicazo/HR201System/config"
)

// Store is the object-storage surface the document handlers need:
// put bytes under a key, and turn a key into a public URL.
type Store interface {
	Upload(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	PublicURL(key string) string
}

type MinioStore struct {
	client     *minio.Client
	bucket     string
	publicBase string
}

func NewMinioStore(cfg *config.Config) (*MinioStore, error) {
	client, err := minio.New(cfg.S3Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.S3AccessKey, cfg.S3SecretKey, ""),
		Secure: cfg.S3UseSSL,
	})
	if err != nil {
		return nil, err
	}
	base := cfg.S3PublicURL
	if base == "" {
		scheme := "http"
		if cfg.S3UseSSL {
			scheme = "https"
		}
		base = fmt.Sprintf("%s://%s/%s", scheme, cfg.S3Endpoint, cfg.S3Bucket)
	}
	return &MinioStore{client: client, bucket: cfg.S3Bucket, publicBase: strings.TrimRight(base, "/")}, nil
}

func (s *MinioStore) Upload(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	_, err := s.client.PutObject(ctx, s.bucket, key, r, size, minio.PutObjectOptions{
		ContentType:  contentType,
		CacheControl: "max-age=3600",
	})
	return err
}

func (s *MinioStore) PublicURL(key string) string {
	return s.publicBase + "/" + key
}
