package adapters

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/minio/minio-go/v7"

	"github.com/pos-payments/backend/internal/application/adapter"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// minioReportStorage implements adapter.ReportStorage on an S3-compatible
// object store.
type minioReportStorage struct {
	client *minio.Client
	bucket string
	prefix string
}

// NewMinioReportStorage creates a new object store backed report storage.
func NewMinioReportStorage(client *minio.Client, bucket, prefix string) adapter.ReportStorage {
	return &minioReportStorage{
		client: client,
		bucket: bucket,
		prefix: prefix,
	}
}

// Save uploads the report and returns its object key.
func (s *minioReportStorage) Save(ctx context.Context, fileName string, data []byte) (string, error) {
	key := s.prefix + fileName

	reader := bytes.NewReader(data)
	_, err := s.client.PutObject(ctx, s.bucket, key, reader, int64(len(data)), minio.PutObjectOptions{
		ContentType: xlsxContentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload report %q: %w", key, err)
	}

	return key, nil
}

// TemporaryURL returns a presigned download URL valid for the given TTL.
func (s *minioReportStorage) TemporaryURL(ctx context.Context, key string, ttl time.Duration) (string, error) {
	u, err := s.client.PresignedGetObject(ctx, s.bucket, key, ttl, nil)
	if err != nil {
		return "", fmt.Errorf("failed to presign report %q: %w", key, err)
	}
	return u.String(), nil
}
