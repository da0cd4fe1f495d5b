package storage

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/clynicx/portal-service/internal/config"
	"github.com/clynicx/portal-service/internal/core/ports"
)

// MinioReports serves report files from a MinIO bucket through
// presigned GET URLs.
type MinioReports struct {
	client *minio.Client
	bucket string
	ttl    time.Duration
}

var _ ports.ReportStorage = (*MinioReports)(nil)

func NewMinioReports(cfg config.MinioConfig) (*MinioReports, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		// A fixed region lets presigning skip the bucket location lookup.
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("init minio client: %w", err)
	}
	return &MinioReports{client: client, bucket: cfg.Bucket, ttl: cfg.URLTTL}, nil
}

func (m *MinioReports) PresignReport(ctx context.Context, objectKey string) (string, error) {
	params := url.Values{}
	params.Set("response-content-disposition", fmt.Sprintf("attachment; filename=%q", objectKey))

	u, err := m.client.PresignedGetObject(ctx, m.bucket, objectKey, m.ttl, params)
	if err != nil {
		return "", fmt.Errorf("presign %s/%s: %w", m.bucket, objectKey, err)
	}
	return u.String(), nil
}
