package storage

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/shopstack/commerce-analytics-api/internal/config"
	"github.com/shopstack/commerce-analytics-api/pkg/logger"
)

// ObjectStore wraps S3 access for export artifacts. Keys are always
// prefixed with the tenant id so artifacts stay partitioned per tenant.
type ObjectStore struct {
	client *s3.Client
	config *config.S3Config
	logger *logger.Logger
}

func NewObjectStore(client *s3.Client, cfg *config.S3Config, logger *logger.Logger) *ObjectStore {
	return &ObjectStore{
		client: client,
		config: cfg,
		logger: logger,
	}
}

// ExportKey builds the object key for an export artifact.
func ExportKey(tenantID, jobID, resource, extension string) string {
	return fmt.Sprintf("exports/%s/%s_%s.%s", tenantID, resource, jobID, extension)
}

// Upload writes an export artifact to the bucket.
func (s *ObjectStore) Upload(ctx context.Context, key string, body []byte, contentType string, tenantID string) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &s.config.BucketName,
		Key:         &key,
		Body:        bytes.NewReader(body),
		ContentType: &contentType,
		Metadata: map[string]string{
			"tenant-id":   tenantID,
			"exported-at": time.Now().Format(time.RFC3339),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to upload export to S3: %w", err)
	}

	s.logger.Infof("Uploaded export to S3: s3://%s/%s", s.config.BucketName, key)
	return nil
}
