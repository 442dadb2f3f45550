package report

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"ams-coverage/core/storage"

	"github.com/minio/minio-go/v7"
)

// WriteFile writes doc to path, replacing any previous report.
// A failed write leaves the previous report untouched.
func WriteFile(path string, doc []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create report directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".report-*")
	if err != nil {
		return fmt.Errorf("failed to create temporary report: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(doc); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write report: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("failed to set report permissions: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to replace report %s: %w", path, err)
	}
	return nil
}

// Publisher uploads reports to an object storage bucket.
type Publisher struct {
	client storage.Client
	bucket string
	region string
}

// NewPublisher creates a publisher for bucket.
func NewPublisher(client storage.Client, bucket, region string) *Publisher {
	return &Publisher{client: client, bucket: bucket, region: region}
}

// Publish uploads doc under objectName, creating the bucket if needed.
func (p *Publisher) Publish(ctx context.Context, objectName string, doc []byte, contentType string) (minio.UploadInfo, error) {
	if err := storage.EnsureBucket(ctx, p.client, p.bucket, p.region); err != nil {
		return minio.UploadInfo{}, err
	}

	info, err := p.client.PutObject(ctx, p.bucket, objectName, bytes.NewReader(doc), int64(len(doc)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return minio.UploadInfo{}, fmt.Errorf("failed to publish report to %s/%s: %w", p.bucket, objectName, err)
	}
	return info, nil
}
