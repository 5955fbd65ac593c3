package storage

import (
	"bytes"
	"context"
	"fmt"
	"log"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/meetsum/meeting-summarizer/pkg/config"
)

// MinIOClient archives uploaded transcript files in object storage.
// Archival is best-effort; processing never depends on the stored copy.
type MinIOClient struct {
	client     *minio.Client
	bucketName string
}

// NewMinIOClient creates a new MinIO client and ensures the bucket exists
func NewMinIOClient(cfg *config.StorageConfig) (*MinIOClient, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	mc := &MinIOClient{
		client:     client,
		bucketName: cfg.BucketName,
	}

	if err := mc.ensureBucket(context.Background()); err != nil {
		return nil, err
	}

	log.Printf("✅ Object storage connected (bucket: %s)", cfg.BucketName)

	return mc, nil
}

func (m *MinIOClient) ensureBucket(ctx context.Context) error {
	exists, err := m.client.BucketExists(ctx, m.bucketName)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}

	if !exists {
		if err := m.client.MakeBucket(ctx, m.bucketName, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
		log.Printf("✅ Created bucket: %s", m.bucketName)
	}

	return nil
}

// Store uploads the raw file bytes under the given object key and returns
// the object's storage path
func (m *MinIOClient) Store(ctx context.Context, objectKey string, data []byte, contentType string) (string, error) {
	_, err := m.client.PutObject(ctx, m.bucketName, objectKey,
		bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", fmt.Errorf("failed to store object %s: %w", objectKey, err)
	}

	return fmt.Sprintf("%s/%s", m.bucketName, objectKey), nil
}

// Remove deletes an archived object
func (m *MinIOClient) Remove(ctx context.Context, objectKey string) error {
	if err := m.client.RemoveObject(ctx, m.bucketName, objectKey, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to remove object %s: %w", objectKey, err)
	}
	return nil
}
