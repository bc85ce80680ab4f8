package filestorage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/techbuddyspace/certify/internal/config"
)

func NewMinioClient(cfg *config.MinioConfig) (*minio.Client, error) {
	return minio.New(cfg.ENDPOINT, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.ACCESS_KEY, cfg.SECRET_KEY, ""),
		Secure: cfg.USE_SSL,
		Region: "us-east-1",
	})
}

// MinioProvider implements Provider on top of a MinIO (or any S3-compatible)
// bucket. The bucket is created lazily on first upload.
type MinioProvider struct {
	client *minio.Client
	bucket string
}

var _ Provider = (*MinioProvider)(nil)

func NewMinioProvider(client *minio.Client, bucket string) *MinioProvider {
	return &MinioProvider{client: client, bucket: bucket}
}

func (m *MinioProvider) ensureBucket(ctx context.Context) error {
	exists, err := m.client.BucketExists(ctx, m.bucket)
	if err != nil {
		return err
	}

	if !exists {
		if err := m.client.MakeBucket(ctx, m.bucket, minio.MakeBucketOptions{}); err != nil {
			return err
		}
	}

	return nil
}

func (m *MinioProvider) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	if err := m.ensureBucket(ctx); err != nil {
		return "", fmt.Errorf("failed to create bucket: %w", err)
	}

	info, err := m.client.PutObject(
		ctx,
		m.bucket,
		key,
		bytes.NewReader(data),
		int64(len(data)),
		minio.PutObjectOptions{
			ContentType: contentType,
		},
	)
	if err != nil {
		return "", fmt.Errorf("failed to upload object to S3: %w", err)
	}

	return info.Key, nil
}

func (m *MinioProvider) Download(ctx context.Context, key string) ([]byte, error) {
	object, err := m.client.GetObject(ctx, m.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get object from S3: %w", err)
	}
	defer object.Close()

	data, err := io.ReadAll(object)
	if err != nil {
		return nil, fmt.Errorf("failed to read object from S3: %w", err)
	}

	return data, nil
}

func (m *MinioProvider) Delete(ctx context.Context, key string) error {
	return m.client.RemoveObject(ctx, m.bucket, key, minio.RemoveObjectOptions{})
}

func (m *MinioProvider) ResolveURL(ctx context.Context, key string) (string, error) {
	// 60min expiration time
	presignedURL, err := m.client.PresignedGetObject(
		ctx,
		m.bucket,
		key,
		time.Duration(60)*time.Minute,
		url.Values{},
	)
	if err != nil {
		return "", err
	}

	return presignedURL.String(), nil
}
