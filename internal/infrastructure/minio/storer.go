package minio

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/url"
	"time"

	"github.com/dezh-tech/immortal/pkg/logger"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"

	"tgimg/internal/domain/entity"
)

const originalNameMeta = "Original-Name"

// Storer keeps blobs in a bucket under random object names. It stands in for
// the chat-backed store when a self-hosted backend is configured.
type Storer struct {
	minioClient *minio.Client
	cfg         StorerConfig
}

func NewStorer(minioClient *minio.Client, cfg StorerConfig) *Storer {
	return &Storer{
		minioClient: minioClient,
		cfg:         cfg,
	}
}

func (s *Storer) timeout() time.Duration {
	if s.cfg.Timeout <= 0 {
		return 30 * time.Second
	}

	return time.Duration(s.cfg.Timeout) * time.Millisecond
}

func (s *Storer) Store(ctx context.Context, blob *entity.Blob) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout())
	defer cancel()

	objectName := uuid.NewString()
	contentType := blob.Type
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := s.minioClient.PutObject(ctx, s.cfg.Bucket, objectName, bytes.NewReader(blob.Data), blob.Size(),
		minio.PutObjectOptions{
			ContentType:  contentType,
			UserMetadata: map[string]string{originalNameMeta: url.QueryEscape(blob.Name)},
		})
	if err != nil {
		logger.Error("failed to put object", "bucket", s.cfg.Bucket, "err", err)

		return "", fmt.Errorf("put object: %w", err)
	}

	return objectName, nil
}

func (s *Storer) Fetch(ctx context.Context, id string) (*entity.Blob, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout())
	defer cancel()

	obj, err := s.minioClient.GetObject(ctx, s.cfg.Bucket, id, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("get object: %w", err)
	}
	defer obj.Close()

	info, err := obj.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat object: %w", err)
	}

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("read object: %w", err)
	}

	name := id
	if original, ok := info.UserMetadata[originalNameMeta]; ok {
		if unescaped, err := url.QueryUnescape(original); err == nil {
			name = unescaped
		}
	}

	return &entity.Blob{
		Name:    name,
		Type:    info.ContentType,
		Data:    data,
		ModTime: info.LastModified,
	}, nil
}
