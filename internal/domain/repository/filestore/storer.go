package filestore

import (
	"context"

	"tgimg/internal/domain/entity"
)

// Storer persists a blob and returns the backend-assigned identifier.
type Storer interface {
	Store(ctx context.Context, blob *entity.Blob) (string, error)
}

type Fetcher interface {
	Fetch(ctx context.Context, id string) (*entity.Blob, error)
}
