package abstraction

import (
	"context"

	"tgimg/internal/domain/entity"
)

// FileGetter resolves a public file name ("<id>.<ext>") to the stored blob.
type FileGetter interface {
	Get(ctx context.Context, name string, admin bool) (*entity.Blob, error)
}
