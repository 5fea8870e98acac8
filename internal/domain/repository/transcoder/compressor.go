package transcoder

import (
	"context"

	"tgimg/internal/domain/entity"
	"tgimg/internal/domain/model"
)

type Compressor interface {
	Compress(ctx context.Context, blob *entity.Blob, kind model.MediaKind,
		preset model.Preset) (*entity.CompressionResult, error)
}
