package kvstore

import (
	"context"

	"tgimg/internal/domain/model"
)

type RecordWriter interface {
	Write(ctx context.Context, record *model.FileRecord) error
}

type RecordRetriever interface {
	GetByKey(ctx context.Context, key string) (*model.FileRecord, error)
}
