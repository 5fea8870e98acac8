package database

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"

	"tgimg/internal/domain/model"
	"tgimg/internal/domain/repository/kvstore"
)

type RecordRetriever struct {
	db *Database
}

func NewRecordRetriever(db *Database) *RecordRetriever {
	return &RecordRetriever{db: db}
}

func (r *RecordRetriever) GetByKey(ctx context.Context, key string) (*model.FileRecord, error) {
	doc, err := r.db.get(ctx, key)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, kvstore.ErrNotFound
		}

		return nil, err
	}

	record := &model.FileRecord{Key: doc.Key}
	if doc.Metadata != nil {
		record.Metadata = *doc.Metadata
	}

	return record, nil
}
