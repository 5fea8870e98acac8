package database

import (
	"context"
	"time"

	"tgimg/internal/domain/model"
)

type RecordWriter struct {
	db *Database
}

func NewRecordWriter(db *Database) *RecordWriter {
	return &RecordWriter{db: db}
}

func (w *RecordWriter) Write(ctx context.Context, record *model.FileRecord) error {
	metadata := record.Metadata

	return w.db.put(ctx, &kvDocument{
		Key:       record.Key,
		Value:     "",
		Metadata:  &metadata,
		UpdatedAt: time.Now(),
	})
}
