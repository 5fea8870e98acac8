package kvstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"tgimg/internal/domain/model"
	repository "tgimg/internal/domain/repository/kvstore"
)

type RecordWriter struct {
	client *Client
}

func NewRecordWriter(client *Client) *RecordWriter {
	return &RecordWriter{client: client}
}

func (w *RecordWriter) Write(ctx context.Context, record *model.FileRecord) error {
	raw, err := json.Marshal(record.Metadata)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, w.client.queryTimeout)
	defer cancel()

	return w.client.redis.Set(ctx, w.client.key(record.Key), raw, 0).Err()
}

type RecordRetriever struct {
	client *Client
}

func NewRecordRetriever(client *Client) *RecordRetriever {
	return &RecordRetriever{client: client}
}

func (r *RecordRetriever) GetByKey(ctx context.Context, key string) (*model.FileRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, r.client.queryTimeout)
	defer cancel()

	raw, err := r.client.redis.Get(ctx, r.client.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, repository.ErrNotFound
		}

		return nil, err
	}

	record := &model.FileRecord{Key: key}
	if err := json.Unmarshal(raw, &record.Metadata); err != nil {
		return nil, fmt.Errorf("decode file record %s: %w", key, err)
	}

	return record, nil
}
