package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"tgimg/internal/domain/model"
	"tgimg/internal/domain/repository/kvstore"
)

type SettingsStore struct {
	db *Database
}

func NewSettingsStore(db *Database) *SettingsStore {
	return &SettingsStore{db: db}
}

func (s *SettingsStore) Get(ctx context.Context) (*model.Settings, error) {
	doc, err := s.db.get(ctx, s.db.SettingsKey)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, kvstore.ErrNotFound
		}

		return nil, err
	}

	settings := &model.Settings{}
	if err := json.Unmarshal([]byte(doc.Value), settings); err != nil {
		return nil, fmt.Errorf("decode settings: %w", err)
	}

	return settings, nil
}

func (s *SettingsStore) Put(ctx context.Context, settings *model.Settings) error {
	raw, err := json.Marshal(settings)
	if err != nil {
		return err
	}

	return s.db.put(ctx, &kvDocument{
		Key:       s.db.SettingsKey,
		Value:     string(raw),
		UpdatedAt: time.Now(),
	})
}
