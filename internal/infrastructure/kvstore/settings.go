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

type SettingsStore struct {
	client *Client
}

func NewSettingsStore(client *Client) *SettingsStore {
	return &SettingsStore{client: client}
}

func (s *SettingsStore) Get(ctx context.Context) (*model.Settings, error) {
	ctx, cancel := context.WithTimeout(ctx, s.client.queryTimeout)
	defer cancel()

	raw, err := s.client.redis.Get(ctx, s.client.key(s.client.settingsKey)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, repository.ErrNotFound
		}

		return nil, err
	}

	settings := &model.Settings{}
	if err := json.Unmarshal(raw, settings); err != nil {
		return nil, fmt.Errorf("decode settings: %w", err)
	}

	return settings, nil
}

// Put replaces the whole record.
func (s *SettingsStore) Put(ctx context.Context, settings *model.Settings) error {
	raw, err := json.Marshal(settings)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, s.client.queryTimeout)
	defer cancel()

	return s.client.redis.Set(ctx, s.client.key(s.client.settingsKey), raw, 0).Err()
}
