package kvstore

import (
	"context"
	"errors"

	"tgimg/internal/domain/model"
)

var ErrNotFound = errors.New("key not found")

// SettingsStore reads and replaces the settings record. Get returns ErrNotFound
// when nothing has been written yet.
type SettingsStore interface {
	Get(ctx context.Context) (*model.Settings, error)
	Put(ctx context.Context, settings *model.Settings) error
}
