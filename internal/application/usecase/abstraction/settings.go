package abstraction

import (
	"context"

	"tgimg/internal/domain/model"
)

type SettingsManager interface {
	Get(ctx context.Context) (*model.Settings, error)
	Put(ctx context.Context, settings *model.Settings) error
}
