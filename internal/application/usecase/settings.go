package usecase

import (
	"context"
	"errors"

	"tgimg/internal/domain/apperror"
	"tgimg/internal/domain/model"
	"tgimg/internal/domain/repository/kvstore"
)

type SettingsManager struct {
	store kvstore.SettingsStore
}

func NewSettingsManager(store kvstore.SettingsStore) *SettingsManager {
	return &SettingsManager{
		store: store,
	}
}

// Get returns the stored settings, or the defaults when none were saved.
func (m *SettingsManager) Get(ctx context.Context) (*model.Settings, error) {
	settings, err := m.store.Get(ctx)
	if errors.Is(err, kvstore.ErrNotFound) {
		return model.DefaultSettings(), nil
	}
	if err != nil {
		return nil, apperror.Wrap(apperror.KindPersistence, "failed to read settings", err)
	}

	return settings, nil
}

// Put replaces the whole record.
func (m *SettingsManager) Put(ctx context.Context, settings *model.Settings) error {
	if settings == nil {
		return apperror.New(apperror.KindValidation, "settings body is required")
	}

	if settings.UploadLimit < 0 {
		return apperror.New(apperror.KindValidation, "uploadLimit must not be negative")
	}

	if err := m.store.Put(ctx, settings); err != nil {
		return apperror.Wrap(apperror.KindPersistence, "failed to save settings", err)
	}

	return nil
}
