package usecase

import (
	"context"
	"errors"

	"github.com/dezh-tech/immortal/pkg/logger"

	"tgimg/internal/domain/apperror"
	"tgimg/internal/domain/entity"
	"tgimg/internal/domain/repository/filestore"
	"tgimg/internal/domain/repository/kvstore"
	"tgimg/pkg/utils"
)

type FileGetter struct {
	settings  kvstore.SettingsStore
	retriever kvstore.RecordRetriever
	fetcher   filestore.Fetcher
}

func NewFileGetter(settings kvstore.SettingsStore, retriever kvstore.RecordRetriever,
	fetcher filestore.Fetcher,
) *FileGetter {
	return &FileGetter{
		settings:  settings,
		retriever: retriever,
		fetcher:   fetcher,
	}
}

// Get fetches a stored file by its public name. Non-admin callers are refused
// when public access is turned off.
func (g *FileGetter) Get(ctx context.Context, name string, admin bool) (*entity.Blob, error) {
	id := utils.TrimExtension(name)
	if id == "" {
		return nil, apperror.New(apperror.KindValidation, "file name is required")
	}

	if !admin && g.settings != nil {
		settings, err := g.settings.Get(ctx)
		switch {
		case err == nil && !settings.AccessPublic:
			return nil, apperror.New(apperror.KindPolicy, "Public access is disabled")
		case err != nil && !errors.Is(err, kvstore.ErrNotFound):
			logger.Warn("failed to read settings, using defaults", "err", err)
		}
	}

	blob, err := g.fetcher.Fetch(ctx, id)
	if err != nil {
		return nil, apperror.Wrap(apperror.KindStore, "file not found", err)
	}

	blob.Name = g.originalName(ctx, name)

	return blob, nil
}

// originalName returns the uploaded file name recorded for key, or key itself.
func (g *FileGetter) originalName(ctx context.Context, key string) string {
	if g.retriever == nil {
		return key
	}

	record, err := g.retriever.GetByKey(ctx, key)
	if err != nil || record.Metadata.FileName == "" {
		return key
	}

	return record.Metadata.FileName
}
