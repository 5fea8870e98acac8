package usecase

import (
	"context"
	"errors"
	"sync"

	"tgimg/internal/domain/entity"
	"tgimg/internal/domain/model"
	"tgimg/internal/domain/repository/kvstore"
)

type fakeSettings struct {
	settings *model.Settings
	err      error
	puts     []*model.Settings
}

func (f *fakeSettings) Get(context.Context) (*model.Settings, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.settings == nil {
		return nil, kvstore.ErrNotFound
	}

	return f.settings, nil
}

func (f *fakeSettings) Put(_ context.Context, s *model.Settings) error {
	if f.err != nil {
		return f.err
	}
	f.puts = append(f.puts, s)
	f.settings = s

	return nil
}

type fakeWriter struct {
	records []*model.FileRecord
	err     error
}

func (f *fakeWriter) Write(_ context.Context, r *model.FileRecord) error {
	f.records = append(f.records, r)

	return f.err
}

type fakeCompressor struct {
	calls  int
	kind   model.MediaKind
	preset model.Preset
	out    []byte
	err    error
}

func (f *fakeCompressor) Compress(_ context.Context, blob *entity.Blob, kind model.MediaKind,
	preset model.Preset,
) (*entity.CompressionResult, error) {
	f.calls++
	f.kind = kind
	f.preset = preset
	if f.err != nil {
		return nil, f.err
	}

	return &entity.CompressionResult{
		Blob:     &entity.Blob{Name: blob.Name, Type: blob.Type, Data: f.out},
		PublicID: "image_1",
	}, nil
}

type fakeReporter struct {
	reports []*entity.CompressionReport
	err     error
}

func (f *fakeReporter) Report(_ context.Context, r *entity.CompressionReport) error {
	f.reports = append(f.reports, r)

	return f.err
}

type fakeStore struct {
	mu     sync.Mutex
	stored []*entity.Blob
	blobs  map[string]*entity.Blob
	id     string
	err    error
}

func (f *fakeStore) Store(_ context.Context, blob *entity.Blob) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stored = append(f.stored, blob)
	if f.err != nil {
		return "", f.err
	}

	return f.id, nil
}

func (f *fakeStore) Fetch(_ context.Context, id string) (*entity.Blob, error) {
	blob, ok := f.blobs[id]
	if !ok {
		return nil, errors.New("not found")
	}

	return blob, nil
}

type fakeSearcher struct {
	query entity.WallpaperQuery
	items []entity.Wallpaper
	err   error
}

func (f *fakeSearcher) Search(_ context.Context, q entity.WallpaperQuery) ([]entity.Wallpaper, error) {
	f.query = q

	return f.items, f.err
}

type fakeRetriever struct {
	records map[string]*model.FileRecord
}

func (f *fakeRetriever) GetByKey(_ context.Context, key string) (*model.FileRecord, error) {
	record, ok := f.records[key]
	if !ok {
		return nil, kvstore.ErrNotFound
	}

	return record, nil
}
