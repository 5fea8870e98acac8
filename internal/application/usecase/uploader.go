package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dezh-tech/immortal/pkg/logger"
	"github.com/gabriel-vasile/mimetype"

	"tgimg/internal/domain/apperror"
	"tgimg/internal/domain/entity"
	"tgimg/internal/domain/model"
	"tgimg/internal/domain/repository/audit"
	"tgimg/internal/domain/repository/filestore"
	"tgimg/internal/domain/repository/kvstore"
	"tgimg/internal/domain/repository/transcoder"
	"tgimg/pkg/utils"
)

const megabyte = 1024 * 1024

type UploaderConfig struct {
	MaxUploadSizeMB        int64             `yaml:"max_upload_size_in_mb"`
	CompressionThresholdMB int64             `yaml:"compression_threshold_in_mb"`
	LevelThresholdMB       int64             `yaml:"level_threshold_in_mb"`
	PersistMetadata        bool              `yaml:"persist_metadata"`
	Presets                model.PresetTable `yaml:"presets"`
}

type Uploader struct {
	settings   kvstore.SettingsStore
	writer     kvstore.RecordWriter
	compressor transcoder.Compressor
	reporter   audit.Reporter
	storer     filestore.Storer
	cfg        UploaderConfig
	now        func() time.Time
}

// NewUploader builds the upload pipeline. reporter may be nil when no audit
// sink is configured.
func NewUploader(settings kvstore.SettingsStore, writer kvstore.RecordWriter, compressor transcoder.Compressor,
	reporter audit.Reporter, storer filestore.Storer, cfg UploaderConfig,
) *Uploader {
	if cfg.Presets == nil {
		cfg.Presets = model.DefaultPresets()
	}

	return &Uploader{
		settings:   settings,
		writer:     writer,
		compressor: compressor,
		reporter:   reporter,
		storer:     storer,
		cfg:        cfg,
		now:        time.Now,
	}
}

func sizeExceeded(limitMB int64) error {
	return apperror.New(apperror.KindSizeExceeded,
		fmt.Sprintf("File size exceeds maximum limit of %dMB", limitMB))
}

func (u *Uploader) Upload(ctx context.Context, req entity.UploadRequest) (entity.UploadResult, error) {
	if req.Body == nil {
		return entity.UploadResult{}, apperror.New(apperror.KindValidation, "No file uploaded")
	}

	maxSize := u.cfg.MaxUploadSizeMB * megabyte
	if req.Size > maxSize {
		return entity.UploadResult{}, sizeExceeded(u.cfg.MaxUploadSizeMB)
	}

	limitMB, err := u.checkPolicy(ctx, req)
	if err != nil {
		return entity.UploadResult{}, err
	}

	data, err := io.ReadAll(io.LimitReader(req.Body, maxSize+1))
	if err != nil {
		return entity.UploadResult{}, apperror.Wrap(apperror.KindValidation, "Failed to read uploaded file", err)
	}
	if int64(len(data)) > limitMB*megabyte {
		return entity.UploadResult{}, sizeExceeded(limitMB)
	}

	original := &entity.Blob{
		Name:    req.FileName,
		Type:    resolveType(req.ContentType, data),
		Data:    data,
		ModTime: u.now(),
	}

	blob, compressed := u.maybeCompress(ctx, original)

	id, err := u.storer.Store(ctx, blob)
	if err != nil {
		logger.Error("failed to store file", "file", original.Name, "err", err)

		return entity.UploadResult{}, apperror.Wrap(apperror.KindStore, rootCause(err).Error(), err)
	}

	key := fmt.Sprintf("%s.%s", id, utils.ExtensionFromFilename(original.Name, original.Type))
	if u.cfg.PersistMetadata {
		u.persist(ctx, key, original)
	}

	return entity.UploadResult{
		Src:            "/file/" + key,
		Compressed:     compressed,
		OriginalSize:   original.Size(),
		CompressedSize: blob.Size(),
	}, nil
}

// checkPolicy applies the stored settings and returns the effective size limit
// in MB. A missing or unreadable record leaves uploads open and the static
// limit in force. The stored limit can only tighten the static one.
func (u *Uploader) checkPolicy(ctx context.Context, req entity.UploadRequest) (int64, error) {
	limitMB := u.cfg.MaxUploadSizeMB
	if u.settings == nil {
		return limitMB, nil
	}

	settings, err := u.settings.Get(ctx)
	if err != nil {
		if !errors.Is(err, kvstore.ErrNotFound) {
			logger.Warn("failed to read settings, using defaults", "err", err)
		}

		return limitMB, nil
	}

	if !settings.UploadPublic && !req.Admin {
		return 0, apperror.New(apperror.KindPolicy, "Public uploads are disabled")
	}

	if settings.UploadLimit > 0 && int64(settings.UploadLimit) < limitMB {
		limitMB = int64(settings.UploadLimit)
	}

	if req.Size > limitMB*megabyte {
		return 0, sizeExceeded(limitMB)
	}

	return limitMB, nil
}

// rootCause returns the innermost error, which for the chat store is the API description.
func rootCause(err error) error {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
}

func resolveType(declared string, data []byte) string {
	declared = strings.TrimSpace(declared)
	if declared != "" && declared != "application/octet-stream" {
		return declared
	}

	return mimetype.Detect(data).String()
}

// maybeCompress never fails; any transcoder error leaves the original blob in place.
func (u *Uploader) maybeCompress(ctx context.Context, blob *entity.Blob) (*entity.Blob, bool) {
	kind := model.KindFromMIME(blob.Type)
	decision := Decide(blob.Size(), kind, Thresholds{
		Compression: u.cfg.CompressionThresholdMB * megabyte,
		Level:       u.cfg.LevelThresholdMB * megabyte,
	})

	level, ok := decision.Level()
	if !ok || u.compressor == nil {
		return blob, false
	}

	preset, ok := u.cfg.Presets.Lookup(kind, level)
	if !ok {
		logger.Warn("no compression preset", "kind", kind, "level", level)

		return blob, false
	}

	logger.Info("compressing upload", "file", blob.Name, "size", blob.Size(), "decision", decision.String())

	result, err := u.compressor.Compress(ctx, blob, kind, preset)
	if err != nil {
		logger.Error("compression failed, keeping original", "file", blob.Name,
			"err", apperror.Wrap(apperror.KindCompression, "compression failed", err))

		return blob, false
	}

	u.report(ctx, blob, kind, level, result)

	if result.Blob.Size() == blob.Size() {
		return blob, false
	}

	return result.Blob, true
}

func (u *Uploader) report(ctx context.Context, original *entity.Blob, kind model.MediaKind, level model.Level,
	result *entity.CompressionResult,
) {
	if u.reporter == nil {
		return
	}

	err := u.reporter.Report(ctx, &entity.CompressionReport{
		FileName:       original.Name,
		Kind:           string(kind),
		Level:          string(level),
		OriginalSize:   original.Size(),
		CompressedSize: result.Blob.Size(),
		PublicID:       result.PublicID,
		Eager:          result.Eager,
		At:             u.now(),
	})
	if err != nil {
		logger.Error("failed to report compression", "file", original.Name, "err", err)
	}
}

func (u *Uploader) persist(ctx context.Context, key string, original *entity.Blob) {
	if u.writer == nil {
		return
	}

	record := model.NewFileRecord(key, original.Name, original.Size(), u.now())
	if err := u.writer.Write(ctx, record); err != nil {
		logger.Error("failed to persist file metadata", "key", key,
			"err", apperror.Wrap(apperror.KindPersistence, "metadata write failed", err))
	}
}
