package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tgimg/internal/domain/apperror"
	"tgimg/internal/domain/entity"
	"tgimg/internal/domain/model"
)

type uploaderDeps struct {
	settings   *fakeSettings
	writer     *fakeWriter
	compressor *fakeCompressor
	reporter   *fakeReporter
	store      *fakeStore
}

func newTestUploader(t *testing.T) (*Uploader, *uploaderDeps) {
	t.Helper()

	deps := &uploaderDeps{
		settings:   &fakeSettings{},
		writer:     &fakeWriter{},
		compressor: &fakeCompressor{out: []byte("small")},
		reporter:   &fakeReporter{},
		store:      &fakeStore{id: "AgACAgUAAx"},
	}

	u := NewUploader(deps.settings, deps.writer, deps.compressor, deps.reporter, deps.store, UploaderConfig{
		MaxUploadSizeMB:        30,
		CompressionThresholdMB: 20,
		LevelThresholdMB:       25,
		PersistMetadata:        true,
	})
	u.now = func() time.Time { return time.UnixMilli(1700000000000) }

	return u, deps
}

func request(name, contentType string, size int64) entity.UploadRequest {
	return entity.UploadRequest{
		FileName:    name,
		ContentType: contentType,
		Size:        size,
		Body:        bytes.NewReader(bytes.Repeat([]byte{'a'}, int(size))),
	}
}

func TestUploadBelowThresholdSkipsCompression(t *testing.T) {
	u, deps := newTestUploader(t)

	result, err := u.Upload(context.Background(), request("cat.png", "image/png", 1024))
	require.NoError(t, err)

	assert.Equal(t, 0, deps.compressor.calls)
	assert.False(t, result.Compressed)
	assert.Equal(t, "/file/AgACAgUAAx.png", result.Src)
	assert.Equal(t, int64(1024), result.OriginalSize)
	assert.Equal(t, int64(1024), result.CompressedSize)

	require.Len(t, deps.store.stored, 1)
	assert.Len(t, deps.store.stored[0].Data, 1024)
	assert.Empty(t, deps.reporter.reports)
}

func TestUploadCompressesLargeMedia(t *testing.T) {
	tests := []struct {
		name          string
		size          int64
		contentType   string
		expectedKind  model.MediaKind
		expectedLevel model.Level
	}{
		{"medium image", 21 * megabyte, "image/jpeg", model.KindImage, model.LevelMedium},
		{"low video", 26 * megabyte, "video/mp4", model.KindVideo, model.LevelLow},
		{"medium audio", 20 * megabyte, "audio/mpeg", model.KindAudio, model.LevelMedium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, deps := newTestUploader(t)

			result, err := u.Upload(context.Background(), request("clip.bin", tt.contentType, tt.size))
			require.NoError(t, err)

			assert.Equal(t, 1, deps.compressor.calls)
			assert.Equal(t, tt.expectedKind, deps.compressor.kind)
			expected, _ := model.DefaultPresets().Lookup(tt.expectedKind, tt.expectedLevel)
			assert.Equal(t, expected, deps.compressor.preset)

			assert.True(t, result.Compressed)
			assert.Equal(t, tt.size, result.OriginalSize)
			assert.Equal(t, int64(len("small")), result.CompressedSize)
			assert.Equal(t, []byte("small"), deps.store.stored[0].Data)

			require.Len(t, deps.reporter.reports, 1)
			assert.Equal(t, string(tt.expectedLevel), deps.reporter.reports[0].Level)
		})
	}
}

func TestUploadCompressionFailureFallsBack(t *testing.T) {
	u, deps := newTestUploader(t)
	deps.compressor.err = errors.New("transcode upload failed: quota")

	size := int64(22 * megabyte)
	result, err := u.Upload(context.Background(), request("big.png", "image/png", size))
	require.NoError(t, err)

	assert.Equal(t, 1, deps.compressor.calls)
	assert.False(t, result.Compressed)
	assert.Equal(t, size, result.CompressedSize)
	assert.Len(t, deps.store.stored[0].Data, int(size))
	assert.Empty(t, deps.reporter.reports)
}

func TestUploadUnchangedSizeIsNotCompressed(t *testing.T) {
	u, deps := newTestUploader(t)
	size := int64(21 * megabyte)
	deps.compressor.out = bytes.Repeat([]byte{'b'}, int(size))

	result, err := u.Upload(context.Background(), request("same.png", "image/png", size))
	require.NoError(t, err)

	assert.Equal(t, 1, deps.compressor.calls)
	assert.False(t, result.Compressed)
}

func TestUploadReporterFailureIgnored(t *testing.T) {
	u, deps := newTestUploader(t)
	deps.reporter.err = errors.New("sink down")

	result, err := u.Upload(context.Background(), request("big.png", "image/png", 21*megabyte))
	require.NoError(t, err)
	assert.True(t, result.Compressed)
}

func TestUploadOtherKindNeverCompressed(t *testing.T) {
	u, deps := newTestUploader(t)

	result, err := u.Upload(context.Background(), request("archive.zip", "application/zip", 29*megabyte))
	require.NoError(t, err)

	assert.Equal(t, 0, deps.compressor.calls)
	assert.False(t, result.Compressed)
	assert.Equal(t, "/file/AgACAgUAAx.zip", result.Src)
}

func TestUploadOversizedFailsFast(t *testing.T) {
	u, deps := newTestUploader(t)

	_, err := u.Upload(context.Background(), request("huge.mp4", "video/mp4", 31*megabyte))
	require.Error(t, err)

	assert.Equal(t, apperror.KindSizeExceeded, apperror.KindOf(err))
	assert.Equal(t, "File size exceeds maximum limit of 30MB", err.Error())
	assert.Equal(t, 0, deps.compressor.calls)
	assert.Empty(t, deps.store.stored)
}

func TestUploadUnderstatedSizeStillRejected(t *testing.T) {
	u, deps := newTestUploader(t)

	req := request("liar.bin", "application/zip", 31*megabyte)
	req.Size = 10

	_, err := u.Upload(context.Background(), req)
	assert.Equal(t, apperror.KindSizeExceeded, apperror.KindOf(err))
	assert.Empty(t, deps.store.stored)
}

func TestUploadMissingBody(t *testing.T) {
	u, deps := newTestUploader(t)

	_, err := u.Upload(context.Background(), entity.UploadRequest{})
	require.Error(t, err)
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
	assert.Equal(t, "No file uploaded", err.Error())
	assert.Empty(t, deps.store.stored)
}

func TestUploadSettingsGate(t *testing.T) {
	tests := []struct {
		name      string
		admin     bool
		expectErr bool
	}{
		{"public caller rejected", false, true},
		{"admin allowed", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, deps := newTestUploader(t)
			deps.settings.settings = &model.Settings{UploadPublic: false, UploadLimit: 20}

			req := request("cat.png", "image/png", 1024)
			req.Admin = tt.admin

			_, err := u.Upload(context.Background(), req)
			if tt.expectErr {
				require.Error(t, err)
				assert.Equal(t, apperror.KindPolicy, apperror.KindOf(err))
				assert.Empty(t, deps.store.stored)

				return
			}

			require.NoError(t, err)
			assert.Len(t, deps.store.stored, 1)
		})
	}
}

func TestUploadSettingsLimitTightens(t *testing.T) {
	u, deps := newTestUploader(t)
	deps.settings.settings = &model.Settings{UploadPublic: true, UploadLimit: 5}

	_, err := u.Upload(context.Background(), request("cat.png", "image/png", 6*megabyte))
	require.Error(t, err)
	assert.Equal(t, apperror.KindSizeExceeded, apperror.KindOf(err))
	assert.Equal(t, "File size exceeds maximum limit of 5MB", err.Error())
	assert.Empty(t, deps.store.stored)
}

func TestUploadSettingsLimitCannotLoosen(t *testing.T) {
	u, _ := newTestUploader(t)
	u.settings = &fakeSettings{settings: &model.Settings{UploadPublic: true, UploadLimit: 100}}

	_, err := u.Upload(context.Background(), request("cat.png", "image/png", 31*megabyte))
	assert.Equal(t, "File size exceeds maximum limit of 30MB", err.Error())
}

func TestUploadSettingsReadFailureUsesDefaults(t *testing.T) {
	u, deps := newTestUploader(t)
	deps.settings.err = errors.New("connection refused")

	_, err := u.Upload(context.Background(), request("cat.png", "image/png", 1024))
	require.NoError(t, err)
	assert.Len(t, deps.store.stored, 1)
}

func TestUploadStoreFailure(t *testing.T) {
	u, deps := newTestUploader(t)
	deps.store.err = errors.New("Bad Request: chat not found")

	_, err := u.Upload(context.Background(), request("cat.png", "image/png", 1024))
	require.Error(t, err)
	assert.Equal(t, apperror.KindStore, apperror.KindOf(err))

	var appErr *apperror.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Bad Request: chat not found", appErr.Public())
	assert.Equal(t, "Bad Request: chat not found", appErr.Details())
	assert.Empty(t, deps.writer.records)
}

func TestUploadStoreFailureUsesDescription(t *testing.T) {
	u, deps := newTestUploader(t)
	deps.store.err = fmt.Errorf("sendPhoto: %w", errors.New("Bad Request: PHOTO_INVALID_DIMENSIONS"))

	_, err := u.Upload(context.Background(), request("cat.png", "image/png", 1024))
	require.Error(t, err)

	var appErr *apperror.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Bad Request: PHOTO_INVALID_DIMENSIONS", appErr.Public())
	assert.Equal(t, "sendPhoto: Bad Request: PHOTO_INVALID_DIMENSIONS", appErr.Details())
}

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()

	buf := &bytes.Buffer{}
	previous := log.Logger
	log.Logger = zerolog.New(buf)
	t.Cleanup(func() { log.Logger = previous })

	return buf
}

func TestUploadFailureLogsUpstreamCause(t *testing.T) {
	t.Run("compression", func(t *testing.T) {
		logs := captureLogs(t)
		u, deps := newTestUploader(t)
		deps.compressor.err = errors.New("transcode upload failed: bad preset")

		_, err := u.Upload(context.Background(), request("pic.png", "image/png", 21*megabyte))
		require.NoError(t, err)
		assert.Contains(t, logs.String(), "bad preset")
	})

	t.Run("metadata", func(t *testing.T) {
		logs := captureLogs(t)
		u, deps := newTestUploader(t)
		deps.writer.err = errors.New("OOM command not allowed")

		_, err := u.Upload(context.Background(), request("pic.png", "image/png", 1024))
		require.NoError(t, err)
		assert.Contains(t, logs.String(), "OOM command not allowed")
	})
}

func TestUploadPersistsMetadata(t *testing.T) {
	u, deps := newTestUploader(t)

	_, err := u.Upload(context.Background(), request("holiday photo.jpg", "image/jpeg", 2048))
	require.NoError(t, err)

	require.Len(t, deps.writer.records, 1)
	record := deps.writer.records[0]
	assert.Equal(t, "AgACAgUAAx.jpg", record.Key)
	assert.Equal(t, "holiday photo.jpg", record.Metadata.FileName)
	assert.Equal(t, int64(2048), record.Metadata.FileSize)
	assert.Equal(t, int64(1700000000000), record.Metadata.TimeStamp)
	assert.Equal(t, model.DefaultClassification, record.Metadata.ListType)
	assert.False(t, record.Metadata.Liked)
}

func TestUploadPersistenceFailureIsNonFatal(t *testing.T) {
	u, deps := newTestUploader(t)
	deps.writer.err = errors.New("write timeout")

	result, err := u.Upload(context.Background(), request("cat.png", "image/png", 1024))
	require.NoError(t, err)
	assert.Equal(t, "/file/AgACAgUAAx.png", result.Src)
}

func TestUploadPersistenceDisabled(t *testing.T) {
	u, deps := newTestUploader(t)
	u.cfg.PersistMetadata = false

	_, err := u.Upload(context.Background(), request("cat.png", "image/png", 1024))
	require.NoError(t, err)
	assert.Empty(t, deps.writer.records)
}

func TestUploadSniffsMissingType(t *testing.T) {
	u, deps := newTestUploader(t)

	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
	result, err := u.Upload(context.Background(), entity.UploadRequest{
		FileName: "noext",
		Size:     int64(len(png)),
		Body:     bytes.NewReader(png),
	})
	require.NoError(t, err)

	assert.Equal(t, "image/png", deps.store.stored[0].Type)
	assert.True(t, strings.HasSuffix(result.Src, ".png"))
}
