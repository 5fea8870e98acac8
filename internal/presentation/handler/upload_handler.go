package handler

import (
	"net/http"

	"github.com/dezh-tech/immortal/pkg/logger"
	"github.com/labstack/echo/v4"

	"tgimg/internal/application/usecase/abstraction"
	"tgimg/internal/domain/apperror"
	"tgimg/internal/domain/dto"
	"tgimg/internal/domain/entity"
	"tgimg/internal/presentation"
	"tgimg/internal/presentation/middleware"
)

type UploadHandler struct {
	uploader abstraction.Uploader
}

func NewUploadHandler(uploader abstraction.Uploader) *UploadHandler {
	return &UploadHandler{
		uploader: uploader,
	}
}

// Handle accepts a multipart form with a single "file" field.
func (h *UploadHandler) Handle(c echo.Context) error {
	header, err := c.FormFile(presentation.FileField)
	if err != nil {
		return h.fail(c, apperror.Wrap(apperror.KindValidation, "No file uploaded", err))
	}

	file, err := header.Open()
	if err != nil {
		return h.fail(c, apperror.Wrap(apperror.KindValidation, "Failed to read uploaded file", err))
	}
	defer file.Close()

	result, err := h.uploader.Upload(c.Request().Context(), entity.UploadRequest{
		FileName:    header.Filename,
		ContentType: header.Header.Get(presentation.TypeKey),
		Size:        header.Size,
		Body:        file,
		Admin:       middleware.AdminFrom(c),
	})
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(http.StatusOK, []dto.UploadDescriptor{{
		Src:            result.Src,
		Compressed:     result.Compressed,
		OriginalSize:   result.OriginalSize,
		CompressedSize: result.CompressedSize,
	}})
}

func (h *UploadHandler) fail(c echo.Context, err error) error {
	logger.Error("upload failed", "kind", apperror.KindOf(err).String(), "err", err)

	return writeError(c, uploadStatus(err), err)
}
