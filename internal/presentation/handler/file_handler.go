package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/dezh-tech/immortal/pkg/logger"
	"github.com/gabriel-vasile/mimetype"
	"github.com/labstack/echo/v4"

	"tgimg/internal/application/usecase/abstraction"
	"tgimg/internal/domain/apperror"
	"tgimg/internal/presentation"
	"tgimg/internal/presentation/middleware"
)

type FileHandler struct {
	getter abstraction.FileGetter
}

func NewFileHandler(getter abstraction.FileGetter) *FileHandler {
	return &FileHandler{
		getter: getter,
	}
}

// Handle serves GET /file/:name where name is "<store_id>.<ext>".
func (h *FileHandler) Handle(c echo.Context) error {
	name := c.Param(presentation.NameParam)
	if name == "" {
		c.Response().Header().Set(presentation.ReasonTag, "missing file name")

		return c.NoContent(http.StatusBadRequest)
	}

	blob, err := h.getter.Get(c.Request().Context(), name, middleware.AdminFrom(c))
	if err != nil {
		c.Response().Header().Set(presentation.ReasonTag, err.Error())

		switch apperror.KindOf(err) {
		case apperror.KindPolicy:
			return c.NoContent(http.StatusForbidden)
		case apperror.KindValidation:
			return c.NoContent(http.StatusBadRequest)
		default:
			logger.Warn("file lookup failed", "name", name, "err", err)

			return c.NoContent(http.StatusNotFound)
		}
	}

	contentType := blob.Type
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = mimetype.Detect(blob.Data).String()
	}

	c.Response().Header().Set("Content-Length", strconv.Itoa(len(blob.Data)))
	c.Response().Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", blob.Name))

	return c.Blob(http.StatusOK, contentType, blob.Data)
}
