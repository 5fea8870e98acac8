package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dezh-tech/immortal/pkg/logger"
	"github.com/labstack/echo/v4"

	"tgimg/internal/domain/apperror"
	"tgimg/internal/domain/dto"
)

// uploadStatus maps an upload failure to its HTTP status. Only the size limit
// gets a dedicated code.
func uploadStatus(err error) int {
	if apperror.KindOf(err) == apperror.KindSizeExceeded {
		return http.StatusRequestEntityTooLarge
	}

	return http.StatusInternalServerError
}

func errorResponse(err error) dto.ErrorResponse {
	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		return dto.ErrorResponse{
			Error:   appErr.Public(),
			Details: appErr.Details(),
		}
	}

	return dto.ErrorResponse{
		Error:   err.Error(),
		Details: apperror.KindUnknown.String(),
	}
}

func writeError(c echo.Context, status int, err error) error {
	return c.JSON(status, errorResponse(err))
}

// HandleHTTPError renders errors raised outside handlers, such as the body
// limit and rate limiter middleware, in the same {error, details} shape.
func HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	resp := errorResponse(err)

	var he *echo.HTTPError
	if errors.As(err, &he) {
		status = he.Code
		resp = dto.ErrorResponse{
			Error:   fmt.Sprint(he.Message),
			Details: http.StatusText(he.Code),
		}
	}

	if status == http.StatusRequestEntityTooLarge {
		logger.Warn("request body too large", "path", c.Request().URL.Path)
	}

	var writeErr error
	if c.Request().Method == http.MethodHead {
		writeErr = c.NoContent(status)
	} else {
		writeErr = c.JSON(status, resp)
	}
	if writeErr != nil {
		logger.Error("failed to write error response", "err", writeErr)
	}
}
