package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"tgimg"
	"tgimg/internal/domain/dto"
)

func HandleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.StatusResponse{
		Success: true,
		Message: tgimg.StringVersion(),
	})
}
