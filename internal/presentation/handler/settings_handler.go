package handler

import (
	"net/http"

	"github.com/dezh-tech/immortal/pkg/logger"
	"github.com/labstack/echo/v4"

	"tgimg/internal/application/usecase/abstraction"
	"tgimg/internal/domain/dto"
	"tgimg/internal/domain/model"
)

type SettingsHandler struct {
	manager abstraction.SettingsManager
}

func NewSettingsHandler(manager abstraction.SettingsManager) *SettingsHandler {
	return &SettingsHandler{
		manager: manager,
	}
}

func (h *SettingsHandler) HandleGet(c echo.Context) error {
	settings, err := h.manager.Get(c.Request().Context())
	if err != nil {
		logger.Error("failed to read settings", "err", err)

		return writeError(c, http.StatusInternalServerError, err)
	}

	return c.JSON(http.StatusOK, settings)
}

// HandlePut replaces the stored settings with the request body.
func (h *SettingsHandler) HandlePut(c echo.Context) error {
	settings := new(model.Settings)
	if err := c.Bind(settings); err != nil {
		return c.JSON(http.StatusInternalServerError, dto.StatusResponse{
			Success: false,
			Message: "invalid settings body",
		})
	}

	if err := h.manager.Put(c.Request().Context(), settings); err != nil {
		logger.Error("failed to save settings", "err", err)

		return c.JSON(http.StatusInternalServerError, dto.StatusResponse{
			Success: false,
			Message: err.Error(),
		})
	}

	return c.JSON(http.StatusOK, dto.StatusResponse{Success: true})
}
