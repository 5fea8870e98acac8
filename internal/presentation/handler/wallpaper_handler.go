package handler

import (
	"net/http"
	"strconv"

	"github.com/dezh-tech/immortal/pkg/logger"
	"github.com/labstack/echo/v4"

	"tgimg/internal/application/usecase"
	"tgimg/internal/application/usecase/abstraction"
	"tgimg/internal/domain/dto"
	"tgimg/internal/presentation"
)

type WallpaperHandler struct {
	finder abstraction.WallpaperFinder
}

func NewWallpaperHandler(finder abstraction.WallpaperFinder) *WallpaperHandler {
	return &WallpaperHandler{
		finder: finder,
	}
}

func (h *WallpaperHandler) Handle(c echo.Context) error {
	count, err := strconv.Atoi(c.QueryParam(presentation.CountParam))
	if err != nil {
		count = usecase.DefaultWallpaperCount
	}

	wallpapers, err := h.finder.Find(c.Request().Context(), count, c.QueryParam(presentation.SeedParam))
	if err != nil {
		logger.Error("wallpaper search failed", "err", err)

		return c.JSON(http.StatusInternalServerError, dto.WallpaperResponse{
			Status:  false,
			Message: err.Error(),
			Data:    nil,
		})
	}

	c.Response().Header().Set(presentation.CacheKey, presentation.NoCacheValue)

	return c.JSON(http.StatusOK, dto.WallpaperResponse{
		Status:  true,
		Message: usecase.WallpaperFetchedMsg,
		Data:    wallpapers,
	})
}
