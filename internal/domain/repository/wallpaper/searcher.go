package wallpaper

import (
	"context"

	"tgimg/internal/domain/entity"
)

type Searcher interface {
	Search(ctx context.Context, query entity.WallpaperQuery) ([]entity.Wallpaper, error)
}
