package abstraction

import (
	"context"

	"tgimg/internal/domain/dto"
)

type WallpaperFinder interface {
	Find(ctx context.Context, count int, seed string) ([]dto.Wallpaper, error)
}
