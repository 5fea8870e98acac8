package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"tgimg/internal/domain/dto"
	"tgimg/internal/domain/entity"
	"tgimg/internal/domain/repository/wallpaper"
)

const (
	DefaultWallpaperCount = 3
	WallpaperFetchedMsg   = "Fetched successfully"
)

type WallpaperFinder struct {
	searcher wallpaper.Searcher
}

func NewWallpaperFinder(searcher wallpaper.Searcher) *WallpaperFinder {
	return &WallpaperFinder{
		searcher: searcher,
	}
}

// Find returns at most count wallpapers from the first result page.
func (f *WallpaperFinder) Find(ctx context.Context, count int, seed string) ([]dto.Wallpaper, error) {
	if count <= 0 {
		count = DefaultWallpaperCount
	}

	if seed == "" {
		seed = strings.ReplaceAll(uuid.NewString(), "-", "")[:6]
	}

	found, err := f.searcher.Search(ctx, entity.WallpaperQuery{Seed: seed, Page: 1})
	if err != nil {
		return nil, err
	}

	if len(found) > count {
		found = found[:count]
	}

	wallpapers := make([]dto.Wallpaper, 0, len(found))
	for _, wp := range found {
		wallpapers = append(wallpapers, dto.Wallpaper{
			ID:          wp.ID,
			URL:         wp.Path,
			Preview:     wp.Thumbs.Large,
			IsWallpaper: true,
			Metadata: dto.WallpaperMetadata{
				FileName:   fmt.Sprintf("wallhaven-%s.%s", wp.ID, subtype(wp.FileType)),
				FileSize:   wp.FileSize,
				Resolution: wp.Resolution,
				Source:     wp.URL,
				Category:   wp.Category,
				Views:      wp.Views,
				Favorites:  wp.Favorites,
			},
		})
	}

	return wallpapers, nil
}

func subtype(mimeType string) string {
	if _, sub, ok := strings.Cut(mimeType, "/"); ok {
		return sub
	}

	return mimeType
}
