package dto

type WallpaperResponse struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Data    []Wallpaper `json:"data"`
}

type Wallpaper struct {
	ID          string            `json:"id"`
	URL         string            `json:"url"`
	Preview     string            `json:"preview"`
	IsWallpaper bool              `json:"isWallpaper"`
	Metadata    WallpaperMetadata `json:"metadata"`
}

type WallpaperMetadata struct {
	FileName   string `json:"fileName"`
	FileSize   int64  `json:"fileSize"`
	Resolution string `json:"resolution"`
	Source     string `json:"source"`
	Category   string `json:"category"`
	Views      int64  `json:"views"`
	Favorites  int64  `json:"favorites"`
}
