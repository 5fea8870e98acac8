package entity

type WallpaperQuery struct {
	Seed string
	Page int
}

// Wallpaper mirrors one item of the search API response.
type Wallpaper struct {
	ID         string `json:"id"`
	Path       string `json:"path"`
	URL        string `json:"url"`
	FileType   string `json:"file_type"`
	FileSize   int64  `json:"file_size"`
	Resolution string `json:"resolution"`
	Category   string `json:"category"`
	Views      int64  `json:"views"`
	Favorites  int64  `json:"favorites"`
	Thumbs     struct {
		Large    string `json:"large"`
		Original string `json:"original"`
		Small    string `json:"small"`
	} `json:"thumbs"`
}
