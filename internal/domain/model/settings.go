package model

// Settings is stored as a whole under a single key and replaced on every write.
type Settings struct {
	UploadPublic  bool       `json:"uploadPublic"`
	AccessPublic  bool       `json:"accessPublic"`
	UploadLimit   int        `json:"uploadLimit"`
	QuickWebsites []Shortcut `json:"quickWebsites"`
}

type Shortcut struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Icon string `json:"icon"`
}

func DefaultSettings() *Settings {
	return &Settings{
		UploadPublic: true,
		AccessPublic: true,
		UploadLimit:  20,
		QuickWebsites: []Shortcut{
			{Name: "Classic admin", URL: "./admin.html", Icon: "fas fa-suitcase"},
			{Name: "Waterfall", URL: "./admin-waterfall.html", Icon: "fas fa-wind"},
			{Name: "Movavi", URL: "https://www.movavi.com/zh/movavi-video-converter.html", Icon: "fas fa-file-video"},
			{Name: "FreeConvert", URL: "https://www.freeconvert.com/zh/video-compressor", Icon: "fas fa-file"},
			{Name: "YouCompress", URL: "https://www.youcompress.com/zh-cn/", Icon: "fas fa-file-zipper"},
			{Name: "Cloudinary", URL: "https://console.cloudinary.com/", Icon: "fas fa-cloud"},
		},
	}
}
