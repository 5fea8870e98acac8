package model

import "strings"

// MediaKind classifies a blob by the prefix of its MIME type.
type MediaKind string

const (
	KindImage MediaKind = "image"
	KindVideo MediaKind = "video"
	KindAudio MediaKind = "audio"
	KindOther MediaKind = "other"
)

func KindFromMIME(mimeType string) MediaKind {
	mimeType = strings.ToLower(strings.TrimSpace(mimeType))

	switch {
	case strings.HasPrefix(mimeType, "image/"):
		return KindImage
	case strings.HasPrefix(mimeType, "video/"):
		return KindVideo
	case strings.HasPrefix(mimeType, "audio/"):
		return KindAudio
	default:
		return KindOther
	}
}

// Compressible reports whether the transcoder accepts this kind.
func (k MediaKind) Compressible() bool {
	return k == KindImage || k == KindVideo || k == KindAudio
}
