package utils

import "strings"

// mimeTypeToExtension maps common MIME types to their typical file extensions.
var mimeTypeToExtension = map[string]string{
	"application/json": "json",
	"application/pdf":  "pdf",
	"application/xml":  "xml",
	"application/zip":  "zip",
	"application/gzip": "gz",
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet":         "xlsx",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document":   "docx",
	"application/vnd.openxmlformats-officedocument.presentationml.presentation": "pptx",
	"application/x-tar":        "tar",
	"application/vnd.rar":      "rar",
	"application/octet-stream": "bin",
	"audio/aac":                "aac",
	"audio/flac":               "flac",
	"audio/mpeg":               "mp3",
	"audio/ogg":                "ogg",
	"audio/wav":                "wav",
	"audio/webm":               "weba",
	"image/avif":               "avif",
	"image/bmp":                "bmp",
	"image/gif":                "gif",
	"image/jpeg":               "jpg",
	"image/png":                "png",
	"image/svg+xml":            "svg",
	"image/tiff":               "tif",
	"image/webp":               "webp",
	"text/csv":                 "csv",
	"text/html":                "html",
	"text/plain":               "txt",
	"video/avi":                "avi",
	"video/mpeg":               "mpeg",
	"video/mp4":                "mp4",
	"video/ogg":                "ogv",
	"video/quicktime":          "mov",
	"video/webm":               "webm",
	"video/x-flv":              "flv",
	"video/x-matroska":         "mkv",
	"video/x-ms-wmv":           "wmv",
}

// GetExtensionFromMimeType returns a common file extension (without the dot) for a given MIME type.
// If no specific extension is found, it defaults to "bin".
func GetExtensionFromMimeType(mimeType string) string {
	// Remove charset if present (e.g., "text/plain; charset=utf-8")
	cleanedMimeType := strings.TrimSpace(strings.Split(mimeType, ";")[0])
	if ext, ok := mimeTypeToExtension[cleanedMimeType]; ok {
		return ext
	}

	return "bin"
}

// ExtensionFromFilename returns everything after the last dot of name.
// Names without a usable extension fall back to the MIME type mapping.
func ExtensionFromFilename(name, mimeType string) string {
	dot := strings.LastIndex(name, ".")
	if dot == -1 || dot == len(name)-1 {
		return GetExtensionFromMimeType(mimeType)
	}

	return name[dot+1:]
}

// TrimExtension strips the last extension from name, if any.
func TrimExtension(name string) string {
	if dot := strings.LastIndex(name, "."); dot > 0 {
		return name[:dot]
	}

	return name
}
