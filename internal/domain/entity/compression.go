package entity

import "time"

type CompressionResult struct {
	Blob         *Blob
	PublicID     string
	ResourceType string
	SourceURL    string
	Eager        bool
}

// CompressionReport is sent to the audit sink after a successful transcode.
type CompressionReport struct {
	FileName       string    `json:"fileName"`
	Kind           string    `json:"kind"`
	Level          string    `json:"level"`
	OriginalSize   int64     `json:"originalSize"`
	CompressedSize int64     `json:"compressedSize"`
	PublicID       string    `json:"publicId"`
	Eager          bool      `json:"eager"`
	At             time.Time `json:"at"`
}
