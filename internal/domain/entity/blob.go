package entity

import (
	"io"
	"time"
)

type Blob struct {
	Name    string
	Type    string
	Data    []byte
	ModTime time.Time
}

func (b *Blob) Size() int64 {
	return int64(len(b.Data))
}

// UploadRequest is the parsed form of one inbound upload. Body is not read
// until the size checks have passed.
type UploadRequest struct {
	FileName    string
	ContentType string
	Size        int64
	Body        io.Reader
	Admin       bool
}

type UploadResult struct {
	Src            string
	Compressed     bool
	OriginalSize   int64
	CompressedSize int64
}
