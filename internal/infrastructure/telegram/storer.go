package telegram

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"tgimg/internal/domain/entity"
	"tgimg/internal/domain/model"
)

var ErrMissingIdentifier = errors.New("missing identifier")

type Storer struct {
	client *Client
}

func NewStorer(client *Client) *Storer {
	return &Storer{client: client}
}

type photoSize struct {
	FileID   string `json:"file_id"`
	FileSize int64  `json:"file_size"`
}

type fileRef struct {
	FileID string `json:"file_id"`
}

type message struct {
	Photo    []photoSize `json:"photo"`
	Document *fileRef    `json:"document"`
	Video    *fileRef    `json:"video"`
	Audio    *fileRef    `json:"audio"`
}

// Store sends the blob as a photo, audio or document message depending on its
// MIME type and returns the file identifier telegram assigned to it.
func (s *Storer) Store(ctx context.Context, blob *entity.Blob) (string, error) {
	method, field := endpointFor(model.KindFromMIME(blob.Type))

	result, err := s.client.postMultipart(ctx, method, field, blob.Data, blob.Name, blob.Type)
	if err != nil {
		return "", fmt.Errorf("%s: %w", method, err)
	}

	var msg message
	if err := json.Unmarshal(result, &msg); err != nil {
		return "", fmt.Errorf("%s: decode result: %w", method, err)
	}

	id := fileID(&msg)
	if id == "" {
		return "", ErrMissingIdentifier
	}

	return id, nil
}

func endpointFor(kind model.MediaKind) (method, field string) {
	switch kind {
	case model.KindImage:
		return "sendPhoto", "photo"
	case model.KindAudio:
		return "sendAudio", "audio"
	default:
		return "sendDocument", "document"
	}
}

func fileID(msg *message) string {
	if len(msg.Photo) > 0 {
		return largestPhoto(msg.Photo).FileID
	}
	if msg.Document != nil {
		return msg.Document.FileID
	}
	if msg.Video != nil {
		return msg.Video.FileID
	}
	if msg.Audio != nil {
		return msg.Audio.FileID
	}

	return ""
}

// largestPhoto keeps the first variant among equally sized maxima.
func largestPhoto(sizes []photoSize) photoSize {
	best := sizes[0]
	for _, p := range sizes[1:] {
		if p.FileSize > best.FileSize {
			best = p
		}
	}

	return best
}
