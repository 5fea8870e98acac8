package telegram

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"time"

	"tgimg/internal/domain/entity"
)

type Fetcher struct {
	client *Client
}

func NewFetcher(client *Client) *Fetcher {
	return &Fetcher{client: client}
}

type file struct {
	FileID   string `json:"file_id"`
	FilePath string `json:"file_path"`
}

// Fetch resolves the file path with getFile and downloads the content.
func (f *Fetcher) Fetch(ctx context.Context, id string) (*entity.Blob, error) {
	u := f.client.methodURL("getFile") + "?" + url.Values{"file_id": {id}}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return nil, err
	}

	result, err := f.client.call(req, "getFile failed")
	if err != nil {
		return nil, fmt.Errorf("getFile: %w", err)
	}

	var info file
	if err := json.Unmarshal(result, &info); err != nil {
		return nil, fmt.Errorf("getFile: decode result: %w", err)
	}
	if info.FilePath == "" {
		return nil, errors.New("getFile: empty file path")
	}

	data, contentType, err := f.client.download(ctx, f.client.fileURL(info.FilePath))
	if err != nil {
		return nil, err
	}

	return &entity.Blob{
		Name:    path.Base(info.FilePath),
		Type:    contentType,
		Data:    data,
		ModTime: time.Now(),
	}, nil
}
