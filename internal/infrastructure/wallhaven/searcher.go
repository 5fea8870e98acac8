package wallhaven

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"tgimg/internal/domain/entity"
)

type Searcher struct {
	httpClient *http.Client
	cfg        Config
}

func NewSearcher(cfg Config, httpClient *http.Client) *Searcher {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	cfg.applyDefaults()
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	return &Searcher{
		httpClient: httpClient,
		cfg:        cfg,
	}
}

type searchResponse struct {
	Data []entity.Wallpaper `json:"data"`
}

func (s *Searcher) Search(ctx context.Context, query entity.WallpaperQuery) ([]entity.Wallpaper, error) {
	page := query.Page
	if page < 1 {
		page = 1
	}

	params := url.Values{
		"categories": {s.cfg.Categories},
		"purity":     {s.cfg.Purity},
		"sorting":    {s.cfg.Sorting},
		"atleast":    {s.cfg.AtLeast},
		"ratios":     {s.cfg.Ratios},
		"page":       {strconv.Itoa(page)},
		"seed":       {query.Seed},
		"apikey":     {s.cfg.APIKey},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.cfg.BaseURL+"/search?"+params.Encode(), http.NoBody)
	if err != nil {
		return nil, err
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("wallhaven request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Wallhaven API error: %d", resp.StatusCode) //nolint
	}

	var decoded searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode wallhaven response: %w", err)
	}

	return decoded.Data, nil
}
