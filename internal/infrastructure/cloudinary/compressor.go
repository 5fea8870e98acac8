package cloudinary

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strconv"
	"strings"
	"time"

	"github.com/dezh-tech/immortal/pkg/logger"

	"tgimg/internal/domain/entity"
	"tgimg/internal/domain/model"
)

const (
	DefaultBaseURL = "https://api.cloudinary.com/v1_1"
	DefaultTimeout = 100 * time.Second
)

type Compressor struct {
	httpClient *http.Client
	cfg        Config
	timeout    time.Duration
	now        func() time.Time
}

func NewCompressor(cfg Config, httpClient *http.Client) *Compressor {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}

	timeout := time.Duration(cfg.Timeout) * time.Millisecond
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Compressor{
		httpClient: httpClient,
		cfg:        cfg,
		timeout:    timeout,
		now:        time.Now,
	}
}

type uploadResponse struct {
	SecureURL    string `json:"secure_url"`
	PublicID     string `json:"public_id"`
	ResourceType string `json:"resource_type"`
	Eager        []struct {
		SecureURL string `json:"secure_url"`
	} `json:"eager"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Compress uploads the blob with the preset flattened into form parameters and
// downloads the processed asset, preferring the eager derivative. The returned
// blob keeps the original name and MIME type.
func (c *Compressor) Compress(ctx context.Context, blob *entity.Blob, kind model.MediaKind,
	preset model.Preset,
) (*entity.CompressionResult, error) {
	body, contentType, err := c.buildForm(blob, kind, preset)
	if err != nil {
		return nil, fmt.Errorf("build transcode request: %w", err)
	}

	uploaded, err := c.submit(ctx, resourceFor(kind), body, contentType)
	if err != nil {
		return nil, err
	}

	sourceURL, eager := uploaded.SecureURL, false
	if len(uploaded.Eager) > 0 && uploaded.Eager[0].SecureURL != "" {
		sourceURL, eager = uploaded.Eager[0].SecureURL, true
	}
	if sourceURL == "" {
		return nil, errors.New("transcode response has no asset url")
	}

	logger.Debug("downloading processed asset", "public_id", uploaded.PublicID, "eager", eager)

	data, err := c.download(ctx, sourceURL)
	if err != nil {
		return nil, err
	}

	return &entity.CompressionResult{
		Blob: &entity.Blob{
			Name:    blob.Name,
			Type:    blob.Type,
			Data:    data,
			ModTime: c.now(),
		},
		PublicID:     uploaded.PublicID,
		ResourceType: uploaded.ResourceType,
		SourceURL:    sourceURL,
		Eager:        eager,
	}, nil
}

func resourceFor(kind model.MediaKind) string {
	if kind == model.KindImage {
		return "image"
	}

	return "video"
}

func (c *Compressor) buildForm(blob *entity.Blob, kind model.MediaKind, preset model.Preset) (*bytes.Buffer, string, error) {
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, blob.Name))
	h.Set("Content-Type", blob.Type)
	part, err := w.CreatePart(h)
	if err != nil {
		return nil, "", err
	}
	if _, err := part.Write(blob.Data); err != nil {
		return nil, "", err
	}

	ts := c.now().UnixMilli()
	fields := []model.Param{
		{Key: "upload_preset", Value: c.cfg.UploadPreset},
		{Key: "timestamp", Value: strconv.FormatInt(ts, 10)},
		{Key: "public_id", Value: fmt.Sprintf("%s_%d", kind, ts)},
	}
	if c.cfg.Eager != "" {
		fields = append(fields, model.Param{Key: "eager", Value: c.cfg.Eager})
	}
	fields = append(fields, preset.Params()...)

	for _, f := range fields {
		if err := w.WriteField(f.Key, f.Value); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}

	return body, w.FormDataContentType(), nil
}

func (c *Compressor) submit(ctx context.Context, resource string, body io.Reader,
	contentType string,
) (*uploadResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	url := fmt.Sprintf("%s/%s/%s/upload", c.cfg.BaseURL, c.cfg.CloudName, resource)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("transcode upload failed: %w", err)
	}
	defer resp.Body.Close()

	var decoded uploadResponse
	decodeErr := json.NewDecoder(resp.Body).Decode(&decoded)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := http.StatusText(resp.StatusCode)
		if decodeErr == nil && decoded.Error != nil && decoded.Error.Message != "" {
			msg = decoded.Error.Message
		}

		return nil, fmt.Errorf("transcode upload failed: %s", msg)
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("decode transcode response: %w", decodeErr)
	}

	return &decoded, nil
}

func (c *Compressor) download(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download processed asset: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("download processed asset: status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read processed asset: %w", err)
	}

	return data, nil
}
