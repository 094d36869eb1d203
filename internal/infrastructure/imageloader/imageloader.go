// Package imageloader fetches article images and renders them as
// terminal thumbnails.
package imageloader

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"net/http"
	"strings"
	"time"

	// Decoders registered for image.Decode.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

const (
	maxImageBytes  = 8 << 20
	maxImageSide   = 8192
	maxImagePixels = 4096 * 4096
)

var (
	// ErrNoURL is returned when an item carries no image.
	ErrNoURL = errors.New("image url is empty")
	// ErrImageTooLarge is returned when the declared dimensions exceed the cap.
	ErrImageTooLarge = errors.New("image too large")
)

// Loader resolves an image URL to a decoded image.
type Loader interface {
	Load(ctx context.Context, url string) (image.Image, error)
}

// HTTPLoader downloads and decodes images over HTTP.
type HTTPLoader struct {
	Client *http.Client
}

// NewHTTPLoader creates an HTTPLoader. A nil client uses a short timeout.
func NewHTTPLoader(client *http.Client) *HTTPLoader {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &HTTPLoader{Client: client}
}

// Load fetches url and decodes the body as gif, jpeg or png.
func (l *HTTPLoader) Load(ctx context.Context, url string) (image.Image, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, ErrNoURL
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("image request: %w", err)
	}
	req.Header.Set("Accept", "image/png, image/jpeg, image/gif;q=0.9, */*;q=0.1")

	resp, err := l.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("image fetch: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("image fetch: http %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes))
	if err != nil {
		return nil, fmt.Errorf("image read: %w", err)
	}

	// The header is checked first: decoding allocates for the declared size.
	cfg, _, err := image.DecodeConfig(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("image decode: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || cfg.Width > maxImageSide || cfg.Height > maxImageSide ||
		cfg.Width*cfg.Height > maxImagePixels {
		return nil, fmt.Errorf("%w: %dx%d", ErrImageTooLarge, cfg.Width, cfg.Height)
	}

	img, _, err := image.Decode(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("image decode: %w", err)
	}
	return img, nil
}
