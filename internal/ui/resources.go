package ui

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"io"
	"net/http"
	"path"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"
)

// AppIcon is the window icon
var AppIcon = theme.StorageIcon()

// ImageLoader fetches product and background images over HTTP. At most
// MaxConcurrentImages downloads run at once.
type ImageLoader struct {
	client *http.Client
	sem    *semaphore.Weighted
	logger *zap.Logger
}

// NewImageLoader creates a loader. A nil client gets one with ImageFetchTimeout.
func NewImageLoader(client *http.Client, logger *zap.Logger) *ImageLoader {
	if client == nil {
		client = &http.Client{Timeout: ImageFetchTimeout}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ImageLoader{
		client: client,
		sem:    semaphore.NewWeighted(MaxConcurrentImages),
		logger: logger.Named("images"),
	}
}

// Load downloads url into a static resource
func (l *ImageLoader) Load(ctx context.Context, url string) (fyne.Resource, error) {
	if err := l.sem.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	defer l.sem.Release(1)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("image request: %w", err)
	}
	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("image fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("image fetch: HTTP %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxImageBytes+1))
	if err != nil {
		return nil, fmt.Errorf("image read: %w", err)
	}
	if len(data) > MaxImageBytes {
		return nil, fmt.Errorf("image larger than %d bytes", MaxImageBytes)
	}
	if len(data) == 0 {
		return nil, errors.New("image is empty")
	}

	name := path.Base(req.URL.Path)
	if name == "" || name == "/" || name == "." {
		name = "image"
	}
	return fyne.NewStaticResource(name, data), nil
}

// NewPlaceholder is the "no image" box shown when a product has no images or
// an image fails to load
func NewPlaceholder(size fyne.Size) fyne.CanvasObject {
	bg := canvas.NewRectangle(color.NRGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff})
	bg.SetMinSize(size)
	text := canvas.NewText(PlaceholderText, color.NRGBA{R: 0x31, G: 0x34, B: 0x3c, A: 0xff})
	text.Alignment = fyne.TextAlignCenter
	return container.NewStack(bg, container.NewCenter(text))
}
