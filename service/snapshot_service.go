package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"go.uber.org/zap"
)

// ErrNoChrome is returned when no Chrome/Chromium executable can be found
var ErrNoChrome = errors.New("chrome executable not found")

// commonChromePaths are checked when CHROME_PATH is not set
var commonChromePaths = []string{
	"/usr/bin/chromium",
	"/usr/bin/chromium-browser",
	"/usr/bin/google-chrome",
	"/usr/bin/google-chrome-stable",
	"/snap/bin/chromium",
}

// SnapshotOptions configures the headless browser capture
type SnapshotOptions struct {
	ChromePath     string
	Timeout        time.Duration
	ViewportWidth  int64
	ViewportHeight int64
	MaxDim         int
	Quality        int
}

// SnapshotService captures rendered card markup as an image with headless Chrome
type SnapshotService struct {
	opts   SnapshotOptions
	logger *zap.Logger
}

// NewSnapshotService creates a new SnapshotService
func NewSnapshotService(opts SnapshotOptions, logger *zap.Logger) *SnapshotService {
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.ViewportWidth <= 0 {
		opts.ViewportWidth = 1280
	}
	if opts.ViewportHeight <= 0 {
		opts.ViewportHeight = 800
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SnapshotService{opts: opts, logger: logger}
}

// DetectChromePath returns the configured path when it exists, then the first
// common installation path found. Empty when nothing is installed.
func DetectChromePath(configured string) string {
	if configured != "" {
		if _, err := os.Stat(configured); err == nil {
			return configured
		}
	}
	for _, path := range commonChromePaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// CapturePNG loads html into a blank page and returns a full-page PNG screenshot.
// The markup is set directly on the document; nothing is served over HTTP.
func (s *SnapshotService) CapturePNG(ctx context.Context, html string) ([]byte, error) {
	chromePath := DetectChromePath(s.opts.ChromePath)
	if chromePath == "" {
		return nil, ErrNoChrome
	}

	ctx, cancel := context.WithTimeout(ctx, s.opts.Timeout)
	defer cancel()

	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.ExecPath(chromePath),
		chromedp.NoSandbox, // Required for running in containers
	)
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, allocOpts...)
	defer allocCancel()

	chromedpCtx, chromedpCancel := chromedp.NewContext(allocCtx)
	defer chromedpCancel()

	s.logger.Info("capturing snapshot", zap.String("chrome", chromePath), zap.Int("htmlBytes", len(html)))

	var buf []byte
	err := chromedp.Run(chromedpCtx,
		chromedp.EmulateViewport(s.opts.ViewportWidth, s.opts.ViewportHeight),
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, html).Do(ctx)
		}),
		chromedp.WaitReady("body"),
		// Quality 100 keeps the capture lossless (PNG).
		chromedp.FullScreenshot(&buf, 100),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to capture screenshot: %w", err)
	}
	if len(buf) == 0 {
		return nil, fmt.Errorf("failed to capture screenshot: empty image")
	}

	return buf, nil
}

// CaptureJPEG captures html and shrinks the result for sharing
func (s *SnapshotService) CaptureJPEG(ctx context.Context, html string) ([]byte, error) {
	png, err := s.CapturePNG(ctx, html)
	if err != nil {
		return nil, err
	}

	optimized, err := OptimizeImage(png, s.opts.MaxDim, s.opts.Quality)
	if err != nil {
		return nil, fmt.Errorf("failed to optimize snapshot: %w", err)
	}

	s.logger.Info("snapshot optimized",
		zap.Int("pngBytes", len(png)),
		zap.Int("jpegBytes", len(optimized)),
	)
	return optimized, nil
}
