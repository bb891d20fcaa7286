package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"shoecard/models"
	"shoecard/repository"
	"shoecard/service"
)

// RepositoryFactory opens the catalog at path
type RepositoryFactory func(path string) repository.CatalogRepositoryInterface

// CardRequest carries the inputs shared by every card command
type CardRequest struct {
	CatalogPath string
	Now         time.Time
}

// CardController handles the card commands
type CardController struct {
	newRepository RepositoryFactory
	cardService   service.CardServiceInterface
	renderer      *service.CardRenderer
	snapshots     service.SnapshotServiceInterface
	logger        *zap.Logger
}

// NewCardController creates a new CardController
func NewCardController(
	newRepository RepositoryFactory,
	cardService service.CardServiceInterface,
	renderer *service.CardRenderer,
	snapshots service.SnapshotServiceInterface,
	logger *zap.Logger,
) *CardController {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CardController{
		newRepository: newRepository,
		cardService:   cardService,
		renderer:      renderer,
		snapshots:     snapshots,
		logger:        logger,
	}
}

// loadCards reads the catalog and builds a view model per shoe
func (c *CardController) loadCards(ctx context.Context, req CardRequest) ([]models.ViewModel, error) {
	shoes, err := c.newRepository(req.CatalogPath).LoadShoes(ctx)
	if err != nil {
		return nil, err
	}

	cards, err := c.cardService.BuildViewModels(ctx, shoes, req.Now)
	if err != nil {
		return nil, fmt.Errorf("failed to build cards: %w", err)
	}

	c.logger.Debug("cards built", zap.Int("count", len(cards)), zap.Time("now", req.Now))
	return cards, nil
}

func (c *CardController) renderPage(ctx context.Context, req CardRequest) (string, error) {
	cards, err := c.loadCards(ctx, req)
	if err != nil {
		return "", err
	}
	return c.renderer.RenderCatalog(ctx, models.CatalogPage{Cards: cards, GeneratedAt: req.Now})
}

// View writes the view models as indented JSON
func (c *CardController) View(ctx context.Context, req CardRequest, w io.Writer) error {
	cards, err := c.loadCards(ctx, req)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(cards); err != nil {
		return fmt.Errorf("failed to encode cards: %w", err)
	}
	return nil
}

// Render writes the HTML catalog page to outPath
func (c *CardController) Render(ctx context.Context, req CardRequest, outPath string) error {
	html, err := c.renderPage(ctx, req)
	if err != nil {
		return err
	}

	if err := writeOutput(outPath, []byte(html)); err != nil {
		return err
	}
	c.logger.Info("catalog written", zap.String("path", outPath), zap.Int("bytes", len(html)))
	return nil
}

// Snapshot renders the catalog page, captures it with headless Chrome and
// writes an optimized JPEG to outPath
func (c *CardController) Snapshot(ctx context.Context, req CardRequest, outPath string) error {
	html, err := c.renderPage(ctx, req)
	if err != nil {
		return err
	}

	jpeg, err := c.snapshots.CaptureJPEG(ctx, html)
	if err != nil {
		return fmt.Errorf("failed to capture snapshot: %w", err)
	}

	if err := writeOutput(outPath, jpeg); err != nil {
		return err
	}
	c.logger.Info("snapshot written", zap.String("path", outPath), zap.Int("bytes", len(jpeg)))
	return nil
}

func writeOutput(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
