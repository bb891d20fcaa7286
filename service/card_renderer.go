package service

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"shoecard/models"
)

//go:embed templates/*.html
var templateFS embed.FS

// CardRenderer turns view models into HTML card markup
type CardRenderer struct {
	tmpl    *template.Template
	workers int
	logger  *zap.Logger
}

// cardData is what the card template sees
type cardData struct {
	Card      models.ViewModel
	Style     CardStyle
	SalePrice string
}

// NewCardRenderer parses the embedded templates and creates a new CardRenderer
func NewCardRenderer(workers int, logger *zap.Logger) (*CardRenderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	if workers <= 0 {
		workers = defaultWorkers
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CardRenderer{
		tmpl:    tmpl,
		workers: workers,
		logger:  logger,
	}, nil
}

// RenderCard renders a single card. The badge is only emitted when the label
// is non-empty and the sale price only when the view model carries one.
func (r *CardRenderer) RenderCard(vm models.ViewModel) (string, error) {
	data := cardData{
		Card:  vm,
		Style: StyleFor(vm.Variant),
	}
	if vm.FormattedSalePrice != nil {
		data.SalePrice = *vm.FormattedSalePrice
	}

	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "card", data); err != nil {
		return "", fmt.Errorf("failed to execute card template for %s: %w", vm.NavigationPath, err)
	}
	return buf.String(), nil
}

// RenderCatalog renders a full HTML page with every card of the page
func (r *CardRenderer) RenderCatalog(ctx context.Context, page models.CatalogPage) (string, error) {
	cards := make([]template.HTML, len(page.Cards))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for i := range page.Cards {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			html, err := r.RenderCard(page.Cards[i])
			if err != nil {
				return err
			}
			// Output of RenderCard is escaped by html/template.
			cards[i] = template.HTML(html)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return "", fmt.Errorf("failed to render cards: %w", err)
	}

	templateData := struct {
		GeneratedAt string
		Cards       []template.HTML
	}{
		GeneratedAt: page.GeneratedAt.UTC().Format(time.RFC3339),
		Cards:       cards,
	}

	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "catalog", templateData); err != nil {
		return "", fmt.Errorf("failed to execute catalog template: %w", err)
	}

	r.logger.Debug("catalog rendered", zap.Int("cards", len(cards)), zap.Int("bytes", buf.Len()))
	return buf.String(), nil
}
