package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"shoecard/models"
)

func newTestRenderer(t *testing.T) *CardRenderer {
	t.Helper()
	r, err := NewCardRenderer(2, zap.NewNop())
	require.NoError(t, err)
	return r
}

func saleCard() models.ViewModel {
	salePrice := "$110.00"
	return models.ViewModel{
		Variant:            models.VariantOnSale,
		Label:              "Sale",
		Name:               "Pegasus",
		ImageURL:           "/assets/pegasus.jpg",
		FormattedPrice:     "$130.00",
		FormattedSalePrice: &salePrice,
		ColorCountText:     "1 Color",
		NavigationPath:     "/shoe/pegasus",
	}
}

func TestRenderCard_OnSale(t *testing.T) {
	r := newTestRenderer(t)

	html, err := r.RenderCard(saleCard())
	require.NoError(t, err)

	assert.Contains(t, html, `href="/shoe/pegasus"`)
	assert.Contains(t, html, `src="/assets/pegasus.jpg"`)
	assert.Contains(t, html, "shoe-card--on-sale")
	assert.Contains(t, html, `class="shoe-card__label"`)
	assert.Contains(t, html, ">Sale<")
	assert.Contains(t, html, `class="shoe-card__sale-price"`)
	assert.Contains(t, html, "$110.00")
	assert.Contains(t, html, "text-decoration: line-through")
	assert.Contains(t, html, colorPrimary)
}

func TestRenderCard_NewRelease(t *testing.T) {
	r := newTestRenderer(t)
	vm := models.ViewModel{
		Variant:        models.VariantNewRelease,
		Label:          "Just Released!",
		Name:           "Air Zoom",
		FormattedPrice: "$90.00",
		ColorCountText: "3 Colors",
		NavigationPath: "/shoe/air-zoom",
	}

	html, err := r.RenderCard(vm)
	require.NoError(t, err)

	assert.Contains(t, html, "Just Released!")
	assert.Contains(t, html, colorSecondary)
	assert.NotContains(t, html, "shoe-card__sale-price")
	assert.NotContains(t, html, "line-through")
}

func TestRenderCard_DefaultHasNoBadge(t *testing.T) {
	r := newTestRenderer(t)
	vm := models.ViewModel{
		Variant:        models.VariantDefault,
		Name:           "Classic",
		FormattedPrice: "$60.00",
		ColorCountText: "2 Colors",
		NavigationPath: "/shoe/classic",
	}

	html, err := r.RenderCard(vm)
	require.NoError(t, err)

	assert.NotContains(t, html, "shoe-card__label")
	assert.NotContains(t, html, "shoe-card__sale-price")
	assert.Contains(t, html, "2 Colors")
}

func TestRenderCard_EscapesText(t *testing.T) {
	r := newTestRenderer(t)
	vm := models.ViewModel{
		Variant:        models.VariantDefault,
		Name:           `<script>alert("x")</script>`,
		FormattedPrice: "$1.00",
		NavigationPath: "/shoe/x",
	}

	html, err := r.RenderCard(vm)
	require.NoError(t, err)

	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;")
}

func TestRenderCatalog(t *testing.T) {
	r := newTestRenderer(t)
	generated := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)

	cards := []models.ViewModel{saleCard(), {
		Variant:        models.VariantDefault,
		Name:           "Classic",
		FormattedPrice: "$60.00",
		NavigationPath: "/shoe/classic",
	}}

	html, err := r.RenderCatalog(context.Background(), models.CatalogPage{Cards: cards, GeneratedAt: generated})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	assert.Contains(t, html, "2024-06-01T12:00:00Z")
	assert.Equal(t, 2, strings.Count(html, "<article"))
	assert.Less(t, strings.Index(html, "/shoe/pegasus"), strings.Index(html, "/shoe/classic"))
	// Card markup must be embedded, not escaped a second time.
	assert.NotContains(t, html, "&lt;article")
}

func TestRenderCatalog_CanceledContext(t *testing.T) {
	r := newTestRenderer(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	page := models.CatalogPage{Cards: []models.ViewModel{saleCard(), saleCard()}}
	html, err := r.RenderCatalog(ctx, page)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, html)
}

func TestStyleFor_UnknownVariant(t *testing.T) {
	assert.Equal(t, StyleFor(models.VariantDefault), StyleFor(models.Variant("clearance")))
	assert.Empty(t, StyleFor(models.VariantDefault).Label)
	assert.NotEmpty(t, StyleFor(models.VariantOnSale).Label)
}
