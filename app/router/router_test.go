package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shoecard/app/controller"
	"shoecard/app/router"
	"shoecard/models"
	"shoecard/promo"
	"shoecard/repository"
	"shoecard/service"
	"shoecard/utils"
)

const catalog = `
shoes:
  - slug: air-zoom
    name: Air Zoom
    price: 90
    releaseDate: 2024-05-27
    numOfColors: 3
`

func newRoot(t *testing.T, clock router.Clock) (*bytes.Buffer, func(args ...string) error, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "shoes.yaml")
	require.NoError(t, os.WriteFile(path, []byte(catalog), 0o644))

	renderer, err := service.NewCardRenderer(1, nil)
	require.NoError(t, err)

	controllers := &router.Controllers{
		Card: controller.NewCardController(
			func(p string) repository.CatalogRepositoryInterface {
				return repository.NewFileCatalogRepository(p, nil)
			},
			service.NewCardService(promo.DefaultClassifier(), utils.DefaultPriceFormat(), 1),
			renderer,
			service.NewSnapshotService(service.SnapshotOptions{}, nil),
			nil,
		),
	}

	var out bytes.Buffer
	run := func(args ...string) error {
		root := router.NewRootCommand(controllers, clock)
		root.SetOut(&out)
		root.SetErr(&bytes.Buffer{})
		root.SetArgs(args)
		return root.ExecuteContext(context.Background())
	}
	return &out, run, path
}

func decodeCards(t *testing.T, out *bytes.Buffer) []models.ViewModel {
	t.Helper()
	var cards []models.ViewModel
	require.NoError(t, json.Unmarshal(out.Bytes(), &cards))
	return cards
}

func TestView_UsesClock(t *testing.T) {
	clock := func() time.Time { return time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC) }
	out, run, path := newRoot(t, clock)

	require.NoError(t, run("view", "--catalog", path))

	cards := decodeCards(t, out)
	require.Len(t, cards, 1)
	assert.Equal(t, models.VariantNewRelease, cards[0].Variant)
}

func TestView_NowFlagOverridesClock(t *testing.T) {
	clock := func() time.Time { return time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC) }
	out, run, path := newRoot(t, clock)

	require.NoError(t, run("view", "--catalog", path, "--now", "2025-01-01T00:00:00Z"))

	cards := decodeCards(t, out)
	require.Len(t, cards, 1)
	assert.Equal(t, models.VariantDefault, cards[0].Variant)
	assert.Empty(t, cards[0].Label)
}

func TestView_InvalidNow(t *testing.T) {
	_, run, path := newRoot(t, nil)

	err := run("view", "--catalog", path, "--now", "yesterday")
	assert.ErrorContains(t, err, "invalid --now")
}

func TestView_CatalogRequired(t *testing.T) {
	_, run, _ := newRoot(t, nil)

	assert.Error(t, run("view"))
}

func TestRender_WritesFile(t *testing.T) {
	_, run, path := newRoot(t, nil)
	outPath := filepath.Join(t.TempDir(), "cards.html")

	require.NoError(t, run("render", "--catalog", path, "--out", outPath, "--now", "2024-06-01T00:00:00Z"))

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Air Zoom")
}
