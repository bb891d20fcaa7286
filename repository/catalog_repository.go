package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"shoecard/models"
)

// ErrEmptyCatalog is returned when a catalog file holds no shoes
var ErrEmptyCatalog = errors.New("catalog contains no shoes")

// releaseDateLayouts are tried in order when parsing releaseDate
var releaseDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// catalogDocument mirrors the catalog file. Amounts and dates are kept as
// text so decimals are parsed exactly and bad dates can be tolerated.
type catalogDocument struct {
	Shoes []shoeDocument `yaml:"shoes"`
}

type shoeDocument struct {
	Slug        string  `yaml:"slug"`
	Name        string  `yaml:"name"`
	ImageURL    string  `yaml:"imageUrl"`
	Price       string  `yaml:"price"`
	SalePrice   *string `yaml:"salePrice"`
	ReleaseDate string  `yaml:"releaseDate"`
	NumOfColors int     `yaml:"numOfColors"`
}

// FileCatalogRepository reads shoe listings from a local YAML or JSON file
type FileCatalogRepository struct {
	path   string
	logger *zap.Logger
}

// NewFileCatalogRepository creates a new FileCatalogRepository
func NewFileCatalogRepository(path string, logger *zap.Logger) *FileCatalogRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FileCatalogRepository{
		path:   path,
		logger: logger,
	}
}

// Ensure FileCatalogRepository implements CatalogRepositoryInterface
var _ CatalogRepositoryInterface = (*FileCatalogRepository)(nil)

// LoadShoes reads and decodes every shoe in the catalog file
func (r *FileCatalogRepository) LoadShoes(ctx context.Context) ([]models.ShoeRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", r.path, err)
	}

	shoes, err := r.decode(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode catalog %s: %w", r.path, err)
	}

	r.logger.Info("catalog loaded", zap.String("path", r.path), zap.Int("shoes", len(shoes)))
	return shoes, nil
}

func (r *FileCatalogRepository) decode(data []byte) ([]models.ShoeRecord, error) {
	var doc catalogDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if len(doc.Shoes) == 0 {
		return nil, ErrEmptyCatalog
	}

	shoes := make([]models.ShoeRecord, 0, len(doc.Shoes))
	for i, d := range doc.Shoes {
		price, err := decimal.NewFromString(strings.TrimSpace(d.Price))
		if err != nil {
			return nil, fmt.Errorf("shoe %d (%s): invalid price %q: %w", i, d.Slug, d.Price, err)
		}

		shoe := models.ShoeRecord{
			Slug:        d.Slug,
			Name:        d.Name,
			ImageURL:    d.ImageURL,
			Price:       price,
			NumOfColors: d.NumOfColors,
		}

		if d.SalePrice != nil {
			salePrice, err := decimal.NewFromString(strings.TrimSpace(*d.SalePrice))
			if err != nil {
				return nil, fmt.Errorf("shoe %d (%s): invalid salePrice %q: %w", i, d.Slug, *d.SalePrice, err)
			}
			shoe.SalePrice = &salePrice
		}

		releaseDate, ok := parseReleaseDate(d.ReleaseDate)
		if !ok && strings.TrimSpace(d.ReleaseDate) != "" {
			// Left zero so the shoe is simply never classified as new.
			r.logger.Warn("unparseable release date",
				zap.String("slug", d.Slug),
				zap.String("releaseDate", d.ReleaseDate),
			)
		}
		shoe.ReleaseDate = releaseDate

		shoes = append(shoes, shoe)
	}

	return shoes, nil
}

func parseReleaseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range releaseDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
