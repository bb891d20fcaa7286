package service

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"shoecard/models"
	"shoecard/promo"
	"shoecard/utils"
)

const (
	shoePathPrefix = "/shoe/"
	colorNoun      = "Color"
	defaultWorkers = 4
)

// CardService assembles card view models from shoe records.
// It holds only immutable settings and is safe for concurrent use.
type CardService struct {
	classifier promo.Classifier
	format     utils.PriceFormat
	workers    int
}

// NewCardService creates a new CardService
func NewCardService(classifier promo.Classifier, format utils.PriceFormat, workers int) *CardService {
	if workers <= 0 {
		workers = defaultWorkers
	}
	return &CardService{
		classifier: classifier,
		format:     format,
		workers:    workers,
	}
}

// Ensure CardService implements CardServiceInterface
var _ CardServiceInterface = (*CardService)(nil)

// BuildViewModel combines the classifier output and formatted fields for one shoe.
// The sale price is only formatted for on-sale cards, even if SalePrice is set.
func (s *CardService) BuildViewModel(shoe models.ShoeRecord, now time.Time) models.ViewModel {
	variant := s.classifier.Classify(shoe.SalePrice, shoe.ReleaseDate, now)

	vm := models.ViewModel{
		Variant:        variant,
		Label:          promo.Label(variant),
		Name:           shoe.Name,
		ImageURL:       shoe.ImageURL,
		FormattedPrice: s.format.Format(shoe.Price),
		ColorCountText: utils.Pluralize(colorNoun, shoe.NumOfColors),
		NavigationPath: shoePathPrefix + shoe.Slug,
	}

	if variant == models.VariantOnSale {
		salePrice := s.format.Format(*shoe.SalePrice)
		vm.FormattedSalePrice = &salePrice
	}

	return vm
}

// BuildViewModels builds view models for a batch of shoes in parallel.
// The result keeps the input order.
func (s *CardService) BuildViewModels(ctx context.Context, shoes []models.ShoeRecord, now time.Time) ([]models.ViewModel, error) {
	cards := make([]models.ViewModel, len(shoes))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for i := range shoes {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			cards[i] = s.BuildViewModel(shoes[i], now)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return cards, nil
}

// BuildViewModel assembles a view model with the default classifier and USD format
func BuildViewModel(shoe models.ShoeRecord, now time.Time) models.ViewModel {
	return NewCardService(promo.DefaultClassifier(), utils.DefaultPriceFormat(), 1).BuildViewModel(shoe, now)
}
