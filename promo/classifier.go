package promo

import (
	"time"

	"github.com/shopspring/decimal"

	"shoecard/models"
	"shoecard/utils"
)

// Badge texts shown over a card
const (
	LabelOnSale     = "Sale"
	LabelNewRelease = "Just Released!"
)

// Classifier decides which promotional variant a listing gets.
// A shoe can be both discounted and freshly released; on-sale wins.
type Classifier struct {
	// WindowDays is how many days a release counts as new. Values <= 0 use the default.
	WindowDays int
}

// DefaultClassifier returns a classifier with the standard 30 day window
func DefaultClassifier() Classifier {
	return Classifier{WindowDays: utils.DefaultNewReleaseWindowDays}
}

// Classify computes the variant for the given sale price and release date.
// Any non-nil salePrice, zero included, means the shoe is on sale.
func (c Classifier) Classify(salePrice *decimal.Decimal, releaseDate, now time.Time) models.Variant {
	if salePrice != nil {
		return models.VariantOnSale
	}
	if utils.IsRecentRelease(releaseDate, now, c.windowDays()) {
		return models.VariantNewRelease
	}
	return models.VariantDefault
}

func (c Classifier) windowDays() int {
	if c.WindowDays <= 0 {
		return utils.DefaultNewReleaseWindowDays
	}
	return c.WindowDays
}

// Classify uses the default 30 day window
func Classify(salePrice *decimal.Decimal, releaseDate, now time.Time) models.Variant {
	return DefaultClassifier().Classify(salePrice, releaseDate, now)
}

// Label maps a variant to its badge text. Default and unknown variants have no badge.
func Label(v models.Variant) string {
	switch v {
	case models.VariantOnSale:
		return LabelOnSale
	case models.VariantNewRelease:
		return LabelNewRelease
	default:
		return ""
	}
}
