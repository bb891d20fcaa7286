package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ShoeRecord represents a single shoe listing as supplied by the catalog
type ShoeRecord struct {
	Slug        string           `json:"slug" yaml:"slug"`
	Name        string           `json:"name" yaml:"name"`
	ImageURL    string           `json:"imageUrl" yaml:"imageUrl"`
	Price       decimal.Decimal  `json:"price" yaml:"price"`
	SalePrice   *decimal.Decimal `json:"salePrice,omitempty" yaml:"salePrice,omitempty"` // nil when the shoe is not discounted
	ReleaseDate time.Time        `json:"releaseDate" yaml:"releaseDate"`                 // zero when unknown or unparseable
	NumOfColors int              `json:"numOfColors" yaml:"numOfColors"`
}

// Variant is the promotional classification of a listing
type Variant string

const (
	VariantOnSale     Variant = "on-sale"
	VariantNewRelease Variant = "new-release"
	VariantDefault    Variant = "default"
)

// String returns the variant tag
func (v Variant) String() string {
	return string(v)
}
