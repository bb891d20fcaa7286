package models

import "time"

// ViewModel is the render-ready card data for one listing
type ViewModel struct {
	Variant            Variant `json:"variant"`
	Label              string  `json:"label"` // Empty means no badge
	Name               string  `json:"name"`
	ImageURL           string  `json:"imageUrl"`
	FormattedPrice     string  `json:"formattedPrice"`
	FormattedSalePrice *string `json:"formattedSalePrice,omitempty"` // Only set for VariantOnSale
	ColorCountText     string  `json:"colorCountText"`
	NavigationPath     string  `json:"navigationPath"`
}

// HasBadge reports whether the card shows a promotional label
func (vm ViewModel) HasBadge() bool {
	return vm.Label != ""
}

// CatalogPage represents the data passed to the catalog page template
type CatalogPage struct {
	Cards       []ViewModel `json:"cards"`
	GeneratedAt time.Time   `json:"generatedAt"`
}
