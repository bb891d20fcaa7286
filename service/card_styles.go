package service

import (
	"html/template"

	"shoecard/models"
)

// Palette tokens shared by every card
const (
	colorWhite     = "hsl(0deg 0% 100%)"
	colorGray700   = "hsl(220deg 5% 40%)"
	colorGray900   = "hsl(220deg 3% 20%)"
	colorPrimary   = "hsl(340deg 65% 47%)"
	colorSecondary = "hsl(240deg 60% 63%)"
	weightMedium   = "500"
	weightBold     = "700"
)

// CardStyle holds the inline style declarations for the variant-dependent parts of a card
type CardStyle struct {
	Label     template.CSS
	Name      template.CSS
	Price     template.CSS
	ColorInfo template.CSS
	SalePrice template.CSS
}

const (
	labelBase = "position: absolute; top: 12px; right: -4px; padding: 8px 12px; " +
		"font-size: 0.7778rem; font-weight: " + weightBold + "; color: " + colorWhite + ";"
	nameStyle      = "font-weight: " + weightMedium + "; color: " + colorGray900 + ";"
	colorInfoStyle = "color: " + colorGray700 + ";"
	salePriceStyle = "font-weight: " + weightMedium + "; color: " + colorPrimary + ";"
)

// cardStyles is read-only after init
var cardStyles = map[models.Variant]CardStyle{
	models.VariantOnSale: {
		Label:     labelBase + " background-color: " + colorPrimary + ";",
		Name:      nameStyle,
		Price:     "color: " + colorGray700 + "; text-decoration: line-through;",
		ColorInfo: colorInfoStyle,
		SalePrice: salePriceStyle,
	},
	models.VariantNewRelease: {
		Label:     labelBase + " background-color: " + colorSecondary + ";",
		Name:      nameStyle,
		ColorInfo: colorInfoStyle,
		SalePrice: salePriceStyle,
	},
	models.VariantDefault: {
		Name:      nameStyle,
		ColorInfo: colorInfoStyle,
		SalePrice: salePriceStyle,
	},
}

// StyleFor returns the style tokens for a variant. Unknown variants get the default style.
func StyleFor(v models.Variant) CardStyle {
	if style, ok := cardStyles[v]; ok {
		return style
	}
	return cardStyles[models.VariantDefault]
}
