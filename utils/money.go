package utils

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PriceFormat describes how amounts are rendered for display.
// Amounts are rounded to two fraction digits, half away from zero.
type PriceFormat struct {
	CurrencySymbol string
	Locale         language.Tag
}

// DefaultPriceFormat returns the US dollar format used when nothing is configured
func DefaultPriceFormat() PriceFormat {
	return PriceFormat{
		CurrencySymbol: "$",
		Locale:         language.AmericanEnglish,
	}
}

// FormatPrice formats a decimal amount (in dollars) as a string like "$1,234.50"
func FormatPrice(amount decimal.Decimal) string {
	return DefaultPriceFormat().Format(amount)
}

// Format renders amount with the configured symbol and the locale's
// grouping and decimal separators. Zero renders as "$0.00".
func (f PriceFormat) Format(amount decimal.Decimal) string {
	rounded := amount.Round(2)
	neg := rounded.IsNegative()
	if neg {
		rounded = rounded.Neg()
	}

	whole, fraction, _ := strings.Cut(rounded.StringFixed(2), ".")
	group, point := separators(f.Locale)
	digits := groupThousands(whole, group) + point + fraction

	if neg {
		return "-" + f.CurrencySymbol + digits
	}
	return f.CurrencySymbol + digits
}

// separators asks the locale printer how it writes 1234.5 and reads the
// grouping and decimal separators back out of the result.
func separators(tag language.Tag) (group, point string) {
	sample := message.NewPrinter(tag).Sprintf("%.2f", 1234.5)

	thousands := strings.Index(sample, "234")
	fraction := strings.LastIndex(sample, "50")
	if !strings.HasPrefix(sample, "1") || thousands < 1 || fraction < thousands+3 {
		// Locales with non-Latin digits fall back to US separators.
		return ",", "."
	}
	return sample[1:thousands], sample[thousands+3 : fraction]
}

// groupThousands inserts sep between every three digits counted from the right
func groupThousands(digits, sep string) string {
	if len(digits) <= 3 || sep == "" {
		return digits
	}

	var b strings.Builder
	b.Grow(len(digits) + (len(digits)/3)*len(sep))

	// Insert separators from the left.
	rem := len(digits) % 3
	if rem == 0 {
		rem = 3
	}
	b.WriteString(digits[:rem])
	for i := rem; i < len(digits); i += 3 {
		b.WriteString(sep)
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
