package catalog

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	PriceOnRequest   = "Fiyat bilgisi için WhatsApp"
	DefaultExcerpt   = 150
	additionalImages = 5
)

var (
	nonSlug           = regexp.MustCompile(`[^a-z0-9]+`)
	sentenceBoundary  = regexp.MustCompile(`[.!?]+`)
	leadingNumber     = regexp.MustCompile(`^[+-]?(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?`)
	imageExtensions   = []string{"png", "jpg", "jpeg", "webp"}
	turkishTransliter = strings.NewReplacer("ç", "c", "ğ", "g", "ı", "i", "ö", "o", "ş", "s", "ü", "u")
)

// Slug lowercases with Turkish casing rules and transliterates Turkish letters.
func Slug(text string) string {
	lowered := cases.Lower(language.Turkish).String(text)
	slug := nonSlug.ReplaceAllString(turkishTransliter.Replace(lowered), "-")
	return strings.Trim(slug, "-")
}

func Excerpt(description string, maxLength int) string {
	if description == "" {
		return ""
	}
	runes := []rune(description)
	if len(runes) <= maxLength {
		return description
	}

	first := sentenceBoundary.Split(description, 2)[0]
	if len([]rune(first)) > maxLength {
		return string(runes[:maxLength]) + "..."
	}
	return first + "."
}

// FormatPrice renders a price in Turkish lira, or the WhatsApp fallback
// text when the price is missing, unparsable or zero. Only the leading
// number is read, so "12.5 TL" is 12.5.
func FormatPrice(price string) string {
	prefix := strings.TrimPrefix(leadingNumber.FindString(strings.TrimSpace(price)), "+")
	if prefix == "" {
		return PriceOnRequest
	}
	d, err := decimal.NewFromString(prefix)
	if err != nil || d.IsZero() {
		return PriceOnRequest
	}

	sign := ""
	if d.IsNegative() {
		sign = "-"
	}
	printer := message.NewPrinter(language.Turkish)
	return sign + "₺" + printer.Sprint(number.Decimal(d.Abs().InexactFloat64(), number.Scale(2)))
}

func ImageURL(productID string, index int) string {
	if index == 0 {
		return fmt.Sprintf("/images/%s-main.jpg", productID)
	}
	return fmt.Sprintf("/images/%s-%d.jpg", productID, index)
}

// ImageCandidates lists every path an image for the product may live at,
// main image first.
func ImageCandidates(productID string) []string {
	images := make([]string, 0, len(imageExtensions)*(additionalImages+1))
	for _, ext := range imageExtensions {
		images = append(images, fmt.Sprintf("/images/%s-main.%s", productID, ext))
	}
	for i := 1; i <= additionalImages; i++ {
		for _, ext := range imageExtensions {
			images = append(images, fmt.Sprintf("/images/%s-%d.%s", productID, i, ext))
		}
	}
	return images
}
