package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlug(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "given turkish letters should transliterate", input: "Güneş Koruma Kremi SPF 50", expected: "gunes-koruma-kremi-spf-50"},
		{name: "given punctuation should collapse into single dashes", input: "  U.V. Protect!! ", expected: "u-v-protect"},
		{name: "given dotless capital I should lowercase the turkish way", input: "IŞIK Serum", expected: "isik-serum"},
		{name: "given empty text should return empty slug", input: "", expected: ""},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, Slug(test.input))
		})
	}
}

func TestExcerpt(t *testing.T) {
	long := strings.Repeat("a", 200)

	tests := []struct {
		name        string
		description string
		max         int
		expected    string
	}{
		{name: "given empty description should return empty", description: "", max: 10, expected: ""},
		{name: "given short description should return it unchanged", description: "Short text. More.", max: 150, expected: "Short text. More."},
		{name: "given long description with short first sentence should return the sentence", description: "First sentence! " + long, max: 150, expected: "First sentence."},
		{name: "given long description without sentence break should truncate", description: long, max: 10, expected: "aaaaaaaaaa..."},
		{name: "given multibyte text should count runes", description: "Çok güzel", max: 9, expected: "Çok güzel"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, Excerpt(test.description, test.max))
		})
	}
}

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		name     string
		price    string
		expected string
	}{
		{name: "given empty price should ask for whatsapp", price: "", expected: PriceOnRequest},
		{name: "given invalid price should ask for whatsapp", price: "abc", expected: PriceOnRequest},
		{name: "given zero price should ask for whatsapp", price: "0.00", expected: PriceOnRequest},
		{name: "given whole price should format two decimals", price: "450", expected: "₺450,00"},
		{name: "given large price should group thousands", price: "1234.5", expected: "₺1.234,50"},
		{name: "given negative price should put sign before currency", price: "-5", expected: "-₺5,00"},
		{name: "given price with unit suffix should read leading number", price: "12.5 TL", expected: "₺12,50"},
		{name: "given padded price should ignore surrounding spaces", price: "  980 ", expected: "₺980,00"},
		{name: "given explicit plus sign should format as positive", price: "+75", expected: "₺75,00"},
		{name: "given zero with suffix should ask for whatsapp", price: "0 TL", expected: PriceOnRequest},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, FormatPrice(test.price))
		})
	}
}

func TestImages(t *testing.T) {
	assert.Equal(t, "/images/exfo-cleanse-main.jpg", ImageURL("exfo-cleanse", 0))
	assert.Equal(t, "/images/exfo-cleanse-2.jpg", ImageURL("exfo-cleanse", 2))

	candidates := ImageCandidates("exfo-cleanse")
	assert.Len(t, candidates, 24)
	assert.Equal(t, "/images/exfo-cleanse-main.png", candidates[0])
	assert.Equal(t, "/images/exfo-cleanse-5.webp", candidates[len(candidates)-1])
}

func TestResponse(t *testing.T) {
	ctlg := New(fixtureProducts(), DefaultRules())

	responses := ctlg.Responses(ctlg.FilterByCategory("leke-tedavisi"))
	assert.Len(t, responses, 1)
	actual := responses[0]
	assert.Equal(t, "mela-recovery-serum", actual.ID)
	assert.Equal(t, "mela-recovery-serum", actual.Slug)
	assert.Equal(t, []string{"serumlar", "kremler", "leke-tedavisi"}, actual.Categories)
	assert.Equal(t, PriceOnRequest, actual.FormattedPrice)
	assert.Equal(t, "/images/mela-recovery-serum-main.jpg", actual.ImageURL)
	assert.Equal(t, ImageCandidates("mela-recovery-serum"), actual.ImageCandidates)
	assert.NotNil(t, actual.Ingredients)
	assert.NotNil(t, actual.Images)
}
