package repository

import (
	"github.com/Alturino/storefront/catalog/internal/catalog"
)

func (p Product) Catalog() catalog.Product {
	return catalog.Product{
		URL:               p.Url,
		ProductID:         p.ID,
		Name:              p.Name,
		Description:       p.Description,
		Price:             p.Price,
		Currency:          p.Currency,
		Category:          p.Category,
		Brand:             p.Brand,
		Size:              p.Size,
		Ingredients:       nonNil(p.Ingredients),
		UsageInstructions: p.UsageInstructions,
		Features:          nonNil(p.Features),
		Benefits:          nonNil(p.Benefits),
		Images:            nonNil(p.Images),
		ImagePaths:        nonNil(p.ImagePaths),
		MetaTitle:         p.MetaTitle,
		MetaDescription:   p.MetaDescription,
		ScrapedAt:         p.ScrapedAt,
	}
}

func NewUpsertProductParams(position int, p catalog.Product) UpsertProductParams {
	return UpsertProductParams{
		ID:                p.ProductID,
		Position:          int32(position),
		Name:              p.Name,
		Description:       p.Description,
		Price:             p.Price,
		Currency:          p.Currency,
		Category:          p.Category,
		Brand:             p.Brand,
		Size:              p.Size,
		Ingredients:       nonNil(p.Ingredients),
		UsageInstructions: p.UsageInstructions,
		Features:          nonNil(p.Features),
		Benefits:          nonNil(p.Benefits),
		Images:            nonNil(p.Images),
		ImagePaths:        nonNil(p.ImagePaths),
		MetaTitle:         p.MetaTitle,
		MetaDescription:   p.MetaDescription,
		Url:               p.URL,
		ScrapedAt:         p.ScrapedAt,
	}
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
