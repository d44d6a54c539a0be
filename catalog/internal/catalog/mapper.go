package catalog

import (
	"github.com/Alturino/storefront/catalog/pkg/response"
)

func (p Product) Response(categoryIDs []string) response.Product {
	return response.Product{
		ID:                p.ProductID,
		Slug:              Slug(p.Name),
		Name:              p.Name,
		Description:       p.Description,
		Excerpt:           Excerpt(p.Description, DefaultExcerpt),
		Price:             p.Price,
		FormattedPrice:    FormatPrice(p.Price),
		Currency:          p.Currency,
		Brand:             p.Brand,
		Size:              p.Size,
		Categories:        nonNil(categoryIDs),
		Ingredients:       nonNil(p.Ingredients),
		UsageInstructions: p.UsageInstructions,
		Features:          nonNil(p.Features),
		Benefits:          nonNil(p.Benefits),
		Images:            nonNil(p.Images),
		ImageURL:          ImageURL(p.ProductID, 0),
		ImageCandidates:   ImageCandidates(p.ProductID),
		URL:               p.URL,
	}
}

func (c Category) Response() response.Category {
	return response.Category{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Count:       c.Count,
	}
}

func (ctlg *Catalog) Responses(products []Product) []response.Product {
	responses := make([]response.Product, 0, len(products))
	for _, p := range products {
		responses = append(responses, p.Response(ctlg.CategoryIDsOf(p.ProductID)))
	}
	return responses
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
