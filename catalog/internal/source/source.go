package source

import (
	"context"
	"fmt"

	"github.com/Alturino/storefront/catalog/internal/catalog"
	catalogErrors "github.com/Alturino/storefront/catalog/internal/errors"
)

const (
	KindFile        = "file"
	KindSpreadsheet = "spreadsheet"
	KindPostgres    = "postgres"
)

// Source produces the product list a catalog is built from.
type Source interface {
	Name() string
	Load(c context.Context) ([]catalog.Product, error)
}

// Validate rejects product lists the catalog cannot index by id.
func Validate(products []catalog.Product) error {
	seen := make(map[string]int, len(products))
	for i, p := range products {
		if p.ProductID == "" {
			return fmt.Errorf("product at index=%d has no product_id with error=%w", i, catalogErrors.ErrMissingColumn)
		}
		if first, ok := seen[p.ProductID]; ok {
			return fmt.Errorf(
				"product_id=%s at index=%d already seen at index=%d with error=%w",
				p.ProductID, i, first, catalogErrors.ErrDuplicateProduct,
			)
		}
		seen[p.ProductID] = i
	}
	return nil
}
