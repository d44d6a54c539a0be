package errors

import "errors"

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrCatalogNotLoaded = errors.New("catalog is not loaded")
	ErrUnknownSource    = errors.New("unknown catalog source")
	ErrMissingColumn    = errors.New("missing required column")
	ErrDuplicateProduct = errors.New("duplicate product id")
	ErrDuplicateRule    = errors.New("duplicate category rule id")
)
