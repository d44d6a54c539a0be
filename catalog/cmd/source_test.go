package cmd

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogErrors "github.com/Alturino/storefront/catalog/internal/errors"
	"github.com/Alturino/storefront/catalog/internal/source"
	"github.com/Alturino/storefront/internal/config"
)

func TestNewSource(t *testing.T) {
	tests := []struct {
		name         string
		catalog      config.Catalog
		expectedName string
		expectedErr  error
	}{
		{
			name:         "given file source should return file source",
			catalog:      config.Catalog{Source: source.KindFile, Path: "data/products_data.json"},
			expectedName: "file:data/products_data.json",
		},
		{
			name:         "given spreadsheet source should return spreadsheet source",
			catalog:      config.Catalog{Source: source.KindSpreadsheet, Path: "catalog.xlsx", Sheet: "Sheet1"},
			expectedName: "spreadsheet:catalog.xlsx",
		},
		{
			name:        "given unknown source should return unknown source error",
			catalog:     config.Catalog{Source: "ftp"},
			expectedErr: catalogErrors.ErrUnknownSource,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			src, closeSource, err := newSource(context.Background(), &config.Config{Catalog: test.catalog})
			require.NotNil(t, closeSource)
			defer closeSource()

			if test.expectedErr != nil {
				assert.ErrorIs(t, err, test.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.expectedName, src.Name())
		})
	}
}
