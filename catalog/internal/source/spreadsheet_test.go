package source

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	catalogErrors "github.com/Alturino/storefront/catalog/internal/errors"
)

func TestSpreadsheetRoundTrip(t *testing.T) {
	c := context.Background()
	path := filepath.Join(t.TempDir(), "products.xlsx")

	require.NoError(t, ExportSpreadsheet(c, path, "Products", fixtureProducts()))

	actual, err := NewSpreadsheetSource(path, "Products").Load(c)
	require.NoError(t, err)
	if diff := cmp.Diff(fixtureProducts(), actual); diff != "" {
		t.Errorf("loaded products mismatch (-want +got):\n%s", diff)
	}

	firstSheet, err := NewSpreadsheetSource(path, "").Load(c)
	require.NoError(t, err)
	if diff := cmp.Diff(fixtureProducts(), firstSheet); diff != "" {
		t.Errorf("first sheet products mismatch (-want +got):\n%s", diff)
	}
}

func writeWorkbook(t *testing.T, rows [][]interface{}) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	path := filepath.Join(t.TempDir(), "catalog.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestSpreadsheetSourceLoad(t *testing.T) {
	tests := []struct {
		name        string
		rows        [][]interface{}
		expectedIDs []string
		expectedErr error
	}{
		{
			name: "given loose headers should map columns ignoring case and spacing",
			rows: [][]interface{}{
				{"Product ID", "Name", "Usage-Instructions", "Images"},
				{"a", "Alpha", "Sabah akşam", "a.jpg | b.jpg"},
			},
			expectedIDs: []string{"a"},
		},
		{
			name: "given row without product id should derive id from name",
			rows: [][]interface{}{
				{"name", "size"},
				{"Güneş Koruyucu SPF 50", "50 ml"},
			},
			expectedIDs: []string{"gunes-koruyucu-spf-50"},
		},
		{
			name: "given blank rows should skip them",
			rows: [][]interface{}{
				{"product_id", "name"},
				{"a", "Alpha"},
				{"orphan", ""},
				{"b", "Beta"},
			},
			expectedIDs: []string{"a", "b"},
		},
		{
			name:        "given header without name column should return missing column error",
			rows:        [][]interface{}{{"product_id", "title"}, {"a", "Alpha"}},
			expectedErr: catalogErrors.ErrMissingColumn,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			path := writeWorkbook(t, test.rows)

			actual, err := NewSpreadsheetSource(path, "").Load(context.Background())
			if test.expectedErr != nil {
				assert.ErrorIs(t, err, test.expectedErr)
				return
			}
			require.NoError(t, err)

			ids := make([]string, 0, len(actual))
			for _, p := range actual {
				ids = append(ids, p.ProductID)
			}
			assert.Equal(t, test.expectedIDs, ids)
		})
	}
}

func TestSpreadsheetSourceListCells(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"product_id", "name", "images", "ingredients"},
		{"a", "Alpha", "a.jpg | b.jpg||", ""},
	})

	actual, err := NewSpreadsheetSource(path, "Sheet1").Load(context.Background())
	require.NoError(t, err)
	require.Len(t, actual, 1)
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, actual[0].Images)
	assert.Equal(t, []string{}, actual[0].Ingredients)
}
