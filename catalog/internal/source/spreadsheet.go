package source

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"

	"github.com/Alturino/storefront/catalog/internal/catalog"
	catalogErrors "github.com/Alturino/storefront/catalog/internal/errors"
	"github.com/Alturino/storefront/catalog/internal/otel"
	"github.com/Alturino/storefront/internal/log"
	inOtel "github.com/Alturino/storefront/internal/otel"
)

// ListSeparator splits multi-value cells such as images or ingredients.
const ListSeparator = "|"

// SpreadsheetColumns is the header row written by ExportSpreadsheet and
// recognised by SpreadsheetSource. Header matching ignores case and spacing.
var SpreadsheetColumns = []string{
	"product_id", "name", "description", "price", "currency", "category", "brand", "size",
	"ingredients", "usage_instructions", "features", "benefits", "images", "image_paths",
	"meta_title", "meta_description", "url", "scraped_at",
}

// SpreadsheetSource reads products from one sheet of an xlsx workbook. The
// first row is the header; rows without a name are skipped and a missing
// product_id is derived from the name.
type SpreadsheetSource struct {
	Path  string
	Sheet string
}

func NewSpreadsheetSource(path string, sheet string) SpreadsheetSource {
	return SpreadsheetSource{Path: path, Sheet: sheet}
}

func (src SpreadsheetSource) Name() string {
	return KindSpreadsheet + ":" + src.Path
}

func (src SpreadsheetSource) Load(c context.Context) ([]catalog.Product, error) {
	c, span := otel.Tracer.Start(c, "SpreadsheetSource Load")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "SpreadsheetSource Load").
		Str(log.KeyPath, src.Path).
		Str(log.KeySheet, src.Sheet).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "opening workbook").Logger()
	logger.Trace().Msg("opening workbook")
	f, err := excelize.OpenFile(src.Path)
	if err != nil {
		err = fmt.Errorf("failed opening workbook=%s with error=%w", src.Path, err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return nil, err
	}
	defer func() {
		if err := f.Close(); err != nil {
			logger.Warn().Err(err).Msg("failed closing workbook")
		}
	}()
	logger.Trace().Msg("opened workbook")

	sheet := src.Sheet
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}

	logger = logger.With().Str(log.KeyProcess, "reading rows").Logger()
	logger.Trace().Msg("reading rows")
	rows, err := f.GetRows(sheet)
	if err != nil {
		err = fmt.Errorf("failed reading rows of sheet=%s with error=%w", sheet, err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return nil, err
	}
	if len(rows) == 0 {
		logger.Info().Msg("sheet is empty")
		return []catalog.Product{}, nil
	}

	columns := headerIndex(rows[0])
	if _, ok := columns["name"]; !ok {
		err = fmt.Errorf("sheet=%s has no name column with error=%w", sheet, catalogErrors.ErrMissingColumn)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return nil, err
	}

	products := make([]catalog.Product, 0, len(rows)-1)
	for i, row := range rows[1:] {
		p := productFromRow(columns, row)
		if p.Name == "" {
			logger.Debug().Int(log.KeyRow, i+2).Msg("skipping row without name")
			continue
		}
		products = append(products, p)
	}
	if err := Validate(products); err != nil {
		err = fmt.Errorf("failed validating sheet=%s with error=%w", sheet, err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return nil, err
	}
	logger.Info().Int(log.KeyProductCount, len(products)).Msg("read rows")

	return products, nil
}

func normalizeHeader(header string) string {
	header = strings.ToLower(strings.TrimSpace(header))
	return whitespaceOrDash.Replace(header)
}

var whitespaceOrDash = strings.NewReplacer(" ", "_", "-", "_")

func headerIndex(header []string) map[string]int {
	columns := make(map[string]int, len(header))
	for i, h := range header {
		if key := normalizeHeader(h); key != "" {
			if _, ok := columns[key]; !ok {
				columns[key] = i
			}
		}
	}
	return columns
}

func productFromRow(columns map[string]int, row []string) catalog.Product {
	cell := func(key string) string {
		i, ok := columns[key]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}
	list := func(key string) []string {
		values := []string{}
		for _, v := range strings.Split(cell(key), ListSeparator) {
			if v = strings.TrimSpace(v); v != "" {
				values = append(values, v)
			}
		}
		return values
	}

	p := catalog.Product{
		ProductID:         cell("product_id"),
		Name:              cell("name"),
		Description:       cell("description"),
		Price:             cell("price"),
		Currency:          cell("currency"),
		Category:          cell("category"),
		Brand:             cell("brand"),
		Size:              cell("size"),
		Ingredients:       list("ingredients"),
		UsageInstructions: cell("usage_instructions"),
		Features:          list("features"),
		Benefits:          list("benefits"),
		Images:            list("images"),
		ImagePaths:        list("image_paths"),
		MetaTitle:         cell("meta_title"),
		MetaDescription:   cell("meta_description"),
		URL:               cell("url"),
		ScrapedAt:         cell("scraped_at"),
	}
	if p.ProductID == "" {
		p.ProductID = catalog.Slug(p.Name)
	}
	return p
}

// ExportSpreadsheet writes products to a new workbook at path using the
// SpreadsheetColumns header layout.
func ExportSpreadsheet(c context.Context, path string, sheet string, products []catalog.Product) error {
	c, span := otel.Tracer.Start(c, "source ExportSpreadsheet")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "source ExportSpreadsheet").
		Str(log.KeyPath, path).
		Int(log.KeyProductCount, len(products)).
		Logger()

	f := excelize.NewFile()
	defer f.Close()

	if sheet == "" {
		sheet = "Sheet1"
	}
	if sheet != "Sheet1" {
		if err := f.SetSheetName("Sheet1", sheet); err != nil {
			err = fmt.Errorf("failed renaming sheet with error=%w", err)
			inOtel.RecordError(err, span)
			logger.Error().Err(err).Msg(err.Error())
			return err
		}
	}

	logger = logger.With().Str(log.KeyProcess, "writing rows").Logger()
	logger.Trace().Msg("writing rows")
	header := make([]interface{}, 0, len(SpreadsheetColumns))
	for _, column := range SpreadsheetColumns {
		header = append(header, column)
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		err = fmt.Errorf("failed writing header with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	for i, p := range products {
		cellName, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			err = fmt.Errorf("failed computing cell name with error=%w", err)
			inOtel.RecordError(err, span)
			logger.Error().Err(err).Msg(err.Error())
			return err
		}
		row := rowFromProduct(p)
		if err := f.SetSheetRow(sheet, cellName, &row); err != nil {
			err = fmt.Errorf("failed writing row=%d with error=%w", i+2, err)
			inOtel.RecordError(err, span)
			logger.Error().Err(err).Msg(err.Error())
			return err
		}
	}
	logger.Trace().Msg("wrote rows")

	logger = logger.With().Str(log.KeyProcess, "saving workbook").Logger()
	if err := f.SaveAs(path); err != nil {
		err = fmt.Errorf("failed saving workbook with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	logger.Info().Msg("saved workbook")

	return nil
}

func rowFromProduct(p catalog.Product) []interface{} {
	join := func(values []string) string { return strings.Join(values, ListSeparator) }
	return []interface{}{
		p.ProductID, p.Name, p.Description, p.Price, p.Currency, p.Category, p.Brand, p.Size,
		join(p.Ingredients), p.UsageInstructions, join(p.Features), join(p.Benefits),
		join(p.Images), join(p.ImagePaths), p.MetaTitle, p.MetaDescription, p.URL, p.ScrapedAt,
	}
}
