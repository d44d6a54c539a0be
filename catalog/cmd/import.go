package cmd

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Alturino/storefront/catalog/internal/source"
	"github.com/Alturino/storefront/internal/constants"
	"github.com/Alturino/storefront/internal/log"
)

func NewImportCommand() *cobra.Command {
	var in, out, sheet string
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Convert a spreadsheet catalog into the bundled JSON file",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := cmd.Context()
			logger := zerolog.Ctx(c).
				With().
				Str(log.KeyAppName, constants.AppCatalogImporter).
				Str(log.KeyTag, "main import").
				Str(log.KeyPath, in).
				Logger()
			c = logger.WithContext(c)

			logger = logger.With().Str(log.KeyProcess, "reading spreadsheet").Logger()
			logger.Info().Msg("reading spreadsheet")
			products, err := source.NewSpreadsheetSource(in, sheet).Load(c)
			if err != nil {
				err = fmt.Errorf("failed reading spreadsheet with error=%w", err)
				logger.Error().Err(err).Msg(err.Error())
				return err
			}
			logger.Info().Int(log.KeyProductCount, len(products)).Msg("read spreadsheet")

			logger = logger.With().Str(log.KeyProcess, "writing catalog file").Logger()
			if err := source.WriteFile(c, out, products); err != nil {
				err = fmt.Errorf("failed writing catalog file with error=%w", err)
				logger.Error().Err(err).Msg(err.Error())
				return err
			}
			logger.Info().Str("out", out).Msg("imported catalog")
			return nil
		},
	}
	cmd.Flags().StringVar(&in, "in", "", "xlsx workbook to read")
	cmd.Flags().StringVar(&out, "out", "data/products_data.json", "JSON catalog file to write")
	cmd.Flags().StringVar(&sheet, "sheet", "", "sheet name, first sheet when empty")
	cmd.MarkFlagRequired("in")
	return cmd
}
