package cmd

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Alturino/storefront/catalog/internal/source"
	"github.com/Alturino/storefront/internal/config"
	"github.com/Alturino/storefront/internal/constants"
	"github.com/Alturino/storefront/internal/log"
)

func NewSeedCommand() *cobra.Command {
	var in string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load a JSON catalog into postgres",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := cmd.Context()
			logger := zerolog.Ctx(c).
				With().
				Str(log.KeyAppName, constants.AppCatalogSeeder).
				Str(log.KeyTag, "main seed").
				Str(log.KeyPath, in).
				Logger()
			c = logger.WithContext(c)

			cfg := config.InitConfig(c, constants.AppCatalogService)

			logger = logger.With().Str(log.KeyProcess, "reading catalog file").Logger()
			logger.Info().Msg("reading catalog file")
			products, err := source.NewFileSource(in).Load(c)
			if err != nil {
				err = fmt.Errorf("failed reading catalog file with error=%w", err)
				logger.Error().Err(err).Msg(err.Error())
				return err
			}
			logger.Info().Int(log.KeyProductCount, len(products)).Msg("read catalog file")

			src, pool, err := newPostgresSource(c, cfg.Database)
			if err != nil {
				return err
			}
			defer pool.Close()

			logger = logger.With().Str(log.KeyProcess, "saving products").Logger()
			if err := src.Save(c, products); err != nil {
				err = fmt.Errorf("failed saving products with error=%w", err)
				logger.Error().Err(err).Msg(err.Error())
				return err
			}
			logger.Info().Msg("seeded catalog")
			return nil
		},
	}
	cmd.Flags().StringVar(&in, "in", "data/products_data.json", "JSON catalog file to load")
	return cmd
}
