package cmd

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	catalogErrors "github.com/Alturino/storefront/catalog/internal/errors"
	"github.com/Alturino/storefront/catalog/internal/repository"
	"github.com/Alturino/storefront/catalog/internal/source"
	"github.com/Alturino/storefront/internal/config"
	"github.com/Alturino/storefront/internal/infra"
	"github.com/Alturino/storefront/internal/log"
)

// newPostgresSource connects, migrates and returns the source with its pool.
// The caller owns the pool.
func newPostgresSource(c context.Context, cfg config.Database) (source.PostgresSource, *pgxpool.Pool, error) {
	logger := zerolog.Ctx(c).With().Str(log.KeyTag, "main newPostgresSource").Logger()

	logger = logger.With().Str(log.KeyProcess, "initializing database").Logger()
	logger.Info().Msg("initializing database")
	pool, err := infra.NewDatabaseClient(c, cfg)
	if err != nil {
		err = fmt.Errorf("failed initializing database with error=%w", err)
		logger.Error().Err(err).Msg(err.Error())
		return source.PostgresSource{}, nil, err
	}
	logger.Info().Msg("initialized database")

	logger = logger.With().Str(log.KeyProcess, "migrating database").Logger()
	logger.Info().Msg("migrating database")
	if err := infra.MigrateUp(c, pool, cfg.MigrationPath); err != nil {
		pool.Close()
		err = fmt.Errorf("failed migrating database with error=%w", err)
		logger.Error().Err(err).Msg(err.Error())
		return source.PostgresSource{}, nil, err
	}
	logger.Info().Msg("migrated database")

	return source.NewPostgresSource(pool, repository.New(pool)), pool, nil
}

// newSource picks the configured catalog source. The returned close func is
// never nil.
func newSource(c context.Context, cfg *config.Config) (source.Source, func(), error) {
	switch cfg.Catalog.Source {
	case source.KindFile:
		return source.NewFileSource(cfg.Catalog.Path), func() {}, nil
	case source.KindSpreadsheet:
		return source.NewSpreadsheetSource(cfg.Catalog.Path, cfg.Catalog.Sheet), func() {}, nil
	case source.KindPostgres:
		src, pool, err := newPostgresSource(c, cfg.Database)
		if err != nil {
			return nil, func() {}, err
		}
		return src, pool.Close, nil
	}
	return nil, func() {}, fmt.Errorf("source=%s with error=%w", cfg.Catalog.Source, catalogErrors.ErrUnknownSource)
}
