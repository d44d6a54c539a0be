package source

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/Alturino/storefront/catalog/internal/catalog"
	"github.com/Alturino/storefront/catalog/internal/otel"
	"github.com/Alturino/storefront/catalog/internal/repository"
	"github.com/Alturino/storefront/internal/log"
	inOtel "github.com/Alturino/storefront/internal/otel"
)

// PostgresSource reads the products table in position order.
type PostgresSource struct {
	pool    *pgxpool.Pool
	queries *repository.Queries
}

func NewPostgresSource(pool *pgxpool.Pool, queries *repository.Queries) PostgresSource {
	return PostgresSource{pool: pool, queries: queries}
}

func (src PostgresSource) Name() string {
	return KindPostgres
}

func (src PostgresSource) Load(c context.Context) ([]catalog.Product, error) {
	c, span := otel.Tracer.Start(c, "PostgresSource Load")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "PostgresSource Load").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "finding products").Logger()
	logger.Trace().Msg("finding products")
	rows, err := src.queries.FindProducts(c)
	if err != nil {
		err = fmt.Errorf("failed finding products with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return nil, err
	}

	products := make([]catalog.Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, row.Catalog())
	}
	logger.Info().Int(log.KeyProductCount, len(products)).Msg("found products")

	return products, nil
}

// Save replaces the stored catalog with products in one transaction: rows are
// upserted with their slice order as position and rows not in products are deleted.
func (src PostgresSource) Save(c context.Context, products []catalog.Product) error {
	c, span := otel.Tracer.Start(c, "PostgresSource Save")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "PostgresSource Save").
		Int(log.KeyProductCount, len(products)).
		Logger()

	if err := Validate(products); err != nil {
		err = fmt.Errorf("failed validating products with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}

	logger = logger.With().Str(log.KeyProcess, "beginning transaction").Logger()
	logger.Trace().Msg("beginning transaction")
	tx, err := src.pool.Begin(c)
	if err != nil {
		err = fmt.Errorf("failed beginning transaction with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	defer func() {
		if err := tx.Rollback(c); err != nil {
			logger.Trace().Err(err).Msg("rollback after commit")
		}
	}()
	logger.Trace().Msg("began transaction")

	logger = logger.With().Str(log.KeyProcess, "upserting products").Logger()
	logger.Trace().Msg("upserting products")
	queries := src.queries.WithTx(tx)
	for i, p := range products {
		if _, err := queries.UpsertProduct(c, repository.NewUpsertProductParams(i, p)); err != nil {
			err = fmt.Errorf("failed upserting product id=%s with error=%w", p.ProductID, err)
			inOtel.RecordError(err, span)
			logger.Error().Err(err).Msg(err.Error())
			return err
		}
	}
	logger.Trace().Msg("upserted products")

	logger = logger.With().Str(log.KeyProcess, "deleting removed products").Logger()
	logger.Trace().Msg("deleting removed products")
	ids := make([]string, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ProductID)
	}
	deleted, err := queries.DeleteProductsNotIn(c, ids)
	if err != nil {
		err = fmt.Errorf("failed deleting removed products with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	logger.Trace().Int64(log.KeyDeletedCount, deleted).Msg("deleted removed products")

	logger = logger.With().Str(log.KeyProcess, "committing transaction").Logger()
	if err := tx.Commit(c); err != nil {
		err = fmt.Errorf("failed committing transaction with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	logger.Info().Msg("saved products")

	return nil
}
