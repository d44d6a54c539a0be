package service

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/Alturino/storefront/catalog/internal/cache"
	"github.com/Alturino/storefront/catalog/internal/catalog"
	catalogErrors "github.com/Alturino/storefront/catalog/internal/errors"
	"github.com/Alturino/storefront/catalog/internal/otel"
	"github.com/Alturino/storefront/catalog/internal/source"
	"github.com/Alturino/storefront/catalog/pkg/request"
	"github.com/Alturino/storefront/catalog/pkg/response"
	"github.com/Alturino/storefront/internal/log"
	inOtel "github.com/Alturino/storefront/internal/otel"
)

// CatalogService serves queries from the last successfully loaded catalog.
// Reload swaps in a freshly built catalog; readers never observe a partial one.
type CatalogService struct {
	source    source.Source
	rulesPath string
	cache     *redis.Client
	current   atomic.Pointer[catalog.Catalog]
	metrics   *metrics
}

// NewCatalogService builds a service over src. cache may be nil, in which case
// views are not recorded and the popular sort keeps catalog order.
func NewCatalogService(
	src source.Source,
	rulesPath string,
	cache *redis.Client,
	registerer prometheus.Registerer,
) *CatalogService {
	return &CatalogService{
		source:    src,
		rulesPath: rulesPath,
		cache:     cache,
		metrics:   newMetrics(registerer),
	}
}

func (svc *CatalogService) Reload(c context.Context) (int, error) {
	c, span := otel.Tracer.Start(c, "CatalogService Reload")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CatalogService Reload").
		Str(log.KeySource, svc.source.Name()).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "loading rules").Logger()
	logger.Trace().Msg("loading rules")
	c = logger.WithContext(c)
	rules, err := source.LoadRules(c, svc.rulesPath)
	if err != nil {
		svc.metrics.reloads.WithLabelValues("failed").Inc()
		err = fmt.Errorf("failed loading rules with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return 0, err
	}
	logger.Trace().Int(log.KeyRuleCount, len(rules)).Msg("loaded rules")

	logger = logger.With().Str(log.KeyProcess, "loading products").Logger()
	logger.Trace().Msg("loading products")
	c = logger.WithContext(c)
	products, err := svc.source.Load(c)
	if err != nil {
		svc.metrics.reloads.WithLabelValues("failed").Inc()
		err = fmt.Errorf("failed loading products with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return 0, err
	}
	logger.Trace().Int(log.KeyProductCount, len(products)).Msg("loaded products")

	logger = logger.With().Str(log.KeyProcess, "building catalog").Logger()
	ctlg := catalog.New(products, rules)
	svc.current.Store(ctlg)
	svc.metrics.reloads.WithLabelValues("success").Inc()
	svc.metrics.products.Set(float64(ctlg.Len()))
	logger.Info().
		Int(log.KeyProductCount, ctlg.Len()).
		Int(log.KeyCategoryCount, len(ctlg.Categories())).
		Msg("built catalog")

	return ctlg.Len(), nil
}

// Current returns the served catalog, or ErrCatalogNotLoaded before the first
// successful Reload.
func (svc *CatalogService) Current() (*catalog.Catalog, error) {
	ctlg := svc.current.Load()
	if ctlg == nil {
		return nil, catalogErrors.ErrCatalogNotLoaded
	}
	return ctlg, nil
}

func (svc *CatalogService) Query(c context.Context, param request.Query) (response.Page, error) {
	c, span := otel.Tracer.Start(c, "CatalogService Query")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CatalogService Query").
		Str(log.KeySearch, param.Search).
		Str(log.KeyCategoryID, param.Category).
		Str(log.KeySort, param.Sort).
		Logger()

	ctlg, err := svc.Current()
	if err != nil {
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Page{}, err
	}

	q := catalog.Query{
		Search:   param.Search,
		Category: param.Category,
		Sort:     catalog.SortOption(param.Sort),
	}
	if q.Sort == catalog.SortPopular {
		logger = logger.With().Str(log.KeyProcess, "reading popularity").Logger()
		logger.Trace().Msg("reading popularity")
		c = logger.WithContext(c)
		q.Popularity, err = svc.Popularity(c)
		if err != nil {
			// a broken popularity store degrades to catalog order
			logger.Warn().Err(err).Msg("failed reading popularity using catalog order")
			q.Popularity = nil
		}
	}

	logger = logger.With().Str(log.KeyProcess, "querying catalog").Logger()
	products := ctlg.Query(q)
	svc.metrics.queries.WithLabelValues(queryKind(q)).Inc()
	page := catalog.Paginate(products, param.Limit, param.Offset)
	logger.Info().
		Int(log.KeyProductCount, len(products)).
		Int(log.KeyLimit, param.Limit).
		Int(log.KeyOffset, param.Offset).
		Msg("queried catalog")

	return response.Page{
		Products: ctlg.Responses(page),
		Total:    len(products),
		Limit:    param.Limit,
		Offset:   param.Offset,
	}, nil
}

func queryKind(q catalog.Query) string {
	switch {
	case q.Category != "" && q.Category != catalog.AllCategories && q.Search != "":
		return "category_search"
	case q.Category != "" && q.Category != catalog.AllCategories:
		return "category"
	case q.Search != "":
		return "search"
	}
	return "list"
}

func (svc *CatalogService) ProductByID(c context.Context, productID string) (response.Product, error) {
	c, span := otel.Tracer.Start(c, "CatalogService ProductByID")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CatalogService ProductByID").
		Str(log.KeyProductID, productID).
		Logger()

	ctlg, err := svc.Current()
	if err != nil {
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Product{}, err
	}

	logger = logger.With().Str(log.KeyProcess, "finding product").Logger()
	logger.Trace().Msg("finding product")
	p, ok := ctlg.ProductByID(productID)
	if !ok {
		err = fmt.Errorf("product id=%s with error=%w", productID, catalogErrors.ErrProductNotFound)
		logger.Info().Err(err).Msg(err.Error())
		return response.Product{}, err
	}
	logger.Trace().Msg("found product")

	return p.Response(ctlg.CategoryIDsOf(p.ProductID)), nil
}

func (svc *CatalogService) Categories(c context.Context) ([]response.Category, error) {
	_, span := otel.Tracer.Start(c, "CatalogService Categories")
	defer span.End()

	ctlg, err := svc.Current()
	if err != nil {
		inOtel.RecordError(err, span)
		return nil, err
	}

	categories := ctlg.Categories()
	responses := make([]response.Category, 0, len(categories))
	for _, category := range categories {
		responses = append(responses, category.Response())
	}
	return responses, nil
}

// CategoryProducts filters by category id. The returned category is zero for
// "all" and for ids answered by the free-text fallback.
func (svc *CatalogService) CategoryProducts(
	c context.Context,
	categoryID string,
) (response.Category, []response.Product, error) {
	c, span := otel.Tracer.Start(c, "CatalogService CategoryProducts")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CatalogService CategoryProducts").
		Str(log.KeyCategoryID, categoryID).
		Logger()

	ctlg, err := svc.Current()
	if err != nil {
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return response.Category{}, nil, err
	}

	products := ctlg.FilterByCategory(categoryID)
	svc.metrics.queries.WithLabelValues("category").Inc()
	category, _ := ctlg.Category(categoryID)
	logger.Info().Int(log.KeyProductCount, len(products)).Msg("filtered catalog by category")

	return category.Response(), ctlg.Responses(products), nil
}

func (svc *CatalogService) Featured(c context.Context) ([]response.Product, error) {
	_, span := otel.Tracer.Start(c, "CatalogService Featured")
	defer span.End()

	ctlg, err := svc.Current()
	if err != nil {
		inOtel.RecordError(err, span)
		return nil, err
	}
	return ctlg.Responses(ctlg.Featured()), nil
}

func (svc *CatalogService) Recent(c context.Context) ([]response.Product, error) {
	_, span := otel.Tracer.Start(c, "CatalogService Recent")
	defer span.End()

	ctlg, err := svc.Current()
	if err != nil {
		inOtel.RecordError(err, span)
		return nil, err
	}
	return ctlg.Responses(ctlg.Recent()), nil
}

func (svc *CatalogService) Sizes(c context.Context) ([]string, error) {
	_, span := otel.Tracer.Start(c, "CatalogService Sizes")
	defer span.End()

	ctlg, err := svc.Current()
	if err != nil {
		inOtel.RecordError(err, span)
		return nil, err
	}
	return ctlg.Sizes(), nil
}

// RecordView bumps the popularity score of productID. Without a cache it is a no-op.
func (svc *CatalogService) RecordView(c context.Context, productID string) error {
	c, span := otel.Tracer.Start(c, "CatalogService RecordView")
	defer span.End()

	svc.metrics.views.Inc()
	if svc.cache == nil {
		return nil
	}

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CatalogService RecordView").
		Str(log.KeyProductID, productID).
		Str(log.KeyCacheKey, cache.KeyPopularity).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "incrementing popularity").Logger()
	logger.Trace().Msg("incrementing popularity")
	if err := svc.cache.ZIncrBy(c, cache.KeyPopularity, 1, productID).Err(); err != nil {
		err = fmt.Errorf("failed incrementing popularity of product id=%s with error=%w", productID, err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return err
	}
	logger.Trace().Msg("incremented popularity")

	return nil
}

// Popularity returns product id -> view count. Without a cache it is empty.
func (svc *CatalogService) Popularity(c context.Context) (map[string]float64, error) {
	c, span := otel.Tracer.Start(c, "CatalogService Popularity")
	defer span.End()

	if svc.cache == nil {
		return map[string]float64{}, nil
	}

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CatalogService Popularity").
		Str(log.KeyCacheKey, cache.KeyPopularity).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "reading popularity").Logger()
	logger.Trace().Msg("reading popularity")
	scores, err := svc.cache.ZRangeWithScores(c, cache.KeyPopularity, 0, -1).Result()
	if err != nil {
		err = fmt.Errorf("failed reading popularity with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return nil, err
	}

	popularity := make(map[string]float64, len(scores))
	for _, z := range scores {
		if member, ok := z.Member.(string); ok {
			popularity[member] = z.Score
		}
	}
	logger.Trace().Int(log.KeyProductCount, len(popularity)).Msg("read popularity")

	return popularity, nil
}
