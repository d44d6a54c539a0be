package controller

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	catalogErrors "github.com/Alturino/storefront/catalog/internal/errors"
	"github.com/Alturino/storefront/catalog/internal/otel"
	"github.com/Alturino/storefront/catalog/internal/service"
	"github.com/Alturino/storefront/catalog/pkg/request"
	inHttp "github.com/Alturino/storefront/internal/http"
	"github.com/Alturino/storefront/internal/log"
	"github.com/Alturino/storefront/internal/middleware"
	inOtel "github.com/Alturino/storefront/internal/otel"
)

type CatalogController struct {
	service  *service.CatalogService
	validate *validator.Validate
}

func AttachCatalogController(mux *mux.Router, service *service.CatalogService, secretKey string) {
	controller := CatalogController{
		service:  service,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}

	router := mux.PathPrefix("/products").Methods(http.MethodGet).Subrouter()
	router.HandleFunc("", controller.GetProducts)
	router.HandleFunc("/featured", controller.GetFeatured)
	router.HandleFunc("/recent", controller.GetRecent)
	router.HandleFunc("/sizes", controller.GetSizes)
	router.HandleFunc("/{productId}", controller.FindProductById)

	categoryRouter := mux.PathPrefix("/categories").Methods(http.MethodGet).Subrouter()
	categoryRouter.HandleFunc("", controller.GetCategories)
	categoryRouter.HandleFunc("/{categoryId}/products", controller.GetCategoryProducts)

	adminRouter := mux.PathPrefix("/admin").Subrouter()
	adminRouter.Use(middleware.Auth(secretKey))
	adminRouter.HandleFunc("/catalog/reload", controller.ReloadCatalog).Methods(http.MethodPost)
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, catalogErrors.ErrProductNotFound), errors.Is(err, catalogErrors.ErrCategoryNotFound):
		return http.StatusNotFound
	case errors.Is(err, catalogErrors.ErrCatalogNotLoaded):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func (ctrl CatalogController) GetProducts(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "CatalogController GetProducts")
	defer span.End()

	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CatalogController GetProducts").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "parsing query").Logger()
	logger.Trace().Msg("parsing query")
	query, err := request.QueryFromValues(r.URL.Query())
	if err != nil {
		err = fmt.Errorf("failed parsing query with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteFailed(c, w, http.StatusBadRequest, err)
		return
	}
	logger = logger.With().Object(log.KeyQuery, query).Logger()
	logger.Trace().Msg("parsed query")

	logger = logger.With().Str(log.KeyProcess, "validating query").Logger()
	logger.Trace().Msg("validating query")
	if err := ctrl.validate.StructCtx(c, query); err != nil {
		err = fmt.Errorf("failed validating query with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteFailed(c, w, http.StatusBadRequest, err)
		return
	}
	logger.Trace().Msg("validated query")

	logger = logger.With().Str(log.KeyProcess, "querying catalog").Logger()
	logger.Trace().Msg("querying catalog")
	c = logger.WithContext(c)
	page, err := ctrl.service.Query(c, query)
	if err != nil {
		err = fmt.Errorf("failed querying catalog with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteFailed(c, w, statusOf(err), err)
		return
	}
	logger.Info().Int(log.KeyProductCount, page.Total).Msg("queried catalog")

	inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    "products found",
		"data":       page,
	})
}

func (ctrl CatalogController) FindProductById(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "CatalogController FindProductById")
	defer span.End()

	productID := mux.Vars(r)["productId"]
	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CatalogController FindProductById").
		Str(log.KeyProductID, productID).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "finding product").Logger()
	logger.Trace().Msg("finding product")
	c = logger.WithContext(c)
	product, err := ctrl.service.ProductByID(c, productID)
	if err != nil {
		err = fmt.Errorf("failed finding product with error=%w", err)
		if statusOf(err) != http.StatusNotFound {
			inOtel.RecordError(err, span)
		}
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteFailed(c, w, statusOf(err), err)
		return
	}
	logger.Trace().Msg("found product")

	logger = logger.With().Str(log.KeyProcess, "recording view").Logger()
	if err := ctrl.service.RecordView(c, productID); err != nil {
		logger.Warn().Err(err).Msg("failed recording view")
	}

	inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    fmt.Sprintf("product id=%s found", productID),
		"data": map[string]interface{}{
			"product": product,
		},
	})
}

func (ctrl CatalogController) GetFeatured(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "CatalogController GetFeatured")
	defer span.End()

	logger := zerolog.Ctx(c).With().Str(log.KeyTag, "CatalogController GetFeatured").Logger()

	products, err := ctrl.service.Featured(c)
	if err != nil {
		err = fmt.Errorf("failed getting featured products with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteFailed(c, w, statusOf(err), err)
		return
	}

	inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    "featured products found",
		"data": map[string]interface{}{
			"products": products,
		},
	})
}

func (ctrl CatalogController) GetRecent(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "CatalogController GetRecent")
	defer span.End()

	logger := zerolog.Ctx(c).With().Str(log.KeyTag, "CatalogController GetRecent").Logger()

	products, err := ctrl.service.Recent(c)
	if err != nil {
		err = fmt.Errorf("failed getting recent products with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteFailed(c, w, statusOf(err), err)
		return
	}

	inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    "recent products found",
		"data": map[string]interface{}{
			"products": products,
		},
	})
}

func (ctrl CatalogController) GetSizes(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "CatalogController GetSizes")
	defer span.End()

	logger := zerolog.Ctx(c).With().Str(log.KeyTag, "CatalogController GetSizes").Logger()

	sizes, err := ctrl.service.Sizes(c)
	if err != nil {
		err = fmt.Errorf("failed getting sizes with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteFailed(c, w, statusOf(err), err)
		return
	}

	inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    "sizes found",
		"data": map[string]interface{}{
			"sizes": sizes,
		},
	})
}

func (ctrl CatalogController) GetCategories(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "CatalogController GetCategories")
	defer span.End()

	logger := zerolog.Ctx(c).With().Str(log.KeyTag, "CatalogController GetCategories").Logger()

	categories, err := ctrl.service.Categories(c)
	if err != nil {
		err = fmt.Errorf("failed getting categories with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteFailed(c, w, statusOf(err), err)
		return
	}
	logger.Trace().Int(log.KeyCategoryCount, len(categories)).Msg("got categories")

	inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    "categories found",
		"data": map[string]interface{}{
			"categories": categories,
		},
	})
}

func (ctrl CatalogController) GetCategoryProducts(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "CatalogController GetCategoryProducts")
	defer span.End()

	categoryID := mux.Vars(r)["categoryId"]
	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CatalogController GetCategoryProducts").
		Str(log.KeyCategoryID, categoryID).
		Logger()

	logger = logger.With().Str(log.KeyProcess, "filtering by category").Logger()
	logger.Trace().Msg("filtering by category")
	c = logger.WithContext(c)
	category, products, err := ctrl.service.CategoryProducts(c, categoryID)
	if err != nil {
		err = fmt.Errorf("failed filtering by category with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteFailed(c, w, statusOf(err), err)
		return
	}
	logger.Info().Int(log.KeyProductCount, len(products)).Msg("filtered by category")

	data := map[string]interface{}{
		"products": products,
	}
	if category.ID != "" {
		data["category"] = category
	}
	inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    "products found",
		"data":       data,
	})
}

func (ctrl CatalogController) ReloadCatalog(w http.ResponseWriter, r *http.Request) {
	c, span := otel.Tracer.Start(r.Context(), "CatalogController ReloadCatalog")
	defer span.End()

	logger := zerolog.Ctx(c).With().Str(log.KeyTag, "CatalogController ReloadCatalog").Logger()

	logger = logger.With().Str(log.KeyProcess, "reloading catalog").Logger()
	logger.Info().Msg("reloading catalog")
	c = logger.WithContext(c)
	count, err := ctrl.service.Reload(c)
	if err != nil {
		err = fmt.Errorf("failed reloading catalog with error=%w", err)
		inOtel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		inHttp.WriteFailed(c, w, http.StatusInternalServerError, err)
		return
	}
	logger.Info().Int(log.KeyProductCount, count).Msg("reloaded catalog")

	inHttp.WriteJsonResponse(c, w, map[string]string{}, map[string]interface{}{
		"status":     "success",
		"statusCode": http.StatusOK,
		"message":    "catalog reloaded",
		"data": map[string]interface{}{
			"productCount": count,
		},
	})
}
