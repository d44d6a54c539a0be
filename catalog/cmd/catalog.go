package cmd

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/Alturino/storefront/catalog/internal/controller"
	catalogOtel "github.com/Alturino/storefront/catalog/internal/otel"
	"github.com/Alturino/storefront/catalog/internal/service"
	"github.com/Alturino/storefront/catalog/internal/source"
	"github.com/Alturino/storefront/catalog/internal/watcher"
	"github.com/Alturino/storefront/internal/config"
	"github.com/Alturino/storefront/internal/constants"
	"github.com/Alturino/storefront/internal/infra"
	"github.com/Alturino/storefront/internal/log"
	"github.com/Alturino/storefront/internal/middleware"
	"github.com/Alturino/storefront/internal/otel"
)

func RunCatalogService(c context.Context) {
	c, span := catalogOtel.Tracer.Start(c, "runCatalogService")
	defer span.End()

	logger := log.InitLogger(fmt.Sprintf("/var/log/%s.log", constants.AppCatalogService)).
		With().
		Str(log.KeyAppName, constants.AppCatalogService).
		Str(log.KeyTag, "main runCatalogService").
		Logger()

	logger = logger.With().Str(log.KeyProcess, "initializing config").Logger()
	logger.Info().Msg("initializing config")
	c = logger.WithContext(c)
	cfg := config.InitConfig(c, constants.AppCatalogService)
	logger = logger.With().Any(log.KeyConfig, cfg).Logger()
	logger.Info().Msg("initialized config")

	logger = logger.With().Str(log.KeyProcess, "initializing otel sdk").Logger()
	logger.Info().Msg("initializing otel sdk")
	c = logger.WithContext(c)
	shutdownFuncs, err := otel.InitOtelSdk(c, constants.AppCatalogService, cfg.Otel)
	if err != nil {
		err = fmt.Errorf("failed initializing otel sdk with error=%w", err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return
	}
	logger.Info().Msg("initialized otel sdk")
	defer func() {
		logger.Info().Msg("shutting down otel")
		if err := otel.ShutdownOtel(context.Background(), shutdownFuncs); err != nil {
			err = fmt.Errorf("failed shutting down otel with error=%w", err)
			logger.Error().Err(err).Msg(err.Error())
			return
		}
		logger.Info().Msg("shutdown otel")
	}()

	var cache *redis.Client
	if cfg.Cache.Enabled {
		logger = logger.With().Str(log.KeyProcess, "initializing cache").Logger()
		logger.Info().Msg("initializing cache")
		c = logger.WithContext(c)
		cache, err = infra.NewCacheClient(c, cfg.Cache)
		if err != nil {
			err = fmt.Errorf("failed initializing cache with error=%w", err)
			otel.RecordError(err, span)
			logger.Error().Err(err).Msg(err.Error())
			return
		}
		logger.Info().Msg("initialized cache")
		defer func() {
			logger := logger.With().Str(log.KeyProcess, "shutting down cache connection").Logger()
			logger.Info().Msg("shutting down cache connection")
			if err := cache.Close(); err != nil {
				err = fmt.Errorf("failed closing cache with error=%w", err)
				logger.Error().Err(err).Msg(err.Error())
				return
			}
			logger.Info().Msg("shutdown cache connection")
		}()
	}

	logger = logger.With().Str(log.KeyProcess, "initializing catalog source").Logger()
	logger.Info().Msg("initializing catalog source")
	c = logger.WithContext(c)
	src, closeSource, err := newSource(c, cfg)
	if err != nil {
		err = fmt.Errorf("failed initializing catalog source with error=%w", err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return
	}
	defer closeSource()
	logger = logger.With().Str(log.KeySource, src.Name()).Logger()
	logger.Info().Msg("initialized catalog source")

	logger = logger.With().Str(log.KeyProcess, "loading catalog").Logger()
	logger.Info().Msg("loading catalog")
	c = logger.WithContext(c)
	catalogService := service.NewCatalogService(src, cfg.Catalog.RulesPath, cache, prometheus.DefaultRegisterer)
	if _, err := catalogService.Reload(c); err != nil {
		err = fmt.Errorf("failed loading catalog with error=%w", err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
		return
	}
	logger.Info().Msg("loaded catalog")

	if cfg.Catalog.Watch && cfg.Catalog.Source != source.KindPostgres {
		logger = logger.With().Str(log.KeyProcess, "starting catalog watcher").Logger()
		logger.Info().Msg("starting catalog watcher")
		w, err := watcher.NewWatcher(catalogService, watcher.DefaultDebounce, cfg.Catalog.Path, cfg.Catalog.RulesPath)
		if err != nil {
			err = fmt.Errorf("failed creating catalog watcher with error=%w", err)
			otel.RecordError(err, span)
			logger.Error().Err(err).Msg(err.Error())
			return
		}
		if err := w.Start(logger.WithContext(c)); err != nil {
			err = fmt.Errorf("failed starting catalog watcher with error=%w", err)
			otel.RecordError(err, span)
			logger.Error().Err(err).Msg(err.Error())
			w.Stop()
			return
		}
		defer w.Stop()
		logger.Info().Msg("started catalog watcher")
	}

	logger = logger.With().Str(log.KeyProcess, "initializing router").Logger()
	logger.Info().Msg("initializing router")
	router := mux.NewRouter()
	router.StrictSlash(true)
	router.Use(
		otelmux.Middleware(constants.AppCatalogService),
		middleware.Logging,
		middleware.RecoverPanic,
	)
	router.Handle("/metrics", otelhttp.NewHandler(promhttp.Handler(), "metrics")).Methods(http.MethodGet)
	controller.AttachCatalogController(router, catalogService, cfg.Application.SecretKey)
	logger.Info().Msg("initialized router")

	server := http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Application.Host, cfg.Application.Port),
		BaseContext:  func(net.Listener) context.Context { return c },
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info().Msgf("start listening request at %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-c.Done():
		logger.Info().Msg("received interuption signal shutting down")
	case err := <-serverErr:
		if err != nil {
			err = fmt.Errorf("encounter error=%w while running server", err)
			otel.RecordError(err, span)
			logger.Error().Err(err).Msg(err.Error())
		}
	}

	logger = logger.With().Str(log.KeyProcess, "shutdown server").Logger()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		err = fmt.Errorf("failed shutting down server with error=%w", err)
		otel.RecordError(err, span)
		logger.Error().Err(err).Msg(err.Error())
	}
	logger.Info().Msg("server completely shutdown")
}
