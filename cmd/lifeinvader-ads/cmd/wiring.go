package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/donaldgifford/lifeinvader-ads/api/openapi"
	"github.com/donaldgifford/lifeinvader-ads/internal/api/handlers"
	mw "github.com/donaldgifford/lifeinvader-ads/internal/api/middleware"
	"github.com/donaldgifford/lifeinvader-ads/internal/config"
	"github.com/donaldgifford/lifeinvader-ads/internal/engine"
	"github.com/donaldgifford/lifeinvader-ads/internal/metrics"
	"github.com/donaldgifford/lifeinvader-ads/internal/store"
	"github.com/donaldgifford/lifeinvader-ads/pkg/adformat"
	"github.com/donaldgifford/lifeinvader-ads/pkg/logger"
)

// openStore returns the configured store and a func that releases it.
func openStore(ctx context.Context, cfg *config.Config, migrate bool) (store.Store, func(), error) {
	switch cfg.Storage.Driver {
	case config.StorageMemory:
		return store.NewMemoryStore(), func() {}, nil
	case config.StoragePostgres:
		pg, err := store.NewPostgresStore(ctx, cfg.Database.DSN())
		if err != nil {
			return nil, nil, fmt.Errorf("connecting to database: %w", err)
		}
		if migrate {
			if err := pg.Migrate(ctx); err != nil {
				pg.Close()
				return nil, nil, fmt.Errorf("running migrations: %w", err)
			}
		}
		return pg, pg.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

// newBackend returns the configured generative backend, or nil when rich
// formatting is off.
func newBackend(cfg *config.LLMConfig) (adformat.Backend, error) {
	switch cfg.Backend {
	case config.BackendNone, "":
		return nil, nil
	case config.BackendAnthropic:
		return adformat.NewAnthropicBackend(
			adformat.WithAnthropicModel(cfg.Anthropic.Model),
		), nil
	case config.BackendOllama:
		return adformat.NewOllamaBackend(cfg.Ollama.Endpoint, cfg.Ollama.Model), nil
	case config.BackendOpenAI:
		var opts []adformat.OpenAIOption
		if cfg.OpenAI.APIKey != "" {
			opts = append(opts, adformat.WithOpenAIAPIKey(cfg.OpenAI.APIKey))
		}
		return adformat.NewOpenAIBackend(cfg.OpenAI.Endpoint, cfg.OpenAI.Model, opts...), nil
	default:
		return nil, fmt.Errorf("unknown llm backend %q", cfg.Backend)
	}
}

// newFormatService builds the ad formatting service. A nil backend gives a
// rules-only service.
func newFormatService(
	cfg *config.Config,
	backend adformat.Backend,
	feedback adformat.FeedbackSource,
	log *slog.Logger,
) *adformat.Service {
	opts := []adformat.ServiceOption{
		adformat.WithObserver(metrics.AdObserver{}),
		adformat.WithLogger(logger.WithComponent(log, "adformat")),
	}

	if backend != nil {
		limited := adformat.NewRateLimitedBackend(
			backend,
			cfg.LLM.RateLimit.PerSecond,
			cfg.LLM.RateLimit.Burst,
		)
		rich := adformat.NewAIFormatter(limited,
			adformat.WithFeedbackSource(feedback),
			adformat.WithFeedbackLimit(cfg.Feedback.ContextLimit),
			adformat.WithScanLimit(cfg.Feedback.ScanLimit),
			adformat.WithTemperature(cfg.LLM.Temperature),
			adformat.WithMaxTokens(cfg.LLM.MaxTokens),
			adformat.WithTimeout(cfg.LLM.Timeout),
			adformat.WithAIObserver(metrics.AdObserver{}),
			adformat.WithAILogger(logger.WithComponent(log, "adformat")),
		)
		opts = append(opts, adformat.WithRichFormatter(rich))
	}

	return adformat.NewService(opts...)
}

// routerDeps holds what newRouter registers.
type routerDeps struct {
	store     store.Store
	engine    *engine.Engine
	formatter handlers.AdFormatter
	log       *slog.Logger
}

// newRouter builds the Echo instance with every route and middleware.
func newRouter(cfg *config.Config, deps routerDeps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	httpLog := logger.WithComponent(deps.log, "http")
	e.Use(
		mw.RequestLog(httpLog),
		mw.Metrics(),
		mw.Recovery(httpLog),
	)

	health := handlers.NewHealthHandler(deps.store)
	e.GET("/healthz", health.Healthz)
	e.GET("/readyz", health.Readyz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	humaCfg := huma.DefaultConfig("LifeInvader Ads API", Version)
	humaCfg.DocsPath = ""
	api := humaecho.New(e, humaCfg)

	handlers.RegisterTextRoutes(api, handlers.NewTextHandler())
	handlers.RegisterFormatRoutes(api, handlers.NewFormatHandler(deps.formatter))
	handlers.RegisterCatalogRoutes(api, handlers.NewCatalogHandler(deps.engine))
	handlers.RegisterFeedbackRoutes(api, handlers.NewFeedbackHandler(deps.engine, deps.store))

	openapi.RegisterRoutes(e, api)

	return e
}
