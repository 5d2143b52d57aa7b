package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/lifeinvader-ads/internal/config"
	"github.com/donaldgifford/lifeinvader-ads/internal/engine"
	"github.com/donaldgifford/lifeinvader-ads/pkg/logger"
)

var autoMigrate bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server and catalog scheduler",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().BoolVar(&autoMigrate, "migrate", false, "run database migrations before serving")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, closeStore, err := openStore(ctx, cfg, autoMigrate)
	if err != nil {
		return err
	}
	defer closeStore()
	log.Info("store ready", "driver", cfg.Storage.Driver)

	eng := engine.NewEngine(st,
		engine.WithLogger(logger.WithComponent(log, "engine")),
		engine.WithSeedFile(cfg.Catalog.SeedFile),
	)
	if _, err := eng.SeedCatalog(ctx); err != nil {
		log.Error("seeding catalog failed", "error", err)
	}
	if n, err := eng.ReloadCatalog(ctx); err != nil {
		log.Warn("initial catalog load failed, serving an empty catalog", "error", err)
	} else {
		log.Info("catalog loaded", "entries", n)
	}

	sched, err := engine.NewScheduler(eng, cfg.Catalog.ReloadInterval, logger.WithComponent(log, "scheduler"))
	if err != nil {
		return fmt.Errorf("creating scheduler: %w", err)
	}
	sched.Start()
	defer func() { <-sched.Stop().Done() }()

	backend, err := newBackend(&cfg.LLM)
	if err != nil {
		return err
	}
	if backend != nil {
		log.Info("rich formatting enabled", "backend", backend.Name())
	} else {
		log.Info("rich formatting disabled, using rules only")
	}

	e := newRouter(cfg, routerDeps{
		store:     st,
		engine:    eng,
		formatter: newFormatService(cfg, backend, st, log),
		log:       log,
	})

	addr := cfg.Server.Addr()
	log.Info("starting server", "addr", addr, "version", Version)

	errCh := make(chan error, 1)
	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	log.Info("server stopped")
	return nil
}
