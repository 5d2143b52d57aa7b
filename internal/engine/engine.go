// Package engine owns the live catalog index and the write paths that feed
// the formatter: catalog reloads and user corrections.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"github.com/donaldgifford/lifeinvader-ads/internal/metrics"
	"github.com/donaldgifford/lifeinvader-ads/internal/store"
	"github.com/donaldgifford/lifeinvader-ads/pkg/catalog"
	"github.com/donaldgifford/lifeinvader-ads/pkg/classify"
	domain "github.com/donaldgifford/lifeinvader-ads/pkg/types"
)

// ErrInvalidFeedback is returned when a correction lacks its input or the
// corrected text.
var ErrInvalidFeedback = errors.New("original_input and user_correction are required")

// Engine serves catalog lookups from an in-memory index and keeps it in sync
// with the store.
type Engine struct {
	store    store.Store
	index    atomic.Pointer[catalog.Index]
	seedFile string
	log      *slog.Logger
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) EngineOption {
	return func(e *Engine) {
		e.log = l
	}
}

// WithSeedFile sets the YAML file used by SeedCatalog.
func WithSeedFile(path string) EngineOption {
	return func(e *Engine) {
		e.seedFile = path
	}
}

// NewEngine creates an Engine with an empty catalog.
func NewEngine(s store.Store, opts ...EngineOption) *Engine {
	eng := &Engine{
		store: s,
		log:   slog.Default(),
	}
	for _, opt := range opts {
		opt(eng)
	}
	eng.index.Store(catalog.NewIndex(nil))
	return eng
}

// Index returns the live catalog index. It is never nil.
func (eng *Engine) Index() *catalog.Index {
	return eng.index.Load()
}

// ReloadCatalog rebuilds the index from the rows in the store and swaps it
// in. On failure the previous index stays live.
func (eng *Engine) ReloadCatalog(ctx context.Context) (int, error) {
	start := time.Now()
	defer func() {
		metrics.CatalogReloadDuration.Observe(time.Since(start).Seconds())
	}()

	rows, err := eng.store.ListCatalogRows(ctx)
	if err != nil {
		metrics.CatalogReloadFailuresTotal.Inc()
		return 0, fmt.Errorf("listing catalog rows: %w", err)
	}

	n := eng.swap(rows)
	eng.log.Info("catalog reloaded", "entries", n, "duration", time.Since(start))
	return n, nil
}

// ReplaceCatalog stores rows as the whole catalog and makes them live.
func (eng *Engine) ReplaceCatalog(ctx context.Context, rows []domain.CatalogRow) (int, error) {
	if err := eng.store.ReplaceCatalog(ctx, rows); err != nil {
		metrics.CatalogReloadFailuresTotal.Inc()
		return 0, fmt.Errorf("replacing catalog: %w", err)
	}

	n := eng.swap(rows)
	eng.log.Info("catalog replaced", "entries", n)
	return n, nil
}

// SeedCatalog loads the seed file into an empty store. It does nothing when
// no seed file is configured or the store already holds rows.
func (eng *Engine) SeedCatalog(ctx context.Context) (int, error) {
	if eng.seedFile == "" {
		return 0, nil
	}

	existing, err := eng.store.ListCatalogRows(ctx)
	if err != nil {
		return 0, fmt.Errorf("checking existing catalog: %w", err)
	}
	if len(existing) > 0 {
		eng.log.Debug("catalog already populated, skipping seed", "rows", len(existing))
		return 0, nil
	}

	rows, err := LoadSeedFile(eng.seedFile)
	if err != nil {
		return 0, err
	}
	return eng.ReplaceCatalog(ctx, rows)
}

// Search filters the live index.
func (eng *Engine) Search(query string) []domain.CatalogEntry {
	start := time.Now()
	defer func() {
		metrics.CatalogSearchDuration.WithLabelValues("filter").Observe(time.Since(start).Seconds())
	}()
	return eng.Index().Filter(query)
}

// Suggest completes partial from the live index.
func (eng *Engine) Suggest(partial string) string {
	start := time.Now()
	defer func() {
		metrics.CatalogSearchDuration.WithLabelValues("suggest").Observe(time.Since(start).Seconds())
	}()
	return eng.Index().Suggest(partial)
}

// SubmitFeedback classifies a user correction and stores it. Category,
// AdType and FormatPattern are derived from the original input when unset
// or invalid. The stored ID and Timestamp are written back to e.
func (eng *Engine) SubmitFeedback(ctx context.Context, e *domain.FeedbackEntry) error {
	if strings.TrimSpace(e.OriginalInput) == "" || strings.TrimSpace(e.UserCorrection) == "" {
		return ErrInvalidFeedback
	}

	if !domain.IsValidCategory(string(e.Category)) {
		e.Category = classify.DetectCategory(e.OriginalInput)
	}
	if e.AdType == "" {
		e.AdType = classify.DetectAdType(e.OriginalInput)
	}
	if e.FormatPattern == "" {
		e.FormatPattern = classify.PatternFor(e.Category)
	}

	if err := eng.store.AppendFeedback(ctx, e); err != nil {
		return fmt.Errorf("storing feedback: %w", err)
	}

	metrics.FeedbackSubmittedTotal.Inc()
	eng.log.Info("feedback stored",
		"id", e.ID,
		"category", e.Category,
		"ad_type", e.AdType,
	)
	return nil
}

func (eng *Engine) swap(rows []domain.CatalogRow) int {
	idx := catalog.NewIndex(rows)
	eng.index.Store(idx)
	metrics.CatalogEntries.Set(float64(idx.Len()))
	metrics.CatalogReloadsTotal.Inc()
	return idx.Len()
}
