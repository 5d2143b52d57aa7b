// Package store defines the persistence layer for user feedback and catalog
// rows. Handlers and the engine depend on the Store interface; PostgresStore
// backs production and MemoryStore backs local runs and tests.
package store

import (
	"context"
	"errors"
	"time"

	domain "github.com/donaldgifford/lifeinvader-ads/pkg/types"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// FeedbackQuery defines optional filters for listing feedback. Results are
// always most recent first.
type FeedbackQuery struct {
	Category      *string
	AdType        *string
	FormatPattern *string
	Search        *string // case-insensitive match on input or correction
	Since         *time.Time
	Limit         int // default 50
	Offset        int
}

// Store defines all data access operations.
type Store interface {
	// Feedback
	AppendFeedback(ctx context.Context, e *domain.FeedbackEntry) error
	GetFeedback(ctx context.Context, id string) (*domain.FeedbackEntry, error)
	ListFeedback(ctx context.Context, q *FeedbackQuery) ([]domain.FeedbackEntry, int, error)
	ListFeedbackByCategory(ctx context.Context, category domain.Category, limit int) ([]domain.FeedbackEntry, error)
	ListRecentFeedback(ctx context.Context, limit int) ([]domain.FeedbackEntry, error)

	// Catalog
	ReplaceCatalog(ctx context.Context, rows []domain.CatalogRow) error
	ListCatalogRows(ctx context.Context) ([]domain.CatalogRow, error)

	// Migrations
	Migrate(ctx context.Context) error

	// Health
	Ping(ctx context.Context) error
}

// clampLimit applies the default and maximum page size.
func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultLimit
	}
	return min(limit, maxLimit)
}
