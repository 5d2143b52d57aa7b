//go:build integration

package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/donaldgifford/lifeinvader-ads/internal/store"
	domain "github.com/donaldgifford/lifeinvader-ads/pkg/types"
)

func setupPostgres(t *testing.T) *store.PostgresStore {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("lia_test"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, pgContainer.Terminate(ctx))
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	s, err := store.NewPostgresStore(ctx, connStr)
	require.NoError(t, err)
	t.Cleanup(s.Close)

	require.NoError(t, s.Migrate(ctx))
	// Applying twice is a no-op.
	require.NoError(t, s.Migrate(ctx))

	return s
}

func TestPostgresStore_Ping(t *testing.T) {
	s := setupPostgres(t)
	require.NoError(t, s.Ping(context.Background()))
}

func TestPostgresStore_Feedback(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()
	seedFeedback(t, s)

	t.Run("by category newest first", func(t *testing.T) {
		got, err := s.ListFeedbackByCategory(ctx, domain.CategoryAuto, 10)
		require.NoError(t, err)
		assert.Equal(t, []string{"buying banshee", "sultan rs 250k"}, inputs(got))
		assert.Equal(t, domain.AdBuying, got[0].AdType)
		assert.Equal(t, domain.PatternVehicle, got[0].FormatPattern)
	})

	t.Run("recent with limit", func(t *testing.T) {
		got, err := s.ListRecentFeedback(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, []string{"buying banshee", "house with pool"}, inputs(got))
	})

	t.Run("filtered list with total", func(t *testing.T) {
		got, total, err := s.ListFeedback(ctx, &store.FeedbackQuery{
			Search: ptr("pool"),
		})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		assert.Equal(t, []string{"house with pool"}, inputs(got))
	})

	t.Run("get by id round trips", func(t *testing.T) {
		e := &domain.FeedbackEntry{
			OriginalInput:  "taxi 500",
			AIResponse:     "Offering Taxi Services. Price: $500.",
			UserCorrection: "Offering Taxi Services. Fast pickup. Price: $500.",
			Category:       domain.CategoryServices,
		}
		require.NoError(t, s.AppendFeedback(ctx, e))

		got, err := s.GetFeedback(ctx, e.ID)
		require.NoError(t, err)
		assert.Equal(t, e.UserCorrection, got.UserCorrection)
		assert.Equal(t, e.AIResponse, got.AIResponse)
		assert.WithinDuration(t, e.Timestamp, got.Timestamp, time.Millisecond)
	})

	t.Run("missing id", func(t *testing.T) {
		_, err := s.GetFeedback(ctx, "00000000-0000-0000-0000-000000000000")
		assert.ErrorIs(t, err, store.ErrNotFound)

		_, err = s.GetFeedback(ctx, "not-a-uuid")
		assert.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestPostgresStore_Catalog(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	rows := []domain.CatalogRow{
		{Name: "Banshee for sale", Description: "fast car", Type: "auto"},
		{Name: "Bar in Vespucci", Description: "", Type: "bar"},
		{Name: "Taxi", Description: "rides", Type: "services"},
	}
	require.NoError(t, s.ReplaceCatalog(ctx, rows))

	got, err := s.ListCatalogRows(ctx)
	require.NoError(t, err)
	assert.Equal(t, rows, got)

	require.NoError(t, s.ReplaceCatalog(ctx, rows[:1]))
	got, err = s.ListCatalogRows(ctx)
	require.NoError(t, err)
	assert.Equal(t, rows[:1], got)
}
