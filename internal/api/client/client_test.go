package client

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/lifeinvader-ads/internal/api/handlers"
	"github.com/donaldgifford/lifeinvader-ads/internal/engine"
	"github.com/donaldgifford/lifeinvader-ads/internal/store"
	"github.com/donaldgifford/lifeinvader-ads/pkg/adformat"
	domain "github.com/donaldgifford/lifeinvader-ads/pkg/types"
)

// newTestServer serves the full API over a memory store.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	ms := store.NewMemoryStore()
	eng := engine.NewEngine(ms, engine.WithLogger(log))

	e := echo.New()
	api := humaecho.New(e, huma.DefaultConfig("lifeinvader-ads", "test"))
	handlers.RegisterTextRoutes(api, handlers.NewTextHandler())
	handlers.RegisterFormatRoutes(api, handlers.NewFormatHandler(adformat.NewService(adformat.WithLogger(log))))
	handlers.RegisterCatalogRoutes(api, handlers.NewCatalogHandler(eng))
	handlers.RegisterFeedbackRoutes(api, handlers.NewFeedbackHandler(eng, ms))

	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_ConnectionRefused(t *testing.T) {
	t.Parallel()

	c := New("http://127.0.0.1:1") // nothing listening
	_, err := c.Categories(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API server not running")
}

func TestClient_APIError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		status     int
		body       string
		wantDetail string
	}{
		{
			name:       "problem document",
			status:     http.StatusUnprocessableEntity,
			body:       `{"title":"Unprocessable Entity","status":422,"detail":"validation failed","errors":[{"message":"expected length >= 1","location":"body.text"}]}`,
			wantDetail: "validation failed; body.text: expected length >= 1",
		},
		{
			name:       "plain body",
			status:     http.StatusBadGateway,
			body:       "upstream down\n",
			wantDetail: "upstream down",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := New(srv.URL).Category(context.Background(), "x")
			require.Error(t, err)

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.wantDetail, apiErr.Detail)
			assert.Contains(t, err.Error(), "API error (HTTP")
		})
	}
}

func TestClient_Text(t *testing.T) {
	t.Parallel()

	c := New(newTestServer(t).URL + "/")
	ctx := context.Background()

	norm, err := c.Normalize(ctx, "Selling 24/7 Ammo Store!!")
	require.NoError(t, err)
	assert.Equal(t, "selling 24 7 ammunition store", norm.Normalized)
	assert.Equal(t, "selling 24 7 ammo store", norm.Search)

	sim, err := c.Similarity(ctx, "sultan rs", "Karin Sultan RS")
	require.NoError(t, err)
	assert.InDelta(t, 0.9, sim, 1e-9)

	m, err := c.Match(ctx, "sultan rs", []string{"Pegassi Zentorno", "Karin Sultan RS"})
	require.NoError(t, err)
	assert.True(t, m.Found)
	assert.Equal(t, "Karin Sultan RS", m.Match)

	name, err := c.Canonical(ctx, "selling my sultan rs full upgrades", "vehicle", "")
	require.NoError(t, err)
	assert.Equal(t, "Karin Sultan RS", name.Name)

	cat, err := c.Category(ctx, "Selling bar in Vespucci")
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryBar, cat.Category)
	assert.Equal(t, domain.AdSelling, cat.AdType)

	p, err := c.Price(ctx, "", "selling for 4.5m")
	require.NoError(t, err)
	assert.Equal(t, "$4.5 Million.", p.Formatted)

	ad, err := c.Format(ctx, "selling my sultan rs full upgrades 250k", "")
	require.NoError(t, err)
	assert.Equal(t, `Selling "Karin Sultan RS" with full upgrades. Price: $250.000.`, ad.Text)
	assert.Equal(t, domain.SourceRules, ad.Source)

	_, err = c.Format(ctx, "", "")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
}

func TestClient_Catalog(t *testing.T) {
	t.Parallel()

	c := New(newTestServer(t).URL)
	ctx := context.Background()

	n, err := c.ReplaceCatalog(ctx, []domain.CatalogRow{
		{Name: "Selling Karin Sultan RS", Description: "Full upgrades", Type: "Auto"},
		{Name: "Selling Bar in Vespucci", Description: "Fully stocked", Type: "bar"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	res, err := c.SearchCatalog(ctx, "sultan", 0)
	require.NoError(t, err)
	require.Len(t, res.Entries, 1)
	assert.Equal(t, domain.CategoryAuto, res.Entries[0].Category)

	s, err := c.Suggest(ctx, "selling b")
	require.NoError(t, err)
	assert.Equal(t, "Selling Bar in Vespucci", s)

	n, err = c.ReloadCatalog(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	cats, err := c.Categories(ctx)
	require.NoError(t, err)
	assert.Len(t, cats, len(domain.Categories()))
}

func TestClient_Feedback(t *testing.T) {
	t.Parallel()

	c := New(newTestServer(t).URL)
	ctx := context.Background()

	created, err := c.SubmitFeedback(ctx, FeedbackRequest{
		OriginalInput:  "selling bar in vespucci 500k",
		UserCorrection: "Selling Bar in Vespucci. Price: $500.000.",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, domain.CategoryBar, created.Category)

	got, err := c.GetFeedback(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.UserCorrection, got.UserCorrection)

	list, err := c.ListFeedback(ctx, &ListFeedbackParams{
		Category: "bar",
		Since:    time.Now().Add(-time.Hour),
		Limit:    10,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, list.Total)
	assert.Equal(t, 10, list.Limit)

	_, err = c.GetFeedback(ctx, "missing")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
}
