package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/lifeinvader-ads/internal/api/handlers"
	storeMocks "github.com/donaldgifford/lifeinvader-ads/internal/store/mocks"
)

func TestHealthHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		path       string
		pingErr    error
		wantPing   bool
		wantStatus int
		wantBody   string
	}{
		{
			name:       "liveness never touches the store",
			path:       "/healthz",
			wantStatus: http.StatusOK,
			wantBody:   `{"status":"ok"}`,
		},
		{
			name:       "ready when store answers",
			path:       "/readyz",
			wantPing:   true,
			wantStatus: http.StatusOK,
			wantBody:   `{"status":"ready"}`,
		},
		{
			name:       "unavailable when store ping fails",
			path:       "/readyz",
			wantPing:   true,
			pingErr:    errors.New("connection refused"),
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   `{"status":"unavailable"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			if tt.wantPing {
				ms.EXPECT().Ping(mock.Anything).Return(tt.pingErr).Once()
			}
			h := handlers.NewHealthHandler(ms)

			e := echo.New()
			e.GET("/healthz", h.Healthz)
			e.GET("/readyz", h.Readyz)

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, http.NoBody))

			require.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
