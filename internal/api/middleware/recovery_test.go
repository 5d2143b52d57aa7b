package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecovery_NoPanic(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/categories", http.NoBody)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := Recovery(logger)(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, buf.String())
}

func TestRecovery_Panic(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		method     string
		path       string
		value      any
		wantLogged []string
	}{
		{
			name:       "string value",
			method:     http.MethodPost,
			path:       "/api/v1/format",
			value:      "formatter exploded",
			wantLogged: []string{"panic recovered", "formatter exploded", "path=/api/v1/format"},
		},
		{
			name:       "non-string value",
			method:     http.MethodGet,
			path:       "/api/v1/catalog/search",
			value:      42,
			wantLogged: []string{"42", "method=GET"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, nil))

			e := echo.New()
			req := httptest.NewRequest(tt.method, tt.path, http.NoBody)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := Recovery(logger)(func(_ echo.Context) error {
				panic(tt.value)
			})(c)
			require.NoError(t, err)

			assert.Equal(t, http.StatusInternalServerError, rec.Code)
			assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "application/problem+json")
			assert.Contains(t, rec.Body.String(), `"status":500`)
			for _, s := range tt.wantLogged {
				assert.Contains(t, buf.String(), s)
			}
		})
	}
}
