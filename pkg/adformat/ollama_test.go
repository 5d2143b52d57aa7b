package adformat_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/lifeinvader-ads/pkg/adformat"
)

func TestOllamaBackend_Generate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		handler    http.HandlerFunc
		wantErr    bool
		wantErrMsg string
		wantEmpty  bool
		wantResp   string
		wantUsage  int
		wantCut    bool
	}{
		{
			name: "successful generation",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/generate", r.URL.Path)

				var body map[string]any
				assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
				assert.Equal(t, "mistral", body["model"])
				assert.Equal(t, false, body["stream"])

				_, _ = w.Write([]byte(`{
					"model": "mistral",
					"response": "Offering Taxi Services. Price: $500.\nCategory: services",
					"prompt_eval_count": 90,
					"eval_count": 12
				}`))
			},
			wantResp:  "Offering Taxi Services. Price: $500.\nCategory: services",
			wantUsage: 102,
		},
		{
			name: "stopped by num_predict",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{
					"model": "mistral",
					"response": "Offering Taxi Services. Pri",
					"done_reason": "length",
					"prompt_eval_count": 90,
					"eval_count": 64
				}`))
			},
			wantResp:  "Offering Taxi Services. Pri",
			wantUsage: 154,
			wantCut:   true,
		},
		{
			name: "server error",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte(`model not loaded`))
			},
			wantErr:    true,
			wantErrMsg: "model not loaded",
		},
		{
			name: "invalid JSON",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{`))
			},
			wantErr:    true,
			wantErrMsg: "parsing ollama response",
		},
		{
			name: "blank response",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"model":"mistral","response":"  "}`))
			},
			wantErr:   true,
			wantEmpty: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			backend := adformat.NewOllamaBackend(srv.URL+"/", "mistral",
				adformat.WithOllamaHTTPClient(srv.Client()),
			)
			assert.Equal(t, "ollama", backend.Name())

			resp, err := backend.Generate(context.Background(), adformat.GenerateRequest{
				Prompt:      "format this",
				Temperature: 0.2,
				MaxTokens:   64,
			})

			if tt.wantErr {
				require.Error(t, err)
				if tt.wantEmpty {
					assert.True(t, errors.Is(err, adformat.ErrEmptyResponse))
				} else {
					assert.Contains(t, err.Error(), tt.wantErrMsg)
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantResp, resp.Content)
			assert.Equal(t, "mistral", resp.Model)
			assert.Equal(t, tt.wantUsage, resp.Usage.TotalTokens)
			assert.Equal(t, tt.wantCut, resp.Truncated)
		})
	}
}
