package adformat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// APIError is a non-200 reply from a backend's HTTP API.
type APIError struct {
	Backend string
	Status  int
	Detail  string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s API error (status %d): %s", e.Backend, e.Status, e.Detail)
}

// Unwrap reports provider-side throttling as ErrRateLimited so the service
// records the same fallback reason as for the local budget.
func (e *APIError) Unwrap() error {
	if e.Status == http.StatusTooManyRequests {
		return ErrRateLimited
	}
	return nil
}

// postJSON sends payload as JSON and decodes a 200 reply into out.
func postJSON(
	ctx context.Context,
	client *http.Client,
	backend, url string,
	header http.Header,
	payload, out any,
) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling %s request: %w", backend, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating %s request: %w", backend, err)
	}
	for k, v := range header {
		req.Header[k] = v
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("calling %s: %w", backend, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading %s response: %w", backend, err)
	}

	if resp.StatusCode != http.StatusOK {
		return &APIError{Backend: backend, Status: resp.StatusCode, Detail: errorDetail(raw)}
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("parsing %s response: %w", backend, err)
	}
	return nil
}

// errorDetail pulls the message out of the error bodies the supported APIs
// send: {"error":"..."} (Ollama) and {"error":{"type":..,"message":..}}
// (Anthropic, OpenAI). Anything else is returned as trimmed text.
func errorDetail(raw []byte) string {
	var env struct {
		Error json.RawMessage `json:"error"`
	}
	if json.Unmarshal(raw, &env) == nil && len(env.Error) > 0 {
		var msg string
		if json.Unmarshal(env.Error, &msg) == nil && msg != "" {
			return msg
		}
		var typed struct {
			Type    string `json:"type"`
			Message string `json:"message"`
		}
		if json.Unmarshal(env.Error, &typed) == nil && typed.Message != "" {
			if typed.Type == "" {
				return typed.Message
			}
			return typed.Type + ": " + typed.Message
		}
	}
	return strings.TrimSpace(string(raw))
}
