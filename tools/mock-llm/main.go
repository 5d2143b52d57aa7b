// Package main implements a mock generative backend for local development.
// It answers the Anthropic Messages, Ollama generate and OpenAI chat
// completion endpoints with rule-formatted ads, so rich formatting can be
// exercised without API keys or a GPU.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/donaldgifford/lifeinvader-ads/pkg/adformat"
	"github.com/donaldgifford/lifeinvader-ads/pkg/logger"
)

const mockModel = "mock-formatter"

// options control failure injection.
type options struct {
	delay     time.Duration
	failEvery int
}

func main() {
	port := flag.Int("port", 8089, "port to listen on")
	delay := flag.Duration("delay", 0, "delay before every reply, e.g. 20s to trigger timeouts")
	failEvery := flag.Int("fail-every", 0, "answer every Nth request with HTTP 500 (0 disables)")
	flag.Parse()

	log := logger.New("debug", "console")

	addr := fmt.Sprintf(":%d", *port)
	log.Info("starting mock backend", "addr", addr, "delay", *delay, "fail_every", *failEvery)

	srv := &http.Server{
		Addr:         addr,
		Handler:      requestLogger(log, newMux(log, options{delay: *delay, failEvery: *failEvery})),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: time.Minute,
	}
	if err := srv.ListenAndServe(); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func newMux(log *slog.Logger, opts options) *http.ServeMux {
	m := &mock{log: log, opts: opts, rules: adformat.NewRuleFormatter()}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/messages", m.anthropic)
	mux.HandleFunc("POST /api/generate", m.ollama)
	mux.HandleFunc("POST /v1/chat/completions", m.openAI)
	return mux
}

func requestLogger(log *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Debug("request", "method", r.Method, "path", r.URL.Path)
		next.ServeHTTP(w, r)
	})
}

type mock struct {
	log      *slog.Logger
	opts     options
	rules    *adformat.RuleFormatter
	requests atomic.Int64
}

// reply formats the ad at the end of prompt the way a well-behaved model
// would answer: the ad on one line, then its category.
func (m *mock) reply(prompt string) string {
	ad := m.rules.FormatText(adFromPrompt(prompt), "")
	return ad.Text + "\nCategory: " + string(ad.Category)
}

// adFromPrompt returns the text after the last "Ad:" line.
func adFromPrompt(prompt string) string {
	if i := strings.LastIndex(prompt, "Ad:"); i >= 0 {
		return strings.TrimSpace(prompt[i+len("Ad:"):])
	}
	return strings.TrimSpace(prompt)
}

// inject applies the configured delay and reports whether this request
// should fail.
func (m *mock) inject(r *http.Request) bool {
	n := m.requests.Add(1)
	if m.opts.delay > 0 {
		select {
		case <-time.After(m.opts.delay):
		case <-r.Context().Done():
		}
	}
	return m.opts.failEvery > 0 && n%int64(m.opts.failEvery) == 0
}

func (m *mock) anthropic(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("x-api-key") == "" {
		writeJSON(w, http.StatusUnauthorized, map[string]any{
			"type":  "error",
			"error": map[string]string{"type": "authentication_error", "message": "x-api-key header is required"},
		})
		return
	}

	var req struct {
		Messages []struct {
			Content string `json:"content"`
		} `json:"messages"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.Messages) == 0 {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"type":  "error",
			"error": map[string]string{"type": "invalid_request_error", "message": "messages are required"},
		})
		return
	}
	if m.inject(r) {
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"type":  "error",
			"error": map[string]string{"type": "api_error", "message": "injected failure"},
		})
		return
	}

	prompt := req.Messages[len(req.Messages)-1].Content
	text := m.reply(prompt)
	writeJSON(w, http.StatusOK, map[string]any{
		"type":    "message",
		"role":    "assistant",
		"model":   mockModel,
		"content": []map[string]string{{"type": "text", "text": text}},
		"usage":   map[string]int{"input_tokens": tokens(prompt), "output_tokens": tokens(text)},
	})
	m.log.Info("anthropic reply", "chars", len(text))
}

func (m *mock) ollama(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Prompt string `json:"prompt"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Prompt == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "prompt is required"})
		return
	}
	if m.inject(r) {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "injected failure"})
		return
	}

	text := m.reply(req.Prompt)
	writeJSON(w, http.StatusOK, map[string]any{
		"model":             mockModel,
		"response":          text,
		"done":              true,
		"prompt_eval_count": tokens(req.Prompt),
		"eval_count":        tokens(text),
	})
	m.log.Info("ollama reply", "chars", len(text))
}

func (m *mock) openAI(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.Messages) == 0 {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error": map[string]string{"type": "invalid_request_error", "message": "messages are required"},
		})
		return
	}
	if m.inject(r) {
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"error": map[string]string{"type": "server_error", "message": "injected failure"},
		})
		return
	}

	prompt := req.Messages[len(req.Messages)-1].Content
	text := m.reply(prompt)
	in, out := tokens(prompt), tokens(text)
	writeJSON(w, http.StatusOK, map[string]any{
		"id":      fmt.Sprintf("chatcmpl-mock-%d", m.requests.Load()),
		"object":  "chat.completion",
		"created": time.Now().Unix(),
		"model":   mockModel,
		"choices": []map[string]any{{
			"index":         0,
			"message":       map[string]string{"role": "assistant", "content": text},
			"finish_reason": "stop",
		}},
		"usage": map[string]int{"prompt_tokens": in, "completion_tokens": out, "total_tokens": in + out},
	})
	m.log.Info("openai reply", "chars", len(text))
}

// tokens approximates a token count by whitespace-separated words.
func tokens(s string) int {
	return len(strings.Fields(s))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
	json.NewEncoder(w).Encode(v)
}
