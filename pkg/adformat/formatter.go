package adformat

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/donaldgifford/lifeinvader-ads/pkg/classify"
	domain "github.com/donaldgifford/lifeinvader-ads/pkg/types"
)

// FormatRequest is a raw ad to format.
type FormatRequest struct {
	Text string
	// Category is an optional hint. Invalid or empty hints are ignored.
	Category domain.Category
}

// Formatter turns a raw ad into a formatted one.
type Formatter interface {
	Format(ctx context.Context, req FormatRequest) (domain.FormattedAd, error)
	Name() string
}

// AIFormatter formats ads through a generative Backend. Every Format call
// makes at most one Generate call.
type AIFormatter struct {
	backend       Backend
	feedback      FeedbackSource
	feedbackLimit int
	scanLimit     int
	temperature   float64
	maxTokens     int
	timeout       time.Duration
	observer      Observer
	logger        *slog.Logger
}

// AIOption configures the AIFormatter.
type AIOption func(*AIFormatter)

// WithFeedbackSource sets where prior corrections are read from.
func WithFeedbackSource(src FeedbackSource) AIOption {
	return func(f *AIFormatter) {
		f.feedback = src
	}
}

// WithFeedbackLimit sets how many corrections go into a prompt, capped at
// MaxFeedbackContext.
func WithFeedbackLimit(n int) AIOption {
	return func(f *AIFormatter) {
		f.feedbackLimit = n
	}
}

// WithScanLimit sets how many stored corrections are read per lookup.
func WithScanLimit(n int) AIOption {
	return func(f *AIFormatter) {
		f.scanLimit = n
	}
}

// WithTemperature sets the generation temperature.
func WithTemperature(t float64) AIOption {
	return func(f *AIFormatter) {
		f.temperature = t
	}
}

// WithMaxTokens sets the response token limit.
func WithMaxTokens(n int) AIOption {
	return func(f *AIFormatter) {
		f.maxTokens = n
	}
}

// WithTimeout bounds each backend call. Zero means no bound beyond the
// caller's context.
func WithTimeout(d time.Duration) AIOption {
	return func(f *AIFormatter) {
		f.timeout = d
	}
}

// WithAIObserver sets the observer for backend calls and feedback errors.
func WithAIObserver(o Observer) AIOption {
	return func(f *AIFormatter) {
		f.observer = o
	}
}

// WithAILogger sets the logger.
func WithAILogger(l *slog.Logger) AIOption {
	return func(f *AIFormatter) {
		f.logger = l
	}
}

// NewAIFormatter creates an AIFormatter over backend.
func NewAIFormatter(backend Backend, opts ...AIOption) *AIFormatter {
	f := &AIFormatter{
		backend:       backend,
		feedbackLimit: MaxFeedbackContext,
		scanLimit:     50,
		temperature:   defaultTemperature,
		maxTokens:     defaultMaxTokens,
		observer:      NopObserver{},
		logger:        slog.Default(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Name returns the backend name.
func (f *AIFormatter) Name() string {
	if f.backend == nil {
		return "none"
	}
	return f.backend.Name()
}

// Format renders the prompt with relevant corrections, calls the backend once
// and parses the reply.
func (f *AIFormatter) Format(ctx context.Context, req FormatRequest) (domain.FormattedAd, error) {
	if f.backend == nil {
		return domain.FormattedAd{}, ErrNoBackend
	}

	prompt, err := RenderPrompt(req.Text, f.corrections(ctx, req))
	if err != nil {
		return domain.FormattedAd{}, fmt.Errorf("rendering format prompt: %w", err)
	}

	genCtx := ctx
	if f.timeout > 0 {
		var cancel context.CancelFunc
		genCtx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	start := time.Now()
	resp, err := f.backend.Generate(genCtx, GenerateRequest{
		Prompt:      prompt,
		SystemMsg:   systemMsg,
		Temperature: f.temperature,
		MaxTokens:   f.maxTokens,
	})
	f.observer.BackendCall(f.backend.Name(), time.Since(start), err)
	if err != nil {
		return domain.FormattedAd{}, fmt.Errorf("calling %s: %w", f.backend.Name(), err)
	}

	if resp.Truncated {
		return domain.FormattedAd{}, &ParseError{Backend: f.backend.Name(), Err: ErrTruncated}
	}

	ad, err := ParseResponse(resp.Content, req.Text)
	if err != nil {
		return domain.FormattedAd{}, &ParseError{Backend: f.backend.Name(), Err: err}
	}

	f.logger.Debug("ad formatted by backend",
		"backend", f.backend.Name(),
		"model", resp.Model,
		"tokens", resp.Usage.TotalTokens,
		"category", ad.Category,
	)
	return ad, nil
}

// corrections loads and ranks prior corrections. Feedback failures are
// logged and treated as no context.
func (f *AIFormatter) corrections(ctx context.Context, req FormatRequest) []domain.FeedbackEntry {
	if f.feedback == nil {
		return nil
	}

	category := req.Category
	if !domain.IsValidCategory(string(category)) {
		category = classify.DetectCategory(req.Text)
	}

	byCategory, err := f.feedback.ListFeedbackByCategory(ctx, category, f.scanLimit)
	if err != nil {
		f.feedbackFailed("by_category", err)
		byCategory = nil
	}

	recent, err := f.feedback.ListRecentFeedback(ctx, f.scanLimit)
	if err != nil {
		f.feedbackFailed("recent", err)
		recent = nil
	}

	return SelectFeedback(
		req.Text,
		classify.DetectAdType(req.Text),
		classify.PatternFor(category),
		slices.Concat(byCategory, recent),
		f.feedbackLimit,
	)
}

func (f *AIFormatter) feedbackFailed(op string, err error) {
	f.observer.FeedbackError(op)
	f.logger.Warn("feedback lookup failed, formatting without corrections",
		"op", op,
		"error", err,
	)
}
