package adformat

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	domain "github.com/donaldgifford/lifeinvader-ads/pkg/types"
)

// Fallback reasons reported to the Observer.
const (
	ReasonDisabled    = "disabled"
	ReasonRateLimited = "rate_limited"
	ReasonTimeout     = "timeout"
	ReasonEmpty       = "empty_response"
	ReasonParse       = "parse_error"
	ReasonBackend     = "backend_error"
	ReasonPanic       = "panic"
)

// Observer receives formatting events. Implementations must be safe for
// concurrent use.
type Observer interface {
	AdFormatted(source string, category domain.Category)
	Fallback(reason string)
	FeedbackError(op string)
	BackendCall(backend string, elapsed time.Duration, err error)
}

// NopObserver ignores every event.
type NopObserver struct{}

// AdFormatted implements Observer.
func (NopObserver) AdFormatted(string, domain.Category) {}

// Fallback implements Observer.
func (NopObserver) Fallback(string) {}

// FeedbackError implements Observer.
func (NopObserver) FeedbackError(string) {}

// BackendCall implements Observer.
func (NopObserver) BackendCall(string, time.Duration, error) {}

// Service picks between the rich formatter and the rule-based one.
type Service struct {
	rich     Formatter
	rules    *RuleFormatter
	observer Observer
	logger   *slog.Logger
}

// ServiceOption configures the Service.
type ServiceOption func(*Service)

// WithRichFormatter enables the rich path. A nil formatter leaves it off.
func WithRichFormatter(f Formatter) ServiceOption {
	return func(s *Service) {
		s.rich = f
	}
}

// WithObserver sets the event observer.
func WithObserver(o Observer) ServiceOption {
	return func(s *Service) {
		s.observer = o
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) ServiceOption {
	return func(s *Service) {
		s.logger = l
	}
}

// NewService creates a Service. Without WithRichFormatter every ad is
// formatted by rules.
func NewService(opts ...ServiceOption) *Service {
	s := &Service{
		rules:    NewRuleFormatter(),
		observer: NopObserver{},
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RichEnabled reports whether a rich formatter is configured.
func (s *Service) RichEnabled() bool {
	return s.rich != nil
}

// FormatAd formats an ad. It never fails: without a rich formatter, or when
// the rich path returns an error or panics, the rule-based result is
// returned.
func (s *Service) FormatAd(ctx context.Context, req FormatRequest) domain.FormattedAd {
	if s.rich == nil {
		return s.fallback(ctx, req, ReasonDisabled, nil)
	}

	ad, err := s.tryRich(ctx, req)
	if err != nil {
		return s.fallback(ctx, req, fallbackReason(err), err)
	}

	s.observer.AdFormatted(ad.Source, ad.Category)
	return ad
}

func (s *Service) tryRich(ctx context.Context, req FormatRequest) (ad domain.FormattedAd, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", errRichPanic, r)
		}
	}()
	return s.rich.Format(ctx, req)
}

var errRichPanic = errors.New("rich formatter panicked")

func (s *Service) fallback(ctx context.Context, req FormatRequest, reason string, err error) domain.FormattedAd {
	if err != nil {
		s.logger.WarnContext(ctx, "rich formatting failed, using rules",
			"formatter", s.rich.Name(),
			"reason", reason,
			"error", err,
		)
	}
	s.observer.Fallback(reason)

	ad := s.rules.FormatText(req.Text, req.Category)
	s.observer.AdFormatted(ad.Source, ad.Category)
	return ad
}

func fallbackReason(err error) string {
	var parseErr *ParseError
	switch {
	case errors.Is(err, errRichPanic):
		return ReasonPanic
	case errors.Is(err, ErrRateLimited):
		return ReasonRateLimited
	case errors.Is(err, context.DeadlineExceeded):
		return ReasonTimeout
	case errors.Is(err, ErrEmptyResponse):
		return ReasonEmpty
	case errors.As(err, &parseErr):
		return ReasonParse
	case errors.Is(err, ErrNoBackend):
		return ReasonDisabled
	default:
		return ReasonBackend
	}
}
