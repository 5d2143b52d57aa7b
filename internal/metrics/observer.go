package metrics

import (
	"time"

	"github.com/donaldgifford/lifeinvader-ads/pkg/adformat"
	domain "github.com/donaldgifford/lifeinvader-ads/pkg/types"
)

var _ adformat.Observer = AdObserver{}

// AdObserver records ad formatting events as Prometheus metrics.
type AdObserver struct{}

// AdFormatted implements adformat.Observer.
func (AdObserver) AdFormatted(source string, category domain.Category) {
	AdsFormattedTotal.WithLabelValues(source, string(category)).Inc()
}

// Fallback implements adformat.Observer.
func (AdObserver) Fallback(reason string) {
	FormatFallbacksTotal.WithLabelValues(reason).Inc()
}

// FeedbackError implements adformat.Observer.
func (AdObserver) FeedbackError(op string) {
	FeedbackErrorsTotal.WithLabelValues(op).Inc()
}

// BackendCall implements adformat.Observer.
func (AdObserver) BackendCall(backend string, elapsed time.Duration, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	BackendCallDuration.WithLabelValues(backend, outcome).Observe(elapsed.Seconds())
}
