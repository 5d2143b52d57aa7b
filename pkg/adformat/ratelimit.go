package adformat

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"
)

// RateLimitedBackend caps how often the wrapped backend is called. When the
// budget is exhausted Generate fails immediately with ErrRateLimited instead
// of waiting, so the caller falls back to rule-based formatting.
type RateLimitedBackend struct {
	next    Backend
	limiter *rate.Limiter
}

// NewRateLimitedBackend allows perSecond calls per second with the given
// burst. A non-positive perSecond disables limiting.
func NewRateLimitedBackend(next Backend, perSecond float64, burst int) *RateLimitedBackend {
	limit := rate.Limit(perSecond)
	if perSecond <= 0 {
		limit = rate.Inf
	}
	if burst < 1 {
		burst = 1
	}
	return &RateLimitedBackend{
		next:    next,
		limiter: rate.NewLimiter(limit, burst),
	}
}

// Name returns the wrapped backend's name.
func (b *RateLimitedBackend) Name() string {
	return b.next.Name()
}

// Generate forwards to the wrapped backend if a token is available.
func (b *RateLimitedBackend) Generate(
	ctx context.Context,
	req GenerateRequest,
) (GenerateResponse, error) {
	if !b.limiter.Allow() {
		return GenerateResponse{}, fmt.Errorf("%s: %w", b.next.Name(), ErrRateLimited)
	}
	return b.next.Generate(ctx, req)
}
