// Package adformat turns raw ad text into a policy-compliant LifeInvader ad.
//
// A generative Backend produces the rich formatting when one is configured;
// the rule-based formatter is always available and is used whenever the rich
// path is missing or fails. Service.FormatAd never returns an error.
package adformat

import (
	"context"
	"errors"
)

// Errors returned by backends and formatters.
var (
	ErrRateLimited   = errors.New("generation budget exhausted")
	ErrEmptyResponse = errors.New("empty response from backend")
	ErrNoBackend     = errors.New("no generative backend configured")
	ErrTruncated     = errors.New("response cut off at the token limit")
)

// GenerateRequest defines the input for a text generation call.
type GenerateRequest struct {
	Prompt      string
	SystemMsg   string
	Temperature float64
	MaxTokens   int
}

// TokenUsage tracks token consumption.
type TokenUsage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// GenerateResponse holds the result of a generation call.
type GenerateResponse struct {
	Content string
	Model   string
	Usage   TokenUsage
	// Truncated reports that generation stopped at the token limit, so the
	// ad in Content may be missing its price or closing sentence.
	Truncated bool
}

// Backend is a generative text service. Implementations make a single
// attempt per call and never retry.
type Backend interface {
	Generate(ctx context.Context, req GenerateRequest) (GenerateResponse, error)
	Name() string
}
