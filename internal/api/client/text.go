package client

import (
	"context"

	domain "github.com/donaldgifford/lifeinvader-ads/pkg/types"
)

// NormalizeResponse holds both normalized forms of a text.
type NormalizeResponse struct {
	Normalized string `json:"normalized"`
	Search     string `json:"search"`
}

// MatchResponse is the best candidate for an input.
type MatchResponse struct {
	Found      bool    `json:"found"`
	Match      string  `json:"match"`
	Similarity float64 `json:"similarity"`
}

// CanonicalResponse is an extracted official name.
type CanonicalResponse struct {
	Found bool   `json:"found"`
	Name  string `json:"name"`
}

// CategoryResponse is the classification of an ad.
type CategoryResponse struct {
	Category      domain.Category      `json:"category"`
	Display       string               `json:"display"`
	AdType        domain.AdType        `json:"ad_type"`
	FormatPattern domain.FormatPattern `json:"format_pattern"`
	Rule          string               `json:"rule"`
}

// PriceResponse is a formatted price.
type PriceResponse struct {
	Found     bool   `json:"found"`
	Raw       string `json:"raw"`
	Formatted string `json:"formatted"`
}

// FormatResponse is a formatted ad.
type FormatResponse struct {
	Text            string          `json:"text"`
	Category        domain.Category `json:"category"`
	DisplayCategory string          `json:"display_category"`
	Source          string          `json:"source"`
	Formatted       string          `json:"formatted"`
}

// Normalize returns the storage and search forms of text.
func (c *Client) Normalize(ctx context.Context, text string) (*NormalizeResponse, error) {
	var resp NormalizeResponse
	if err := c.post(ctx, "/api/v1/normalize", map[string]string{"text": text}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Similarity scores two strings.
func (c *Client) Similarity(ctx context.Context, a, b string) (float64, error) {
	var resp struct {
		Similarity float64 `json:"similarity"`
	}
	if err := c.post(ctx, "/api/v1/similarity", map[string]string{"a": a, "b": b}, &resp); err != nil {
		return 0, err
	}
	return resp.Similarity, nil
}

// Match finds the best candidate for input.
func (c *Client) Match(ctx context.Context, input string, candidates []string) (*MatchResponse, error) {
	body := map[string]any{"input": input, "candidates": candidates}
	var resp MatchResponse
	if err := c.post(ctx, "/api/v1/match", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Canonical extracts an official name from text. kind is "vehicle" or
// "clothing"; a non-empty candidates list overrides it.
func (c *Client) Canonical(ctx context.Context, text, kind, candidates string) (*CanonicalResponse, error) {
	body := struct {
		Text       string `json:"text"`
		Kind       string `json:"kind,omitempty"`
		Candidates string `json:"candidates,omitempty"`
	}{Text: text, Kind: kind, Candidates: candidates}

	var resp CanonicalResponse
	if err := c.post(ctx, "/api/v1/canonical", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Category classifies an ad.
func (c *Client) Category(ctx context.Context, text string) (*CategoryResponse, error) {
	var resp CategoryResponse
	if err := c.post(ctx, "/api/v1/category", map[string]string{"text": text}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Price formats raw, or extracts a price from text when raw is empty.
func (c *Client) Price(ctx context.Context, raw, text string) (*PriceResponse, error) {
	body := struct {
		Raw  string `json:"raw,omitempty"`
		Text string `json:"text,omitempty"`
	}{Raw: raw, Text: text}

	var resp PriceResponse
	if err := c.post(ctx, "/api/v1/price", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Format formats an ad. category is an optional hint.
func (c *Client) Format(ctx context.Context, text string, category domain.Category) (*FormatResponse, error) {
	body := struct {
		Text     string `json:"text"`
		Category string `json:"category,omitempty"`
	}{Text: text, Category: string(category)}

	var resp FormatResponse
	if err := c.post(ctx, "/api/v1/format", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
