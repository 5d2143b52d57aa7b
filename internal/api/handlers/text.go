package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/lifeinvader-ads/internal/metrics"
	"github.com/donaldgifford/lifeinvader-ads/pkg/canonical"
	"github.com/donaldgifford/lifeinvader-ads/pkg/classify"
	"github.com/donaldgifford/lifeinvader-ads/pkg/match"
	"github.com/donaldgifford/lifeinvader-ads/pkg/normalize"
	"github.com/donaldgifford/lifeinvader-ads/pkg/price"
	domain "github.com/donaldgifford/lifeinvader-ads/pkg/types"
)

// Canonical list kinds accepted by the canonical endpoint.
const (
	KindVehicle  = "vehicle"
	KindClothing = "clothing"
)

// TextHandler exposes the stateless text operations: normalization,
// similarity, matching, classification and price formatting.
type TextHandler struct{}

// NewTextHandler creates a new TextHandler.
func NewTextHandler() *TextHandler {
	return &TextHandler{}
}

// --- Input/Output types ---

// NormalizeInput is the request body for the normalize endpoint.
type NormalizeInput struct {
	Body struct {
		Text string `json:"text" doc:"Text to normalize" example:"Selling 24/7 Ammo Store!!"`
	}
}

// NormalizeOutput is the response body for the normalize endpoint.
type NormalizeOutput struct {
	Body struct {
		Normalized string `json:"normalized" doc:"Storage form with synonym folding" example:"selling 24 7 ammunition store"`
		Search     string `json:"search" doc:"Search form without synonym folding" example:"selling 24 7 ammo store"`
	}
}

// SimilarityInput is the request body for the similarity endpoint.
type SimilarityInput struct {
	Body struct {
		A string `json:"a" doc:"First string" example:"sultan rs"`
		B string `json:"b" doc:"Second string" example:"Karin Sultan RS"`
	}
}

// SimilarityOutput is the response body for the similarity endpoint.
type SimilarityOutput struct {
	Body struct {
		Similarity float64 `json:"similarity" doc:"Score in [0, 1]" example:"0.9"`
	}
}

// MatchInput is the request body for the match endpoint.
type MatchInput struct {
	Body struct {
		Input      string   `json:"input" minLength:"1" doc:"Text to match" example:"sultan"`
		Candidates []string `json:"candidates" minItems:"1" doc:"Candidate names"`
	}
}

// MatchOutput is the response body for the match endpoint.
type MatchOutput struct {
	Body struct {
		Found      bool    `json:"found" doc:"Whether a candidate cleared the acceptance threshold"`
		Match      string  `json:"match,omitempty" example:"Karin Sultan RS"`
		Similarity float64 `json:"similarity" example:"0.9"`
	}
}

// CanonicalInput is the request body for the canonical endpoint.
type CanonicalInput struct {
	Body struct {
		Text       string `json:"text" minLength:"1" doc:"Free text mentioning a name" example:"selling my sultan rs full upgrades"`
		Kind       string `json:"kind,omitempty" enum:"vehicle,clothing," doc:"Built-in candidate list (default vehicle)"`
		Candidates string `json:"candidates,omitempty" doc:"Newline-delimited candidate list; overrides kind"`
	}
}

// CanonicalOutput is the response body for the canonical endpoint.
type CanonicalOutput struct {
	Body struct {
		Found bool   `json:"found"`
		Name  string `json:"name" example:"Karin Sultan RS"`
	}
}

// CategoryInput is the request body for the category endpoint.
type CategoryInput struct {
	Body struct {
		Text string `json:"text" doc:"Ad text" example:"Selling bar in Vespucci"`
	}
}

// CategoryOutput is the response body for the category endpoint.
type CategoryOutput struct {
	Body struct {
		Category      domain.Category      `json:"category" example:"bar"`
		Display       string               `json:"display" example:"Bar"`
		AdType        domain.AdType        `json:"ad_type" example:"selling"`
		FormatPattern domain.FormatPattern `json:"format_pattern" example:"business"`
		Rule          string               `json:"rule,omitempty" doc:"Classifier rule that fired" example:"bar"`
	}
}

// PriceInput is the request body for the price endpoint.
type PriceInput struct {
	Body struct {
		Raw  string `json:"raw,omitempty" doc:"Raw price to format" example:"4500000"`
		Text string `json:"text,omitempty" doc:"Free text to extract a price from when raw is empty" example:"selling for 4.5m"`
	}
}

// PriceOutput is the response body for the price endpoint.
type PriceOutput struct {
	Body struct {
		Found     bool   `json:"found"`
		Raw       string `json:"raw,omitempty" example:"4500000"`
		Formatted string `json:"formatted" example:"$4.5 Million."`
	}
}

// --- Handlers ---

// Normalize returns the storage and search forms of a text.
func (*TextHandler) Normalize(_ context.Context, input *NormalizeInput) (*NormalizeOutput, error) {
	resp := &NormalizeOutput{}
	resp.Body.Normalized = normalize.Normalize(input.Body.Text)
	resp.Body.Search = normalize.SearchNormalize(input.Body.Text)
	return resp, nil
}

// Similarity scores two strings.
func (*TextHandler) Similarity(_ context.Context, input *SimilarityInput) (*SimilarityOutput, error) {
	resp := &SimilarityOutput{}
	resp.Body.Similarity = match.Similarity(input.Body.A, input.Body.B)
	return resp, nil
}

// Match finds the best candidate for an input.
func (*TextHandler) Match(_ context.Context, input *MatchInput) (*MatchOutput, error) {
	resp := &MatchOutput{}
	if m, ok := match.FindBestMatch(input.Body.Input, input.Body.Candidates); ok {
		resp.Body.Found = true
		resp.Body.Match = m.Match
		resp.Body.Similarity = m.Similarity
	}
	return resp, nil
}

// Canonical extracts an official name from free text.
func (*TextHandler) Canonical(_ context.Context, input *CanonicalInput) (*CanonicalOutput, error) {
	list := input.Body.Candidates
	if list == "" {
		switch input.Body.Kind {
		case KindClothing:
			list = canonical.ClothingBrands()
		default:
			list = canonical.Vehicles()
		}
	}

	resp := &CanonicalOutput{}
	resp.Body.Name = match.ExtractCanonicalName(input.Body.Text, list)
	resp.Body.Found = resp.Body.Name != ""

	outcome := "none"
	if resp.Body.Found {
		outcome = "found"
	}
	metrics.CanonicalLookupsTotal.WithLabelValues(outcome).Inc()
	return resp, nil
}

// Category classifies an ad.
func (*TextHandler) Category(_ context.Context, input *CategoryInput) (*CategoryOutput, error) {
	text := input.Body.Text
	c := classify.DetectCategory(text)

	resp := &CategoryOutput{}
	resp.Body.Category = c
	resp.Body.Display = c.Display()
	resp.Body.AdType = classify.DetectAdType(text)
	resp.Body.FormatPattern = classify.PatternFor(c)
	resp.Body.Rule = classify.DetectRule(text)
	return resp, nil
}

// Price formats a raw price, or extracts and formats one from free text.
// Without any price the result is "Negotiable".
func (*TextHandler) Price(_ context.Context, input *PriceInput) (*PriceOutput, error) {
	raw := input.Body.Raw
	if raw == "" && input.Body.Text != "" {
		raw, _ = price.Extract(input.Body.Text)
	}

	resp := &PriceOutput{}
	if raw == "" {
		resp.Body.Formatted = "Negotiable"
		return resp, nil
	}
	resp.Body.Found = true
	resp.Body.Raw = raw
	resp.Body.Formatted = price.Format(raw)
	return resp, nil
}

// RegisterTextRoutes registers the text endpoints with the Huma API.
func RegisterTextRoutes(api huma.API, h *TextHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "normalize-text",
		Method:      http.MethodPost,
		Path:        "/api/v1/normalize",
		Summary:     "Normalize text",
		Description: "Returns the storage form (synonyms folded) and the search form of a text.",
		Tags:        []string{"text"},
	}, h.Normalize)

	huma.Register(api, huma.Operation{
		OperationID: "score-similarity",
		Method:      http.MethodPost,
		Path:        "/api/v1/similarity",
		Summary:     "Score similarity",
		Description: "Scores two strings in [0, 1].",
		Tags:        []string{"text"},
	}, h.Similarity)

	huma.Register(api, huma.Operation{
		OperationID: "match-candidate",
		Method:      http.MethodPost,
		Path:        "/api/v1/match",
		Summary:     "Find best match",
		Description: "Returns the most similar candidate when it clears the acceptance threshold.",
		Tags:        []string{"text"},
	}, h.Match)

	huma.Register(api, huma.Operation{
		OperationID: "extract-canonical",
		Method:      http.MethodPost,
		Path:        "/api/v1/canonical",
		Summary:     "Extract canonical name",
		Description: "Finds the official vehicle or clothing brand name mentioned in free text.",
		Tags:        []string{"text"},
	}, h.Canonical)

	huma.Register(api, huma.Operation{
		OperationID: "detect-category",
		Method:      http.MethodPost,
		Path:        "/api/v1/category",
		Summary:     "Detect category",
		Description: "Classifies an ad into an official category and reports its intent.",
		Tags:        []string{"text"},
	}, h.Category)

	huma.Register(api, huma.Operation{
		OperationID: "format-price",
		Method:      http.MethodPost,
		Path:        "/api/v1/price",
		Summary:     "Format price",
		Description: "Formats a raw price in the house style, extracting it from text when needed.",
		Tags:        []string{"text"},
	}, h.Price)
}
