package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/lifeinvader-ads/pkg/adformat"
	domain "github.com/donaldgifford/lifeinvader-ads/pkg/types"
)

// AdFormatter formats ads and never fails.
type AdFormatter interface {
	FormatAd(ctx context.Context, req adformat.FormatRequest) domain.FormattedAd
}

// FormatHandler handles ad formatting requests.
type FormatHandler struct {
	formatter AdFormatter
}

// NewFormatHandler creates a new FormatHandler.
func NewFormatHandler(f AdFormatter) *FormatHandler {
	return &FormatHandler{formatter: f}
}

// FormatInput is the request body for the format endpoint.
type FormatInput struct {
	Body struct {
		Text     string `json:"text" minLength:"1" maxLength:"2000" doc:"Raw ad text" example:"selling my sultan rs full upgrades 250k"`
		Category string `json:"category,omitempty" doc:"Optional category hint; ignored unless it is an official key" example:"auto"`
	}
}

// FormatOutput is the response body for the format endpoint.
type FormatOutput struct {
	Body struct {
		Text            string          `json:"text" example:"Selling \"Karin Sultan RS\" with full upgrades. Price: $250.000."`
		Category        domain.Category `json:"category" example:"auto"`
		DisplayCategory string          `json:"display_category" example:"Auto"`
		Source          string          `json:"source" enum:"ai,rules" doc:"Which formatter produced the text"`
		Formatted       string          `json:"formatted" doc:"Text and category in the posting shape"`
	}
}

// Format formats a raw ad. Backend failures fall back to the rule-based
// formatter, so this endpoint only fails on invalid input.
func (h *FormatHandler) Format(ctx context.Context, input *FormatInput) (*FormatOutput, error) {
	ad := h.formatter.FormatAd(ctx, adformat.FormatRequest{
		Text:     input.Body.Text,
		Category: domain.Category(input.Body.Category),
	})

	resp := &FormatOutput{}
	resp.Body.Text = ad.Text
	resp.Body.Category = ad.Category
	resp.Body.DisplayCategory = ad.Category.Display()
	resp.Body.Source = ad.Source
	resp.Body.Formatted = ad.String()
	return resp, nil
}

// RegisterFormatRoutes registers format endpoints with the Huma API.
func RegisterFormatRoutes(api huma.API, h *FormatHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "format-ad",
		Method:      http.MethodPost,
		Path:        "/api/v1/format",
		Summary:     "Format an ad",
		Description: "Rewrites a raw ad to the posting policy using the configured backend, " +
			"falling back to category templates.",
		Tags: []string{"format"},
	}, h.Format)
}
