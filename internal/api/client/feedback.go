package client

import (
	"context"
	"net/url"
	"strconv"
	"time"

	domain "github.com/donaldgifford/lifeinvader-ads/pkg/types"
)

// FeedbackRequest is a user correction to submit.
type FeedbackRequest struct {
	OriginalInput  string `json:"original_input"`
	AIResponse     string `json:"ai_response,omitempty"`
	UserCorrection string `json:"user_correction"`
	Category       string `json:"category,omitempty"`
}

// FeedbackResponse wraps a paginated feedback listing.
type FeedbackResponse struct {
	Entries []domain.FeedbackEntry `json:"entries"`
	Total   int                    `json:"total"`
	Limit   int                    `json:"limit"`
	Offset  int                    `json:"offset"`
}

// ListFeedbackParams defines query parameters for feedback listings.
type ListFeedbackParams struct {
	Category      string
	AdType        string
	FormatPattern string
	Search        string
	Since         time.Time
	Limit         int
	Offset        int
}

// SubmitFeedback stores a correction and returns it as classified by the
// server.
func (c *Client) SubmitFeedback(ctx context.Context, req FeedbackRequest) (*domain.FeedbackEntry, error) {
	var e domain.FeedbackEntry
	if err := c.post(ctx, "/api/v1/feedback", req, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

// ListFeedback returns corrections matching params, most recent first.
func (c *Client) ListFeedback(ctx context.Context, params *ListFeedbackParams) (*FeedbackResponse, error) {
	q := url.Values{}
	if params.Category != "" {
		q.Set("category", params.Category)
	}
	if params.AdType != "" {
		q.Set("ad_type", params.AdType)
	}
	if params.FormatPattern != "" {
		q.Set("format_pattern", params.FormatPattern)
	}
	if params.Search != "" {
		q.Set("search", params.Search)
	}
	if !params.Since.IsZero() {
		q.Set("since", params.Since.UTC().Format(time.RFC3339))
	}
	if params.Limit > 0 {
		q.Set("limit", strconv.Itoa(params.Limit))
	}
	if params.Offset > 0 {
		q.Set("offset", strconv.Itoa(params.Offset))
	}

	var resp FeedbackResponse
	if err := c.get(ctx, "/api/v1/feedback", q, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetFeedback returns a single correction by ID.
func (c *Client) GetFeedback(ctx context.Context, id string) (*domain.FeedbackEntry, error) {
	var e domain.FeedbackEntry
	if err := c.get(ctx, "/api/v1/feedback/"+url.PathEscape(id), nil, &e); err != nil {
		return nil, err
	}
	return &e, nil
}
