package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/lifeinvader-ads/internal/engine"
	"github.com/donaldgifford/lifeinvader-ads/internal/store"
	domain "github.com/donaldgifford/lifeinvader-ads/pkg/types"
)

// FeedbackSubmitter classifies and stores a user correction.
type FeedbackSubmitter interface {
	SubmitFeedback(ctx context.Context, e *domain.FeedbackEntry) error
}

// FeedbackHandler handles user corrections.
type FeedbackHandler struct {
	submitter FeedbackSubmitter
	store     store.Store
}

// NewFeedbackHandler creates a new FeedbackHandler.
func NewFeedbackHandler(sub FeedbackSubmitter, s store.Store) *FeedbackHandler {
	return &FeedbackHandler{submitter: sub, store: s}
}

// --- Input/Output types ---

// SubmitFeedbackInput is the request body for submitting a correction.
type SubmitFeedbackInput struct {
	Body struct {
		OriginalInput  string `json:"original_input" minLength:"1" doc:"Ad text as the player wrote it" example:"selling my sultan rs 250k"`
		AIResponse     string `json:"ai_response,omitempty" doc:"Formatter output that was corrected"`
		UserCorrection string `json:"user_correction" minLength:"1" doc:"Corrected ad text" example:"Selling \"Karin Sultan RS\". Price: $250.000."`
		Category       string `json:"category,omitempty" doc:"Category key; detected from the input when missing" example:"auto"`
	}
}

// FeedbackOutput wraps a single correction.
type FeedbackOutput struct {
	Body domain.FeedbackEntry
}

// ListFeedbackInput is the input for listing corrections.
type ListFeedbackInput struct {
	Category      string `query:"category"       doc:"Filter by category key"`
	AdType        string `query:"ad_type"        doc:"Filter by ad type"                          enum:"selling,buying,hiring,offering,dating,unknown,"`
	FormatPattern string `query:"format_pattern" doc:"Filter by format pattern"`
	Search        string `query:"search"         doc:"Case-insensitive match on input or correction"`
	Since         string `query:"since"          doc:"Only corrections at or after this RFC 3339 time" example:"2026-01-02T15:04:05Z"`
	Limit         int    `query:"limit"          doc:"Number of results"                          minimum:"1" maximum:"500" default:"50"`
	Offset        int    `query:"offset"         doc:"Pagination offset"                          minimum:"0"`
}

// ListFeedbackOutput is the response for listing corrections.
type ListFeedbackOutput struct {
	Body struct {
		Entries []domain.FeedbackEntry `json:"entries"`
		Total   int                    `json:"total"`
		Limit   int                    `json:"limit"`
		Offset  int                    `json:"offset"`
	}
}

// GetFeedbackInput is the input for getting a single correction.
type GetFeedbackInput struct {
	ID string `path:"id" doc:"Feedback UUID"`
}

// --- Handlers ---

// Submit stores a user correction.
func (h *FeedbackHandler) Submit(ctx context.Context, input *SubmitFeedbackInput) (*FeedbackOutput, error) {
	e := domain.FeedbackEntry{
		OriginalInput:  input.Body.OriginalInput,
		AIResponse:     input.Body.AIResponse,
		UserCorrection: input.Body.UserCorrection,
		Category:       domain.Category(input.Body.Category),
	}

	if err := h.submitter.SubmitFeedback(ctx, &e); err != nil {
		if errors.Is(err, engine.ErrInvalidFeedback) {
			return nil, huma.Error422UnprocessableEntity(err.Error())
		}
		return nil, huma.Error500InternalServerError("storing feedback failed: " + err.Error())
	}

	return &FeedbackOutput{Body: e}, nil
}

// List returns corrections with optional filters, most recent first.
func (h *FeedbackHandler) List(ctx context.Context, input *ListFeedbackInput) (*ListFeedbackOutput, error) {
	q := &store.FeedbackQuery{
		Limit:  input.Limit,
		Offset: input.Offset,
	}

	if input.Category != "" {
		if !domain.IsValidCategory(input.Category) {
			return nil, huma.Error422UnprocessableEntity("unknown category: " + input.Category)
		}
		q.Category = &input.Category
	}
	if input.AdType != "" {
		q.AdType = &input.AdType
	}
	if input.FormatPattern != "" {
		q.FormatPattern = &input.FormatPattern
	}
	if input.Search != "" {
		q.Search = &input.Search
	}
	if input.Since != "" {
		since, err := time.Parse(time.RFC3339, input.Since)
		if err != nil {
			return nil, huma.Error422UnprocessableEntity("since must be an RFC 3339 time")
		}
		q.Since = &since
	}

	entries, total, err := h.store.ListFeedback(ctx, q)
	if err != nil {
		return nil, huma.Error500InternalServerError("feedback query failed: " + err.Error())
	}
	if entries == nil {
		entries = []domain.FeedbackEntry{}
	}

	resp := &ListFeedbackOutput{}
	resp.Body.Entries = entries
	resp.Body.Total = total
	resp.Body.Limit = q.Limit
	resp.Body.Offset = q.Offset
	return resp, nil
}

// Get returns a single correction by ID.
func (h *FeedbackHandler) Get(ctx context.Context, input *GetFeedbackInput) (*FeedbackOutput, error) {
	e, err := h.store.GetFeedback(ctx, input.ID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, huma.Error404NotFound("feedback not found")
	}
	if err != nil {
		return nil, huma.Error500InternalServerError("feedback lookup failed: " + err.Error())
	}
	return &FeedbackOutput{Body: *e}, nil
}

// RegisterFeedbackRoutes registers feedback endpoints with the Huma API.
func RegisterFeedbackRoutes(api huma.API, h *FeedbackHandler) {
	huma.Register(api, huma.Operation{
		OperationID:   "submit-feedback",
		Method:        http.MethodPost,
		Path:          "/api/v1/feedback",
		Summary:       "Submit a correction",
		Description:   "Stores a user correction; recent corrections guide later formatting.",
		Tags:          []string{"feedback"},
		DefaultStatus: http.StatusCreated,
		Errors:        []int{http.StatusUnprocessableEntity, http.StatusInternalServerError},
	}, h.Submit)

	huma.Register(api, huma.Operation{
		OperationID: "list-feedback",
		Method:      http.MethodGet,
		Path:        "/api/v1/feedback",
		Summary:     "List corrections",
		Description: "Returns corrections, most recent first, with optional filters and pagination.",
		Tags:        []string{"feedback"},
		Errors:      []int{http.StatusUnprocessableEntity, http.StatusInternalServerError},
	}, h.List)

	huma.Register(api, huma.Operation{
		OperationID: "get-feedback",
		Method:      http.MethodGet,
		Path:        "/api/v1/feedback/{id}",
		Summary:     "Get a correction",
		Description: "Returns a single correction by its UUID.",
		Tags:        []string{"feedback"},
		Errors:      []int{http.StatusNotFound},
	}, h.Get)
}
