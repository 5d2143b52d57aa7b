package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/lifeinvader-ads/pkg/catalog"
	domain "github.com/donaldgifford/lifeinvader-ads/pkg/types"
)

// CatalogEngine serves and updates the live catalog.
type CatalogEngine interface {
	Index() *catalog.Index
	Search(query string) []domain.CatalogEntry
	Suggest(partial string) string
	ReplaceCatalog(ctx context.Context, rows []domain.CatalogRow) (int, error)
	ReloadCatalog(ctx context.Context) (int, error)
}

// CatalogHandler handles catalog search and maintenance.
type CatalogHandler struct {
	engine CatalogEngine
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(e CatalogEngine) *CatalogHandler {
	return &CatalogHandler{engine: e}
}

// --- Input/Output types ---

// SearchCatalogInput is the input for catalog search.
type SearchCatalogInput struct {
	Query string `query:"q"     doc:"Search query; empty returns every entry" example:"sultan"`
	Limit int    `query:"limit" doc:"Maximum entries to return (0 for all)"     minimum:"0" maximum:"1000"`
}

// SearchCatalogOutput is the response for catalog search.
type SearchCatalogOutput struct {
	Body struct {
		Entries []domain.CatalogEntry `json:"entries"`
		Total   int                   `json:"total" doc:"Matches before the limit was applied"`
	}
}

// SuggestInput is the input for autocomplete.
type SuggestInput struct {
	Partial string `query:"q" doc:"Partial query" example:"selling k"`
}

// SuggestOutput is the response for autocomplete.
type SuggestOutput struct {
	Body struct {
		Suggestion string `json:"suggestion" doc:"Completion, or empty" example:"Selling Karin Sultan RS"`
	}
}

// ReplaceCatalogInput is the request body for replacing the catalog.
type ReplaceCatalogInput struct {
	Body struct {
		Templates []domain.CatalogRow `json:"templates" doc:"Template rows in display order"`
	}
}

// CatalogSizeOutput reports the size of the live catalog.
type CatalogSizeOutput struct {
	Body struct {
		Entries int `json:"entries" example:"120"`
	}
}

// CategoriesOutput lists the official categories.
type CategoriesOutput struct {
	Body struct {
		Categories []catalog.CategoryCount `json:"categories"`
	}
}

// --- Handlers ---

// Search filters the catalog.
func (h *CatalogHandler) Search(_ context.Context, input *SearchCatalogInput) (*SearchCatalogOutput, error) {
	entries := h.engine.Search(input.Query)
	total := len(entries)
	if input.Limit > 0 && len(entries) > input.Limit {
		entries = entries[:input.Limit]
	}
	if entries == nil {
		entries = []domain.CatalogEntry{}
	}

	resp := &SearchCatalogOutput{}
	resp.Body.Entries = entries
	resp.Body.Total = total
	return resp, nil
}

// Suggest completes a partial query.
func (h *CatalogHandler) Suggest(_ context.Context, input *SuggestInput) (*SuggestOutput, error) {
	resp := &SuggestOutput{}
	resp.Body.Suggestion = h.engine.Suggest(input.Partial)
	return resp, nil
}

// Replace stores a new catalog and makes it live.
func (h *CatalogHandler) Replace(ctx context.Context, input *ReplaceCatalogInput) (*CatalogSizeOutput, error) {
	for i, r := range input.Body.Templates {
		if r.Name == "" {
			return nil, huma.Error422UnprocessableEntity("template name is required",
				&huma.ErrorDetail{Location: "body.templates", Value: i})
		}
	}

	n, err := h.engine.ReplaceCatalog(ctx, input.Body.Templates)
	if err != nil {
		return nil, huma.Error500InternalServerError("catalog replace failed: " + err.Error())
	}

	resp := &CatalogSizeOutput{}
	resp.Body.Entries = n
	return resp, nil
}

// Reload rebuilds the live catalog from the store.
func (h *CatalogHandler) Reload(ctx context.Context, _ *struct{}) (*CatalogSizeOutput, error) {
	n, err := h.engine.ReloadCatalog(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("catalog reload failed: " + err.Error())
	}

	resp := &CatalogSizeOutput{}
	resp.Body.Entries = n
	return resp, nil
}

// Categories lists every official category with its catalog entry count.
func (h *CatalogHandler) Categories(_ context.Context, _ *struct{}) (*CategoriesOutput, error) {
	counts := make(map[domain.Category]int)
	for _, c := range h.engine.Index().Categories() {
		counts[c.Category] = c.Count
	}

	cats := domain.Categories()
	out := make([]catalog.CategoryCount, len(cats))
	for i, c := range cats {
		out[i] = catalog.CategoryCount{Category: c, Display: c.Display(), Count: counts[c]}
	}

	resp := &CategoriesOutput{}
	resp.Body.Categories = out
	return resp, nil
}

// RegisterCatalogRoutes registers catalog endpoints with the Huma API.
func RegisterCatalogRoutes(api huma.API, h *CatalogHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "search-catalog",
		Method:      http.MethodGet,
		Path:        "/api/v1/catalog/search",
		Summary:     "Search the catalog",
		Description: "Returns entries matching every query term, inferred category first.",
		Tags:        []string{"catalog"},
	}, h.Search)

	huma.Register(api, huma.Operation{
		OperationID: "suggest-catalog",
		Method:      http.MethodGet,
		Path:        "/api/v1/catalog/suggest",
		Summary:     "Autocomplete",
		Description: "Returns the first catalog field that extends the partial query.",
		Tags:        []string{"catalog"},
	}, h.Suggest)

	huma.Register(api, huma.Operation{
		OperationID: "replace-catalog",
		Method:      http.MethodPut,
		Path:        "/api/v1/catalog",
		Summary:     "Replace the catalog",
		Description: "Stores the given templates as the whole catalog and rebuilds the index.",
		Tags:        []string{"catalog"},
		Errors:      []int{http.StatusUnprocessableEntity, http.StatusInternalServerError},
	}, h.Replace)

	huma.Register(api, huma.Operation{
		OperationID: "reload-catalog",
		Method:      http.MethodPost,
		Path:        "/api/v1/catalog/reload",
		Summary:     "Reload the catalog",
		Description: "Rebuilds the live index from the stored templates.",
		Tags:        []string{"catalog"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.Reload)

	huma.Register(api, huma.Operation{
		OperationID: "list-categories",
		Method:      http.MethodGet,
		Path:        "/api/v1/categories",
		Summary:     "List categories",
		Description: "Returns every official category with its label and catalog entry count.",
		Tags:        []string{"catalog"},
	}, h.Categories)
}
