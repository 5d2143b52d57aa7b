package client

import (
	"context"
	"net/url"
	"strconv"

	domain "github.com/donaldgifford/lifeinvader-ads/pkg/types"
)

// SearchResponse wraps catalog search results.
type SearchResponse struct {
	Entries []domain.CatalogEntry `json:"entries"`
	Total   int                   `json:"total"`
}

// CategoryCount is an official category with its catalog entry count.
type CategoryCount struct {
	Category domain.Category `json:"category"`
	Display  string          `json:"display"`
	Count    int             `json:"count"`
}

type catalogSize struct {
	Entries int `json:"entries"`
}

// SearchCatalog filters the catalog. limit 0 returns every match.
func (c *Client) SearchCatalog(ctx context.Context, query string, limit int) (*SearchResponse, error) {
	q := url.Values{}
	if query != "" {
		q.Set("q", query)
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	var resp SearchResponse
	if err := c.get(ctx, "/api/v1/catalog/search", q, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Suggest completes a partial query, or returns "".
func (c *Client) Suggest(ctx context.Context, partial string) (string, error) {
	var resp struct {
		Suggestion string `json:"suggestion"`
	}
	if err := c.get(ctx, "/api/v1/catalog/suggest", url.Values{"q": {partial}}, &resp); err != nil {
		return "", err
	}
	return resp.Suggestion, nil
}

// ReplaceCatalog uploads rows as the whole catalog and returns the live size.
func (c *Client) ReplaceCatalog(ctx context.Context, rows []domain.CatalogRow) (int, error) {
	body := map[string]any{"templates": rows}
	var resp catalogSize
	if err := c.put(ctx, "/api/v1/catalog", body, &resp); err != nil {
		return 0, err
	}
	return resp.Entries, nil
}

// ReloadCatalog rebuilds the server's index from its store.
func (c *Client) ReloadCatalog(ctx context.Context) (int, error) {
	var resp catalogSize
	if err := c.post(ctx, "/api/v1/catalog/reload", nil, &resp); err != nil {
		return 0, err
	}
	return resp.Entries, nil
}

// Categories lists the official categories.
func (c *Client) Categories(ctx context.Context) ([]CategoryCount, error) {
	var resp struct {
		Categories []CategoryCount `json:"categories"`
	}
	if err := c.get(ctx, "/api/v1/categories", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Categories, nil
}
