package catalog

import (
	domain "github.com/donaldgifford/lifeinvader-ads/pkg/types"
)

// Index is an immutable set of catalog entries. It is safe for concurrent
// use; a changed catalog means building a new Index.
type Index struct {
	entries []domain.CatalogEntry
}

// NewIndex resolves the category of every row and builds its entry.
func NewIndex(rows []domain.CatalogRow) *Index {
	entries := make([]domain.CatalogEntry, len(rows))
	for i, r := range rows {
		entries[i] = NewEntry(r, ResolveCategory(r))
	}
	return &Index{entries: entries}
}

// Len returns the number of entries.
func (x *Index) Len() int {
	if x == nil {
		return 0
	}
	return len(x.entries)
}

// Entries returns a copy of the entries in ingestion order.
func (x *Index) Entries() []domain.CatalogEntry {
	if x == nil {
		return nil
	}
	return append([]domain.CatalogEntry(nil), x.entries...)
}

// Filter runs FilterCatalog over the index.
func (x *Index) Filter(query string) []domain.CatalogEntry {
	if x == nil {
		return nil
	}
	return FilterCatalog(x.entries, query)
}

// Suggest runs Suggest over the index.
func (x *Index) Suggest(partial string) string {
	if x == nil {
		return ""
	}
	return Suggest(x.entries, partial)
}

// Categories returns the categories that have at least one entry, in the
// order of domain.Categories, with their entry counts.
func (x *Index) Categories() []CategoryCount {
	if x == nil {
		return nil
	}

	counts := make(map[domain.Category]int)
	for _, e := range x.entries {
		counts[e.Category]++
	}

	var out []CategoryCount
	for _, c := range domain.Categories() {
		if n := counts[c]; n > 0 {
			out = append(out, CategoryCount{Category: c, Display: c.Display(), Count: n})
		}
	}
	return out
}

// CategoryCount is a category present in an index.
type CategoryCount struct {
	Category domain.Category `json:"category"`
	Display  string          `json:"display"`
	Count    int             `json:"count"`
}
