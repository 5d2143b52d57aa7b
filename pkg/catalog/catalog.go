// Package catalog indexes ad templates for search-as-you-type filtering and
// autocomplete.
//
// Normalized fields are computed once when an entry is built, so Filter and
// Suggest only do substring and prefix checks and are cheap enough to run on
// every keystroke. Debouncing and discarding stale results are up to the
// caller.
package catalog

import (
	"strconv"
	"strings"

	"github.com/donaldgifford/lifeinvader-ads/pkg/classify"
	"github.com/donaldgifford/lifeinvader-ads/pkg/normalize"
	domain "github.com/donaldgifford/lifeinvader-ads/pkg/types"
)

// NewEntry builds an indexed entry from a raw row. The normalized fields are
// always Normalize of their source field.
func NewEntry(row domain.CatalogRow, category domain.Category) domain.CatalogEntry {
	return domain.CatalogEntry{
		Name:                  row.Name,
		Description:           row.Description,
		Type:                  row.Type,
		Category:              category,
		DisplayCategory:       category.Display(),
		NormalizedName:        normalize.Normalize(row.Name),
		NormalizedDescription: normalize.Normalize(row.Description),
		NormalizedType:        normalize.Normalize(row.Type),
	}
}

// ResolveCategory works out the category of a row. The type column is tried
// as a category key, a numeric "n<digits>" id (1-based position in
// domain.Categories) and a display label, in that order. Rows whose type
// resolves to nothing are classified from their name and description.
func ResolveCategory(row domain.CatalogRow) domain.Category {
	if c, ok := categoryFromType(row.Type); ok {
		return c
	}
	return classify.DetectCategory(row.Name + " " + row.Description)
}

func categoryFromType(typ string) (domain.Category, bool) {
	key := normalize.Normalize(typ)
	if key == "" {
		return "", false
	}

	if domain.IsValidCategory(key) {
		return domain.Category(key), true
	}

	all := domain.Categories()
	if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= len(all) {
		return all[n-1], true
	}

	label := normalize.SearchNormalize(typ)
	for _, c := range all {
		if normalize.SearchNormalize(c.Display()) == label {
			return c, true
		}
	}
	return "", false
}

// FilterCatalog returns the entries whose normalized name or description
// contains every normalized term of query. When the query names a category
// (or a prefix of one) entries of that category come first; the relative
// order inside both groups is kept. An empty query returns every entry.
func FilterCatalog(entries []domain.CatalogEntry, query string) []domain.CatalogEntry {
	terms := strings.Fields(normalize.Normalize(query))
	if len(terms) == 0 {
		return append([]domain.CatalogEntry(nil), entries...)
	}

	matched := make([]domain.CatalogEntry, 0, len(entries))
	for _, e := range entries {
		if matchesAll(e, terms) {
			matched = append(matched, e)
		}
	}

	if c, ok := InferCategory(query); ok {
		return partition(matched, c)
	}
	return matched
}

// InferCategory returns the category whose key starts with the normalized
// query, or whose display label starts with the search-normalized query. An
// exact match beats a prefix match.
func InferCategory(query string) (domain.Category, bool) {
	q := normalize.Normalize(query)
	sq := normalize.SearchNormalize(query)
	if q == "" && sq == "" {
		return "", false
	}

	all := domain.Categories()
	for _, c := range all {
		if string(c) == q || normalize.SearchNormalize(c.Display()) == sq {
			return c, true
		}
	}
	for _, c := range all {
		if (q != "" && strings.HasPrefix(string(c), q)) ||
			(sq != "" && strings.HasPrefix(normalize.SearchNormalize(c.Display()), sq)) {
			return c, true
		}
	}
	return "", false
}

// Suggest finds the first name, description or type that starts with the
// lowercase partial input. That field is the suggestion when it is longer
// than partial; otherwise there is none, even if a later entry would fit.
func Suggest(entries []domain.CatalogEntry, partial string) string {
	p := strings.ToLower(partial)
	if strings.TrimSpace(p) == "" {
		return ""
	}

	for _, e := range entries {
		for _, field := range []string{e.Name, e.Description, e.Type} {
			if !strings.HasPrefix(strings.ToLower(field), p) {
				continue
			}
			if len(field) > len(partial) {
				return field
			}
			return ""
		}
	}
	return ""
}

func matchesAll(e domain.CatalogEntry, terms []string) bool {
	for _, t := range terms {
		if !strings.Contains(e.NormalizedName, t) && !strings.Contains(e.NormalizedDescription, t) {
			return false
		}
	}
	return true
}

// partition is a stable partition with category c first.
func partition(entries []domain.CatalogEntry, c domain.Category) []domain.CatalogEntry {
	out := make([]domain.CatalogEntry, 0, len(entries))
	for _, e := range entries {
		if e.Category == c {
			out = append(out, e)
		}
	}
	for _, e := range entries {
		if e.Category != c {
			out = append(out, e)
		}
	}
	return out
}
