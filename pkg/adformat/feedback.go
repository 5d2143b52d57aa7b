package adformat

import (
	"context"
	"slices"
	"strings"

	"github.com/donaldgifford/lifeinvader-ads/pkg/normalize"
	domain "github.com/donaldgifford/lifeinvader-ads/pkg/types"
)

// MaxFeedbackContext is the most prior corrections put into one prompt.
const MaxFeedbackContext = 3

// FeedbackSource reads prior user corrections. Implementations return entries
// most recent first.
type FeedbackSource interface {
	ListFeedbackByCategory(ctx context.Context, category domain.Category, limit int) ([]domain.FeedbackEntry, error)
	ListRecentFeedback(ctx context.Context, limit int) ([]domain.FeedbackEntry, error)
}

// minSharedWords is how many significant words a correction must share with
// the input to qualify in the last relevance tier.
const minSharedWords = 2

var stopwords = map[string]struct{}{
	"selling": {}, "buying": {}, "price": {}, "with": {}, "from": {}, "that": {},
	"this": {}, "have": {}, "will": {}, "your": {}, "looking": {}, "million": {},
	"negotiable": {}, "for": {}, "and": {}, "the": {},
}

// SelectFeedback picks up to limit corrections relevant to input, capped at
// MaxFeedbackContext. Tiers fill in order: same ad type and pattern, same ad
// type, same pattern, then entries sharing at least two significant words with
// input. Within a tier the most recent entry comes first and no entry is
// picked twice.
func SelectFeedback(
	input string,
	adType domain.AdType,
	pattern domain.FormatPattern,
	entries []domain.FeedbackEntry,
	limit int,
) []domain.FeedbackEntry {
	if limit <= 0 || limit > MaxFeedbackContext {
		limit = MaxFeedbackContext
	}

	sorted := slices.Clone(entries)
	slices.SortStableFunc(sorted, func(a, b domain.FeedbackEntry) int {
		return b.Timestamp.Compare(a.Timestamp)
	})

	words := significantWords(input)
	tiers := []func(domain.FeedbackEntry) bool{
		func(e domain.FeedbackEntry) bool { return e.AdType == adType && e.FormatPattern == pattern },
		func(e domain.FeedbackEntry) bool { return e.AdType == adType },
		func(e domain.FeedbackEntry) bool { return e.FormatPattern == pattern },
		func(e domain.FeedbackEntry) bool {
			return sharedWords(words, significantWords(e.OriginalInput+" "+e.UserCorrection)) >= minSharedWords
		},
	}

	picked := make([]domain.FeedbackEntry, 0, limit)
	used := make(map[int]bool, len(sorted))
	for _, inTier := range tiers {
		for i, e := range sorted {
			if len(picked) == limit {
				return picked
			}
			if used[i] || isDuplicate(picked, e) || !inTier(e) {
				continue
			}
			used[i] = true
			picked = append(picked, e)
		}
	}
	return picked
}

// isDuplicate reports whether an entry with the same input and correction was
// already picked.
func isDuplicate(picked []domain.FeedbackEntry, e domain.FeedbackEntry) bool {
	for _, p := range picked {
		if p.ID != "" && p.ID == e.ID {
			return true
		}
		if p.OriginalInput == e.OriginalInput && p.UserCorrection == e.UserCorrection {
			return true
		}
	}
	return false
}

// significantWords returns the distinct normalized words longer than three
// characters that are not stopwords.
func significantWords(s string) map[string]struct{} {
	out := make(map[string]struct{})
	for _, w := range strings.Fields(normalize.Normalize(s)) {
		if len(w) <= 3 {
			continue
		}
		if _, stop := stopwords[w]; stop {
			continue
		}
		out[w] = struct{}{}
	}
	return out
}

func sharedWords(a, b map[string]struct{}) int {
	n := 0
	for w := range a {
		if _, ok := b[w]; ok {
			n++
		}
	}
	return n
}
