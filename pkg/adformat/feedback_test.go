package adformat_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/donaldgifford/lifeinvader-ads/pkg/adformat"
	domain "github.com/donaldgifford/lifeinvader-ads/pkg/types"
)

func feedbackAt(id string, adType domain.AdType, pattern domain.FormatPattern, input string, age time.Duration) domain.FeedbackEntry {
	return domain.FeedbackEntry{
		ID:             id,
		OriginalInput:  input,
		UserCorrection: "corrected " + id,
		AdType:         adType,
		FormatPattern:  pattern,
		Timestamp:      time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC).Add(-age),
	}
}

func ids(entries []domain.FeedbackEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.ID
	}
	return out
}

func TestSelectFeedback(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		adType  domain.AdType
		pattern domain.FormatPattern
		entries []domain.FeedbackEntry
		limit   int
		want    []string
	}{
		{
			name:    "no entries",
			adType:  domain.AdSelling,
			pattern: domain.PatternVehicle,
			want:    []string{},
		},
		{
			name:    "exact tier before partial tiers",
			adType:  domain.AdSelling,
			pattern: domain.PatternVehicle,
			entries: []domain.FeedbackEntry{
				feedbackAt("type-only", domain.AdSelling, domain.PatternProperty, "x", time.Minute),
				feedbackAt("both", domain.AdSelling, domain.PatternVehicle, "y", time.Hour),
				feedbackAt("pattern-only", domain.AdBuying, domain.PatternVehicle, "z", time.Second),
			},
			limit: 3,
			want:  []string{"both", "type-only", "pattern-only"},
		},
		{
			name:    "most recent first within a tier",
			adType:  domain.AdSelling,
			pattern: domain.PatternVehicle,
			entries: []domain.FeedbackEntry{
				feedbackAt("old", domain.AdSelling, domain.PatternVehicle, "a", 3*time.Hour),
				feedbackAt("new", domain.AdSelling, domain.PatternVehicle, "b", time.Minute),
				feedbackAt("mid", domain.AdSelling, domain.PatternVehicle, "c", time.Hour),
			},
			limit: 2,
			want:  []string{"new", "mid"},
		},
		{
			name:    "limit capped at three",
			adType:  domain.AdSelling,
			pattern: domain.PatternVehicle,
			entries: []domain.FeedbackEntry{
				feedbackAt("1", domain.AdSelling, domain.PatternVehicle, "a", 1*time.Minute),
				feedbackAt("2", domain.AdSelling, domain.PatternVehicle, "b", 2*time.Minute),
				feedbackAt("3", domain.AdSelling, domain.PatternVehicle, "c", 3*time.Minute),
				feedbackAt("4", domain.AdSelling, domain.PatternVehicle, "d", 4*time.Minute),
			},
			limit: 10,
			want:  []string{"1", "2", "3"},
		},
		{
			name:    "word overlap tier",
			input:   "selling penthouse downtown vinewood",
			adType:  domain.AdSelling,
			pattern: domain.PatternVehicle,
			entries: []domain.FeedbackEntry{
				feedbackAt("overlap", domain.AdHiring, domain.PatternJob, "nice penthouse near vinewood", time.Hour),
				feedbackAt("single", domain.AdHiring, domain.PatternJob, "penthouse only", time.Minute),
			},
			limit: 3,
			want:  []string{"overlap"},
		},
		{
			name:    "duplicates skipped",
			adType:  domain.AdSelling,
			pattern: domain.PatternVehicle,
			entries: []domain.FeedbackEntry{
				feedbackAt("a", domain.AdSelling, domain.PatternVehicle, "same", time.Minute),
				feedbackAt("a", domain.AdSelling, domain.PatternVehicle, "same", time.Hour),
			},
			limit: 3,
			want:  []string{"a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := adformat.SelectFeedback(tt.input, tt.adType, tt.pattern, tt.entries, tt.limit)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestSelectFeedback_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	entries := []domain.FeedbackEntry{
		feedbackAt("old", domain.AdSelling, domain.PatternVehicle, "a", time.Hour),
		feedbackAt("new", domain.AdSelling, domain.PatternVehicle, "b", time.Minute),
	}
	_ = adformat.SelectFeedback("", domain.AdSelling, domain.PatternVehicle, entries, 3)
	assert.Equal(t, []string{"old", "new"}, ids(entries))
}
