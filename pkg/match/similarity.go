// Package match resolves imprecise user input to canonical names using a
// heuristic token and substring similarity.
package match

import (
	"math"
	"strings"

	"github.com/donaldgifford/lifeinvader-ads/pkg/normalize"
)

// Similarity scores.
const (
	scoreExact     = 1.0
	scoreSubstring = 0.9
	scoreWordCap   = 0.95

	wordExactPoints   = 1.0
	wordPartialPoints = 0.8

	// maxLengthGap is the largest length difference, as a fraction of the
	// longer string, the character-overlap fallback still scores.
	maxLengthGap = 0.3
)

// Similarity returns a score in [0,1] for how alike a and b are. The first
// applicable rule wins:
//
//  1. identical after stripping to lowercase alphanumerics: 1.0
//  2. one stripped string contains the other: 0.9
//  3. word overlap on the lowercase words: min(0.95, points / max word count)
//  4. character overlap: shared characters / len(longer), or 0 when the
//     lengths differ by more than 30%
//
// This is not an edit distance. Rule 4 counts every character of the shorter
// string found anywhere in the longer one, so it ignores order and repeated
// characters can inflate the score. Rule 2 needs both stripped strings to be
// non-empty, so an all-punctuation side ("!!!") scores 0 against any text.
func Similarity(a, b string) float64 {
	sa := normalize.Alphanumeric(a)
	sb := normalize.Alphanumeric(b)

	if sa == sb {
		return scoreExact
	}

	if sa != "" && sb != "" && (strings.Contains(sa, sb) || strings.Contains(sb, sa)) {
		return scoreSubstring
	}

	if score, ok := wordOverlap(a, b); ok {
		return score
	}

	return charOverlap(sa, sb)
}

func wordOverlap(a, b string) (float64, bool) {
	wa := strings.Fields(strings.ToLower(a))
	wb := strings.Fields(strings.ToLower(b))

	var points float64
	for _, x := range wa {
		for _, y := range wb {
			switch {
			case x == y:
				points += wordExactPoints
			case strings.Contains(x, y) || strings.Contains(y, x):
				points += wordPartialPoints
			}
		}
	}

	if points == 0 {
		return 0, false
	}

	words := max(len(wa), len(wb))
	return math.Min(scoreWordCap, points/float64(words)), true
}

func charOverlap(sa, sb string) float64 {
	longer, shorter := sa, sb
	if len(sb) > len(sa) || (len(sb) == len(sa) && sb > sa) {
		longer, shorter = sb, sa
	}

	if longer == "" {
		return scoreExact
	}

	distance := len(longer) - len(shorter)
	if float64(distance) > maxLengthGap*float64(len(longer)) {
		return 0
	}

	var matches int
	for i := 0; i < len(shorter); i++ {
		if strings.IndexByte(longer, shorter[i]) >= 0 {
			matches++
		}
	}

	return float64(matches) / float64(len(longer))
}
