package match

import (
	"strings"

	domain "github.com/donaldgifford/lifeinvader-ads/pkg/types"
)

// Acceptance thresholds. A candidate is accepted only when its similarity is
// strictly greater than the threshold.
const (
	// AcceptThreshold is the default threshold for FindBestMatch.
	AcceptThreshold = 0.6
	// WordMatchThreshold is the stricter threshold used by the per-word
	// fuzzy pass of ExtractCanonicalName.
	WordMatchThreshold = 0.7

	minWordLen = 3
)

// FindBestMatch scores every candidate against input and returns the best
// one if it clears AcceptThreshold. Ties keep the earliest candidate.
func FindBestMatch(input string, candidates []string) (domain.MatchResult, bool) {
	var best domain.MatchResult
	for _, c := range candidates {
		if s := Similarity(input, c); s > best.Similarity {
			best = domain.MatchResult{Match: c, Similarity: s}
		}
	}

	if best.Similarity > AcceptThreshold {
		return best, true
	}
	return domain.MatchResult{}, false
}

// ParseCandidateList splits a newline-delimited candidate list and returns
// the first '|' column of every non-empty line, trimmed.
func ParseCandidateList(text string) []string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		name, _, _ := strings.Cut(line, "|")
		name = strings.TrimSpace(name)
		if name != "" {
			out = append(out, name)
		}
	}
	return out
}

// stage is one step of canonical name extraction. It returns the canonical
// name and true on a hit.
type stage struct {
	name string
	run  func(input string, candidates []string) (string, bool)
}

// extractionStages run in order until one hits.
var extractionStages = []stage{
	{name: "containment", run: containedCandidate},
	{name: "keyword", run: keywordCandidate},
	{name: "word", run: wordCandidate},
	{name: "partial", run: partialCandidate},
}

// StageNames returns the extraction stages in the order they run.
func StageNames() []string {
	out := make([]string, len(extractionStages))
	for i, s := range extractionStages {
		out[i] = s.name
	}
	return out
}

// ExtractCanonicalName resolves free text to one of the names in
// candidateList (newline-delimited, first '|' column is the name). It returns
// "" when no stage finds a confident match.
func ExtractCanonicalName(freeText, candidateList string) string {
	candidates := ParseCandidateList(candidateList)
	if len(candidates) == 0 || strings.TrimSpace(freeText) == "" {
		return ""
	}

	for _, s := range extractionStages {
		if name, ok := s.run(freeText, candidates); ok {
			return name
		}
	}
	return ""
}

func containedCandidate(input string, candidates []string) (string, bool) {
	lower := strings.ToLower(input)
	for _, c := range candidates {
		if strings.Contains(lower, strings.ToLower(c)) {
			return c, true
		}
	}
	return "", false
}

func keywordCandidate(input string, candidates []string) (string, bool) {
	lower := strings.ToLower(input)
	for _, kw := range knownKeywords {
		if !strings.Contains(lower, kw) {
			continue
		}
		if m, ok := FindBestMatch(kw, candidates); ok {
			return m.Match, true
		}
	}
	return "", false
}

func wordCandidate(input string, candidates []string) (string, bool) {
	for _, w := range significantWords(input) {
		m, ok := FindBestMatch(w, candidates)
		if ok && m.Similarity > WordMatchThreshold {
			return m.Match, true
		}
	}
	return "", false
}

func partialCandidate(input string, candidates []string) (string, bool) {
	words := significantWords(input)
	for _, c := range candidates {
		for _, cw := range strings.Fields(strings.ToLower(c)) {
			if len(cw) < minWordLen {
				continue
			}
			for _, w := range words {
				if strings.Contains(w, cw) || strings.Contains(cw, w) {
					return c, true
				}
			}
		}
	}
	return "", false
}

// significantWords returns the lowercase words of s longer than two bytes.
func significantWords(s string) []string {
	var out []string
	for _, w := range strings.Fields(strings.ToLower(s)) {
		if len(w) >= minWordLen {
			out = append(out, w)
		}
	}
	return out
}
