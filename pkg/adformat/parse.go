package adformat

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/donaldgifford/lifeinvader-ads/pkg/classify"
	domain "github.com/donaldgifford/lifeinvader-ads/pkg/types"
)

const categoryPrefix = "category:"

// ParseResponse reads a backend reply. The first non-empty line that is not
// a category line is the ad. A "Category:" line is trusted only when it names
// an official category key; otherwise the category is detected from input.
func ParseResponse(content, input string) (domain.FormattedAd, error) {
	var text, category string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(strings.ToLower(line), categoryPrefix) {
			if category == "" {
				category = line[len(categoryPrefix):]
			}
			continue
		}
		if text == "" {
			text = unwrap(line)
		}
	}

	text = Polish(text)
	if strings.IndexFunc(text, isAlnum) < 0 {
		return domain.FormattedAd{}, ErrEmptyResponse
	}

	return domain.FormattedAd{
		Text:     text,
		Category: resolveCategory(category, input),
		Source:   domain.SourceAI,
	}, nil
}

// unwrap removes one pair of quotes or backticks wrapping the whole line.
func unwrap(line string) string {
	for _, q := range []string{"```", "`", "\""} {
		if len(line) > 2*len(q) && strings.HasPrefix(line, q) && strings.HasSuffix(line, q) {
			inner := line[len(q) : len(line)-len(q)]
			if !strings.Contains(inner, q) {
				return strings.TrimSpace(inner)
			}
		}
	}
	return line
}

func isAlnum(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func resolveCategory(claimed, input string) domain.Category {
	key := strings.ToLower(strings.Trim(strings.TrimSpace(claimed), ".\"'`"))
	if domain.IsValidCategory(key) {
		return domain.Category(key)
	}
	return classify.DetectCategory(input)
}

// ParseError wraps a response that could not be used.
type ParseError struct {
	Backend string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s response: %v", e.Backend, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
