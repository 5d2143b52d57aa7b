// Package normalize canonicalizes free text (ad names, descriptions, search
// queries) into a comparable form.
//
// Two variants exist and must not be mixed up:
//
//   - Normalize is the storage form. It folds domain jargon ("ammo",
//     "gun store", "24/7", "temp") and is used for the cached normalized
//     fields of catalog entries, for catalog query terms and by the category
//     classifier.
//   - SearchNormalize is the UI search form. It only lowercases, strips
//     punctuation and collapses whitespace. It is used where the text is
//     compared against human labels (category display names) and when
//     measuring user input for suggestions.
package normalize

import (
	"regexp"
	"strings"

	"github.com/mozillazg/go-unidecode"
	"golang.org/x/text/unicode/norm"
)

// Rule is a single whole-word rewrite applied during storage normalization.
type Rule struct {
	From string
	To   string
}

// rewriteRules are applied in order to the lowercased text, matching whole
// words only. Multi-word rules precede the single-word rules they overlap with.
var rewriteRules = []Rule{
	{From: "24/7", To: "24 7"},
	{From: "ammo store", To: "ammunition store"},
	{From: "ammo", To: "ammunition"},
	{From: "gun store", To: "ammunition store"},
	{From: "gun", To: "ammunition"},
}

var compiledRules = func() []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(rewriteRules))
	for i, r := range rewriteRules {
		out[i] = regexp.MustCompile(`\b` + regexp.QuoteMeta(r.From) + `\b`)
	}
	return out
}()

// templatePlaceholder stands in for "template" while "temp" is expanded.
// It is made of bytes the punctuation pass strips, so it never reaches output.
const templatePlaceholder = "\x00tpl\x00"

var (
	// separators is everything the final pass turns into a space except '/',
	// which the "24/7" rule needs. Rewrites then see the output's word
	// boundaries ("ammo_store" folds like "ammo store").
	separators    = regexp.MustCompile(`[^a-z0-9/]+`)
	tempAbbrev    = regexp.MustCompile(`temp([^a-z]|$)`)
	leadingNumber = regexp.MustCompile(`^[^a-z0-9]*n[^a-z0-9]*(\d+)`)
	nonAlnum      = regexp.MustCompile(`[^a-z0-9]+`)
	spaces        = regexp.MustCompile(`\s+`)
)

// Rules returns a copy of the ordered rewrite table.
func Rules() []Rule {
	out := make([]Rule, len(rewriteRules))
	copy(out, rewriteRules)
	return out
}

// Normalize returns the storage form of text. It is pure, total and
// idempotent: Normalize(Normalize(s)) == Normalize(s).
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	s := separators.ReplaceAllString(strings.ToLower(fold(text)), " ")

	for i, re := range compiledRules {
		s = re.ReplaceAllLiteralString(s, rewriteRules[i].To)
	}

	s = strings.ReplaceAll(s, "template", templatePlaceholder)
	s = tempAbbrev.ReplaceAllString(s, "template${1}")
	s = strings.ReplaceAll(s, templatePlaceholder, "template")

	s = leadingNumber.ReplaceAllString(s, "${1}")

	s = nonAlnum.ReplaceAllString(s, " ")

	return collapse(s)
}

// SearchNormalize returns the search form of text: lowercase, ASCII folded,
// punctuation replaced by spaces, whitespace collapsed. No synonym folding.
func SearchNormalize(text string) string {
	if text == "" {
		return ""
	}
	s := strings.ToLower(fold(text))
	s = nonAlnum.ReplaceAllString(s, " ")
	return collapse(s)
}

// Alphanumeric lowercases text and drops everything that is not a letter or
// digit, spaces included.
func Alphanumeric(text string) string {
	s := strings.ToLower(fold(text))
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// fold maps Unicode text to its closest ASCII spelling ("Übermacht" ->
// "Ubermacht"). ASCII input is returned unchanged.
func fold(s string) string {
	if isASCII(s) {
		return s
	}
	return unidecode.Unidecode(norm.NFKC.String(s))
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}

func collapse(s string) string {
	return strings.TrimSpace(spaces.ReplaceAllString(s, " "))
}
