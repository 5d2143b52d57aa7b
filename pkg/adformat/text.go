package adformat

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Polish collapses whitespace, capitalizes the first letter of every
// sentence and makes sure the text ends with '.', '!' or '?'. Empty input
// stays empty.
func Polish(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s) + 1)
	capNext := true
	for _, r := range s {
		switch {
		case capNext && unicode.IsLetter(r):
			b.WriteRune(unicode.ToUpper(r))
			capNext = false
		case r == '.' || r == '!' || r == '?':
			b.WriteRune(r)
			capNext = true
		default:
			if capNext && !unicode.IsSpace(r) && r != '"' && r != '\'' && r != '$' {
				capNext = false
			}
			b.WriteRune(r)
		}
	}

	out := b.String()
	if last, _ := utf8.DecodeLastRuneInString(out); !isTerminal(last) {
		out = strings.TrimRight(out, ",;: ") + "."
	}
	return out
}

func isTerminal(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}
