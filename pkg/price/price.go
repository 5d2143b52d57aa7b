// Package price formats ad prices in the house style and pulls price
// expressions out of free text.
package price

import (
	"math"
	"strconv"
	"strings"
)

const (
	million  = 1_000_000
	thousand = 1_000
)

// Format reformats a raw price. Everything but digits and '.' is dropped
// before parsing; input that still does not parse is returned unchanged.
//
//	"10000000" -> "$10 Million."
//	"4500000"  -> "$4.5 Million."
//	"12000"    -> "$12.000"
//	"12000.50" -> "$12.000,5"
//	"500"      -> "$500"
func Format(raw string) string {
	cleaned := digitsAndDots(raw)
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return raw
	}

	switch {
	case v >= million:
		return "$" + formatFloat(v/million) + " Million."
	case v >= thousand:
		return "$" + group(v, cleaned)
	default:
		return "$" + formatFloat(v)
	}
}

func digitsAndDots(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if c := s[i]; (c >= '0' && c <= '9') || c == '.' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// group writes the integer part of v with '.' as the thousands separator. A
// non-zero fractional part, taken verbatim from cleaned, follows a ','.
func group(v float64, cleaned string) string {
	digits := strconv.FormatFloat(math.Trunc(v), 'f', 0, 64)

	var b strings.Builder
	for i, c := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(c)
	}

	if _, frac, ok := strings.Cut(cleaned, "."); ok {
		if frac = strings.TrimRight(frac, "0"); frac != "" {
			b.WriteByte(',')
			b.WriteString(frac)
		}
	}
	return b.String()
}
