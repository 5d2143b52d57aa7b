package price

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var moneyExpr = regexp.MustCompile(
	`(?i)(\$)?\s*(\d[\d,.]*)\s*(billion|million|mil|thousand|k|m|b)?\b`,
)

var multipliers = map[string]float64{
	"k":        thousand,
	"thousand": thousand,
	"m":        million,
	"mil":      million,
	"million":  million,
	"b":        1_000_000_000,
	"billion":  1_000_000_000,
}

// minBarePrice is the smallest number accepted as a price when it carries no
// currency sign or multiplier ("2 cars" is not a price).
const minBarePrice = 100

// Extract finds a price in free text and returns it as a plain number string
// ready for Format. Amounts written with a '$' or a multiplier ("4.5m",
// "250k", "3 million") win over bare numbers.
func Extract(text string) (string, bool) {
	var bare string
	for _, m := range moneyExpr.FindAllStringSubmatch(text, -1) {
		sign, num, suffix := m[1], m[2], strings.ToLower(m[3])

		v, ok := parseAmount(num, suffix != "")
		if !ok {
			continue
		}

		if mult, found := multipliers[suffix]; found {
			v = math.Round(v * mult)
		}

		if sign != "" || suffix != "" {
			return formatFloat(v), true
		}
		if bare == "" && v >= minBarePrice {
			bare = formatFloat(v)
		}
	}

	if bare != "" {
		return bare, true
	}
	return "", false
}

// parseAmount reads "1,200,000", "1.200.000", "12.000" and "4.5". A single dot
// followed by exactly three digits is a thousands separator unless a
// multiplier follows.
func parseAmount(num string, hasMultiplier bool) (float64, bool) {
	num = strings.TrimRight(num, ".,")
	num = strings.ReplaceAll(num, ",", "")

	switch dots := strings.Count(num, "."); {
	case dots > 1:
		num = strings.ReplaceAll(num, ".", "")
	case dots == 1 && !hasMultiplier:
		if i := strings.IndexByte(num, '.'); len(num)-i-1 == 3 {
			num = strings.ReplaceAll(num, ".", "")
		}
	}

	v, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
