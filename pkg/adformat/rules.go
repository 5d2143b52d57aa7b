package adformat

import (
	"context"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/donaldgifford/lifeinvader-ads/pkg/canonical"
	"github.com/donaldgifford/lifeinvader-ads/pkg/classify"
	"github.com/donaldgifford/lifeinvader-ads/pkg/match"
	"github.com/donaldgifford/lifeinvader-ads/pkg/price"
	domain "github.com/donaldgifford/lifeinvader-ads/pkg/types"
)

const negotiable = "Negotiable"

// featureTables are the feature phrases picked out of the input, per format
// pattern, in output order.
var featureTables = map[domain.FormatPattern][]string{
	domain.PatternVehicle: {
		"full upgrades", "engine upgrade", "turbo", "armored", "bulletproof tires",
		"insurance", "low mileage", "custom paint", "neon", "drift tuned",
	},
	domain.PatternProperty: {
		"garage", "pool", "helipad", "furnished", "basement", "ocean view",
		"storage", "parking",
	},
	domain.PatternBusiness: {
		"fully stocked", "high income", "good location", "storage", "parking",
		"renovated", "furnished",
	},
	domain.PatternService: {
		"24/7", "fast", "reliable", "experienced", "cheap rates", "city wide",
	},
	domain.PatternClothing: {
		"brand new", "like new", "mint condition", "barely worn", "limited edition", "used",
	},
	domain.PatternJob: {
		"full time", "part time", "flexible hours", "training provided",
		"experience required", "no experience needed",
	},
}

// clothingItems name the garment after the brand.
var clothingItems = []string{
	"hoodie", "jacket", "shirt", "jeans", "trousers", "sneakers", "shoes",
	"suit", "outfit", "hat", "mask", "bag",
}

// RuleFormatter assembles ads from category templates without any external
// service. It never fails.
type RuleFormatter struct{}

// NewRuleFormatter returns a RuleFormatter.
func NewRuleFormatter() *RuleFormatter {
	return &RuleFormatter{}
}

// Name returns the formatter name.
func (*RuleFormatter) Name() string {
	return domain.SourceRules
}

// Format implements Formatter. The error is always nil.
func (f *RuleFormatter) Format(_ context.Context, req FormatRequest) (domain.FormattedAd, error) {
	return f.FormatText(req.Text, req.Category), nil
}

// FormatText formats text. A valid hint overrides category detection.
func (*RuleFormatter) FormatText(text string, hint domain.Category) domain.FormattedAd {
	category := hint
	if !domain.IsValidCategory(string(category)) {
		category = classify.DetectCategory(text)
	}

	a := assembly{
		text:     text,
		lower:    strings.ToLower(text),
		category: category,
		pattern:  classify.PatternFor(category),
		verb:     leadVerb(text),
		price:    negotiable,
	}
	if raw, ok := price.Extract(text); ok {
		a.price = price.Format(raw)
	}

	var body string
	switch a.pattern {
	case domain.PatternVehicle:
		body = a.vehicle()
	case domain.PatternProperty, domain.PatternBusiness:
		body = a.property()
	case domain.PatternService:
		body = a.service()
	case domain.PatternClothing:
		body = a.clothing()
	case domain.PatternJob:
		body = a.job()
	case domain.PatternDating:
		body = a.dating()
	default:
		body = a.generic()
	}

	return domain.FormattedAd{
		Text:     Polish(body),
		Category: category,
		Source:   domain.SourceRules,
	}
}

type assembly struct {
	text     string
	lower    string
	category domain.Category
	pattern  domain.FormatPattern
	verb     string
	price    string
}

func (a assembly) vehicle() string {
	name := match.ExtractCanonicalName(a.text, canonical.Vehicles())
	lead := a.verb + " a vehicle"
	if name != "" {
		lead = a.verb + ` "` + name + `"`
	}
	return sentences(withFeatures(lead, a.features()), "Price: "+a.price)
}

func (a assembly) property() string {
	lead := a.verb + " " + a.category.Display()
	if loc, ok := canonical.FindLocation(a.text); ok {
		lead += " in " + loc
	}
	return sentences(withFeatures(lead, a.features()), "Price: "+a.price)
}

func (a assembly) service() string {
	name := "Various"
	if svc, ok := canonical.FindService(a.text); ok {
		name = titleCase(svc)
	}
	return sentences("Offering "+name+" Services", joinAnd(a.features()), "Price: "+a.price)
}

func (a assembly) clothing() string {
	lead := a.verb + " clothing"
	brand := match.ExtractCanonicalName(a.text, canonical.ClothingBrands())
	item := firstMention(a.lower, clothingItems)
	switch {
	case brand != "" && item != "":
		lead = a.verb + " " + brand + " " + item
	case brand != "":
		lead = a.verb + " " + brand + " clothing"
	case item != "":
		lead = a.verb + " " + item
	}
	return sentences(lead, joinAnd(a.features()), "Price: "+a.price)
}

func (a assembly) job() string {
	role := "Staff"
	if r, ok := canonical.FindJobRole(a.text); ok {
		role = titleCase(r)
	}
	return sentences("Hiring "+role, joinAnd(a.features()), "Salary: "+a.price)
}

func (a assembly) dating() string {
	lead := "Looking for a date"
	if strings.Contains(a.lower, "girlfriend") {
		lead = "Looking for a girlfriend"
	} else if strings.Contains(a.lower, "boyfriend") {
		lead = "Looking for a boyfriend"
	}
	return sentences(lead, "Contact me for details")
}

func (a assembly) generic() string {
	return sentences(a.verb+" Item", "Price: "+a.price)
}

func (a assembly) features() []string {
	var out []string
	for _, f := range featureTables[a.pattern] {
		if strings.Contains(a.lower, f) {
			out = append(out, f)
		}
	}
	return out
}

// leadVerb is "Buying" for buying ads and "Selling" otherwise.
func leadVerb(text string) string {
	if classify.DetectAdType(text) == domain.AdBuying {
		return "Buying"
	}
	return "Selling"
}

// withFeatures appends "with a, b and c" to lead.
func withFeatures(lead string, features []string) string {
	if len(features) == 0 {
		return lead
	}
	return lead + " with " + joinAnd(features)
}

func joinAnd(items []string) string {
	if len(items) < 2 {
		return strings.Join(items, "")
	}
	last := len(items) - 1
	return strings.Join(items[:last], ", ") + " and " + items[last]
}

// sentences joins parts into sentences separated by ". ".
func sentences(parts ...string) string {
	trimmed := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimRight(strings.TrimSpace(p), ".!? "); p != "" {
			trimmed = append(trimmed, p)
		}
	}
	return strings.Join(trimmed, ". ") + "."
}

func firstMention(lower string, words []string) string {
	for _, w := range words {
		if strings.Contains(lower, w) {
			return w
		}
	}
	return ""
}

func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}
