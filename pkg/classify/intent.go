package classify

import (
	"github.com/donaldgifford/lifeinvader-ads/pkg/normalize"
	domain "github.com/donaldgifford/lifeinvader-ads/pkg/types"
)

type intentRule struct {
	adType   domain.AdType
	keywords []string
}

// intentRules are checked in order. Hiring and dating come before buying so
// "looking for a chef" style ads keep their specific intent.
var intentRules = compileIntents([]intentRule{
	{adType: domain.AdHiring, keywords: []string{
		"hiring", "hire", "recruit", "vacancy", "job", "salary", "employ",
	}},
	{adType: domain.AdDating, keywords: []string{
		"dating", "girlfriend", "boyfriend", "romance", "soulmate", "looking for love",
	}},
	{adType: domain.AdBuying, keywords: []string{
		"buying", "looking to buy", "want to buy", "wtb", "purchasing", "looking for",
	}},
	{adType: domain.AdOffering, keywords: []string{
		"offering", "service", "providing", "available for",
	}},
	{adType: domain.AdSelling, keywords: []string{
		"selling", "sell", "for sale", "wts", "price", "cheap",
	}},
})

func compileIntents(rules []intentRule) []intentRule {
	for i := range rules {
		for j, kw := range rules[i].keywords {
			rules[i].keywords[j] = normalize.Normalize(kw)
		}
	}
	return rules
}

// DetectAdType returns the intent of text from its verbs, or
// domain.AdUnknown.
func DetectAdType(text string) domain.AdType {
	s := normalize.Normalize(text)
	if s == "" {
		return domain.AdUnknown
	}
	for _, r := range intentRules {
		if containsAny(s, r.keywords) {
			return r.adType
		}
	}
	return domain.AdUnknown
}

// PatternFor returns the format pattern used for ads of category c.
func PatternFor(c domain.Category) domain.FormatPattern {
	switch c {
	case domain.CategoryAuto:
		return domain.PatternVehicle
	case domain.CategoryClothing:
		return domain.PatternClothing
	case domain.CategoryApartment, domain.CategoryHouse, domain.CategoryWarehouse:
		return domain.PatternProperty
	case domain.CategoryOffice:
		return domain.PatternJob
	case domain.CategoryServices:
		return domain.PatternService
	case domain.CategoryDating:
		return domain.PatternDating
	case domain.CategoryOther:
		return domain.PatternGeneric
	}
	if domain.IsValidCategory(string(c)) {
		return domain.PatternBusiness
	}
	return domain.PatternGeneric
}
