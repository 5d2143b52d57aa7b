// Package classify maps free ad text to an official category, an ad intent
// and a format pattern.
//
// Classification is an ordered cascade of keyword rules. The rules overlap on
// purpose (insurance is a vehicle feature and a service, "warehouse" contains
// "house") and the first rule with any hit wins, so reordering the table
// changes results.
package classify

import (
	"strings"

	"github.com/donaldgifford/lifeinvader-ads/pkg/normalize"
	domain "github.com/donaldgifford/lifeinvader-ads/pkg/types"
)

// Rule assigns Category to text containing any of Keywords. Keywords are
// held in normalize.Normalize form and matched as substrings of the
// normalized text.
type Rule struct {
	Name     string
	Category domain.Category
	Keywords []string
}

// categoryRules is the precedence order: vehicle, clothing, real estate, job,
// service, business, dating, then hiring intent.
var categoryRules = compile([]Rule{
	{Name: "vehicle", Category: domain.CategoryAuto, Keywords: []string{
		"vehicle", "sedan", "coupe", "suv", "supercar", "sports car", "muscle car",
		"motorcycle", "motorbike", "insurance", "turbo", "full upgrades",
		"engine upgrade", "armored", "armoured", "annis", "albany", "benefactor",
		"bravado", "declasse", "dinka", "grotti", "karin", "obey",
		"ocelot", "pegassi", "truffade", "ubermacht", "vapid",
	}},
	{Name: "clothing", Category: domain.CategoryClothing, Keywords: []string{
		"clothes", "outfit", "shirt", "jacket", "hoodie", "trousers", "jeans",
		"sneakers", "shoes", "ponsonbys", "binco", "suburban",
		"didier sachs", "perseus", "bigness", "guffy", "sessanta nove",
		"prolaps", "blagueurs",
	}},
	{Name: "warehouse", Category: domain.CategoryWarehouse, Keywords: []string{
		"warehouse", "storage unit",
	}},
	{Name: "apartment", Category: domain.CategoryApartment, Keywords: []string{
		"apartment", "penthouse", "condo", "flat",
	}},
	{Name: "house", Category: domain.CategoryHouse, Keywords: []string{
		"house", "mansion", "villa", "cabin",
	}},
	{Name: "job", Category: domain.CategoryOffice, Keywords: []string{
		"job", "salary", "wage", "employ", "vacancy", "vacancies", "recruit",
		"position", "office",
	}},
	{Name: "service", Category: domain.CategoryServices, Keywords: []string{
		"service", "mechanic", "taxi", "delivery", "lawyer", "bodyguard",
		"towing", "lessons", "tutor", "photograph", "cleaning", "consulting",
	}},
	{Name: "24/7 store", Category: domain.Category247Store, Keywords: []string{
		"24/7", "convenience store", "grocery", "supermarket",
	}},
	{Name: "ammunition store", Category: domain.CategoryAmmunitionStore, Keywords: []string{
		"ammo", "gun store",
	}},
	{Name: "auto repair shop", Category: domain.CategoryAutoRepairShop, Keywords: []string{
		"auto repair", "repair shop", "body shop",
	}},
	{Name: "car wash", Category: domain.CategoryCarWash, Keywords: []string{"car wash"}},
	{Name: "casino", Category: domain.CategoryCasino, Keywords: []string{"casino"}},
	{Name: "clothing store", Category: domain.CategoryClothingStore, Keywords: []string{
		"clothing store", "clothes store", "boutique",
	}},
	{Name: "electronics store", Category: domain.CategoryElectronicsStore, Keywords: []string{
		"electronics",
	}},
	{Name: "factory", Category: domain.CategoryFactory, Keywords: []string{"factory"}},
	{Name: "farm", Category: domain.CategoryFarm, Keywords: []string{"farm", "ranch", "barn"}},
	{Name: "gas station", Category: domain.CategoryGasStation, Keywords: []string{
		"gas station", "petrol", "fuel",
	}},
	{Name: "hotel", Category: domain.CategoryHotel, Keywords: []string{"hotel", "motel"}},
	{Name: "jewelry store", Category: domain.CategoryJewelryStore, Keywords: []string{
		"jewelry", "jewellery",
	}},
	{Name: "parking", Category: domain.CategoryParking, Keywords: []string{"parking", "car park"}},
	{Name: "restaurant", Category: domain.CategoryRestaurant, Keywords: []string{
		"restaurant", "diner", "cafe", "pizzeria", "burger",
	}},
	{Name: "tattoo parlor", Category: domain.CategoryTattooParlor, Keywords: []string{"tattoo"}},
	{Name: "barber shop", Category: domain.CategoryBarberShop, Keywords: []string{
		"barber", "hair salon",
	}},
	{Name: "bar", Category: domain.CategoryBar, Keywords: []string{"bar", "nightclub"}},
	{Name: "dating", Category: domain.CategoryDating, Keywords: []string{
		"dating", "girlfriend", "boyfriend", "romance", "relationship",
		"soulmate", "looking for love",
	}},
	{Name: "hiring intent", Category: domain.CategoryOffice, Keywords: []string{
		"hiring", "hire", "looking for workers", "need workers",
	}},
})

// compile rewrites every keyword into its normalized form so rule keywords
// and input text go through the same folding.
func compile(rules []Rule) []Rule {
	for i := range rules {
		for j, kw := range rules[i].Keywords {
			rules[i].Keywords[j] = normalize.Normalize(kw)
		}
	}
	return rules
}

// Rules returns a deep copy of the ordered category rules.
func Rules() []Rule {
	out := make([]Rule, len(categoryRules))
	for i, r := range categoryRules {
		out[i] = Rule{
			Name:     r.Name,
			Category: r.Category,
			Keywords: append([]string(nil), r.Keywords...),
		}
	}
	return out
}

// DetectCategory returns the category of the first rule with a keyword in
// text, or domain.CategoryOther. It never fails.
func DetectCategory(text string) domain.Category {
	if r, ok := firstRule(text); ok {
		return r.Category
	}
	return domain.CategoryOther
}

// DetectRule returns the name of the rule that classified text, or "" when
// the default applied.
func DetectRule(text string) string {
	if r, ok := firstRule(text); ok {
		return r.Name
	}
	return ""
}

func firstRule(text string) (Rule, bool) {
	s := normalize.Normalize(text)
	if s == "" {
		return Rule{}, false
	}
	for _, r := range categoryRules {
		if containsAny(s, r.Keywords) {
			return r, true
		}
	}
	return Rule{}, false
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if kw != "" && strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
