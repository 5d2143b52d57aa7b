// Package domain defines the core business types for LifeInvader ad handling.
package domain

import (
	"time"
)

// Category is the machine key of an official ad category.
type Category string

// Category constants.
const (
	Category247Store         Category = "24 7 store"
	CategoryAmmunitionStore  Category = "ammunition store"
	CategoryApartment        Category = "apartment"
	CategoryAuto             Category = "auto"
	CategoryAutoRepairShop   Category = "auto repair shop"
	CategoryBar              Category = "bar"
	CategoryBarberShop       Category = "barber shop"
	CategoryCarWash          Category = "car wash"
	CategoryCasino           Category = "casino"
	CategoryClothing         Category = "clothing"
	CategoryClothingStore    Category = "clothing store"
	CategoryDating           Category = "dating"
	CategoryElectronicsStore Category = "electronics store"
	CategoryFactory          Category = "factory"
	CategoryFarm             Category = "farm"
	CategoryGasStation       Category = "gas station"
	CategoryHotel            Category = "hotel"
	CategoryHouse            Category = "house"
	CategoryJewelryStore     Category = "jewelry store"
	CategoryOffice           Category = "office"
	CategoryOther            Category = "other"
	CategoryParking          Category = "parking"
	CategoryRestaurant       Category = "restaurant"
	CategoryServices         Category = "services"
	CategoryTattooParlor     Category = "tattoo parlor"
	CategoryWarehouse        Category = "warehouse"
)

// categoryDisplay is the fixed key -> label table. Order matters for Categories.
var categoryDisplay = []struct {
	key   Category
	label string
}{
	{Category247Store, "24/7 Store"},
	{CategoryAmmunitionStore, "Ammunition Store"},
	{CategoryApartment, "Apartment"},
	{CategoryAuto, "Auto"},
	{CategoryAutoRepairShop, "Auto Repair Shop"},
	{CategoryBar, "Bar"},
	{CategoryBarberShop, "Barber Shop"},
	{CategoryCarWash, "Car Wash"},
	{CategoryCasino, "Casino"},
	{CategoryClothing, "Clothing"},
	{CategoryClothingStore, "Clothing Store"},
	{CategoryDating, "Dating"},
	{CategoryElectronicsStore, "Electronics Store"},
	{CategoryFactory, "Factory"},
	{CategoryFarm, "Farm"},
	{CategoryGasStation, "Gas Station"},
	{CategoryHotel, "Hotel"},
	{CategoryHouse, "House"},
	{CategoryJewelryStore, "Jewelry Store"},
	{CategoryOffice, "Office"},
	{CategoryOther, "Other"},
	{CategoryParking, "Parking"},
	{CategoryRestaurant, "Restaurant"},
	{CategoryServices, "Services"},
	{CategoryTattooParlor, "Tattoo Parlor"},
	{CategoryWarehouse, "Warehouse"},
}

var categoryLabels = func() map[Category]string {
	m := make(map[Category]string, len(categoryDisplay))
	for _, c := range categoryDisplay {
		m[c.key] = c.label
	}
	return m
}()

// Categories returns every official category key in a stable order.
func Categories() []Category {
	out := make([]Category, len(categoryDisplay))
	for i, c := range categoryDisplay {
		out[i] = c.key
	}
	return out
}

// IsValidCategory reports whether key is one of the official category keys.
func IsValidCategory(key string) bool {
	_, ok := categoryLabels[Category(key)]
	return ok
}

// Display returns the human label for the category. Unknown keys map to the
// label of CategoryOther so the mapping stays total.
func (c Category) Display() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return categoryLabels[CategoryOther]
}

// AdType is the intent of an ad, derived from its verbs.
type AdType string

// AdType constants.
const (
	AdSelling  AdType = "selling"
	AdBuying   AdType = "buying"
	AdHiring   AdType = "hiring"
	AdOffering AdType = "offering"
	AdDating   AdType = "dating"
	AdUnknown  AdType = "unknown"
)

// FormatPattern is the coarse template family an ad is formatted with.
type FormatPattern string

// FormatPattern constants.
const (
	PatternVehicle  FormatPattern = "vehicle"
	PatternClothing FormatPattern = "clothing"
	PatternProperty FormatPattern = "property"
	PatternBusiness FormatPattern = "business"
	PatternService  FormatPattern = "service"
	PatternJob      FormatPattern = "job"
	PatternDating   FormatPattern = "dating"
	PatternGeneric  FormatPattern = "generic"
)

// CatalogRow is a raw template row as delivered by ingestion.
type CatalogRow struct {
	Name        string `json:"name"        yaml:"name"        db:"name"`
	Description string `json:"description" yaml:"description" db:"description"`
	Type        string `json:"type"        yaml:"type"        db:"type"`
}

// CatalogEntry is an indexed template with cached normalized fields.
// Entries are built by catalog.NewEntry and never mutated afterwards.
type CatalogEntry struct {
	Name                  string   `json:"name"`
	Description           string   `json:"description"`
	Type                  string   `json:"type"`
	Category              Category `json:"category"`
	DisplayCategory       string   `json:"display_category"`
	NormalizedName        string   `json:"normalized_name"`
	NormalizedDescription string   `json:"normalized_description"`
	NormalizedType        string   `json:"normalized_type"`
}

// MatchResult is the best candidate found by the catalog matcher.
type MatchResult struct {
	Match      string  `json:"match"`
	Similarity float64 `json:"similarity"`
}

// FeedbackEntry records a user correction of a formatted ad.
type FeedbackEntry struct {
	ID             string        `json:"id"                        db:"id"`
	OriginalInput  string        `json:"original_input"            db:"original_input"`
	AIResponse     string        `json:"ai_response"               db:"ai_response"`
	UserCorrection string        `json:"user_correction"           db:"user_correction"`
	Timestamp      time.Time     `json:"timestamp"                 db:"created_at"`
	Category       Category      `json:"category"                  db:"category"`
	AdType         AdType        `json:"ad_type,omitempty"         db:"ad_type"`
	FormatPattern  FormatPattern `json:"format_pattern,omitempty"  db:"format_pattern"`
}

// Formatter sources.
const (
	SourceAI    = "ai"
	SourceRules = "rules"
)

// FormattedAd is the output of the ad formatter.
type FormattedAd struct {
	Text     string   `json:"text"`
	Category Category `json:"category"`
	Source   string   `json:"source"`
}

// String renders the ad in the "<text>\nCategory: <category>" shape.
func (a FormattedAd) String() string {
	return a.Text + "\nCategory: " + string(a.Category)
}
