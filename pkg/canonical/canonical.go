// Package canonical holds the official names ads must use: vehicles,
// clothing brands, locations, service names and job roles.
//
// Vehicle and clothing lists are newline-delimited "name|extra" text, the
// candidate-list format consumed by match.ExtractCanonicalName.
package canonical

import (
	_ "embed"
	"strings"

	"github.com/donaldgifford/lifeinvader-ads/pkg/match"
)

var (
	//go:embed data/vehicles.txt
	vehicles string
	//go:embed data/clothing_brands.txt
	clothingBrands string
	//go:embed data/locations.txt
	locations string
	//go:embed data/services.txt
	services string
	//go:embed data/jobs.txt
	jobRoles string
)

// Vehicles returns the canonical vehicle candidate list.
func Vehicles() string { return vehicles }

// ClothingBrands returns the canonical clothing-brand candidate list.
func ClothingBrands() string { return clothingBrands }

// VehicleNames returns the canonical vehicle names.
func VehicleNames() []string { return match.ParseCandidateList(vehicles) }

// ClothingBrandNames returns the canonical clothing brand names.
func ClothingBrandNames() []string { return match.ParseCandidateList(clothingBrands) }

// Locations returns the known map locations.
func Locations() []string { return match.ParseCandidateList(locations) }

// Services returns the known service names, lowercase.
func Services() []string { return match.ParseCandidateList(services) }

// JobRoles returns the known job roles, lowercase.
func JobRoles() []string { return match.ParseCandidateList(jobRoles) }

// FindLocation returns the longest known location mentioned in text.
func FindLocation(text string) (string, bool) {
	return longestMention(text, Locations())
}

// FindService returns the longest known service mentioned in text.
func FindService(text string) (string, bool) {
	return longestMention(text, Services())
}

// FindJobRole returns the longest known job role mentioned in text.
func FindJobRole(text string) (string, bool) {
	return longestMention(text, JobRoles())
}

func longestMention(text string, names []string) (string, bool) {
	lower := strings.ToLower(text)
	var best string
	for _, n := range names {
		if len(n) > len(best) && strings.Contains(lower, strings.ToLower(n)) {
			best = n
		}
	}
	return best, best != ""
}
