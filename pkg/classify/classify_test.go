package classify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/donaldgifford/lifeinvader-ads/pkg/classify"
	"github.com/donaldgifford/lifeinvader-ads/pkg/normalize"
	domain "github.com/donaldgifford/lifeinvader-ads/pkg/types"
)

func TestDetectCategory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  domain.Category
	}{
		{name: "empty", input: "", want: domain.CategoryOther},
		{name: "vehicle brand", input: "Selling Annis GT-R I full upgrades with insurance", want: domain.CategoryAuto},
		{name: "insurance is a vehicle feature first", input: "Offering insurance services", want: domain.CategoryAuto},
		{name: "clothing brand", input: "Selling Ponsonbys jacket", want: domain.CategoryClothing},
		{name: "warehouse before house", input: "Selling warehouse in Paleto", want: domain.CategoryWarehouse},
		{name: "penthouse is an apartment", input: "Selling penthouse apartment", want: domain.CategoryApartment},
		{name: "house", input: "Selling big house in Vinewood", want: domain.CategoryHouse},
		{name: "job", input: "Hiring experienced chef, competitive salary", want: domain.CategoryOffice},
		{name: "service", input: "Offering taxi services", want: domain.CategoryServices},
		{name: "24/7 store", input: "Selling 24/7 store", want: domain.Category247Store},
		{name: "ammo folds to ammunition", input: "Selling ammo store", want: domain.CategoryAmmunitionStore},
		{name: "gun store", input: "Gun store for sale", want: domain.CategoryAmmunitionStore},
		{name: "car wash", input: "Selling car wash business", want: domain.CategoryCarWash},
		{name: "auto repair shop", input: "Selling auto repair shop", want: domain.CategoryAutoRepairShop},
		{name: "casino", input: "Selling a casino", want: domain.CategoryCasino},
		{name: "farm with barn", input: "Selling farm with barn", want: domain.CategoryFarm},
		{name: "barber shop before bar", input: "Selling barber shop in Davis", want: domain.CategoryBarberShop},
		{name: "bar", input: "Selling bar in Vespucci", want: domain.CategoryBar},
		{name: "dating", input: "Looking for a girlfriend", want: domain.CategoryDating},
		{name: "hiring verb fallback", input: "Hiring drivers", want: domain.CategoryOffice},
		{name: "default", input: "random words", want: domain.CategoryOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, classify.DetectCategory(tt.input))
		})
	}
}

func TestDetectCategory_Total(t *testing.T) {
	t.Parallel()

	inputs := []string{"", " ", "!!!", "n5", "Übermacht", "24/7", "\x00", "selling", "buying stuff"}
	for _, in := range inputs {
		got := classify.DetectCategory(in)
		assert.True(t, domain.IsValidCategory(string(got)), "input %q gave %q", in, got)
	}
}

func TestDetectRule(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "hiring intent", classify.DetectRule("Hiring drivers"))
	assert.Equal(t, "job", classify.DetectRule("Hiring chef, good salary"))
	assert.Empty(t, classify.DetectRule("random words"))
}

func TestRules(t *testing.T) {
	t.Parallel()

	rules := classify.Rules()
	assert.Equal(t, "vehicle", rules[0].Name)
	assert.Equal(t, "hiring intent", rules[len(rules)-1].Name)

	for _, r := range rules {
		assert.True(t, domain.IsValidCategory(string(r.Category)), r.Name)
		for _, kw := range r.Keywords {
			assert.Equal(t, normalize.Normalize(kw), kw, "keyword %q of %s is not normalized", kw, r.Name)
		}
	}

	rules[0].Keywords[0] = "mutated"
	assert.NotEqual(t, "mutated", classify.Rules()[0].Keywords[0])
}

func TestRules_Precedence(t *testing.T) {
	t.Parallel()

	index := map[string]int{}
	for i, r := range classify.Rules() {
		index[r.Name] = i
	}

	assert.Less(t, index["vehicle"], index["clothing"])
	assert.Less(t, index["clothing"], index["warehouse"])
	assert.Less(t, index["warehouse"], index["house"])
	assert.Less(t, index["house"], index["job"])
	assert.Less(t, index["job"], index["service"])
	assert.Less(t, index["service"], index["bar"])
	assert.Less(t, index["barber shop"], index["bar"])
	assert.Less(t, index["bar"], index["dating"])
	assert.Less(t, index["dating"], index["hiring intent"])
}

func TestDetectAdType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  domain.AdType
	}{
		{input: "Hiring experienced chef", want: domain.AdHiring},
		{input: "Looking for a girlfriend", want: domain.AdDating},
		{input: "Buying a Declasse Tahoe", want: domain.AdBuying},
		{input: "Offering taxi rides", want: domain.AdOffering},
		{input: "Selling big house", want: domain.AdSelling},
		{input: "Sultan for sale", want: domain.AdSelling},
		{input: "", want: domain.AdUnknown},
		{input: "hello there", want: domain.AdUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, classify.DetectAdType(tt.input))
		})
	}
}

func TestPatternFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		category domain.Category
		want     domain.FormatPattern
	}{
		{domain.CategoryAuto, domain.PatternVehicle},
		{domain.CategoryClothing, domain.PatternClothing},
		{domain.CategoryHouse, domain.PatternProperty},
		{domain.CategoryWarehouse, domain.PatternProperty},
		{domain.CategoryOffice, domain.PatternJob},
		{domain.CategoryServices, domain.PatternService},
		{domain.CategoryDating, domain.PatternDating},
		{domain.CategoryBar, domain.PatternBusiness},
		{domain.CategoryClothingStore, domain.PatternBusiness},
		{domain.CategoryOther, domain.PatternGeneric},
		{domain.Category("spaceship"), domain.PatternGeneric},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, classify.PatternFor(tt.category))
		})
	}
}
