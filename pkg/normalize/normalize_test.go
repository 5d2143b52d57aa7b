package normalize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/donaldgifford/lifeinvader-ads/pkg/normalize"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: ""},
		{name: "whitespace only", input: "   \t\n", want: ""},
		{name: "24/7 ammo store", input: "24/7 Ammo Store!!", want: "24 7 ammunition store"},
		{name: "gun store folds to ammunition store", input: "Gun Store", want: "ammunition store"},
		{name: "gun alone", input: "gun for sale", want: "ammunition for sale"},
		{name: "ammo alone", input: "AMMO", want: "ammunition"},
		{name: "gun inside a word is kept", input: "gunrunning", want: "gunrunning"},
		{name: "temp expands at end", input: "Bar temp", want: "bar template"},
		{name: "temp expands before punctuation", input: "temp: casino", want: "template casino"},
		{name: "temp expands before digit", input: "temp1", want: "template1"},
		{name: "template untouched", input: "Template", want: "template"},
		{name: "temperature untouched", input: "temperature", want: "temperature"},
		{name: "leading n with space", input: "n 5", want: "5"},
		{name: "leading n glued", input: "n5", want: "5"},
		{name: "leading n after punctuation", input: "-n12 Bar", want: "12 bar"},
		{name: "n not leading", input: "bar n5", want: "bar n5"},
		{name: "punctuation splits glued tokens", input: "car-wash/bar", want: "car wash bar"},
		{name: "underscore separates synonyms", input: "ammo_store", want: "ammunition store"},
		{name: "underscore before gun", input: "gun_shop", want: "ammunition shop"},
		{name: "slash separates synonyms", input: "gun/store", want: "ammunition store"},
		{name: "collapses whitespace", input: "  big   house \n in  vinewood ", want: "big house in vinewood"},
		{name: "unicode folds to ascii", input: "Übermacht Sentinel", want: "ubermacht sentinel"},
		{name: "fullwidth digits fold", input: "ｎ５", want: "5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, normalize.Normalize(tt.input))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		"24/7 Ammo Store!!",
		"-n-5 temp",
		"temptemplate",
		"contemp.",
		"Gun-Store in Sandy Shores",
		"n 5 ammo",
		"Übermacht Zion Cabrio $4.5m",
		"!!!???",
		"TEMP template TeMp.",
		"hammock gun, ammo; 24/7",
		"ammo_store",
		"gun_shop",
		"__gun__store__",
		"n_5_ammo",
		"temp_gun",
	}

	for _, in := range inputs {
		once := normalize.Normalize(in)
		assert.Equal(t, once, normalize.Normalize(once), "input %q", in)
	}
}

func TestSearchNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: ""},
		{name: "no synonym folding", input: "Ammo Store", want: "ammo store"},
		{name: "slash becomes space", input: "24/7 Store", want: "24 7 store"},
		{name: "temp untouched", input: "temp", want: "temp"},
		{name: "leading n untouched", input: "n5", want: "n5"},
		{name: "punctuation and spaces", input: "  Tattoo -- Parlor!! ", want: "tattoo parlor"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, normalize.SearchNormalize(tt.input))
		})
	}
}

func TestSearchNormalize_DiffersFromStorage(t *testing.T) {
	t.Parallel()

	assert.NotEqual(t, normalize.Normalize("ammo"), normalize.SearchNormalize("ammo"))
}

func TestAlphanumeric(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "annisgtri", normalize.Alphanumeric("Annis GT-R I"))
	assert.Equal(t, "", normalize.Alphanumeric("!! -- ??"))
	assert.Equal(t, "ubermacht", normalize.Alphanumeric("Übermacht"))
}

func TestRules_ReturnsCopy(t *testing.T) {
	t.Parallel()

	rules := normalize.Rules()
	rules[0].To = "mutated"
	assert.Equal(t, "24 7", normalize.Rules()[0].To)
}

func FuzzNormalize(f *testing.F) {
	for _, seed := range []string{
		"24/7 Ammo Store!!", "ammo_store", "gun_shop", "n 5 temp", "temptemplate", "Übermacht", "\x00tpl\x00",
	} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, in string) {
		once := normalize.Normalize(in)
		assert.Equal(t, once, normalize.Normalize(once), "input %q", in)
	})
}
