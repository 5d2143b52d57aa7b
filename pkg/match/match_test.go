package match_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/lifeinvader-ads/pkg/match"
)

const vehicleList = `Annis GT-R I|sports
Annis Skyline GT-R (R34)|sports
Declasse Tahoe|suv
Banshee|super
Grotti Cheetah|super`

func TestSimilarity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{name: "identical", a: "Annis GT-R I", b: "Annis GT-R I", want: 1.0},
		{name: "identical after stripping", a: "gt-r", b: "GTR", want: 1.0},
		{name: "substring", a: "gtr", b: "Annis GT-R I", want: 0.9},
		{name: "word overlap", a: "red sultan rs", b: "sultan classic", want: 1.0 / 3.0},
		{name: "word overlap capped", a: "big house", b: "house big", want: 0.95},
		{name: "character overlap", a: "abcd", b: "abce", want: 0.75},
		{name: "length gap too large", a: "abcdefghij", b: "xyz", want: 0},
		{name: "empty against text", a: "abc", b: "", want: 0},
		{name: "punctuation only against text", a: "!!!", b: "abc", want: 0},
		{name: "both empty", a: "", b: "", want: 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tt.want, match.Similarity(tt.a, tt.b), 0.0001)
		})
	}
}

func TestSimilarity_Symmetric(t *testing.T) {
	t.Parallel()

	words := []string{
		"", "gtr", "Annis GT-R I", "abcd", "abce", "dcba", "banshee", "bansee",
		"cheetahs wanted", "Grotti Cheetah", "red sultan rs", "sultan classic",
		"aab", "abb", "big house", "house",
	}

	for _, a := range words {
		for _, b := range words {
			assert.InDelta(t, match.Similarity(a, b), match.Similarity(b, a), 1e-9, "%q vs %q", a, b)
		}
	}
}

func TestSimilarity_Identity(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"a", "Declasse Tahoe", "24/7 store", "!!", "n5"} {
		assert.Equal(t, 1.0, match.Similarity(s, s), s)
	}
}

func TestSimilarity_InRange(t *testing.T) {
	t.Parallel()

	inputs := []string{"", "x", "gtr", "banshee", "aaaa", "aaab", "cheetahs", "a b c d"}
	for _, a := range inputs {
		for _, b := range inputs {
			s := match.Similarity(a, b)
			assert.GreaterOrEqual(t, s, 0.0)
			assert.LessOrEqual(t, s, 1.0)
		}
	}
}

func TestFindBestMatch(t *testing.T) {
	t.Parallel()

	candidates := []string{"Annis GT-R I", "Annis Skyline GT-R (R34)", "Declasse Tahoe"}

	got, ok := match.FindBestMatch("gtr", candidates)
	require.True(t, ok)
	assert.Equal(t, "Annis GT-R I", got.Match, "ties keep the earliest candidate")
	assert.Contains(t, got.Match, "GT-R")
	assert.InDelta(t, 0.9, got.Similarity, 0.0001)
}

func TestFindBestMatch_NoMatch(t *testing.T) {
	t.Parallel()

	got, ok := match.FindBestMatch("zzz", []string{"Declasse Tahoe"})
	assert.False(t, ok)
	assert.Empty(t, got.Match)

	_, ok = match.FindBestMatch("gtr", nil)
	assert.False(t, ok)
}

func TestFindBestMatch_ThresholdRespected(t *testing.T) {
	t.Parallel()

	candidates := match.ParseCandidateList(vehicleList)
	inputs := []string{
		"gtr", "tahoe", "banshe", "cheetah", "abc", "annis", "r34", "xyz",
		"matches", "skyline gt", "grotti", "declase tahoe",
	}

	for _, in := range inputs {
		if got, ok := match.FindBestMatch(in, candidates); ok {
			assert.Greater(t, got.Similarity, match.AcceptThreshold, in)
		}
	}
}

func TestThresholdsAreDistinct(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 0.6, match.AcceptThreshold, 0.0001)
	assert.InDelta(t, 0.7, match.WordMatchThreshold, 0.0001)
}

func TestParseCandidateList(t *testing.T) {
	t.Parallel()

	text := "Annis GT-R I|sports\n\n  Declasse Tahoe |suv\n|empty\nBanshee"
	assert.Equal(t, []string{"Annis GT-R I", "Declasse Tahoe", "Banshee"}, match.ParseCandidateList(text))
	assert.Empty(t, match.ParseCandidateList(""))
}

func TestExtractCanonicalName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		list  string
		want  string
	}{
		{name: "containment", input: "Selling my declasse tahoe, clean", list: vehicleList, want: "Declasse Tahoe"},
		{
			name:  "containment beats keyword",
			input: "not a skyline, the annis gt-r i",
			list:  vehicleList,
			want:  "Annis GT-R I",
		},
		{name: "keyword", input: "fast skyline for sale", list: vehicleList, want: "Annis Skyline GT-R (R34)"},
		{name: "per-word fuzzy", input: "bansee for sale", list: vehicleList, want: "Banshee"},
		{name: "partial token", input: "cheetahs wanted", list: vehicleList, want: "Grotti Cheetah"},
		{name: "no confident match", input: "xyz qqq", list: vehicleList, want: ""},
		{name: "empty input", input: "", list: vehicleList, want: ""},
		{name: "empty list", input: "declasse tahoe", list: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, match.ExtractCanonicalName(tt.input, tt.list))
		})
	}
}

func TestStageNames(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"containment", "keyword", "word", "partial"}, match.StageNames())
}

func TestKnownKeywords_ReturnsCopy(t *testing.T) {
	t.Parallel()

	kw := match.KnownKeywords()
	require.NotEmpty(t, kw)
	kw[0] = "mutated"
	assert.NotEqual(t, "mutated", match.KnownKeywords()[0])
}
