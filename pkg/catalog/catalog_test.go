package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/lifeinvader-ads/pkg/catalog"
	"github.com/donaldgifford/lifeinvader-ads/pkg/normalize"
	domain "github.com/donaldgifford/lifeinvader-ads/pkg/types"
)

func testRows() []domain.CatalogRow {
	return []domain.CatalogRow{
		{Name: "Selling Barber Shop", Description: "Chairs and mirrors included", Type: "Barber Shop"},
		{Name: "Selling Declasse Tahoe", Description: "Fits any bar parking lot", Type: "n4"},
		{Name: "Selling Bar", Description: "Ammunition crates included", Type: "bar"},
		{Name: "Selling Ammo Store in Sandy Shores", Description: "Fully stocked gun store", Type: "Ammunition Store"},
		{Name: "Hiring chef", Description: "Good salary", Type: ""},
	}
}

func names(entries []domain.CatalogEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name
	}
	return out
}

func TestNewEntry(t *testing.T) {
	t.Parallel()

	row := domain.CatalogRow{Name: "24/7 Ammo Store!!", Description: "temp listing", Type: "n2"}
	e := catalog.NewEntry(row, domain.CategoryAmmunitionStore)

	assert.Equal(t, row.Name, e.Name)
	assert.Equal(t, domain.CategoryAmmunitionStore, e.Category)
	assert.Equal(t, "Ammunition Store", e.DisplayCategory)
	assert.Equal(t, "24 7 ammunition store", e.NormalizedName)
	assert.Equal(t, normalize.Normalize(row.Description), e.NormalizedDescription)
	assert.Equal(t, "2", e.NormalizedType)
}

func TestResolveCategory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		row  domain.CatalogRow
		want domain.Category
	}{
		{name: "key", row: domain.CatalogRow{Type: "tattoo parlor"}, want: domain.CategoryTattooParlor},
		{name: "label", row: domain.CatalogRow{Type: "Ammunition Store"}, want: domain.CategoryAmmunitionStore},
		{name: "synonym folded", row: domain.CatalogRow{Type: "Ammo Store"}, want: domain.CategoryAmmunitionStore},
		{name: "24/7 label", row: domain.CatalogRow{Type: "24/7 Store"}, want: domain.Category247Store},
		{name: "n id", row: domain.CatalogRow{Type: "n4"}, want: domain.CategoryAuto},
		{name: "n id with space", row: domain.CatalogRow{Type: "n 1"}, want: domain.Category247Store},
		{
			name: "id out of range classifies text",
			row:  domain.CatalogRow{Name: "Selling casino", Type: "n99"},
			want: domain.CategoryCasino,
		},
		{
			name: "empty type classifies text",
			row:  domain.CatalogRow{Name: "Hiring chef", Description: "Good salary"},
			want: domain.CategoryOffice,
		},
		{name: "nothing known", row: domain.CatalogRow{Name: "misc", Type: "???"}, want: domain.CategoryOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, catalog.ResolveCategory(tt.row))
		})
	}
}

func TestFilterCatalog_SynonymsMatchTheSameSet(t *testing.T) {
	t.Parallel()

	idx := catalog.NewIndex(testRows())

	ammo := idx.Filter("ammo")
	ammunition := idx.Filter("ammunition")

	assert.Equal(t, ammunition, ammo)
	assert.Equal(t, []string{"Selling Ammo Store in Sandy Shores", "Selling Bar"}, names(ammo))
}

func TestFilterCatalog_AndAcrossTerms(t *testing.T) {
	t.Parallel()

	idx := catalog.NewIndex(testRows())

	got := idx.Filter("ammunition store")
	assert.Equal(t, []string{"Selling Ammo Store in Sandy Shores"}, names(got))

	got = idx.Filter("selling included")
	assert.Equal(t, []string{"Selling Barber Shop", "Selling Bar"}, names(got))

	assert.Empty(t, idx.Filter("selling spaceship"))
}

func TestFilterCatalog_CategoryFirst(t *testing.T) {
	t.Parallel()

	idx := catalog.NewIndex(testRows())

	got := idx.Filter("bar")
	require.Len(t, got, 3, "no entries dropped")
	assert.Equal(t, []string{"Selling Bar", "Selling Barber Shop", "Selling Declasse Tahoe"}, names(got))
	assert.Equal(t, domain.CategoryBar, got[0].Category)
}

func TestFilterCatalog_EmptyQueryReturnsAll(t *testing.T) {
	t.Parallel()

	rows := testRows()
	idx := catalog.NewIndex(rows)

	got := idx.Filter("  ")
	assert.Len(t, got, len(rows))
	assert.Equal(t, rows[0].Name, got[0].Name)
}

func TestInferCategory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		query  string
		want   domain.Category
		wantOK bool
	}{
		{query: "bar", want: domain.CategoryBar, wantOK: true},
		{query: "barb", want: domain.CategoryBarberShop, wantOK: true},
		{query: "ammo", want: domain.CategoryAmmunitionStore, wantOK: true},
		{query: "24/7", want: domain.Category247Store, wantOK: true},
		{query: "Tattoo Par", want: domain.CategoryTattooParlor, wantOK: true},
		{query: "selling", wantOK: false},
		{query: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			t.Parallel()
			got, ok := catalog.InferCategory(tt.query)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSuggest(t *testing.T) {
	t.Parallel()

	idx := catalog.NewIndex(testRows())

	tests := []struct {
		name    string
		partial string
		want    string
	}{
		{name: "name prefix", partial: "sell", want: "Selling Barber Shop"},
		{name: "case insensitive", partial: "SELLING DEC", want: "Selling Declasse Tahoe"},
		{name: "description prefix", partial: "fits", want: "Fits any bar parking lot"},
		{name: "type prefix", partial: "ammunition s", want: "Ammunition Store"},
		{name: "not longer than input", partial: "Selling Barber Shop", want: ""},
		{name: "no candidate", partial: "xyz", want: ""},
		{name: "empty", partial: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, idx.Suggest(tt.partial))
		})
	}
}

func TestSuggest_FirstPrefixMatchDecides(t *testing.T) {
	t.Parallel()

	entries := []domain.CatalogEntry{
		catalog.NewEntry(domain.CatalogRow{Name: "Ammo"}, domain.CategoryAmmunitionStore),
		catalog.NewEntry(domain.CatalogRow{Name: "Ammo Store Deal"}, domain.CategoryAmmunitionStore),
	}

	tests := []struct {
		name    string
		partial string
		want    string
	}{
		{name: "first match same length", partial: "ammo", want: ""},
		{name: "first match longer", partial: "am", want: "Ammo"},
		{name: "only second matches", partial: "ammo s", want: "Ammo Store Deal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, catalog.Suggest(entries, tt.partial))
		})
	}
}

func TestIndex(t *testing.T) {
	t.Parallel()

	idx := catalog.NewIndex(testRows())
	assert.Equal(t, 5, idx.Len())

	entries := idx.Entries()
	entries[0].Name = "mutated"
	assert.Equal(t, "Selling Barber Shop", idx.Entries()[0].Name)

	cats := idx.Categories()
	require.Len(t, cats, 5)
	assert.Equal(t, domain.CategoryAmmunitionStore, cats[0].Category)
	assert.Equal(t, 1, cats[0].Count)

	var nilIndex *catalog.Index
	assert.Zero(t, nilIndex.Len())
	assert.Nil(t, nilIndex.Filter("bar"))
	assert.Empty(t, nilIndex.Suggest("bar"))
}
