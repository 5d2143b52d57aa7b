package canonical_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/lifeinvader-ads/pkg/canonical"
	"github.com/donaldgifford/lifeinvader-ads/pkg/match"
)

func TestLists(t *testing.T) {
	t.Parallel()

	vehicles := canonical.VehicleNames()
	require.NotEmpty(t, vehicles)
	assert.Equal(t, "Annis GT-R I", vehicles[0])
	assert.Contains(t, vehicles, "Declasse Tahoe")

	assert.Contains(t, canonical.ClothingBrandNames(), "Ponsonbys")
	assert.Contains(t, canonical.Locations(), "Sandy Shores")
	assert.Contains(t, canonical.Services(), "taxi")
	assert.Contains(t, canonical.JobRoles(), "chef")

	for _, name := range vehicles {
		assert.NotContains(t, name, "|")
	}
}

func TestExtractFromEmbeddedLists(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Karin Sultan RS", match.ExtractCanonicalName("selling my sultan rs", canonical.Vehicles()))
	assert.Equal(t, "Ponsonbys", match.ExtractCanonicalName("ponsonbys suit, barely worn", canonical.ClothingBrands()))
}

func TestFindLocation(t *testing.T) {
	t.Parallel()

	got, ok := canonical.FindLocation("big house in vinewood hills with pool")
	assert.True(t, ok)
	assert.Equal(t, "Vinewood Hills", got)

	_, ok = canonical.FindLocation("somewhere nice")
	assert.False(t, ok)
}

func TestFindServiceAndJobRole(t *testing.T) {
	t.Parallel()

	svc, ok := canonical.FindService("Offering taxi services 24/7")
	assert.True(t, ok)
	assert.Equal(t, "taxi", svc)

	role, ok := canonical.FindJobRole("Hiring security guard for night shifts")
	assert.True(t, ok)
	assert.Equal(t, "security guard", role)
}
