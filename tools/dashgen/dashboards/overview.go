// Package dashboards assembles Grafana dashboard definitions from panel builders.
package dashboards

import (
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"

	"github.com/donaldgifford/lifeinvader-ads/tools/dashgen/panels"
)

// OverviewUID is the stable dashboard UID.
const OverviewUID = "lia-overview"

// BuildOverview constructs the LifeInvader Ads overview dashboard.
func BuildOverview() *dashboard.DashboardBuilder {
	b := dashboard.NewDashboardBuilder("LifeInvader Ads Overview").
		Uid(OverviewUID).
		Tags([]string{"lia", "lifeinvader-ads"}).
		Refresh("30s").
		Time("now-6h", "now").
		Timezone("browser").
		Editable().
		Tooltip(dashboard.DashboardCursorSyncCrosshair).
		WithVariable(datasourceVar())

	b.WithRow(dashboard.NewRowBuilder("Overview").
		WithPanel(panels.HealthzStat()).
		WithPanel(panels.ReadyzStat()).
		WithPanel(panels.CatalogEntriesStat()).
		WithPanel(panels.UptimeStat()))

	b.WithRow(dashboard.NewRowBuilder("HTTP").
		WithPanel(panels.RequestRate()).
		WithPanel(panels.LatencyPercentiles()).
		WithPanel(panels.ErrorRate()).
		WithPanel(panels.RequestsByPath()))

	b.WithRow(dashboard.NewRowBuilder("Formatting").
		WithPanel(panels.AdsFormattedRate()).
		WithPanel(panels.FallbackRate()).
		WithPanel(panels.RichShareStat()))

	b.WithRow(dashboard.NewRowBuilder("Backend").
		WithPanel(panels.BackendLatency()).
		WithPanel(panels.BackendErrors()))

	b.WithRow(dashboard.NewRowBuilder("Catalog").
		WithPanel(panels.CatalogReloadDuration()).
		WithPanel(panels.CatalogReloadFailures()).
		WithPanel(panels.SearchLatency()).
		WithPanel(panels.CanonicalLookups()))

	b.WithRow(dashboard.NewRowBuilder("Feedback").
		WithPanel(panels.FeedbackSubmitted()).
		WithPanel(panels.FeedbackErrors()))

	return b
}

func datasourceVar() *dashboard.DatasourceVariableBuilder {
	return dashboard.NewDatasourceVariableBuilder("datasource").
		Label("Datasource").
		Type("prometheus")
}
