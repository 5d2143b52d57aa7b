package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
)

// HealthzStat shows the liveness probe gauge.
func HealthzStat() *stat.PanelBuilder {
	return probe("Healthz", "Health check status (1 = ok, 0 = failing)", "lia_healthz_up")
}

// ReadyzStat shows the readiness probe gauge.
func ReadyzStat() *stat.PanelBuilder {
	return probe("Readyz", "Readiness check status (1 = ready, 0 = not ready)", "lia_readyz_up")
}

func probe(title, description, metric string) *stat.PanelBuilder {
	return single(title, description, quarter, short).
		WithTarget(target(scoped(metric), "", "A")).
		Thresholds(okFrom(1)).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeNone).
		TextMode(common.BigValueTextModeValue)
}

// CatalogEntriesStat shows how many templates the live index holds. Zero
// means searches return nothing.
func CatalogEntriesStat() *stat.PanelBuilder {
	return single("Catalog Templates", "Entries in the live catalog index", quarter, short).
		WithTarget(target(scoped("lia_catalog_entries"), "", "A")).
		Thresholds(okFrom(1)).
		GraphMode(common.BigValueGraphModeArea)
}

// UptimeStat shows time since the process started.
func UptimeStat() *stat.PanelBuilder {
	return single("Uptime", "Time since process start", quarter, short).
		WithTarget(target(`time() - `+scoped("process_start_time_seconds"), "", "A")).
		Unit("s").
		Thresholds(ladder("green")).
		GraphMode(common.BigValueGraphModeNone)
}
