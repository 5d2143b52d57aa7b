package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// CatalogReloadDuration graphs p95 time to load rows and rebuild the index.
func CatalogReloadDuration() *timeseries.PanelBuilder {
	return series("Catalog Reload Duration (p95)", "Time to load catalog rows and rebuild the index", half).
		WithTarget(target(
			`histogram_quantile(0.95, sum(rate(`+scoped("lia_catalog_reload_duration_seconds_bucket")+
				`[15m])) by (le))`,
			"p95", "A",
		)).
		Unit("s")
}

// CatalogReloadFailures shows reloads over the last day that kept the
// previous index.
func CatalogReloadFailures() *stat.PanelBuilder {
	return single("Reload Failures (24h)", "Catalog reloads that kept the previous index", half, tall).
		WithTarget(target(`increase(`+scoped("lia_catalog_reload_failures_total")+`[24h])`, "", "A")).
		Thresholds(warnAt(1, 5)).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeArea)
}

// SearchLatency graphs p99 filter and suggest duration.
func SearchLatency() *timeseries.PanelBuilder {
	return series("Search Latency (p99)", "Catalog filter and suggest duration", half).
		WithTarget(target(
			`histogram_quantile(0.99, sum(rate(`+scoped("lia_catalog_search_duration_seconds_bucket")+
				`[5m])) by (le, op))`,
			"{{op}}", "A",
		)).
		Unit("s")
}

// CanonicalLookups graphs official name lookups by outcome.
func CanonicalLookups() *timeseries.PanelBuilder {
	return series("Canonical Lookups", "Official name lookups per second by outcome (found, none)", half).
		WithTarget(target(
			`sum by (outcome) (rate(`+scoped("lia_canonical_lookups_total")+`[5m]))`,
			"{{outcome}}", "A",
		)).
		Unit("ops")
}

// FeedbackSubmitted graphs corrections stored per hour.
func FeedbackSubmitted() *timeseries.PanelBuilder {
	return series("Corrections Submitted", "User corrections stored per hour", half).
		WithTarget(target(`sum(increase(`+scoped("lia_feedback_submitted_total")+`[1h]))`, "corrections/h", "A")).
		DrawStyle(common.GraphDrawStyleBars)
}

// FeedbackErrors graphs failed feedback reads while building prompts.
func FeedbackErrors() *timeseries.PanelBuilder {
	return series("Feedback Lookup Errors", "Feedback reads that failed while building a prompt", half).
		WithTarget(target(
			`sum by (op) (rate(`+scoped("lia_feedback_errors_total")+`[5m]))`,
			"{{op}}", "A",
		)).
		Unit("ops").
		Thresholds(warnAt(0.01, 0.1))
}
