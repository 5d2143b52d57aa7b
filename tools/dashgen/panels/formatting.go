package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// AdsFormattedRate graphs formatted ads per second by source.
func AdsFormattedRate() *timeseries.PanelBuilder {
	return series("Ads Formatted", "Formatted ads per second by source (ai, rules)", half).
		WithTarget(target(`lia:ads_formatted:rate5m`, "{{source}}", "A")).
		Unit("ops").
		FillOpacity(20)
}

// FallbackRate graphs rule-based fallbacks by reason.
func FallbackRate() *timeseries.PanelBuilder {
	return series("Rule Fallbacks", "Ads formatted by rules instead of the backend, by reason", half).
		WithTarget(target(`lia:format_fallbacks:rate5m`, "{{reason}}", "A")).
		Unit("ops")
}

// RichShareStat shows the share of ads the backend formatted in the last
// hour.
func RichShareStat() *stat.PanelBuilder {
	formatted := func(extra string) string {
		return `sum(increase(lia_ads_formatted_total{` + extra + JobSelector() + `}[1h]))`
	}
	return single("Backend Share (1h)", "Percentage of ads formatted by the generative backend", full, tall).
		WithTarget(target(formatted(`source="ai",`)+` / `+formatted("")+` * 100`, "", "A")).
		Unit("percent").
		Thresholds(okFrom(50)).
		GraphMode(common.BigValueGraphModeArea)
}

// BackendLatency graphs p95 backend call duration per backend.
func BackendLatency() *timeseries.PanelBuilder {
	return series("Backend Latency (p95)", "95th percentile generative backend call duration", half).
		WithTarget(target(
			`histogram_quantile(0.95, sum(rate(`+scoped("lia_backend_call_duration_seconds_bucket")+
				`[5m])) by (le, backend))`,
			"{{backend}}", "A",
		)).
		Unit("s").
		Thresholds(warnAt(5, 15))
}

// BackendErrors graphs failed backend calls per second.
func BackendErrors() *timeseries.PanelBuilder {
	return series("Backend Errors", "Failed generative backend calls per second", half).
		WithTarget(target(`lia:backend_errors:rate5m`, "{{backend}}", "A")).
		Unit("ops").
		Thresholds(warnAt(0.05, 0.5))
}
