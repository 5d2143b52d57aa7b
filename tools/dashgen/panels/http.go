package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// RequestRate graphs HTTP requests per second.
func RequestRate() *timeseries.PanelBuilder {
	return series("Request Rate", "HTTP requests per second", half).
		WithTarget(target(`lia:http_requests:rate5m`, "req/s", "A")).
		Unit("reqps")
}

// LatencyPercentiles graphs p50, p95 and p99 request latency.
func LatencyPercentiles() *timeseries.PanelBuilder {
	b := series("Request Latency", "HTTP request duration percentiles", half).Unit("s")

	refs := []string{"A", "B", "C"}
	for i, q := range []string{"0.50", "0.95", "0.99"} {
		b.WithTarget(target(
			`histogram_quantile(`+q+`, sum(rate(`+scoped("lia_http_request_duration_seconds_bucket")+
				`[5m])) by (le))`,
			"p"+q[2:], refs[i],
		))
	}
	return b
}

// RequestsByPath graphs request rate per route template.
func RequestsByPath() *timeseries.PanelBuilder {
	return series("Requests by Route", "Request rate per route template, probes excluded", full).
		WithTarget(target(
			`sum by (method, path) (rate(`+scoped("lia_http_requests_total")+`[5m]))`,
			"{{method}} {{path}}", "A",
		)).
		Unit("reqps")
}

// ErrorRate graphs 5xx responses as a percentage of all requests.
func ErrorRate() *timeseries.PanelBuilder {
	return series("Error Rate %", "HTTP 5xx error rate as percentage of total requests", half).
		WithTarget(target(`lia:http_errors:rate5m / lia:http_requests:rate5m * 100`, "error %", "A")).
		Unit("percent").
		Thresholds(warnAt(1, 5))
}
