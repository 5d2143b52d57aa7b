package main

import "errors"

// KnownMetrics is the set of metric names exported by lifeinvader-ads plus
// recording rule names referenced in dashboards and alerts.
var KnownMetrics = map[string]bool{
	// HTTP metrics.
	"lia_http_request_duration_seconds": true,
	"lia_http_requests_total":           true,

	// Health metrics.
	"lia_healthz_up": true,
	"lia_readyz_up":  true,

	// Formatting metrics.
	"lia_ads_formatted_total":           true,
	"lia_format_fallbacks_total":        true,
	"lia_backend_call_duration_seconds": true,
	"lia_feedback_errors_total":         true,
	"lia_feedback_submitted_total":      true,

	// Matching metrics.
	"lia_canonical_lookups_total": true,

	// Catalog metrics.
	"lia_catalog_entries":                 true,
	"lia_catalog_reloads_total":           true,
	"lia_catalog_reload_failures_total":   true,
	"lia_catalog_reload_duration_seconds": true,
	"lia_catalog_search_duration_seconds": true,

	// Recording rules.
	"lia:http_requests:rate5m":           true,
	"lia:http_errors:rate5m":             true,
	"lia:ads_formatted:rate5m":           true,
	"lia:format_fallbacks:rate5m":        true,
	"lia:backend_errors:rate5m":          true,
	"lia:catalog_reload_failures:rate5m": true,

	// Standard Prometheus metrics referenced in dashboards.
	"up":                         true,
	"process_start_time_seconds": true,
}

// Config controls which artifacts the generator produces and where they go.
type Config struct {
	OutputDir        string
	DashboardEnabled bool
	RulesEnabled     bool
}

// DefaultConfig returns a Config that generates all artifacts into ../../deploy
// (relative to tools/dashgen/).
func DefaultConfig() Config {
	return Config{
		OutputDir:        "../../deploy",
		DashboardEnabled: true,
		RulesEnabled:     true,
	}
}

// Validate checks that the config is usable.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output directory must be set")
	}
	if !c.DashboardEnabled && !c.RulesEnabled {
		return errors.New("at least one of dashboard or rules must be enabled")
	}
	return nil
}
