package rules

// RecordingRules returns a PrometheusRule CR containing pre-computed rate
// expressions used by dashboards and alert rules.
func RecordingRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: apiVersion,
		Kind:       kind,
		Metadata: PrometheusRuleMetadata{
			Name:   "lia-recording-rules",
			Labels: ruleLabels(),
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "lia-recording",
					Rules: []Rule{
						{
							Record: "lia:http_requests:rate5m",
							Expr:   `sum(rate(lia_http_requests_total[5m]))`,
						},
						{
							Record: "lia:http_errors:rate5m",
							Expr:   `sum(rate(lia_http_requests_total{status=~"5.."}[5m]))`,
						},
						{
							Record: "lia:ads_formatted:rate5m",
							Expr:   `sum by (source) (rate(lia_ads_formatted_total[5m]))`,
						},
						{
							Record: "lia:format_fallbacks:rate5m",
							Expr:   `sum by (reason) (rate(lia_format_fallbacks_total[5m]))`,
						},
						{
							Record: "lia:backend_errors:rate5m",
							Expr:   `sum by (backend) (rate(lia_backend_call_duration_seconds_count{outcome="error"}[5m]))`,
						},
						{
							Record: "lia:catalog_reload_failures:rate5m",
							Expr:   `rate(lia_catalog_reload_failures_total[5m])`,
						},
					},
				},
			},
		},
	}
}
