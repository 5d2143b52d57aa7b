package rules

// AlertRules returns a PrometheusRule CR containing alert rules for
// lifeinvader-ads operational monitoring.
func AlertRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: apiVersion,
		Kind:       kind,
		Metadata: PrometheusRuleMetadata{
			Name:   "lia-alerts",
			Labels: ruleLabels(),
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "lia-alerts",
					Rules: []Rule{
						alert("LiaDown", `absent(up{job="lifeinvader-ads"})`, "2m", "critical",
							"LifeInvader Ads is down",
							"The lifeinvader-ads job has been absent for more than 2 minutes."),
						alert("LiaReadinessDown", `lia_readyz_up == 0`, "2m", "critical",
							"LifeInvader Ads readiness check is failing",
							"The store ping has been failing for more than 2 minutes."),
						alert("LiaHighErrorRate", `lia:http_errors:rate5m / lia:http_requests:rate5m > 0.05`, "5m", "warning",
							"High HTTP error rate on LifeInvader Ads",
							"More than 5% of HTTP requests are returning 5xx errors over the last 5 minutes."),
						alert("LiaBackendErrors", `sum(lia:backend_errors:rate5m) > 0.1`, "10m", "warning",
							"Generative backend calls are failing",
							"Backend calls are failing at more than 0.1/s. Ads are still served by the rule formatter."),
						alert("LiaBackendRateLimited", `lia:format_fallbacks:rate5m{reason="rate_limited"} > 0.5`, "10m", "info",
							"Backend rate limit is rejecting calls",
							"More than 0.5 ads/s fall back to rules because the backend budget is exhausted."),
						alert("LiaCatalogReloadFailing", `lia:catalog_reload_failures:rate5m > 0`, "15m", "warning",
							"Catalog reloads are failing",
							"The catalog index has not been refreshed for 15 minutes; the previous index is still served."),
						alert("LiaCatalogEmpty", `lia_catalog_entries == 0`, "10m", "warning",
							"Catalog is empty",
							"The live catalog index has no templates. Check the seed file or import a catalog."),
					},
				},
			},
		},
	}
}

func alert(name, expr, forDur, severity, summary, description string) Rule {
	return Rule{
		Alert: name,
		Expr:  expr,
		For:   forDur,
		Labels: map[string]string{
			"severity": severity,
		},
		Annotations: map[string]string{
			"summary":     summary,
			"description": description,
		},
	}
}
