package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/donaldgifford/lifeinvader-ads/tools/dashgen/dashboards"
	"github.com/donaldgifford/lifeinvader-ads/tools/dashgen/rules"
	"github.com/donaldgifford/lifeinvader-ads/tools/dashgen/validate"
)

func TestDefaultConfigValid(t *testing.T) {
	t.Parallel()
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
}

func TestConfigValidate_EmptyOutputDir(t *testing.T) {
	t.Parallel()
	cfg := Config{OutputDir: "", DashboardEnabled: true}
	assert.Error(t, cfg.Validate())
}

func TestConfigValidate_NothingEnabled(t *testing.T) {
	t.Parallel()
	cfg := Config{OutputDir: "/tmp", DashboardEnabled: false, RulesEnabled: false}
	assert.Error(t, cfg.Validate())
}

func TestBuildOverviewDashboard(t *testing.T) {
	t.Parallel()

	dash, err := dashboards.BuildOverview().Build()
	require.NoError(t, err)

	require.NotNil(t, dash.Uid)
	assert.Equal(t, "lia-overview", *dash.Uid)

	require.NotNil(t, dash.Title)
	assert.Equal(t, "LifeInvader Ads Overview", *dash.Title)

	require.NotNil(t, dash.Templating)
	assert.Len(t, dash.Templating.List, 1)
	assert.Equal(t, "datasource", dash.Templating.List[0].Name)

	assert.Len(t, dash.Panels, 6)

	totalPanels := 0
	for _, p := range dash.Panels {
		if p.RowPanel != nil {
			totalPanels += len(p.RowPanel.Panels)
		}
	}
	assert.Equal(t, 19, totalPanels)

	result := validate.Dashboard(dash, KnownMetrics)
	assert.True(t, result.Ok(), "validation errors: %v", result.Errors)
	assert.Empty(t, result.Warnings, "unexpected warnings: %v", result.Warnings)
}

func TestRecordingRules(t *testing.T) {
	t.Parallel()

	cr := rules.RecordingRules()
	assert.Equal(t, "monitoring.coreos.com/v1", cr.APIVersion)
	assert.Equal(t, "PrometheusRule", cr.Kind)
	assert.Equal(t, "lia-recording-rules", cr.Metadata.Name)

	require.Len(t, cr.Spec.Groups, 1)
	group := cr.Spec.Groups[0]
	assert.Equal(t, "lia-recording", group.Name)

	expectedRecords := []string{
		"lia:http_requests:rate5m",
		"lia:http_errors:rate5m",
		"lia:ads_formatted:rate5m",
		"lia:format_fallbacks:rate5m",
		"lia:backend_errors:rate5m",
		"lia:catalog_reload_failures:rate5m",
	}
	require.Len(t, group.Rules, len(expectedRecords))
	for i, rule := range group.Rules {
		assert.Equal(t, expectedRecords[i], rule.Record)
		assert.True(t, KnownMetrics[rule.Record], "recording rule %s missing from KnownMetrics", rule.Record)
	}

	result := validate.Rules(cr, KnownMetrics)
	assert.True(t, result.Ok(), "validation errors: %v", result.Errors)

	data, err := yaml.Marshal(cr)
	require.NoError(t, err)
	assert.Contains(t, string(data), "apiVersion: monitoring.coreos.com/v1")
}

func TestAlertRules(t *testing.T) {
	t.Parallel()

	cr := rules.AlertRules()
	assert.Equal(t, "lia-alerts", cr.Metadata.Name)

	require.Len(t, cr.Spec.Groups, 1)
	group := cr.Spec.Groups[0]
	assert.Equal(t, "lia-alerts", group.Name)

	expectedAlerts := []string{
		"LiaDown",
		"LiaReadinessDown",
		"LiaHighErrorRate",
		"LiaBackendErrors",
		"LiaBackendRateLimited",
		"LiaCatalogReloadFailing",
		"LiaCatalogEmpty",
	}
	require.Len(t, group.Rules, len(expectedAlerts))
	for i, rule := range group.Rules {
		assert.Equal(t, expectedAlerts[i], rule.Alert)
		assert.NotEmpty(t, rule.For, "alert %s missing for", rule.Alert)
		assert.NotEmpty(t, rule.Annotations["description"], "alert %s missing description", rule.Alert)
	}

	result := validate.Rules(cr, KnownMetrics)
	assert.True(t, result.Ok(), "validation errors: %v", result.Errors)

	file := cr.File()
	assert.Equal(t, cr.Spec.Groups, file.Groups)
}

func TestValidateExpr(t *testing.T) {
	t.Parallel()

	known := map[string]bool{"lia_http_requests_total": true, "lia_http_request_duration_seconds": true}

	tests := []struct {
		name    string
		expr    string
		wantErr string
	}{
		{name: "known counter", expr: `rate(lia_http_requests_total[5m])`},
		{name: "histogram bucket", expr: `histogram_quantile(0.9, sum(rate(lia_http_request_duration_seconds_bucket[5m])) by (le))`},
		{name: "unknown metric", expr: `rate(lia_nope_total[5m])`, wantErr: `unknown metric "lia_nope_total"`},
		{name: "syntax error", expr: `rate(lia_http_requests_total[5m]`, wantErr: "parsing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := validate.Expr(tt.expr, known)
			if tt.wantErr == "" {
				assert.True(t, res.Ok(), "%v", res.Errors)
				return
			}
			require.Len(t, res.Errors, 1)
			assert.Contains(t, res.Errors[0], tt.wantErr)
		})
	}
}

func TestValidateRules_MissingSeverity(t *testing.T) {
	t.Parallel()

	cr := rules.PrometheusRule{Spec: rules.PrometheusRuleSpec{Groups: []rules.RuleGroup{{
		Name:  "g",
		Rules: []rules.Rule{{Alert: "Bare", Expr: `up == 0`}},
	}}}}

	res := validate.Rules(cr, KnownMetrics)
	assert.False(t, res.Ok())
	assert.Contains(t, res.Errors, "alert Bare has no severity")
	assert.Contains(t, res.Errors, "alert Bare has no summary")
}

func TestRun_WritesArtifacts(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg := DefaultConfig()
	cfg.OutputDir = dir

	var out bytes.Buffer
	require.NoError(t, run(&out, cfg, false))

	for _, path := range []string{
		filepath.Join(dir, "grafana", "data", "lia-overview.json"),
		filepath.Join(dir, "prometheus", "lia-recording-rules.yaml"),
		filepath.Join(dir, "prometheus", "lia-alerts.yaml"),
	} {
		data, err := os.ReadFile(path)
		require.NoError(t, err, path)
		assert.NotEmpty(t, data)
		assert.Contains(t, out.String(), path)
	}

	rulesYAML, err := os.ReadFile(filepath.Join(dir, "prometheus", "lia-alerts.yaml"))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(rulesYAML, []byte(generatedHeader)))
}

func TestRun_ValidateOnly(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "out")
	cfg := DefaultConfig()
	cfg.OutputDir = dir

	var out bytes.Buffer
	require.NoError(t, run(&out, cfg, true))
	assert.Contains(t, out.String(), "validation passed")

	_, err := os.Stat(dir)
	assert.True(t, os.IsNotExist(err))
}
