// Package panels builds the Grafana panels of the lifeinvader-ads dashboard.
// Every query is scoped to the service's Prometheus job.
package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/cog"
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"
	"github.com/grafana/grafana-foundation-sdk/go/prometheus"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// Job is the Prometheus job label of the scraped service.
const Job = "lifeinvader-ads"

// Grid sizes on Grafana's 24-column layout.
const (
	quarter = 6
	half    = 12
	full    = 24

	short = 4
	tall  = 8
)

// JobSelector returns the label matcher for the service job, without braces.
func JobSelector() string {
	return `job="` + Job + `"`
}

// scoped wraps metric in a selector for the service job.
func scoped(metric string) string {
	return metric + `{` + JobSelector() + `}`
}

// step is one threshold boundary. The first step of a ladder has no lower
// bound.
type step struct {
	from  float64
	color string
}

// ladder builds absolute thresholds starting at base and switching color at
// each step.
func ladder(base string, steps ...step) cog.Builder[dashboard.ThresholdsConfig] {
	th := []dashboard.Threshold{{Color: base}}
	for _, s := range steps {
		th = append(th, dashboard.Threshold{Value: cog.ToPtr(s.from), Color: s.color})
	}
	return dashboard.NewThresholdsConfigBuilder().
		Mode(dashboard.ThresholdsModeAbsolute).
		Steps(th)
}

// warnAt is green, then yellow from warn and red from crit.
func warnAt(warn, crit float64) cog.Builder[dashboard.ThresholdsConfig] {
	return ladder("green", step{warn, "yellow"}, step{crit, "red"})
}

// okFrom is red below min and green from it.
func okFrom(minimum float64) cog.Builder[dashboard.ThresholdsConfig] {
	return ladder("red", step{minimum, "green"})
}

func target(expr, legend, ref string) *prometheus.DataqueryBuilder {
	return prometheus.NewDataqueryBuilder().
		Expr(expr).
		LegendFormat(legend).
		RefId(ref)
}

func datasource() dashboard.DataSourceRef {
	return dashboard.DataSourceRef{
		Type: cog.ToPtr("prometheus"),
		Uid:  cog.ToPtr("${datasource}"),
	}
}

// series starts a line graph with the dashboard's shared look. Callers add
// targets and override unit or thresholds as needed.
func series(title, description string, width uint32) *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title(title).
		Description(description).
		Datasource(datasource()).
		Height(tall).
		Span(width).
		FillOpacity(10).
		LineWidth(2).
		DrawStyle(common.GraphDrawStyleLine).
		Legend(common.NewVizLegendOptionsBuilder().
			DisplayMode(common.LegendDisplayModeTable).
			Placement(common.LegendPlacementBottom).
			Calcs([]string{"mean", "max"})).
		Tooltip(common.NewVizTooltipOptionsBuilder().
			Mode(common.TooltipDisplayModeMulti).
			Sort(common.SortOrderDescending)).
		Thresholds(ladder("green")).
		ColorScheme(dashboard.NewFieldColorBuilder().Mode(dashboard.FieldColorModeIdPaletteClassic))
}

// single starts a stat panel colored by its thresholds.
func single(title, description string, width, height uint32) *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title(title).
		Description(description).
		Datasource(datasource()).
		Height(height).
		Span(width).
		ColorScheme(dashboard.NewFieldColorBuilder().Mode(dashboard.FieldColorModeIdThresholds))
}
