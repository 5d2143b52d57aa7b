// Package validate checks generated dashboards and rules for PromQL syntax
// errors and references to metrics the service does not export.
package validate

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/prometheus/prometheus/promql/parser"

	"github.com/donaldgifford/lifeinvader-ads/tools/dashgen/rules"
)

// Result collects validation findings. Errors fail generation; warnings are
// reported only.
type Result struct {
	Errors   []string
	Warnings []string
}

// Ok reports whether no errors were found.
func (r Result) Ok() bool {
	return len(r.Errors) == 0
}

func (r *Result) merge(o Result) {
	r.Errors = append(r.Errors, o.Errors...)
	r.Warnings = append(r.Warnings, o.Warnings...)
}

// histogramSuffixes are series derived from a histogram or summary name.
var histogramSuffixes = []string{"_bucket", "_count", "_sum"}

// Expr parses expr and checks every selected metric against known.
func Expr(expr string, known map[string]bool) Result {
	var res Result

	parsed, err := parser.ParseExpr(expr)
	if err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("parsing %q: %v", expr, err))
		return res
	}

	parser.Inspect(parsed, func(node parser.Node, _ []parser.Node) error {
		vs, ok := node.(*parser.VectorSelector)
		if !ok || vs.Name == "" {
			return nil
		}
		if !isKnown(vs.Name, known) {
			res.Errors = append(res.Errors, fmt.Sprintf("unknown metric %q in %q", vs.Name, expr))
		}
		return nil
	})

	return res
}

func isKnown(name string, known map[string]bool) bool {
	if known[name] {
		return true
	}
	for _, suffix := range histogramSuffixes {
		if base, ok := strings.CutSuffix(name, suffix); ok && known[base] {
			return true
		}
	}
	return false
}

// Dashboard validates every query expression in a built dashboard. Panels
// without queries and duplicate panel titles are reported as warnings.
func Dashboard(dash any, known map[string]bool) Result {
	var res Result

	data, err := json.Marshal(dash)
	if err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("encoding dashboard: %v", err))
		return res
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("decoding dashboard: %v", err))
		return res
	}

	seen := make(map[string]bool)
	for _, p := range panelsOf(doc) {
		res.merge(panel(p, known, seen))
	}
	return res
}

func panel(p map[string]any, known map[string]bool, seen map[string]bool) Result {
	var res Result

	title, _ := p["title"].(string)
	if p["type"] == "row" {
		for _, inner := range panelsOf(p) {
			res.merge(panel(inner, known, seen))
		}
		return res
	}

	if seen[title] {
		res.Warnings = append(res.Warnings, fmt.Sprintf("duplicate panel title %q", title))
	}
	seen[title] = true

	targets, _ := p["targets"].([]any)
	if len(targets) == 0 {
		res.Warnings = append(res.Warnings, fmt.Sprintf("panel %q has no queries", title))
	}
	for _, t := range targets {
		target, _ := t.(map[string]any)
		expr, _ := target["expr"].(string)
		if expr == "" {
			res.Warnings = append(res.Warnings, fmt.Sprintf("panel %q has an empty query", title))
			continue
		}
		res.merge(Expr(expr, known))
	}
	return res
}

func panelsOf(obj map[string]any) []map[string]any {
	raw, _ := obj["panels"].([]any)
	out := make([]map[string]any, 0, len(raw))
	for _, r := range raw {
		if p, ok := r.(map[string]any); ok {
			out = append(out, p)
		}
	}
	return out
}

// Rules validates every rule expression and requires alerts to carry a
// severity and a summary.
func Rules(cr rules.PrometheusRule, known map[string]bool) Result {
	var res Result

	for _, g := range cr.Spec.Groups {
		for _, r := range g.Rules {
			res.merge(Expr(r.Expr, known))

			if r.Alert == "" {
				continue
			}
			if r.Labels["severity"] == "" {
				res.Errors = append(res.Errors, fmt.Sprintf("alert %s has no severity", r.Alert))
			}
			if r.Annotations["summary"] == "" {
				res.Errors = append(res.Errors, fmt.Sprintf("alert %s has no summary", r.Alert))
			}
		}
	}
	return res
}
