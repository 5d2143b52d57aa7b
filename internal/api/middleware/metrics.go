// Package middleware provides the Echo middleware for the lifeinvader-ads
// server: request logging, Prometheus metrics and panic recovery.
package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/donaldgifford/lifeinvader-ads/internal/metrics"
)

// healthGauges maps probe paths to their up/down gauge.
var healthGauges = map[string]prometheus.Gauge{
	"/healthz": metrics.HealthzUp,
	"/readyz":  metrics.ReadyzUp,
}

// isProbePath reports whether path is a probe or scrape endpoint, which is
// kept out of request histograms.
func isProbePath(path string) bool {
	_, health := healthGauges[path]
	return health || path == "/metrics"
}

// Metrics returns Echo middleware that records request duration and status,
// labelled by route template. Probe paths only update their up/down gauge and
// /metrics is not recorded.
func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Path()
			if path == "" {
				path = c.Request().URL.Path
			}

			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}
			status := c.Response().Status

			if isProbePath(path) {
				if g, ok := healthGauges[path]; ok {
					g.Set(boolGauge(status >= http.StatusOK && status < http.StatusMultipleChoices))
				}
				return nil
			}

			method := c.Request().Method
			code := strconv.Itoa(status)
			metrics.HTTPRequestDuration.
				WithLabelValues(method, path, code).
				Observe(time.Since(start).Seconds())
			metrics.HTTPRequestsTotal.
				WithLabelValues(method, path, code).
				Inc()

			return nil
		}
	}
}

func boolGauge(ok bool) float64 {
	if ok {
		return 1
	}
	return 0
}
