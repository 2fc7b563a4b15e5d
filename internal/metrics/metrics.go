// Package metrics provides Prometheus metrics for the gameplan manager.
// Scrape these at /metrics for Grafana dashboards and alerting.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP Metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vgc_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "vgc_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// Extraction Metrics
	ExtractionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vgc_extractions_total",
			Help: "Document extractions by kind",
		},
		[]string{"kind"}, // "team", "matchups", "replays", "calcs", "frontmatter"
	)

	ExtractionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "vgc_extraction_duration_seconds",
			Help:    "Time taken to extract structured data from a document",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
	)

	UnresolvedNamesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "vgc_unresolved_names_total",
			Help: "Roster names that failed to resolve against the lookup tables",
		},
	)

	// Gameplan Store Metrics
	GameplansTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "vgc_gameplans_total",
			Help: "Number of gameplans in the database",
		},
	)

	ImportsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vgc_imports_total",
			Help: "Imported gameplans by outcome",
		},
		[]string{"outcome"}, // "imported", "updated", "skipped"
	)

	// Paste Fetch Metrics
	PasteFetchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vgc_paste_fetches_total",
			Help: "Paste roster fetches by result",
		},
		[]string{"result"}, // "hit", "miss", "error"
	)

	PasteFetchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "vgc_paste_fetch_duration_seconds",
			Help:    "Time taken to fetch and parse a paste",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 5, 10},
		},
	)
)
