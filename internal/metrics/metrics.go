// Package metrics declares the Prometheus collectors of the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Upstream request outcomes.
const (
	OutcomeOK       = "ok"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

// Reading outcomes of a single station during aggregation.
const (
	ReadingIncluded = "included"
	ReadingStale    = "stale"
	ReadingMissing  = "missing"
)

// UpstreamRequests counts openSenseMap requests by endpoint and outcome.
var UpstreamRequests = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "hivebox_opensensemap_requests_total",
		Help: "The total number of requests sent to the openSenseMap API",
	},
	[]string{"endpoint", "outcome"},
)

// UpstreamDuration observes openSenseMap request latency.
var UpstreamDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "hivebox_opensensemap_request_duration_seconds",
		Help:    "Latency of requests sent to the openSenseMap API",
		Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
	},
	[]string{"endpoint"},
)

// StationReadings counts what each station contributed to an average.
var StationReadings = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "hivebox_station_readings_total",
		Help: "Temperature readings per station by outcome",
	},
	[]string{"outcome"},
)

// ReadingAge observes the age of temperature readings at aggregation time.
var ReadingAge = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Name: "hivebox_reading_age_seconds",
		Help: "Age of temperature readings when aggregated",
		// everything above 3600 is discarded as stale
		Buckets: []float64{60, 300, 600, 1800, 3600, 7200, 86400},
	},
)

// AverageTemperature holds the last successfully computed average.
var AverageTemperature = promauto.NewGauge(
	prometheus.GaugeOpts{
		Name: "hivebox_average_temperature_celsius",
		Help: "Last computed average temperature",
	},
)

// HTTPRequests counts served requests by route and status code.
var HTTPRequests = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "hivebox_http_requests_total",
		Help: "The total number of served HTTP requests",
	},
	[]string{"route", "code"},
)
