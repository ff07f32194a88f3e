// Package metrics defines the custom Prometheus metrics for the IT asset
// API. It is the single source of truth for metric names, labels, and help
// strings; request-level metrics come from the echoprometheus middleware.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "itam"

// LoginsTotal counts login attempts by outcome.
// Label:
//   - result: "success", "failure", or "throttled"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// AssetWritesTotal counts successful mutations on the asset graph.
// Labels:
//   - kind: "employee", "hardware", "license", "web_access"
//   - op:   "create", "update", "delete"
var AssetWritesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "asset_writes_total",
		Help:      "Total number of successful asset mutations, by kind and operation.",
	},
	[]string{"kind", "op"},
)

// AssignmentsClearedTotal counts asset references cleared by employee
// deletion cascades.
// Label:
//   - kind: the asset kind whose reference was cleared
var AssignmentsClearedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "assignments_cleared_total",
		Help:      "Total number of asset assignments cleared by employee deletions.",
	},
	[]string{"kind"},
)

// ExportDuration measures how long a full spreadsheet export takes.
var ExportDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "export_duration_seconds",
		Help:      "Duration of full inventory exports, from query to serialized workbook.",
		Buckets:   prometheus.DefBuckets,
	},
)
