// Package metrics declares the Prometheus collectors exported by the service.
// Collectors register with the default registerer, which the API server
// exposes on the configured metrics path.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "enricher"

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

//nolint: gochecknoglobals
var (
	// DNSQueries counts DoH queries by record type and outcome (ok, error).
	DNSQueries = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "dns_queries_total",
		Help:      "DNS-over-HTTPS queries by record type and outcome.",
	}, []string{"type", "outcome"})

	// DNSQueryDuration observes the latency of DoH queries by record type.
	DNSQueryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "dns_query_duration_seconds",
		Help:      "Latency of DNS-over-HTTPS queries.",
		Buckets:   DefaultBuckets,
	}, []string{"type"})

	// ResolveFailures counts domains whose enrichment failed and was defaulted.
	ResolveFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "resolve_failures_total",
		Help:      "Domains stored with default records because a lookup failed.",
	})

	// DomainsTruncated counts unique domains dropped by the per-run cap.
	DomainsTruncated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "domains_truncated_total",
		Help:      "Unique domains discarded because the per-run cap was reached.",
	})

	// RowsRejected counts records the store writer could not persist.
	RowsRejected = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rows_rejected_total",
		Help:      "Enriched records rejected by the store.",
	})

	// DomainsPersisted counts records written by the store writer.
	DomainsPersisted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "domains_persisted_total",
		Help:      "Enriched records upserted into the store.",
	})

	// Runs counts finished pipeline runs by final state and failed stage.
	Runs = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "runs_total",
		Help:      "Finished pipeline runs by state.",
	}, []string{"state", "stage"})

	// StageDuration observes how long each pipeline stage takes.
	StageDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "stage_duration_seconds",
		Help:      "Duration of pipeline stages.",
		Buckets:   []float64{.01, .05, .1, .5, 1, 5, 10, 30, 60, 120, 300},
	}, []string{"stage"})
)
