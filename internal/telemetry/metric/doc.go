// Package metric provides Prometheus metrics for hhbook.
//
//   - prometheus.go: registry, operation counters and the /metrics handler
//   - collector.go: scrape-time snapshot counts
//
// Metrics are exposed at /metrics in Prometheus format by hhbook-server.
package metric
