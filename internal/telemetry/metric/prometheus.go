package metric

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "hhbook"

// Operation status label values.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Prune result label values.
const (
	PruneDeleted = "deleted"
	PruneSkipped = "skipped"
)

// Registry holds all application metrics on a private Prometheus registry.
//
// A nil *Registry is valid and records nothing.
type Registry struct {
	reg *prometheus.Registry

	Operations        *prometheus.CounterVec
	OperationDuration *prometheus.HistogramVec
	PruneFiles        *prometheus.CounterVec
}

// NewRegistry creates the application metrics together with the Go
// runtime and process collectors.
func NewRegistry() *Registry {
	r := &Registry{
		reg: prometheus.NewRegistry(),
		Operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "backup_operations_total",
			Help:      "Total document and backup operations by operation and status",
		}, []string{"operation", "status"}),
		OperationDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "backup_operation_duration_seconds",
			Help:      "Duration of document and backup operations",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}, []string{"operation"}),
		PruneFiles: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "prune_files_total",
			Help:      "Snapshot files handled by pruning, by result",
		}, []string{"result"}),
	}

	r.reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.Operations,
		r.OperationDuration,
		r.PruneFiles,
	)
	return r
}

// ObserveOperation records one completed operation.
func (r *Registry) ObserveOperation(operation string, err error, elapsed time.Duration) {
	if r == nil {
		return
	}
	status := StatusOK
	if err != nil {
		status = StatusError
	}
	r.Operations.WithLabelValues(operation, status).Inc()
	r.OperationDuration.WithLabelValues(operation).Observe(elapsed.Seconds())
}

// AddPruned records the outcome of a prune.
func (r *Registry) AddPruned(deleted, skipped int) {
	if r == nil {
		return
	}
	r.PruneFiles.WithLabelValues(PruneDeleted).Add(float64(deleted))
	r.PruneFiles.WithLabelValues(PruneSkipped).Add(float64(skipped))
}

// MustRegister adds extra collectors, such as a snapshot Collector.
func (r *Registry) MustRegister(cs ...prometheus.Collector) {
	r.reg.MustRegister(cs...)
}

// Gatherer exposes the underlying registry for tests and exporters.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.reg
}

// Handler returns an HTTP handler for the /metrics endpoint.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}
