package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder holds pipeline progress counters on a private registry so a
// one-shot run can expose or snapshot them without touching process-global
// state.
type Recorder struct {
	registry *prometheus.Registry

	RowsExtracted  prometheus.Counter
	RedactRequests prometheus.Counter
	ChunksLoaded   prometheus.Counter
	RowsLoaded     prometheus.Counter
	RunFailures    *prometheus.CounterVec
}

// New creates a new recorder with all pipeline counters registered.
func New() *Recorder {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Recorder{
		registry: registry,
		RowsExtracted: factory.NewCounter(prometheus.CounterOpts{
			Name: "tablewash_rows_extracted_total",
			Help: "The total number of rows read from the staging table",
		}),
		RedactRequests: factory.NewCounter(prometheus.CounterOpts{
			Name: "tablewash_redact_requests_total",
			Help: "The total number of de-identification requests sent",
		}),
		ChunksLoaded: factory.NewCounter(prometheus.CounterOpts{
			Name: "tablewash_chunks_loaded_total",
			Help: "The total number of chunk load jobs completed",
		}),
		RowsLoaded: factory.NewCounter(prometheus.CounterOpts{
			Name: "tablewash_rows_loaded_total",
			Help: "The total number of redacted rows written to the destination table",
		}),
		RunFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "tablewash_run_failures_total",
			Help: "The total number of failed pipeline runs",
		}, []string{"step"}),
	}
}

// Registry returns the underlying registry for gathering or serving.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// IncRunFailure increments the failure counter for the given pipeline step.
func (r *Recorder) IncRunFailure(step string) {
	r.RunFailures.WithLabelValues(step).Inc()
}
