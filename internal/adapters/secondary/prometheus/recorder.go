package prometheus

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	ports "ml-platform/internal/core/ports/output"
)

const namespace = "mlplatform"

// Recorder exports platform events as Prometheus metrics on its own
// registry.
type Recorder struct {
	registry *prometheus.Registry

	experimentsCreated *prometheus.CounterVec
	experimentsStarted *prometheus.CounterVec
	trainingDuration   *prometheus.HistogramVec
	snapshotWrites     *prometheus.CounterVec
	modelDeployments   *prometheus.CounterVec
}

// NewRecorder creates a recorder with process and Go runtime collectors
// registered alongside the platform metrics.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	r := &Recorder{
		registry: reg,
		experimentsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "experiments_created_total",
			Help:      "Experiments created, by algorithm.",
		}, []string{"algorithm"}),
		experimentsStarted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "experiments_started_total",
			Help:      "Simulated training runs started, by algorithm.",
		}, []string{"algorithm"}),
		trainingDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "simulated_training_seconds",
			Help:      "Wall time of simulated training runs.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}, []string{"algorithm"}),
		snapshotWrites: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "snapshot_writes_total",
			Help:      "Snapshot writes, by sink and result.",
		}, []string{"sink", "result"}),
		modelDeployments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "model_deployments_total",
			Help:      "Trained model deployments, by result.",
		}, []string{"result"}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.experimentsCreated,
		r.experimentsStarted,
		r.trainingDuration,
		r.snapshotWrites,
		r.modelDeployments,
	)
	return r
}

func (r *Recorder) ExperimentCreated(algorithm string) {
	r.experimentsCreated.WithLabelValues(algorithm).Inc()
}

func (r *Recorder) ExperimentStarted(algorithm string, duration time.Duration) {
	r.experimentsStarted.WithLabelValues(algorithm).Inc()
	r.trainingDuration.WithLabelValues(algorithm).Observe(duration.Seconds())
}

func (r *Recorder) SnapshotWritten(sink string, err error) {
	r.snapshotWrites.WithLabelValues(sink, result(err == nil)).Inc()
}

func (r *Recorder) ModelDeployed(success bool) {
	r.modelDeployments.WithLabelValues(result(success)).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

func result(ok bool) string {
	if ok {
		return "success"
	}
	return "error"
}

var _ ports.MetricsRecorder = (*Recorder)(nil)
