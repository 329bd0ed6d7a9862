package ports

import "time"

// MetricsRecorder receives operational events from the core. The
// Prometheus adapter exports them on /metrics; NoopRecorder drops them.
type MetricsRecorder interface {
	ExperimentCreated(algorithm string)
	ExperimentStarted(algorithm string, duration time.Duration)
	SnapshotWritten(sink string, err error)
	ModelDeployed(success bool)
}

type NoopRecorder struct{}

func (NoopRecorder) ExperimentCreated(string)                {}
func (NoopRecorder) ExperimentStarted(string, time.Duration) {}
func (NoopRecorder) SnapshotWritten(string, error)           {}
func (NoopRecorder) ModelDeployed(bool)                      {}

var _ MetricsRecorder = NoopRecorder{}
