package domain

import (
	"time"

	"github.com/google/uuid"
)

type ExperimentStatus string

const (
	ExperimentStatusCreated   ExperimentStatus = "created"
	ExperimentStatusRunning   ExperimentStatus = "running"
	ExperimentStatusCompleted ExperimentStatus = "completed"
	ExperimentStatusFailed    ExperimentStatus = "failed"
)

func (s ExperimentStatus) Valid() bool {
	switch s {
	case ExperimentStatusCreated, ExperimentStatusRunning, ExperimentStatusCompleted, ExperimentStatusFailed:
		return true
	}
	return false
}

// Terminal reports whether no further transition is defined out of s.
func (s ExperimentStatus) Terminal() bool {
	return s == ExperimentStatusCompleted || s == ExperimentStatusFailed
}

// Metric names produced by a simulated training run.
const (
	MetricAccuracy     = "accuracy"
	MetricPrecision    = "precision"
	MetricRecall       = "recall"
	MetricF1Score      = "f1_score"
	MetricLoss         = "loss"
	MetricTrainingTime = "training_time"
)

type Metrics map[string]float64

func (m Metrics) Clone() Metrics {
	out := make(Metrics, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

type Experiment struct {
	ID              uuid.UUID        `json:"id"`
	Name            string           `json:"name"`
	Algorithm       string           `json:"algorithm"`
	Dataset         string           `json:"dataset"`
	ProjectID       uuid.UUID        `json:"project_id"`
	Status          ExperimentStatus `json:"status"`
	CreatedAt       time.Time        `json:"created_at"`
	StartedAt       *time.Time       `json:"started_at"`
	CompletedAt     *time.Time       `json:"completed_at"`
	Metrics         Metrics          `json:"metrics"`
	Hyperparameters map[string]any   `json:"hyperparameters"`
}

// ApplyStatus moves the experiment to status. StartedAt and CompletedAt
// are stamped only the first time their status is reached. Metrics are
// merged into the existing map when completing.
func (e *Experiment) ApplyStatus(status ExperimentStatus, metrics Metrics, now time.Time) {
	e.Status = status
	switch status {
	case ExperimentStatusRunning:
		if e.StartedAt == nil {
			t := now
			e.StartedAt = &t
		}
	case ExperimentStatusCompleted:
		if e.CompletedAt == nil {
			t := now
			e.CompletedAt = &t
		}
		if len(metrics) > 0 {
			if e.Metrics == nil {
				e.Metrics = make(Metrics, len(metrics))
			}
			for k, v := range metrics {
				e.Metrics[k] = v
			}
		}
	}
}
