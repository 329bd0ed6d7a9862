package services

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"ml-platform/internal/core/domain"
	"ml-platform/internal/core/ports/output"
)

type ExperimentService struct {
	store    ports.PlatformStore
	sampler  *MetricSampler
	recorder ports.MetricsRecorder
}

func NewExperimentService(store ports.PlatformStore, sampler *MetricSampler, recorder ports.MetricsRecorder) *ExperimentService {
	if sampler == nil {
		sampler = NewMetricSampler(0)
	}
	if recorder == nil {
		recorder = ports.NoopRecorder{}
	}
	return &ExperimentService{store: store, sampler: sampler, recorder: recorder}
}

// Create registers a new experiment under projectID. rawHyperparameters
// is JSON text; anything that is not a JSON object is replaced with an
// empty map.
func (s *ExperimentService) Create(ctx context.Context, name, algorithm, dataset string, projectID uuid.UUID, rawHyperparameters string) (*domain.Experiment, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrInvalidExperimentName
	}

	e, err := s.store.CreateExperiment(ctx, ports.NewExperiment{
		Name:            name,
		Algorithm:       strings.TrimSpace(algorithm),
		Dataset:         strings.TrimSpace(dataset),
		ProjectID:       projectID,
		Hyperparameters: ParseHyperparameters(rawHyperparameters),
	})
	if err != nil {
		return nil, err
	}

	s.recorder.ExperimentCreated(e.Algorithm)
	return e, nil
}

func (s *ExperimentService) Get(ctx context.Context, id uuid.UUID) (*domain.Experiment, error) {
	return s.store.GetExperiment(ctx, id)
}

func (s *ExperimentService) List(ctx context.Context) []*domain.Experiment {
	return s.store.ListExperiments(ctx)
}

// ListByProject returns the project's experiments in creation order.
func (s *ExperimentService) ListByProject(ctx context.Context, projectID uuid.UUID) []*domain.Experiment {
	var out []*domain.Experiment
	for _, e := range s.store.ListExperiments(ctx) {
		if e.ProjectID == projectID {
			out = append(out, e)
		}
	}
	return out
}

// Start runs a simulated training job to completion. The experiment is
// moved to running, a fresh metrics set is sampled and the experiment is
// completed with it, all before Start returns. Calling Start again
// overwrites the previous metrics.
func (s *ExperimentService) Start(ctx context.Context, id uuid.UUID) (*domain.Experiment, domain.Metrics, error) {
	began := time.Now()

	e, err := s.store.SetExperimentStatus(ctx, id, domain.ExperimentStatusRunning, nil)
	if err != nil {
		return nil, nil, err
	}

	metrics := s.sampler.Sample()

	e, err = s.store.SetExperimentStatus(ctx, id, domain.ExperimentStatusCompleted, metrics)
	if err != nil {
		return nil, nil, err
	}

	s.recorder.ExperimentStarted(e.Algorithm, time.Since(began))
	log.WithFields(log.Fields{
		"experiment_id": e.ID,
		"algorithm":     e.Algorithm,
		"accuracy":      metrics[domain.MetricAccuracy],
	}).Info("simulated training completed")

	return e, metrics, nil
}

// SetStatus applies an explicit status transition.
func (s *ExperimentService) SetStatus(ctx context.Context, id uuid.UUID, status string, metrics domain.Metrics) (*domain.Experiment, error) {
	return s.store.SetExperimentStatus(ctx, id, domain.ExperimentStatus(status), metrics)
}

// ParseHyperparameters decodes a JSON object. Empty, malformed or
// non-object input yields an empty map.
func ParseHyperparameters(raw string) map[string]any {
	hp := map[string]any{}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return hp
	}
	if err := json.Unmarshal([]byte(raw), &hp); err != nil || hp == nil {
		log.WithError(err).Debug("invalid hyperparameters, using empty set")
		return map[string]any{}
	}
	return hp
}
