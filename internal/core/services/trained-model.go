package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"ml-platform/internal/core/domain"
	"ml-platform/internal/core/ports/output"
)

type ModelService struct {
	store    ports.PlatformStore
	kserve   ports.KServeClient
	recorder ports.MetricsRecorder
}

// NewModelService builds the model registry. kserve may be nil, in which
// case deployments only flip the local status.
func NewModelService(store ports.PlatformStore, kserve ports.KServeClient, recorder ports.MetricsRecorder) *ModelService {
	if recorder == nil {
		recorder = ports.NoopRecorder{}
	}
	return &ModelService{store: store, kserve: kserve, recorder: recorder}
}

// Register creates a TrainedModel from a completed experiment.
func (s *ModelService) Register(ctx context.Context, experimentID uuid.UUID, name, description string) (*domain.TrainedModel, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrInvalidModelName
	}
	return s.store.CreateModel(ctx, ports.NewTrainedModel{
		Name:         name,
		Description:  strings.TrimSpace(description),
		ExperimentID: experimentID,
	})
}

func (s *ModelService) Get(ctx context.Context, id uuid.UUID) (*domain.TrainedModel, error) {
	return s.store.GetModel(ctx, id)
}

func (s *ModelService) List(ctx context.Context) []*domain.TrainedModel {
	return s.store.ListModels(ctx)
}

func (s *ModelService) Deploy(ctx context.Context, id uuid.UUID) (*domain.TrainedModel, error) {
	model, err := s.store.GetModel(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.kserve != nil {
		experiment, err := s.store.GetExperiment(ctx, model.ExperimentID)
		if err != nil {
			return nil, fmt.Errorf("get experiment: %w", err)
		}

		deployment, err := s.kserve.Deploy(ctx, model, experiment)
		if err != nil {
			s.recorder.ModelDeployed(false)
			log.WithError(err).WithField("model_id", model.ID).Error("kserve deploy failed")
			return nil, fmt.Errorf("%w: %v", domain.ErrDeploymentFailed, err)
		}
		log.WithFields(log.Fields{
			"model_id":    model.ID,
			"isvc":        deployment.Name,
			"external_id": deployment.ExternalID,
		}).Info("inference service created")
	}

	s.recorder.ModelDeployed(true)
	return s.store.SetModelDeploymentStatus(ctx, id, domain.DeploymentStatusDeployed)
}

func (s *ModelService) Undeploy(ctx context.Context, id uuid.UUID) (*domain.TrainedModel, error) {
	model, err := s.store.GetModel(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.kserve != nil {
		if err := s.kserve.Undeploy(ctx, model); err != nil {
			log.WithError(err).WithField("model_id", model.ID).Error("kserve undeploy failed")
			return nil, fmt.Errorf("%w: %v", domain.ErrDeploymentFailed, err)
		}
	}

	return s.store.SetModelDeploymentStatus(ctx, id, domain.DeploymentStatusUndeployed)
}

// ServingStatus reports the live InferenceService state. Without a
// KServe client it is derived from the stored deployment status.
func (s *ModelService) ServingStatus(ctx context.Context, id uuid.UUID) (*ports.KServeStatus, error) {
	model, err := s.store.GetModel(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.kserve == nil {
		return &ports.KServeStatus{Ready: model.Deployed()}, nil
	}

	status, err := s.kserve.GetStatus(ctx, model)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDeploymentFailed, err)
	}
	return status, nil
}
