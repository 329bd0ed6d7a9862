package ports

import (
	"context"

	"github.com/google/uuid"

	"ml-platform/internal/core/domain"
)

type NewExperiment struct {
	Name            string
	Algorithm       string
	Dataset         string
	ProjectID       uuid.UUID
	Hyperparameters map[string]any
}

type NewTrainedModel struct {
	Name         string
	Description  string
	ExperimentID uuid.UUID
}

// PlatformStore is the single source of truth for users, projects,
// experiments and trained models. Lists are returned in insertion order.
// Every mutation is followed by a best-effort snapshot write.
type PlatformStore interface {
	DemoUser() *domain.User

	ListProjects(ctx context.Context) []*domain.Project
	ListExperiments(ctx context.Context) []*domain.Experiment
	ListModels(ctx context.Context) []*domain.TrainedModel

	GetProject(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	GetExperiment(ctx context.Context, id uuid.UUID) (*domain.Experiment, error)
	GetModel(ctx context.Context, id uuid.UUID) (*domain.TrainedModel, error)

	CreateProject(ctx context.Context, name, description string, owner *domain.User, tags []string) (*domain.Project, error)
	CreateExperiment(ctx context.Context, in NewExperiment) (*domain.Experiment, error)
	SetExperimentStatus(ctx context.Context, id uuid.UUID, status domain.ExperimentStatus, metrics domain.Metrics) (*domain.Experiment, error)

	CreateModel(ctx context.Context, in NewTrainedModel) (*domain.TrainedModel, error)
	SetModelDeploymentStatus(ctx context.Context, id uuid.UUID, status domain.DeploymentStatus) (*domain.TrainedModel, error)

	Snapshot(ctx context.Context) *domain.Snapshot
}
