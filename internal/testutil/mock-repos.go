package testutil

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"ml-platform/internal/core/domain"
	"ml-platform/internal/core/ports/output"
)

// MockPlatformStore is a mock of PlatformStore.
type MockPlatformStore struct {
	mock.Mock
}

func (m *MockPlatformStore) DemoUser() *domain.User {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*domain.User)
}

func (m *MockPlatformStore) ListProjects(ctx context.Context) []*domain.Project {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]*domain.Project)
}

func (m *MockPlatformStore) ListExperiments(ctx context.Context) []*domain.Experiment {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]*domain.Experiment)
}

func (m *MockPlatformStore) ListModels(ctx context.Context) []*domain.TrainedModel {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]*domain.TrainedModel)
}

func (m *MockPlatformStore) GetProject(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *MockPlatformStore) GetExperiment(ctx context.Context, id uuid.UUID) (*domain.Experiment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Experiment), args.Error(1)
}

func (m *MockPlatformStore) GetModel(ctx context.Context, id uuid.UUID) (*domain.TrainedModel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TrainedModel), args.Error(1)
}

func (m *MockPlatformStore) CreateProject(ctx context.Context, name, description string, owner *domain.User, tags []string) (*domain.Project, error) {
	args := m.Called(ctx, name, description, owner, tags)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *MockPlatformStore) CreateExperiment(ctx context.Context, in ports.NewExperiment) (*domain.Experiment, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Experiment), args.Error(1)
}

func (m *MockPlatformStore) SetExperimentStatus(ctx context.Context, id uuid.UUID, status domain.ExperimentStatus, metrics domain.Metrics) (*domain.Experiment, error) {
	args := m.Called(ctx, id, status, metrics)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Experiment), args.Error(1)
}

func (m *MockPlatformStore) CreateModel(ctx context.Context, in ports.NewTrainedModel) (*domain.TrainedModel, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TrainedModel), args.Error(1)
}

func (m *MockPlatformStore) SetModelDeploymentStatus(ctx context.Context, id uuid.UUID, status domain.DeploymentStatus) (*domain.TrainedModel, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TrainedModel), args.Error(1)
}

func (m *MockPlatformStore) Snapshot(ctx context.Context) *domain.Snapshot {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*domain.Snapshot)
}

// MockSnapshotWriter is a mock of SnapshotWriter.
type MockSnapshotWriter struct {
	mock.Mock
}

func (m *MockSnapshotWriter) Name() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockSnapshotWriter) Write(ctx context.Context, snap *domain.Snapshot) error {
	args := m.Called(ctx, snap)
	return args.Error(0)
}

var (
	_ ports.PlatformStore  = (*MockPlatformStore)(nil)
	_ ports.SnapshotWriter = (*MockSnapshotWriter)(nil)
)
