package testutil

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"ml-platform/internal/core/domain"
	"ml-platform/internal/core/ports/output"
)

// MockKServeClient is a mock of KServeClient.
type MockKServeClient struct {
	mock.Mock
}

func (m *MockKServeClient) Deploy(ctx context.Context, model *domain.TrainedModel, experiment *domain.Experiment) (*ports.KServeDeployment, error) {
	args := m.Called(ctx, model, experiment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ports.KServeDeployment), args.Error(1)
}

func (m *MockKServeClient) Undeploy(ctx context.Context, model *domain.TrainedModel) error {
	args := m.Called(ctx, model)
	return args.Error(0)
}

func (m *MockKServeClient) GetStatus(ctx context.Context, model *domain.TrainedModel) (*ports.KServeStatus, error) {
	args := m.Called(ctx, model)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ports.KServeStatus), args.Error(1)
}

// MockMetricsRecorder is a mock of MetricsRecorder.
type MockMetricsRecorder struct {
	mock.Mock
}

func (m *MockMetricsRecorder) ExperimentCreated(algorithm string) {
	m.Called(algorithm)
}

func (m *MockMetricsRecorder) ExperimentStarted(algorithm string, duration time.Duration) {
	m.Called(algorithm, duration)
}

func (m *MockMetricsRecorder) SnapshotWritten(sink string, err error) {
	m.Called(sink, err)
}

func (m *MockMetricsRecorder) ModelDeployed(success bool) {
	m.Called(success)
}

var (
	_ ports.KServeClient    = (*MockKServeClient)(nil)
	_ ports.MetricsRecorder = (*MockMetricsRecorder)(nil)
)
