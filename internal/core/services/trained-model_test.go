package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ml-platform/internal/adapters/secondary/memory"
	"ml-platform/internal/core/domain"
	"ml-platform/internal/core/ports/output"
	"ml-platform/internal/testutil"
)

func newCompletedExperiment(t *testing.T, store *memory.Store) *domain.Experiment {
	t.Helper()
	p := newTestProject(t, store)
	svc := NewExperimentService(store, NewMetricSampler(5), nil)
	e, err := svc.Create(context.Background(), "xgb", "XGBoost", "", p.ID, "")
	require.NoError(t, err)
	e, _, err = svc.Start(context.Background(), e.ID)
	require.NoError(t, err)
	return e
}

func TestModelService_Register(t *testing.T) {
	store := memory.NewStore(nil)
	svc := NewModelService(store, nil, nil)
	e := newCompletedExperiment(t, store)

	m, err := svc.Register(context.Background(), e.ID, "Churn Predictor", "v1")
	require.NoError(t, err)

	assert.Equal(t, domain.ModelStatusDevelopment, m.Status)
	assert.Equal(t, domain.DefaultModelVersion, m.Version)
	assert.Equal(t, e.Metrics, m.Metrics)
	assert.Nil(t, m.DeploymentStatus)
	assert.Len(t, svc.List(context.Background()), 1)
}

func TestModelService_Register_Validation(t *testing.T) {
	store := memory.NewStore(nil)
	svc := NewModelService(store, nil, nil)
	p := newTestProject(t, store)
	e, err := NewExperimentService(store, nil, nil).Create(context.Background(), "e", "", "", p.ID, "")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), e.ID, "", "")
	assert.ErrorIs(t, err, domain.ErrInvalidModelName)

	_, err = svc.Register(context.Background(), e.ID, "m", "")
	assert.ErrorIs(t, err, domain.ErrExperimentNotCompleted)

	_, err = svc.Register(context.Background(), uuid.New(), "m", "")
	assert.ErrorIs(t, err, domain.ErrExperimentNotFound)
}

func TestModelService_Deploy_Local(t *testing.T) {
	store := memory.NewStore(nil)
	recorder := new(testutil.MockMetricsRecorder)
	recorder.On("ModelDeployed", true).Return()
	svc := NewModelService(store, nil, recorder)
	e := newCompletedExperiment(t, store)
	m, err := svc.Register(context.Background(), e.ID, "m", "")
	require.NoError(t, err)

	m, err = svc.Deploy(context.Background(), m.ID)
	require.NoError(t, err)
	assert.True(t, m.Deployed())

	status, err := svc.ServingStatus(context.Background(), m.ID)
	require.NoError(t, err)
	assert.True(t, status.Ready)

	m, err = svc.Undeploy(context.Background(), m.ID)
	require.NoError(t, err)
	assert.False(t, m.Deployed())
	require.NotNil(t, m.DeploymentStatus)
	assert.Equal(t, domain.DeploymentStatusUndeployed, *m.DeploymentStatus)
	recorder.AssertExpectations(t)
}

func TestModelService_Deploy_KServe(t *testing.T) {
	store := memory.NewStore(nil)
	kserve := new(testutil.MockKServeClient)
	svc := NewModelService(store, kserve, nil)
	e := newCompletedExperiment(t, store)
	m, err := svc.Register(context.Background(), e.ID, "Churn Predictor", "")
	require.NoError(t, err)

	kserve.On("Deploy", mock.Anything, mock.AnythingOfType("*domain.TrainedModel"), mock.AnythingOfType("*domain.Experiment")).
		Return(&ports.KServeDeployment{Name: "churn-predictor", ExternalID: "uid-1"}, nil)
	kserve.On("GetStatus", mock.Anything, mock.AnythingOfType("*domain.TrainedModel")).
		Return(&ports.KServeStatus{URL: "http://churn-predictor.model-serving", Ready: true}, nil)

	m, err = svc.Deploy(context.Background(), m.ID)
	require.NoError(t, err)
	assert.True(t, m.Deployed())

	status, err := svc.ServingStatus(context.Background(), m.ID)
	require.NoError(t, err)
	assert.Equal(t, "http://churn-predictor.model-serving", status.URL)
	kserve.AssertExpectations(t)
}

func TestModelService_Deploy_KServeFailure(t *testing.T) {
	store := memory.NewStore(nil)
	kserve := new(testutil.MockKServeClient)
	recorder := new(testutil.MockMetricsRecorder)
	recorder.On("ModelDeployed", false).Return()
	svc := NewModelService(store, kserve, recorder)
	e := newCompletedExperiment(t, store)
	m, err := svc.Register(context.Background(), e.ID, "m", "")
	require.NoError(t, err)

	kserve.On("Deploy", mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("forbidden"))

	_, err = svc.Deploy(context.Background(), m.ID)
	assert.ErrorIs(t, err, domain.ErrDeploymentFailed)

	stored, err := svc.Get(context.Background(), m.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.DeploymentStatus)
	recorder.AssertExpectations(t)
}

func TestModelService_Deploy_NotFound(t *testing.T) {
	svc := NewModelService(memory.NewStore(nil), nil, nil)

	_, err := svc.Deploy(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrModelNotFound)
}
