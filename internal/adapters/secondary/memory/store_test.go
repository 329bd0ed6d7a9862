package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ml-platform/internal/core/domain"
	"ml-platform/internal/core/ports/output"
	"ml-platform/internal/testutil"
)

// stepClock returns a clock that advances one second per call.
func stepClock() func() time.Time {
	t := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(time.Second)
		return t
	}
}

func newTestStore(t *testing.T, opts ...Option) *Store {
	t.Helper()
	opts = append([]Option{WithClock(stepClock())}, opts...)
	return NewStore(nil, opts...)
}

func TestStore_CreateProject_ThenGet(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	created, err := s.CreateProject(ctx, "P", "demo project", s.DemoUser(), []string{"a", "b"})
	require.NoError(t, err)

	got, err := s.GetProject(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "P", got.Name)
	assert.Equal(t, "demo project", got.Description)
	assert.Empty(t, got.Experiments)
	assert.Equal(t, domain.ProjectStatusActive, got.Status)
	assert.Equal(t, []string{"a", "b"}, got.Tags)
	assert.Equal(t, s.DemoUser().ID, got.Owner.ID)
}

func TestStore_CreateProject_DuplicateTagsKept(t *testing.T) {
	s := newTestStore(t)

	p, err := s.CreateProject(context.Background(), "P", "", nil, []string{"x", "x"})
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "x"}, p.Tags)
}

func TestStore_CreateExperiment_MissingProject(t *testing.T) {
	writer := new(testutil.MockSnapshotWriter)
	s := newTestStore(t, WithSnapshotWriters(writer))
	ctx := context.Background()

	_, err := s.CreateExperiment(ctx, ports.NewExperiment{
		Name: "E", Algorithm: "XGBoost", ProjectID: uuid.New(),
	})
	assert.ErrorIs(t, err, domain.ErrProjectNotFound)
	assert.Empty(t, s.ListExperiments(ctx))
	assert.Empty(t, s.ListProjects(ctx))
	writer.AssertNotCalled(t, "Write", mock.Anything, mock.Anything)
}

func TestStore_CreateExperiment_LinksBothDirections(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	p, err := s.CreateProject(ctx, "P", "", nil, nil)
	require.NoError(t, err)
	other, err := s.CreateProject(ctx, "Other", "", nil, nil)
	require.NoError(t, err)

	e, err := s.CreateExperiment(ctx, ports.NewExperiment{
		Name: "E", Algorithm: "XGBoost", Dataset: "d.csv", ProjectID: p.ID,
		Hyperparameters: map[string]any{"max_depth": float64(6)},
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ExperimentStatusCreated, e.Status)
	assert.Nil(t, e.StartedAt)
	assert.Nil(t, e.CompletedAt)
	assert.Equal(t, float64(6), e.Hyperparameters["max_depth"])

	all := s.ListExperiments(ctx)
	require.Len(t, all, 1)
	assert.Equal(t, e.ID, all[0].ID)

	got, err := s.GetProject(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, got.Experiments, 1)
	assert.Equal(t, e.ID, got.Experiments[0].ID)
	assert.Equal(t, []uuid.UUID{e.ID}, got.ExperimentIDs())

	untouched, err := s.GetProject(ctx, other.ID)
	require.NoError(t, err)
	assert.Empty(t, untouched.Experiments)
}

func TestStore_SetExperimentStatus_UnknownID(t *testing.T) {
	writer := new(testutil.MockSnapshotWriter)
	s := newTestStore(t, WithSnapshotWriters(writer))

	_, err := s.SetExperimentStatus(context.Background(), uuid.New(), domain.ExperimentStatusRunning, nil)
	assert.ErrorIs(t, err, domain.ErrExperimentNotFound)
	writer.AssertNotCalled(t, "Write", mock.Anything, mock.Anything)
}

func TestStore_SetExperimentStatus_InvalidStatus(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	p, _ := s.CreateProject(ctx, "P", "", nil, nil)
	e, _ := s.CreateExperiment(ctx, ports.NewExperiment{Name: "E", ProjectID: p.ID})

	_, err := s.SetExperimentStatus(ctx, e.ID, domain.ExperimentStatus("paused"), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidExperimentStatus)

	got, _ := s.GetExperiment(ctx, e.ID)
	assert.Equal(t, domain.ExperimentStatusCreated, got.Status)
}

func TestStore_SetExperimentStatus_TimestampsSetOnce(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	p, _ := s.CreateProject(ctx, "P", "", nil, nil)
	e, _ := s.CreateExperiment(ctx, ports.NewExperiment{Name: "E", ProjectID: p.ID})

	running, err := s.SetExperimentStatus(ctx, e.ID, domain.ExperimentStatusRunning, nil)
	require.NoError(t, err)
	require.NotNil(t, running.StartedAt)
	firstStart := *running.StartedAt

	done, err := s.SetExperimentStatus(ctx, e.ID, domain.ExperimentStatusCompleted, domain.Metrics{"accuracy": 0.9})
	require.NoError(t, err)
	require.NotNil(t, done.CompletedAt)
	firstDone := *done.CompletedAt
	assert.False(t, firstDone.Before(firstStart))

	_, err = s.SetExperimentStatus(ctx, e.ID, domain.ExperimentStatusRunning, nil)
	require.NoError(t, err)
	again, err := s.SetExperimentStatus(ctx, e.ID, domain.ExperimentStatusCompleted, nil)
	require.NoError(t, err)

	assert.Equal(t, firstStart, *again.StartedAt)
	assert.Equal(t, firstDone, *again.CompletedAt)
	assert.Equal(t, domain.Metrics{"accuracy": 0.9}, again.Metrics)
}

func TestStore_SetExperimentStatus_MergesMetrics(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	p, _ := s.CreateProject(ctx, "P", "", nil, nil)
	e, _ := s.CreateExperiment(ctx, ports.NewExperiment{Name: "E", ProjectID: p.ID})

	_, err := s.SetExperimentStatus(ctx, e.ID, domain.ExperimentStatusCompleted, domain.Metrics{"accuracy": 0.8, "loss": 0.4})
	require.NoError(t, err)
	got, err := s.SetExperimentStatus(ctx, e.ID, domain.ExperimentStatusCompleted, domain.Metrics{"accuracy": 0.9})
	require.NoError(t, err)

	assert.Equal(t, domain.Metrics{"accuracy": 0.9, "loss": 0.4}, got.Metrics)
}

func TestStore_SetExperimentStatus_MetricsIgnoredUnlessCompleted(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	p, _ := s.CreateProject(ctx, "P", "", nil, nil)
	e, _ := s.CreateExperiment(ctx, ports.NewExperiment{Name: "E", ProjectID: p.ID})

	got, err := s.SetExperimentStatus(ctx, e.ID, domain.ExperimentStatusRunning, domain.Metrics{"accuracy": 0.9})
	require.NoError(t, err)
	assert.Empty(t, got.Metrics)
}

func TestStore_ReturnsCopies(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	p, _ := s.CreateProject(ctx, "P", "", nil, []string{"a"})

	p.Name = "mutated"
	p.Tags[0] = "mutated"

	got, _ := s.GetProject(ctx, p.ID)
	assert.Equal(t, "P", got.Name)
	assert.Equal(t, []string{"a"}, got.Tags)
}

func TestStore_SnapshotWrittenOnEveryMutation(t *testing.T) {
	writer := new(testutil.MockSnapshotWriter)
	writer.On("Name").Return("mock")
	writer.On("Write", mock.Anything, mock.AnythingOfType("*domain.Snapshot")).Return(nil)

	s := newTestStore(t, WithSnapshotWriters(writer))
	ctx := context.Background()

	p, _ := s.CreateProject(ctx, "P", "desc", nil, nil)
	e, _ := s.CreateExperiment(ctx, ports.NewExperiment{Name: "E", Algorithm: "XGBoost", ProjectID: p.ID})
	_, _ = s.SetExperimentStatus(ctx, e.ID, domain.ExperimentStatusCompleted, domain.Metrics{"accuracy": 0.9})

	writer.AssertNumberOfCalls(t, "Write", 3)

	var last *domain.Snapshot
	for _, call := range writer.Calls {
		if call.Method == "Write" {
			last = call.Arguments.Get(1).(*domain.Snapshot)
		}
	}
	require.NotNil(t, last)
	require.Len(t, last.Projects, 1)
	assert.Equal(t, "P", last.Projects[0].Name)
	assert.Equal(t, []uuid.UUID{e.ID}, last.Projects[0].ExperimentIDs)
	require.Len(t, last.Experiments, 1)
	assert.Equal(t, "XGBoost", last.Experiments[0].Algorithm)
	assert.Equal(t, domain.ExperimentStatusCompleted, last.Experiments[0].Status)
	assert.Equal(t, domain.Metrics{"accuracy": 0.9}, last.Experiments[0].Metrics)
}

func TestStore_SnapshotFailureKeepsMutation(t *testing.T) {
	writer := new(testutil.MockSnapshotWriter)
	writer.On("Name").Return("broken")
	writer.On("Write", mock.Anything, mock.Anything).Return(errors.New("disk full"))

	recorder := new(testutil.MockMetricsRecorder)
	recorder.On("SnapshotWritten", "broken", mock.Anything).Return()

	s := newTestStore(t, WithSnapshotWriters(writer), WithRecorder(recorder))
	ctx := context.Background()

	p, err := s.CreateProject(ctx, "P", "", nil, nil)
	require.NoError(t, err)

	_, err = s.GetProject(ctx, p.ID)
	assert.NoError(t, err)
	recorder.AssertCalled(t, "SnapshotWritten", "broken", mock.MatchedBy(func(err error) bool { return err != nil }))
}

func TestStore_CreateModel(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	p, _ := s.CreateProject(ctx, "P", "", nil, nil)
	e, _ := s.CreateExperiment(ctx, ports.NewExperiment{Name: "E", ProjectID: p.ID})

	_, err := s.CreateModel(ctx, ports.NewTrainedModel{Name: "M", ExperimentID: e.ID})
	assert.ErrorIs(t, err, domain.ErrExperimentNotCompleted)

	_, err = s.CreateModel(ctx, ports.NewTrainedModel{Name: "M", ExperimentID: uuid.New()})
	assert.ErrorIs(t, err, domain.ErrExperimentNotFound)

	_, _ = s.SetExperimentStatus(ctx, e.ID, domain.ExperimentStatusCompleted, domain.Metrics{"accuracy": 0.91})
	m, err := s.CreateModel(ctx, ports.NewTrainedModel{Name: "M", Description: "d", ExperimentID: e.ID})
	require.NoError(t, err)
	assert.Equal(t, domain.ModelStatusDevelopment, m.Status)
	assert.Equal(t, domain.DefaultModelVersion, m.Version)
	assert.Equal(t, domain.Metrics{"accuracy": 0.91}, m.Metrics)
	assert.Nil(t, m.DeploymentStatus)
	assert.Len(t, s.ListModels(ctx), 1)

	deployed, err := s.SetModelDeploymentStatus(ctx, m.ID, domain.DeploymentStatusDeployed)
	require.NoError(t, err)
	assert.True(t, deployed.Deployed())

	_, err = s.SetModelDeploymentStatus(ctx, uuid.New(), domain.DeploymentStatusDeployed)
	assert.ErrorIs(t, err, domain.ErrModelNotFound)
}

func TestNewSeededStore(t *testing.T) {
	s, err := NewSeededStore()
	require.NoError(t, err)
	ctx := context.Background()

	user := s.DemoUser()
	assert.Equal(t, "Alexey Petrov", user.Name)
	assert.Equal(t, domain.UserRoleDataScientist, user.Role)

	projects := s.ListProjects(ctx)
	experiments := s.ListExperiments(ctx)
	models := s.ListModels(ctx)
	require.Len(t, projects, 3)
	require.Len(t, experiments, 3)
	require.Len(t, models, 1)

	assert.Equal(t, domain.ExperimentStatusCompleted, experiments[0].Status)
	assert.NotNil(t, experiments[0].CompletedAt)
	assert.Equal(t, domain.ExperimentStatusRunning, experiments[1].Status)
	assert.NotNil(t, experiments[1].StartedAt)
	assert.Nil(t, experiments[1].CompletedAt)
	assert.Equal(t, domain.ExperimentStatusCreated, experiments[2].Status)
	assert.Empty(t, experiments[2].Metrics)

	for i, p := range projects {
		require.Len(t, p.Experiments, 1)
		assert.Equal(t, experiments[i].ID, p.Experiments[0].ID)
		assert.Equal(t, p.ID, experiments[i].ProjectID)
	}

	assert.Equal(t, experiments[0].ID, models[0].ExperimentID)
	assert.Equal(t, experiments[0].Metrics, models[0].Metrics)
	assert.True(t, models[0].Deployed())
}
