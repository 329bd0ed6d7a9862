package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"ml-platform/internal/core/domain"
	ports "ml-platform/internal/core/ports/output"
)

// Store keeps every entity in process memory. Lookups are linear scans
// over small slices. Mutations hold the write lock until all snapshot
// writers have returned, so snapshot files are never written concurrently.
type Store struct {
	mu sync.RWMutex

	demoUser    *domain.User
	projects    []*domain.Project
	experiments []*domain.Experiment
	models      []*domain.TrainedModel

	writers  []ports.SnapshotWriter
	recorder ports.MetricsRecorder
	now      func() time.Time
}

type Option func(*Store)

func WithSnapshotWriters(writers ...ports.SnapshotWriter) Option {
	return func(s *Store) {
		s.writers = append(s.writers, writers...)
	}
}

func WithRecorder(r ports.MetricsRecorder) Option {
	return func(s *Store) {
		if r != nil {
			s.recorder = r
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// NewStore creates an empty store owned by user.
func NewStore(user *domain.User, opts ...Option) *Store {
	s := &Store{
		demoUser: user,
		recorder: ports.NoopRecorder{},
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.demoUser == nil {
		s.demoUser = &domain.User{
			ID:        uuid.New(),
			Role:      domain.UserRoleDataScientist,
			CreatedAt: s.now(),
		}
	}
	return s
}

func (s *Store) DemoUser() *domain.User {
	u := *s.demoUser
	return &u
}

func (s *Store) ListProjects(_ context.Context) []*domain.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Project, 0, len(s.projects))
	for _, p := range s.projects {
		out = append(out, cloneProject(p))
	}
	return out
}

func (s *Store) ListExperiments(_ context.Context) []*domain.Experiment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Experiment, 0, len(s.experiments))
	for _, e := range s.experiments {
		out = append(out, cloneExperiment(e))
	}
	return out
}

func (s *Store) ListModels(_ context.Context) []*domain.TrainedModel {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.TrainedModel, 0, len(s.models))
	for _, m := range s.models {
		out = append(out, cloneModel(m))
	}
	return out
}

func (s *Store) GetProject(_ context.Context, id uuid.UUID) (*domain.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p := s.findProject(id)
	if p == nil {
		return nil, domain.ErrProjectNotFound
	}
	return cloneProject(p), nil
}

func (s *Store) GetExperiment(_ context.Context, id uuid.UUID) (*domain.Experiment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e := s.findExperiment(id)
	if e == nil {
		return nil, domain.ErrExperimentNotFound
	}
	return cloneExperiment(e), nil
}

func (s *Store) GetModel(_ context.Context, id uuid.UUID) (*domain.TrainedModel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m := s.findModel(id)
	if m == nil {
		return nil, domain.ErrModelNotFound
	}
	return cloneModel(m), nil
}

func (s *Store) CreateProject(ctx context.Context, name, description string, owner *domain.User, tags []string) (*domain.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if owner == nil {
		owner = s.demoUser
	}
	if tags == nil {
		tags = []string{}
	}

	now := s.now()
	p := &domain.Project{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		Owner:       owner,
		Status:      domain.ProjectStatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
		Experiments: []*domain.Experiment{},
		Tags:        append([]string(nil), tags...),
	}
	s.projects = append(s.projects, p)
	s.persist(ctx)

	return cloneProject(p), nil
}

func (s *Store) CreateExperiment(ctx context.Context, in ports.NewExperiment) (*domain.Experiment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	project := s.findProject(in.ProjectID)
	if project == nil {
		return nil, domain.ErrProjectNotFound
	}

	hp := make(map[string]any, len(in.Hyperparameters))
	for k, v := range in.Hyperparameters {
		hp[k] = v
	}

	e := &domain.Experiment{
		ID:              uuid.New(),
		Name:            in.Name,
		Algorithm:       in.Algorithm,
		Dataset:         in.Dataset,
		ProjectID:       project.ID,
		Status:          domain.ExperimentStatusCreated,
		CreatedAt:       s.now(),
		Metrics:         domain.Metrics{},
		Hyperparameters: hp,
	}
	s.experiments = append(s.experiments, e)
	project.Experiments = append(project.Experiments, e)
	project.UpdatedAt = e.CreatedAt
	s.persist(ctx)

	return cloneExperiment(e), nil
}

func (s *Store) SetExperimentStatus(ctx context.Context, id uuid.UUID, status domain.ExperimentStatus, metrics domain.Metrics) (*domain.Experiment, error) {
	if !status.Valid() {
		return nil, domain.ErrInvalidExperimentStatus
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	e := s.findExperiment(id)
	if e == nil {
		return nil, domain.ErrExperimentNotFound
	}
	e.ApplyStatus(status, metrics, s.now())
	s.persist(ctx)

	return cloneExperiment(e), nil
}

func (s *Store) CreateModel(ctx context.Context, in ports.NewTrainedModel) (*domain.TrainedModel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := s.findExperiment(in.ExperimentID)
	if e == nil {
		return nil, domain.ErrExperimentNotFound
	}
	if e.Status != domain.ExperimentStatusCompleted {
		return nil, domain.ErrExperimentNotCompleted
	}

	m := &domain.TrainedModel{
		ID:           uuid.New(),
		Name:         in.Name,
		Description:  in.Description,
		ExperimentID: e.ID,
		Status:       domain.ModelStatusDevelopment,
		Version:      domain.DefaultModelVersion,
		CreatedAt:    s.now(),
		Metrics:      e.Metrics.Clone(),
	}
	s.models = append(s.models, m)
	s.persist(ctx)

	return cloneModel(m), nil
}

func (s *Store) SetModelDeploymentStatus(ctx context.Context, id uuid.UUID, status domain.DeploymentStatus) (*domain.TrainedModel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := s.findModel(id)
	if m == nil {
		return nil, domain.ErrModelNotFound
	}
	m.DeploymentStatus = &status
	s.persist(ctx)

	return cloneModel(m), nil
}

func (s *Store) Snapshot(_ context.Context) *domain.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() *domain.Snapshot {
	snap := &domain.Snapshot{
		Projects:    make([]domain.ProjectSummary, 0, len(s.projects)),
		Experiments: make([]domain.ExperimentSummary, 0, len(s.experiments)),
	}
	for _, p := range s.projects {
		snap.Projects = append(snap.Projects, domain.ProjectSummary{
			ID:            p.ID,
			Name:          p.Name,
			Description:   p.Description,
			Status:        p.Status,
			ExperimentIDs: p.ExperimentIDs(),
		})
	}
	for _, e := range s.experiments {
		snap.Experiments = append(snap.Experiments, domain.ExperimentSummary{
			ID:        e.ID,
			Name:      e.Name,
			Algorithm: e.Algorithm,
			Status:    e.Status,
			ProjectID: e.ProjectID,
			Metrics:   e.Metrics.Clone(),
		})
	}
	return snap
}

// persist hands the current snapshot to every writer. Failures are logged
// and counted; the in-memory mutation stands regardless.
func (s *Store) persist(ctx context.Context) {
	if len(s.writers) == 0 {
		return
	}
	snap := s.snapshotLocked()
	for _, w := range s.writers {
		err := w.Write(ctx, snap)
		s.recorder.SnapshotWritten(w.Name(), err)
		if err != nil {
			log.WithError(err).WithField("sink", w.Name()).Warn("snapshot write failed")
		}
	}
}

func (s *Store) findProject(id uuid.UUID) *domain.Project {
	for _, p := range s.projects {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func (s *Store) findExperiment(id uuid.UUID) *domain.Experiment {
	for _, e := range s.experiments {
		if e.ID == id {
			return e
		}
	}
	return nil
}

func (s *Store) findModel(id uuid.UUID) *domain.TrainedModel {
	for _, m := range s.models {
		if m.ID == id {
			return m
		}
	}
	return nil
}

var _ ports.PlatformStore = (*Store)(nil)
