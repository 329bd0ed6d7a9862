package memory

import (
	_ "embed"
	"fmt"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"ml-platform/internal/core/domain"
)

//go:embed seed.yaml
var seedYAML []byte

type seedFile struct {
	User struct {
		Name  string `yaml:"name"`
		Email string `yaml:"email"`
		Role  string `yaml:"role"`
	} `yaml:"user"`

	Projects []struct {
		Key         string   `yaml:"key"`
		Name        string   `yaml:"name"`
		Description string   `yaml:"description"`
		Tags        []string `yaml:"tags"`
	} `yaml:"projects"`

	Experiments []struct {
		Key       string             `yaml:"key"`
		Project   string             `yaml:"project"`
		Name      string             `yaml:"name"`
		Algorithm string             `yaml:"algorithm"`
		Dataset   string             `yaml:"dataset"`
		Status    string             `yaml:"status"`
		Metrics   map[string]float64 `yaml:"metrics"`
	} `yaml:"experiments"`

	Models []struct {
		Experiment       string `yaml:"experiment"`
		Name             string `yaml:"name"`
		Description      string `yaml:"description"`
		DeploymentStatus string `yaml:"deployment_status"`
	} `yaml:"models"`
}

// NewSeededStore builds a store populated with the demo fixture. The
// fixture is applied directly, so no snapshot is written until the first
// real mutation.
func NewSeededStore(opts ...Option) (*Store, error) {
	var seed seedFile
	if err := yaml.Unmarshal(seedYAML, &seed); err != nil {
		return nil, fmt.Errorf("parse seed: %w", err)
	}

	s := NewStore(nil, opts...)
	now := s.now()

	s.demoUser = &domain.User{
		ID:        uuid.New(),
		Name:      seed.User.Name,
		Email:     seed.User.Email,
		Role:      domain.UserRole(seed.User.Role),
		CreatedAt: now,
	}

	projects := make(map[string]*domain.Project, len(seed.Projects))
	for _, sp := range seed.Projects {
		p := &domain.Project{
			ID:          uuid.New(),
			Name:        sp.Name,
			Description: sp.Description,
			Owner:       s.demoUser,
			Status:      domain.ProjectStatusActive,
			CreatedAt:   now,
			UpdatedAt:   now,
			Experiments: []*domain.Experiment{},
			Tags:        append([]string{}, sp.Tags...),
		}
		projects[sp.Key] = p
		s.projects = append(s.projects, p)
	}

	experiments := make(map[string]*domain.Experiment, len(seed.Experiments))
	for _, se := range seed.Experiments {
		p, ok := projects[se.Project]
		if !ok {
			return nil, fmt.Errorf("seed experiment %q: unknown project %q", se.Key, se.Project)
		}
		status := domain.ExperimentStatus(se.Status)
		if !status.Valid() {
			return nil, fmt.Errorf("seed experiment %q: %w", se.Key, domain.ErrInvalidExperimentStatus)
		}
		e := &domain.Experiment{
			ID:              uuid.New(),
			Name:            se.Name,
			Algorithm:       se.Algorithm,
			Dataset:         se.Dataset,
			ProjectID:       p.ID,
			Status:          domain.ExperimentStatusCreated,
			CreatedAt:       now,
			Metrics:         domain.Metrics{},
			Hyperparameters: map[string]any{},
		}
		if status != domain.ExperimentStatusCreated {
			e.ApplyStatus(domain.ExperimentStatusRunning, nil, now)
		}
		if status == domain.ExperimentStatusCompleted {
			e.ApplyStatus(domain.ExperimentStatusCompleted, nil, now)
		}
		// Seeded metrics are attached whatever the status, matching the demo dashboard.
		for k, v := range se.Metrics {
			e.Metrics[k] = v
		}
		experiments[se.Key] = e
		s.experiments = append(s.experiments, e)
		p.Experiments = append(p.Experiments, e)
	}

	for _, sm := range seed.Models {
		e, ok := experiments[sm.Experiment]
		if !ok {
			return nil, fmt.Errorf("seed model %q: unknown experiment %q", sm.Name, sm.Experiment)
		}
		m := &domain.TrainedModel{
			ID:           uuid.New(),
			Name:         sm.Name,
			Description:  sm.Description,
			ExperimentID: e.ID,
			Status:       domain.ModelStatusDevelopment,
			Version:      domain.DefaultModelVersion,
			CreatedAt:    now,
			Metrics:      e.Metrics.Clone(),
		}
		if sm.DeploymentStatus != "" {
			ds := domain.DeploymentStatus(sm.DeploymentStatus)
			m.DeploymentStatus = &ds
		}
		s.models = append(s.models, m)
	}

	return s, nil
}
