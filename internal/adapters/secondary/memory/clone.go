package memory

import "ml-platform/internal/core/domain"

func cloneProject(p *domain.Project) *domain.Project {
	out := *p
	out.Tags = append([]string{}, p.Tags...)
	out.Experiments = make([]*domain.Experiment, 0, len(p.Experiments))
	for _, e := range p.Experiments {
		out.Experiments = append(out.Experiments, cloneExperiment(e))
	}
	if p.Owner != nil {
		owner := *p.Owner
		out.Owner = &owner
	}
	return &out
}

func cloneExperiment(e *domain.Experiment) *domain.Experiment {
	out := *e
	out.Metrics = e.Metrics.Clone()
	out.Hyperparameters = make(map[string]any, len(e.Hyperparameters))
	for k, v := range e.Hyperparameters {
		out.Hyperparameters[k] = v
	}
	if e.StartedAt != nil {
		t := *e.StartedAt
		out.StartedAt = &t
	}
	if e.CompletedAt != nil {
		t := *e.CompletedAt
		out.CompletedAt = &t
	}
	return &out
}

func cloneModel(m *domain.TrainedModel) *domain.TrainedModel {
	out := *m
	out.Metrics = m.Metrics.Clone()
	if m.DeploymentStatus != nil {
		ds := *m.DeploymentStatus
		out.DeploymentStatus = &ds
	}
	return &out
}
