package services

import (
	"context"

	"ml-platform/internal/core/domain"
	"ml-platform/internal/core/ports/output"
)

const chartNameLimit = 20

type StatsService struct {
	store ports.PlatformStore
}

func NewStatsService(store ports.PlatformStore) *StatsService {
	return &StatsService{store: store}
}

func (s *StatsService) Stats(ctx context.Context) *domain.Stats {
	projects := s.store.ListProjects(ctx)
	experiments := s.store.ListExperiments(ctx)
	models := s.store.ListModels(ctx)

	st := &domain.Stats{
		Projects:    len(projects),
		Experiments: len(experiments),
		Models:      len(models),
	}
	for _, p := range projects {
		if p.Status == domain.ProjectStatusActive {
			st.ActiveProjects++
		}
	}
	for _, e := range experiments {
		switch e.Status {
		case domain.ExperimentStatusCompleted:
			st.CompletedExperiments++
		case domain.ExperimentStatusRunning:
			st.RunningExperiments++
		}
	}
	for _, m := range models {
		if m.Deployed() {
			st.DeployedModels++
		}
	}
	return st
}

// ChartData lists accuracy and f1 for every experiment that has metrics.
// Missing values are reported as zero.
func (s *StatsService) ChartData(ctx context.Context) *domain.ChartData {
	cd := &domain.ChartData{
		ExperimentNames: []string{},
		AccuracyScores:  []float64{},
		F1Scores:        []float64{},
	}
	for _, e := range s.store.ListExperiments(ctx) {
		if len(e.Metrics) == 0 {
			continue
		}
		cd.ExperimentNames = append(cd.ExperimentNames, truncateName(e.Name))
		cd.AccuracyScores = append(cd.AccuracyScores, e.Metrics[domain.MetricAccuracy])
		cd.F1Scores = append(cd.F1Scores, e.Metrics[domain.MetricF1Score])
	}
	return cd
}

func truncateName(name string) string {
	r := []rune(name)
	if len(r) <= chartNameLimit {
		return name
	}
	return string(r[:chartNameLimit]) + "..."
}
