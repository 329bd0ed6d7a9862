package domain

type Stats struct {
	Projects             int `json:"projects"`
	Experiments          int `json:"experiments"`
	Models               int `json:"models"`
	CompletedExperiments int `json:"completed_experiments"`
	RunningExperiments   int `json:"running_experiments"`
	ActiveProjects       int `json:"active_projects"`
	DeployedModels       int `json:"deployed_models"`
}

// ChartData feeds the visualization page.
type ChartData struct {
	ExperimentNames []string  `json:"experiment_names"`
	AccuracyScores  []float64 `json:"accuracy_scores"`
	F1Scores        []float64 `json:"f1_scores"`
}
