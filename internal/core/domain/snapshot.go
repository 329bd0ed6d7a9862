package domain

import "github.com/google/uuid"

// Snapshot is the denormalized, write-only view of the store persisted
// after every mutation.
type Snapshot struct {
	Projects    []ProjectSummary    `json:"projects"`
	Experiments []ExperimentSummary `json:"experiments"`
}

type ProjectSummary struct {
	ID            uuid.UUID     `json:"id"`
	Name          string        `json:"name"`
	Description   string        `json:"description"`
	Status        ProjectStatus `json:"status"`
	ExperimentIDs []uuid.UUID   `json:"experiment_ids"`
}

type ExperimentSummary struct {
	ID        uuid.UUID        `json:"id"`
	Name      string           `json:"name"`
	Algorithm string           `json:"algorithm"`
	Status    ExperimentStatus `json:"status"`
	ProjectID uuid.UUID        `json:"project_id"`
	Metrics   Metrics          `json:"metrics"`
}
