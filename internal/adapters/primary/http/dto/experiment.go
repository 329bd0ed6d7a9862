package dto

import (
	"time"

	"github.com/google/uuid"

	"ml-platform/internal/core/domain"
)

// CreateExperimentRequest carries hyperparameters as raw JSON text, the
// way the HTML form submits them.
type CreateExperimentRequest struct {
	Name            string `form:"name" json:"name" binding:"required,max=200"`
	Algorithm       string `form:"algorithm" json:"algorithm"`
	Dataset         string `form:"dataset" json:"dataset"`
	ProjectID       string `form:"project_id" json:"project_id" binding:"required"`
	Hyperparameters string `form:"hyperparameters" json:"hyperparameters"`
}

type CreateExperimentResponse struct {
	Success        bool      `json:"success"`
	Message        string    `json:"message"`
	ExperimentID   uuid.UUID `json:"experiment_id"`
	ExperimentName string    `json:"experiment_name"`
}

type StartExperimentResponse struct {
	Success      bool                    `json:"success"`
	Message      string                  `json:"message"`
	ExperimentID uuid.UUID               `json:"experiment_id"`
	Status       domain.ExperimentStatus `json:"status"`
	Metrics      domain.Metrics          `json:"metrics"`
}

type ExperimentMetricsResponse struct {
	ExperimentID uuid.UUID               `json:"experiment_id"`
	Status       domain.ExperimentStatus `json:"status"`
	Metrics      domain.Metrics          `json:"metrics"`
}

type ExperimentResponse struct {
	ID              uuid.UUID               `json:"id"`
	Name            string                  `json:"name"`
	Algorithm       string                  `json:"algorithm"`
	Dataset         string                  `json:"dataset"`
	ProjectID       uuid.UUID               `json:"project_id"`
	Status          domain.ExperimentStatus `json:"status"`
	CreatedAt       string                  `json:"created_at"`
	StartedAt       *string                 `json:"started_at"`
	CompletedAt     *string                 `json:"completed_at"`
	Metrics         domain.Metrics          `json:"metrics"`
	Hyperparameters map[string]any          `json:"hyperparameters"`
}

func ToExperimentResponse(e *domain.Experiment) ExperimentResponse {
	return ExperimentResponse{
		ID:              e.ID,
		Name:            e.Name,
		Algorithm:       e.Algorithm,
		Dataset:         e.Dataset,
		ProjectID:       e.ProjectID,
		Status:          e.Status,
		CreatedAt:       e.CreatedAt.Format(time.RFC3339),
		StartedAt:       formatTimePtr(e.StartedAt),
		CompletedAt:     formatTimePtr(e.CompletedAt),
		Metrics:         e.Metrics,
		Hyperparameters: e.Hyperparameters,
	}
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}
