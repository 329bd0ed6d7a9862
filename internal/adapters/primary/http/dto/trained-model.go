package dto

import (
	"time"

	"github.com/google/uuid"

	"ml-platform/internal/core/domain"
	"ml-platform/internal/core/ports/output"
)

type RegisterModelRequest struct {
	Name        string `form:"name" json:"name" binding:"required,max=200"`
	Description string `form:"description" json:"description"`
}

type TrainedModelResponse struct {
	ID               uuid.UUID                `json:"id"`
	Name             string                   `json:"name"`
	Description      string                   `json:"description"`
	ExperimentID     uuid.UUID                `json:"experiment_id"`
	Status           domain.ModelStatus       `json:"status"`
	Version          string                   `json:"version"`
	CreatedAt        string                   `json:"created_at"`
	Metrics          domain.Metrics           `json:"metrics"`
	DeploymentStatus *domain.DeploymentStatus `json:"deployment_status"`
}

func ToTrainedModelResponse(m *domain.TrainedModel) TrainedModelResponse {
	return TrainedModelResponse{
		ID:               m.ID,
		Name:             m.Name,
		Description:      m.Description,
		ExperimentID:     m.ExperimentID,
		Status:           m.Status,
		Version:          m.Version,
		CreatedAt:        m.CreatedAt.Format(time.RFC3339),
		Metrics:          m.Metrics,
		DeploymentStatus: m.DeploymentStatus,
	}
}

type ModelStatusResponse struct {
	ModelID uuid.UUID `json:"model_id"`
	ports.KServeStatus
}
