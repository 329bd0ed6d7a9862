package ports

import (
	"context"

	"ml-platform/internal/core/domain"
)

// KServeDeployment represents the result of a KServe deployment
type KServeDeployment struct {
	Name       string // InferenceService name
	ExternalID string // K8s resource UID
}

// KServeStatus represents the status of a KServe InferenceService
type KServeStatus struct {
	URL   string `json:"url"`
	Ready bool   `json:"ready"`
	Error string `json:"error,omitempty"`
}

// KServeClient defines the contract for serving trained models on KServe
type KServeClient interface {
	// Deploy creates a KServe InferenceService CR for the model
	Deploy(ctx context.Context, model *domain.TrainedModel, experiment *domain.Experiment) (*KServeDeployment, error)

	// Undeploy deletes the model's InferenceService CR
	Undeploy(ctx context.Context, model *domain.TrainedModel) error

	// GetStatus retrieves current deployment status from Kubernetes
	GetStatus(ctx context.Context, model *domain.TrainedModel) (*KServeStatus, error)
}
