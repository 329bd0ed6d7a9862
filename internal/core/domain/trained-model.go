package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type ModelStatus string

const (
	ModelStatusDevelopment ModelStatus = "development"
	ModelStatusStaging     ModelStatus = "staging"
	ModelStatusProduction  ModelStatus = "production"
)

type DeploymentStatus string

const (
	DeploymentStatusDeployed   DeploymentStatus = "deployed"
	DeploymentStatusUndeployed DeploymentStatus = "undeployed"
)

const DefaultModelVersion = "1.0.0"

type TrainedModel struct {
	ID               uuid.UUID         `json:"id"`
	Name             string            `json:"name"`
	Description      string            `json:"description"`
	ExperimentID     uuid.UUID         `json:"experiment_id"`
	Status           ModelStatus       `json:"status"`
	Version          string            `json:"version"`
	CreatedAt        time.Time         `json:"created_at"`
	Metrics          Metrics           `json:"metrics"`
	DeploymentStatus *DeploymentStatus `json:"deployment_status"`
}

func (m *TrainedModel) Deployed() bool {
	return m.DeploymentStatus != nil && *m.DeploymentStatus == DeploymentStatusDeployed
}

// Slug returns a DNS-label friendly name for the model, suitable for
// Kubernetes resource names.
func (m *TrainedModel) Slug() string {
	var b strings.Builder
	for _, ch := range strings.ToLower(m.Name) {
		switch {
		case (ch >= 'a' && ch <= 'z') || (ch >= '0' && ch <= '9'):
			b.WriteRune(ch)
		case ch == ' ' || ch == '_' || ch == '-':
			b.WriteByte('-')
		}
	}
	slug := strings.Trim(b.String(), "-")
	if slug == "" {
		slug = "model-" + m.ID.String()[:8]
	}
	if len(slug) > 60 {
		slug = strings.TrimRight(slug[:60], "-")
	}
	return slug
}
