package dto

import (
	"time"

	"github.com/google/uuid"

	"ml-platform/internal/core/domain"
)

type CreateProjectRequest struct {
	Name        string `form:"name" json:"name" binding:"required,max=200"`
	Description string `form:"description" json:"description"`
	Tags        string `form:"tags" json:"tags"`
}

type CreateProjectResponse struct {
	Success     bool      `json:"success"`
	Message     string    `json:"message"`
	ProjectID   uuid.UUID `json:"project_id"`
	ProjectName string    `json:"project_name"`
}

type ProjectResponse struct {
	ID            uuid.UUID            `json:"id"`
	Name          string               `json:"name"`
	Description   string               `json:"description"`
	Owner         *domain.User         `json:"owner"`
	Status        domain.ProjectStatus `json:"status"`
	CreatedAt     string               `json:"created_at"`
	UpdatedAt     string               `json:"updated_at"`
	ExperimentIDs []uuid.UUID          `json:"experiment_ids"`
	Tags          []string             `json:"tags"`
}

func ToProjectResponse(p *domain.Project) ProjectResponse {
	return ProjectResponse{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		Owner:         p.Owner,
		Status:        p.Status,
		CreatedAt:     p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     p.UpdatedAt.Format(time.RFC3339),
		ExperimentIDs: p.ExperimentIDs(),
		Tags:          p.Tags,
	}
}
