package domain

import (
	"time"

	"github.com/google/uuid"
)

type ProjectStatus string

const (
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusArchived  ProjectStatus = "archived"
	ProjectStatusCompleted ProjectStatus = "completed"
)

// Project owns its experiments by reference. Experiments is kept in
// insertion order and mirrors every Experiment whose ProjectID is this
// project's ID.
type Project struct {
	ID          uuid.UUID     `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Owner       *User         `json:"owner"`
	Status      ProjectStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
	Experiments []*Experiment `json:"-"`
	Tags        []string      `json:"tags"`
}

func (p *Project) ExperimentIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(p.Experiments))
	for _, e := range p.Experiments {
		ids = append(ids, e.ID)
	}
	return ids
}
