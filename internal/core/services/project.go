package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"ml-platform/internal/core/domain"
	"ml-platform/internal/core/ports/output"
)

type ProjectService struct {
	store ports.PlatformStore
}

func NewProjectService(store ports.PlatformStore) *ProjectService {
	return &ProjectService{store: store}
}

// Create adds a project owned by the demo user. rawTags is a
// comma-separated list; blank entries are dropped.
func (s *ProjectService) Create(ctx context.Context, name, description, rawTags string) (*domain.Project, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrInvalidProjectName
	}
	return s.store.CreateProject(ctx, name, strings.TrimSpace(description), s.store.DemoUser(), SplitTags(rawTags))
}

func (s *ProjectService) Get(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	return s.store.GetProject(ctx, id)
}

func (s *ProjectService) List(ctx context.Context) []*domain.Project {
	return s.store.ListProjects(ctx)
}

func SplitTags(raw string) []string {
	tags := []string{}
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
