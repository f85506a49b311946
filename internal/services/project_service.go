// File: internal/services/project_service.go
package services

import (
	"context"
	"strings"

	"github.com/henghaopu/nuxt-chat/internal/domain"
	"github.com/henghaopu/nuxt-chat/internal/repository/project"
)

// ProjectService owns project operations and the field-level validation the
// store itself does not perform.
type ProjectService struct {
	projectRepo project.ProjectRepository
	logger      Logger
}

func NewProjectService(projectRepo project.ProjectRepository, logger Logger) *ProjectService {
	if logger == nil {
		logger = NewProductionLogger("project_service")
	}
	return &ProjectService{projectRepo: projectRepo, logger: logger}
}

func (s *ProjectService) CreateProject(ctx context.Context, name string) (*domain.Project, error) {
	if strings.TrimSpace(name) == "" {
		return nil, NewValidationError("create_project", "name is required")
	}
	return s.projectRepo.Create(ctx, name)
}

func (s *ProjectService) GetProjectByID(ctx context.Context, id string) (*domain.Project, error) {
	return s.projectRepo.FindByID(ctx, id)
}

// GetAllProjects returns projects sorted lexicographically by name.
func (s *ProjectService) GetAllProjects(ctx context.Context) ([]domain.Project, error) {
	return s.projectRepo.FindAll(ctx)
}

// UpdateProject renames a project. A nil name means no field was supplied,
// which is rejected; so is a name that is empty after trimming.
func (s *ProjectService) UpdateProject(ctx context.Context, id string, name *string) (*domain.Project, error) {
	if name == nil {
		return nil, NewValidationError("update_project", "at least one field must be provided for update")
	}
	if strings.TrimSpace(*name) == "" {
		return nil, NewValidationError("update_project", "name cannot be empty")
	}
	return s.projectRepo.Update(ctx, id, *name)
}

// DeleteProject removes a project without cascading to its chats.
func (s *ProjectService) DeleteProject(ctx context.Context, id string) (*domain.Project, error) {
	return s.projectRepo.Delete(ctx, id)
}
