// File: internal/repository/project/interface.go
package project

import (
	"context"

	"github.com/henghaopu/nuxt-chat/internal/domain"
)

// ProjectRepository handles project data operations.
type ProjectRepository interface {
	Create(ctx context.Context, name string) (*domain.Project, error)
	FindByID(ctx context.Context, id string) (*domain.Project, error)
	FindAll(ctx context.Context) ([]domain.Project, error)
	Update(ctx context.Context, id string, name string) (*domain.Project, error)
	Delete(ctx context.Context, id string) (*domain.Project, error)
}
