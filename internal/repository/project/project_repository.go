// File: internal/repository/project/project_repository.go
package project

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/henghaopu/nuxt-chat/internal/domain"
)

var ErrProjectNotFound = errors.New("project not found")

type gormProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &gormProjectRepository{db: db}
}

func (r *gormProjectRepository) Create(ctx context.Context, name string) (*domain.Project, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errors.New("project name cannot be empty")
	}

	proj := &domain.Project{
		ID:   uuid.NewString(),
		Name: name,
	}

	if err := r.db.WithContext(ctx).Create(proj).Error; err != nil {
		log.Printf("[ProjectRepository] Database error during project creation: %v", err)
		return nil, errors.New("database error creating project")
	}

	return proj, nil
}

func (r *gormProjectRepository) FindByID(ctx context.Context, id string) (*domain.Project, error) {
	if id == "" {
		return nil, errors.New("invalid project ID")
	}

	var proj domain.Project
	err := r.db.WithContext(ctx).First(&proj, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProjectNotFound
	}
	if err != nil {
		log.Printf("[ProjectRepository] FindByID database error: %v", err)
		return nil, errors.New("database query failed")
	}

	return &proj, nil
}

// FindAll returns every project sorted lexicographically by name.
func (r *gormProjectRepository) FindAll(ctx context.Context) ([]domain.Project, error) {
	projects := []domain.Project{}
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&projects).Error

	if err != nil {
		log.Printf("[ProjectRepository] Database error fetching projects: %v", err)
		return nil, errors.New("database error fetching projects")
	}

	return projects, nil
}

// Update renames a project and refreshes UpdatedAt. Name validation happens
// at the boundary; the repository only guards against blank input.
func (r *gormProjectRepository) Update(ctx context.Context, id string, name string) (*domain.Project, error) {
	if id == "" {
		return nil, errors.New("invalid project ID")
	}
	if strings.TrimSpace(name) == "" {
		return nil, errors.New("project name cannot be empty")
	}

	result := r.db.WithContext(ctx).
		Model(&domain.Project{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"name": name, "updated_at": time.Now()})

	if result.Error != nil {
		log.Printf("[ProjectRepository] Database error updating project %s: %v", id, result.Error)
		return nil, errors.New("database error updating project")
	}
	if result.RowsAffected == 0 {
		return nil, ErrProjectNotFound
	}

	return r.FindByID(ctx, id)
}

// Delete removes a project and returns the deleted entity. Chats referencing
// it are left untouched; their ProjectID dangles and resolves to "no
// project" on read.
func (r *gormProjectRepository) Delete(ctx context.Context, id string) (*domain.Project, error) {
	proj, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Delete(&domain.Project{}, "id = ?", id).Error; err != nil {
		log.Printf("[ProjectRepository] Database error deleting project %s: %v", id, err)
		return nil, errors.New("database error deleting project")
	}

	return proj, nil
}
