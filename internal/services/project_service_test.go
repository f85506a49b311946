// File: internal/services/project_service_test.go
package services_test

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/henghaopu/nuxt-chat/internal/domain"
	projectrepo "github.com/henghaopu/nuxt-chat/internal/repository/project"
	"github.com/henghaopu/nuxt-chat/internal/services"
)

func newProjectService(t *testing.T) *services.ProjectService {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&domain.Project{}))

	return services.NewProjectService(projectrepo.NewProjectRepository(db), nil)
}

func requireValidation(t *testing.T, err error) {
	t.Helper()
	var chatErr *services.ChatError
	require.ErrorAs(t, err, &chatErr)
	require.Equal(t, services.ErrTypeValidation, chatErr.Type)
}

func TestCreateProject_Validation(t *testing.T) {
	ctx := context.Background()
	svc := newProjectService(t)

	_, err := svc.CreateProject(ctx, "   ")
	requireValidation(t, err)

	created, err := svc.CreateProject(ctx, "Real work")
	require.NoError(t, err)
	require.Equal(t, "Real work", created.Name)
}

func TestUpdateProject_Validation(t *testing.T) {
	ctx := context.Background()
	svc := newProjectService(t)

	created, err := svc.CreateProject(ctx, "Before")
	require.NoError(t, err)

	// No field supplied.
	_, err = svc.UpdateProject(ctx, created.ID, nil)
	requireValidation(t, err)

	// Name empty after trimming.
	blank := "   "
	_, err = svc.UpdateProject(ctx, created.ID, &blank)
	requireValidation(t, err)

	name := "After"
	updated, err := svc.UpdateProject(ctx, created.ID, &name)
	require.NoError(t, err)
	require.Equal(t, "After", updated.Name)
}

func TestUpdateProject_NotFound(t *testing.T) {
	ctx := context.Background()
	svc := newProjectService(t)

	name := "whatever"
	_, err := svc.UpdateProject(ctx, "missing", &name)
	require.ErrorIs(t, err, projectrepo.ErrProjectNotFound)
}

func TestDeleteProject_ReturnsDeletedEntity(t *testing.T) {
	ctx := context.Background()
	svc := newProjectService(t)

	created, err := svc.CreateProject(ctx, "Doomed")
	require.NoError(t, err)

	deleted, err := svc.DeleteProject(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created.ID, deleted.ID)

	_, err = svc.DeleteProject(ctx, created.ID)
	require.ErrorIs(t, err, projectrepo.ErrProjectNotFound)
}
