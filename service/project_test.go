package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stsysd/projects/config"
	"github.com/stsysd/projects/db"
	"github.com/stsysd/projects/model"
	"github.com/stsysd/projects/store"
)

func setupTestService(t *testing.T) *ProjectService {
	t.Helper()

	cfg := config.Default()
	cfg.Driver = config.DriverSQLite
	cfg.SQLitePath = filepath.Join(t.TempDir(), "projects.db")

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	provider, err := db.NewProvider(cfg, logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = provider.Close() })

	svc := NewProjectService(store.NewSQLStore(provider, logger), cfg.Driver, logger)
	require.NoError(t, svc.CreateAndPopulateTables(context.Background()))
	return svc
}

func ptr[T any](v T) *T { return &v }

func TestBuildShedScenario(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	p := model.NewProject("Build shed")
	p.EstimatedHours = ptr(decimal.RequireFromString("10.00"))
	p.Difficulty = ptr(3)

	added, err := svc.AddProject(ctx, p)
	require.NoError(t, err)
	require.True(t, added.IsPersisted())

	projects, err := svc.ListProjects(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, added.ID, projects[0].ID)

	got, err := svc.GetProject(ctx, added.ID)
	require.NoError(t, err)
	assert.Equal(t, "Build shed", got.Name)
	assert.Equal(t, "10.00", model.FormatHours(got.EstimatedHours))
	assert.Nil(t, got.ActualHours)
	assert.Equal(t, ptr(3), got.Difficulty)
	assert.Nil(t, got.Notes)
}

func TestGetProject_NotFound(t *testing.T) {
	svc := setupTestService(t)

	_, err := svc.GetProject(context.Background(), 99)
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrNotFound)
	assert.Contains(t, err.Error(), "project with ID = 99 does not exist")
}

func TestUpdateProject_NotFound(t *testing.T) {
	svc := setupTestService(t)

	missing := model.NewProject("Ghost")
	missing.ID = 7

	err := svc.UpdateProject(context.Background(), missing)
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrDB)
}

func TestApplyPatch(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	p := model.NewProject("Build shed")
	p.EstimatedHours = ptr(decimal.RequireFromString("10"))
	p.Notes = ptr("wood")
	added, err := svc.AddProject(ctx, p)
	require.NoError(t, err)

	patch := model.ProjectPatch{
		ActualHours: model.Some(decimal.RequireFromString("11.5")),
		Difficulty:  model.Some(4),
	}
	updated, err := svc.ApplyPatch(ctx, added.ID, patch)
	require.NoError(t, err)

	// 指定しなかった項目は元の値を保持する
	assert.Equal(t, "Build shed", updated.Name)
	assert.Equal(t, "10.00", model.FormatHours(updated.EstimatedHours))
	assert.Equal(t, "11.50", model.FormatHours(updated.ActualHours))
	assert.Equal(t, ptr(4), updated.Difficulty)
	assert.Equal(t, ptr("wood"), updated.Notes)
}

func TestApplyPatch_Empty(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	added, err := svc.AddProject(ctx, model.NewProject("Unchanged"))
	require.NoError(t, err)

	updated, err := svc.ApplyPatch(ctx, added.ID, model.ProjectPatch{})
	require.NoError(t, err)
	assert.Equal(t, "Unchanged", updated.Name)
}

func TestApplyPatch_NotFound(t *testing.T) {
	svc := setupTestService(t)

	_, err := svc.ApplyPatch(context.Background(), 5, model.ProjectPatch{Name: model.Some("x")})
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestDeleteProject(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	added, err := svc.AddProject(ctx, model.NewProject("Temporary"))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteProject(ctx, added))

	_, err = svc.GetProject(ctx, added.ID)
	assert.ErrorIs(t, err, model.ErrNotFound)

	// 2回目は削除対象がない
	err = svc.DeleteProject(ctx, added)
	assert.ErrorIs(t, err, model.ErrDB)
}

func TestCreateAndPopulateTables_Resets(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	_, err := svc.AddProject(ctx, model.NewProject("Before reset"))
	require.NoError(t, err)

	require.NoError(t, svc.CreateAndPopulateTables(ctx))

	projects, err := svc.ListProjects(ctx)
	require.NoError(t, err)
	assert.Empty(t, projects)
}

func TestLoadSchema(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "seed.sql")
	script := `-- seed data
INSERT INTO project (project_name, estimated_hours) VALUES ('Seeded; one', 1.25);
INSERT INTO project (project_name) VALUES ('Seeded two')
-- no newline after this comment`
	require.NoError(t, os.WriteFile(path, []byte(script), 0o644))

	require.NoError(t, svc.LoadSchema(ctx, path))

	projects, err := svc.ListProjects(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, "Seeded; one", projects[0].Name)
	assert.Equal(t, "Seeded two", projects[1].Name)
}

func TestLoadSchema_Unreadable(t *testing.T) {
	svc := setupTestService(t)

	err := svc.LoadSchema(context.Background(), filepath.Join(t.TempDir(), "missing.sql"))
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrIO)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadSchema_FailingStatement(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "broken.sql")
	script := "INSERT INTO project (project_name) VALUES ('kept?');\nINSERT INTO nowhere VALUES (1);\n"
	require.NoError(t, os.WriteFile(path, []byte(script), 0o644))

	err := svc.LoadSchema(ctx, path)
	assert.ErrorIs(t, err, model.ErrDB)

	projects, err := svc.ListProjects(ctx)
	require.NoError(t, err)
	assert.Empty(t, projects)
}

// stubStore は結果を固定したProjectStoreです。
type stubStore struct {
	store.ProjectStore
	deleted bool
	err     error
}

func (s stubStore) DeleteProject(context.Context, *model.Project) (bool, error) {
	return s.deleted, s.err
}

func TestDeleteProject_PropagatesErrors(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	p := model.NewProject("x")
	p.ID = 1

	cause := model.DBError("delete project", errors.New("boom"))
	svc := NewProjectService(stubStore{err: cause}, config.DriverSQLite, logger)
	err := svc.DeleteProject(context.Background(), p)
	assert.ErrorIs(t, err, model.ErrDB)
	assert.ErrorContains(t, err, "boom")

	svc = NewProjectService(stubStore{deleted: false}, config.DriverSQLite, logger)
	err = svc.DeleteProject(context.Background(), p)
	assert.ErrorIs(t, err, model.ErrDB)
	assert.ErrorContains(t, err, "does not exist to delete")
}
