// Package service translates data-access results into domain outcomes and
// loads schema scripts.
package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/stsysd/projects/model"
	"github.com/stsysd/projects/store"
)

// ProjectService is used by the shell and the CLI commands.
type ProjectService struct {
	store  store.ProjectStore
	driver string
	logger *slog.Logger
}

// NewProjectService creates a service over s. driver selects the embedded
// default schema used by CreateAndPopulateTables.
func NewProjectService(s store.ProjectStore, driver string, logger *slog.Logger) *ProjectService {
	return &ProjectService{store: s, driver: driver, logger: logger}
}

// AddProject inserts p and returns the stored project with its new ID.
func (s *ProjectService) AddProject(ctx context.Context, p *model.Project) (*model.Project, error) {
	return s.store.InsertProject(ctx, p)
}

// ListProjects returns every project ordered by ID, without child collections.
func (s *ProjectService) ListProjects(ctx context.Context) ([]*model.Project, error) {
	return s.store.ListProjects(ctx)
}

// GetProject returns the project with its materials, steps and categories.
// A missing project is reported as model.ErrNotFound.
func (s *ProjectService) GetProject(ctx context.Context, id int64) (*model.Project, error) {
	p, err := s.store.FetchProject(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, model.NotFoundError(id)
	}
	return p, nil
}

// UpdateProject overwrites all five fields of the stored project.
func (s *ProjectService) UpdateProject(ctx context.Context, p *model.Project) error {
	ok, err := s.store.UpdateProject(ctx, p)
	if err != nil {
		return err
	}
	if !ok {
		return model.DBError("update project", fmt.Errorf("project with ID = %d does not exist", p.ID))
	}
	return nil
}

// ApplyPatch overlays the present fields of patch on the stored project,
// persists the result and returns the refreshed project.
func (s *ProjectService) ApplyPatch(ctx context.Context, id int64, patch model.ProjectPatch) (*model.Project, error) {
	base, err := s.GetProject(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.UpdateProject(ctx, patch.Apply(base)); err != nil {
		return nil, err
	}
	s.logger.Info("project patched", "project_id", id, "empty_patch", patch.IsEmpty())

	return s.GetProject(ctx, id)
}

// DeleteProject removes p together with its category links.
func (s *ProjectService) DeleteProject(ctx context.Context, p *model.Project) error {
	ok, err := s.store.DeleteProject(ctx, p)
	if err != nil {
		s.logger.Error("delete project failed", "project_id", p.ID, "error", err)
		return err
	}
	if !ok {
		s.logger.Warn("delete project rolled back", "project_id", p.ID)
		return model.DBError("delete project", fmt.Errorf("project with ID = %d does not exist to delete", p.ID))
	}
	s.logger.Info("successfully deleted project", "project_id", p.ID)
	return nil
}
