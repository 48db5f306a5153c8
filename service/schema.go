package service

import (
	"context"

	"github.com/stsysd/projects/db"
	"github.com/stsysd/projects/model"
)

// LoadSchema reads the script at path, splits it into statements and runs
// them as one batch. An unreadable file is reported as model.ErrIO.
func (s *ProjectService) LoadSchema(ctx context.Context, path string) error {
	script, err := db.ReadScript(path)
	if err != nil {
		return model.IOError("load schema", err)
	}
	return s.runScript(ctx, path, script)
}

// CreateAndPopulateTables drops and recreates every table from the embedded
// schema for the configured driver, then seeds the categories.
func (s *ProjectService) CreateAndPopulateTables(ctx context.Context) error {
	script, err := db.DefaultSchema(s.driver)
	if err != nil {
		return model.IOError("load schema", err)
	}
	return s.runScript(ctx, "embedded:"+s.driver, script)
}

func (s *ProjectService) runScript(ctx context.Context, source, script string) error {
	statements, err := db.SplitStatements(script)
	if err != nil {
		return model.IOError("load schema", err)
	}

	for i, stmt := range statements {
		s.logger.Debug("schema statement", "source", source, "index", i, "sql", stmt)
	}

	if err := s.store.ExecuteBatch(ctx, statements); err != nil {
		return err
	}
	s.logger.Info("schema loaded", "source", source, "statements", len(statements))
	return nil
}
