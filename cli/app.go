package cli

import (
	"errors"
	"io"
	"log/slog"

	"github.com/stsysd/projects/config"
	"github.com/stsysd/projects/db"
	"github.com/stsysd/projects/service"
	"github.com/stsysd/projects/store"
)

// App holds the components built from the configuration for one command run.
type App struct {
	Config  *config.Config
	Logger  *slog.Logger
	Service *service.ProjectService

	closers []io.Closer
}

// NewApp wires the logger, connection provider, store and service.
func NewApp(cfg *config.Config, verbose bool, stderr io.Writer) (*App, error) {
	logger, logCloser := config.NewLogger(cfg, verbose, stderr)

	provider, err := db.NewProvider(cfg, logger)
	if err != nil {
		logCloser.Close()
		return nil, err
	}

	svc := service.NewProjectService(store.NewSQLStore(provider, logger), cfg.Driver, logger)

	logger.Debug("application initialized", "driver", cfg.Driver)
	return &App{
		Config:  cfg,
		Logger:  logger,
		Service: svc,
		closers: []io.Closer{provider, logCloser},
	}, nil
}

// Close releases the provider and the log file.
func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
