// Package cli implements the projects command line and the interactive shell.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/stsysd/projects/config"
)

// RootOptions holds global flags and the App built for the running command.
type RootOptions struct {
	ConfigFile string
	Verbose    bool
	Driver     string
	SQLitePath string

	app *App
}

// NewRootCommand creates the root command. Without a subcommand it runs the shell.
func NewRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "projects",
		Short:        "Track DIY projects",
		Long:         "Create, list, select, update and delete projects stored in MySQL or SQLite.",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.init(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd, opts)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigFile, "config", "", "config file (yaml or json)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "write debug logs to stderr")
	cmd.PersistentFlags().StringVar(&opts.Driver, "driver", "", "database driver (mysql|sqlite3)")
	cmd.PersistentFlags().StringVar(&opts.SQLitePath, "sqlite-path", "", "SQLite database file")

	cmd.AddCommand(NewShellCommand(opts))
	cmd.AddCommand(NewSchemaCommand(opts))
	cmd.AddCommand(NewAddCommand(opts))
	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewShowCommand(opts))
	cmd.AddCommand(NewUpdateCommand(opts))
	cmd.AddCommand(NewDeleteCommand(opts))

	return cmd
}

// init loads the configuration, applies flag overrides and builds the App.
func (o *RootOptions) init(cmd *cobra.Command) error {
	var overrides []config.Option
	if cmd.Flags().Changed("driver") {
		overrides = append(overrides, config.WithDriver(o.Driver))
	}
	if cmd.Flags().Changed("sqlite-path") {
		overrides = append(overrides, config.WithSQLitePath(o.SQLitePath))
	}

	cfg, err := config.NewConfig(o.ConfigFile, overrides...)
	if err != nil {
		return err
	}

	app, err := NewApp(cfg, o.Verbose, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	o.app = app
	return nil
}

func (o *RootOptions) close() error {
	if o.app == nil {
		return nil
	}
	err := o.app.Close()
	o.app = nil
	return err
}

// Execute runs the command line with the given arguments and streams.
func Execute(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) (err error) {
	opts := &RootOptions{}
	cmd := NewRootCommand(opts)
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	defer func() {
		if cerr := opts.close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("failed to close: %w", cerr))
		}
	}()

	if err := cmd.ExecuteContext(ctx); err != nil {
		if opts.app != nil {
			opts.app.Logger.Error("command failed", "args", args, "error", err)
		}
		return err
	}
	return nil
}
