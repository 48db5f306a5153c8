package cli

import (
	"github.com/spf13/cobra"
)

// NewSchemaCommand creates the schema command group.
func NewSchemaCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Manage the database schema",
	}
	cmd.AddCommand(newSchemaLoadCommand(opts))
	return cmd
}

func newSchemaLoadCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "load [file]",
		Short: "Drop and recreate the tables from a SQL script",
		Long: "Run every statement of a SQL script as one batch. Without a file the\n" +
			"configured schema_file is used, or the built-in schema for the driver.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := opts.app.Service
			path := opts.app.Config.SchemaFile
			if len(args) == 1 {
				path = args[0]
			}

			var err error
			if path == "" {
				err = svc.CreateAndPopulateTables(cmd.Context())
			} else {
				err = svc.LoadSchema(cmd.Context(), path)
			}
			if err != nil {
				return err
			}

			printSuccess(cmd.OutOrStdout(), "Schema loaded.")
			return nil
		},
	}
}
