package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/stsysd/projects/model"
)

// projectFlags are the field flags shared by add and update.
type projectFlags struct {
	name           string
	estimatedHours string
	actualHours    string
	difficulty     string
	notes          string
}

func (f *projectFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "project name")
	cmd.Flags().StringVar(&f.estimatedHours, "estimated-hours", "", "estimated hours (rounded to 2 places)")
	cmd.Flags().StringVar(&f.actualHours, "actual-hours", "", "actual hours (rounded to 2 places)")
	cmd.Flags().StringVar(&f.difficulty, "difficulty", "", "difficulty (1-5)")
	cmd.Flags().StringVar(&f.notes, "notes", "", "notes")
}

// patch builds a ProjectPatch from the flags that were set explicitly.
func (f *projectFlags) patch(cmd *cobra.Command) (model.ProjectPatch, error) {
	var patch model.ProjectPatch
	changed := cmd.Flags().Changed

	if changed("name") {
		name, err := model.ParseProjectName(f.name)
		if err != nil {
			return patch, err
		}
		patch.Name = model.Some(name)
	}
	if changed("estimated-hours") {
		h, err := model.ParseHours(f.estimatedHours)
		if err != nil {
			return patch, err
		}
		patch.EstimatedHours = model.OptionalOf(h)
	}
	if changed("actual-hours") {
		h, err := model.ParseHours(f.actualHours)
		if err != nil {
			return patch, err
		}
		patch.ActualHours = model.OptionalOf(h)
	}
	if changed("difficulty") {
		d, err := model.ParseDifficulty(f.difficulty)
		if err != nil {
			return patch, err
		}
		patch.Difficulty = model.OptionalOf(d)
	}
	if changed("notes") {
		patch.Notes = model.OptionalOf(model.ParseText(f.notes))
	}
	return patch, nil
}

// NewAddCommand creates the add command.
func NewAddCommand(opts *RootOptions) *cobra.Command {
	flags := &projectFlags{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			patch, err := flags.patch(cmd)
			if err != nil {
				return err
			}
			if !patch.Name.Present {
				return model.NewInputError("project name is required")
			}

			p := patch.Apply(model.NewProject(""))
			created, err := opts.app.Service.AddProject(cmd.Context(), p)
			if err != nil {
				return err
			}
			printSuccess(cmd.OutOrStdout(), "You have successfully created project: %s", created)
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

// NewListCommand creates the list command.
func NewListCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			projects, err := opts.app.Service.ListProjects(cmd.Context())
			if err != nil {
				return err
			}
			return printProjects(cmd.OutOrStdout(), projects)
		},
	}
}

// NewShowCommand creates the show command.
func NewShowCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a project with its materials, steps and categories",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := model.ParseProjectID(args[0])
			if err != nil {
				return err
			}
			p, err := opts.app.Service.GetProject(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Project:%s\n", p)
			return nil
		},
	}
}

// NewUpdateCommand creates the update command. Only flags given on the
// command line change the stored project.
func NewUpdateCommand(opts *RootOptions) *cobra.Command {
	flags := &projectFlags{}

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update project details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := model.ParseProjectID(args[0])
			if err != nil {
				return err
			}
			patch, err := flags.patch(cmd)
			if err != nil {
				return err
			}
			updated, err := opts.app.Service.ApplyPatch(cmd.Context(), id, patch)
			if err != nil {
				return err
			}
			printSuccess(cmd.OutOrStdout(), "Updated project:%s", updated)
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

// NewDeleteCommand creates the delete command.
func NewDeleteCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a project and its category links",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := model.ParseProjectID(args[0])
			if err != nil {
				return err
			}
			p, err := opts.app.Service.GetProject(cmd.Context(), id)
			if err != nil {
				return err
			}
			if err := opts.app.Service.DeleteProject(cmd.Context(), p); err != nil {
				return err
			}
			printSuccess(cmd.OutOrStdout(), "Successfully deleted project: %s", p.Name)
			return nil
		},
	}
}
