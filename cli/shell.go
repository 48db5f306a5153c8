package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/stsysd/projects/model"
)

// Projects is the set of project operations the shell and commands use.
type Projects interface {
	AddProject(ctx context.Context, p *model.Project) (*model.Project, error)
	ListProjects(ctx context.Context) ([]*model.Project, error)
	GetProject(ctx context.Context, id int64) (*model.Project, error)
	ApplyPatch(ctx context.Context, id int64, patch model.ProjectPatch) (*model.Project, error)
	DeleteProject(ctx context.Context, p *model.Project) error
}

var operations = []string{
	"1) Add a project",
	"2) List projects",
	"3) Select a project",
	"4) Update project details",
	"5) Delete a project",
}

// Session is the per-run shell state. Handlers receive it and return the
// updated value.
type Session struct {
	ID       uuid.UUID
	Selected *model.Project
}

// NewSession starts a session with no project selected.
func NewSession() Session {
	return Session{ID: uuid.New()}
}

// Shell is the interactive menu loop.
type Shell struct {
	projects Projects
	prompter Prompter
	out      io.Writer
	logger   *slog.Logger
}

// NewShell creates a Shell reading from prompter and writing to out.
func NewShell(projects Projects, prompter Prompter, out io.Writer, logger *slog.Logger) *Shell {
	return &Shell{projects: projects, prompter: prompter, out: out, logger: logger}
}

// Run shows the menu until the user enters a blank selection or input ends.
// Operation errors are printed and the loop continues.
func (s *Shell) Run(ctx context.Context) error {
	session := NewSession()
	logger := s.logger.With("session_id", session.ID.String())
	logger.Info("shell started")

	for ctx.Err() == nil {
		s.printOperations(session)

		selection, err := s.readInt("Enter a menu selection")
		if err == nil && selection == nil {
			break
		}
		if err == nil {
			session, err = s.dispatch(ctx, session, *selection)
		}

		if errors.Is(err, io.EOF) || errors.Is(err, ErrAborted) {
			break
		}
		if err != nil {
			logger.Warn("operation failed", "error", err)
			printError(s.out, err)
		}
	}

	fmt.Fprintln(s.out, "Exiting the menu.")
	logger.Info("shell finished")
	return nil
}

func (s *Shell) dispatch(ctx context.Context, session Session, selection int) (Session, error) {
	switch selection {
	case 1:
		return session, s.createProject(ctx)
	case 2:
		return session, s.listProjects(ctx)
	case 3:
		return s.selectProject(ctx, session)
	case 4:
		return s.updateProjectDetails(ctx, session)
	case 5:
		return s.deleteProject(ctx, session)
	default:
		fmt.Fprintf(s.out, "\n%d is not a valid selection. Try again.\n", selection)
		return session, nil
	}
}

func (s *Shell) createProject(ctx context.Context) error {
	nameInput, err := s.readString("Enter the project name")
	if err != nil {
		return err
	}
	name, err := model.ParseProjectName(nameInput)
	if err != nil {
		return err
	}
	estimated, err := s.readHours("Enter the estimated hours")
	if err != nil {
		return err
	}
	actual, err := s.readHours("Enter the actual hours")
	if err != nil {
		return err
	}
	difficulty, err := s.readDifficulty("Enter the project difficulty (1-5)")
	if err != nil {
		return err
	}
	notes, err := s.readString("Enter the project notes")
	if err != nil {
		return err
	}

	p := model.NewProject(name)
	p.EstimatedHours = estimated
	p.ActualHours = actual
	p.Difficulty = difficulty
	p.Notes = model.ParseText(notes)

	created, err := s.projects.AddProject(ctx, p)
	if err != nil {
		return err
	}
	printSuccess(s.out, "You have successfully created project: %s", created)
	return nil
}

func (s *Shell) listProjects(ctx context.Context) error {
	projects, err := s.projects.ListProjects(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, "\nProjects:")
	if err := printProjects(s.out, projects); err != nil {
		return err
	}
	fmt.Fprintln(s.out)
	return nil
}

func (s *Shell) selectProject(ctx context.Context, session Session) (Session, error) {
	if err := s.listProjects(ctx); err != nil {
		return session, err
	}
	id, err := s.readProjectID("Enter a project ID to select a project")
	if err != nil {
		return session, err
	}

	// a failed lookup leaves nothing selected
	session.Selected = nil

	p, err := s.projects.GetProject(ctx, id)
	if err != nil {
		return session, err
	}
	session.Selected = p
	return session, nil
}

func (s *Shell) updateProjectDetails(ctx context.Context, session Session) (Session, error) {
	current := session.Selected
	if current == nil {
		fmt.Fprintln(s.out, "\nPlease select a project.")
		return session, nil
	}

	name, err := s.readString(fmt.Sprintf("Enter the project name [%s]", current.Name))
	if err != nil {
		return session, err
	}
	estimated, err := s.readHours(fmt.Sprintf("Enter the estimated hours [%s]", model.FormatHours(current.EstimatedHours)))
	if err != nil {
		return session, err
	}
	actual, err := s.readHours(fmt.Sprintf("Enter the actual hours [%s]", model.FormatHours(current.ActualHours)))
	if err != nil {
		return session, err
	}
	difficulty, err := s.readDifficulty(fmt.Sprintf("Enter the project difficulty (1-5) [%s]", formatOptionalInt(current.Difficulty)))
	if err != nil {
		return session, err
	}
	notes, err := s.readString(fmt.Sprintf("Enter the project notes [%s]", formatOptionalText(current.Notes)))
	if err != nil {
		return session, err
	}

	patch := model.ProjectPatch{
		Name:           model.OptionalOf(model.ParseText(name)),
		EstimatedHours: model.OptionalOf(estimated),
		ActualHours:    model.OptionalOf(actual),
		Difficulty:     model.OptionalOf(difficulty),
		Notes:          model.OptionalOf(model.ParseText(notes)),
	}

	updated, err := s.projects.ApplyPatch(ctx, current.ID, patch)
	if err != nil {
		return session, err
	}
	session.Selected = updated
	return session, nil
}

func (s *Shell) deleteProject(ctx context.Context, session Session) (Session, error) {
	if err := s.listProjects(ctx); err != nil {
		return session, err
	}
	id, err := s.readProjectID("Enter the ID of the project to be deleted")
	if err != nil {
		return session, err
	}

	p, err := s.projects.GetProject(ctx, id)
	if err != nil {
		return session, err
	}

	fmt.Fprintf(s.out, "Are you sure you would like to remove the project: %s?\n", p.Name)
	fmt.Fprintln(s.out, "1) Yes")
	fmt.Fprintln(s.out, "2) No")
	answer, err := s.readInt("Enter a menu selection")
	if err != nil {
		return session, err
	}

	switch {
	case answer != nil && *answer == 1:
		if err := s.projects.DeleteProject(ctx, p); err != nil {
			return session, err
		}
		printSuccess(s.out, "Successfully deleted project: %s", p.Name)
		if session.Selected != nil && session.Selected.ID == p.ID {
			session.Selected = nil
		}
	case answer != nil && *answer == 2:
	default:
		fmt.Fprintln(s.out, "Not a valid selection. Please select 1 to delete project, and 2 to return to menu.")
	}
	return session, nil
}

func (s *Shell) printOperations(session Session) {
	fmt.Fprintln(s.out, "\nThese are the available operations. Press the Enter key to quit.")
	for _, op := range operations {
		fmt.Fprintln(s.out, "  "+op)
	}

	if session.Selected == nil {
		fmt.Fprintln(s.out, "\nThere is currently no project selected.")
	} else {
		fmt.Fprintf(s.out, "\nYou are working with project: %s\n", session.Selected)
	}
}

// readString returns the trimmed input; blank input yields "".
func (s *Shell) readString(prompt string) (string, error) {
	line, err := s.prompter.Prompt(prompt + ": ")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (s *Shell) readInt(prompt string) (*int, error) {
	line, err := s.readString(prompt)
	if err != nil {
		return nil, err
	}
	return model.ParseInt(line)
}

func (s *Shell) readProjectID(prompt string) (int64, error) {
	line, err := s.readString(prompt)
	if err != nil {
		return 0, err
	}
	return model.ParseProjectID(line)
}

func (s *Shell) readHours(prompt string) (*decimal.Decimal, error) {
	line, err := s.readString(prompt)
	if err != nil {
		return nil, err
	}
	return model.ParseHours(line)
}

func (s *Shell) readDifficulty(prompt string) (*int, error) {
	line, err := s.readString(prompt)
	if err != nil {
		return nil, err
	}
	return model.ParseDifficulty(line)
}

func formatOptionalInt(v *int) string {
	if v == nil {
		return "null"
	}
	return fmt.Sprint(*v)
}

func formatOptionalText(v *string) string {
	if v == nil {
		return "null"
	}
	return *v
}

// NewShellCommand creates the shell command.
func NewShellCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start the interactive menu (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd, opts)
		},
	}
}

func runShell(cmd *cobra.Command, opts *RootOptions) error {
	prompter := NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout(), opts.app.Config.HistoryFile)
	defer func() {
		if err := prompter.Close(); err != nil {
			opts.app.Logger.Warn("failed to close prompter", "error", err)
		}
	}()

	shell := NewShell(opts.app.Service, prompter, cmd.OutOrStdout(), opts.app.Logger)
	return shell.Run(cmd.Context())
}
